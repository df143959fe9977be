package main

import (
	"log"
	"os"

	"github.com/pandanite/pandascan/cmd/pandascan-cli/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		log.Fatalf("failed to run pandascan-cli: %v", err)
	}

	os.Exit(0)
}
