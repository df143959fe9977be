package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pandanite/pandascan/cmd/pandascan-cli/app/account"
	"github.com/pandanite/pandascan/cmd/pandascan-cli/app/blocks"
	"github.com/pandanite/pandascan/cmd/pandascan-cli/app/peers"
	"github.com/pandanite/pandascan/cmd/pandascan-cli/app/reset"
	"github.com/pandanite/pandascan/cmd/pandascan-cli/app/stats"
	"github.com/pandanite/pandascan/cmd/pandascan-cli/helper"
)

var RootCmd = &cobra.Command{
	Use:          "pandascan-cli",
	Short:        "cli tool to inspect and reset the pandascan ledger",
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&helper.ConfigDir, "config", "", "directory to look for the pandascan config")
	RootCmd.PersistentFlags().StringVar(&helper.LogLevel, "log-level", "WARN", "log level of the cli")

	RootCmd.AddCommand(stats.Cmd)
	RootCmd.AddCommand(blocks.Cmd)
	RootCmd.AddCommand(account.Cmd)
	RootCmd.AddCommand(peers.Cmd)
	RootCmd.AddCommand(reset.Cmd)
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return RootCmd.ExecuteContext(ctx)
}
