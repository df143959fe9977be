package reset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/pandanite/pandascan/cmd/pandascan-cli/helper"
	"github.com/pandanite/pandascan/internal/ledger/store"
)

var ErrNotConfirmed = errors.New("reset deletes the whole ledger, confirm with --yes")

var confirmed bool

var Cmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all blocks, transactions, accounts and peers so the ledger is rebuilt from height 1",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !confirmed {
			return ErrNotConfirmed
		}

		reader, err := helper.OpenReader(cmd.Context())
		if err != nil {
			return err
		}
		defer reader.Close()

		return Run(cmd.Context(), reader, os.Stdout)
	},
}

func init() {
	Cmd.Flags().BoolVarP(&confirmed, "yes", "y", false, "Confirm the reset")
}

// Run clears the ledger. The indexer must not be running meanwhile.
func Run(ctx context.Context, reader store.LedgerReader, w io.Writer) error {
	cleared, err := reader.ClearLedger(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear ledger: %w", err)
	}

	t := helper.NewTable()
	t.AppendHeader(table.Row{"Deleted", "Rows"})
	t.AppendRows([]table.Row{
		{"Transactions", cleared.Transactions},
		{"Blocks", cleared.Blocks},
		{"Accounts", cleared.Accounts},
		{"Peers", cleared.Peers},
	})

	_, err = fmt.Fprintln(w, t.Render())
	return err
}
