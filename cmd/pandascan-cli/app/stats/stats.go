package stats

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/pandanite/pandascan/cmd/pandascan-cli/helper"
	"github.com/pandanite/pandascan/internal/ledger/store"
)

var Cmd = &cobra.Command{
	Use:   "stats",
	Short: "Show ledger statistics",
	RunE: func(cmd *cobra.Command, _ []string) error {
		reader, err := helper.OpenReader(cmd.Context())
		if err != nil {
			return err
		}
		defer reader.Close()

		return Print(cmd.Context(), reader, os.Stdout)
	},
}

func Print(ctx context.Context, reader store.LedgerReader, w io.Writer) error {
	stats, err := reader.GetStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to get stats: %w", err)
	}

	t := helper.NewTable()
	t.AppendRows([]table.Row{
		{"Chain head", strconv.FormatUint(stats.ChainHead, 10)},
		{"Blocks", stats.BlockCount},
		{"Transactions", stats.TransactionCount},
		{"Accounts", stats.AccountCount},
		{"Peers", stats.PeerCount},
		{"Circulating value", helper.FormatAmount(stats.CirculatingValue)},
	})

	_, err = fmt.Fprintln(w, t.Render())
	return err
}
