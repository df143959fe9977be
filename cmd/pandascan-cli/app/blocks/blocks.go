package blocks

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/pandanite/pandascan/cmd/pandascan-cli/helper"
	"github.com/pandanite/pandascan/internal/ledger/store"
)

var (
	offset int
	limit  int
)

var Cmd = &cobra.Command{
	Use:   "blocks",
	Short: "Show the latest blocks of the ledger",
	RunE: func(cmd *cobra.Command, _ []string) error {
		reader, err := helper.OpenReader(cmd.Context())
		if err != nil {
			return err
		}
		defer reader.Close()

		return Print(cmd.Context(), reader, os.Stdout, offset, limit)
	},
}

func init() {
	Cmd.Flags().IntVarP(&offset, "offset", "o", 0, "Number of latest blocks to skip")
	Cmd.Flags().IntVarP(&limit, "limit", "l", 10, "Maximum number of blocks to show")
}

func Print(ctx context.Context, reader store.LedgerReader, w io.Writer, offset int, limit int) error {
	blocks, err := reader.GetLatestBlocks(ctx, offset, limit)
	if err != nil {
		return fmt.Errorf("failed to get blocks: %w", err)
	}

	t := helper.NewTable()
	t.AppendHeader(table.Row{"Height", "Hash", "Time", "Txs", "Value", "Fees", "Reward", "Mined by"})

	for _, b := range blocks {
		minedBy := b.MinedByAddress
		if minedBy == "" {
			minedBy = "-"
		}

		t.AppendRow(table.Row{
			b.Height,
			b.Hash,
			helper.FormatUnixTime(b.Timestamp),
			b.TransactionCount,
			helper.FormatAmount(b.TotalValue),
			helper.FormatAmount(b.TotalFees),
			helper.FormatAmount(b.BlockReward),
			minedBy,
		})
	}

	_, err = fmt.Fprintln(w, t.Render())
	return err
}
