package account

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

var (
	offset int
	limit  int
)

var Cmd = &cobra.Command{
	Use:   "account <address>",
	Short: "Show an account and its latest transactions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reader, err := helper.OpenReader(cmd.Context())
		if err != nil {
			return err
		}
		defer reader.Close()

		return Print(cmd.Context(), reader, os.Stdout, args[0], offset, limit)
	},
}

func init() {
	Cmd.Flags().IntVarP(&offset, "offset", "o", 0, "Number of latest transactions to skip")
	Cmd.Flags().IntVarP(&limit, "limit", "l", 10, "Maximum number of transactions to show")
}

func Print(ctx context.Context, reader store.LedgerReader, w io.Writer, address string, offset int, limit int) error {
	acc, err := reader.GetAccount(ctx, address)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return fmt.Errorf("account %s has never been seen on chain: %w", address, err)
		}
		return fmt.Errorf("failed to get account: %w", err)
	}

	txs, err := reader.GetAccountTransactions(ctx, address, offset, limit)
	if err != nil {
		return fmt.Errorf("failed to get transactions: %w", err)
	}

	label := acc.Label
	if label == "" {
		label = "-"
	}

	at := helper.NewTable()
	at.AppendRows([]table.Row{
		{"Address", acc.Address},
		{"Label", label},
		{"Balance", helper.FormatAmount(acc.Balance)},
		{"Transactions", acc.TxCount},
		{"First seen", helper.FormatUnixTime(acc.FirstSeenAt)},
		{"Last seen", helper.FormatUnixTime(acc.LastSeenAt)},
		{"Public key", acc.PublicKey},
	})

	tt := helper.NewTable()
	tt.AppendHeader(table.Row{"TxID", "Block", "Time", "From", "To", "Amount", "Fee"})
	for _, tx := range txs {
		from := tx.FromAddress
		if tx.IsGenerate {
			from = "(coinbase)"
		}

		amount := helper.FormatAmount(tx.Amount)
		if tx.FromAddress == address && tx.ToAddress != address {
			amount = helper.FormatAmount(-tx.Amount)
		}

		tt.AppendRow(table.Row{
			tx.TxID,
			tx.BlockHeight,
			helper.FormatUnixTime(tx.Timestamp),
			from,
			tx.ToAddress,
			amount,
			helper.FormatAmount(tx.Fee),
		})
	}

	_, err = fmt.Fprintf(w, "%s\n%s\n", at.Render(), tt.Render())
	return err
}
