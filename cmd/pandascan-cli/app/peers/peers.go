package peers

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/enescakir/emoji"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/pandanite/pandascan/cmd/pandascan-cli/helper"
	"github.com/pandanite/pandascan/internal/ledger/store"
)

var window time.Duration

var Cmd = &cobra.Command{
	Use:   "peers",
	Short: "Show peers seen within a time window",
	RunE: func(cmd *cobra.Command, _ []string) error {
		reader, err := helper.OpenReader(cmd.Context())
		if err != nil {
			return err
		}
		defer reader.Close()

		return Print(cmd.Context(), reader, os.Stdout, time.Now().Add(-window))
	},
}

func init() {
	Cmd.Flags().DurationVarP(&window, "window", "w", 24*time.Hour, "Only show peers seen within this window")
}

// Print lists the peers seen since the given time. Peers behind the ledger head are marked as not synced.
func Print(ctx context.Context, reader store.LedgerReader, w io.Writer, since time.Time) error {
	peers, err := reader.GetActivePeers(ctx, since)
	if err != nil {
		return fmt.Errorf("failed to get peers: %w", err)
	}

	head, err := reader.GetChainHead(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chain head: %w", err)
	}

	t := helper.NewTable()
	t.AppendHeader(table.Row{"Name", "Address", "Version", "Block", "Synced", "Last seen"})

	for _, p := range peers {
		synced := emoji.CheckMark.String()
		if p.CurrentBlock < head {
			synced = emoji.CrossMark.String()
		}

		t.AppendRow(table.Row{
			p.Name,
			net.JoinHostPort(p.IPAddress, strconv.Itoa(p.Port)),
			p.Version,
			p.CurrentBlock,
			synced,
			p.LastSeenAt.UTC().Format(time.DateTime),
		})
	}
	t.AppendFooter(table.Row{"Total", len(peers)})

	_, err = fmt.Fprintln(w, t.Render())
	return err
}
