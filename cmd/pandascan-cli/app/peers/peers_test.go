package peers

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/enescakir/emoji"
	"github.com/stretchr/testify/require"

	"github.com/pandanite/pandascan/internal/ledger/store"
	"github.com/pandanite/pandascan/internal/ledger/store/mocks"
)

func TestPrint(t *testing.T) {
	// given
	since := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	reader := &mocks.LedgerReaderMock{
		GetActivePeersFunc: func(_ context.Context, _ time.Time) ([]*store.Peer, error) {
			return []*store.Peer{
				{Name: "node-eu", IPAddress: "10.0.0.2", Port: 3000, Version: "mainnet:0.9.0", CurrentBlock: 4321, LastSeenAt: since.Add(time.Minute)},
				{Name: "node-us", IPAddress: "10.0.0.3", Port: 80, Version: "mainnet:0.8.2", CurrentBlock: 4000, LastSeenAt: since.Add(time.Minute)},
			}, nil
		},
		GetChainHeadFunc: func(_ context.Context) (uint64, error) {
			return 4321, nil
		},
	}
	out := &bytes.Buffer{}

	// when
	err := Print(context.Background(), reader, out, since)

	// then
	require.NoError(t, err)
	require.Equal(t, since, reader.GetActivePeersCalls()[0].Since)

	actual := out.String()
	require.Contains(t, actual, "node-eu")
	require.Contains(t, actual, "10.0.0.2:3000")
	require.Contains(t, actual, "mainnet:0.9.0")
	require.Contains(t, actual, "2024-05-01 12:01:00")
	require.Contains(t, actual, "10.0.0.3:80")
	require.Contains(t, actual, emoji.CheckMark.String())
	require.Contains(t, actual, emoji.CrossMark.String())
}
