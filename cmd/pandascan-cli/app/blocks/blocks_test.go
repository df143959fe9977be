package blocks

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pandanite/pandascan/internal/ledger/store"
	"github.com/pandanite/pandascan/internal/ledger/store/mocks"
)

func TestPrint(t *testing.T) {
	// given
	reader := &mocks.LedgerReaderMock{
		GetLatestBlocksFunc: func(_ context.Context, _ int, _ int) ([]*store.Block, error) {
			return []*store.Block{
				{Height: 2, Hash: "HASH-2", Timestamp: 1695000090, TransactionCount: 2, TotalValue: 7000, TotalFees: 1, BlockReward: 5000, MinedByAddress: "00AA"},
				{Height: 1, Hash: "HASH-1", Timestamp: 1695000000, TransactionCount: 1, TotalValue: 5000, BlockReward: 5000},
			}, nil
		},
	}
	out := &bytes.Buffer{}

	// when
	err := Print(context.Background(), reader, out, 5, 2)

	// then
	require.NoError(t, err)
	require.Len(t, reader.GetLatestBlocksCalls(), 1)
	require.Equal(t, 5, reader.GetLatestBlocksCalls()[0].Offset)
	require.Equal(t, 2, reader.GetLatestBlocksCalls()[0].Limit)

	actual := out.String()
	require.Contains(t, actual, "HASH-2")
	require.Contains(t, actual, "HASH-1")
	require.Contains(t, actual, "0.7000")
	require.Contains(t, actual, "0.0001")
	require.Contains(t, actual, "00AA")
	require.Contains(t, actual, "2023-09-18 01:21:30")
}
