package account

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pandanite/pandascan/internal/ledger/store"
	"github.com/pandanite/pandascan/internal/ledger/store/mocks"
)

const (
	addrA = "00AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"
	addrB = "00BBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB"
)

func TestPrint(t *testing.T) {
	tcs := []struct {
		name     string
		account  *store.Account
		getErr   error
		expected []string

		expectedErr error
	}{
		{
			name:     "account with transactions",
			account:  &store.Account{Address: addrA, Balance: 2990000, TxCount: 2, FirstSeenAt: 1695000000, LastSeenAt: 1695000090, Label: "Development Fund", PublicKey: "KEY-A"},
			expected: []string{addrA, "Development Fund", "299.0000", "KEY-A", "(coinbase)", "-200.0000", "500.0000", "0.0001"},
		},
		{
			name:        "unknown account",
			getErr:      store.ErrAccountNotFound,
			expectedErr: store.ErrAccountNotFound,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// given
			reader := &mocks.LedgerReaderMock{
				GetAccountFunc: func(_ context.Context, _ string) (*store.Account, error) {
					return tc.account, tc.getErr
				},
				GetAccountTransactionsFunc: func(_ context.Context, _ string, _ int, _ int) ([]*store.Transaction, error) {
					return []*store.Transaction{
						{TxID: "tx-transfer", BlockHeight: 2, FromAddress: addrA, ToAddress: addrB, Amount: 2000000, Fee: 1, Timestamp: 1695000090},
						{TxID: "tx-coinbase", BlockHeight: 1, ToAddress: addrA, Amount: 5000000, IsGenerate: true, Timestamp: 1695000000},
					}, nil
				},
			}
			out := &bytes.Buffer{}

			// when
			err := Print(context.Background(), reader, out, addrA, 0, 10)

			// then
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				require.Empty(t, reader.GetAccountTransactionsCalls())
				return
			}
			require.NoError(t, err)
			for _, e := range tc.expected {
				require.Contains(t, out.String(), e)
			}
		})
	}
}
