package ledger_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pandanite/pandascan/internal/ledger"
	"github.com/pandanite/pandascan/internal/ledger/mocks"
	"github.com/pandanite/pandascan/internal/ledger/store"
	storeMocks "github.com/pandanite/pandascan/internal/ledger/store/mocks"
	"github.com/pandanite/pandascan/internal/node_client"
)

func newEngine(t *testing.T, ledgerStore store.LedgerStore, client ledger.ChainClient, mqClient ledger.MessageQueueClient, opts ...func(*ledger.Engine)) *ledger.Engine {
	t.Helper()

	logger := newLogger()
	opts = append([]func(*ledger.Engine){ledger.WithNotifier(ledger.NewNotifier(logger, mqClient, ""))}, opts...)

	sut, err := ledger.NewEngine(logger, ledgerStore, client, opts...)
	require.NoError(t, err)

	return sut
}

func TestEngine_RunCycle_CoinbaseAndTransfer(t *testing.T) {
	// given
	ctx := context.Background()
	ledgerStore := newStore(t)
	chain := newFakeChain(nodeBlock(1,
		coinbase("tx-coinbase", addrA, 500),
		transfer("tx-transfer", addrA, addrB, 200, 1),
	))
	mqClient := newMqClient()

	sut := newEngine(t, ledgerStore, chain.client(), mqClient)

	// when
	result, err := sut.RunCycle(ctx, false)

	// then
	require.NoError(t, err)
	require.Equal(t, ledger.CycleResult{Processed: 1, LocalHead: 1, RemoteHeight: 1, CaughtUp: true}, result)

	accountA, err := ledgerStore.GetAccount(ctx, addrA)
	require.NoError(t, err)
	assert.Equal(t, int64(299), accountA.Balance)
	assert.Equal(t, int64(1), accountA.TxCount)
	assert.Equal(t, "KEY-00A1B2", accountA.PublicKey)

	accountB, err := ledgerStore.GetAccount(ctx, addrB)
	require.NoError(t, err)
	assert.Equal(t, int64(200), accountB.Balance)
	assert.Equal(t, int64(1), accountB.TxCount)
	assert.Empty(t, accountB.PublicKey)

	block, err := ledgerStore.GetBlockByHeight(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(700), block.TotalValue)
	assert.Equal(t, int64(1), block.TotalFees)
	assert.Equal(t, int64(500), block.BlockReward)
	assert.Equal(t, int64(2), block.TransactionCount)
	assert.Equal(t, store.BlockStatusFinalized, block.Status)
	require.NotNil(t, block.MinedBy)
	assert.Equal(t, accountA.ID, *block.MinedBy)
	assert.Equal(t, addrA, block.MinedByAddress)

	generated, err := ledgerStore.GetTransaction(ctx, "tx-coinbase")
	require.NoError(t, err)
	assert.True(t, generated.IsGenerate)
	assert.Nil(t, generated.FromAccountID)
	assert.Equal(t, block.ID, generated.BlockID)

	transferred, err := ledgerStore.GetTransaction(ctx, "tx-transfer")
	require.NoError(t, err)
	assert.False(t, transferred.IsGenerate)
	require.NotNil(t, transferred.FromAccountID)
	assert.Equal(t, accountA.ID, *transferred.FromAccountID)
	assert.Equal(t, accountB.ID, transferred.ToAccountID)

	expectedEvents := []ledger.Event{
		{Type: ledger.SubjectAccount, Method: ledger.VerbNew, Data: map[string]any{"address": addrA}},
		{Type: ledger.SubjectAccount, Method: ledger.VerbNew, Data: map[string]any{"address": addrB}},
		{Type: ledger.SubjectTransaction, Method: ledger.VerbNew, Data: map[string]any{"transactionId": "tx-coinbase"}},
		{Type: ledger.SubjectTransaction, Method: ledger.VerbNew, Data: map[string]any{"transactionId": "tx-transfer"}},
		{Type: ledger.SubjectBlock, Method: ledger.VerbNew, Data: map[string]any{"blockId": float64(1)}},
		{Type: ledger.SubjectStats, Method: ledger.VerbUpdate, Data: map[string]any{}},
	}
	require.Equal(t, expectedEvents, publishedEvents(t, mqClient))
}

func TestEngine_RunCycle_AccountRules(t *testing.T) {
	tt := []struct {
		name   string
		blocks []*node_client.Block
		known  map[string]string

		expectedAccounts map[string]store.Account
	}{
		{
			name: "self transfer costs only the fee",
			blocks: []*node_client.Block{
				nodeBlock(1, coinbase("cb-1", addrA, 100)),
				nodeBlock(2, transfer("self", addrA, addrA, 30, 2)),
			},
			expectedAccounts: map[string]store.Account{
				addrA: {Balance: 98, TxCount: 1},
			},
		},
		{
			name: "zero address sender is issuance",
			blocks: []*node_client.Block{
				nodeBlock(1, transfer("genesis", ledger.ZeroAddress, addrA, 1000, 0)),
			},
			expectedAccounts: map[string]store.Account{
				addrA: {Balance: 1000, TxCount: 0},
			},
		},
		{
			name: "receiving coinbase does not count as transaction",
			blocks: []*node_client.Block{
				nodeBlock(1, coinbase("cb-1", addrA, 50)),
				nodeBlock(2, coinbase("cb-2", addrA, 50), transfer("t-1", addrB, addrA, 10, 1)),
			},
			expectedAccounts: map[string]store.Account{
				addrA: {Balance: 110, TxCount: 1},
				addrB: {Balance: -11, TxCount: 1},
			},
		},
		{
			name: "known accounts are labelled",
			blocks: []*node_client.Block{
				nodeBlock(1, coinbase("cb-1", addrA, 100), transfer("t-1", addrA, addrC, 40, 1)),
			},
			known: map[string]string{addrC: "Exchange", addrA: "Miner"},
			expectedAccounts: map[string]store.Account{
				addrA: {Balance: 59, TxCount: 1, Label: "Miner"},
				addrC: {Balance: 40, TxCount: 1, Label: "Exchange"},
			},
		},
		{
			name: "chain of transfers",
			blocks: []*node_client.Block{
				nodeBlock(1, coinbase("cb-1", addrA, 100)),
				nodeBlock(2, coinbase("cb-2", addrB, 100), transfer("t-1", addrA, addrB, 60, 1), transfer("t-2", addrB, addrC, 150, 2)),
				nodeBlock(3, coinbase("cb-3", addrC, 100), transfer("t-3", addrC, addrA, 5, 0)),
			},
			expectedAccounts: map[string]store.Account{
				addrA: {Balance: 44, TxCount: 2},
				addrB: {Balance: 8, TxCount: 2},
				addrC: {Balance: 245, TxCount: 2},
			},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			ctx := context.Background()
			ledgerStore := newStore(t)
			chain := newFakeChain(tc.blocks...)

			sut := newEngine(t, ledgerStore, chain.client(), newMqClient(), ledger.WithKnownAccounts(tc.known))

			// when
			result, err := sut.RunCycle(ctx, false)

			// then
			require.NoError(t, err)
			require.Equal(t, len(tc.blocks), result.Processed)

			var issued, fees int64
			for _, b := range tc.blocks {
				for _, tx := range b.Transactions {
					if tx.From == "" || tx.From == ledger.ZeroAddress {
						issued += int64(tx.Amount)
					}
					fees += int64(tx.Fee)
				}
			}

			stats, err := ledgerStore.GetStats(ctx)
			require.NoError(t, err)
			assert.Equal(t, issued-fees, stats.CirculatingValue)

			for address, expected := range tc.expectedAccounts {
				account, err := ledgerStore.GetAccount(ctx, address)
				require.NoError(t, err)
				assert.Equal(t, expected.Balance, account.Balance, address)
				assert.Equal(t, expected.TxCount, account.TxCount, address)
				assert.Equal(t, expected.Label, account.Label, address)
			}
		})
	}
}

func TestEngine_RunCycle_Bounded(t *testing.T) {
	// given
	ctx := context.Background()
	ledgerStore := newStore(t)
	chain := newFakeChain()
	for h := uint64(1); h <= 5; h++ {
		chain.add(nodeBlock(h, coinbase(fmt.Sprintf("cb-%d", h), addrA, 10)))
	}
	mqClient := newMqClient()

	sut := newEngine(t, ledgerStore, chain.client(), mqClient, ledger.WithMaxBlocksPerCycle(2))

	// when
	results := make([]ledger.CycleResult, 0, 4)
	for i := 0; i < 4; i++ {
		result, err := sut.RunCycle(ctx, false)
		require.NoError(t, err)
		results = append(results, result)
	}

	// then
	expected := []ledger.CycleResult{
		{Processed: 2, LocalHead: 1, RemoteHeight: 5, CaughtUp: false},
		{Processed: 2, LocalHead: 3, RemoteHeight: 5, CaughtUp: false},
		{Processed: 1, LocalHead: 5, RemoteHeight: 5, CaughtUp: true},
		{Processed: 0, LocalHead: 6, RemoteHeight: 5, CaughtUp: true},
	}
	require.Equal(t, expected, results)

	head, err := ledgerStore.GetChainHead(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(5), head)

	channels := publishedChannels(mqClient)
	require.Equal(t, 5, channels["pandascan:newBlock"])
	require.Equal(t, 5, channels["pandascan:newTransaction"])
	require.Equal(t, 3, channels["pandascan:updateStats"])
	require.Equal(t, 1, channels["pandascan:newAccount"])
}

func TestEngine_RunCycle_Backfill(t *testing.T) {
	// given
	ctx := context.Background()
	ledgerStore := newStore(t)
	chain := newFakeChain(
		nodeBlock(1, coinbase("cb-1", addrA, 100)),
		nodeBlock(2, transfer("t-1", addrA, addrB, 10, 1)),
	)
	mqClient := newMqClient()

	sut := newEngine(t, ledgerStore, chain.client(), mqClient)

	// when
	result, err := sut.RunCycle(ctx, true)

	// then
	require.NoError(t, err)
	require.Equal(t, 2, result.Processed)
	require.Empty(t, mqClient.PublishCalls())

	account, err := ledgerStore.GetAccount(ctx, addrB)
	require.NoError(t, err)
	require.Equal(t, int64(10), account.Balance)
}

func TestEngine_RunCycle_Abort(t *testing.T) {
	tt := []struct {
		name        string
		failing     *node_client.Block
		missingNext bool

		expectedError error
	}{
		{
			name:          "negative amount",
			failing:       nodeBlock(2, transfer("t-neg", addrA, addrB, -5, 1)),
			expectedError: ledger.ErrMalformedData,
		},
		{
			name:          "negative fee",
			failing:       nodeBlock(2, transfer("t-neg", addrA, addrB, 5, -1)),
			expectedError: ledger.ErrMalformedData,
		},
		{
			name:          "missing receiver",
			failing:       nodeBlock(2, coinbase("cb-2", "", 5)),
			expectedError: ledger.ErrMalformedData,
		},
		{
			name:          "missing transaction id",
			failing:       nodeBlock(2, transfer("", addrA, addrB, 5, 1)),
			expectedError: ledger.ErrMalformedData,
		},
		{
			name:          "unexpected block id",
			failing:       &node_client.Block{ID: 7, Hash: "HASH-7"},
			expectedError: ledger.ErrMalformedData,
		},
		{
			name:          "block not available",
			missingNext:   true,
			expectedError: node_client.ErrTransientFetch,
		},
		{
			name:          "duplicate transaction id rolls back the block",
			failing:       nodeBlock(2, transfer("t-1", addrA, addrB, 10, 0), coinbase("cb-1", addrC, 10)),
			expectedError: store.ErrFailedToInsertTransaction,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			ctx := context.Background()
			ledgerStore := newStore(t)
			chain := newFakeChain(nodeBlock(1, coinbase("cb-1", addrA, 100)))
			if tc.failing != nil {
				chain.blocks[2] = tc.failing
			}
			chain.height = 3
			chain.add(nodeBlock(3, coinbase("cb-3", addrA, 100)))
			if tc.missingNext {
				delete(chain.blocks, 2)
			}

			client := chain.client()
			mqClient := newMqClient()
			sut := newEngine(t, ledgerStore, client, mqClient,
				ledger.WithPeerDiscovery(ledger.NewPeerDiscovery(newLogger(), client, ledgerStore)),
			)

			// when
			result, err := sut.RunCycle(ctx, false)

			// then
			require.ErrorIs(t, err, tc.expectedError)
			require.Equal(t, 1, result.Processed)

			head, err := ledgerStore.GetChainHead(ctx)
			require.NoError(t, err)
			require.Equal(t, uint64(1), head)

			_, err = ledgerStore.GetBlockByHeight(ctx, 2)
			require.ErrorIs(t, err, store.ErrBlockNotFound)

			for _, address := range []string{addrB, addrC} {
				_, err = ledgerStore.GetAccount(ctx, address)
				require.ErrorIs(t, err, store.ErrAccountNotFound)
			}

			accountA, err := ledgerStore.GetAccount(ctx, addrA)
			require.NoError(t, err)
			require.Equal(t, int64(100), accountA.Balance)

			require.Empty(t, client.GetPeersCalls())
			require.Zero(t, publishedChannels(mqClient)["pandascan:updateStats"])
			require.Equal(t, 1, publishedChannels(mqClient)["pandascan:newBlock"])
		})
	}
}

func TestEngine_RunCycle_StoreErrors(t *testing.T) {
	errStore := errors.New("connection reset")

	tt := []struct {
		name            string
		getChainHeadErr error
		withBlockTxErr  error

		expectedError         error
		expectedBlockRequests int
	}{
		{
			name:            "chain head not available",
			getChainHeadErr: errStore,

			expectedError: errStore,
		},
		{
			name:           "block transaction fails",
			withBlockTxErr: store.ErrFailedToCommitTx,

			expectedError:         store.ErrFailedToCommitTx,
			expectedBlockRequests: 1,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			storeMock := &storeMocks.LedgerStoreMock{
				GetChainHeadFunc: func(_ context.Context) (uint64, error) {
					return 0, tc.getChainHeadErr
				},
				WithBlockTxFunc: func(_ context.Context, _ func(ctx context.Context, w store.BlockWriter) error) error {
					return tc.withBlockTxErr
				},
			}
			chain := newFakeChain(nodeBlock(1, coinbase("cb-1", addrA, 100)), nodeBlock(2, coinbase("cb-2", addrA, 100)))
			client := chain.client()
			mqClient := &mocks.MessageQueueClientMock{}

			sut := newEngine(t, storeMock, client, mqClient)

			// when
			result, err := sut.RunCycle(context.Background(), false)

			// then
			require.ErrorIs(t, err, tc.expectedError)
			require.Zero(t, result.Processed)
			require.Len(t, client.GetBlockCalls(), tc.expectedBlockRequests)
			require.Empty(t, mqClient.PublishCalls())
		})
	}
}

func TestEngine_RunCycle_WriteOrder(t *testing.T) {
	// given
	var calls []string
	writer := &storeMocks.BlockWriterMock{
		InsertBlockFunc: func(_ context.Context, block *store.Block) (int64, error) {
			calls = append(calls, "InsertBlock")
			require.Equal(t, store.BlockStatusPending, block.Status)
			return 10, nil
		},
		GetAccountFunc: func(_ context.Context, _ string) (*store.Account, error) {
			calls = append(calls, "GetAccount")
			return nil, store.ErrAccountNotFound
		},
		InsertAccountFunc: func(_ context.Context, _ *store.Account) (int64, error) {
			calls = append(calls, "InsertAccount")
			return 20, nil
		},
		InsertTransactionFunc: func(_ context.Context, tx *store.Transaction) (int64, error) {
			calls = append(calls, "InsertTransaction")
			require.Equal(t, int64(10), tx.BlockID)
			return 30, nil
		},
		FinalizeBlockFunc: func(_ context.Context, blockID int64, aggregates store.BlockAggregates) error {
			calls = append(calls, "FinalizeBlock")
			require.Equal(t, int64(10), blockID)
			require.Equal(t, int64(20), *aggregates.MinedBy)
			return nil
		},
	}
	storeMock := &storeMocks.LedgerStoreMock{
		GetChainHeadFunc: func(_ context.Context) (uint64, error) {
			return 0, nil
		},
		WithBlockTxFunc: func(ctx context.Context, fn func(ctx context.Context, w store.BlockWriter) error) error {
			return fn(ctx, writer)
		},
	}
	chain := newFakeChain(nodeBlock(1, coinbase("cb-1", addrA, 100)))

	sut := newEngine(t, storeMock, chain.client(), nil)

	// when
	_, err := sut.RunCycle(context.Background(), false)

	// then
	require.NoError(t, err)
	require.Equal(t, []string{"InsertBlock", "GetAccount", "InsertAccount", "InsertTransaction", "FinalizeBlock"}, calls)
}

func TestEngine_RunCycle_PeerDiscovery(t *testing.T) {
	// given
	ctx := context.Background()
	ledgerStore := newStore(t)
	chain := newFakeChain()
	chain.peers = []string{"http://10.0.0.1:3000", "https://node.example.org"}
	client := chain.client()
	mqClient := newMqClient()

	sut := newEngine(t, ledgerStore, client, mqClient,
		ledger.WithPeerDiscovery(ledger.NewPeerDiscovery(newLogger(), client, ledgerStore)),
	)

	// when
	result, err := sut.RunCycle(ctx, false)

	// then
	require.NoError(t, err)
	require.Zero(t, result.Processed)
	require.Empty(t, mqClient.PublishCalls())

	peer, err := ledgerStore.GetPeer(ctx, "node.example.org", 443)
	require.NoError(t, err)
	require.Equal(t, "mainnet:1.0", peer.Version)
}

func TestEngine_LastActivity(t *testing.T) {
	// given
	ledgerStore := newStore(t)
	chain := newFakeChain(nodeBlock(1, coinbase("cb-1", addrA, 100)))
	sut := newEngine(t, ledgerStore, chain.client(), nil)
	before := sut.LastActivity()

	// when
	_, err := sut.RunCycle(context.Background(), false)

	// then
	require.NoError(t, err)
	require.False(t, sut.LastActivity().Before(before))
}
