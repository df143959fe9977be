package sqlstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-testfixtures/testfixtures/v3"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pandanite/pandascan/internal/ledger/store"
)

var testNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newSqliteStore(t *testing.T) *SQL {
	t.Helper()

	sut, err := NewSqlite(EngineSqliteMemory, "", WithNow(func() time.Time { return testNow }))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sut.Close()
	})

	require.NoError(t, sut.MigrateUp())

	return sut
}

func loadFixtures(t *testing.T, s *SQL, dialect string, path string) {
	t.Helper()

	fixtures, err := testfixtures.New(
		testfixtures.Database(s.sqlDB.DB),
		testfixtures.Dialect(dialect),
		testfixtures.Directory(path),
		testfixtures.Location(time.UTC),
		testfixtures.DangerousSkipTestDatabaseCheck(),
	)
	require.NoError(t, err)

	err = fixtures.Load()
	require.NoError(t, err)
}

func TestNewSqlite(t *testing.T) {
	t.Run("unsupported engine", func(t *testing.T) {
		// when
		_, err := NewSqlite("mongodb", "")

		// then
		require.ErrorIs(t, err, store.ErrUnsupportedEngine)
	})

	t.Run("migrate twice", func(t *testing.T) {
		// given
		sut := newSqliteStore(t)

		// when
		err := sut.MigrateUp()

		// then
		require.NoError(t, err)
		require.NoError(t, sut.Ping(context.Background()))
		assert.Equal(t, EngineSqliteMemory, sut.Engine())
	})
}

func TestWithBlockTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commit block", func(t *testing.T) {
		// given
		sut := newSqliteStore(t)
		var minerID int64

		// when
		err := sut.WithBlockTx(ctx, func(ctx context.Context, w store.BlockWriter) error {
			blockID, err := w.InsertBlock(ctx, &store.Block{
				Height:           1,
				Hash:             "hash-1",
				Nonce:            "nonce-1",
				Difficulty:       16,
				Timestamp:        1695000000,
				MerkleRoot:       "merkle-1",
				LastBlockHash:    "0000",
				TransactionCount: 1,
			})
			if err != nil {
				return err
			}

			pending, err := w.(*blockTx).GetBlockByHeight(ctx, 1)
			if err != nil {
				return err
			}
			if pending.Status != store.BlockStatusPending {
				return errors.New("inserted block is not pending")
			}

			minerID, err = w.InsertAccount(ctx, &store.Account{
				Address:     "miner",
				FirstSeenAt: 1695000000,
				LastSeenAt:  1695000000,
			})
			if err != nil {
				return err
			}

			err = w.UpdateAccount(ctx, minerID, store.AccountDelta{Balance: 500, LastSeenAt: 1695000000})
			if err != nil {
				return err
			}

			_, err = w.InsertTransaction(ctx, &store.Transaction{
				TxID:        "tx-1",
				BlockID:     blockID,
				ToAccountID: minerID,
				Amount:      500,
				Timestamp:   1695000000,
				IsGenerate:  true,
			})
			if err != nil {
				return err
			}

			return w.FinalizeBlock(ctx, blockID, store.BlockAggregates{
				TotalValue:  500,
				MinedBy:     &minerID,
				BlockReward: 500,
			})
		})

		// then
		require.NoError(t, err)

		head, err := sut.GetChainHead(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), head)

		block, err := sut.GetBlockByHeight(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, store.BlockStatusFinalized, block.Status)
		assert.Equal(t, int64(500), block.TotalValue)
		assert.Equal(t, int64(500), block.BlockReward)
		assert.Equal(t, "miner", block.MinedByAddress)
		require.NotNil(t, block.MinedBy)
		assert.Equal(t, minerID, *block.MinedBy)
		require.NotNil(t, block.ProcessedAt)
		assert.True(t, testNow.Equal(*block.ProcessedAt))

		tx, err := sut.GetTransaction(ctx, "tx-1")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), tx.BlockHeight)
		assert.Equal(t, "miner", tx.ToAddress)
		assert.Empty(t, tx.FromAddress)
		assert.Nil(t, tx.FromAccountID)
		assert.True(t, tx.IsGenerate)
	})

	t.Run("rollback on error", func(t *testing.T) {
		// given
		sut := newSqliteStore(t)
		errProcessing := errors.New("processing failed")

		// when
		err := sut.WithBlockTx(ctx, func(ctx context.Context, w store.BlockWriter) error {
			_, err := w.InsertBlock(ctx, &store.Block{Height: 1, Hash: "hash-1", Timestamp: 1695000000})
			if err != nil {
				return err
			}

			_, err = w.InsertAccount(ctx, &store.Account{Address: "receiver", FirstSeenAt: 1, LastSeenAt: 1})
			if err != nil {
				return err
			}

			return errProcessing
		})

		// then
		require.ErrorIs(t, err, errProcessing)

		head, err := sut.GetChainHead(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), head)

		_, err = sut.GetAccount(ctx, "receiver")
		require.ErrorIs(t, err, store.ErrAccountNotFound)
	})

	t.Run("duplicate height", func(t *testing.T) {
		// given
		sut := newSqliteStore(t)
		loadFixtures(t, sut, "sqlite", "fixtures/ledger")

		// when
		err := sut.WithBlockTx(ctx, func(ctx context.Context, w store.BlockWriter) error {
			_, err := w.InsertBlock(ctx, &store.Block{Height: 2, Hash: "another-hash", Timestamp: 1695000000})
			return err
		})

		// then
		require.ErrorIs(t, err, store.ErrFailedToInsertBlock)
	})

	t.Run("finalize unknown block", func(t *testing.T) {
		// given
		sut := newSqliteStore(t)

		// when
		err := sut.WithBlockTx(ctx, func(ctx context.Context, w store.BlockWriter) error {
			return w.FinalizeBlock(ctx, 42, store.BlockAggregates{})
		})

		// then
		require.ErrorIs(t, err, store.ErrBlockNotFound)
	})
}

func TestUpdateAccount(t *testing.T) {
	ctx := context.Background()

	tt := []struct {
		name    string
		address string
		delta   store.AccountDelta

		expectedAccount store.Account
	}{
		{
			name:    "debit with public key",
			address: "00B2C3D4E5F60718293A4B5C6D7E8F90A1B2C3D4E5F6071829",
			delta: store.AccountDelta{
				Balance:    -51,
				TxCount:    1,
				LastSeenAt: 1695000180,
				PublicKey:  "PUBKEY",
			},
			expectedAccount: store.Account{
				ID:          2,
				Address:     "00B2C3D4E5F60718293A4B5C6D7E8F90A1B2C3D4E5F6071829",
				PublicKey:   "PUBKEY",
				Balance:     149,
				FirstSeenAt: 1695000090,
				LastSeenAt:  1695000180,
				TxCount:     2,
			},
		},
		{
			name:    "credit keeps public key and last seen",
			address: "00A1B2C3D4E5F60718293A4B5C6D7E8F90A1B2C3D4E5F60718",
			delta: store.AccountDelta{
				Balance: 1,
			},
			expectedAccount: store.Account{
				ID:          1,
				Address:     "00A1B2C3D4E5F60718293A4B5C6D7E8F90A1B2C3D4E5F60718",
				PublicKey:   "3F1A9C0B7E2D4F6A8B0C1D2E3F4A5B6C7D8E9F0A1B2C3D4E5F6A7B8C9D0E1F2A",
				Balance:     300,
				FirstSeenAt: 1695000000,
				LastSeenAt:  1695000090,
				TxCount:     1,
			},
		},
		{
			name:    "stored label is not overwritten",
			address: "00B24407B0E9165733AD8C21C3A4E352593FE897889D89DADA",
			delta: store.AccountDelta{
				Balance: 5,
				TxCount: 1,
				Label:   "Other Label",
			},
			expectedAccount: store.Account{
				ID:          3,
				Address:     "00B24407B0E9165733AD8C21C3A4E352593FE897889D89DADA",
				Balance:     1005,
				FirstSeenAt: 1695000030,
				LastSeenAt:  1695000030,
				TxCount:     1,
				Label:       "TradeOgre",
			},
		},
		{
			name:    "missing label is set",
			address: "00A1B2C3D4E5F60718293A4B5C6D7E8F90A1B2C3D4E5F60718",
			delta: store.AccountDelta{
				Label: "XeggeX",
			},
			expectedAccount: store.Account{
				ID:          1,
				Address:     "00A1B2C3D4E5F60718293A4B5C6D7E8F90A1B2C3D4E5F60718",
				PublicKey:   "3F1A9C0B7E2D4F6A8B0C1D2E3F4A5B6C7D8E9F0A1B2C3D4E5F6A7B8C9D0E1F2A",
				Balance:     299,
				FirstSeenAt: 1695000000,
				LastSeenAt:  1695000090,
				TxCount:     1,
				Label:       "XeggeX",
			},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			sut := newSqliteStore(t)
			loadFixtures(t, sut, "sqlite", "fixtures/ledger")

			account, err := sut.GetAccount(ctx, tc.address)
			require.NoError(t, err)

			// when
			err = sut.WithBlockTx(ctx, func(ctx context.Context, w store.BlockWriter) error {
				return w.UpdateAccount(ctx, account.ID, tc.delta)
			})

			// then
			require.NoError(t, err)

			actual, err := sut.GetAccount(ctx, tc.address)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expectedAccount, *actual); diff != "" {
				t.Errorf("unexpected account (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("unknown account", func(t *testing.T) {
		// given
		sut := newSqliteStore(t)

		// when
		err := sut.WithBlockTx(ctx, func(ctx context.Context, w store.BlockWriter) error {
			return w.UpdateAccount(ctx, 99, store.AccountDelta{Balance: 1})
		})

		// then
		require.ErrorIs(t, err, store.ErrAccountNotFound)
	})
}

func TestLedgerReads(t *testing.T) {
	ctx := context.Background()

	sut := newSqliteStore(t)
	loadFixtures(t, sut, "sqlite", "fixtures/ledger")

	t.Run("latest blocks", func(t *testing.T) {
		// when
		blocks, err := sut.GetLatestBlocks(ctx, 0, 10)

		// then
		require.NoError(t, err)
		require.Len(t, blocks, 2)
		assert.Equal(t, uint64(2), blocks[0].Height)
		assert.Equal(t, uint64(1), blocks[1].Height)
		assert.Equal(t, "00B24407B0E9165733AD8C21C3A4E352593FE897889D89DADA", blocks[0].MinedByAddress)

		page, err := sut.GetLatestBlocks(ctx, 1, 1)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, uint64(1), page[0].Height)
	})

	t.Run("block by hash", func(t *testing.T) {
		// when
		block, err := sut.GetBlockByHash(ctx, "0A0B0C0D0E0F101112131415161718191A1B1C1D1E1F20212223242526272829")

		// then
		require.NoError(t, err)
		assert.Equal(t, uint64(1), block.Height)

		_, err = sut.GetBlockByHash(ctx, "unknown")
		require.ErrorIs(t, err, store.ErrBlockNotFound)

		_, err = sut.GetBlockByHeight(ctx, 3)
		require.ErrorIs(t, err, store.ErrBlockNotFound)
	})

	t.Run("richest accounts", func(t *testing.T) {
		// when
		accounts, err := sut.GetRichestAccounts(ctx, 0, 2)

		// then
		require.NoError(t, err)
		require.Len(t, accounts, 2)
		assert.Equal(t, int64(1000), accounts[0].Balance)
		assert.Equal(t, "TradeOgre", accounts[0].Label)
		assert.Equal(t, int64(299), accounts[1].Balance)
	})

	t.Run("account transactions", func(t *testing.T) {
		// when
		txs, err := sut.GetAccountTransactions(ctx, "00A1B2C3D4E5F60718293A4B5C6D7E8F90A1B2C3D4E5F60718", 0, 10)

		// then
		require.NoError(t, err)
		require.Len(t, txs, 2)

		expected := []*store.Transaction{
			{
				ID:            3,
				TxID:          "1A2B3C4D5E6F708192A3B4C5D6E7F8091A2B3C4D5E6F708192A3B4C5D6E7F809",
				BlockID:       2,
				BlockHeight:   2,
				FromAccountID: ptrTo(int64(1)),
				FromAddress:   "00A1B2C3D4E5F60718293A4B5C6D7E8F90A1B2C3D4E5F60718",
				ToAccountID:   2,
				ToAddress:     "00B2C3D4E5F60718293A4B5C6D7E8F90A1B2C3D4E5F6071829",
				Amount:        200,
				Fee:           1,
				Timestamp:     1695000090,
				SigningKey:    "3F1A9C0B7E2D4F6A8B0C1D2E3F4A5B6C7D8E9F0A1B2C3D4E5F6A7B8C9D0E1F2A",
				Signature:     "8E7D6C5B4A39281706F5E4D3C2B1A0998877665544332211",
			},
			{
				ID:          1,
				TxID:        "9C0D6B0FD5E27F83C1A64A3E0E7AAF1B2C3D4E5F60718293A4B5C6D7E8F90A1B",
				BlockID:     1,
				BlockHeight: 1,
				ToAccountID: 1,
				ToAddress:   "00A1B2C3D4E5F60718293A4B5C6D7E8F90A1B2C3D4E5F60718",
				Amount:      500,
				Timestamp:   1695000000,
				IsGenerate:  true,
			},
		}
		if diff := cmp.Diff(expected, txs); diff != "" {
			t.Errorf("unexpected transactions (-want +got):\n%s", diff)
		}

		_, err = sut.GetAccountTransactions(ctx, "unknown", 0, 10)
		require.ErrorIs(t, err, store.ErrAccountNotFound)
	})

	t.Run("stats", func(t *testing.T) {
		// when
		stats, err := sut.GetStats(ctx)

		// then
		require.NoError(t, err)
		assert.Equal(t, &store.Stats{
			ChainHead:        2,
			BlockCount:       2,
			TransactionCount: 3,
			AccountCount:     3,
			PeerCount:        2,
			CirculatingValue: 1499,
		}, stats)
	})

	t.Run("active peers", func(t *testing.T) {
		// when
		peers, err := sut.GetActivePeers(ctx, testNow.Add(-24*time.Hour))

		// then
		require.NoError(t, err)
		require.Len(t, peers, 1)
		assert.Equal(t, "pandanite-node-eu", peers[0].Name)
	})
}

func TestPeers(t *testing.T) {
	ctx := context.Background()

	// given
	sut := newSqliteStore(t)
	peer := &store.Peer{
		Name:         "node-1",
		IPAddress:    "10.0.0.1",
		Port:         3000,
		Version:      "mainnet:0.9.0",
		CurrentBlock: 120,
		LastSeenAt:   testNow.Add(-time.Hour),
	}

	// when
	_, err := sut.GetPeer(ctx, "10.0.0.1", 3000)
	require.ErrorIs(t, err, store.ErrPeerNotFound)

	err = sut.UpdatePeer(ctx, peer)
	require.ErrorIs(t, err, store.ErrPeerNotFound)

	id, err := sut.InsertPeer(ctx, peer)
	require.NoError(t, err)

	peer.CurrentBlock = 121
	peer.Version = "mainnet:0.9.1"
	peer.LastSeenAt = testNow
	err = sut.UpdatePeer(ctx, peer)
	require.NoError(t, err)

	// then
	actual, err := sut.GetPeer(ctx, "10.0.0.1", 3000)
	require.NoError(t, err)

	expected := &store.Peer{
		ID:           id,
		Name:         "node-1",
		IPAddress:    "10.0.0.1",
		Port:         3000,
		Version:      "mainnet:0.9.1",
		CurrentBlock: 121,
		LastSeenAt:   testNow,
	}
	if diff := cmp.Diff(expected, actual, cmpopts.EquateApproxTime(time.Second)); diff != "" {
		t.Errorf("unexpected peer (-want +got):\n%s", diff)
	}

	_, err = sut.InsertPeer(ctx, peer)
	require.ErrorIs(t, err, store.ErrFailedToUpsertPeer)
}

func TestClearLedger(t *testing.T) {
	ctx := context.Background()

	// given
	sut := newSqliteStore(t)
	loadFixtures(t, sut, "sqlite", "fixtures/ledger")

	// when
	cleared, err := sut.ClearLedger(ctx)

	// then
	require.NoError(t, err)
	assert.Equal(t, &store.ClearedRows{Transactions: 3, Blocks: 2, Accounts: 3, Peers: 2}, cleared)

	stats, err := sut.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &store.Stats{}, stats)
}

func ptrTo[T any](v T) *T {
	return &v
}
