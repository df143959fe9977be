package ledger_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pandanite/pandascan/internal/ledger"
	"github.com/pandanite/pandascan/internal/ledger/mocks"
	"github.com/pandanite/pandascan/internal/ledger/store/sqlstore"
	"github.com/pandanite/pandascan/internal/node_client"
)

const (
	addrA = "00A1B2C3D4E5F60718293A4B5C6D7E8F90A1B2C3D4E5F60718"
	addrB = "00B2C3D4E5F60718293A4B5C6D7E8F90A1B2C3D4E5F6071829"
	addrC = "00C3D4E5F60718293A4B5C6D7E8F90A1B2C3D4E5F607182930"

	blockTime = int64(1695000000)
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func newStore(t *testing.T) *sqlstore.SQL {
	t.Helper()

	s, err := sqlstore.NewSqlite(sqlstore.EngineSqliteMemory, "")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})

	require.NoError(t, s.MigrateUp())

	return s
}

func coinbase(txID string, to string, amount int64) node_client.Transaction {
	return node_client.Transaction{To: to, Amount: node_client.Int(amount), TxID: txID}
}

func transfer(txID string, from, to string, amount, fee int64) node_client.Transaction {
	return node_client.Transaction{
		From:       from,
		To:         to,
		Amount:     node_client.Int(amount),
		Fee:        node_client.Int(fee),
		TxID:       txID,
		SigningKey: "KEY-" + from[:6],
		Signature:  "SIG-" + txID,
	}
}

func nodeBlock(height uint64, txs ...node_client.Transaction) *node_client.Block {
	return &node_client.Block{
		ID:            node_client.Int(height),
		Hash:          fmt.Sprintf("HASH-%d", height),
		Nonce:         "NONCE",
		Difficulty:    24,
		Timestamp:     node_client.Int(blockTime + int64(height)*90),
		MerkleRoot:    fmt.Sprintf("ROOT-%d", height),
		LastBlockHash: fmt.Sprintf("HASH-%d", height-1),
		Transactions:  txs,
	}
}

// fakeChain serves blocks by height. Heights without a block are reported as fetch errors.
type fakeChain struct {
	mu     sync.Mutex
	blocks map[uint64]*node_client.Block
	height uint64
	peers  []string
}

func newFakeChain(blocks ...*node_client.Block) *fakeChain {
	c := &fakeChain{blocks: map[uint64]*node_client.Block{}}
	for _, b := range blocks {
		c.add(b)
	}

	return c
}

func (c *fakeChain) add(b *node_client.Block) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.blocks[uint64(b.ID)] = b
	if uint64(b.ID) > c.height {
		c.height = uint64(b.ID)
	}
}

func (c *fakeChain) client() *mocks.ChainClientMock {
	return &mocks.ChainClientMock{
		GetBlockCountFunc: func(_ context.Context) (uint64, error) {
			c.mu.Lock()
			defer c.mu.Unlock()
			return c.height, nil
		},
		GetBlockFunc: func(_ context.Context, height uint64) (*node_client.Block, error) {
			c.mu.Lock()
			defer c.mu.Unlock()
			b, found := c.blocks[height]
			if !found {
				return nil, node_client.ErrTransientFetch
			}
			return b, nil
		},
		GetPeersFunc: func(_ context.Context) ([]string, error) {
			return c.peers, nil
		},
		GetPeerNameFunc: func(_ context.Context, _ string) (*node_client.PeerName, error) {
			return &node_client.PeerName{Name: "peer", NetworkName: "mainnet", Version: "1.0"}, nil
		},
		GetPeerStatsFunc: func(_ context.Context, _ string) (*node_client.PeerStats, error) {
			c.mu.Lock()
			defer c.mu.Unlock()
			return &node_client.PeerStats{CurrentBlock: node_client.Int(c.height)}, nil
		},
	}
}

func newMqClient() *mocks.MessageQueueClientMock {
	return &mocks.MessageQueueClientMock{
		PublishFunc: func(_ context.Context, _ string, _ []byte) error {
			return nil
		},
	}
}

func publishedChannels(mq *mocks.MessageQueueClientMock) map[string]int {
	counts := map[string]int{}
	for _, call := range mq.PublishCalls() {
		counts[call.Channel]++
	}

	return counts
}

func publishedEvents(t *testing.T, mq *mocks.MessageQueueClientMock) []ledger.Event {
	t.Helper()

	events := make([]ledger.Event, 0, len(mq.PublishCalls()))
	for _, call := range mq.PublishCalls() {
		var event ledger.Event
		require.NoError(t, json.Unmarshal(call.Data, &event))
		events = append(events, event)
	}

	return events
}
