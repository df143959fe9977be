package store

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound                  = errors.New("not found")
	ErrBlockNotFound             = errors.New("block not found")
	ErrAccountNotFound           = errors.New("account not found")
	ErrTransactionNotFound       = errors.New("transaction not found")
	ErrPeerNotFound              = errors.New("peer not found")
	ErrFailedToOpenDB            = errors.New("failed to open database")
	ErrUnsupportedEngine         = errors.New("unsupported database engine")
	ErrFailedToMigrate           = errors.New("failed to migrate database")
	ErrFailedToBeginTx           = errors.New("failed to begin database transaction")
	ErrFailedToCommitTx          = errors.New("failed to commit database transaction")
	ErrFailedToInsertBlock       = errors.New("failed to insert block")
	ErrFailedToFinalizeBlock     = errors.New("failed to finalize block")
	ErrFailedToInsertAccount     = errors.New("failed to insert account")
	ErrFailedToUpdateAccount     = errors.New("failed to update account")
	ErrFailedToInsertTransaction = errors.New("failed to insert transaction")
	ErrFailedToUpsertPeer        = errors.New("failed to upsert peer")
	ErrFailedToGetRows           = errors.New("failed to get rows")
	ErrUnableToDeleteRows        = errors.New("unable to delete rows")
)

// LedgerStore is used by the sync engine. All writes belonging to one block go through WithBlockTx.
type LedgerStore interface {
	GetChainHead(ctx context.Context) (uint64, error)
	WithBlockTx(ctx context.Context, fn func(ctx context.Context, w BlockWriter) error) error
	GetPeer(ctx context.Context, ipAddress string, port int) (*Peer, error)
	InsertPeer(ctx context.Context, peer *Peer) (int64, error)
	UpdatePeer(ctx context.Context, peer *Peer) error
	GetStats(ctx context.Context) (*Stats, error)

	Ping(ctx context.Context) error
	Close() error
}

// BlockWriter performs the writes of a single block. The writes become visible only when the
// enclosing WithBlockTx call returns without error.
type BlockWriter interface {
	InsertBlock(ctx context.Context, block *Block) (int64, error)
	FinalizeBlock(ctx context.Context, blockID int64, aggregates BlockAggregates) error
	GetAccount(ctx context.Context, address string) (*Account, error)
	InsertAccount(ctx context.Context, account *Account) (int64, error)
	UpdateAccount(ctx context.Context, accountID int64, delta AccountDelta) error
	InsertTransaction(ctx context.Context, tx *Transaction) (int64, error)
}

type LedgerReader interface {
	GetChainHead(ctx context.Context) (uint64, error)
	GetBlockByHeight(ctx context.Context, height uint64) (*Block, error)
	GetBlockByHash(ctx context.Context, hash string) (*Block, error)
	GetLatestBlocks(ctx context.Context, offset int, limit int) ([]*Block, error)
	GetAccount(ctx context.Context, address string) (*Account, error)
	GetRichestAccounts(ctx context.Context, offset int, limit int) ([]*Account, error)
	GetAccountTransactions(ctx context.Context, address string, offset int, limit int) ([]*Transaction, error)
	GetTransaction(ctx context.Context, txID string) (*Transaction, error)
	GetActivePeers(ctx context.Context, since time.Time) ([]*Peer, error)
	GetStats(ctx context.Context) (*Stats, error)
	ClearLedger(ctx context.Context) (*ClearedRows, error)
	Close() error
}
