package store

import (
	"time"
)

type BlockStatus int

const (
	BlockStatusPending   BlockStatus = 1
	BlockStatusFinalized BlockStatus = 2
)

func (s BlockStatus) String() string {
	switch s {
	case BlockStatusPending:
		return "PENDING"
	case BlockStatusFinalized:
		return "FINALIZED"
	}

	return "UNKNOWN"
}

type Account struct {
	ID          int64  `db:"id"`
	Address     string `db:"address"`
	PublicKey   string `db:"public_key"`
	Balance     int64  `db:"balance"`
	FirstSeenAt int64  `db:"first_seen_at"`
	LastSeenAt  int64  `db:"last_seen_at"`
	TxCount     int64  `db:"tx_count"`
	Label       string `db:"label"`
}

// AccountDelta is applied on top of the stored account. Zero values of LastSeenAt and
// PublicKey leave the stored value untouched. Label is only written when none is stored yet.
type AccountDelta struct {
	Balance    int64
	TxCount    int64
	LastSeenAt int64
	PublicKey  string
	Label      string
}

type Block struct {
	ID               int64       `db:"id"`
	Height           uint64      `db:"height"`
	Hash             string      `db:"hash"`
	Nonce            string      `db:"nonce"`
	Difficulty       int64       `db:"difficulty"`
	Timestamp        int64       `db:"block_time"`
	MerkleRoot       string      `db:"merkle_root"`
	LastBlockHash    string      `db:"last_block_hash"`
	MinedBy          *int64      `db:"mined_by"`
	MinedByAddress   string      `db:"mined_by_address"`
	TransactionCount int64       `db:"transaction_count"`
	TotalValue       int64       `db:"total_value"`
	TotalFees        int64       `db:"total_fees"`
	BlockReward      int64       `db:"block_reward"`
	Status           BlockStatus `db:"status"`
	ProcessedAt      *time.Time  `db:"processed_at"`
}

type BlockAggregates struct {
	TotalValue  int64
	TotalFees   int64
	MinedBy     *int64
	BlockReward int64
}

type Transaction struct {
	ID            int64  `db:"id"`
	TxID          string `db:"tx_id"`
	BlockID       int64  `db:"block_id"`
	BlockHeight   uint64 `db:"block_height"`
	FromAccountID *int64 `db:"from_account_id"`
	FromAddress   string `db:"from_address"`
	ToAccountID   int64  `db:"to_account_id"`
	ToAddress     string `db:"to_address"`
	Amount        int64  `db:"amount"`
	Fee           int64  `db:"fee"`
	Timestamp     int64  `db:"block_time"`
	IsGenerate    bool   `db:"is_generate"`
	SigningKey    string `db:"signing_key"`
	Signature     string `db:"signature"`
}

type Peer struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	IPAddress    string    `db:"ip_address"`
	Port         int       `db:"port"`
	Version      string    `db:"version"`
	CurrentBlock uint64    `db:"current_block"`
	LastSeenAt   time.Time `db:"last_seen_at"`
}

type Stats struct {
	ChainHead        uint64 `db:"chain_head"`
	BlockCount       int64  `db:"block_count"`
	TransactionCount int64  `db:"transaction_count"`
	AccountCount     int64  `db:"account_count"`
	PeerCount        int64  `db:"peer_count"`
	CirculatingValue int64  `db:"circulating_value"`
}

type ClearedRows struct {
	Transactions int64
	Blocks       int64
	Accounts     int64
	Peers        int64
}
