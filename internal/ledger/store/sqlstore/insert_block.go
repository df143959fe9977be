package sqlstore

import (
	"context"
	"errors"

	"github.com/pandanite/pandascan/internal/ledger/store"
	"github.com/pandanite/pandascan/internal/tracing"
)

// InsertBlock stores the header of a block in pending state.
func (q *queries) InsertBlock(ctx context.Context, block *store.Block) (blockID int64, err error) {
	ctx, span := q.startTracing(ctx, "InsertBlock")
	defer func() {
		tracing.EndTracing(span, err)
	}()

	qInsert := `
		INSERT INTO blocks (height, hash, nonce, difficulty, block_time, merkle_root, last_block_hash, transaction_count, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	err = q.db.QueryRowxContext(ctx, q.db.Rebind(qInsert),
		int64(block.Height),
		block.Hash,
		block.Nonce,
		block.Difficulty,
		block.Timestamp,
		block.MerkleRoot,
		block.LastBlockHash,
		block.TransactionCount,
		int64(store.BlockStatusPending),
	).Scan(&blockID)
	if err != nil {
		return 0, errors.Join(store.ErrFailedToInsertBlock, err)
	}

	return blockID, nil
}
