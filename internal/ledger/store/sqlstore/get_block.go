package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/pandanite/pandascan/internal/ledger/store"
)

const selectBlock = `
	SELECT
		b.id,
		b.height,
		b.hash,
		b.nonce,
		b.difficulty,
		b.block_time,
		b.merkle_root,
		b.last_block_hash,
		b.mined_by,
		COALESCE(a.address, '') AS mined_by_address,
		b.transaction_count,
		b.total_value,
		b.total_fees,
		b.block_reward,
		b.status,
		b.processed_at
	FROM blocks b
	LEFT JOIN accounts a ON a.id = b.mined_by
`

func (q *queries) GetBlockByHeight(ctx context.Context, height uint64) (*store.Block, error) {
	return q.getBlock(ctx, selectBlock+` WHERE b.height = ?`, int64(height))
}

func (q *queries) GetBlockByHash(ctx context.Context, hash string) (*store.Block, error) {
	return q.getBlock(ctx, selectBlock+` WHERE b.hash = ?`, hash)
}

func (q *queries) getBlock(ctx context.Context, query string, arg any) (*store.Block, error) {
	var block store.Block
	err := sqlx.GetContext(ctx, q.db, &block, q.db.Rebind(query), arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrBlockNotFound
		}
		return nil, err
	}

	return &block, nil
}

func (q *queries) GetLatestBlocks(ctx context.Context, offset int, limit int) ([]*store.Block, error) {
	blocks := make([]*store.Block, 0, limit)
	err := sqlx.SelectContext(ctx, q.db, &blocks, q.db.Rebind(selectBlock+` ORDER BY b.height DESC LIMIT ? OFFSET ?`), limit, offset)
	if err != nil {
		return nil, errors.Join(store.ErrFailedToGetRows, err)
	}

	return blocks, nil
}
