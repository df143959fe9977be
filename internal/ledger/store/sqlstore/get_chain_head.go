package sqlstore

import (
	"context"
)

// GetChainHead returns the height of the highest persisted block, or 0 for an empty ledger.
func (q *queries) GetChainHead(ctx context.Context) (uint64, error) {
	var height uint64
	err := q.db.QueryRowxContext(ctx, `SELECT COALESCE(MAX(height), 0) FROM blocks`).Scan(&height)
	if err != nil {
		return 0, err
	}

	return height, nil
}
