package sqlstore

import (
	"context"
	"errors"

	"github.com/pandanite/pandascan/internal/ledger/store"
	"github.com/pandanite/pandascan/internal/tracing"
)

// FinalizeBlock stamps the aggregates of a block and marks it as finalized. Repeating the call
// with the same aggregates leaves the block unchanged apart from processed_at.
func (q *queries) FinalizeBlock(ctx context.Context, blockID int64, aggregates store.BlockAggregates) (err error) {
	ctx, span := q.startTracing(ctx, "FinalizeBlock")
	defer func() {
		tracing.EndTracing(span, err)
	}()

	qUpdate := `
		UPDATE blocks
		SET total_value = ?,
			total_fees = ?,
			mined_by = ?,
			block_reward = ?,
			status = ?,
			processed_at = ?
		WHERE id = ?
	`

	res, err := q.db.ExecContext(ctx, q.db.Rebind(qUpdate),
		aggregates.TotalValue,
		aggregates.TotalFees,
		aggregates.MinedBy,
		aggregates.BlockReward,
		int64(store.BlockStatusFinalized),
		q.now().UTC(),
		blockID,
	)
	if err != nil {
		return errors.Join(store.ErrFailedToFinalizeBlock, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return errors.Join(store.ErrFailedToFinalizeBlock, err)
	}

	if rows == 0 {
		return store.ErrBlockNotFound
	}

	return nil
}
