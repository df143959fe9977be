package sqlstore

import (
	"context"
	"errors"

	"github.com/pandanite/pandascan/internal/ledger/store"
)

// UpdateAccount increments balance and tx count of an account by the given delta.
func (q *queries) UpdateAccount(ctx context.Context, accountID int64, delta store.AccountDelta) error {
	qUpdate := `
		UPDATE accounts
		SET balance = balance + ?,
			tx_count = tx_count + ?,
			last_seen_at = COALESCE(NULLIF(CAST(? AS BIGINT), 0), last_seen_at),
			public_key = COALESCE(NULLIF(?, ''), public_key),
			label = CASE WHEN label = '' THEN ? ELSE label END
		WHERE id = ?
	`

	res, err := q.db.ExecContext(ctx, q.db.Rebind(qUpdate),
		delta.Balance,
		delta.TxCount,
		delta.LastSeenAt,
		delta.PublicKey,
		delta.Label,
		accountID,
	)
	if err != nil {
		return errors.Join(store.ErrFailedToUpdateAccount, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return errors.Join(store.ErrFailedToUpdateAccount, err)
	}

	if rows == 0 {
		return store.ErrAccountNotFound
	}

	return nil
}
