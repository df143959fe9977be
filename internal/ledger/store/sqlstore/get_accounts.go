package sqlstore

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/pandanite/pandascan/internal/ledger/store"
)

func (q *queries) GetRichestAccounts(ctx context.Context, offset int, limit int) ([]*store.Account, error) {
	qSelect := `
		SELECT id, address, public_key, balance, first_seen_at, last_seen_at, tx_count, label
		FROM accounts
		ORDER BY balance DESC, id
		LIMIT ? OFFSET ?
	`

	accounts := make([]*store.Account, 0, limit)
	err := sqlx.SelectContext(ctx, q.db, &accounts, q.db.Rebind(qSelect), limit, offset)
	if err != nil {
		return nil, errors.Join(store.ErrFailedToGetRows, err)
	}

	return accounts, nil
}
