package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/pandanite/pandascan/internal/ledger/store"
)

func (q *queries) GetAccount(ctx context.Context, address string) (*store.Account, error) {
	qSelect := `
		SELECT id, address, public_key, balance, first_seen_at, last_seen_at, tx_count, label
		FROM accounts
		WHERE address = ?
	`

	var account store.Account
	err := sqlx.GetContext(ctx, q.db, &account, q.db.Rebind(qSelect), address)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAccountNotFound
		}
		return nil, err
	}

	return &account, nil
}
