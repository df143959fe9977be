package sqlstore

import (
	"context"
	"errors"

	"github.com/pandanite/pandascan/internal/ledger/store"
)

func (q *queries) InsertAccount(ctx context.Context, account *store.Account) (int64, error) {
	qInsert := `
		INSERT INTO accounts (address, public_key, balance, first_seen_at, last_seen_at, tx_count, label)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	var id int64
	err := q.db.QueryRowxContext(ctx, q.db.Rebind(qInsert),
		account.Address,
		account.PublicKey,
		account.Balance,
		account.FirstSeenAt,
		account.LastSeenAt,
		account.TxCount,
		account.Label,
	).Scan(&id)
	if err != nil {
		return 0, errors.Join(store.ErrFailedToInsertAccount, err)
	}

	return id, nil
}
