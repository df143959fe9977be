package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/pandanite/pandascan/internal/ledger/store"
)

const selectTransaction = `
	SELECT
		t.id,
		t.tx_id,
		t.block_id,
		b.height AS block_height,
		t.from_account_id,
		COALESCE(fa.address, '') AS from_address,
		t.to_account_id,
		ta.address AS to_address,
		t.amount,
		t.fee,
		t.block_time,
		t.is_generate,
		t.signing_key,
		t.signature
	FROM transactions t
	JOIN blocks b ON b.id = t.block_id
	JOIN accounts ta ON ta.id = t.to_account_id
	LEFT JOIN accounts fa ON fa.id = t.from_account_id
`

func (q *queries) GetTransaction(ctx context.Context, txID string) (*store.Transaction, error) {
	var tx store.Transaction
	err := sqlx.GetContext(ctx, q.db, &tx, q.db.Rebind(selectTransaction+` WHERE t.tx_id = ?`), txID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTransactionNotFound
		}
		return nil, err
	}

	return &tx, nil
}

// GetAccountTransactions returns the transactions sent or received by an account, newest first.
func (q *queries) GetAccountTransactions(ctx context.Context, address string, offset int, limit int) ([]*store.Transaction, error) {
	account, err := q.GetAccount(ctx, address)
	if err != nil {
		return nil, err
	}

	query := selectTransaction + `
		WHERE t.from_account_id = ? OR t.to_account_id = ?
		ORDER BY b.height DESC, t.id DESC
		LIMIT ? OFFSET ?
	`

	txs := make([]*store.Transaction, 0, limit)
	err = sqlx.SelectContext(ctx, q.db, &txs, q.db.Rebind(query), account.ID, account.ID, limit, offset)
	if err != nil {
		return nil, errors.Join(store.ErrFailedToGetRows, err)
	}

	return txs, nil
}
