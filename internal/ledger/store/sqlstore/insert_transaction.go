package sqlstore

import (
	"context"
	"errors"

	"github.com/pandanite/pandascan/internal/ledger/store"
)

func (q *queries) InsertTransaction(ctx context.Context, tx *store.Transaction) (int64, error) {
	qInsert := `
		INSERT INTO transactions (tx_id, block_id, from_account_id, to_account_id, amount, fee, block_time, is_generate, signing_key, signature)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	var id int64
	err := q.db.QueryRowxContext(ctx, q.db.Rebind(qInsert),
		tx.TxID,
		tx.BlockID,
		tx.FromAccountID,
		tx.ToAccountID,
		tx.Amount,
		tx.Fee,
		tx.Timestamp,
		tx.IsGenerate,
		tx.SigningKey,
		tx.Signature,
	).Scan(&id)
	if err != nil {
		return 0, errors.Join(store.ErrFailedToInsertTransaction, err)
	}

	return id, nil
}
