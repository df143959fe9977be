package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/pandanite/pandascan/internal/ledger/store"
)

// ClearLedger deletes all ledger records so that the next sync starts from height 1.
func (s *SQL) ClearLedger(ctx context.Context) (*store.ClearedRows, error) {
	tx, err := s.sqlDB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, errors.Join(store.ErrFailedToBeginTx, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// order follows the foreign keys
	tables := []string{"transactions", "blocks", "accounts", "peers"}
	deleted := make(map[string]int64, len(tables))

	for _, table := range tables {
		res, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			return nil, errors.Join(store.ErrUnableToDeleteRows, fmt.Errorf("table %s: %w", table, err))
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return nil, errors.Join(store.ErrUnableToDeleteRows, err)
		}
		deleted[table] = rows
	}

	err = tx.Commit()
	if err != nil {
		return nil, errors.Join(store.ErrFailedToCommitTx, err)
	}

	return &store.ClearedRows{
		Transactions: deleted["transactions"],
		Blocks:       deleted["blocks"],
		Accounts:     deleted["accounts"],
		Peers:        deleted["peers"],
	}, nil
}
