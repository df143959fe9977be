package sqlstore

import (
	"context"
	"errors"

	"github.com/pandanite/pandascan/internal/ledger/store"
	"github.com/pandanite/pandascan/internal/tracing"
)

type blockTx struct {
	queries
}

// WithBlockTx runs fn inside a database transaction. The transaction is committed only if fn
// returns nil and rolled back otherwise, including when fn panics.
func (s *SQL) WithBlockTx(ctx context.Context, fn func(ctx context.Context, w store.BlockWriter) error) (err error) {
	ctx, span := s.startTracing(ctx, "WithBlockTx")
	defer func() {
		tracing.EndTracing(span, err)
	}()

	tx, err := s.sqlDB.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Join(store.ErrFailedToBeginTx, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	w := &blockTx{
		queries: queries{
			db:                tx,
			now:               s.now,
			tracingEnabled:    s.tracingEnabled,
			tracingAttributes: s.tracingAttributes,
		},
	}

	err = fn(ctx, w)
	if err != nil {
		return err
	}

	err = tx.Commit()
	if err != nil {
		return errors.Join(store.ErrFailedToCommitTx, err)
	}

	return nil
}
