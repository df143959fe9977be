package sqlstore

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/pandanite/pandascan/internal/ledger/store"
)

func (q *queries) GetStats(ctx context.Context) (*store.Stats, error) {
	qStats := `
		SELECT
			(SELECT COALESCE(MAX(height), 0) FROM blocks) AS chain_head,
			(SELECT COUNT(*) FROM blocks) AS block_count,
			(SELECT COUNT(*) FROM transactions) AS transaction_count,
			(SELECT COUNT(*) FROM accounts) AS account_count,
			(SELECT COUNT(*) FROM peers) AS peer_count,
			(SELECT CAST(COALESCE(SUM(balance), 0) AS BIGINT) FROM accounts) AS circulating_value
	`

	var stats store.Stats
	err := sqlx.GetContext(ctx, q.db, &stats, qStats)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}
