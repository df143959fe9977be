package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/pandanite/pandascan/config"
	"github.com/pandanite/pandascan/internal/ledger/store/sqlstore"
)

const (
	storePingInterval   = 2 * time.Second
	storePingMaxRetries = 10
)

// NewLedgerStore opens the store selected by the db mode and waits until it is reachable.
// Migrations run when auto migrate is enabled.
func NewLedgerStore(ctx context.Context, logger *slog.Logger, dbConfig *config.DbConfig, tracingConfig *config.TracingConfig) (s *sqlstore.SQL, err error) {
	var opts []func(*sqlstore.SQL)
	if tracingConfig.IsEnabled() {
		opts = append(opts, sqlstore.WithTracer())
	}

	switch dbConfig.Mode {
	case config.DbModePostgres:
		cfg := dbConfig.Postgres

		dbInfo := fmt.Sprintf(
			"user=%s password=%s dbname=%s host=%s port=%d sslmode=%s",
			cfg.User, cfg.Password, cfg.Name, cfg.Host, cfg.Port, cfg.SslMode,
		)
		s, err = sqlstore.NewPostgres(dbInfo, cfg.MaxIdleConns, cfg.MaxOpenConns, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres DB: %v", err)
		}
	case config.DbModeSqlite:
		s, err = sqlstore.NewSqlite(sqlstore.EngineSqlite, dbConfig.Sqlite.Path, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite DB: %v", err)
		}
	case config.DbModeSqliteMemory:
		s, err = sqlstore.NewSqlite(sqlstore.EngineSqliteMemory, "", opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite DB: %v", err)
		}
	default:
		return nil, fmt.Errorf("db mode %s is invalid", dbConfig.Mode)
	}

	err = waitForStore(ctx, logger, s)
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to reach DB: %v", err)
	}

	if dbConfig.AutoMigrate {
		err = s.MigrateUp()
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("failed to migrate DB: %v", err)
		}
	}

	return s, nil
}

// waitForStore pings the store until it answers. A database container starting next to the
// indexer usually needs a few seconds.
func waitForStore(ctx context.Context, logger *slog.Logger, s *sqlstore.SQL) error {
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(storePingInterval), storePingMaxRetries), ctx)

	return backoff.RetryNotify(func() error {
		return s.Ping(ctx)
	}, policy, func(err error, nextTry time.Duration) {
		logger.Warn("store not reachable", slog.String("next try", nextTry.String()), slog.String("err", err.Error()))
	})
}
