package sqlstore

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/pandanite/pandascan/internal/ledger/store"
)

//go:embed migrations
var migrationsFS embed.FS

const migrationsTable = "ledger_migrations"

// MigrateUp applies all pending schema migrations of the store's engine.
func (s *SQL) MigrateUp() error {
	m, err := s.newMigrate()
	if err != nil {
		return errors.Join(store.ErrFailedToMigrate, err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Join(store.ErrFailedToMigrate, err)
	}

	return nil
}

func (s *SQL) newMigrate() (*migrate.Migrate, error) {
	switch s.engine {
	case EnginePostgres:
		source, err := iofs.New(migrationsFS, "migrations/postgres")
		if err != nil {
			return nil, err
		}

		driver, err := migratepostgres.WithInstance(s.sqlDB.DB, &migratepostgres.Config{
			MigrationsTable: migrationsTable,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres migration driver: %w", err)
		}

		return migrate.NewWithInstance("iofs", source, "postgres", driver)
	case EngineSqlite, EngineSqliteMemory:
		source, err := iofs.New(migrationsFS, "migrations/sqlite")
		if err != nil {
			return nil, err
		}

		driver, err := migratesqlite.WithInstance(s.sqlDB.DB, &migratesqlite.Config{
			MigrationsTable: migrationsTable,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create sqlite migration driver: %w", err)
		}

		return migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	}

	return nil, errors.Join(store.ErrUnsupportedEngine, fmt.Errorf("engine: %s", s.engine))
}
