package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // nolint: revive // registers the pgx driver
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // nolint: revive // registers the sqlite3 driver
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/pandanite/pandascan/internal/ledger/store"
	"github.com/pandanite/pandascan/internal/tracing"
)

const (
	EnginePostgres     = "postgres"
	EngineSqlite       = "sqlite"
	EngineSqliteMemory = "sqlite_memory"

	postgresDriverName = "pgx"
	sqliteDriverName   = "sqlite3"
)

var (
	_ store.LedgerStore  = (*SQL)(nil)
	_ store.LedgerReader = (*SQL)(nil)
	_ store.BlockWriter  = (*blockTx)(nil)
)

// queries holds the statements shared by the store and the per-block transaction.
type queries struct {
	db                sqlx.ExtContext
	now               func() time.Time
	tracingEnabled    bool
	tracingAttributes []attribute.KeyValue
}

type SQL struct {
	queries
	sqlDB  *sqlx.DB
	engine string
}

func WithNow(nowFunc func() time.Time) func(*SQL) {
	return func(s *SQL) {
		s.now = nowFunc
	}
}

func WithTracer(attr ...attribute.KeyValue) func(*SQL) {
	return func(s *SQL) {
		s.tracingEnabled = true
		if len(attr) > 0 {
			s.tracingAttributes = append(s.tracingAttributes, attr...)
		}
		_, file, _, ok := runtime.Caller(1)
		if ok {
			s.tracingAttributes = append(s.tracingAttributes, attribute.String("file", file))
		}
	}
}

// NewPostgres opens a postgres backed store.
func NewPostgres(dbInfo string, idleConns int, maxOpenConns int, opts ...func(*SQL)) (*SQL, error) {
	db, err := sqlx.Open(postgresDriverName, dbInfo)
	if err != nil {
		return nil, errors.Join(store.ErrFailedToOpenDB, err)
	}

	db.SetMaxIdleConns(idleConns)
	db.SetMaxOpenConns(maxOpenConns)

	return newSQL(db, EnginePostgres, opts...), nil
}

// NewSqlite opens a sqlite backed store. With EngineSqliteMemory the path is ignored and a
// private in-memory database is created.
func NewSqlite(engine string, path string, opts ...func(*SQL)) (*SQL, error) {
	var dsn string
	switch engine {
	case EngineSqliteMemory:
		dsn = fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	case EngineSqlite:
		dsn = fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", path)
	default:
		return nil, errors.Join(store.ErrUnsupportedEngine, fmt.Errorf("engine: %s", engine))
	}

	db, err := sqlx.Open(sqliteDriverName, dsn)
	if err != nil {
		return nil, errors.Join(store.ErrFailedToOpenDB, err)
	}

	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	return newSQL(db, engine, opts...), nil
}

func newSQL(db *sqlx.DB, engine string, opts ...func(*SQL)) *SQL {
	s := &SQL{
		queries: queries{
			db:  db,
			now: time.Now,
		},
		sqlDB:  db,
		engine: engine,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *SQL) Engine() string {
	return s.engine
}

func (s *SQL) Close() error {
	return s.sqlDB.Close()
}

func (s *SQL) Ping(ctx context.Context) error {
	r, err := s.sqlDB.QueryContext(ctx, "SELECT 1;")
	if err != nil {
		return err
	}

	return r.Close()
}

func (q *queries) startTracing(ctx context.Context, spanName string) (context.Context, trace.Span) {
	return tracing.StartTracing(ctx, spanName, q.tracingEnabled, q.tracingAttributes...)
}
