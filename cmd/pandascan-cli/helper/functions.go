package helper

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"

	cmd "github.com/pandanite/pandascan/cmd/pandascan/services"
	"github.com/pandanite/pandascan/config"
	"github.com/pandanite/pandascan/internal/ledger/store"
	"github.com/pandanite/pandascan/internal/logger"
)

// amountExponent is the number of decimal places of one coin. The ledger stores amounts in the smallest unit.
const amountExponent = -4

var (
	ConfigDir string
	LogLevel  string
)

func GetLogger() *slog.Logger {
	l, err := logger.NewLogger(LogLevel, "tint", logger.WithWriter(os.Stderr))
	if err != nil {
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	return l
}

// OpenReader opens the ledger store configured for the indexer.
func OpenReader(ctx context.Context) (store.LedgerReader, error) {
	cfg, err := config.Load(ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	s, err := cmd.NewLedgerStore(ctx, GetLogger(), cfg.Db, nil)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// FormatAmount renders an amount in the smallest unit with four decimals.
func FormatAmount(amount int64) string {
	return decimal.New(amount, amountExponent).StringFixed(-amountExponent)
}

func FormatUnixTime(ts int64) string {
	if ts == 0 {
		return "-"
	}

	return time.Unix(ts, 0).UTC().Format(time.DateTime)
}

func NewTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)

	return t
}
