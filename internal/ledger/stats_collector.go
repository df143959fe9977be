package ledger

import (
	"errors"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var ErrFailedToRegisterStats = errors.New("failed to register stats collector")

type engineStats struct {
	mu                    sync.RWMutex
	ledgerHeight          prometheus.Gauge
	nodeHeight            prometheus.Gauge
	accounts              prometheus.Gauge
	transactions          prometheus.Gauge
	peers                 prometheus.Gauge
	circulatingValue      prometheus.Gauge
	blocksProcessed       prometheus.Counter
	transactionsProcessed prometheus.Counter
	cycleFailures         prometheus.Counter
	cycleDuration         prometheus.Histogram
}

func newEngineStats() *engineStats {
	return &engineStats{
		ledgerHeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pandascan_ledger_height",
			Help: "Height of the highest block in the ledger",
		}),
		nodeHeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pandascan_node_height",
			Help: "Block count reported by the remote node",
		}),
		accounts: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pandascan_accounts_count",
			Help: "Number of accounts in the ledger",
		}),
		transactions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pandascan_transactions_count",
			Help: "Number of transactions in the ledger",
		}),
		peers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pandascan_peers_count",
			Help: "Number of peers ever discovered",
		}),
		circulatingValue: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pandascan_circulating_value",
			Help: "Sum of all account balances in the smallest currency unit",
		}),
		blocksProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pandascan_blocks_processed_total",
			Help: "Number of blocks processed since start",
		}),
		transactionsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pandascan_transactions_processed_total",
			Help: "Number of transactions processed since start",
		}),
		cycleFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pandascan_cycle_failures_total",
			Help: "Number of sync cycles aborted by an error",
		}),
		cycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pandascan_cycle_duration_seconds",
			Help:    "Duration of sync cycles",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 10, 30, 60, 300, 900},
		}),
	}
}

func (s *engineStats) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		s.ledgerHeight,
		s.nodeHeight,
		s.accounts,
		s.transactions,
		s.peers,
		s.circulatingValue,
		s.blocksProcessed,
		s.transactionsProcessed,
		s.cycleFailures,
		s.cycleDuration,
	}
}

func (e *Engine) StartCollectStats() error {
	err := registerStats(e.stats.collectors()...)
	if err != nil {
		return err
	}

	ticker := time.NewTicker(e.statCollectionInterval)

	e.waitGroup.Add(1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				e.logger.Error("Recovered from panic", "panic", r, slog.String("stacktrace", string(debug.Stack())))
			}
		}()
		defer func() {
			ticker.Stop()
			unregisterStats(e.stats.collectors()...)
			e.waitGroup.Done()
		}()

		for {
			select {
			case <-e.ctx.Done():
				return
			case <-ticker.C:
				collectedStats, err := e.store.GetStats(e.ctx)
				if err != nil {
					e.logger.Error("failed to get stats", slog.String("err", err.Error()))
					continue
				}

				e.stats.mu.Lock()
				e.stats.accounts.Set(float64(collectedStats.AccountCount))
				e.stats.transactions.Set(float64(collectedStats.TransactionCount))
				e.stats.peers.Set(float64(collectedStats.PeerCount))
				e.stats.circulatingValue.Set(float64(collectedStats.CirculatingValue))
				e.stats.mu.Unlock()
			}
		}
	}()

	return nil
}

func registerStats(cs ...prometheus.Collector) error {
	for _, c := range cs {
		err := prometheus.Register(c)
		if err != nil {
			return errors.Join(ErrFailedToRegisterStats, err)
		}
	}

	return nil
}

func unregisterStats(cs ...prometheus.Collector) {
	for _, c := range cs {
		_ = prometheus.Unregister(c)
	}
}
