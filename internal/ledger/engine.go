package ledger

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/pandanite/pandascan/internal/ledger/store"
	"github.com/pandanite/pandascan/internal/tracing"
)

const (
	maxBlocksPerCycleDefault      = 25000
	statCollectionIntervalDefault = 60 * time.Second
)

var ErrEngineMisconfigured = errors.New("engine is missing a required dependency")

// CycleResult summarizes one bounded run of the sync loop.
type CycleResult struct {
	Processed    int
	LocalHead    uint64
	RemoteHeight uint64
	CaughtUp     bool
}

// Engine syncs the ledger with the remote node, one block at a time in height order.
type Engine struct {
	logger        *slog.Logger
	store         store.LedgerStore
	client        ChainClient
	notifier      *Notifier
	accountant    *Accountant
	peerDiscovery *PeerDiscovery

	maxBlocksPerCycle      int
	statCollectionInterval time.Duration
	now                    func() time.Time
	lastActivity           atomic.Int64
	stats                  *engineStats

	tracingEnabled    bool
	tracingAttributes []attribute.KeyValue

	waitGroup *sync.WaitGroup
	cancelAll context.CancelFunc
	ctx       context.Context
}

func NewEngine(logger *slog.Logger, ledgerStore store.LedgerStore, client ChainClient, opts ...func(*Engine)) (*Engine, error) {
	if ledgerStore == nil || client == nil {
		return nil, ErrEngineMisconfigured
	}

	e := &Engine{
		logger:                 logger.With(slog.String("module", "engine")),
		store:                  ledgerStore,
		client:                 client,
		accountant:             NewAccountant(nil),
		maxBlocksPerCycle:      maxBlocksPerCycleDefault,
		statCollectionInterval: statCollectionIntervalDefault,
		now:                    time.Now,
		stats:                  newEngineStats(),
		waitGroup:              &sync.WaitGroup{},
	}

	for _, opt := range opts {
		opt(e)
	}

	ctx, cancelAll := context.WithCancel(context.Background())
	e.cancelAll = cancelAll
	e.ctx = ctx

	e.touch()

	return e, nil
}

func (e *Engine) touch() {
	e.lastActivity.Store(e.now().UnixNano())
}

// LastActivity is refreshed when a cycle starts and after every processed block.
func (e *Engine) LastActivity() time.Time {
	return time.Unix(0, e.lastActivity.Load())
}

// RunCycle processes blocks from the persisted head up to the node's height, at most
// maxBlocksPerCycle of them. In backfill mode no events are published.
func (e *Engine) RunCycle(ctx context.Context, backfill bool) (result CycleResult, err error) {
	ctx, span := tracing.StartTracing(ctx, "Engine_RunCycle", e.tracingEnabled, append(e.tracingAttributes, attribute.Bool("backfill", backfill))...)
	start := e.now()
	defer func() {
		e.stats.cycleDuration.Observe(e.now().Sub(start).Seconds())
		if err != nil {
			e.stats.cycleFailures.Inc()
		}
		tracing.EndTracing(span, err)
	}()

	e.touch()

	head, err := e.store.GetChainHead(ctx)
	if err != nil {
		return result, err
	}
	result.LocalHead = head + 1
	e.stats.ledgerHeight.Set(float64(head))

	remote, err := e.client.GetBlockCount(ctx)
	if err != nil {
		e.logger.Error("failed to get block count", slog.String("err", err.Error()))
		return result, err
	}
	result.RemoteHeight = remote
	e.stats.nodeHeight.Set(float64(remote))

	for height := result.LocalHead; height <= remote && result.Processed < e.maxBlocksPerCycle; height++ {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		pb, err := e.processBlock(ctx, height)
		if err != nil {
			e.logger.Error("failed to process block", slog.Uint64("height", height), slog.String("err", err.Error()))
			return result, err
		}

		result.Processed++
		e.touch()
		e.stats.blocksProcessed.Inc()
		e.stats.transactionsProcessed.Add(float64(len(pb.txIDs)))
		e.stats.ledgerHeight.Set(float64(height))

		if !backfill {
			e.notifier.PublishAll(ctx, pb.events()...)
		}

		if result.Processed%1000 == 0 {
			e.logger.Info("sync progress", slog.Uint64("height", height), slog.Uint64("remote_height", remote))
		}
	}

	result.CaughtUp = result.LocalHead+uint64(result.Processed) > remote

	if result.Processed > 0 {
		e.logger.Info("blocks processed",
			slog.Int("count", result.Processed),
			slog.Uint64("from", result.LocalHead),
			slog.Uint64("to", result.LocalHead+uint64(result.Processed)-1),
			slog.Bool("backfill", backfill),
		)

		if !backfill {
			e.notifier.PublishAll(ctx, StatsUpdateEvent())
		}
	}

	if e.peerDiscovery != nil {
		_, err := e.peerDiscovery.Discover(ctx)
		if err != nil {
			e.logger.Error("peer discovery failed", slog.String("err", err.Error()))
		}
	}

	return result, nil
}

func (e *Engine) Shutdown() {
	e.cancelAll()
	e.waitGroup.Wait()
}
