package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
)

const syncIntervalDefault = 30 * time.Second

var (
	ErrDraining       = errors.New("scheduler is draining")
	ErrCyclePanicked  = errors.New("sync cycle panicked")
	ErrDrainCancelled = errors.New("drain cancelled before the running cycle finished")
)

// Scheduler runs sync cycles once at start and then on a fixed interval. At most one cycle
// is in flight, a trigger while a cycle runs is dropped.
type Scheduler struct {
	logger   *slog.Logger
	runner   CycleRunner
	interval time.Duration

	guard    *semaphore.Weighted
	running  atomic.Bool
	draining atomic.Bool

	waitGroup *sync.WaitGroup
	cancelAll context.CancelFunc
	ctx       context.Context
}

func WithSyncInterval(d time.Duration) func(*Scheduler) {
	return func(s *Scheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

func NewScheduler(logger *slog.Logger, runner CycleRunner, opts ...func(*Scheduler)) *Scheduler {
	s := &Scheduler{
		logger:    logger.With(slog.String("module", "scheduler")),
		runner:    runner,
		interval:  syncIntervalDefault,
		guard:     semaphore.NewWeighted(1),
		waitGroup: &sync.WaitGroup{},
	}

	for _, opt := range opts {
		opt(s)
	}

	ctx, cancelAll := context.WithCancel(context.Background())
	s.cancelAll = cancelAll
	s.ctx = ctx

	return s
}

// Start triggers a cycle immediately and then on every tick.
func (s *Scheduler) Start() {
	s.waitGroup.Add(1)

	go func() {
		defer s.waitGroup.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.Trigger()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.Trigger()
			}
		}
	}()
}

// Trigger runs one cycle unless a cycle is already in flight or the scheduler is draining.
// It reports whether a cycle was run.
func (s *Scheduler) Trigger() bool {
	if s.draining.Load() {
		s.logger.Debug("draining, cycle not started")
		return false
	}

	if !s.guard.TryAcquire(1) {
		s.logger.Debug("cycle already running, skipping trigger")
		return false
	}
	defer s.guard.Release(1)

	// re-check after acquiring, Drain may have been called in between
	if s.draining.Load() {
		return false
	}

	result, err := s.runCycle(s.ctx, false)
	if err != nil {
		s.logger.Error("sync cycle failed", slog.Uint64("local_head", result.LocalHead), slog.Int("processed", result.Processed), slog.String("err", err.Error()))
		return true
	}

	s.logger.Debug("sync cycle finished",
		slog.Int("processed", result.Processed),
		slog.Uint64("remote_height", result.RemoteHeight),
		slog.Bool("caught_up", result.CaughtUp),
	)

	return true
}

// Backfill runs cycles without publishing events until the ledger reached the node's height.
func (s *Scheduler) Backfill(ctx context.Context) (int, error) {
	err := s.guard.Acquire(ctx, 1)
	if err != nil {
		return 0, err
	}
	defer s.guard.Release(1)

	total := 0
	for {
		if s.draining.Load() {
			return total, ErrDraining
		}

		result, err := s.runCycle(ctx, true)
		total += result.Processed
		if err != nil {
			return total, err
		}

		s.logger.Info("backfill progress", slog.Int("processed", total), slog.Uint64("remote_height", result.RemoteHeight))

		if result.CaughtUp || result.Processed == 0 {
			return total, nil
		}
	}
}

func (s *Scheduler) runCycle(ctx context.Context, backfill bool) (result CycleResult, err error) {
	s.running.Store(true)
	defer s.running.Store(false)

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Recovered from panic", "panic", r, slog.String("stacktrace", string(debug.Stack())))
			err = errors.Join(ErrCyclePanicked, fmt.Errorf("%v", r))
		}
	}()

	return s.runner.RunCycle(ctx, backfill)
}

// IsRunning reports whether a cycle is in flight.
func (s *Scheduler) IsRunning() bool {
	return s.running.Load()
}

func (s *Scheduler) IsDraining() bool {
	return s.draining.Load()
}

func (s *Scheduler) LastActivity() time.Time {
	return s.runner.LastActivity()
}

// Drain prevents new cycles and waits until a running cycle finished or ctx is done.
// A running cycle is not interrupted.
func (s *Scheduler) Drain(ctx context.Context) error {
	s.draining.Store(true)

	err := s.guard.Acquire(ctx, 1)
	if err != nil {
		return errors.Join(ErrDrainCancelled, err)
	}
	// the guard stays acquired so that no cycle can start anymore

	s.logger.Info("drained")

	return nil
}

func (s *Scheduler) Shutdown() {
	s.cancelAll()
	s.waitGroup.Wait()
}
