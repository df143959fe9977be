package cmd

/* Indexer Service */
/*

This service keeps a local ledger in sync with a Pandanite node.

Key components:
- ledger store: PostgreSQL or SQLite storage of blocks, accounts, transactions and peers
- node client: fetches the block count, blocks and peer information over HTTP
- notifier: publishes new blocks, transactions and accounts to redis or nats
- engine: applies one sync cycle, block by block, each block in its own database transaction
- peer discovery: refreshes the peer list after each successful cycle
- scheduler: runs a cycle at start and then on a fixed interval, never two at once
- gRPC health server: readiness reflects the store, liveness reflects a stalled cycle

Graceful Shutdown: no new cycle is started once shutdown begins. A running cycle is allowed
to finish before the components are disposed.

*/

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pandanite/pandascan/config"
	"github.com/pandanite/pandascan/internal/grpc_utils"
	"github.com/pandanite/pandascan/internal/ledger"
	"github.com/pandanite/pandascan/internal/ledger/store/sqlstore"
	"github.com/pandanite/pandascan/internal/mq"
	"github.com/pandanite/pandascan/internal/node_client"
)

// StartIndexer starts the periodic sync. The returned function drains the scheduler and disposes all components.
func StartIndexer(logger *slog.Logger, ledgerConfig *config.LedgerConfig, shutdownCh chan string) (func(), error) {
	logger = logger.With(slog.String("service", "indexer"))
	logger.Info("Starting")

	cfg := ledgerConfig.Indexer

	var (
		ledgerStore  *sqlstore.SQL
		mqClient     mq.MessageQueueClient
		engine       *ledger.Engine
		scheduler    *ledger.Scheduler
		healthServer *grpc_utils.GrpcServer
		err          error
	)

	stopFn := func() {
		logger.Info("Shutting down indexer")
		disposeIndexer(logger, cfg, scheduler, healthServer, engine, mqClient, ledgerStore)
		logger.Info("Shutdown indexer complete")
	}

	ledgerStore, err = NewLedgerStore(context.Background(), logger, ledgerConfig.Db, ledgerConfig.Tracing)
	if err != nil {
		return nil, fmt.Errorf("failed to create ledger store: %v", err)
	}

	nodeClient, err := newNodeClient(logger, ledgerConfig)
	if err != nil {
		stopFn()
		return nil, err
	}

	clientClosedCh := make(chan struct{}, 1)

	mqClient, err = mq.NewMqClient(context.Background(), logger, ledgerConfig.Notifications, ledgerConfig.Tracing, mq.WithClientClosedChannel(clientClosedCh))
	if err != nil {
		stopFn()
		return nil, fmt.Errorf("failed to create message queue client: %v", err)
	}

	go func() {
		<-clientClosedCh
		logger.Warn("message queue client closed")
		shutdownCh <- "message queue client closed"
	}()

	engine, err = newEngine(logger, ledgerConfig, ledgerStore, nodeClient, mqClient)
	if err != nil {
		stopFn()
		return nil, err
	}

	if ledgerConfig.Prometheus.IsEnabled() {
		err = engine.StartCollectStats()
		if err != nil {
			stopFn()
			return nil, fmt.Errorf("failed to start collecting stats: %v", err)
		}
	}

	scheduler = ledger.NewScheduler(logger, engine, ledger.WithSyncInterval(cfg.SyncInterval))

	if cfg.HealthServerDialAddr != "" {
		health := ledger.NewHealthServer(logger, ledgerStore, scheduler, ledger.WithMaxStallDuration(cfg.MaxStallDuration))

		serverCfg := grpc_utils.ServerConfig{
			PrometheusEnabled: ledgerConfig.Prometheus.IsEnabled(),
			TracingConfig:     ledgerConfig.Tracing,
			Name:              "indexer",
		}

		healthServer, err = grpc_utils.ServeNewHealthServer(logger, health, cfg.HealthServerDialAddr, serverCfg)
		if err != nil {
			stopFn()
			return nil, fmt.Errorf("failed to start health server: %v", err)
		}
	}

	scheduler.Start()

	logger.Info("Ready to work")
	return stopFn, nil
}

// RunBackfill syncs up to the node's height without publishing any notification and returns.
// A value on stopCh lets the running cycle finish and ends the backfill afterwards.
func RunBackfill(logger *slog.Logger, ledgerConfig *config.LedgerConfig, stopCh <-chan string) error {
	logger = logger.With(slog.String("service", "backfill"))
	logger.Info("Starting")

	ledgerStore, err := NewLedgerStore(context.Background(), logger, ledgerConfig.Db, ledgerConfig.Tracing)
	if err != nil {
		return fmt.Errorf("failed to create ledger store: %v", err)
	}
	defer func() {
		_ = ledgerStore.Close()
	}()

	nodeClient, err := newNodeClient(logger, ledgerConfig)
	if err != nil {
		return err
	}

	engine, err := newEngine(logger, ledgerConfig, ledgerStore, nodeClient, nil)
	if err != nil {
		return err
	}
	defer engine.Shutdown()

	scheduler := ledger.NewScheduler(logger, engine)
	defer scheduler.Shutdown()

	type backfillResult struct {
		processed int
		err       error
	}

	doneCh := make(chan backfillResult, 1)
	go func() {
		processed, err := scheduler.Backfill(context.Background())
		doneCh <- backfillResult{processed: processed, err: err}
	}()

	var result backfillResult
	select {
	case result = <-doneCh:
	case reason := <-stopCh:
		logger.Info("Stopping backfill", slog.String("reason", reason))
		drainErr := scheduler.Drain(context.Background())
		if drainErr != nil {
			logger.Error("failed to drain", slog.String("err", drainErr.Error()))
		}
		result = <-doneCh
	}

	if result.err != nil && !errors.Is(result.err, ledger.ErrDraining) {
		return fmt.Errorf("backfill failed after %d blocks: %w", result.processed, result.err)
	}

	logger.Info("Backfill complete", slog.Int("blocks", result.processed))

	return nil
}

func newNodeClient(logger *slog.Logger, ledgerConfig *config.LedgerConfig) (*node_client.NodeClient, error) {
	cfg := ledgerConfig.Node

	opts := []func(*node_client.NodeClient){
		node_client.WithLogger(logger),
		node_client.WithRetries(cfg.Retries, cfg.RetryInterval),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, node_client.WithTimeout(cfg.Timeout))
	}
	if ledgerConfig.Tracing.IsEnabled() {
		opts = append(opts, node_client.WithTracer())
	}

	client, err := node_client.New(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create node client: %v", err)
	}

	return client, nil
}

func newEngine(logger *slog.Logger, ledgerConfig *config.LedgerConfig, ledgerStore *sqlstore.SQL, client ledger.ChainClient, mqClient mq.MessageQueueClient) (*ledger.Engine, error) {
	cfg := ledgerConfig.Indexer

	opts := []func(*ledger.Engine){
		ledger.WithKnownAccounts(ledgerConfig.KnownAccountLabels()),
		ledger.WithMaxBlocksPerCycle(cfg.MaxBlocksPerCycle),
		ledger.WithStatCollectionInterval(cfg.StatsInterval),
	}

	if mqClient != nil {
		prefix := ledger.DefaultChannelPrefix
		if ledgerConfig.Notifications != nil && ledgerConfig.Notifications.ChannelPrefix != "" {
			prefix = ledgerConfig.Notifications.ChannelPrefix
		}
		opts = append(opts, ledger.WithNotifier(ledger.NewNotifier(logger, mqClient, prefix)))
	}

	if ledgerConfig.PeerDiscovery != nil && ledgerConfig.PeerDiscovery.Enabled {
		pd := ledger.NewPeerDiscovery(logger, client, ledgerStore, ledger.WithQuarantine(ledgerConfig.PeerDiscovery.Quarantine))
		opts = append(opts, ledger.WithPeerDiscovery(pd))
	}

	if ledgerConfig.Tracing.IsEnabled() {
		opts = append(opts, ledger.WithTracer())
	}

	engine, err := ledger.NewEngine(logger, ledgerStore, client, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %v", err)
	}

	return engine, nil
}

func disposeIndexer(l *slog.Logger, cfg *config.IndexerConfig, scheduler *ledger.Scheduler, healthServer *grpc_utils.GrpcServer,
	engine *ledger.Engine, mqClient mq.MessageQueueClient, ledgerStore *sqlstore.SQL) {
	// dispose the dependencies in the correct order:
	// 1. scheduler - let a running cycle finish, start no new one
	// 2. health server
	// 3. engine - stop the stats collection
	// 4. message queue client - the last notifications are already sent
	// 5. store

	if scheduler != nil {
		ctx := context.Background()
		if cfg.DrainTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.DrainTimeout)
			defer cancel()
		}

		err := scheduler.Drain(ctx)
		if err != nil {
			l.Error("failed to drain scheduler", slog.String("err", err.Error()))
		}
		scheduler.Shutdown()
	}
	if healthServer != nil {
		healthServer.GracefulStop()
	}
	if engine != nil {
		engine.Shutdown()
	}
	if mqClient != nil {
		mqClient.Shutdown()
	}
	if ledgerStore != nil {
		err := ledgerStore.Close()
		if err != nil {
			l.Error("failed to close store", slog.String("err", err.Error()))
		}
	}
}
