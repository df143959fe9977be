package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	cmd "github.com/pandanite/pandascan/cmd/pandascan/services"
	"github.com/pandanite/pandascan/config"
	pandascanLogger "github.com/pandanite/pandascan/internal/logger"
	"github.com/pandanite/pandascan/internal/tracing"
	"github.com/pandanite/pandascan/internal/version"
)

const serviceName = "pandascan"

func main() {
	err := run()
	if err != nil {
		log.Fatalf("failed to run pandascan: %v", err)
	}

	os.Exit(0)
}

func run() error {
	configDir, backfill, dumpConfigFile := parseFlags()

	ledgerConfig, err := config.Load(configDir)
	if err != nil {
		return fmt.Errorf("failed to load app config: %w", err)
	}

	if dumpConfigFile != "" {
		return config.DumpConfig(dumpConfigFile)
	}

	logger, err := pandascanLogger.NewLogger(ledgerConfig.LogLevel, ledgerConfig.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to create logger: %v", err)
	}

	hostname, err := os.Hostname()
	if err != nil {
		return fmt.Errorf("failed to get host name: %v", err)
	}

	logger = logger.With(slog.String("host", hostname))

	logger.Info("Starting pandascan", slog.String("version", version.Version), slog.String("commit", version.Commit))

	shutdownFns := make([]func(), 0)

	shutdownCh := make(chan string, 1)

	go func() {
		if ledgerConfig.ProfilerAddr != "" {
			logger.Info(fmt.Sprintf("Starting profiler on http://%s/debug/pprof", ledgerConfig.ProfilerAddr))

			err := http.ListenAndServe(ledgerConfig.ProfilerAddr, nil)
			if err != nil {
				logger.Error("failed to start profiler server", slog.String("err", err.Error()))
			}
		}
	}()

	go func() {
		if ledgerConfig.Prometheus.IsEnabled() {
			logger.Info("Starting prometheus", slog.String("endpoint", ledgerConfig.Prometheus.Endpoint))
			http.Handle(ledgerConfig.Prometheus.Endpoint, promhttp.Handler())
			err := http.ListenAndServe(ledgerConfig.Prometheus.Addr, nil)
			if err != nil {
				logger.Error("failed to start prometheus server", slog.String("err", err.Error()))
			}
		}
	}()

	if ledgerConfig.Tracing.IsEnabled() {
		cleanup, err := tracing.Enable(logger, serviceName, ledgerConfig.Tracing.DialAddr, ledgerConfig.Tracing.Sample)
		if err != nil {
			logger.Error("failed to enable tracing", slog.String("err", err.Error()))
		} else {
			// tracing is shut down last
			defer cleanup()
		}
	}

	// setup signal catching
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)

	if backfill {
		stopCh := make(chan string, 1)
		go func() {
			sig := <-signalChan
			logger.Info("Received shutdown signal", slog.String("reason", sig.String()))
			stopCh <- sig.String()
		}()

		return cmd.RunBackfill(logger, ledgerConfig, stopCh)
	}

	shutdown, err := cmd.StartIndexer(logger, ledgerConfig, shutdownCh)
	if err != nil {
		return fmt.Errorf("failed to start indexer: %v", err)
	}
	shutdownFns = append(shutdownFns, shutdown)

	select {
	case reason := <-shutdownCh:
		logger.Info("Received shutdown signal", slog.String("reason", reason))
	case sig := <-signalChan:
		logger.Info("Received shutdown signal", slog.String("reason", sig.String()))
	}
	appCleanup(logger, shutdownFns)

	return nil
}

func appCleanup(logger *slog.Logger, shutdownFns []func()) {
	logger.Info("cleaning up")
	for _, fn := range shutdownFns {
		fn()
	}
}

func parseFlags() (string, bool, string) {
	backfill := flag.Bool("backfill", false, "sync up to the node height without notifications and exit")
	help := flag.Bool("help", false, "Show help")
	dumpConfigFile := flag.String("dump_config", "", "dump config to specified file and exit")
	configDir := flag.String("config", "", "path to configuration file")

	flag.Parse()

	if *help {
		fmt.Println("usage: pandascan [options]")
		fmt.Println("where options are:")
		fmt.Println("")
		fmt.Println("    -backfill=<true|false>")
		fmt.Println("          sync up to the node height without publishing notifications and exit (default=false)")
		fmt.Println("")
		fmt.Println("    -config=/location")
		fmt.Println("          directory to look for config (default='')")
		fmt.Println("")
		fmt.Println("    -dump_config=/file.yaml")
		fmt.Println("          dump config to specified file and exit (default='')")
		fmt.Println("")
		os.Exit(0)
	}

	return *configDir, *backfill, *dumpConfigFile
}
