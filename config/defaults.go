package config

import (
	"time"
)

func getDefaultLedgerConfig() *LedgerConfig {
	return &LedgerConfig{
		LogLevel:      "DEBUG",
		LogFormat:     "text",
		ProfilerAddr:  "",
		Prometheus:    getDefaultPrometheusConfig(),
		Tracing:       getDefaultTracingConfig(),
		Node:          getDefaultNodeConfig(),
		Indexer:       getDefaultIndexerConfig(),
		PeerDiscovery: getDefaultPeerDiscoveryConfig(),
		Db:            getDefaultDbConfig(),
		Notifications: getDefaultNotificationsConfig(),
		KnownAccounts: getDefaultKnownAccounts(),
	}
}

func getDefaultPrometheusConfig() *PrometheusConfig {
	return &PrometheusConfig{
		Enabled:  false,
		Endpoint: "/metrics",
		Addr:     ":2112",
	}
}

func getDefaultTracingConfig() *TracingConfig {
	return &TracingConfig{
		Enabled:  false,
		DialAddr: "http://localhost:4317",
		Sample:   100,
	}
}

func getDefaultNodeConfig() *NodeConfig {
	return &NodeConfig{
		URL:           "http://localhost:3000",
		Timeout:       10 * time.Second,
		Retries:       0,
		RetryInterval: 2 * time.Second,
	}
}

func getDefaultIndexerConfig() *IndexerConfig {
	return &IndexerConfig{
		SyncInterval:         30 * time.Second,
		MaxBlocksPerCycle:    25000,
		HealthServerDialAddr: "localhost:8006",
		MaxStallDuration:     10 * time.Minute,
		StatsInterval:        60 * time.Second,
		DrainTimeout:         0,
	}
}

func getDefaultPeerDiscoveryConfig() *PeerDiscoveryConfig {
	return &PeerDiscoveryConfig{
		Enabled:    true,
		Quarantine: 0,
	}
}

func getDefaultDbConfig() *DbConfig {
	return &DbConfig{
		Mode:        DbModePostgres,
		AutoMigrate: true,
		Postgres: &PostgresConfig{
			Name:         "pandascan",
			User:         "pandascan",
			Password:     "pandascan",
			Host:         "localhost",
			Port:         5432,
			MaxIdleConns: 10,
			MaxOpenConns: 80,
			SslMode:      "disable",
		},
		Sqlite: &SqliteConfig{
			Path: "./data/pandascan.db",
		},
	}
}

func getDefaultNotificationsConfig() *NotificationsConfig {
	return &NotificationsConfig{
		Engine:        NotificationEngineRedis,
		ChannelPrefix: "pandascan",
		Redis: &RedisConfig{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		},
		Nats: &NatsConfig{
			URL: "nats://localhost:4222",
		},
	}
}

func getDefaultKnownAccounts() []KnownAccount {
	return []KnownAccount{
		{Address: "00787200CD9DD289463459E2030957D75203115EDF26902D9E", Label: "XeggeX"},
		{Address: "00BA78D020098E1CBBED9607ADAA3FD590EAD047848A6CD3E0", Label: "Development Fund"},
		{Address: "00B24407B0E9165733AD8C21C3A4E352593FE897889D89DADA", Label: "TradeOgre"},
		{Address: "00E58C2296947E3AABAE4E9F11F091AC6CE1DDE296C7CCC7EF", Label: "Exbitron"},
	}
}
