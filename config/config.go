package config

import (
	"time"
)

const (
	DbModePostgres     = "postgres"
	DbModeSqlite       = "sqlite"
	DbModeSqliteMemory = "sqlite_memory"

	NotificationEngineRedis = "redis"
	NotificationEngineNats  = "nats"
	NotificationEngineNone  = "none"
)

type LedgerConfig struct {
	LogLevel      string               `json:"logLevel" mapstructure:"logLevel"`
	LogFormat     string               `json:"logFormat" mapstructure:"logFormat"`
	ProfilerAddr  string               `json:"profilerAddr" mapstructure:"profilerAddr"`
	Prometheus    *PrometheusConfig    `json:"prometheus" mapstructure:"prometheus"`
	Tracing       *TracingConfig       `json:"tracing" mapstructure:"tracing"`
	Node          *NodeConfig          `json:"node" mapstructure:"node"`
	Indexer       *IndexerConfig       `json:"indexer" mapstructure:"indexer"`
	PeerDiscovery *PeerDiscoveryConfig `json:"peerDiscovery" mapstructure:"peerDiscovery"`
	Db            *DbConfig            `json:"db" mapstructure:"db"`
	Notifications *NotificationsConfig `json:"notifications" mapstructure:"notifications"`
	KnownAccounts []KnownAccount       `json:"knownAccounts" mapstructure:"knownAccounts"`
}

type PrometheusConfig struct {
	Enabled  bool   `json:"enabled" mapstructure:"enabled"`
	Endpoint string `json:"endpoint" mapstructure:"endpoint"`
	Addr     string `json:"addr" mapstructure:"addr"`
}

func (p *PrometheusConfig) IsEnabled() bool {
	return p != nil && p.Enabled && p.Addr != "" && p.Endpoint != ""
}

type TracingConfig struct {
	Enabled  bool   `json:"enabled" mapstructure:"enabled"`
	DialAddr string `json:"dialAddr" mapstructure:"dialAddr"`
	Sample   int    `json:"sample" mapstructure:"sample"`
}

func (t *TracingConfig) IsEnabled() bool {
	return t != nil && t.Enabled
}

// NodeConfig describes the remote node the ledger is synced from.
type NodeConfig struct {
	URL           string        `json:"url" mapstructure:"url"`
	Timeout       time.Duration `json:"timeout" mapstructure:"timeout"`
	Retries       uint64        `json:"retries" mapstructure:"retries"`
	RetryInterval time.Duration `json:"retryInterval" mapstructure:"retryInterval"`
}

type IndexerConfig struct {
	SyncInterval         time.Duration `json:"syncInterval" mapstructure:"syncInterval"`
	MaxBlocksPerCycle    int           `json:"maxBlocksPerCycle" mapstructure:"maxBlocksPerCycle"`
	HealthServerDialAddr string        `json:"healthServerDialAddr" mapstructure:"healthServerDialAddr"`
	MaxStallDuration     time.Duration `json:"maxStallDuration" mapstructure:"maxStallDuration"`
	StatsInterval        time.Duration `json:"statsInterval" mapstructure:"statsInterval"`
	DrainTimeout         time.Duration `json:"drainTimeout" mapstructure:"drainTimeout"`
}

type PeerDiscoveryConfig struct {
	Enabled bool `json:"enabled" mapstructure:"enabled"`
	// Quarantine is how long a peer that failed a probe is skipped. Zero disables quarantine.
	Quarantine time.Duration `json:"quarantine" mapstructure:"quarantine"`
}

type DbConfig struct {
	Mode        string          `json:"mode" mapstructure:"mode"`
	AutoMigrate bool            `json:"autoMigrate" mapstructure:"autoMigrate"`
	Postgres    *PostgresConfig `json:"postgres" mapstructure:"postgres"`
	Sqlite      *SqliteConfig   `json:"sqlite" mapstructure:"sqlite"`
}

type PostgresConfig struct {
	Name         string `json:"name" mapstructure:"name"`
	User         string `json:"user" mapstructure:"user"`
	Password     string `json:"password" mapstructure:"password"`
	Host         string `json:"host" mapstructure:"host"`
	Port         int    `json:"port" mapstructure:"port"`
	MaxIdleConns int    `json:"maxIdleConns" mapstructure:"maxIdleConns"`
	MaxOpenConns int    `json:"maxOpenConns" mapstructure:"maxOpenConns"`
	SslMode      string `json:"sslMode" mapstructure:"sslMode"`
}

type SqliteConfig struct {
	Path string `json:"path" mapstructure:"path"`
}

type NotificationsConfig struct {
	Engine        string       `json:"engine" mapstructure:"engine"`
	ChannelPrefix string       `json:"channelPrefix" mapstructure:"channelPrefix"`
	Redis         *RedisConfig `json:"redis" mapstructure:"redis"`
	Nats          *NatsConfig  `json:"nats" mapstructure:"nats"`
}

type RedisConfig struct {
	Addr     string `json:"addr" mapstructure:"addr"`
	Password string `json:"password" mapstructure:"password"`
	DB       int    `json:"db" mapstructure:"db"`
}

type NatsConfig struct {
	URL      string `json:"url" mapstructure:"url"`
	User     string `json:"user" mapstructure:"user"`
	Password string `json:"password" mapstructure:"password"`
}

type KnownAccount struct {
	Address string `json:"address" mapstructure:"address"`
	Label   string `json:"label" mapstructure:"label"`
}

// KnownAccountLabels returns the known accounts keyed by address.
func (c *LedgerConfig) KnownAccountLabels() map[string]string {
	labels := make(map[string]string, len(c.KnownAccounts))
	for _, ka := range c.KnownAccounts {
		labels[ka.Address] = ka.Label
	}

	return labels
}
