package nats_connection

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/nats-io/nats.go"
)

var ErrNatsConnectionFailed = errors.New("failed to connect to NATS server")

// Config holds the connection settings changed by the options.
type Config struct {
	maxReconnects        int
	pingInterval         time.Duration
	reconnectBufSize     int
	reconnectWait        time.Duration
	maxPingsOutstanding  int
	retryOnFailedConnect bool
	clientClosedCh       chan struct{}
	user                 string
	password             string
}

func WithMaxReconnects(maxReconnects int) func(config *Config) {
	return func(config *Config) {
		config.maxReconnects = maxReconnects
	}
}

func WithClientClosedChannel(clientClosedCh chan struct{}) func(config *Config) {
	return func(config *Config) {
		config.clientClosedCh = clientClosedCh
	}
}

func WithReconnectWait(reconnectWait time.Duration) func(config *Config) {
	return func(config *Config) {
		config.reconnectWait = reconnectWait
	}
}

// WithUserInfo authenticates the connection. Empty user disables authentication.
func WithUserInfo(user, password string) func(config *Config) {
	return func(config *Config) {
		config.user = user
		config.password = password
	}
}

func New(natsURL string, logger *slog.Logger, opts ...func(config *Config)) (*nats.Conn, error) {
	logger = logger.With(slog.String("module", "nats"))

	cfg := &Config{
		maxReconnects:        10,
		pingInterval:         15 * time.Second,
		reconnectBufSize:     8 * 1024 * 1024,
		reconnectWait:        2 * time.Second,
		maxPingsOutstanding:  2,
		retryOnFailedConnect: true,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	hostname, err := os.Hostname()
	if err != nil {
		return nil, err
	}

	natsOpts := []nats.Option{
		nats.Name(fmt.Sprintf("pandascan-%s", hostname)),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			if err != nil {
				logger.Error("connection error", slog.String("err", err.Error()))
			}
		}),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			var args []any
			if err != nil {
				args = append(args, slog.String("err", err.Error()))
			}
			buffered, bufferedErr := nc.Buffered()
			if bufferedErr == nil {
				args = append(args, slog.Int("buffered", buffered))
			}

			logger.Error("client disconnected", args...)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("client reconnected", slog.String("url", nc.ConnectedUrlRedacted()))
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			logger.Warn("client closed")
			if cfg.clientClosedCh != nil {
				select {
				case cfg.clientClosedCh <- struct{}{}:
				default:
				}
			}
		}),
		nats.RetryOnFailedConnect(cfg.retryOnFailedConnect),
		nats.PingInterval(cfg.pingInterval),
		nats.MaxPingsOutstanding(cfg.maxPingsOutstanding),
		nats.ReconnectBufSize(cfg.reconnectBufSize),
		nats.MaxReconnects(cfg.maxReconnects),
		nats.ReconnectWait(cfg.reconnectWait),
	}

	if cfg.user != "" {
		natsOpts = append(natsOpts, nats.UserInfo(cfg.user, cfg.password))
	}

	nc, err := nats.Connect(natsURL, natsOpts...)
	if err != nil {
		return nil, errors.Join(ErrNatsConnectionFailed, err)
	}

	return nc, nil
}
