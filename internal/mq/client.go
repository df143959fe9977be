package mq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pandanite/pandascan/config"
	"github.com/pandanite/pandascan/internal/mq/nats_connection"
	"github.com/pandanite/pandascan/internal/mq/nats_core"
	"github.com/pandanite/pandascan/internal/mq/redis_pubsub"
)

var (
	ErrConfigMissing   = errors.New("notifications config is required")
	ErrUnknownEngine   = errors.New("unknown notification engine")
	ErrFailedToConnect = errors.New("failed to connect to message queue")
)

type options struct {
	clientClosedCh chan struct{}
}

// WithClientClosedChannel receives a value when a nats connection is closed for good.
func WithClientClosedChannel(clientClosedCh chan struct{}) func(*options) {
	return func(o *options) {
		o.clientClosedCh = clientClosedCh
	}
}

type MessageQueueClient interface {
	Publish(ctx context.Context, channel string, data []byte) error
	Shutdown()
}

// NewMqClient creates the publisher selected by the notifications engine.
func NewMqClient(ctx context.Context, logger *slog.Logger, cfg *config.NotificationsConfig, tracingCfg *config.TracingConfig, opts ...func(*options)) (MessageQueueClient, error) {
	if cfg == nil {
		return nil, ErrConfigMissing
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	logger = logger.With(slog.String("module", "message-queue"))

	switch cfg.Engine {
	case config.NotificationEngineNone:
		return NoopClient{}, nil

	case config.NotificationEngineRedis:
		if cfg.Redis == nil {
			return nil, errors.Join(ErrConfigMissing, errors.New("redis"))
		}

		opts := []func(*redis_pubsub.Client){redis_pubsub.WithLogger(logger)}
		if tracingCfg.IsEnabled() {
			opts = append(opts, redis_pubsub.WithTracer())
		}

		client := redis_pubsub.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, opts...)
		err := client.Ping(ctx)
		if err != nil {
			client.Shutdown()
			return nil, errors.Join(ErrFailedToConnect, fmt.Errorf("redis at %s", cfg.Redis.Addr), err)
		}

		return client, nil

	case config.NotificationEngineNats:
		if cfg.Nats == nil {
			return nil, errors.Join(ErrConfigMissing, errors.New("nats"))
		}

		connOpts := []func(*nats_connection.Config){nats_connection.WithUserInfo(cfg.Nats.User, cfg.Nats.Password)}
		if o.clientClosedCh != nil {
			connOpts = append(connOpts, nats_connection.WithClientClosedChannel(o.clientClosedCh))
		}

		conn, err := nats_connection.New(cfg.Nats.URL, logger, connOpts...)
		if err != nil {
			return nil, errors.Join(ErrFailedToConnect, fmt.Errorf("nats at %s", cfg.Nats.URL), err)
		}

		opts := []func(*nats_core.Client){nats_core.WithLogger(logger)}
		if tracingCfg.IsEnabled() {
			opts = append(opts, nats_core.WithTracer())
		}

		return nats_core.New(conn, opts...), nil
	}

	return nil, errors.Join(ErrUnknownEngine, fmt.Errorf("engine: %s", cfg.Engine))
}

// NoopClient discards all messages.
type NoopClient struct{}

func (NoopClient) Publish(_ context.Context, _ string, _ []byte) error { return nil }

func (NoopClient) Shutdown() {}
