package redis_pubsub

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pandanite/pandascan/internal/tracing"
)

var (
	ErrFailedToPublish = errors.New("failed to publish")
	ErrFailedToPing    = errors.New("failed to ping redis")
)

// Client publishes messages to redis pub/sub channels.
type Client struct {
	client redis.UniversalClient
	logger *slog.Logger

	tracingEnabled bool
}

func WithLogger(logger *slog.Logger) func(*Client) {
	return func(c *Client) {
		c.logger = logger.With(slog.String("module", "redis-publisher"))
	}
}

func WithTracer() func(*Client) {
	return func(c *Client) {
		c.tracingEnabled = true
	}
}

// NewClient connects to a single redis server.
func NewClient(addr, password string, db int, opts ...func(*Client)) *Client {
	return New(redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}), opts...)
}

func New(client redis.UniversalClient, opts ...func(*Client)) *Client {
	c := &Client{
		client: client,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) Ping(ctx context.Context) error {
	err := c.client.Ping(ctx).Err()
	if err != nil {
		return errors.Join(ErrFailedToPing, err)
	}

	return nil
}

func (c *Client) Publish(ctx context.Context, channel string, data []byte) (err error) {
	ctx, span := tracing.StartTracing(ctx, "RedisClient_Publish", c.tracingEnabled, attribute.String("channel", channel))
	defer func() {
		tracing.EndTracing(span, err)
	}()

	err = c.client.Publish(ctx, channel, data).Err()
	if err != nil {
		return errors.Join(ErrFailedToPublish, fmt.Errorf("channel: %s", channel), err)
	}

	return nil
}

func (c *Client) Shutdown() {
	err := c.client.Close()
	if err != nil {
		c.logger.Error("failed to close redis client", slog.String("err", err.Error()))
	}
}
