package nats_core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pandanite/pandascan/internal/tracing"
)

var ErrFailedToPublish = errors.New("failed to publish")

//go:generate moq -pkg mocks -out ./mocks/nats_connection_mock.go . NatsConnection
type NatsConnection interface {
	Publish(subj string, data []byte) error
	Status() nats.Status
	Drain() error
}

type Client struct {
	nc     NatsConnection
	logger *slog.Logger

	tracingEnabled    bool
	tracingAttributes []attribute.KeyValue
}

func WithLogger(logger *slog.Logger) func(*Client) {
	return func(c *Client) {
		c.logger = logger.With(slog.String("module", "nats-publisher"))
	}
}

func WithTracer(attr ...attribute.KeyValue) func(*Client) {
	return func(c *Client) {
		c.tracingEnabled = true
		if len(attr) > 0 {
			c.tracingAttributes = append(c.tracingAttributes, attr...)
		}
		_, file, _, ok := runtime.Caller(1)
		if ok {
			c.tracingAttributes = append(c.tracingAttributes, attribute.String("file", file))
		}
	}
}

func New(nc NatsConnection, opts ...func(*Client)) *Client {
	c := &Client{
		nc:     nc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) Status() nats.Status {
	return c.nc.Status()
}

// Publish sends data on the subject named after the channel.
func (c *Client) Publish(ctx context.Context, channel string, data []byte) (err error) {
	_, span := tracing.StartTracing(ctx, "NatsClient_Publish", c.tracingEnabled, append(c.tracingAttributes, attribute.String("channel", channel))...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	err = c.nc.Publish(channel, data)
	if err != nil {
		return errors.Join(ErrFailedToPublish, fmt.Errorf("channel: %s", channel), err)
	}

	return nil
}

func (c *Client) Shutdown() {
	if c.nc == nil {
		return
	}

	err := c.nc.Drain()
	if err != nil {
		c.logger.Error("failed to drain nats connection", slog.String("err", err.Error()))
	}
}
