package integration_test

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/nats-io/nats.go"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/require"

	"github.com/pandanite/pandascan/config"
	"github.com/pandanite/pandascan/internal/mq"
	"github.com/pandanite/pandascan/internal/mq/nats_connection"
	testutils "github.com/pandanite/pandascan/internal/test_utils"
)

var (
	natsURL   string
	redisAddr string
)

func TestMain(m *testing.M) {
	flag.Parse()

	if testing.Short() {
		os.Exit(0)
	}

	os.Exit(testmain(m))
}

func testmain(m *testing.M) int {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Printf("failed to create pool: %v", err)
		return 1
	}

	natsResource, url, err := testutils.RunNats(pool, "4337")
	if err != nil {
		log.Print(err)
		return 1
	}
	natsURL = url

	redisResource, addr, err := testutils.RunRedis(pool, "6380")
	if err != nil {
		log.Print(err)
		_ = pool.Purge(natsResource)
		return 1
	}
	redisAddr = addr

	defer func() {
		for _, resource := range []*dockertest.Resource{natsResource, redisResource} {
			err = pool.Purge(resource)
			if err != nil {
				log.Printf("failed to purge pool: %v", err)
			}
		}
	}()

	err = testutils.Retry(func() error {
		return redis.NewClient(&redis.Options{Addr: redisAddr}).Ping(context.Background()).Err()
	})
	if err != nil {
		log.Printf("redis not ready: %v", err)
		return 1
	}

	return m.Run()
}

func TestNatsPublisher(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	// given
	logger := slog.Default()
	subscriber, err := nats_connection.New(natsURL, logger)
	require.NoError(t, err)
	defer subscriber.Close()

	received := make(chan *nats.Msg, 1)
	_, err = subscriber.ChanSubscribe("pandascan:newBlock", received)
	require.NoError(t, err)
	require.NoError(t, subscriber.Flush())

	sut, err := mq.NewMqClient(context.Background(), logger, &config.NotificationsConfig{
		Engine: config.NotificationEngineNats,
		Nats:   &config.NatsConfig{URL: natsURL},
	}, nil)
	require.NoError(t, err)
	defer sut.Shutdown()

	// when
	err = sut.Publish(context.Background(), "pandascan:newBlock", []byte(`{"type":"block","method":"new","data":{"blockId":1}}`))

	// then
	require.NoError(t, err)
	select {
	case msg := <-received:
		require.JSONEq(t, `{"type":"block","method":"new","data":{"blockId":1}}`, string(msg.Data))
	case <-time.After(5 * time.Second):
		t.Fatal("message not received")
	}
}

func TestRedisPublisher(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	// given
	ctx := context.Background()
	subscriber := redis.NewClient(&redis.Options{Addr: redisAddr})
	defer subscriber.Close()

	pubsub := subscriber.Subscribe(ctx, "pandascan:updateStats")
	defer pubsub.Close()
	_, err := pubsub.Receive(ctx)
	require.NoError(t, err)

	sut, err := mq.NewMqClient(ctx, slog.Default(), &config.NotificationsConfig{
		Engine: config.NotificationEngineRedis,
		Redis:  &config.RedisConfig{Addr: redisAddr},
	}, nil)
	require.NoError(t, err)
	defer sut.Shutdown()

	// when
	err = sut.Publish(ctx, "pandascan:updateStats", []byte(`{"type":"stats","method":"update","data":{}}`))

	// then
	require.NoError(t, err)
	select {
	case msg := <-pubsub.Channel():
		require.JSONEq(t, `{"type":"stats","method":"update","data":{}}`, msg.Payload)
	case <-time.After(5 * time.Second):
		t.Fatal("message not received")
	}
}
