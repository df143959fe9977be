package mq_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pandanite/pandascan/config"
	"github.com/pandanite/pandascan/internal/mq"
)

func TestNewMqClient(t *testing.T) {
	tt := []struct {
		name string
		cfg  *config.NotificationsConfig

		expectedError error
	}{
		{
			name:          "missing config",
			expectedError: mq.ErrConfigMissing,
		},
		{
			name: "none",
			cfg:  &config.NotificationsConfig{Engine: config.NotificationEngineNone},
		},
		{
			name:          "unknown engine",
			cfg:           &config.NotificationsConfig{Engine: "kafka"},
			expectedError: mq.ErrUnknownEngine,
		},
		{
			name:          "redis without settings",
			cfg:           &config.NotificationsConfig{Engine: config.NotificationEngineRedis},
			expectedError: mq.ErrConfigMissing,
		},
		{
			name:          "nats without settings",
			cfg:           &config.NotificationsConfig{Engine: config.NotificationEngineNats},
			expectedError: mq.ErrConfigMissing,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// when
			client, err := mq.NewMqClient(context.Background(), slog.Default(), tc.cfg, nil)

			// then
			require.ErrorIs(t, err, tc.expectedError)
			if tc.expectedError == nil {
				require.NotNil(t, client)
				require.NoError(t, client.Publish(context.Background(), "pandascan:newBlock", []byte("{}")))
				client.Shutdown()
			}
		})
	}
}
