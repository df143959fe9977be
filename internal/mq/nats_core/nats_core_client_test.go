package nats_core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"

	"github.com/pandanite/pandascan/internal/mq/nats_core"
	"github.com/pandanite/pandascan/internal/mq/nats_core/mocks"
)

func TestPublish(t *testing.T) {
	tt := []struct {
		name       string
		publishErr error

		expectedError error
	}{
		{
			name: "success",
		},
		{
			name:       "publish err",
			publishErr: errors.New("connection closed"),

			expectedError: nats_core.ErrFailedToPublish,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			natsMock := &mocks.NatsConnectionMock{
				PublishFunc: func(_ string, _ []byte) error {
					return tc.publishErr
				},
			}
			sut := nats_core.New(natsMock)

			// when
			err := sut.Publish(context.TODO(), "pandascan:newBlock", []byte(`{"type":"block"}`))

			// then
			require.ErrorIs(t, err, tc.expectedError)
			require.Len(t, natsMock.PublishCalls(), 1)
			require.Equal(t, "pandascan:newBlock", natsMock.PublishCalls()[0].Subj)
			require.Equal(t, `{"type":"block"}`, string(natsMock.PublishCalls()[0].Data))
		})
	}
}

func TestShutdown(t *testing.T) {
	// given
	natsMock := &mocks.NatsConnectionMock{
		DrainFunc: func() error {
			return errors.New("already closed")
		},
		StatusFunc: func() nats.Status {
			return nats.CLOSED
		},
	}
	sut := nats_core.New(natsMock)

	// when
	sut.Shutdown()

	// then
	require.Len(t, natsMock.DrainCalls(), 1)
	require.Equal(t, nats.CLOSED, sut.Status())
}
