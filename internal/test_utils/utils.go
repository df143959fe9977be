package testutils

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Retry calls fn until it succeeds or a minute has passed.
func Retry(fn func() error) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 200 * time.Millisecond
	policy.MaxElapsedTime = time.Minute

	return backoff.Retry(fn, policy)
}
