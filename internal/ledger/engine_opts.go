package ledger

import (
	"runtime"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

func WithNotifier(notifier *Notifier) func(*Engine) {
	return func(e *Engine) {
		e.notifier = notifier
	}
}

// WithKnownAccounts labels accounts with the given address to label mapping.
func WithKnownAccounts(knownAccounts map[string]string) func(*Engine) {
	return func(e *Engine) {
		e.accountant = NewAccountant(knownAccounts)
	}
}

func WithPeerDiscovery(pd *PeerDiscovery) func(*Engine) {
	return func(e *Engine) {
		e.peerDiscovery = pd
	}
}

func WithMaxBlocksPerCycle(limit int) func(*Engine) {
	return func(e *Engine) {
		if limit > 0 {
			e.maxBlocksPerCycle = limit
		}
	}
}

func WithStatCollectionInterval(d time.Duration) func(*Engine) {
	return func(e *Engine) {
		e.statCollectionInterval = d
	}
}

func WithNow(nowFunc func() time.Time) func(*Engine) {
	return func(e *Engine) {
		e.now = nowFunc
	}
}

func WithTracer(attr ...attribute.KeyValue) func(*Engine) {
	return func(e *Engine) {
		e.tracingEnabled = true
		if len(attr) > 0 {
			e.tracingAttributes = append(e.tracingAttributes, attr...)
		}
		_, file, _, ok := runtime.Caller(1)
		if ok {
			e.tracingAttributes = append(e.tracingAttributes, attribute.String("file", file))
		}
	}
}
