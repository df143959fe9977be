package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

type Subject string

const (
	SubjectBlock       Subject = "block"
	SubjectTransaction Subject = "transaction"
	SubjectAccount     Subject = "account"
	SubjectStats       Subject = "stats"
)

type Verb string

const (
	VerbNew    Verb = "new"
	VerbUpdate Verb = "update"
)

const DefaultChannelPrefix = "pandascan"

var ErrFailedToEncodeEvent = errors.New("failed to encode event")

// Event is the envelope sent to downstream consumers.
type Event struct {
	Type   Subject        `json:"type"`
	Method Verb           `json:"method"`
	Data   map[string]any `json:"data"`
}

func NewBlockEvent(height uint64) Event {
	return Event{Type: SubjectBlock, Method: VerbNew, Data: map[string]any{"blockId": height}}
}

func NewTransactionEvent(txID string) Event {
	return Event{Type: SubjectTransaction, Method: VerbNew, Data: map[string]any{"transactionId": txID}}
}

func NewAccountEvent(address string) Event {
	return Event{Type: SubjectAccount, Method: VerbNew, Data: map[string]any{"address": address}}
}

func StatsUpdateEvent() Event {
	return Event{Type: SubjectStats, Method: VerbUpdate, Data: map[string]any{}}
}

// Channel returns the pub/sub channel of the event, e.g. "pandascan:newBlock".
func (e Event) Channel(prefix string) string {
	var name string
	switch e.Type {
	case SubjectBlock:
		name = "Block"
	case SubjectTransaction:
		name = "Transaction"
	case SubjectAccount:
		name = "Account"
	case SubjectStats:
		name = "Stats"
	}

	return fmt.Sprintf("%s:%s%s", prefix, e.Method, name)
}

// Notifier publishes ledger events. Without a message queue client all events are dropped.
type Notifier struct {
	mqClient MessageQueueClient
	prefix   string
	logger   *slog.Logger
}

func NewNotifier(logger *slog.Logger, mqClient MessageQueueClient, prefix string) *Notifier {
	if prefix == "" {
		prefix = DefaultChannelPrefix
	}

	return &Notifier{
		mqClient: mqClient,
		prefix:   prefix,
		logger:   logger.With(slog.String("module", "notifier")),
	}
}

func (n *Notifier) Publish(ctx context.Context, event Event) error {
	if n == nil || n.mqClient == nil {
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return errors.Join(ErrFailedToEncodeEvent, err)
	}

	return n.mqClient.Publish(ctx, event.Channel(n.prefix), data)
}

// PublishAll publishes the events in order. Failures are logged and do not stop the remaining events.
func (n *Notifier) PublishAll(ctx context.Context, events ...Event) (failed int) {
	for _, event := range events {
		err := n.Publish(ctx, event)
		if err != nil {
			failed++
			n.logger.Warn("failed to publish event", slog.String("channel", event.Channel(n.prefix)), slog.String("err", err.Error()))
		}
	}

	return failed
}
