// Package worker drains the async audit buffer into a store.
package worker

import (
	"context"
	"log/slog"
	"time"

	audit "benefitd/pkg/platform/audit"
)

// Worker persists events read from inbox. Each event is attempted up to
// attempts times; an event that still fails is logged and dropped so it
// cannot stall the events queued behind it.
type Worker struct {
	store    audit.Store
	inbox    <-chan audit.Event
	logger   *slog.Logger
	attempts int
	backoff  time.Duration
}

type Option func(*Worker)

// WithRetry sets the attempts per event and the pause between them.
func WithRetry(attempts int, backoff time.Duration) Option {
	return func(w *Worker) {
		if attempts > 0 {
			w.attempts = attempts
		}
		if backoff >= 0 {
			w.backoff = backoff
		}
	}
}

func NewWorker(store audit.Store, inbox <-chan audit.Event, logger *slog.Logger, opts ...Option) *Worker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	w := &Worker{store: store, inbox: inbox, logger: logger, attempts: 1}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run returns nil once inbox is closed and drained, or ctx.Err on cancel.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.inbox:
			if !ok {
				return nil
			}
			if err := w.persist(ctx, event); err != nil {
				w.logger.ErrorContext(ctx, "failed to persist audit event",
					"action", event.Action,
					"module", event.Module,
					"request_id", event.RequestID,
					"attempts", w.attempts,
					"error", err,
				)
			}
		}
	}
}

func (w *Worker) persist(ctx context.Context, event audit.Event) error {
	var err error
	for i := 0; i < w.attempts; i++ {
		if i > 0 && w.backoff > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(w.backoff):
			}
		}
		if err = w.store.Append(ctx, event); err == nil {
			return nil
		}
	}
	return err
}
