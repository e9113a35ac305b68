// Package publisher emits audit events either synchronously or through a
// bounded in-process buffer drained by a background worker.
package publisher

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	audit "benefitd/pkg/platform/audit"
	"benefitd/pkg/platform/audit/worker"
)

// ErrBufferFull is returned by Emit in async mode when the buffer is saturated.
// The event is dropped; audit emission never blocks a rule-table operation.
var ErrBufferFull = errors.New("audit buffer full")

// ErrClosed is returned by Emit after Close.
var ErrClosed = errors.New("audit publisher closed")

type Publisher struct {
	store      audit.Store
	logger     *slog.Logger
	bufferSize int
	workerOpts []worker.Option

	mu     sync.RWMutex
	closed bool
	buffer chan audit.Event
	done   chan struct{}
}

type Option func(*Publisher)

// WithAsyncBuffer switches the publisher to async mode with the given capacity.
func WithAsyncBuffer(size int) Option {
	return func(p *Publisher) {
		p.bufferSize = size
	}
}

// WithRetry makes the async worker retry a failed append. It has no effect on
// a synchronous publisher, whose callers see the error directly.
func WithRetry(attempts int, backoff time.Duration) Option {
	return func(p *Publisher) {
		p.workerOpts = append(p.workerOpts, worker.WithRetry(attempts, backoff))
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func NewPublisher(store audit.Store, opts ...Option) *Publisher {
	p := &Publisher{store: store}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}
	if p.bufferSize > 0 {
		p.buffer = make(chan audit.Event, p.bufferSize)
		p.done = make(chan struct{})
		w := worker.NewWorker(store, p.buffer, p.logger, p.workerOpts...)
		go func() {
			defer close(p.done)
			_ = w.Run(context.Background())
		}()
	}
	return p
}

// Emit records an event. Timestamp and Category are filled in when unset.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.Category == "" {
		event.Category = audit.AuditEvent(event.Action).Category()
	}

	if p.buffer == nil {
		return p.store.Append(ctx, event)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}
	select {
	case p.buffer <- event:
		return nil
	default:
		p.logger.WarnContext(ctx, "audit buffer full, dropping event",
			"action", event.Action,
			"module", event.Module,
			"request_id", event.RequestID,
		)
		return ErrBufferFull
	}
}

// List returns persisted events for a module when the store supports reads.
func (p *Publisher) List(ctx context.Context, module string) ([]audit.Event, error) {
	reader, ok := p.store.(audit.Reader)
	if !ok {
		return nil, errors.New("audit store does not support listing")
	}
	return reader.ListByModule(ctx, module)
}

// Close stops accepting events and, in async mode, waits for the buffer to drain.
func (p *Publisher) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	if p.buffer != nil {
		close(p.buffer)
	}
	p.mu.Unlock()

	if p.done != nil {
		<-p.done
	}
}
