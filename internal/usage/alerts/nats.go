// Package alerts publishes excessive-usage notifications to NATS.
package alerts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/nats-io/nats.go"

	"benefitd/pkg/platform/circuit"
)

// DefaultSubject carries one message per flagged usage check.
const DefaultSubject = "benefitd.usage.excessive"

// ErrCircuitOpen is returned without contacting NATS while recent publishes
// have been failing.
var ErrCircuitOpen = errors.New("alert publishing suspended")

// Alert is the JSON payload published for a flagged check.
type Alert struct {
	Recipient   string    `json:"recipient"`
	Period      uint32    `json:"period"`
	Flagged     []string  `json:"flagged"`
	Electricity int64     `json:"electricity"`
	Water       int64     `json:"water"`
	Gas         int64     `json:"gas"`
	Height      uint64    `json:"height"`
	DetectedAt  time.Time `json:"detected_at"`
}

type Config struct {
	URL            string
	Subject        string
	Name           string
	ReconnectWait  time.Duration
	MaxReconnects  int
	ConnectTimeout time.Duration
	// FlushTimeout bounds the server round trip of a publish whose context
	// carries no deadline.
	FlushTimeout time.Duration

	// FailureThreshold consecutive publish failures suspend publishing for
	// Cooldown.
	FailureThreshold int
	Cooldown         time.Duration
}

// connection is the part of *nats.Conn the publisher uses.
type connection interface {
	Publish(subject string, data []byte) error
	FlushWithContext(ctx context.Context) error
	IsConnected() bool
	Status() nats.Status
	Drain() error
}

// Publisher sends alerts over a core NATS connection.
type Publisher struct {
	conn         connection
	flushTimeout time.Duration
	subject      string
	logger     *slog.Logger
	breaker    *circuit.Breaker
	reconnects atomic.Int64
}

// Connect dials NATS and returns a Publisher for cfg.Subject.
func Connect(cfg Config, logger *slog.Logger) (*Publisher, error) {
	if cfg.URL == "" {
		return nil, errors.New("nats url is required")
	}
	if cfg.Subject == "" {
		cfg.Subject = DefaultSubject
	}
	if cfg.Name == "" {
		cfg.Name = "benefitd"
	}
	if cfg.ReconnectWait == 0 {
		cfg.ReconnectWait = 2 * time.Second
	}
	if cfg.MaxReconnects == 0 {
		cfg.MaxReconnects = -1
	}
	if cfg.ConnectTimeout == 0 {
		cfg.ConnectTimeout = 5 * time.Second
	}
	if cfg.FlushTimeout == 0 {
		cfg.FlushTimeout = 2 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	p := newPublisher(cfg, logger)
	conn, err := nats.Connect(cfg.URL,
		nats.Name(cfg.Name),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.Timeout(cfg.ConnectTimeout),
		nats.ReconnectHandler(func(*nats.Conn) {
			p.reconnects.Add(1)
			logger.Info("nats reconnected", "subject", cfg.Subject)
		}),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	p.conn = conn
	return p, nil
}

func newPublisher(cfg Config, logger *slog.Logger) *Publisher {
	return &Publisher{
		subject:      cfg.Subject,
		flushTimeout: cfg.FlushTimeout,
		logger:       logger,
		breaker: circuit.New("nats-alerts",
			circuit.WithFailureThreshold(cfg.FailureThreshold),
			circuit.WithCooldown(cfg.Cooldown),
		),
	}
}

// Publish sends a and flushes so delivery failures surface to the caller.
func (p *Publisher) Publish(ctx context.Context, a Alert) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}
	if !p.breaker.Allow() {
		return ErrCircuitOpen
	}
	if err := p.send(ctx, payload); err != nil {
		if _, change := p.breaker.RecordFailure(); change.Opened {
			p.logger.WarnContext(ctx, "alert publishing suspended", "subject", p.subject, "error", err)
		}
		return err
	}
	if _, change := p.breaker.RecordSuccess(); change.Closed {
		p.logger.InfoContext(ctx, "alert publishing resumed", "subject", p.subject)
	}
	return nil
}

func (p *Publisher) send(ctx context.Context, payload []byte) error {
	if err := p.conn.Publish(p.subject, payload); err != nil {
		return fmt.Errorf("failed to publish alert: %w", err)
	}
	// nats rejects a flush context without a deadline
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.flushTimeout)
		defer cancel()
	}
	if err := p.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("failed to flush alert: %w", err)
	}
	return nil
}

func (p *Publisher) Subject() string {
	return p.subject
}

// Health reports whether the connection is usable.
func (p *Publisher) Health(context.Context) error {
	if !p.conn.IsConnected() {
		return fmt.Errorf("nats status %s", p.conn.Status())
	}
	return nil
}

// Reconnects returns how many times the connection was re-established.
func (p *Publisher) Reconnects() int64 {
	return p.reconnects.Load()
}

// Close drains pending messages and closes the connection.
func (p *Publisher) Close() error {
	return p.conn.Drain()
}
