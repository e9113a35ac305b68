package audit

import (
	"context"
	"log/slog"

	"benefitd/pkg/domain"
	"benefitd/pkg/requestcontext"
)

// Publisher accepts events for persistence.
type Publisher interface {
	Emit(ctx context.Context, event Event) error
}

// Fields are the per-call parts of an event.
type Fields struct {
	Actor    domain.Principal
	Subject  domain.Principal
	Decision string
	Reason   string
	Height   domain.Height
}

// Emitter stamps events with module and request metadata. Publishing is
// best effort: the guarded write has already committed when it runs, so
// failures are logged rather than returned.
type Emitter struct {
	module    string
	publisher Publisher
	logger    *slog.Logger
}

func NewEmitter(module string, publisher Publisher, logger *slog.Logger) *Emitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Emitter{module: module, publisher: publisher, logger: logger}
}

func (e *Emitter) Emit(ctx context.Context, action AuditEvent, f Fields) {
	if e == nil || e.publisher == nil {
		return
	}
	decision := f.Decision
	if decision == "" {
		decision = DecisionAccepted
	}
	event := Event{
		Category:      action.Category(),
		Timestamp:     requestcontext.Now(ctx),
		Module:        e.module,
		Action:        string(action),
		ActorID:       f.Actor.String(),
		SubjectIDHash: HashSubject(f.Subject),
		Decision:      decision,
		Reason:        f.Reason,
		Height:        f.Height.Uint64(),
		RequestID:     requestcontext.RequestID(ctx),
	}
	if err := e.publisher.Emit(ctx, event); err != nil {
		e.logger.WarnContext(ctx, "failed to emit audit event",
			"request_id", event.RequestID,
			"module", e.module,
			"action", event.Action,
			"error", err,
		)
	}
}
