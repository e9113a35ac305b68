package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	audit "benefitd/pkg/platform/audit"
	txcontext "benefitd/pkg/platform/tx"
)

// Store persists audit events in the audit_events table.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Append writes an audit event. Category is always derived from the action so
// the eventCategories map stays the source of truth.
func (s *Store) Append(ctx context.Context, event audit.Event) error {
	category := audit.AuditEvent(event.Action).Category()
	query := `
		INSERT INTO audit_events (
			id, category, timestamp, module, action, actor_id,
			subject_id_hash, decision, reason, height, request_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, query,
		uuid.New(),
		string(category),
		event.Timestamp,
		event.Module,
		event.Action,
		event.ActorID,
		event.SubjectIDHash,
		event.Decision,
		event.Reason,
		int64(event.Height),
		event.RequestID,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// ListByModule returns events for a module, oldest first.
func (s *Store) ListByModule(ctx context.Context, module string) ([]audit.Event, error) {
	query := `
		SELECT category, timestamp, module, action, actor_id,
			   subject_id_hash, decision, reason, height, request_id
		FROM audit_events
		WHERE module = $1
		ORDER BY timestamp ASC
	`
	rows, err := s.db.QueryContext(ctx, query, module)
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()

	var events []audit.Event
	for rows.Next() {
		var (
			e        audit.Event
			category string
			height   int64
		)
		if err := rows.Scan(&category, &e.Timestamp, &e.Module, &e.Action, &e.ActorID,
			&e.SubjectIDHash, &e.Decision, &e.Reason, &height, &e.RequestID); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		e.Category = audit.EventCategory(category)
		e.Height = uint64(height)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}
