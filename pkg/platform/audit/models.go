package audit

import (
	"context"
	"encoding/hex"
	"time"

	"golang.org/x/crypto/blake2b"

	"benefitd/pkg/domain"
)

// EventCategory classifies audit events by their primary purpose so stores
// can apply different retention and routing.
type EventCategory string

const (
	// CategoryCompliance covers changes to rule tables and recipient records.
	CategoryCompliance EventCategory = "compliance"

	// CategorySecurity covers admin transfers and rejected admin calls.
	CategorySecurity EventCategory = "security"

	// CategoryOperations covers routine activity that may be sampled.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from services to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory
	Timestamp time.Time
	Module    string
	Action    string
	// ActorID is the caller principal that attempted the action.
	ActorID string
	// SubjectIDHash is the blake2b-256 hash of the affected identity. Raw
	// identities stay out of the audit trail because they key income data.
	SubjectIDHash string
	Decision      string
	Reason        string
	Height        uint64
	RequestID     string
}

type AuditEvent string

const (
	EventParametersUpdated   AuditEvent = "parameters_updated"
	EventRecipientRegistered AuditEvent = "recipient_registered"
	EventRecipientUpdated    AuditEvent = "recipient_updated"
	EventRecipientRemoved    AuditEvent = "recipient_removed"
	EventCriteriaUpdated     AuditEvent = "criteria_updated"
	EventUsageRecorded       AuditEvent = "usage_recorded"
	EventUsageUpdated        AuditEvent = "usage_updated"
	EventThresholdsUpdated   AuditEvent = "thresholds_updated"
	EventExcessiveUsage      AuditEvent = "excessive_usage_detected"
	EventAdminTransferred    AuditEvent = "admin_transferred"
	EventAdminRejected       AuditEvent = "admin_rejected"
)

const (
	DecisionAccepted = "accepted"
	DecisionRejected = "rejected"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventParametersUpdated:   CategoryCompliance,
	EventRecipientRegistered: CategoryCompliance,
	EventRecipientUpdated:    CategoryCompliance,
	EventRecipientRemoved:    CategoryCompliance,
	EventCriteriaUpdated:     CategoryCompliance,
	EventThresholdsUpdated:   CategoryCompliance,

	EventAdminTransferred: CategorySecurity,
	EventAdminRejected:    CategorySecurity,

	EventUsageRecorded:  CategoryOperations,
	EventUsageUpdated:   CategoryOperations,
	EventExcessiveUsage: CategoryOperations,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

// HashSubject returns the hex blake2b-256 digest of an identity, or "" for none.
func HashSubject(p domain.Principal) string {
	if p.IsNil() {
		return ""
	}
	sum := blake2b.Sum256([]byte(p))
	return hex.EncodeToString(sum[:])
}

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
}

// Reader is implemented by stores that can list what they persisted.
type Reader interface {
	ListByModule(ctx context.Context, module string) ([]Event, error)
}
