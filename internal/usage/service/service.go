package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks UsageStore,ThresholdStore,AdminAuthority,HeightSource,AuditPublisher,AlertPublisher

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"benefitd/internal/usage/alerts"
	"benefitd/internal/usage/metrics"
	"benefitd/internal/usage/models"
	"benefitd/pkg/domain"
	dErrors "benefitd/pkg/domain-errors"
	audit "benefitd/pkg/platform/audit"
	"benefitd/pkg/platform/sentinel"
	"benefitd/pkg/platform/tracing"
	txcontext "benefitd/pkg/platform/tx"
	"benefitd/pkg/requestcontext"
)

const module = "usage"

// UsageStore persists records keyed by (recipient, period). There is no
// delete: a key, once recorded, stays present.
type UsageStore interface {
	Find(ctx context.Context, key models.Key) (models.Record, error)
	Create(ctx context.Context, key models.Key, r models.Record) error
	Update(ctx context.Context, key models.Key, r models.Record) error
}

type ThresholdStore interface {
	LoadThresholds(ctx context.Context) (models.Thresholds, error)
	SaveThresholds(ctx context.Context, t models.Thresholds) error
	SeedThresholds(ctx context.Context, t models.Thresholds) error
}

type AdminAuthority interface {
	Require(ctx context.Context, caller domain.Principal) error
	Transfer(ctx context.Context, caller, next domain.Principal) error
	Current(ctx context.Context) (domain.Principal, error)
}

type HeightSource interface {
	Current(ctx context.Context) (domain.Height, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// AlertPublisher receives one alert per flagged excess check.
type AlertPublisher interface {
	Publish(ctx context.Context, a alerts.Alert) error
}

// Service runs the usage monitor.
type Service struct {
	usage      UsageStore
	thresholds ThresholdStore
	admins     AdminAuthority
	heights    HeightSource
	tx         txcontext.Runner
	alerts     AlertPublisher
	logger     *slog.Logger
	metrics    *metrics.Metrics

	auditPublisher AuditPublisher
	auditor        *audit.Emitter
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithTxRunner(r txcontext.Runner) Option {
	return func(s *Service) {
		s.tx = r
	}
}

// WithAlertPublisher enables excess alerts.
func WithAlertPublisher(p AlertPublisher) Option {
	return func(s *Service) {
		s.alerts = p
	}
}

func New(usage UsageStore, thresholds ThresholdStore, admins AdminAuthority, heights HeightSource, opts ...Option) (*Service, error) {
	if usage == nil {
		return nil, errors.New("usage store is required")
	}
	if thresholds == nil {
		return nil, errors.New("threshold store is required")
	}
	if admins == nil {
		return nil, errors.New("admin authority is required")
	}
	if heights == nil {
		return nil, errors.New("height source is required")
	}
	s := &Service{usage: usage, thresholds: thresholds, admins: admins, heights: heights}
	for _, opt := range opts {
		opt(s)
	}
	if s.tx == nil {
		s.tx = txcontext.NewMutexRunner()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.auditor = audit.NewEmitter(module, s.auditPublisher, s.logger)
	return s, nil
}

// Bootstrap seeds the thresholds a fresh deployment starts with.
func (s *Service) Bootstrap(ctx context.Context, defaults models.Thresholds) error {
	if err := defaults.Validate(); err != nil {
		return err
	}
	if err := s.thresholds.SeedThresholds(ctx, defaults); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to seed usage thresholds")
	}
	return nil
}

// RecordUsage stores usage for a key that has none yet.
func (s *Service) RecordUsage(ctx context.Context, caller domain.Principal, key models.Key, electricity, water, gas int64) (rec models.Record, err error) {
	ctx, span := tracing.Start(ctx, module, "RecordUsage",
		attribute.Int64("period", int64(key.Period)))
	defer func() { tracing.End(span, err) }()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.admins.Require(txCtx, caller); err != nil {
			return err
		}
		if err := validateKey(key); err != nil {
			return err
		}
		h, err := s.currentHeight(txCtx)
		if err != nil {
			return err
		}
		r, err := models.NewRecord(electricity, water, gas, h)
		if err != nil {
			return err
		}
		if err := s.usage.Create(txCtx, key, r); err != nil {
			if errors.Is(err, sentinel.ErrAlreadyUsed) {
				return dErrors.New(dErrors.CodeConflict, "usage already recorded for period")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record usage")
		}
		rec = r
		return nil
	})
	if err != nil {
		s.rejected(ctx, caller, "record_usage", err)
		return models.Record{}, err
	}

	s.metrics.IncrementMutation("record_usage")
	s.auditor.Emit(ctx, audit.EventUsageRecorded, audit.Fields{Actor: caller, Subject: key.Recipient, Height: rec.RecordedAt})
	s.logger.InfoContext(ctx, "usage recorded", "caller", caller, "period", key.Period.String())
	return rec, nil
}

// UpdateUsage replaces the record for an existing key.
func (s *Service) UpdateUsage(ctx context.Context, caller domain.Principal, key models.Key, electricity, water, gas int64) (rec models.Record, err error) {
	ctx, span := tracing.Start(ctx, module, "UpdateUsage",
		attribute.Int64("period", int64(key.Period)))
	defer func() { tracing.End(span, err) }()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.admins.Require(txCtx, caller); err != nil {
			return err
		}
		h, err := s.currentHeight(txCtx)
		if err != nil {
			return err
		}
		r, err := models.NewRecord(electricity, water, gas, h)
		if err != nil {
			return err
		}
		if err := s.usage.Update(txCtx, key, r); err != nil {
			return wrapRecordErr(err, "failed to update usage")
		}
		rec = r
		return nil
	})
	if err != nil {
		s.rejected(ctx, caller, "update_usage", err)
		return models.Record{}, err
	}

	s.metrics.IncrementMutation("update_usage")
	s.auditor.Emit(ctx, audit.EventUsageUpdated, audit.Fields{Actor: caller, Subject: key.Recipient, Height: rec.RecordedAt})
	s.logger.InfoContext(ctx, "usage updated", "caller", caller, "period", key.Period.String())
	return rec, nil
}

// CheckExcessiveUsage compares the stored record with the thresholds current
// at call time. A flagged check is audited and, when configured, alerted.
func (s *Service) CheckExcessiveUsage(ctx context.Context, key models.Key) (report models.ExcessReport, err error) {
	ctx, span := tracing.Start(ctx, module, "CheckExcessiveUsage",
		attribute.Int64("period", int64(key.Period)))
	defer func() { tracing.End(span, err) }()

	r, err := s.usage.Find(ctx, key)
	if err != nil {
		return models.ExcessReport{}, wrapRecordErr(err, "failed to load usage record")
	}
	t, err := s.loadThresholds(ctx)
	if err != nil {
		return models.ExcessReport{}, err
	}
	report = t.Check(r)

	flagged := report.Flagged()
	s.metrics.ObserveCheck(flagged)
	if len(flagged) > 0 {
		s.flag(ctx, key, r, flagged)
	}
	return report, nil
}

// UpdateThresholds replaces all three thresholds.
func (s *Service) UpdateThresholds(ctx context.Context, caller domain.Principal, t models.Thresholds) (err error) {
	ctx, span := tracing.Start(ctx, module, "UpdateThresholds")
	defer func() { tracing.End(span, err) }()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.admins.Require(txCtx, caller); err != nil {
			return err
		}
		if err := t.Validate(); err != nil {
			return err
		}
		if err := s.thresholds.SaveThresholds(txCtx, t); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save usage thresholds")
		}
		return nil
	})
	if err != nil {
		s.rejected(ctx, caller, "update_thresholds", err)
		return err
	}

	s.metrics.IncrementMutation("update_thresholds")
	s.auditor.Emit(ctx, audit.EventThresholdsUpdated, audit.Fields{Actor: caller, Height: s.heightOrZero(ctx)})
	s.logger.InfoContext(ctx, "usage thresholds updated",
		"caller", caller,
		"electricity", t.Electricity,
		"water", t.Water,
		"gas", t.Gas,
	)
	return nil
}

func (s *Service) Thresholds(ctx context.Context) (models.Thresholds, error) {
	return s.loadThresholds(ctx)
}

// UsageRecord returns the stored record, or CodeNotFound.
func (s *Service) UsageRecord(ctx context.Context, key models.Key) (models.Record, error) {
	r, err := s.usage.Find(ctx, key)
	if err != nil {
		return models.Record{}, wrapRecordErr(err, "failed to load usage record")
	}
	return r, nil
}

// SetAdmin transfers the monitor to next.
func (s *Service) SetAdmin(ctx context.Context, caller, next domain.Principal) (err error) {
	ctx, span := tracing.Start(ctx, module, "SetAdmin")
	defer func() { tracing.End(span, err) }()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.admins.Transfer(txCtx, caller, next)
	})
	if err != nil {
		s.rejected(ctx, caller, "set_admin", err)
		return err
	}

	s.metrics.IncrementMutation("set_admin")
	s.auditor.Emit(ctx, audit.EventAdminTransferred, audit.Fields{Actor: caller, Subject: next, Height: s.heightOrZero(ctx)})
	s.logger.InfoContext(ctx, "usage admin transferred", "caller", caller, "new_admin", next)
	return nil
}

func (s *Service) Admin(ctx context.Context) (domain.Principal, error) {
	return s.admins.Current(ctx)
}

func (s *Service) flag(ctx context.Context, key models.Key, r models.Record, flagged []string) {
	h := s.heightOrZero(ctx)
	s.auditor.Emit(ctx, audit.EventExcessiveUsage, audit.Fields{Subject: key.Recipient, Reason: strings.Join(flagged, ","), Height: h})
	s.logger.InfoContext(ctx, "excessive usage detected", "period", key.Period.String(), "flagged", flagged)

	if s.alerts == nil {
		return
	}
	err := s.alerts.Publish(ctx, alerts.Alert{
		Recipient:   key.Recipient.String(),
		Period:      uint32(key.Period),
		Flagged:     flagged,
		Electricity: r.Electricity,
		Water:       r.Water,
		Gas:         r.Gas,
		Height:      h.Uint64(),
		DetectedAt:  requestcontext.Now(ctx),
	})
	if err != nil {
		s.metrics.IncrementAlertFailures()
		s.logger.WarnContext(ctx, "failed to publish excess alert", "error", err)
	}
}

func (s *Service) loadThresholds(ctx context.Context) (models.Thresholds, error) {
	t, err := s.thresholds.LoadThresholds(ctx)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.Thresholds{}, dErrors.New(dErrors.CodeInternal, "usage thresholds not configured")
		}
		return models.Thresholds{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load usage thresholds")
	}
	return t, nil
}

func (s *Service) currentHeight(ctx context.Context) (domain.Height, error) {
	h, err := s.heights.Current(ctx)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "height source unavailable")
	}
	return h, nil
}

func (s *Service) heightOrZero(ctx context.Context) domain.Height {
	h, err := s.heights.Current(ctx)
	if err != nil {
		return 0
	}
	return h
}

// Authorize fails with NOT_ADMIN unless caller administers the monitor. Handlers
// call it before decoding a mutation so a non-admin learns nothing about the
// payload rules. A refusal is audited under op like a rejected mutation.
func (s *Service) Authorize(ctx context.Context, caller domain.Principal, op string) (err error) {
	ctx, span := tracing.Start(ctx, module, "Authorize")
	defer func() { tracing.End(span, err) }()

	if err = s.admins.Require(ctx, caller); err != nil {
		s.rejected(ctx, caller, op, err)
	}
	return err
}

func (s *Service) rejected(ctx context.Context, caller domain.Principal, op string, err error) {
	if dErrors.HasCode(err, dErrors.CodeForbidden) {
		s.metrics.IncrementAdminRejections()
		s.auditor.Emit(ctx, audit.EventAdminRejected, audit.Fields{
			Actor:    caller,
			Decision: audit.DecisionRejected,
			Reason:   op,
			Height:   s.heightOrZero(ctx),
		})
		s.logger.WarnContext(ctx, "non-admin mutation rejected", "caller", caller, "operation", op)
		return
	}
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		s.logger.ErrorContext(ctx, "usage operation failed", "operation", op, "error", err)
	}
}

func validateKey(key models.Key) error {
	if key.Recipient.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "recipient is required")
	}
	if key.Period == 0 {
		return dErrors.New(dErrors.CodeValidation, "period is required")
	}
	return nil
}

func wrapRecordErr(err error, msg string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "usage record not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}
