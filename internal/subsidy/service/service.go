package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks ParameterStore,AdminAuthority,AuditPublisher

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"benefitd/internal/subsidy/metrics"
	"benefitd/internal/subsidy/models"
	"benefitd/pkg/domain"
	dErrors "benefitd/pkg/domain-errors"
	audit "benefitd/pkg/platform/audit"
	"benefitd/pkg/platform/sentinel"
	"benefitd/pkg/platform/tracing"
	txcontext "benefitd/pkg/platform/tx"
)

const module = "subsidy"

type ParameterStore interface {
	Load(ctx context.Context) (models.Parameters, error)
	Save(ctx context.Context, p models.Parameters) error
	Seed(ctx context.Context, p models.Parameters) error
}

type AdminAuthority interface {
	Require(ctx context.Context, caller domain.Principal) error
	Transfer(ctx context.Context, caller, next domain.Principal) error
	Current(ctx context.Context) (domain.Principal, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// HeightSource stamps audit events. It is optional for the calculator.
type HeightSource interface {
	Current(ctx context.Context) (domain.Height, error)
}

// Service computes subsidies and guards parameter changes.
type Service struct {
	params  ParameterStore
	admins  AdminAuthority
	tx      txcontext.Runner
	heights HeightSource
	logger  *slog.Logger
	metrics *metrics.Metrics

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

// WithTxRunner replaces the default in-process lock, e.g. with a SQL runner.
func WithTxRunner(r txcontext.Runner) Option {
	return func(s *Service) {
		s.tx = r
	}
}

func WithHeightSource(h HeightSource) Option {
	return func(s *Service) {
		s.heights = h
	}
}

func New(params ParameterStore, admins AdminAuthority, opts ...Option) (*Service, error) {
	if params == nil {
		return nil, errors.New("parameter store is required")
	}
	if admins == nil {
		return nil, errors.New("admin authority is required")
	}
	s := &Service{params: params, admins: admins}
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

// Bootstrap seeds the parameters a fresh deployment starts with.
func (s *Service) Bootstrap(ctx context.Context, defaults models.Parameters) error {
	if err := defaults.Validate(); err != nil {
		return err
	}
	if err := s.params.Seed(ctx, defaults); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to seed subsidy parameters")
	}
	return nil
}

// Calculate applies the current parameters to one household.
func (s *Service) Calculate(ctx context.Context, income, householdSize int64) (amount int64, err error) {
	ctx, span := tracing.Start(ctx, module, "Calculate",
		attribute.Int64("household_size", householdSize))
	defer func() { tracing.End(span, err) }()

	if err := models.ValidateInputs(income, householdSize); err != nil {
		return 0, err
	}
	p, err := s.loadParameters(ctx)
	if err != nil {
		return 0, err
	}
	amount = p.Calculate(income, householdSize)
	s.metrics.ObserveCalculation(amount, clampBound(p.Raw(income, householdSize), p))
	return amount, nil
}

// Parameters returns the current parameter snapshot.
func (s *Service) Parameters(ctx context.Context) (models.Parameters, error) {
	return s.loadParameters(ctx)
}

// UpdateParameters replaces all four parameters. Only the admin may call it
// and a rejected call leaves the previous parameters untouched.
func (s *Service) UpdateParameters(ctx context.Context, caller domain.Principal, p models.Parameters) (err error) {
	ctx, span := tracing.Start(ctx, module, "UpdateParameters")
	defer func() { tracing.End(span, err) }()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.admins.Require(txCtx, caller); err != nil {
			return err
		}
		if err := p.Validate(); err != nil {
			return err
		}
		if err := s.params.Save(txCtx, p); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save subsidy parameters")
		}
		return nil
	})
	if err != nil {
		s.rejected(ctx, caller, "update_parameters", err)
		return err
	}

	s.metrics.IncrementParameterUpdates()
	s.auditor.Emit(ctx, audit.EventParametersUpdated, audit.Fields{Actor: caller, Height: s.height(ctx)})
	s.logger.InfoContext(ctx, "subsidy parameters updated",
		"caller", caller,
		"base_subsidy", p.BaseSubsidy,
		"income_factor", p.IncomeFactor,
		"household_bonus", p.HouseholdBonus,
		"max_subsidy", p.MaxSubsidy,
	)
	return nil
}

// SetAdmin transfers the calculator to next.
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

	s.metrics.IncrementAdminTransfers()
	s.auditor.Emit(ctx, audit.EventAdminTransferred, audit.Fields{Actor: caller, Subject: next, Height: s.height(ctx)})
	s.logger.InfoContext(ctx, "subsidy admin transferred", "caller", caller, "new_admin", next)
	return nil
}

// Admin returns the current admin.
func (s *Service) Admin(ctx context.Context) (domain.Principal, error) {
	return s.admins.Current(ctx)
}

func (s *Service) loadParameters(ctx context.Context) (models.Parameters, error) {
	p, err := s.params.Load(ctx)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.Parameters{}, dErrors.New(dErrors.CodeInternal, "subsidy parameters not configured")
		}
		return models.Parameters{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load subsidy parameters")
	}
	return p, nil
}

// Authorize fails with NOT_ADMIN unless caller administers the calculator. Handlers
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

// rejected records admin rejections; other failures are only logged.
func (s *Service) rejected(ctx context.Context, caller domain.Principal, op string, err error) {
	if dErrors.HasCode(err, dErrors.CodeForbidden) {
		s.metrics.IncrementAdminRejections()
		s.auditor.Emit(ctx, audit.EventAdminRejected, audit.Fields{
			Actor:    caller,
			Decision: audit.DecisionRejected,
			Reason:   op,
			Height:   s.height(ctx),
		})
		s.logger.WarnContext(ctx, "non-admin mutation rejected", "caller", caller, "operation", op)
		return
	}
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		s.logger.ErrorContext(ctx, "subsidy operation failed", "operation", op, "error", err)
	}
}

// height is best effort; audit events fall back to zero when no source is set.
func (s *Service) height(ctx context.Context) domain.Height {
	if s.heights == nil {
		return 0
	}
	h, err := s.heights.Current(ctx)
	if err != nil {
		return 0
	}
	return h
}

// clampBound names the bound a raw value was clamped to. A raw value equal to
// a bound is not clamped.
func clampBound(raw int64, p models.Parameters) string {
	switch {
	case raw < 0:
		return "min"
	case raw > p.MaxSubsidy:
		return "max"
	default:
		return ""
	}
}
