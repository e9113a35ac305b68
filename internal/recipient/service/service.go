package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks RecipientStore,CriteriaStore,AdminAuthority,HeightSource,AuditPublisher

import (
	"context"
	"errors"
	"log/slog"

	"benefitd/internal/recipient/metrics"
	"benefitd/internal/recipient/models"
	"benefitd/pkg/domain"
	dErrors "benefitd/pkg/domain-errors"
	audit "benefitd/pkg/platform/audit"
	"benefitd/pkg/platform/sentinel"
	"benefitd/pkg/platform/tracing"
	txcontext "benefitd/pkg/platform/tx"
)

const module = "recipient"

// RecipientStore persists recipient records.
//
// Find, Update and Delete return sentinel.ErrNotFound for an absent identity;
// Create returns sentinel.ErrAlreadyUsed for a present one.
type RecipientStore interface {
	Find(ctx context.Context, identity domain.Principal) (*models.Recipient, error)
	Create(ctx context.Context, r *models.Recipient) error
	Update(ctx context.Context, r *models.Recipient) error
	Delete(ctx context.Context, identity domain.Principal) error
}

type CriteriaStore interface {
	LoadCriteria(ctx context.Context) (models.Criteria, error)
	SaveCriteria(ctx context.Context, c models.Criteria) error
	SeedCriteria(ctx context.Context, c models.Criteria) error
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

// Service runs the recipient registry.
type Service struct {
	recipients         RecipientStore
	criteria           CriteriaStore
	admins             AdminAuthority
	heights            HeightSource
	verificationPeriod uint64
	tx                 txcontext.Runner
	logger             *slog.Logger
	metrics            *metrics.Metrics

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

// WithVerificationPeriod sets how many blocks a verification stays valid.
// It is fixed for the life of the service.
func WithVerificationPeriod(period uint64) Option {
	return func(s *Service) {
		s.verificationPeriod = period
	}
}

func New(recipients RecipientStore, criteria CriteriaStore, admins AdminAuthority, heights HeightSource, opts ...Option) (*Service, error) {
	if recipients == nil {
		return nil, errors.New("recipient store is required")
	}
	if criteria == nil {
		return nil, errors.New("criteria store is required")
	}
	if admins == nil {
		return nil, errors.New("admin authority is required")
	}
	if heights == nil {
		return nil, errors.New("height source is required")
	}
	s := &Service{
		recipients:         recipients,
		criteria:           criteria,
		admins:             admins,
		heights:            heights,
		verificationPeriod: models.DefaultVerificationPeriod,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.verificationPeriod == 0 {
		return nil, errors.New("verification period must be positive")
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

// Bootstrap seeds the criteria a fresh deployment starts with.
func (s *Service) Bootstrap(ctx context.Context, defaults models.Criteria) error {
	if err := defaults.Validate(); err != nil {
		return err
	}
	if err := s.criteria.SeedCriteria(ctx, defaults); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to seed eligibility criteria")
	}
	return nil
}

// Register adds a recipient, evaluating eligibility against the current
// criteria and stamping the current height.
func (s *Service) Register(ctx context.Context, caller, identity domain.Principal, income, householdSize int64) (rec *models.Recipient, err error) {
	ctx, span := tracing.Start(ctx, module, "Register")
	defer func() { tracing.End(span, err) }()

	var h domain.Height
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.admins.Require(txCtx, caller); err != nil {
			return err
		}
		if err := models.ValidateIdentity(identity); err != nil {
			return err
		}
		c, err := s.loadCriteria(txCtx)
		if err != nil {
			return err
		}
		if h, err = s.currentHeight(txCtx); err != nil {
			return err
		}
		r, err := models.NewRecipient(identity, income, householdSize, c, h)
		if err != nil {
			return err
		}
		if err := s.recipients.Create(txCtx, r); err != nil {
			if errors.Is(err, sentinel.ErrAlreadyUsed) {
				return dErrors.New(dErrors.CodeConflict, "recipient already registered")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to register recipient")
		}
		rec = r
		return nil
	})
	if err != nil {
		s.rejected(ctx, caller, "register", err)
		return nil, err
	}

	s.metrics.IncrementMutation("register")
	s.auditor.Emit(ctx, audit.EventRecipientRegistered, audit.Fields{Actor: caller, Subject: identity, Height: h})
	s.logger.InfoContext(ctx, "recipient registered",
		"caller", caller,
		"is_eligible", rec.IsEligible,
		"height", h.Uint64(),
	)
	return rec, nil
}

// Update replaces a recipient's household data, recomputing eligibility and
// refreshing the verification height.
func (s *Service) Update(ctx context.Context, caller, identity domain.Principal, income, householdSize int64) (rec *models.Recipient, err error) {
	ctx, span := tracing.Start(ctx, module, "Update")
	defer func() { tracing.End(span, err) }()

	var h domain.Height
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.admins.Require(txCtx, caller); err != nil {
			return err
		}
		c, err := s.loadCriteria(txCtx)
		if err != nil {
			return err
		}
		if h, err = s.currentHeight(txCtx); err != nil {
			return err
		}
		r, err := models.NewRecipient(identity, income, householdSize, c, h)
		if err != nil {
			return err
		}
		if err := s.recipients.Update(txCtx, r); err != nil {
			return wrapRecipientErr(err, "failed to update recipient")
		}
		rec = r
		return nil
	})
	if err != nil {
		s.rejected(ctx, caller, "update", err)
		return nil, err
	}

	s.metrics.IncrementMutation("update")
	s.auditor.Emit(ctx, audit.EventRecipientUpdated, audit.Fields{Actor: caller, Subject: identity, Height: h})
	s.logger.InfoContext(ctx, "recipient updated", "caller", caller, "is_eligible", rec.IsEligible)
	return rec, nil
}

// Remove deletes a recipient. The identity may be registered again later.
func (s *Service) Remove(ctx context.Context, caller, identity domain.Principal) (err error) {
	ctx, span := tracing.Start(ctx, module, "Remove")
	defer func() { tracing.End(span, err) }()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.admins.Require(txCtx, caller); err != nil {
			return err
		}
		if err := s.recipients.Delete(txCtx, identity); err != nil {
			return wrapRecipientErr(err, "failed to remove recipient")
		}
		return nil
	})
	if err != nil {
		s.rejected(ctx, caller, "remove", err)
		return err
	}

	s.metrics.IncrementMutation("remove")
	s.auditor.Emit(ctx, audit.EventRecipientRemoved, audit.Fields{Actor: caller, Subject: identity, Height: s.heightOrZero(ctx)})
	s.logger.InfoContext(ctx, "recipient removed", "caller", caller)
	return nil
}

// IsEligible returns the stored eligibility flag. It fails with CodeExpired
// once the verification is verificationPeriod blocks old; the flag is never
// recomputed here.
func (s *Service) IsEligible(ctx context.Context, identity domain.Principal) (eligible bool, err error) {
	ctx, span := tracing.Start(ctx, module, "IsEligible")
	defer func() { tracing.End(span, err) }()

	r, err := s.recipients.Find(ctx, identity)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.metrics.IncrementEligibilityCheck(metrics.OutcomeNotFound)
		}
		return false, wrapRecipientErr(err, "failed to load recipient")
	}
	h, err := s.currentHeight(ctx)
	if err != nil {
		return false, err
	}
	if r.Expired(h, s.verificationPeriod) {
		s.metrics.IncrementEligibilityCheck(metrics.OutcomeExpired)
		return false, dErrors.New(dErrors.CodeExpired, "recipient verification has expired")
	}
	if r.IsEligible {
		s.metrics.IncrementEligibilityCheck(metrics.OutcomeEligible)
	} else {
		s.metrics.IncrementEligibilityCheck(metrics.OutcomeIneligible)
	}
	return r.IsEligible, nil
}

// UpdateCriteria replaces the eligibility criteria. Existing records keep the
// flag computed when they were last written.
func (s *Service) UpdateCriteria(ctx context.Context, caller domain.Principal, c models.Criteria) (err error) {
	ctx, span := tracing.Start(ctx, module, "UpdateCriteria")
	defer func() { tracing.End(span, err) }()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.admins.Require(txCtx, caller); err != nil {
			return err
		}
		if err := c.Validate(); err != nil {
			return err
		}
		if err := s.criteria.SaveCriteria(txCtx, c); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save eligibility criteria")
		}
		return nil
	})
	if err != nil {
		s.rejected(ctx, caller, "update_criteria", err)
		return err
	}

	s.metrics.IncrementMutation("update_criteria")
	s.auditor.Emit(ctx, audit.EventCriteriaUpdated, audit.Fields{Actor: caller, Height: s.heightOrZero(ctx)})
	s.logger.InfoContext(ctx, "eligibility criteria updated",
		"caller", caller,
		"income_threshold", c.IncomeThreshold,
		"household_multiplier", c.HouseholdMultiplier,
	)
	return nil
}

// Recipient returns the stored record, or CodeNotFound.
func (s *Service) Recipient(ctx context.Context, identity domain.Principal) (*models.Recipient, error) {
	r, err := s.recipients.Find(ctx, identity)
	if err != nil {
		return nil, wrapRecipientErr(err, "failed to load recipient")
	}
	return r, nil
}

// Criteria returns the current criteria with the fixed verification period.
func (s *Service) Criteria(ctx context.Context) (models.CriteriaView, error) {
	c, err := s.loadCriteria(ctx)
	if err != nil {
		return models.CriteriaView{}, err
	}
	return models.CriteriaView{Criteria: c, VerificationPeriod: s.verificationPeriod}, nil
}

// SetAdmin transfers the registry to next.
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
	s.logger.InfoContext(ctx, "recipient admin transferred", "caller", caller, "new_admin", next)
	return nil
}

func (s *Service) Admin(ctx context.Context) (domain.Principal, error) {
	return s.admins.Current(ctx)
}

func (s *Service) loadCriteria(ctx context.Context) (models.Criteria, error) {
	c, err := s.criteria.LoadCriteria(ctx)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.Criteria{}, dErrors.New(dErrors.CodeInternal, "eligibility criteria not configured")
		}
		return models.Criteria{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load eligibility criteria")
	}
	return c, nil
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

// Authorize fails with NOT_ADMIN unless caller administers the registry. Handlers
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
		s.logger.ErrorContext(ctx, "recipient operation failed", "operation", op, "error", err)
	}
}

func wrapRecipientErr(err error, msg string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "recipient not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}
