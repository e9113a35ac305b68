package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"benefitd/internal/admin"
	adminstore "benefitd/internal/admin/store/memory"
	"benefitd/internal/subsidy/metrics"
	"benefitd/internal/subsidy/models"
	"benefitd/internal/subsidy/service/mocks"
	"benefitd/internal/subsidy/store"
	"benefitd/pkg/domain"
	dErrors "benefitd/pkg/domain-errors"
	audit "benefitd/pkg/platform/audit"
	auditmemory "benefitd/pkg/platform/audit/store/memory"
	"benefitd/pkg/platform/sentinel"
)

const (
	deployer = domain.Principal("ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM")
	wallet1  = domain.Principal("ST2CY5V39NHDPWSXMW9QDT3HC3GD6Q6XX4CFRK9AG")
	wallet2  = domain.Principal("ST3NBRSFKX28FQ2ZJ1MAKX58HKHSDGNV5YC7WF3G8")
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// =============================================================================
// Calculator behaviour against real in-memory stores
// =============================================================================

type CalculatorSuite struct {
	suite.Suite
	params  *store.InMemoryStore
	audits  *auditmemory.InMemoryStore
	service *Service
}

func TestCalculatorSuite(t *testing.T) {
	suite.Run(t, new(CalculatorSuite))
}

func (s *CalculatorSuite) SetupTest() {
	ctx := context.Background()
	s.params = store.NewInMemory()
	s.audits = auditmemory.NewInMemoryStore()

	authority, err := admin.NewAuthority(admin.ScopeSubsidy, adminstore.New())
	s.Require().NoError(err)
	s.Require().NoError(authority.Bootstrap(ctx, deployer))

	s.service, err = New(s.params, authority,
		WithLogger(discardLogger()),
		WithAuditPublisher(auditPublisherFunc(s.audits.Append)),
	)
	s.Require().NoError(err)
	s.Require().NoError(s.service.Bootstrap(ctx, models.DefaultParameters()))
}

func (s *CalculatorSuite) TestCalculateWithDefaults() {
	ctx := context.Background()
	cases := []struct {
		income, size, want int64
	}{
		{20000, 2, 130},
		{80000, 1, 45},
		{10000, 20, 500},
		{150000, 1, 0},
	}
	for _, tc := range cases {
		got, err := s.service.Calculate(ctx, tc.income, tc.size)
		s.Require().NoError(err)
		s.Equal(tc.want, got, "Calculate(%d, %d)", tc.income, tc.size)
	}
}

func TestCalculateCountsOnlyClampedResults(t *testing.T) {
	ctx := context.Background()
	authority, err := admin.NewAuthority(admin.ScopeSubsidy, adminstore.New())
	require.NoError(t, err)
	m := metrics.NewWithRegisterer(prometheus.NewRegistry())
	svc, err := New(store.NewInMemory(), authority, WithLogger(discardLogger()), WithMetrics(m))
	require.NoError(t, err)
	require.NoError(t, svc.Bootstrap(ctx, models.DefaultParameters()))

	inputs := []struct{ income, size, want int64 }{
		{0, 16, 500},     // raw lands exactly on max
		{100000, 0, 0},   // raw lands exactly on zero
		{10000, 20, 500}, // raw 590
		{150000, 1, 0},   // raw -25
		{20000, 2, 130},
	}
	for _, in := range inputs {
		got, err := svc.Calculate(ctx, in.income, in.size)
		require.NoError(t, err)
		assert.Equal(t, in.want, got)
	}

	assert.Equal(t, 5.0, promtestutil.ToFloat64(m.Calculations))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(m.ClampedResults.WithLabelValues("max")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(m.ClampedResults.WithLabelValues("min")))
}

func (s *CalculatorSuite) TestCalculateRejectsOutOfRangeInput() {
	_, err := s.service.Calculate(context.Background(), -1, 2)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *CalculatorSuite) TestAdminUpdatesParameters() {
	ctx := context.Background()
	updated := models.Parameters{BaseSubsidy: 200, IncomeFactor: 15, HouseholdBonus: 30, MaxSubsidy: 600}

	s.Require().NoError(s.service.UpdateParameters(ctx, deployer, updated))

	got, err := s.service.Parameters(ctx)
	s.Require().NoError(err)
	s.Equal(updated, got)

	amount, err := s.service.Calculate(ctx, 20000, 2)
	s.Require().NoError(err)
	s.Equal(int64(230), amount)

	events, err := s.audits.ListByModule(ctx, "subsidy")
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal(string(audit.EventParametersUpdated), events[0].Action)
	s.Equal(deployer.String(), events[0].ActorID)
}

func (s *CalculatorSuite) TestAuthorize() {
	ctx := context.Background()

	s.Require().NoError(s.service.Authorize(ctx, deployer, "update_parameters"))

	err := s.service.Authorize(ctx, wallet1, "update_parameters")
	s.Require().Error(err)
	s.Equal(dErrors.ResultNotAdmin, dErrors.ResultCodeOf(err))

	events, err := s.audits.ListByModule(ctx, "subsidy")
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal(string(audit.EventAdminRejected), events[0].Action)
	s.Equal("update_parameters", events[0].Reason)
}

func (s *CalculatorSuite) TestNonAdminCannotUpdateParameters() {
	ctx := context.Background()

	err := s.service.UpdateParameters(ctx, wallet1, models.Parameters{BaseSubsidy: 200, IncomeFactor: 15, HouseholdBonus: 30, MaxSubsidy: 600})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	s.Equal(dErrors.ResultNotAdmin, dErrors.ResultCodeOf(err))

	got, err := s.service.Parameters(ctx)
	s.Require().NoError(err)
	s.Equal(models.DefaultParameters(), got)

	events, err := s.audits.ListByModule(ctx, "subsidy")
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal(string(audit.EventAdminRejected), events[0].Action)
	s.Equal(audit.DecisionRejected, events[0].Decision)
}

func (s *CalculatorSuite) TestInvalidParametersLeaveSnapshotUntouched() {
	ctx := context.Background()

	err := s.service.UpdateParameters(ctx, deployer, models.Parameters{BaseSubsidy: 200, IncomeFactor: -1, HouseholdBonus: 30, MaxSubsidy: 600})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))

	got, err := s.service.Parameters(ctx)
	s.Require().NoError(err)
	s.Equal(models.DefaultParameters(), got)
}

func (s *CalculatorSuite) TestSetAdmin() {
	ctx := context.Background()

	s.Run("non-admin cannot transfer", func() {
		err := s.service.SetAdmin(ctx, wallet1, wallet2)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("admin transfers and the new admin takes over", func() {
		s.Require().NoError(s.service.SetAdmin(ctx, deployer, wallet1))

		current, err := s.service.Admin(ctx)
		s.Require().NoError(err)
		s.Equal(wallet1, current)

		err = s.service.UpdateParameters(ctx, deployer, models.DefaultParameters())
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
		s.NoError(s.service.UpdateParameters(ctx, wallet1, models.DefaultParameters()))
	})
}

// =============================================================================
// Port interactions with mocks
// =============================================================================

type ServiceSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockParams         *mocks.MockParameterStore
	mockAdmins         *mocks.MockAdminAuthority
	mockAuditPublisher *mocks.MockAuditPublisher
	service            *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockParams = mocks.NewMockParameterStore(s.ctrl)
	s.mockAdmins = mocks.NewMockAdminAuthority(s.ctrl)
	s.mockAuditPublisher = mocks.NewMockAuditPublisher(s.ctrl)
	var err error
	s.service, err = New(s.mockParams, s.mockAdmins,
		WithLogger(discardLogger()),
		WithAuditPublisher(s.mockAuditPublisher),
	)
	s.Require().NoError(err)
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceSuite) TestNew() {
	s.Run("nil parameter store returns error", func() {
		_, err := New(nil, s.mockAdmins)
		s.Error(err)
		s.Contains(err.Error(), "parameter store is required")
	})

	s.Run("nil authority returns error", func() {
		_, err := New(s.mockParams, nil)
		s.Error(err)
		s.Contains(err.Error(), "admin authority is required")
	})

	s.Run("options are applied", func() {
		logger := discardLogger()
		svc, err := New(s.mockParams, s.mockAdmins, WithLogger(logger), WithAuditPublisher(s.mockAuditPublisher))
		s.Require().NoError(err)
		s.Equal(logger, svc.logger)
		s.Equal(s.mockAuditPublisher, svc.auditPublisher)
		s.NotNil(svc.tx)
	})
}

func (s *ServiceSuite) TestLoadFailures() {
	ctx := context.Background()

	s.Run("unseeded store is an internal error", func() {
		s.mockParams.EXPECT().Load(gomock.Any()).Return(models.Parameters{}, sentinel.ErrNotFound)
		_, err := s.service.Calculate(ctx, 1, 1)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})

	s.Run("store error is wrapped as internal", func() {
		s.mockParams.EXPECT().Load(gomock.Any()).Return(models.Parameters{}, assert.AnError)
		_, err := s.service.Parameters(ctx)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
		s.ErrorIs(err, assert.AnError)
	})
}

func (s *ServiceSuite) TestUpdateParameters() {
	ctx := context.Background()
	p := models.DefaultParameters()

	s.Run("rejected caller never reaches the store", func() {
		s.mockAdmins.EXPECT().Require(gomock.Any(), wallet1).Return(dErrors.New(dErrors.CodeForbidden, "caller is not the admin"))
		s.mockAuditPublisher.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e audit.Event) error {
				s.Equal(string(audit.EventAdminRejected), e.Action)
				s.Equal("update_parameters", e.Reason)
				return nil
			})

		err := s.service.UpdateParameters(ctx, wallet1, p)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("save failure is internal and not audited", func() {
		s.mockAdmins.EXPECT().Require(gomock.Any(), deployer).Return(nil)
		s.mockParams.EXPECT().Save(gomock.Any(), p).Return(assert.AnError)

		err := s.service.UpdateParameters(ctx, deployer, p)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})

	s.Run("audit failure does not fail the update", func() {
		s.mockAdmins.EXPECT().Require(gomock.Any(), deployer).Return(nil)
		s.mockParams.EXPECT().Save(gomock.Any(), p).Return(nil)
		s.mockAuditPublisher.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(assert.AnError)

		s.NoError(s.service.UpdateParameters(ctx, deployer, p))
	})
}

func (s *ServiceSuite) TestBootstrapValidatesDefaults() {
	err := s.service.Bootstrap(context.Background(), models.Parameters{MaxSubsidy: -5})
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

type auditPublisherFunc func(ctx context.Context, e audit.Event) error

func (f auditPublisherFunc) Emit(ctx context.Context, e audit.Event) error {
	return f(ctx, e)
}
