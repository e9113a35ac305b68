package admin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"benefitd/internal/admin"
	"benefitd/internal/admin/store/memory"
	"benefitd/pkg/domain"
	dErrors "benefitd/pkg/domain-errors"
)

const (
	deployer = domain.Principal("ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM")
	wallet1  = domain.Principal("ST2CY5V39NHDPWSXMW9QDT3HC3GD6Q6XX4CFRK9AG")
	wallet2  = domain.Principal("ST3NBRSFKX28FQ2ZJ1MAKX58HKHSDGNV5YC7WF3G8")
)

type AuthoritySuite struct {
	suite.Suite
	store     *memory.Store
	authority *admin.Authority
}

func TestAuthoritySuite(t *testing.T) {
	suite.Run(t, new(AuthoritySuite))
}

func (s *AuthoritySuite) SetupTest() {
	s.store = memory.New()
	a, err := admin.NewAuthority(admin.ScopeSubsidy, s.store)
	s.Require().NoError(err)
	s.Require().NoError(a.Bootstrap(context.Background(), deployer))
	s.authority = a
}

func (s *AuthoritySuite) TestNewAuthority() {
	s.Run("nil store returns error", func() {
		_, err := admin.NewAuthority(admin.ScopeUsage, nil)
		s.Error(err)
	})

	s.Run("unknown scope returns error", func() {
		_, err := admin.NewAuthority(admin.Scope("treasury"), s.store)
		s.Error(err)
	})
}

func (s *AuthoritySuite) TestRequire() {
	ctx := context.Background()

	s.Run("admin passes", func() {
		s.NoError(s.authority.Require(ctx, deployer))
	})

	s.Run("other principal is forbidden", func() {
		err := s.authority.Require(ctx, wallet1)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
		s.Equal(dErrors.ResultNotAdmin, dErrors.ResultCodeOf(err))
	})

	s.Run("missing caller is forbidden", func() {
		err := s.authority.Require(ctx, "")
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})
}

func (s *AuthoritySuite) TestTransfer() {
	ctx := context.Background()

	s.Run("non-admin cannot transfer", func() {
		err := s.authority.Transfer(ctx, wallet1, wallet2)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
		current, err := s.authority.Current(ctx)
		s.Require().NoError(err)
		s.Equal(deployer, current)
	})

	s.Run("admin hands over and loses rights", func() {
		s.Require().NoError(s.authority.Transfer(ctx, deployer, wallet1))

		current, err := s.authority.Current(ctx)
		s.Require().NoError(err)
		s.Equal(wallet1, current)
		s.True(dErrors.HasCode(s.authority.Require(ctx, deployer), dErrors.CodeForbidden))
		s.NoError(s.authority.Require(ctx, wallet1))
	})

	s.Run("empty successor is rejected", func() {
		err := s.authority.Transfer(ctx, wallet1, "")
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *AuthoritySuite) TestBootstrapKeepsTransferredAdmin() {
	ctx := context.Background()
	s.Require().NoError(s.authority.Transfer(ctx, deployer, wallet2))

	s.Require().NoError(s.authority.Bootstrap(ctx, deployer))

	current, err := s.authority.Current(ctx)
	s.Require().NoError(err)
	s.Equal(wallet2, current)
}

func (s *AuthoritySuite) TestScopesAreIndependent() {
	ctx := context.Background()
	usage, err := admin.NewAuthority(admin.ScopeUsage, s.store)
	s.Require().NoError(err)
	s.Require().NoError(usage.Bootstrap(ctx, deployer))

	s.Require().NoError(s.authority.Transfer(ctx, deployer, wallet1))

	s.NoError(usage.Require(ctx, deployer))
	s.True(dErrors.HasCode(usage.Require(ctx, wallet1), dErrors.CodeForbidden))
}

func TestParseScope(t *testing.T) {
	for _, scope := range admin.Scopes {
		got, err := admin.ParseScope(string(scope))
		if err != nil || got != scope {
			t.Fatalf("ParseScope(%q) = %q, %v", scope, got, err)
		}
	}
	if _, err := admin.ParseScope("SUBSIDY"); !dErrors.HasCode(err, dErrors.CodeNotFound) {
		t.Fatalf("expected not found for unknown scope, got %v", err)
	}
}
