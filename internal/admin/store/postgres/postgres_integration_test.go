//go:build integration

package postgres_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	"benefitd/internal/admin"
	adminpg "benefitd/internal/admin/store/postgres"
	"benefitd/pkg/domain"
	dErrors "benefitd/pkg/domain-errors"
	"benefitd/pkg/platform/sentinel"
	txcontext "benefitd/pkg/platform/tx"
	"benefitd/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *adminpg.Store
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = adminpg.New(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "module_admins"))
}

func (s *PostgresStoreSuite) TestSeedThenSave() {
	ctx := context.Background()

	_, err := s.store.Find(ctx, admin.ScopeUsage)
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.Require().NoError(s.store.Seed(ctx, admin.ScopeUsage, "ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM"))
	s.Require().NoError(s.store.Seed(ctx, admin.ScopeUsage, "ignored"))
	got, err := s.store.Find(ctx, admin.ScopeUsage)
	s.Require().NoError(err)
	s.Equal(domain.Principal("ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM"), got)

	s.Require().NoError(s.store.Save(ctx, admin.ScopeUsage, "ST2CY5V39NHDPWSXMW9QDT3HC3GD6Q6XX4CFRK9AG"))
	got, err = s.store.Find(ctx, admin.ScopeUsage)
	s.Require().NoError(err)
	s.Equal(domain.Principal("ST2CY5V39NHDPWSXMW9QDT3HC3GD6Q6XX4CFRK9AG"), got)
}

// TestConcurrentTransfersSerialize checks that the row lock taken by Find
// inside a transaction lets exactly one racing transfer from the same admin win.
func (s *PostgresStoreSuite) TestConcurrentTransfersSerialize() {
	ctx := context.Background()
	const deployer = domain.Principal("ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM")
	s.Require().NoError(s.store.Seed(ctx, admin.ScopeSubsidy, deployer))

	authority, err := admin.NewAuthority(admin.ScopeSubsidy, s.store)
	s.Require().NoError(err)
	runner := txcontext.NewSQLRunner(s.postgres.DB)

	const goroutines = 20
	var wg sync.WaitGroup
	var wins, forbidden atomic.Int32
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			next := domain.Principal("NEXT" + string(rune('A'+i)))
			err := runner.RunInTx(ctx, func(txCtx context.Context) error {
				return authority.Transfer(txCtx, deployer, next)
			})
			switch {
			case err == nil:
				wins.Add(1)
			case dErrors.HasCode(err, dErrors.CodeForbidden):
				forbidden.Add(1)
			}
		}(i)
	}
	wg.Wait()

	s.Equal(int32(1), wins.Load())
	s.Equal(int32(goroutines-1), forbidden.Load())
}
