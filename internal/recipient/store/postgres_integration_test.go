//go:build integration

package store_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	"benefitd/internal/recipient/models"
	"benefitd/internal/recipient/store"
	"benefitd/pkg/domain"
	"benefitd/pkg/platform/sentinel"
	"benefitd/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(), "recipients", "eligibility_criteria")
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) TestLifecycle() {
	ctx := context.Background()
	id := domain.Principal("ST2CY5V39NHDPWSXMW9QDT3HC3GD6Q6XX4CFRK9AG")
	r := &models.Recipient{Identity: id, IsEligible: true, IncomeLevel: 45000, HouseholdSize: 2, LastVerifiedAt: 100}

	s.Require().NoError(s.store.Create(ctx, r))
	s.ErrorIs(s.store.Create(ctx, r), sentinel.ErrAlreadyUsed)

	got, err := s.store.Find(ctx, id)
	s.Require().NoError(err)
	s.Equal(*r, *got)

	updated := *r
	updated.IncomeLevel = 80000
	updated.IsEligible = false
	updated.LastVerifiedAt = 250
	s.Require().NoError(s.store.Update(ctx, &updated))
	got, err = s.store.Find(ctx, id)
	s.Require().NoError(err)
	s.Equal(updated, *got)

	s.Require().NoError(s.store.Delete(ctx, id))
	_, err = s.store.Find(ctx, id)
	s.ErrorIs(err, sentinel.ErrNotFound)
	s.ErrorIs(s.store.Delete(ctx, id), sentinel.ErrNotFound)
	s.ErrorIs(s.store.Update(ctx, r), sentinel.ErrNotFound)
}

// TestConcurrentRegistration verifies that racing creates of one identity
// produce exactly one success.
func (s *PostgresStoreSuite) TestConcurrentRegistration() {
	ctx := context.Background()
	const goroutines = 30

	var wg sync.WaitGroup
	var wins, conflicts atomic.Int32
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.store.Create(ctx, &models.Recipient{Identity: "ST3NBRSFKX28FQ2ZJ1MAKX58HKHSDGNV5YC7WF3G8"})
			if err == nil {
				wins.Add(1)
			} else if err == sentinel.ErrAlreadyUsed {
				conflicts.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), wins.Load())
	s.Equal(int32(goroutines-1), conflicts.Load())
}

func (s *PostgresStoreSuite) TestCriteria() {
	ctx := context.Background()

	_, err := s.store.LoadCriteria(ctx)
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.Require().NoError(s.store.SeedCriteria(ctx, models.DefaultCriteria()))
	s.Require().NoError(s.store.SeedCriteria(ctx, models.Criteria{IncomeThreshold: 1}))
	c, err := s.store.LoadCriteria(ctx)
	s.Require().NoError(err)
	s.Equal(models.DefaultCriteria(), c)

	raised := models.Criteria{IncomeThreshold: 60000, HouseholdMultiplier: 15000}
	s.Require().NoError(s.store.SaveCriteria(ctx, raised))
	c, err = s.store.LoadCriteria(ctx)
	s.Require().NoError(err)
	s.Equal(raised, c)
}
