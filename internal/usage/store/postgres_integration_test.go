//go:build integration

package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"benefitd/internal/usage/models"
	"benefitd/internal/usage/store"
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
	err := s.postgres.TruncateTables(context.Background(), "usage_records", "usage_thresholds")
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) TestRecordLifecycle() {
	ctx := context.Background()
	jan := models.Key{Recipient: "ST2CY5V39NHDPWSXMW9QDT3HC3GD6Q6XX4CFRK9AG", Period: 202401}
	feb := models.Key{Recipient: jan.Recipient, Period: 202402}
	r := models.Record{Electricity: 450, Water: 12000, Gas: 80, RecordedAt: 100}

	s.Require().NoError(s.store.Create(ctx, jan, r))
	s.ErrorIs(s.store.Create(ctx, jan, r), sentinel.ErrAlreadyUsed)
	s.Require().NoError(s.store.Create(ctx, feb, r))

	got, err := s.store.Find(ctx, jan)
	s.Require().NoError(err)
	s.Equal(r, got)

	updated := models.Record{Electricity: 600, Water: 16000, Gas: 120, RecordedAt: 150}
	s.Require().NoError(s.store.Update(ctx, jan, updated))
	got, err = s.store.Find(ctx, jan)
	s.Require().NoError(err)
	s.Equal(updated, got)

	got, err = s.store.Find(ctx, feb)
	s.Require().NoError(err)
	s.Equal(r, got)

	missing := models.Key{Recipient: jan.Recipient, Period: 202403}
	_, err = s.store.Find(ctx, missing)
	s.ErrorIs(err, sentinel.ErrNotFound)
	s.ErrorIs(s.store.Update(ctx, missing, r), sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestThresholds() {
	ctx := context.Background()

	_, err := s.store.LoadThresholds(ctx)
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.Require().NoError(s.store.SeedThresholds(ctx, models.DefaultThresholds()))
	s.Require().NoError(s.store.SeedThresholds(ctx, models.Thresholds{Gas: 1}))
	got, err := s.store.LoadThresholds(ctx)
	s.Require().NoError(err)
	s.Equal(models.DefaultThresholds(), got)

	raised := models.Thresholds{Electricity: 600, Water: 20000, Gas: 150}
	s.Require().NoError(s.store.SaveThresholds(ctx, raised))
	got, err = s.store.LoadThresholds(ctx)
	s.Require().NoError(err)
	s.Equal(raised, got)
}
