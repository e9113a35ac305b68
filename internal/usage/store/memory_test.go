package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benefitd/internal/usage/models"
	"benefitd/pkg/platform/sentinel"
)

func TestInMemoryStoreRecords(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()
	jan := models.Key{Recipient: "ST2CY5V39NHDPWSXMW9QDT3HC3GD6Q6XX4CFRK9AG", Period: 202401}
	feb := models.Key{Recipient: jan.Recipient, Period: 202402}
	r := models.Record{Electricity: 450, Water: 12000, Gas: 80, RecordedAt: 100}

	require.NoError(t, s.Create(ctx, jan, r))
	assert.ErrorIs(t, s.Create(ctx, jan, models.Record{}), sentinel.ErrAlreadyUsed)

	_, err := s.Find(ctx, feb)
	assert.ErrorIs(t, err, sentinel.ErrNotFound, "periods are independent keys")
	assert.ErrorIs(t, s.Update(ctx, feb, r), sentinel.ErrNotFound)

	updated := models.Record{Electricity: 600, Water: 16000, Gas: 120, RecordedAt: 150}
	require.NoError(t, s.Update(ctx, jan, updated))
	got, err := s.Find(ctx, jan)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestInMemoryStoreThresholds(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()

	_, err := s.LoadThresholds(ctx)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	require.NoError(t, s.SeedThresholds(ctx, models.DefaultThresholds()))
	require.NoError(t, s.SeedThresholds(ctx, models.Thresholds{Electricity: 1}))
	got, err := s.LoadThresholds(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultThresholds(), got)

	raised := models.Thresholds{Electricity: 600, Water: 20000, Gas: 150}
	require.NoError(t, s.SaveThresholds(ctx, raised))
	got, err = s.LoadThresholds(ctx)
	require.NoError(t, err)
	assert.Equal(t, raised, got)
}
