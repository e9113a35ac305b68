package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benefitd/internal/subsidy/models"
	"benefitd/pkg/platform/sentinel"
)

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()

	_, err := s.Load(ctx)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	require.NoError(t, s.Seed(ctx, models.DefaultParameters()))
	require.NoError(t, s.Seed(ctx, models.Parameters{BaseSubsidy: 1}))
	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultParameters(), got, "seed must not overwrite")

	updated := models.Parameters{BaseSubsidy: 200, IncomeFactor: 15, HouseholdBonus: 30, MaxSubsidy: 600}
	require.NoError(t, s.Save(ctx, updated))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}
