package store

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benefitd/internal/recipient/models"
	"benefitd/pkg/domain"
	"benefitd/pkg/platform/sentinel"
)

func TestInMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()
	id := domain.Principal("ST2CY5V39NHDPWSXMW9QDT3HC3GD6Q6XX4CFRK9AG")
	r := &models.Recipient{Identity: id, IsEligible: true, IncomeLevel: 45000, HouseholdSize: 2, LastVerifiedAt: 100}

	require.NoError(t, s.Create(ctx, r))
	assert.ErrorIs(t, s.Create(ctx, r), sentinel.ErrAlreadyUsed)

	got, err := s.Find(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, *r, *got)

	// Mutating the returned copy must not touch the stored record.
	got.IncomeLevel = 1
	again, _ := s.Find(ctx, id)
	assert.Equal(t, int64(45000), again.IncomeLevel)

	updated := *r
	updated.IncomeLevel = 80000
	updated.IsEligible = false
	require.NoError(t, s.Update(ctx, &updated))
	got, _ = s.Find(ctx, id)
	assert.Equal(t, updated, *got)

	require.NoError(t, s.Delete(ctx, id))
	_, err = s.Find(ctx, id)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, id), sentinel.ErrNotFound)
	assert.ErrorIs(t, s.Update(ctx, r), sentinel.ErrNotFound)

	require.NoError(t, s.Create(ctx, r), "identity can be registered again after removal")
}

func TestInMemoryStoreConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()
	var wg sync.WaitGroup
	var wins atomic.Int32
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.Create(ctx, &models.Recipient{Identity: "ST3NBRSFKX28FQ2ZJ1MAKX58HKHSDGNV5YC7WF3G8"}) == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), wins.Load())
}

func TestInMemoryCriteria(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()

	_, err := s.LoadCriteria(ctx)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	require.NoError(t, s.SeedCriteria(ctx, models.DefaultCriteria()))
	require.NoError(t, s.SeedCriteria(ctx, models.Criteria{IncomeThreshold: 1}))
	c, err := s.LoadCriteria(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCriteria(), c)

	require.NoError(t, s.SaveCriteria(ctx, models.Criteria{IncomeThreshold: 60000, HouseholdMultiplier: 15000}))
	c, _ = s.LoadCriteria(ctx)
	assert.Equal(t, int64(60000), c.IncomeThreshold)
}
