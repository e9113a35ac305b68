package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benefitd/pkg/domain"
	dErrors "benefitd/pkg/domain-errors"
)

func TestCriteriaEligible(t *testing.T) {
	c := DefaultCriteria()
	tests := []struct {
		name         string
		income, size int64
		wantEligible bool
	}{
		{"below threshold", 45000, 2, true},
		{"exactly at adjusted threshold", 70000, 2, true},
		{"just above adjusted threshold", 70001, 2, false},
		{"high income small household", 75000, 1, false},
		{"zero household uses bare threshold", 50000, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantEligible, c.Eligible(tt.income, tt.size))
		})
	}

	t.Run("raised criteria admit a previously ineligible household", func(t *testing.T) {
		raised := Criteria{IncomeThreshold: 60000, HouseholdMultiplier: 15000}
		assert.False(t, c.Eligible(85000, 2))
		assert.True(t, raised.Eligible(85000, 2))
		assert.True(t, raised.Eligible(70000, 2))
	})
}

func TestNewRecipient(t *testing.T) {
	r, err := NewRecipient("ST2CY5V39NHDPWSXMW9QDT3HC3GD6Q6XX4CFRK9AG", 45000, 2, DefaultCriteria(), 100)
	require.NoError(t, err)
	assert.True(t, r.IsEligible)
	assert.Equal(t, int64(45000), r.IncomeLevel)
	assert.Equal(t, int64(2), r.HouseholdSize)
	assert.Equal(t, domain.Height(100), r.LastVerifiedAt)

	_, err = NewRecipient("ST2CY5V39NHDPWSXMW9QDT3HC3GD6Q6XX4CFRK9AG", -1, 2, DefaultCriteria(), 100)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestValidateIdentity(t *testing.T) {
	require.NoError(t, ValidateIdentity("ST2CY5V39NHDPWSXMW9QDT3HC3GD6Q6XX4CFRK9AG"))
	require.NoError(t, ValidateIdentity("Criteria"), "route segments match case-sensitively")

	for _, id := range []domain.Principal{"", "criteria", "admin"} {
		err := ValidateIdentity(id)
		require.Error(t, err, "identity %q", id)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	}
}

func TestRecipientExpired(t *testing.T) {
	r := &Recipient{LastVerifiedAt: 100}
	const period = 31536000

	assert.False(t, r.Expired(100, period))
	assert.False(t, r.Expired(100+period-1, period))
	assert.True(t, r.Expired(100+period, period), "age equal to the period is expired")
	assert.True(t, r.Expired(100+period+1, period))
	assert.False(t, r.Expired(50, period), "a record ahead of the source is fresh")
}

func TestRequests(t *testing.T) {
	v := func(n int64) *int64 { return &n }

	t.Run("register requires a valid identity", func(t *testing.T) {
		req := &RegisterRequest{Identity: "  ", IncomeLevel: v(1), HouseholdSize: v(1)}
		assert.Error(t, req.Validate())
	})

	t.Run("register rejects identities claimed by fixed routes", func(t *testing.T) {
		req := &RegisterRequest{Identity: " criteria ", IncomeLevel: v(1), HouseholdSize: v(1)}
		err := req.Validate()
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("register trims identity", func(t *testing.T) {
		req := &RegisterRequest{Identity: " ST2CY5V39NHDPWSXMW9QDT3HC3GD6Q6XX4CFRK9AG ", IncomeLevel: v(45000), HouseholdSize: v(2)}
		require.NoError(t, req.Validate())
		assert.Equal(t, "ST2CY5V39NHDPWSXMW9QDT3HC3GD6Q6XX4CFRK9AG", req.Identity)
	})

	t.Run("update requires both fields", func(t *testing.T) {
		req := &UpdateRequest{IncomeLevel: v(1)}
		err := req.Validate()
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("criteria bounds", func(t *testing.T) {
		req := &UpdateCriteriaRequest{IncomeThreshold: v(domain.MaxQuantity + 1), HouseholdMultiplier: v(0)}
		assert.Error(t, req.Validate())
	})
}
