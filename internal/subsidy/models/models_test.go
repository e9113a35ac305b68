package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benefitd/pkg/domain"
	dErrors "benefitd/pkg/domain-errors"
)

func TestCalculate(t *testing.T) {
	defaults := DefaultParameters()
	tests := []struct {
		name          string
		params        Parameters
		income        int64
		householdSize int64
		want          int64
	}{
		{"typical household", defaults, 20000, 2, 130},
		{"higher income", defaults, 80000, 1, 45},
		{"clamped to max", defaults, 10000, 20, 500},
		{"clamped to zero", defaults, 150000, 1, 0},
		{"zero inputs return base", defaults, 0, 0, 100},
		{"reduction floors", defaults, 9999, 0, 100},
		{"updated parameters", Parameters{200, 15, 30, 600}, 20000, 2, 230},
		{"zero max always zero", Parameters{100, 10, 25, 0}, 0, 5, 0},
		{"largest inputs stay exact", Parameters{domain.MaxQuantity, domain.MaxIncomeFactor, domain.MaxQuantity, domain.MaxQuantity}, domain.MaxQuantity, domain.MaxHouseholdSize, domain.MaxQuantity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.params.Calculate(tt.income, tt.householdSize))
		})
	}
}

func TestRaw(t *testing.T) {
	defaults := DefaultParameters()
	assert.Equal(t, int64(130), defaults.Raw(20000, 2))
	assert.Equal(t, int64(590), defaults.Raw(10000, 20))
	assert.Equal(t, int64(-25), defaults.Raw(150000, 1))
}

func FuzzCalculateBounded(f *testing.F) {
	f.Add(int64(20000), int64(2), int64(100), int64(10), int64(25), int64(500))
	f.Add(int64(0), int64(0), int64(0), int64(0), int64(0), int64(0))
	f.Fuzz(func(t *testing.T, income, size, base, factor, bonus, maxSubsidy int64) {
		p := Parameters{BaseSubsidy: base, IncomeFactor: factor, HouseholdBonus: bonus, MaxSubsidy: maxSubsidy}
		if p.Validate() != nil || ValidateInputs(income, size) != nil {
			t.Skip()
		}
		got := p.Calculate(income, size)
		if got < 0 || got > maxSubsidy {
			t.Fatalf("Calculate(%d, %d) = %d outside [0, %d]", income, size, got, maxSubsidy)
		}
	})
}

func TestValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		require.NoError(t, DefaultParameters().Validate())
	})

	t.Run("negative value is a validation error", func(t *testing.T) {
		p := DefaultParameters()
		p.HouseholdBonus = -1
		err := p.Validate()
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		assert.Contains(t, err.Error(), "household_bonus")
	})

	t.Run("income factor above bound", func(t *testing.T) {
		p := DefaultParameters()
		p.IncomeFactor = domain.MaxIncomeFactor + 1
		assert.Error(t, p.Validate())
	})

	t.Run("inputs out of range", func(t *testing.T) {
		assert.Error(t, ValidateInputs(-1, 0))
		assert.Error(t, ValidateInputs(0, domain.MaxHouseholdSize+1))
		assert.NoError(t, ValidateInputs(domain.MaxQuantity, domain.MaxHouseholdSize))
	})
}

func TestUpdateParametersRequest(t *testing.T) {
	v := func(n int64) *int64 { return &n }

	t.Run("all fields required", func(t *testing.T) {
		req := &UpdateParametersRequest{BaseSubsidy: v(1), IncomeFactor: v(1), HouseholdBonus: v(1)}
		err := req.Validate()
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("explicit zero is accepted", func(t *testing.T) {
		req := &UpdateParametersRequest{BaseSubsidy: v(0), IncomeFactor: v(0), HouseholdBonus: v(0), MaxSubsidy: v(0)}
		require.NoError(t, req.Validate())
		assert.Equal(t, Parameters{}, req.Parameters())
	})
}
