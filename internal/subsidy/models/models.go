package models

import (
	"errors"

	"benefitd/pkg/domain"
)

// incomeScale is the fixed-point divisor applied to income * incomeFactor.
const incomeScale = 10000

// Parameters drive the subsidy formula. They are replaced as a whole.
type Parameters struct {
	BaseSubsidy    int64 `json:"base_subsidy"`
	IncomeFactor   int64 `json:"income_factor"`
	HouseholdBonus int64 `json:"household_bonus"`
	MaxSubsidy     int64 `json:"max_subsidy"`
}

// DefaultParameters are the values a fresh deployment starts with.
func DefaultParameters() Parameters {
	return Parameters{
		BaseSubsidy:    100,
		IncomeFactor:   10,
		HouseholdBonus: 25,
		MaxSubsidy:     500,
	}
}

// Validate keeps every parameter inside the bounds that make Calculate exact.
func (p Parameters) Validate() error {
	return errors.Join(
		domain.CheckQuantity("base_subsidy", p.BaseSubsidy, domain.MaxQuantity),
		domain.CheckQuantity("income_factor", p.IncomeFactor, domain.MaxIncomeFactor),
		domain.CheckQuantity("household_bonus", p.HouseholdBonus, domain.MaxQuantity),
		domain.CheckQuantity("max_subsidy", p.MaxSubsidy, domain.MaxQuantity),
	)
}

// ValidateInputs checks the calculation inputs.
func ValidateInputs(income, householdSize int64) error {
	return errors.Join(
		domain.CheckQuantity("income", income, domain.MaxQuantity),
		domain.CheckQuantity("household_size", householdSize, domain.MaxHouseholdSize),
	)
}

// Calculate returns Raw clamped to [0, MaxSubsidy]. Inputs must already
// satisfy ValidateInputs.
func (p Parameters) Calculate(income, householdSize int64) int64 {
	raw := p.Raw(income, householdSize)
	if raw < 0 {
		return 0
	}
	if raw > p.MaxSubsidy {
		return p.MaxSubsidy
	}
	return raw
}

// Raw returns base - floor(income*factor/10000) + size*bonus before clamping.
func (p Parameters) Raw(income, householdSize int64) int64 {
	reduction := income * p.IncomeFactor / incomeScale
	addition := householdSize * p.HouseholdBonus
	return p.BaseSubsidy - reduction + addition
}
