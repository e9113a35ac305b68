package models

import (
	"strings"

	"benefitd/pkg/domain"
	dErrors "benefitd/pkg/domain-errors"
)

// RegisterRequest creates a recipient.
type RegisterRequest struct {
	Identity      string `json:"identity"`
	IncomeLevel   *int64 `json:"income_level"`
	HouseholdSize *int64 `json:"household_size"`
}

func (r *RegisterRequest) Validate() error {
	r.Identity = strings.TrimSpace(r.Identity)
	identity, err := domain.ParsePrincipal(r.Identity)
	if err != nil {
		return err
	}
	if err := ValidateIdentity(identity); err != nil {
		return err
	}
	if r.IncomeLevel == nil || r.HouseholdSize == nil {
		return dErrors.New(dErrors.CodeValidation, "income_level and household_size are required")
	}
	return ValidateHousehold(*r.IncomeLevel, *r.HouseholdSize)
}

// UpdateRequest replaces a recipient's household data. The identity comes
// from the path.
type UpdateRequest struct {
	IncomeLevel   *int64 `json:"income_level"`
	HouseholdSize *int64 `json:"household_size"`
}

func (r *UpdateRequest) Validate() error {
	if r.IncomeLevel == nil || r.HouseholdSize == nil {
		return dErrors.New(dErrors.CodeValidation, "income_level and household_size are required")
	}
	return ValidateHousehold(*r.IncomeLevel, *r.HouseholdSize)
}

// UpdateCriteriaRequest replaces both mutable criteria.
type UpdateCriteriaRequest struct {
	IncomeThreshold     *int64 `json:"income_threshold"`
	HouseholdMultiplier *int64 `json:"household_multiplier"`
}

func (r *UpdateCriteriaRequest) Validate() error {
	if r.IncomeThreshold == nil || r.HouseholdMultiplier == nil {
		return dErrors.New(dErrors.CodeValidation, "income_threshold and household_multiplier are required")
	}
	return r.Criteria().Validate()
}

func (r *UpdateCriteriaRequest) Criteria() Criteria {
	return Criteria{IncomeThreshold: *r.IncomeThreshold, HouseholdMultiplier: *r.HouseholdMultiplier}
}

// EligibilityResponse is returned by the eligibility endpoint.
type EligibilityResponse struct {
	Identity   string `json:"identity"`
	IsEligible bool   `json:"is_eligible"`
}
