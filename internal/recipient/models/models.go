package models

import (
	"errors"
	"fmt"

	"benefitd/pkg/domain"
	dErrors "benefitd/pkg/domain-errors"
)

// DefaultVerificationPeriod is one year of one-second blocks.
const DefaultVerificationPeriod uint64 = 31536000

// Recipient is one registered household. Eligibility is decided when the
// record is written and is not recomputed when criteria change.
type Recipient struct {
	Identity       domain.Principal `json:"identity"`
	IsEligible     bool             `json:"is_eligible"`
	IncomeLevel    int64            `json:"income_level"`
	HouseholdSize  int64            `json:"household_size"`
	LastVerifiedAt domain.Height    `json:"last_verified_at"`
}

// Criteria are the mutable eligibility rules.
type Criteria struct {
	IncomeThreshold     int64 `json:"income_threshold"`
	HouseholdMultiplier int64 `json:"household_multiplier"`
}

// CriteriaView adds the fixed verification period for read-only callers.
type CriteriaView struct {
	Criteria
	VerificationPeriod uint64 `json:"verification_period"`
}

func DefaultCriteria() Criteria {
	return Criteria{IncomeThreshold: 50000, HouseholdMultiplier: 10000}
}

func (c Criteria) Validate() error {
	return errors.Join(
		domain.CheckQuantity("income_threshold", c.IncomeThreshold, domain.MaxQuantity),
		domain.CheckQuantity("household_multiplier", c.HouseholdMultiplier, domain.MaxQuantity),
	)
}

// Eligible reports income <= threshold + householdSize*multiplier.
func (c Criteria) Eligible(income, householdSize int64) bool {
	return income <= c.IncomeThreshold+householdSize*c.HouseholdMultiplier
}

// reservedIdentities are the fixed path segments under /recipients.
var reservedIdentities = map[domain.Principal]struct{}{
	"criteria": {},
	"admin":    {},
}

// ValidateIdentity rejects the nil principal and identities that would be
// shadowed by a fixed /recipients route.
func ValidateIdentity(identity domain.Principal) error {
	if identity.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "identity is required")
	}
	if _, ok := reservedIdentities[identity]; ok {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("identity %q is reserved", identity))
	}
	return nil
}

// ValidateHousehold checks registration inputs.
func ValidateHousehold(income, householdSize int64) error {
	return errors.Join(
		domain.CheckQuantity("income", income, domain.MaxQuantity),
		domain.CheckQuantity("household_size", householdSize, domain.MaxHouseholdSize),
	)
}

// NewRecipient evaluates eligibility against c and stamps the record at h.
func NewRecipient(identity domain.Principal, income, householdSize int64, c Criteria, h domain.Height) (*Recipient, error) {
	if err := ValidateHousehold(income, householdSize); err != nil {
		return nil, err
	}
	return &Recipient{
		Identity:       identity,
		IsEligible:     c.Eligible(income, householdSize),
		IncomeLevel:    income,
		HouseholdSize:  householdSize,
		LastVerifiedAt: h,
	}, nil
}

// Expired reports whether the verification is at least period blocks old.
// A record stamped ahead of current is treated as fresh.
func (r *Recipient) Expired(current domain.Height, period uint64) bool {
	return current.Since(r.LastVerifiedAt) >= period
}
