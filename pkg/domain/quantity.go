package domain

import (
	"fmt"

	dErrors "benefitd/pkg/domain-errors"
)

// Upper bounds for rule-table inputs. They keep every intermediate product
// of the subsidy and eligibility formulas inside int64.
const (
	MaxQuantity      int64 = 1_000_000_000_000
	MaxIncomeFactor  int64 = 1_000_000
	MaxHouseholdSize int64 = 1_000
)

// CheckQuantity validates that v lies in [0, max].
func CheckQuantity(field string, v, max int64) error {
	if v < 0 {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s must not be negative", field))
	}
	if v > max {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s must be at most %d", field, max))
	}
	return nil
}
