package models

import dErrors "benefitd/pkg/domain-errors"

var errMissingParameters = dErrors.New(dErrors.CodeValidation,
	"base_subsidy, income_factor, household_bonus and max_subsidy are all required")
