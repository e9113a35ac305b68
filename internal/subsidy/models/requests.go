package models

// UpdateParametersRequest replaces all four parameters.
type UpdateParametersRequest struct {
	BaseSubsidy    *int64 `json:"base_subsidy"`
	IncomeFactor   *int64 `json:"income_factor"`
	HouseholdBonus *int64 `json:"household_bonus"`
	MaxSubsidy     *int64 `json:"max_subsidy"`
}

func (r *UpdateParametersRequest) Validate() error {
	if r.BaseSubsidy == nil || r.IncomeFactor == nil || r.HouseholdBonus == nil || r.MaxSubsidy == nil {
		return errMissingParameters
	}
	return r.Parameters().Validate()
}

// Parameters converts a validated request.
func (r *UpdateParametersRequest) Parameters() Parameters {
	return Parameters{
		BaseSubsidy:    *r.BaseSubsidy,
		IncomeFactor:   *r.IncomeFactor,
		HouseholdBonus: *r.HouseholdBonus,
		MaxSubsidy:     *r.MaxSubsidy,
	}
}

// CalculationResponse is returned by the calculate endpoint.
type CalculationResponse struct {
	Income        int64 `json:"income"`
	HouseholdSize int64 `json:"household_size"`
	Subsidy       int64 `json:"subsidy"`
}
