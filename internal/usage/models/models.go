package models

import (
	"errors"

	"benefitd/pkg/domain"
)

// Key identifies one usage record. Records for the same recipient in
// different periods are independent.
type Key struct {
	Recipient domain.Principal `json:"recipient"`
	Period    domain.Period    `json:"period"`
}

// Record is the usage reported for one key.
type Record struct {
	Electricity int64         `json:"electricity"`
	Water       int64         `json:"water"`
	Gas         int64         `json:"gas"`
	RecordedAt  domain.Height `json:"recorded_at"`
}

// Thresholds are the per-utility limits. Usage strictly above a limit is
// excessive.
type Thresholds struct {
	Electricity int64 `json:"electricity"`
	Water       int64 `json:"water"`
	Gas         int64 `json:"gas"`
}

// ExcessReport is computed on every check against the thresholds current at
// that time.
type ExcessReport struct {
	ExcessiveElectricity bool `json:"excessive_electricity"`
	ExcessiveWater       bool `json:"excessive_water"`
	ExcessiveGas         bool `json:"excessive_gas"`
}

// Any reports whether at least one utility is flagged.
func (r ExcessReport) Any() bool {
	return r.ExcessiveElectricity || r.ExcessiveWater || r.ExcessiveGas
}

// Flagged lists the flagged utilities.
func (r ExcessReport) Flagged() []string {
	var out []string
	if r.ExcessiveElectricity {
		out = append(out, "electricity")
	}
	if r.ExcessiveWater {
		out = append(out, "water")
	}
	if r.ExcessiveGas {
		out = append(out, "gas")
	}
	return out
}

func DefaultThresholds() Thresholds {
	return Thresholds{Electricity: 500, Water: 15000, Gas: 100}
}

func (t Thresholds) Validate() error {
	return errors.Join(
		domain.CheckQuantity("electricity", t.Electricity, domain.MaxQuantity),
		domain.CheckQuantity("water", t.Water, domain.MaxQuantity),
		domain.CheckQuantity("gas", t.Gas, domain.MaxQuantity),
	)
}

// Check compares each utility with strict greater-than.
func (t Thresholds) Check(r Record) ExcessReport {
	return ExcessReport{
		ExcessiveElectricity: r.Electricity > t.Electricity,
		ExcessiveWater:       r.Water > t.Water,
		ExcessiveGas:         r.Gas > t.Gas,
	}
}

// ValidateAmounts checks reported usage.
func ValidateAmounts(electricity, water, gas int64) error {
	return errors.Join(
		domain.CheckQuantity("electricity", electricity, domain.MaxQuantity),
		domain.CheckQuantity("water", water, domain.MaxQuantity),
		domain.CheckQuantity("gas", gas, domain.MaxQuantity),
	)
}

// NewRecord validates the amounts and stamps the record at h.
func NewRecord(electricity, water, gas int64, h domain.Height) (Record, error) {
	if err := ValidateAmounts(electricity, water, gas); err != nil {
		return Record{}, err
	}
	return Record{Electricity: electricity, Water: water, Gas: gas, RecordedAt: h}, nil
}
