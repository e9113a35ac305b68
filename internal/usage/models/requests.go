package models

import (
	"strings"

	"benefitd/pkg/domain"
	dErrors "benefitd/pkg/domain-errors"
)

// Amounts is the usage body shared by record and update calls.
type Amounts struct {
	Electricity *int64 `json:"electricity"`
	Water       *int64 `json:"water"`
	Gas         *int64 `json:"gas"`
}

func (a *Amounts) validate() error {
	if a.Electricity == nil || a.Water == nil || a.Gas == nil {
		return dErrors.New(dErrors.CodeValidation, "electricity, water and gas are required")
	}
	return ValidateAmounts(*a.Electricity, *a.Water, *a.Gas)
}

// RecordRequest creates a usage record.
type RecordRequest struct {
	Recipient string `json:"recipient"`
	Period    uint64 `json:"period"`
	Amounts
}

func (r *RecordRequest) Validate() error {
	r.Recipient = strings.TrimSpace(r.Recipient)
	if _, err := domain.ParsePrincipal(r.Recipient); err != nil {
		return err
	}
	if _, err := domain.NewPeriod(r.Period); err != nil {
		return err
	}
	return r.validate()
}

// Key returns the validated record key.
func (r *RecordRequest) Key() Key {
	return Key{Recipient: domain.Principal(r.Recipient), Period: domain.Period(r.Period)}
}

// UpdateRequest replaces a record; the key comes from the path.
type UpdateRequest struct {
	Amounts
}

func (r *UpdateRequest) Validate() error {
	return r.validate()
}

// UpdateThresholdsRequest replaces all three thresholds.
type UpdateThresholdsRequest struct {
	Electricity *int64 `json:"electricity"`
	Water       *int64 `json:"water"`
	Gas         *int64 `json:"gas"`
}

func (r *UpdateThresholdsRequest) Validate() error {
	if r.Electricity == nil || r.Water == nil || r.Gas == nil {
		return dErrors.New(dErrors.CodeValidation, "electricity, water and gas are required")
	}
	return r.Thresholds().Validate()
}

func (r *UpdateThresholdsRequest) Thresholds() Thresholds {
	return Thresholds{Electricity: *r.Electricity, Water: *r.Water, Gas: *r.Gas}
}

// RecordResponse pairs a record with its key.
type RecordResponse struct {
	Key
	Record
}

// ExcessResponse is returned by the excess check endpoint.
type ExcessResponse struct {
	Key
	ExcessReport
}
