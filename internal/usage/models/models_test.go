package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benefitd/pkg/domain"
	dErrors "benefitd/pkg/domain-errors"
)

func TestThresholdsCheck(t *testing.T) {
	th := DefaultThresholds()
	tests := []struct {
		name   string
		record Record
		want   ExcessReport
	}{
		{"all under", Record{Electricity: 450, Water: 12000, Gas: 80}, ExcessReport{}},
		{"exactly at thresholds is not excessive", Record{Electricity: 500, Water: 15000, Gas: 100}, ExcessReport{}},
		{"electricity only", Record{Electricity: 600, Water: 12000, Gas: 80}, ExcessReport{ExcessiveElectricity: true}},
		{"all over", Record{Electricity: 600, Water: 16000, Gas: 120}, ExcessReport{true, true, true}},
		{"one above each", Record{Electricity: 501, Water: 15001, Gas: 101}, ExcessReport{true, true, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, th.Check(tt.record))
		})
	}

	t.Run("raised thresholds clear the same record", func(t *testing.T) {
		r := Record{Electricity: 550, Water: 18000, Gas: 130}
		assert.True(t, th.Check(r).Any())
		raised := Thresholds{Electricity: 600, Water: 20000, Gas: 150}
		assert.False(t, raised.Check(r).Any())
	})
}

func TestExcessReportFlagged(t *testing.T) {
	assert.Empty(t, ExcessReport{}.Flagged())
	assert.Equal(t, []string{"electricity", "gas"}, ExcessReport{ExcessiveElectricity: true, ExcessiveGas: true}.Flagged())
}

func TestNewRecord(t *testing.T) {
	r, err := NewRecord(450, 12000, 80, domain.Height(100))
	require.NoError(t, err)
	assert.Equal(t, Record{Electricity: 450, Water: 12000, Gas: 80, RecordedAt: 100}, r)

	_, err = NewRecord(-1, 12000, 80, domain.Height(100))
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

	_, err = NewRecord(0, 0, domain.MaxQuantity+1, domain.Height(100))
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestRecordRequestValidate(t *testing.T) {
	v := func(n int64) *int64 { return &n }

	t.Run("valid request yields a key", func(t *testing.T) {
		req := RecordRequest{
			Recipient: "  ST2CY5V39NHDPWSXMW9QDT3HC3GD6Q6XX4CFRK9AG ",
			Period:    202401,
			Amounts:   Amounts{Electricity: v(450), Water: v(12000), Gas: v(80)},
		}
		require.NoError(t, req.Validate())
		assert.Equal(t, Key{Recipient: "ST2CY5V39NHDPWSXMW9QDT3HC3GD6Q6XX4CFRK9AG", Period: 202401}, req.Key())
	})

	t.Run("zero period is rejected", func(t *testing.T) {
		req := RecordRequest{
			Recipient: "ST2CY5V39NHDPWSXMW9QDT3HC3GD6Q6XX4CFRK9AG",
			Amounts:   Amounts{Electricity: v(1), Water: v(1), Gas: v(1)},
		}
		assert.Error(t, req.Validate())
	})

	t.Run("missing amount is rejected", func(t *testing.T) {
		req := UpdateRequest{Amounts: Amounts{Electricity: v(1), Water: v(1)}}
		err := req.Validate()
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})
}
