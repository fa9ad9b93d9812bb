package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fptr is shared across the package tests.
func fptr(v float64) *float64 {
	return &v
}

func TestCeilPrice(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"whole number unchanged", 16, 16},
		{"exact cents unchanged", 16.50, 16.50},
		{"rounds up to next cent", 15.123, 15.13},
		{"float noise snapped before ceiling", 0.1 + 0.2, 0.30},
		{"tenth of a cent rounds up", 9999.991, 10000},
		{"tiny value rounds to one cent", 0.001, 0.01},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CeilPrice(tt.in), 1e-9)
		})
	}
}

func TestCeilPrice_NeverUndercharges(t *testing.T) {
	inputs := []float64{0, 0.004999, 1.0 / 3.0, 12.3456, 99.999, 1234.5678, 0.1 + 0.2}
	for _, in := range inputs {
		got := CeilPrice(in)

		assert.GreaterOrEqual(t, got, in-1e-9, "CeilPrice(%v) must not round down", in)

		// Result is always a whole number of cents.
		centsValue := got * 100
		assert.InDelta(t, math.Round(centsValue), centsValue, 1e-6,
			"CeilPrice(%v) = %v is not a multiple of 0.01", in, got)
	}
}

func TestAnnualToMonthly(t *testing.T) {
	tests := []struct {
		annual float64
		want   float64
	}{
		{12, 1},
		{100, 8.34},
		{1, 0.09},
		{0, 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, AnnualToMonthly(tt.annual), 1e-9,
			"AnnualToMonthly(%v)", tt.annual)
	}
}
