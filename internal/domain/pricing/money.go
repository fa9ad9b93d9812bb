// Package pricing is the pure computation core of the platform: price and
// environmental-impact resolution across the product schema generations, and
// the kit/project aggregations built on top.
//
// Every function here is side-effect free and safe for concurrent use.
// Missing data degrades to nil results and zero contributions, never errors:
// partially migrated catalog data must not break aggregate computations.
package pricing

import (
	"github.com/shopspring/decimal"
)

var cents = decimal.NewFromInt(100)

// CeilPrice rounds a monetary amount up to the next cent.
//
// The value is first snapped to 10 decimal digits to erase binary float noise
// (0.1+0.2 must round like 0.3, not like 0.30000000000000004), then ceiled to
// the hundredth. Amounts already exact to the cent are returned unchanged.
//
// Rounding up is a business rule: rounding must never under-charge.
func CeilPrice(x float64) float64 {
	snapped := decimal.NewFromFloat(x).Round(10)
	return snapped.Mul(cents).Ceil().Div(cents).InexactFloat64()
}

// AnnualToMonthly converts an annual rental amount to its monthly figure,
// ceiled to the cent.
func AnnualToMonthly(annual float64) float64 {
	return CeilPrice(annual / 12)
}
