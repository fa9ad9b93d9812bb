package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"solkit/internal/domain/catalog/product"
)

// Unit identifies the canonical unit of an impact metric.
type Unit string

const (
	UnitKg  Unit = "kg"
	UnitMJ  Unit = "MJ"
	UnitMol Unit = "MOL"
)

// unitLabels are the display suffixes per unit.
var unitLabels = map[Unit]string{
	UnitKg:  " kg CO₂",
	UnitMJ:  " MJ",
	UnitMol: " MOL H⁺",
}

// Prices and impact figures render in French locale across the platform.
var frPrinter = message.NewPrinter(language.French)

// MarginPercentage returns the margin of a sell price over a cost, in
// percent. A non-positive cost yields 0; the result may be negative when
// selling below cost.
func MarginPercentage(cost, price float64) float64 {
	if cost <= 0 {
		return 0
	}
	return ((price - cost) / cost) * 100
}

// HasPricingData reports whether the product resolves a complete money
// triplet (cost, unit price, sell price) for the mode at 1 year.
//
// Legacy fields default to 0 rather than nil in old exports, so this is
// frequently true even for an otherwise empty current tier — "no pricing
// configured" and "priced as free" are indistinguishable here. Downstream
// screens depend on that behavior; do not tighten it.
func HasPricingData(p *product.Product, mode product.Mode) bool {
	resolved := ProductPricing(p, mode, product.Period1Year)
	return resolved.Cost != nil && resolved.UnitPrice != nil && resolved.SellPrice != nil
}

// HasEnvironmentalData reports whether all four impact metrics resolve for
// the mode.
func HasEnvironmentalData(p *product.Product, mode product.Mode) bool {
	resolved := EnvironmentalImpact(p, mode)
	return resolved.ClimateChange != nil &&
		resolved.ResourceDepletion != nil &&
		resolved.Acidification != nil &&
		resolved.Eutrophication != nil
}

// DefaultMode picks the mode to preselect for a product: purchase when both
// modes carry pricing data (or neither does), otherwise the one that does.
func DefaultMode(p *product.Product) product.Mode {
	purchase := HasPricingData(p, product.ModePurchase)
	rental := HasPricingData(p, product.ModeRental)

	if !purchase && rental {
		return product.ModeRental
	}
	return product.ModePurchase
}

// FormatPrice renders a price as French-locale euros with 0–2 fraction
// digits, ceiled to the cent. A nil price renders as "N/A".
func FormatPrice(price *float64) string {
	if price == nil {
		return "N/A"
	}
	return frPrinter.Sprintf("%v €",
		number.Decimal(CeilPrice(*price), number.MaxFractionDigits(2)))
}

// FormatImpact renders an impact value French-locale with 1–2 fraction
// digits and the unit's canonical suffix. A nil value renders as "N/A".
func FormatImpact(value *float64, unit Unit) string {
	if value == nil {
		return "N/A"
	}
	return frPrinter.Sprintf("%v",
		number.Decimal(*value, number.MinFractionDigits(1), number.MaxFractionDigits(2)),
	) + unitLabels[unit]
}
