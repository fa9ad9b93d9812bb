package pricing

import (
	"solkit/internal/domain/catalog/product"
)

// Pricing is the resolved price point of a product for one (mode, period)
// pair. Every field is independently nullable: absent catalog data surfaces
// as nil, to be handled by formatting and availability checks downstream.
type Pricing struct {
	Cost       *float64 `json:"cost"`
	UnitPrice  *float64 `json:"unitPrice"`
	SellPrice  *float64 `json:"sellPrice"`
	MarginCoef *float64 `json:"marginCoef"`
}

// coalesce returns the first non-nil value. Zero is a present value: only nil
// falls through to the next tier.
func coalesce(vals ...*float64) *float64 {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

// ProductPricing resolves the authoritative price point of a product.
//
// Purchase mode resolves each money field independently through the
// generation chain: current -> deprecated (1-year suffixed) -> legacy ->
// nil. The margin coefficient has no deprecated tier.
//
// Rental mode reads the period-suffixed current fields. For periods other
// than 1 year, if any of the three money fields is missing the full 1-year
// point is resolved once and fills the gaps field by field. A period whose
// data is fully present is used as-is, without fallback.
//
// Empty mode defaults to purchase, empty period to 1 year. A nil product
// resolves to all-nil.
func ProductPricing(p *product.Product, mode product.Mode, period product.Period) Pricing {
	if p == nil {
		return Pricing{}
	}
	if mode == "" {
		mode = product.ModePurchase
	}
	if period == "" {
		period = product.Period1Year
	}

	if mode == product.ModeRental {
		return rentalPricing(p, period)
	}

	return Pricing{
		Cost:       coalesce(p.PurchaseCost, p.DeprecatedPurchaseCost1Y, p.LegacyCost1Y),
		UnitPrice:  coalesce(p.PurchaseUnitPrice, p.DeprecatedPurchaseUnitPrice1Y, p.LegacyUnitPrice1Y),
		SellPrice:  coalesce(p.PurchaseSellPrice, p.DeprecatedPurchaseSellPrice1Y, p.LegacySellPrice1Y),
		MarginCoef: coalesce(p.PurchaseMarginCoef, p.LegacyMarginCoef),
	}
}

func rentalPricing(p *product.Product, period product.Period) Pricing {
	cost, unit, sell := rentalFields(p, period)
	resolved := Pricing{
		Cost:       cost,
		UnitPrice:  unit,
		SellPrice:  sell,
		MarginCoef: p.RentalMarginCoef,
	}

	// Wholesale fallback: any missing field pulls in the full 1-year point,
	// then each still-missing field borrows from it.
	if period != product.Period1Year && (cost == nil || unit == nil || sell == nil) {
		base := rentalPricing(p, product.Period1Year)
		resolved.Cost = coalesce(resolved.Cost, base.Cost)
		resolved.UnitPrice = coalesce(resolved.UnitPrice, base.UnitPrice)
		resolved.SellPrice = coalesce(resolved.SellPrice, base.SellPrice)
		resolved.MarginCoef = coalesce(resolved.MarginCoef, base.MarginCoef)
	}

	return resolved
}

func rentalFields(p *product.Product, period product.Period) (cost, unit, sell *float64) {
	switch period {
	case product.Period2Years:
		return p.RentalCost2Y, p.RentalUnitPrice2Y, p.RentalSellPrice2Y
	case product.Period3Years:
		return p.RentalCost3Y, p.RentalUnitPrice3Y, p.RentalSellPrice3Y
	default:
		return p.RentalCost1Y, p.RentalUnitPrice1Y, p.RentalSellPrice1Y
	}
}
