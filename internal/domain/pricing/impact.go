package pricing

import (
	"solkit/internal/domain/catalog/product"
)

// Impact holds the four life-cycle-assessment metrics of a product for one
// mode. Rental figures are savings-versus-new deltas, so there is no period
// dimension. Every field is independently nullable.
type Impact struct {
	ClimateChange     *float64 `json:"climateChange"`     // kg CO₂
	ResourceDepletion *float64 `json:"resourceDepletion"` // MJ
	Acidification     *float64 `json:"acidification"`     // MOL H⁺
	Eutrophication    *float64 `json:"eutrophication"`    // kg
}

// EnvironmentalImpact resolves the four LCA metrics of a product for a mode.
// Empty mode defaults to purchase; a nil product resolves to all-nil.
//
// The legacy fallback intentionally differs from pricing resolution: a legacy
// value of exactly 0 counts as absent and collapses to nil, where pricing
// treats 0 as a present value. The asymmetry is load-bearing — unifying the
// two would change computed totals for products with a legitimate zero
// mode-specific impact.
func EnvironmentalImpact(p *product.Product, mode product.Mode) Impact {
	if p == nil {
		return Impact{}
	}
	if mode == "" {
		mode = product.ModePurchase
	}

	if mode == product.ModeRental {
		return Impact{
			ClimateChange:     orLegacy(p.RentalClimateChange, p.LegacyClimateChange),
			ResourceDepletion: orLegacy(p.RentalResourceDepletion, p.LegacyResourceDepletion),
			Acidification:     orLegacy(p.RentalAcidification, p.LegacyAcidification),
			Eutrophication:    orLegacy(p.RentalEutrophication, p.LegacyEutrophication),
		}
	}

	return Impact{
		ClimateChange:     orLegacy(p.PurchaseClimateChange, p.LegacyClimateChange),
		ResourceDepletion: orLegacy(p.PurchaseResourceDepletion, p.LegacyResourceDepletion),
		Acidification:     orLegacy(p.PurchaseAcidification, p.LegacyAcidification),
		Eutrophication:    orLegacy(p.PurchaseEutrophication, p.LegacyEutrophication),
	}
}

// orLegacy keeps a present mode-specific value (including 0) and otherwise
// falls back to the legacy field, where zero means "never filled in".
func orLegacy(current, legacy *float64) *float64 {
	if current != nil {
		return current
	}
	if legacy != nil && *legacy != 0 {
		return legacy
	}
	return nil
}
