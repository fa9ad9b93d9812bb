// Package product provides the Product catalog: solar panels, inverters,
// batteries and other equipment sold outright or rented per period.
//
// Pricing fields exist in three generations, kept side by side because the
// catalog is migrated product by product:
//
//   - legacy: single-period fields, mode-agnostic (implicitly purchase, 1 year)
//   - deprecated: purchase fields still carrying the 1-year suffix
//   - current: purchase fields without period (purchase has one price point),
//     rental fields per period (1, 2, 3 years)
//
// Resolution precedence across the generations lives in the pricing package.
package product

import (
	"context"

	"solkit/internal/core/apperror"
	"solkit/internal/core/entity"
)

// Mode distinguishes a one-time purchase from a period-scoped rental.
type Mode string

const (
	ModePurchase Mode = "achat"
	ModeRental   Mode = "location"
)

// Valid reports whether the mode is known.
func (m Mode) Valid() bool {
	return m == ModePurchase || m == ModeRental
}

// Period is a rental duration tier. Meaningful only under ModeRental.
type Period string

const (
	Period1Year  Period = "1an"
	Period2Years Period = "2ans"
	Period3Years Period = "3ans"
)

// Valid reports whether the period is known.
func (p Period) Valid() bool {
	return p == Period1Year || p == Period2Years || p == Period3Years
}

// Product is a sellable/rentable catalog item.
// All monetary and impact fields are nullable: absent data is expected for
// products mid-migration between field generations.
type Product struct {
	entity.Catalog

	Description *string `db:"description" json:"description,omitempty"`
	ImageURL    *string `db:"image_url" json:"imageUrl,omitempty"`

	// SurfaceM2 is the footprint of one unit in square meters.
	SurfaceM2 *float64 `db:"surface_m2" json:"surfaceM2,omitempty"`

	// StockQuantity is warehouse stock, distinct from kit-line quantity.
	StockQuantity int `db:"stock_quantity" json:"stockQuantity"`

	// --- Current generation: purchase (single price point, no period) ---

	PurchaseCost       *float64 `db:"purchase_cost" json:"purchaseCost,omitempty"`
	PurchaseUnitPrice  *float64 `db:"purchase_unit_price" json:"purchaseUnitPrice,omitempty"`
	PurchaseSellPrice  *float64 `db:"purchase_sell_price" json:"purchaseSellPrice,omitempty"`
	PurchaseMarginCoef *float64 `db:"purchase_margin_coef" json:"purchaseMarginCoef,omitempty"`

	// --- Current generation: rental (per period) ---

	RentalCost1Y      *float64 `db:"rental_cost_1y" json:"rentalCost1Y,omitempty"`
	RentalCost2Y      *float64 `db:"rental_cost_2y" json:"rentalCost2Y,omitempty"`
	RentalCost3Y      *float64 `db:"rental_cost_3y" json:"rentalCost3Y,omitempty"`
	RentalUnitPrice1Y *float64 `db:"rental_unit_price_1y" json:"rentalUnitPrice1Y,omitempty"`
	RentalUnitPrice2Y *float64 `db:"rental_unit_price_2y" json:"rentalUnitPrice2Y,omitempty"`
	RentalUnitPrice3Y *float64 `db:"rental_unit_price_3y" json:"rentalUnitPrice3Y,omitempty"`
	RentalSellPrice1Y *float64 `db:"rental_sell_price_1y" json:"rentalSellPrice1Y,omitempty"`
	RentalSellPrice2Y *float64 `db:"rental_sell_price_2y" json:"rentalSellPrice2Y,omitempty"`
	RentalSellPrice3Y *float64 `db:"rental_sell_price_3y" json:"rentalSellPrice3Y,omitempty"`
	RentalMarginCoef  *float64 `db:"rental_margin_coef" json:"rentalMarginCoef,omitempty"`

	// --- Deprecated generation: purchase with 1-year suffix ---

	DeprecatedPurchaseCost1Y      *float64 `db:"deprecated_purchase_cost_1y" json:"deprecatedPurchaseCost1Y,omitempty"`
	DeprecatedPurchaseUnitPrice1Y *float64 `db:"deprecated_purchase_unit_price_1y" json:"deprecatedPurchaseUnitPrice1Y,omitempty"`
	DeprecatedPurchaseSellPrice1Y *float64 `db:"deprecated_purchase_sell_price_1y" json:"deprecatedPurchaseSellPrice1Y,omitempty"`

	// --- Legacy generation: single period, mode-agnostic ---

	LegacyCost1Y      *float64 `db:"legacy_cost_1y" json:"legacyCost1Y,omitempty"`
	LegacyUnitPrice1Y *float64 `db:"legacy_unit_price_1y" json:"legacyUnitPrice1Y,omitempty"`
	LegacySellPrice1Y *float64 `db:"legacy_sell_price_1y" json:"legacySellPrice1Y,omitempty"`
	LegacyCost2Y      *float64 `db:"legacy_cost_2y" json:"legacyCost2Y,omitempty"`
	LegacyUnitPrice2Y *float64 `db:"legacy_unit_price_2y" json:"legacyUnitPrice2Y,omitempty"`
	LegacySellPrice2Y *float64 `db:"legacy_sell_price_2y" json:"legacySellPrice2Y,omitempty"`
	LegacyCost3Y      *float64 `db:"legacy_cost_3y" json:"legacyCost3Y,omitempty"`
	LegacyUnitPrice3Y *float64 `db:"legacy_unit_price_3y" json:"legacyUnitPrice3Y,omitempty"`
	LegacySellPrice3Y *float64 `db:"legacy_sell_price_3y" json:"legacySellPrice3Y,omitempty"`
	LegacyMarginCoef  *float64 `db:"legacy_margin_coef" json:"legacyMarginCoef,omitempty"`

	// --- Environmental impact: current generation, per mode, no period.
	// Rental figures are savings-versus-new deltas, hence period-free. ---

	PurchaseClimateChange     *float64 `db:"purchase_climate_change" json:"purchaseClimateChange,omitempty"`
	PurchaseResourceDepletion *float64 `db:"purchase_resource_depletion" json:"purchaseResourceDepletion,omitempty"`
	PurchaseAcidification     *float64 `db:"purchase_acidification" json:"purchaseAcidification,omitempty"`
	PurchaseEutrophication    *float64 `db:"purchase_eutrophication" json:"purchaseEutrophication,omitempty"`

	RentalClimateChange     *float64 `db:"rental_climate_change" json:"rentalClimateChange,omitempty"`
	RentalResourceDepletion *float64 `db:"rental_resource_depletion" json:"rentalResourceDepletion,omitempty"`
	RentalAcidification     *float64 `db:"rental_acidification" json:"rentalAcidification,omitempty"`
	RentalEutrophication    *float64 `db:"rental_eutrophication" json:"rentalEutrophication,omitempty"`

	// --- Environmental impact: legacy generation, mode-agnostic ---

	LegacyClimateChange     *float64 `db:"legacy_climate_change" json:"legacyClimateChange,omitempty"`
	LegacyResourceDepletion *float64 `db:"legacy_resource_depletion" json:"legacyResourceDepletion,omitempty"`
	LegacyAcidification     *float64 `db:"legacy_acidification" json:"legacyAcidification,omitempty"`
	LegacyEutrophication    *float64 `db:"legacy_eutrophication" json:"legacyEutrophication,omitempty"`
}

// New creates a new Product with required fields.
func New(code, name string) *Product {
	return &Product{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable interface.
func (p *Product) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if p.StockQuantity < 0 {
		return apperror.NewValidation("stock quantity cannot be negative").
			WithDetail("field", "stockQuantity")
	}

	if p.SurfaceM2 != nil && *p.SurfaceM2 < 0 {
		return apperror.NewValidation("surface cannot be negative").
			WithDetail("field", "surfaceM2")
	}

	// Prices may legitimately be zero (free items) but never negative.
	for field, v := range map[string]*float64{
		"purchaseCost":      p.PurchaseCost,
		"purchaseUnitPrice": p.PurchaseUnitPrice,
		"purchaseSellPrice": p.PurchaseSellPrice,
		"rentalSellPrice1Y": p.RentalSellPrice1Y,
		"rentalSellPrice2Y": p.RentalSellPrice2Y,
		"rentalSellPrice3Y": p.RentalSellPrice3Y,
	} {
		if v != nil && *v < 0 {
			return apperror.NewValidation("price cannot be negative").
				WithDetail("field", field)
		}
	}

	return nil
}
