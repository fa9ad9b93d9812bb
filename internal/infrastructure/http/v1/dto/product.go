package dto

import (
	"solkit/internal/domain/catalog/product"
	"solkit/internal/domain/pricing"
)

// ProductFields carries every optional product attribute shared between
// create and update requests. All three pricing generations are writable:
// imports from the old system still land through this API.
type ProductFields struct {
	Description   *string  `json:"description"`
	ImageURL      *string  `json:"imageUrl"`
	SurfaceM2     *float64 `json:"surfaceM2"`
	StockQuantity int      `json:"stockQuantity" binding:"min=0"`

	PurchaseCost       *float64 `json:"purchaseCost"`
	PurchaseUnitPrice  *float64 `json:"purchaseUnitPrice"`
	PurchaseSellPrice  *float64 `json:"purchaseSellPrice"`
	PurchaseMarginCoef *float64 `json:"purchaseMarginCoef"`

	RentalCost1Y      *float64 `json:"rentalCost1Y"`
	RentalCost2Y      *float64 `json:"rentalCost2Y"`
	RentalCost3Y      *float64 `json:"rentalCost3Y"`
	RentalUnitPrice1Y *float64 `json:"rentalUnitPrice1Y"`
	RentalUnitPrice2Y *float64 `json:"rentalUnitPrice2Y"`
	RentalUnitPrice3Y *float64 `json:"rentalUnitPrice3Y"`
	RentalSellPrice1Y *float64 `json:"rentalSellPrice1Y"`
	RentalSellPrice2Y *float64 `json:"rentalSellPrice2Y"`
	RentalSellPrice3Y *float64 `json:"rentalSellPrice3Y"`
	RentalMarginCoef  *float64 `json:"rentalMarginCoef"`

	DeprecatedPurchaseCost1Y      *float64 `json:"deprecatedPurchaseCost1Y"`
	DeprecatedPurchaseUnitPrice1Y *float64 `json:"deprecatedPurchaseUnitPrice1Y"`
	DeprecatedPurchaseSellPrice1Y *float64 `json:"deprecatedPurchaseSellPrice1Y"`

	LegacyCost1Y      *float64 `json:"legacyCost1Y"`
	LegacyUnitPrice1Y *float64 `json:"legacyUnitPrice1Y"`
	LegacySellPrice1Y *float64 `json:"legacySellPrice1Y"`
	LegacyCost2Y      *float64 `json:"legacyCost2Y"`
	LegacyUnitPrice2Y *float64 `json:"legacyUnitPrice2Y"`
	LegacySellPrice2Y *float64 `json:"legacySellPrice2Y"`
	LegacyCost3Y      *float64 `json:"legacyCost3Y"`
	LegacyUnitPrice3Y *float64 `json:"legacyUnitPrice3Y"`
	LegacySellPrice3Y *float64 `json:"legacySellPrice3Y"`
	LegacyMarginCoef  *float64 `json:"legacyMarginCoef"`

	PurchaseClimateChange     *float64 `json:"purchaseClimateChange"`
	PurchaseResourceDepletion *float64 `json:"purchaseResourceDepletion"`
	PurchaseAcidification     *float64 `json:"purchaseAcidification"`
	PurchaseEutrophication    *float64 `json:"purchaseEutrophication"`

	RentalClimateChange     *float64 `json:"rentalClimateChange"`
	RentalResourceDepletion *float64 `json:"rentalResourceDepletion"`
	RentalAcidification     *float64 `json:"rentalAcidification"`
	RentalEutrophication    *float64 `json:"rentalEutrophication"`

	LegacyClimateChange     *float64 `json:"legacyClimateChange"`
	LegacyResourceDepletion *float64 `json:"legacyResourceDepletion"`
	LegacyAcidification     *float64 `json:"legacyAcidification"`
	LegacyEutrophication    *float64 `json:"legacyEutrophication"`
}

// applyTo copies every field onto the entity.
func (f *ProductFields) applyTo(p *product.Product) {
	p.Description = f.Description
	p.ImageURL = f.ImageURL
	p.SurfaceM2 = f.SurfaceM2
	p.StockQuantity = f.StockQuantity

	p.PurchaseCost = f.PurchaseCost
	p.PurchaseUnitPrice = f.PurchaseUnitPrice
	p.PurchaseSellPrice = f.PurchaseSellPrice
	p.PurchaseMarginCoef = f.PurchaseMarginCoef

	p.RentalCost1Y = f.RentalCost1Y
	p.RentalCost2Y = f.RentalCost2Y
	p.RentalCost3Y = f.RentalCost3Y
	p.RentalUnitPrice1Y = f.RentalUnitPrice1Y
	p.RentalUnitPrice2Y = f.RentalUnitPrice2Y
	p.RentalUnitPrice3Y = f.RentalUnitPrice3Y
	p.RentalSellPrice1Y = f.RentalSellPrice1Y
	p.RentalSellPrice2Y = f.RentalSellPrice2Y
	p.RentalSellPrice3Y = f.RentalSellPrice3Y
	p.RentalMarginCoef = f.RentalMarginCoef

	p.DeprecatedPurchaseCost1Y = f.DeprecatedPurchaseCost1Y
	p.DeprecatedPurchaseUnitPrice1Y = f.DeprecatedPurchaseUnitPrice1Y
	p.DeprecatedPurchaseSellPrice1Y = f.DeprecatedPurchaseSellPrice1Y

	p.LegacyCost1Y = f.LegacyCost1Y
	p.LegacyUnitPrice1Y = f.LegacyUnitPrice1Y
	p.LegacySellPrice1Y = f.LegacySellPrice1Y
	p.LegacyCost2Y = f.LegacyCost2Y
	p.LegacyUnitPrice2Y = f.LegacyUnitPrice2Y
	p.LegacySellPrice2Y = f.LegacySellPrice2Y
	p.LegacyCost3Y = f.LegacyCost3Y
	p.LegacyUnitPrice3Y = f.LegacyUnitPrice3Y
	p.LegacySellPrice3Y = f.LegacySellPrice3Y
	p.LegacyMarginCoef = f.LegacyMarginCoef

	p.PurchaseClimateChange = f.PurchaseClimateChange
	p.PurchaseResourceDepletion = f.PurchaseResourceDepletion
	p.PurchaseAcidification = f.PurchaseAcidification
	p.PurchaseEutrophication = f.PurchaseEutrophication

	p.RentalClimateChange = f.RentalClimateChange
	p.RentalResourceDepletion = f.RentalResourceDepletion
	p.RentalAcidification = f.RentalAcidification
	p.RentalEutrophication = f.RentalEutrophication

	p.LegacyClimateChange = f.LegacyClimateChange
	p.LegacyResourceDepletion = f.LegacyResourceDepletion
	p.LegacyAcidification = f.LegacyAcidification
	p.LegacyEutrophication = f.LegacyEutrophication
}

// fieldsFrom reads every field back from the entity.
func fieldsFrom(p *product.Product) ProductFields {
	return ProductFields{
		Description:   p.Description,
		ImageURL:      p.ImageURL,
		SurfaceM2:     p.SurfaceM2,
		StockQuantity: p.StockQuantity,

		PurchaseCost:       p.PurchaseCost,
		PurchaseUnitPrice:  p.PurchaseUnitPrice,
		PurchaseSellPrice:  p.PurchaseSellPrice,
		PurchaseMarginCoef: p.PurchaseMarginCoef,

		RentalCost1Y:      p.RentalCost1Y,
		RentalCost2Y:      p.RentalCost2Y,
		RentalCost3Y:      p.RentalCost3Y,
		RentalUnitPrice1Y: p.RentalUnitPrice1Y,
		RentalUnitPrice2Y: p.RentalUnitPrice2Y,
		RentalUnitPrice3Y: p.RentalUnitPrice3Y,
		RentalSellPrice1Y: p.RentalSellPrice1Y,
		RentalSellPrice2Y: p.RentalSellPrice2Y,
		RentalSellPrice3Y: p.RentalSellPrice3Y,
		RentalMarginCoef:  p.RentalMarginCoef,

		DeprecatedPurchaseCost1Y:      p.DeprecatedPurchaseCost1Y,
		DeprecatedPurchaseUnitPrice1Y: p.DeprecatedPurchaseUnitPrice1Y,
		DeprecatedPurchaseSellPrice1Y: p.DeprecatedPurchaseSellPrice1Y,

		LegacyCost1Y:      p.LegacyCost1Y,
		LegacyUnitPrice1Y: p.LegacyUnitPrice1Y,
		LegacySellPrice1Y: p.LegacySellPrice1Y,
		LegacyCost2Y:      p.LegacyCost2Y,
		LegacyUnitPrice2Y: p.LegacyUnitPrice2Y,
		LegacySellPrice2Y: p.LegacySellPrice2Y,
		LegacyCost3Y:      p.LegacyCost3Y,
		LegacyUnitPrice3Y: p.LegacyUnitPrice3Y,
		LegacySellPrice3Y: p.LegacySellPrice3Y,
		LegacyMarginCoef:  p.LegacyMarginCoef,

		PurchaseClimateChange:     p.PurchaseClimateChange,
		PurchaseResourceDepletion: p.PurchaseResourceDepletion,
		PurchaseAcidification:     p.PurchaseAcidification,
		PurchaseEutrophication:    p.PurchaseEutrophication,

		RentalClimateChange:     p.RentalClimateChange,
		RentalResourceDepletion: p.RentalResourceDepletion,
		RentalAcidification:     p.RentalAcidification,
		RentalEutrophication:    p.RentalEutrophication,

		LegacyClimateChange:     p.LegacyClimateChange,
		LegacyResourceDepletion: p.LegacyResourceDepletion,
		LegacyAcidification:     p.LegacyAcidification,
		LegacyEutrophication:    p.LegacyEutrophication,
	}
}

// --- Request DTOs ---

// CreateProductRequest is the request body for creating a product.
type CreateProductRequest struct {
	Code string `json:"code"`
	Name string `json:"name" binding:"required"`
	ProductFields
}

// ToEntity converts DTO to domain entity.
func (r *CreateProductRequest) ToEntity() *product.Product {
	p := product.New(r.Code, r.Name)
	r.applyTo(p)
	return p
}

// UpdateProductRequest is the request body for updating a product.
type UpdateProductRequest struct {
	Code string `json:"code"`
	Name string `json:"name" binding:"required"`
	ProductFields
	Version int `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateProductRequest) ApplyTo(p *product.Product) {
	p.Code = r.Code
	p.Name = r.Name
	r.applyTo(p)
	p.Version = r.Version
}

// --- Response DTOs ---

// ProductResponse is the response body for a product.
type ProductResponse struct {
	BaseResponse
	Code string `json:"code"`
	Name string `json:"name"`
	ProductFields

	// DefaultMode is the mode the UI should preselect.
	DefaultMode product.Mode `json:"defaultMode"`
}

// FromProduct creates response DTO from domain entity.
func FromProduct(p *product.Product) *ProductResponse {
	return &ProductResponse{
		BaseResponse:  FromBaseEntity(p.BaseEntity),
		Code:          p.Code,
		Name:          p.Name,
		ProductFields: fieldsFrom(p),
		DefaultMode:   pricing.DefaultMode(p),
	}
}

// --- Pricing ---

// FormattedPricing carries display-ready French-locale price strings.
type FormattedPricing struct {
	Cost      string `json:"cost"`
	UnitPrice string `json:"unitPrice"`
	SellPrice string `json:"sellPrice"`
}

// FormattedImpact carries display-ready impact strings with unit suffixes.
type FormattedImpact struct {
	ClimateChange     string `json:"climateChange"`
	ResourceDepletion string `json:"resourceDepletion"`
	Acidification     string `json:"acidification"`
	Eutrophication    string `json:"eutrophication"`
}

// ProductPricingResponse is the resolved price point and environmental
// impact of a product for one (mode, period) pair.
type ProductPricingResponse struct {
	ProductID string         `json:"productId"`
	Mode      product.Mode   `json:"mode"`
	Period    product.Period `json:"period"`

	Pricing   pricing.Pricing  `json:"pricing"`
	Formatted FormattedPricing `json:"formatted"`

	// MarginPercentage is present when both cost and sell price resolve.
	MarginPercentage *float64 `json:"marginPercentage,omitempty"`

	Impact          pricing.Impact  `json:"impact"`
	FormattedImpact FormattedImpact `json:"formattedImpact"`

	HasPricingData       bool `json:"hasPricingData"`
	HasEnvironmentalData bool `json:"hasEnvironmentalData"`
}

// NewProductPricingResponse resolves and formats pricing for a product.
func NewProductPricingResponse(p *product.Product, mode product.Mode, period product.Period) ProductPricingResponse {
	resolved := pricing.ProductPricing(p, mode, period)
	impact := pricing.EnvironmentalImpact(p, mode)

	resp := ProductPricingResponse{
		ProductID: p.ID.String(),
		Mode:      mode,
		Period:    period,
		Pricing:   resolved,
		Formatted: FormattedPricing{
			Cost:      pricing.FormatPrice(resolved.Cost),
			UnitPrice: pricing.FormatPrice(resolved.UnitPrice),
			SellPrice: pricing.FormatPrice(resolved.SellPrice),
		},
		Impact: impact,
		FormattedImpact: FormattedImpact{
			ClimateChange:     pricing.FormatImpact(impact.ClimateChange, pricing.UnitKg),
			ResourceDepletion: pricing.FormatImpact(impact.ResourceDepletion, pricing.UnitMJ),
			Acidification:     pricing.FormatImpact(impact.Acidification, pricing.UnitMol),
			Eutrophication:    pricing.FormatImpact(impact.Eutrophication, pricing.UnitKg),
		},
		HasPricingData:       pricing.HasPricingData(p, mode),
		HasEnvironmentalData: pricing.HasEnvironmentalData(p, mode),
	}

	if resolved.Cost != nil && resolved.SellPrice != nil {
		margin := pricing.MarginPercentage(*resolved.Cost, *resolved.SellPrice)
		resp.MarginPercentage = &margin
	}

	return resp
}
