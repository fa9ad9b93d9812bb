package pricing

import (
	"solkit/internal/domain/catalog/kit"
	"solkit/internal/domain/catalog/product"
)

// ImpactTotals accumulates the four LCA metrics over a set of lines.
type ImpactTotals struct {
	ClimateChange     float64 `json:"climateChange"`
	ResourceDepletion float64 `json:"resourceDepletion"`
	Acidification     float64 `json:"acidification"`
	Eutrophication    float64 `json:"eutrophication"`
}

// KitAggregate is the weighted roll-up of one kit under a (mode, period).
type KitAggregate struct {
	Price   float64      `json:"price"`
	Impact  ImpactTotals `json:"impact"`
	Surface float64      `json:"surface"`
}

// KitTotals sums sell price, impact metrics and surface over a kit's product
// lines, each weighted by line quantity. Lines without a resolved product
// contribute zero. The price is the raw accumulation; display-side ceiling
// happens in FormatPrice, while project aggregation ceils per contribution.
func KitTotals(k *kit.Kit, mode product.Mode, period product.Period) KitAggregate {
	var agg KitAggregate
	if k == nil {
		return agg
	}

	for _, line := range k.Lines {
		if line.Product == nil {
			continue
		}
		qty := float64(line.Quantity)

		if resolved := ProductPricing(line.Product, mode, period); resolved.SellPrice != nil {
			agg.Price += *resolved.SellPrice * qty
		}

		accumulateImpact(&agg.Impact, EnvironmentalImpact(line.Product, mode), qty)

		if line.Product.SurfaceM2 != nil {
			agg.Surface += *line.Product.SurfaceM2 * qty
		}
	}

	return agg
}

// accumulateImpact adds every present metric weighted by qty.
func accumulateImpact(totals *ImpactTotals, impact Impact, qty float64) {
	if impact.ClimateChange != nil {
		totals.ClimateChange += *impact.ClimateChange * qty
	}
	if impact.ResourceDepletion != nil {
		totals.ResourceDepletion += *impact.ResourceDepletion * qty
	}
	if impact.Acidification != nil {
		totals.Acidification += *impact.Acidification * qty
	}
	if impact.Eutrophication != nil {
		totals.Eutrophication += *impact.Eutrophication * qty
	}
}
