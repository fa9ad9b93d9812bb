package pricing

import (
	"solkit/internal/domain/catalog/product"
	"solkit/internal/domain/project"
)

// ProjectAggregate is the full roll-up of a project: purchase-mode 1-year
// price, the four impact totals, and the effective surface.
type ProjectAggregate struct {
	TotalPrice   float64      `json:"totalPrice"`
	TotalImpact  ImpactTotals `json:"totalImpact"`
	TotalSurface float64      `json:"totalSurface"`
}

// RentalCost is one rental period's project cost.
type RentalCost struct {
	Annual  float64 `json:"annual"`
	Monthly float64 `json:"monthly"`
}

// ProjectRentalCostTable holds rental project costs per period tier.
type ProjectRentalCostTable struct {
	Year1 RentalCost `json:"1an"`
	Year2 RentalCost `json:"2ans"`
	Year3 RentalCost `json:"3ans"`
}

// ProjectTotals computes the project roll-up.
//
// The price figure is hard-wired to purchase-mode 1-year semantics; rental
// totals come from ProjectRentalCosts. Each product-line contribution is
// ceiled to the cent BEFORE summing — the per-contribution ceiling compounds
// in the seller's favor and must not be collapsed into one final ceiling.
// Impact metrics accumulate unrounded. Missing kits and products contribute
// zero silently.
func ProjectTotals(p *project.Project) ProjectAggregate {
	var agg ProjectAggregate
	if p == nil {
		return agg
	}

	agg.TotalSurface = projectSurface(p)

	forEachProductLine(p, func(prod *product.Product, lineQty, kitQty float64) {
		resolved := ProductPricing(prod, product.ModePurchase, product.Period1Year)
		if resolved.SellPrice != nil {
			agg.TotalPrice += CeilPrice(*resolved.SellPrice * lineQty * kitQty)
		}
		accumulateImpact(&agg.TotalImpact, EnvironmentalImpact(prod, product.ModePurchase), lineQty*kitQty)
	})

	return agg
}

// ProjectPurchaseCost is the one-time purchase cost of a project, following
// the same per-contribution-ceiling pattern as ProjectTotals.
func ProjectPurchaseCost(p *project.Project) float64 {
	return projectPrice(p, product.ModePurchase, product.Period1Year)
}

// ProjectRentalCosts computes the annual and monthly rental cost of a
// project for each period tier.
func ProjectRentalCosts(p *project.Project) ProjectRentalCostTable {
	table := ProjectRentalCostTable{}
	table.Year1.Annual = projectPrice(p, product.ModeRental, product.Period1Year)
	table.Year2.Annual = projectPrice(p, product.ModeRental, product.Period2Years)
	table.Year3.Annual = projectPrice(p, product.ModeRental, product.Period3Years)
	table.Year1.Monthly = AnnualToMonthly(table.Year1.Annual)
	table.Year2.Monthly = AnnualToMonthly(table.Year2.Annual)
	table.Year3.Monthly = AnnualToMonthly(table.Year3.Annual)
	return table
}

// projectPrice sums per-contribution-ceiled sell prices over every product
// line of every kit line, for one (mode, period).
func projectPrice(p *project.Project, mode product.Mode, period product.Period) float64 {
	var total float64
	forEachProductLine(p, func(prod *product.Product, lineQty, kitQty float64) {
		resolved := ProductPricing(prod, mode, period)
		if resolved.SellPrice != nil {
			total += CeilPrice(*resolved.SellPrice * lineQty * kitQty)
		}
	})
	return total
}

// projectSurface resolves the effective surface: a manual override wins
// outright, otherwise the per-unit footprints of every product line sum up,
// weighted by kit quantity alone. Unlike price and impact, surface ignores
// the in-kit line quantity; the historical totals depend on it, so it stays.
func projectSurface(p *project.Project) float64 {
	if p.SurfaceOverride && p.SurfaceManual != nil {
		return *p.SurfaceManual
	}

	var surface float64
	forEachProductLine(p, func(prod *product.Product, _, kitQty float64) {
		if prod.SurfaceM2 != nil {
			surface += *prod.SurfaceM2 * kitQty
		}
	})
	return surface
}

// forEachProductLine visits every resolved product line of a project,
// skipping absent kits and products.
func forEachProductLine(p *project.Project, visit func(prod *product.Product, lineQty, kitQty float64)) {
	if p == nil {
		return
	}
	for _, projectLine := range p.Lines {
		if projectLine.Kit == nil {
			continue
		}
		kitQty := float64(projectLine.Quantity)
		for _, kitLine := range projectLine.Kit.Lines {
			if kitLine.Product == nil {
				continue
			}
			visit(kitLine.Product, float64(kitLine.Quantity), kitQty)
		}
	}
}
