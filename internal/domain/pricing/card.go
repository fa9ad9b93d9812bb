package pricing

import (
	"math"

	"solkit/internal/core/id"
	"solkit/internal/domain/catalog/product"
	"solkit/internal/domain/project"
)

// cardPeriod maps a mode to the period shown on summary cards. Rental cards
// display the 3-year tier; this deliberately differs from ProjectTotals,
// which is fixed to purchase at 1 year. The two conventions coexist in the
// product — keep them as distinct named functions.
func cardPeriod(mode product.Mode) product.Period {
	if mode == product.ModeRental {
		return product.Period3Years
	}
	return product.Period1Year
}

// ProjectPrice is the summary-card price of a project for a mode, using the
// card period convention and the per-contribution-ceiling pattern.
func ProjectPrice(p *project.Project, mode product.Mode) float64 {
	return projectPrice(p, mode, cardPeriod(mode))
}

// ProjectCO2 sums the climate-change metric over every product line,
// weighted by quantities. Unrounded.
func ProjectCO2(p *project.Project, mode product.Mode) float64 {
	var total float64
	forEachProductLine(p, func(prod *product.Product, lineQty, kitQty float64) {
		if impact := EnvironmentalImpact(prod, mode); impact.ClimateChange != nil {
			total += *impact.ClimateChange * lineQty * kitQty
		}
	})
	return total
}

// PricePerM2 divides the card price by the effective surface, rounded to the
// nearest whole unit — standard rounding, not the cent ceiling: this is a
// display-only figure. Nil when the project has no surface.
func PricePerM2(p *project.Project, mode product.Mode) *float64 {
	surface := projectSurface(p)
	if surface <= 0 {
		return nil
	}
	v := math.Round(ProjectPrice(p, mode) / surface)
	return &v
}

// ProductCount counts distinct products across all kit lines of a project.
func ProductCount(p *project.Project) int {
	seen := make(map[id.ID]bool)
	forEachProductLine(p, func(prod *product.Product, lineQty, kitQty float64) {
		seen[prod.ID] = true
	})
	return len(seen)
}

// TotalUnits sums product units over all lines, weighted by kit quantity.
func TotalUnits(p *project.Project) int {
	var units int
	forEachProductLine(p, func(prod *product.Product, lineQty, kitQty float64) {
		units += int(lineQty) * int(kitQty)
	})
	return units
}

// KitCount sums kit quantities over the project lines, counting only lines
// with a resolved kit.
func KitCount(p *project.Project) int {
	if p == nil {
		return 0
	}
	var count int
	for _, line := range p.Lines {
		if line.Kit != nil {
			count += line.Quantity
		}
	}
	return count
}
