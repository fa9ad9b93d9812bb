package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"solkit/internal/core/id"
	"solkit/internal/domain/catalog/kit"
	"solkit/internal/domain/catalog/product"
	"solkit/internal/domain/project"
)

func newTestProject(lines ...project.Line) *project.Project {
	p := project.New("Maison Dupont", "Dupont")
	p.Lines = lines
	return p
}

func projectLineFor(k *kit.Kit, qty int) project.Line {
	l := project.NewLine(id.New(), k.ID, qty)
	l.Kit = k
	return l
}

func TestProjectTotals_EndToEnd(t *testing.T) {
	// Panel: sell 200, surface 15 m², impacts 10/20/5/3.
	panel := newTestProduct("PANEL", 200, 15, 10)
	panel.PurchaseResourceDepletion = fptr(20)
	panel.PurchaseAcidification = fptr(5)
	panel.PurchaseEutrophication = fptr(3)

	// 3 panels per kit, 2 kits in the project.
	k := newTestKit("KIT", lineFor(panel, 3))
	p := newTestProject(projectLineFor(k, 2))

	got := ProjectTotals(p)

	assert.InDelta(t, 1200, got.TotalPrice, 1e-9)
	assert.InDelta(t, 30, got.TotalSurface, 1e-9)
	assert.InDelta(t, 60, got.TotalImpact.ClimateChange, 1e-9)
	assert.InDelta(t, 120, got.TotalImpact.ResourceDepletion, 1e-9)
	assert.InDelta(t, 30, got.TotalImpact.Acidification, 1e-9)
	assert.InDelta(t, 18, got.TotalImpact.Eutrophication, 1e-9)
}

func TestProjectTotals_CeilsPerContribution(t *testing.T) {
	a := newTestProduct("A", 10.001, 0, 0)
	b := newTestProduct("B", 20.001, 0, 0)

	p := newTestProject(
		projectLineFor(newTestKit("KA", lineFor(a, 1)), 1),
		projectLineFor(newTestKit("KB", lineFor(b, 1)), 1),
	)

	// Each contribution ceils on its own: 10.01 + 20.01, not ceil(30.002).
	got := ProjectTotals(p)
	assert.InDelta(t, 30.02, got.TotalPrice, 1e-9)
}

func TestProjectTotals_SurfaceOverride(t *testing.T) {
	panel := newTestProduct("PANEL", 200, 15, 10)
	k := newTestKit("KIT", lineFor(panel, 3))

	p := newTestProject(projectLineFor(k, 2))
	p.SurfaceOverride = true
	p.SurfaceManual = fptr(42)

	got := ProjectTotals(p)
	assert.InDelta(t, 42, got.TotalSurface, 1e-9)

	// Flag without a value falls back to the computed surface.
	p.SurfaceManual = nil
	got = ProjectTotals(p)
	assert.InDelta(t, 30, got.TotalSurface, 1e-9)
}

func TestProjectTotals_SurfaceIgnoresLineQuantity(t *testing.T) {
	// Two panels per kit, three kits: price and impact scale by both
	// quantities, surface only by the kit quantity.
	panel := newTestProduct("PANEL", 100, 8, 0)
	p := newTestProject(projectLineFor(newTestKit("KIT", lineFor(panel, 2)), 3))

	got := ProjectTotals(p)
	assert.InDelta(t, 600, got.TotalPrice, 1e-9)
	assert.InDelta(t, 24, got.TotalSurface, 1e-9)
}

func TestProjectTotals_SkipsUnresolvedKits(t *testing.T) {
	panel := newTestProduct("PANEL", 100, 1, 1)
	k := newTestKit("KIT", lineFor(panel, 1))

	dangling := project.NewLine(id.New(), id.New(), 5)
	// dangling.Kit left nil: kit deleted from the catalog.

	p := newTestProject(projectLineFor(k, 1), dangling)

	got := ProjectTotals(p)
	assert.InDelta(t, 100, got.TotalPrice, 1e-9)
}

func TestProjectTotals_NilProject(t *testing.T) {
	got := ProjectTotals(nil)
	assert.Zero(t, got.TotalPrice)
	assert.Zero(t, got.TotalSurface)
}

func TestProjectPurchaseCost(t *testing.T) {
	panel := newTestProduct("PANEL", 200, 15, 10)
	p := newTestProject(projectLineFor(newTestKit("KIT", lineFor(panel, 3)), 2))

	assert.InDelta(t, 1200, ProjectPurchaseCost(p), 1e-9)
}

func TestProjectRentalCosts(t *testing.T) {
	r := product.New("R", "Rental panel")
	r.RentalCost1Y = fptr(60)
	r.RentalUnitPrice1Y = fptr(80)
	r.RentalSellPrice1Y = fptr(120)
	r.RentalSellPrice3Y = fptr(96)

	p := newTestProject(projectLineFor(newTestKit("KIT", lineFor(r, 1)), 1))

	got := ProjectRentalCosts(p)

	assert.InDelta(t, 120, got.Year1.Annual, 1e-9)
	assert.InDelta(t, 10, got.Year1.Monthly, 1e-9)

	// 2-year tier borrows the 1-year point.
	assert.InDelta(t, 120, got.Year2.Annual, 1e-9)

	assert.InDelta(t, 96, got.Year3.Annual, 1e-9)
	assert.InDelta(t, 8, got.Year3.Monthly, 1e-9)
}

func TestProjectRentalCosts_MonthlyCeils(t *testing.T) {
	r := product.New("R", "Rental panel")
	r.RentalCost1Y = fptr(50)
	r.RentalUnitPrice1Y = fptr(70)
	r.RentalSellPrice1Y = fptr(100)

	p := newTestProject(projectLineFor(newTestKit("KIT", lineFor(r, 1)), 1))

	got := ProjectRentalCosts(p)
	// 100 / 12 = 8.33…, ceiled to the cent.
	assert.InDelta(t, 8.34, got.Year1.Monthly, 1e-9)
}
