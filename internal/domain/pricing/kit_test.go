package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"solkit/internal/core/id"
	"solkit/internal/domain/catalog/kit"
	"solkit/internal/domain/catalog/product"
)

// test fixtures shared with project_test.go and card_test.go

func newTestProduct(code string, sellPrice, surface, co2 float64) *product.Product {
	p := product.New(code, code)
	p.PurchaseCost = fptr(sellPrice * 0.6)
	p.PurchaseUnitPrice = fptr(sellPrice * 0.8)
	p.PurchaseSellPrice = fptr(sellPrice)
	p.SurfaceM2 = fptr(surface)
	p.PurchaseClimateChange = fptr(co2)
	return p
}

func newTestKit(code string, lines ...kit.Line) *kit.Kit {
	k := kit.New(code, code, kit.StyleResidential)
	k.Lines = lines
	return k
}

func lineFor(p *product.Product, qty int) kit.Line {
	l := kit.NewLine(id.New(), p.ID, qty)
	l.Product = p
	return l
}

func TestKitTotals(t *testing.T) {
	panel := newTestProduct("PANEL", 200, 1.7, 10)
	inverter := newTestProduct("INV", 450.50, 0, 25)

	k := newTestKit("KIT1", lineFor(panel, 4), lineFor(inverter, 1))

	got := KitTotals(k, product.ModePurchase, product.Period1Year)

	assert.InDelta(t, 4*200+450.50, got.Price, 1e-9)
	assert.InDelta(t, 4*1.7, got.Surface, 1e-9)
	assert.InDelta(t, 4*10+25, got.Impact.ClimateChange, 1e-9)
}

func TestKitTotals_RawPrice(t *testing.T) {
	// Kit prices accumulate raw; the cent ceiling is a display and
	// project-aggregation concern.
	p := newTestProduct("P", 10.001, 0, 0)
	k := newTestKit("KIT2", lineFor(p, 1))

	got := KitTotals(k, product.ModePurchase, product.Period1Year)

	assert.InDelta(t, 10.001, got.Price, 1e-9)
}

func TestKitTotals_SkipsUnresolvedLines(t *testing.T) {
	panel := newTestProduct("PANEL", 200, 1.7, 10)

	orphan := kit.NewLine(id.New(), panel.ID, 3)
	// orphan.Product left nil: product deleted from the catalog.

	k := newTestKit("KIT3", lineFor(panel, 2), orphan)

	got := KitTotals(k, product.ModePurchase, product.Period1Year)

	assert.InDelta(t, 400, got.Price, 1e-9)
	assert.InDelta(t, 3.4, got.Surface, 1e-9)
	assert.InDelta(t, 20, got.Impact.ClimateChange, 1e-9)
}

func TestKitTotals_NilKit(t *testing.T) {
	got := KitTotals(nil, product.ModePurchase, product.Period1Year)
	assert.Zero(t, got.Price)
	assert.Zero(t, got.Surface)
}

func TestKitTotals_RentalPeriods(t *testing.T) {
	p := product.New("R", "Rental only")
	p.RentalCost1Y = fptr(60)
	p.RentalUnitPrice1Y = fptr(80)
	p.RentalSellPrice1Y = fptr(100)
	p.RentalSellPrice3Y = fptr(85)

	k := newTestKit("KIT4", lineFor(p, 2))

	oneYear := KitTotals(k, product.ModeRental, product.Period1Year)
	twoYears := KitTotals(k, product.ModeRental, product.Period2Years)
	threeYears := KitTotals(k, product.ModeRental, product.Period3Years)

	assert.InDelta(t, 200, oneYear.Price, 1e-9)
	// 2-year tier empty, borrows the 1-year point wholesale.
	assert.InDelta(t, 200, twoYears.Price, 1e-9)
	// 3-year tier has an explicit sell price.
	assert.InDelta(t, 170, threeYears.Price, 1e-9)
}
