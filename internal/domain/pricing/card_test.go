package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solkit/internal/core/id"
	"solkit/internal/domain/catalog/product"
	"solkit/internal/domain/project"
)

func TestProjectPrice_CardPeriodConvention(t *testing.T) {
	r := product.New("R", "Rental panel")
	r.RentalCost1Y = fptr(60)
	r.RentalUnitPrice1Y = fptr(80)
	r.RentalSellPrice1Y = fptr(120)
	r.RentalSellPrice3Y = fptr(96)
	r.PurchaseCost = fptr(500)
	r.PurchaseUnitPrice = fptr(700)
	r.PurchaseSellPrice = fptr(900)

	p := newTestProject(projectLineFor(newTestKit("KIT", lineFor(r, 1)), 1))

	// Purchase cards use the 1-year tier, rental cards the 3-year tier.
	assert.InDelta(t, 900, ProjectPrice(p, product.ModePurchase), 1e-9)
	assert.InDelta(t, 96, ProjectPrice(p, product.ModeRental), 1e-9)
}

func TestProjectCO2(t *testing.T) {
	panel := newTestProduct("PANEL", 200, 15, 10)
	p := newTestProject(projectLineFor(newTestKit("KIT", lineFor(panel, 3)), 2))

	assert.InDelta(t, 60, ProjectCO2(p, product.ModePurchase), 1e-9)
}

func TestPricePerM2(t *testing.T) {
	t.Run("rounds to the nearest unit", func(t *testing.T) {
		panel := newTestProduct("PANEL", 1000, 7, 0)
		p := newTestProject(projectLineFor(newTestKit("KIT", lineFor(panel, 1)), 1))

		got := PricePerM2(p, product.ModePurchase)

		require.NotNil(t, got)
		// 1000 / 7 = 142.857… → 143, plain rounding rather than ceiling.
		assert.InDelta(t, 143, *got, 1e-9)
	})

	t.Run("nil without surface", func(t *testing.T) {
		panel := newTestProduct("PANEL", 1000, 0, 0)
		p := newTestProject(projectLineFor(newTestKit("KIT", lineFor(panel, 1)), 1))

		assert.Nil(t, PricePerM2(p, product.ModePurchase))
	})
}

func TestProjectCounts(t *testing.T) {
	panel := newTestProduct("PANEL", 200, 1, 0)
	inverter := newTestProduct("INV", 450, 0, 0)

	shared := newTestKit("KA", lineFor(panel, 3), lineFor(inverter, 1))
	panelOnly := newTestKit("KB", lineFor(panel, 2))

	p := newTestProject(
		projectLineFor(shared, 2),
		projectLineFor(panelOnly, 1),
	)

	// The panel appears in both kits but counts once.
	assert.Equal(t, 2, ProductCount(p))

	// Units: (3+1)×2 from the first line, 2×1 from the second.
	assert.Equal(t, 10, TotalUnits(p))

	assert.Equal(t, 3, KitCount(p))
}

func TestProjectCounts_SkipUnresolved(t *testing.T) {
	dangling := project.NewLine(id.New(), id.New(), 4)

	p := newTestProject(dangling)

	assert.Equal(t, 0, ProductCount(p))
	assert.Equal(t, 0, TotalUnits(p))
	assert.Equal(t, 0, KitCount(p))
}
