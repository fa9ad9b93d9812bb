package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solkit/internal/domain/catalog/product"
)

func TestProductPricing_PurchaseFallbackChain(t *testing.T) {
	t.Run("legacy only", func(t *testing.T) {
		p := product.New("P1", "Legacy panel")
		p.LegacyCost1Y = fptr(300)
		p.LegacyUnitPrice1Y = fptr(350)
		p.LegacySellPrice1Y = fptr(400)
		p.LegacyMarginCoef = fptr(1.3)

		got := ProductPricing(p, product.ModePurchase, product.Period1Year)

		require.NotNil(t, got.Cost)
		assert.Equal(t, 300.0, *got.Cost)
		assert.Equal(t, 350.0, *got.UnitPrice)
		assert.Equal(t, 400.0, *got.SellPrice)
		assert.Equal(t, 1.3, *got.MarginCoef)
	})

	t.Run("deprecated beats legacy", func(t *testing.T) {
		p := product.New("P2", "Half migrated panel")
		p.DeprecatedPurchaseCost1Y = fptr(280)
		p.LegacyCost1Y = fptr(300)
		p.LegacySellPrice1Y = fptr(400)

		got := ProductPricing(p, product.ModePurchase, product.Period1Year)

		require.NotNil(t, got.Cost)
		assert.Equal(t, 280.0, *got.Cost)
		// Sell price has no deprecated value, resolves from legacy.
		require.NotNil(t, got.SellPrice)
		assert.Equal(t, 400.0, *got.SellPrice)
	})

	t.Run("current beats both", func(t *testing.T) {
		p := product.New("P3", "Migrated panel")
		p.PurchaseCost = fptr(250)
		p.DeprecatedPurchaseCost1Y = fptr(280)
		p.LegacyCost1Y = fptr(300)

		got := ProductPricing(p, product.ModePurchase, product.Period1Year)

		require.NotNil(t, got.Cost)
		assert.Equal(t, 250.0, *got.Cost)
	})

	t.Run("nothing set resolves to nil", func(t *testing.T) {
		got := ProductPricing(product.New("P4", "Empty"), product.ModePurchase, product.Period1Year)

		assert.Nil(t, got.Cost)
		assert.Nil(t, got.UnitPrice)
		assert.Nil(t, got.SellPrice)
		assert.Nil(t, got.MarginCoef)
	})
}

func TestProductPricing_ZeroIsAValidPrice(t *testing.T) {
	p := product.New("P5", "Free sample")
	p.PurchaseCost = fptr(0)
	p.PurchaseUnitPrice = fptr(0)
	p.PurchaseSellPrice = fptr(0)
	p.LegacyCost1Y = fptr(300)
	p.LegacyUnitPrice1Y = fptr(350)
	p.LegacySellPrice1Y = fptr(400)

	got := ProductPricing(p, product.ModePurchase, product.Period1Year)

	// Zero current-tier values must not fall through to legacy.
	require.NotNil(t, got.Cost)
	assert.Equal(t, 0.0, *got.Cost)
	assert.Equal(t, 0.0, *got.UnitPrice)
	assert.Equal(t, 0.0, *got.SellPrice)
}

func TestProductPricing_Defaults(t *testing.T) {
	p := product.New("P6", "Defaulted")
	p.PurchaseSellPrice = fptr(99)

	// Empty mode and period default to purchase / 1 year.
	got := ProductPricing(p, "", "")

	require.NotNil(t, got.SellPrice)
	assert.Equal(t, 99.0, *got.SellPrice)
}

func TestProductPricing_NilProduct(t *testing.T) {
	got := ProductPricing(nil, product.ModePurchase, product.Period1Year)
	assert.Nil(t, got.SellPrice)
}

func newRentalProduct() *product.Product {
	p := product.New("R1", "Rental panel")
	p.RentalCost1Y = fptr(100)
	p.RentalUnitPrice1Y = fptr(120)
	p.RentalSellPrice1Y = fptr(150)
	p.RentalMarginCoef = fptr(1.5)
	return p
}

func TestProductPricing_RentalPeriodFallback(t *testing.T) {
	t.Run("missing periods borrow the 1-year point", func(t *testing.T) {
		p := newRentalProduct()

		for _, period := range []product.Period{product.Period2Years, product.Period3Years} {
			got := ProductPricing(p, product.ModeRental, period)

			require.NotNil(t, got.SellPrice, "period %s", period)
			assert.Equal(t, 100.0, *got.Cost, "period %s", period)
			assert.Equal(t, 120.0, *got.UnitPrice, "period %s", period)
			assert.Equal(t, 150.0, *got.SellPrice, "period %s", period)
		}
	})

	t.Run("complete period used as-is", func(t *testing.T) {
		p := newRentalProduct()
		p.RentalCost2Y = fptr(90)
		p.RentalUnitPrice2Y = fptr(110)
		p.RentalSellPrice2Y = fptr(140)

		got := ProductPricing(p, product.ModeRental, product.Period2Years)

		assert.Equal(t, 90.0, *got.Cost)
		assert.Equal(t, 110.0, *got.UnitPrice)
		assert.Equal(t, 140.0, *got.SellPrice)
	})

	t.Run("partial period fills gaps field by field", func(t *testing.T) {
		p := newRentalProduct()
		p.RentalSellPrice3Y = fptr(130)

		got := ProductPricing(p, product.ModeRental, product.Period3Years)

		// Explicit 3-year sell price kept, missing fields from 1 year.
		assert.Equal(t, 130.0, *got.SellPrice)
		assert.Equal(t, 100.0, *got.Cost)
		assert.Equal(t, 120.0, *got.UnitPrice)
	})

	t.Run("1-year period never falls back", func(t *testing.T) {
		p := product.New("R2", "No rental data")

		got := ProductPricing(p, product.ModeRental, product.Period1Year)

		assert.Nil(t, got.Cost)
		assert.Nil(t, got.UnitPrice)
		assert.Nil(t, got.SellPrice)
	})
}
