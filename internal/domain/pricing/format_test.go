package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"solkit/internal/domain/catalog/product"
)

func TestMarginPercentage(t *testing.T) {
	tests := []struct {
		name  string
		cost  float64
		price float64
		want  float64
	}{
		{"fifty percent markup", 100, 150, 50},
		{"zero cost yields zero", 0, 150, 0},
		{"negative cost yields zero", -10, 150, 0},
		{"selling below cost is negative", 100, 80, -20},
		{"break-even", 100, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MarginPercentage(tt.cost, tt.price), 1e-9)
		})
	}
}

func TestHasPricingData(t *testing.T) {
	t.Run("complete current triplet", func(t *testing.T) {
		p := product.New("F1", "Priced")
		p.PurchaseCost = fptr(100)
		p.PurchaseUnitPrice = fptr(120)
		p.PurchaseSellPrice = fptr(150)

		assert.True(t, HasPricingData(p, product.ModePurchase))
		assert.False(t, HasPricingData(p, product.ModeRental))
	})

	t.Run("partial triplet is not enough", func(t *testing.T) {
		p := product.New("F2", "Cost only")
		p.PurchaseCost = fptr(100)

		assert.False(t, HasPricingData(p, product.ModePurchase))
	})

	t.Run("legacy zeros still count as data", func(t *testing.T) {
		// Old exports default legacy money fields to 0, and pricing
		// resolution treats 0 as present.
		p := product.New("F3", "Zero-filled export")
		p.LegacyCost1Y = fptr(0)
		p.LegacyUnitPrice1Y = fptr(0)
		p.LegacySellPrice1Y = fptr(0)

		assert.True(t, HasPricingData(p, product.ModePurchase))
	})
}

func TestDefaultMode(t *testing.T) {
	priced := func(code string, modes ...product.Mode) *product.Product {
		p := product.New(code, code)
		for _, mode := range modes {
			if mode == product.ModeRental {
				p.RentalCost1Y = fptr(10)
				p.RentalUnitPrice1Y = fptr(12)
				p.RentalSellPrice1Y = fptr(15)
			} else {
				p.PurchaseCost = fptr(100)
				p.PurchaseUnitPrice = fptr(120)
				p.PurchaseSellPrice = fptr(150)
			}
		}
		return p
	}

	assert.Equal(t, product.ModePurchase, DefaultMode(priced("D1", product.ModePurchase)))
	assert.Equal(t, product.ModeRental, DefaultMode(priced("D2", product.ModeRental)))
	assert.Equal(t, product.ModePurchase, DefaultMode(priced("D3", product.ModePurchase, product.ModeRental)))
	assert.Equal(t, product.ModePurchase, DefaultMode(priced("D4")))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "N/A", FormatPrice(nil))

	// French locale: comma decimal separator, price ceiled to the cent.
	assert.Contains(t, FormatPrice(fptr(10.123)), "10,13")
	assert.Contains(t, FormatPrice(fptr(10.123)), "€")
	assert.Contains(t, FormatPrice(fptr(16)), "16")
}

func TestFormatImpact(t *testing.T) {
	assert.Equal(t, "N/A", FormatImpact(nil, UnitKg))

	got := FormatImpact(fptr(12.5), UnitKg)
	assert.Contains(t, got, "12,5")
	assert.Contains(t, got, "kg CO₂")

	assert.Contains(t, FormatImpact(fptr(3), UnitMJ), "MJ")
	assert.Contains(t, FormatImpact(fptr(3), UnitMol), "MOL H⁺")
}
