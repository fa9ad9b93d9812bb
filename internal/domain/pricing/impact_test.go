package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solkit/internal/domain/catalog/product"
)

func TestEnvironmentalImpact_ModeSelection(t *testing.T) {
	p := product.New("E1", "Panel")
	p.PurchaseClimateChange = fptr(120)
	p.RentalClimateChange = fptr(15)

	purchase := EnvironmentalImpact(p, product.ModePurchase)
	rental := EnvironmentalImpact(p, product.ModeRental)

	require.NotNil(t, purchase.ClimateChange)
	assert.Equal(t, 120.0, *purchase.ClimateChange)
	require.NotNil(t, rental.ClimateChange)
	assert.Equal(t, 15.0, *rental.ClimateChange)

	// Empty mode defaults to purchase.
	def := EnvironmentalImpact(p, "")
	require.NotNil(t, def.ClimateChange)
	assert.Equal(t, 120.0, *def.ClimateChange)
}

func TestEnvironmentalImpact_LegacyFallback(t *testing.T) {
	t.Run("legacy fills missing metrics for both modes", func(t *testing.T) {
		p := product.New("E2", "Legacy import")
		p.LegacyClimateChange = fptr(80)
		p.LegacyAcidification = fptr(0.5)

		for _, mode := range []product.Mode{product.ModePurchase, product.ModeRental} {
			got := EnvironmentalImpact(p, mode)

			require.NotNil(t, got.ClimateChange, "mode %s", mode)
			assert.Equal(t, 80.0, *got.ClimateChange, "mode %s", mode)
			require.NotNil(t, got.Acidification, "mode %s", mode)
			assert.Equal(t, 0.5, *got.Acidification, "mode %s", mode)
			assert.Nil(t, got.ResourceDepletion, "mode %s", mode)
			assert.Nil(t, got.Eutrophication, "mode %s", mode)
		}
	})

	t.Run("legacy zero counts as absent", func(t *testing.T) {
		p := product.New("E3", "Zero-filled export")
		p.LegacyClimateChange = fptr(0)

		got := EnvironmentalImpact(p, product.ModePurchase)

		assert.Nil(t, got.ClimateChange)
	})

	t.Run("mode-specific zero is kept", func(t *testing.T) {
		p := product.New("E4", "Genuinely neutral")
		p.PurchaseClimateChange = fptr(0)
		p.LegacyClimateChange = fptr(80)

		got := EnvironmentalImpact(p, product.ModePurchase)

		require.NotNil(t, got.ClimateChange)
		assert.Equal(t, 0.0, *got.ClimateChange)
	})
}

func TestEnvironmentalImpact_NilProduct(t *testing.T) {
	got := EnvironmentalImpact(nil, product.ModePurchase)

	assert.Nil(t, got.ClimateChange)
	assert.Nil(t, got.ResourceDepletion)
	assert.Nil(t, got.Acidification)
	assert.Nil(t, got.Eutrophication)
}
