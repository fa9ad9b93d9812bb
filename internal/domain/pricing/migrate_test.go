package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"solkit/internal/domain/catalog/product"
)

// A product carrying only legacy data must come back untouched: fallback
// happens at resolution time, never by rewriting stored fields.
func TestMigrateLegacyProductData_NeverRewrites(t *testing.T) {
	p := product.New("PAN-L", "Panneau ancien")
	p.LegacySellPrice1Y = fptr(180)
	p.LegacyClimateChange = fptr(95)

	patch := MigrateLegacyProductData(p)

	assert.Empty(t, patch)
	assert.Nil(t, p.PurchaseSellPrice)
	assert.Equal(t, 180.0, *p.LegacySellPrice1Y)
}
