package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solkit/internal/domain/catalog/kit"
	"solkit/internal/domain/catalog/product"
)

func TestExtractDBColumns_EmbeddedCatalog(t *testing.T) {
	cols := ExtractDBColumns[product.Product]()

	// From entity.BaseEntity via entity.Catalog.
	assert.Contains(t, cols, "id")
	assert.Contains(t, cols, "deletion_mark")
	assert.Contains(t, cols, "version")

	// From entity.Catalog.
	assert.Contains(t, cols, "code")
	assert.Contains(t, cols, "name")

	// Product's own columns.
	assert.Contains(t, cols, "purchase_sell_price")
	assert.Contains(t, cols, "surface_m2")

	// db:"-" fields are excluded.
	assert.NotContains(t, cols, "-")
}

func TestExtractDBColumns_PointerType(t *testing.T) {
	direct := ExtractDBColumns[kit.Kit]()
	viaPointer := ExtractDBColumns[*kit.Kit]()

	assert.Equal(t, direct, viaPointer)
	assert.Contains(t, direct, "style")
}

func TestStructToMap(t *testing.T) {
	p := product.New("PR-001", "Panneau 400W")
	p.PurchaseSellPrice = fptr(199.99)
	p.StockQuantity = 12

	m := StructToMap(p)
	require.NotNil(t, m)

	assert.Equal(t, "PR-001", m["code"])
	assert.Equal(t, "Panneau 400W", m["name"])
	assert.Equal(t, 12, m["stock_quantity"])
	require.NotNil(t, m["purchase_sell_price"])
	assert.Equal(t, 199.99, *(m["purchase_sell_price"].(*float64)))

	// Embedded base entity columns come through.
	assert.Equal(t, p.ID, m["id"])
	assert.Equal(t, false, m["deletion_mark"])
}

func TestStructToMap_SkipsUntaggedFields(t *testing.T) {
	k := kit.New("KIT-001", "Kit résidentiel 3kW", kit.StyleResidential)
	k.Lines = []kit.Line{{Quantity: 2}}

	m := StructToMap(k)

	_, hasLines := m["lines"]
	assert.False(t, hasLines, "db:\"-\" slice must not be mapped")
	assert.Equal(t, "KIT-001", m["code"])
}

func TestStructToMap_NonStruct(t *testing.T) {
	assert.Nil(t, StructToMap(42))
	assert.Nil(t, StructToMap("not a struct"))
}

func fptr(v float64) *float64 { return &v }
