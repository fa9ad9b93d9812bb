package pricing

import (
	"solkit/internal/domain/catalog/product"
)

// MigrateLegacyProductData is intentionally a no-op returning an empty patch.
//
// The automatic legacy-to-current field migration was disabled after it
// overwrote hand-entered current-tier prices; resolution-time fallback in
// ProductPricing covers every read path, so nothing needs rewriting at save
// time. Kept so the contract stays documented. Do not resurrect the
// rewrite logic without new product requirements.
func MigrateLegacyProductData(p *product.Product) map[string]any {
	return map[string]any{}
}
