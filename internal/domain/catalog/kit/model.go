// Package kit provides the Kit catalog: reusable bundles of product lines
// with quantities, composed into customer projects.
package kit

import (
	"context"

	"solkit/internal/core/apperror"
	"solkit/internal/core/entity"
	"solkit/internal/core/id"
	"solkit/internal/domain/catalog/product"
)

// Style tags a kit with its installation style.
type Style string

const (
	StyleResidential Style = "residentiel"
	StyleCommercial  Style = "commercial"
	StyleIndustrial  Style = "industriel"
)

// Kit is a named bundle of product lines.
type Kit struct {
	entity.Catalog

	Style       Style   `db:"style" json:"style"`
	Description *string `db:"description" json:"description,omitempty"`

	// SurfaceM2 is an optional footprint for the whole kit. When nil, surface
	// is derived from the lines' products.
	SurfaceM2 *float64 `db:"surface_m2" json:"surfaceM2,omitempty"`

	// Lines is the ordered product composition. Loaded by the repository,
	// never persisted through the kit row itself.
	Lines []Line `db:"-" json:"lines,omitempty"`
}

// Line is one product entry of a kit.
type Line struct {
	ID        id.ID `db:"id" json:"id"`
	KitID     id.ID `db:"kit_id" json:"kitId"`
	ProductID id.ID `db:"product_id" json:"productId"`

	// Quantity of the product in the kit, at least 1.
	Quantity int `db:"quantity" json:"quantity"`

	// Position keeps the user-defined ordering.
	Position int `db:"position" json:"position"`

	// Product is the resolved reference. May be nil when the product was
	// removed from the catalog; aggregations treat such lines as zero.
	Product *product.Product `db:"-" json:"product,omitempty"`
}

// New creates a new Kit with required fields.
func New(code, name string, style Style) *Kit {
	return &Kit{
		Catalog: entity.NewCatalog(code, name),
		Style:   style,
	}
}

// NewLine creates a kit line for a product.
func NewLine(kitID, productID id.ID, quantity int) Line {
	return Line{
		ID:        id.New(),
		KitID:     kitID,
		ProductID: productID,
		Quantity:  quantity,
	}
}

// Validate implements entity.Validatable interface.
func (k *Kit) Validate(ctx context.Context) error {
	if err := k.Catalog.Validate(ctx); err != nil {
		return err
	}

	if k.Style != StyleResidential && k.Style != StyleCommercial && k.Style != StyleIndustrial {
		return apperror.NewValidation("invalid kit style").
			WithDetail("field", "style").
			WithDetail("value", string(k.Style))
	}

	if k.SurfaceM2 != nil && *k.SurfaceM2 < 0 {
		return apperror.NewValidation("surface cannot be negative").
			WithDetail("field", "surfaceM2")
	}

	seen := make(map[id.ID]bool, len(k.Lines))
	for i, line := range k.Lines {
		if line.Quantity < 1 {
			return apperror.NewValidation("line quantity must be at least 1").
				WithDetail("line", i).
				WithDetail("quantity", line.Quantity)
		}
		if seen[line.ProductID] {
			return apperror.NewValidation("duplicate product in kit").
				WithDetail("productId", line.ProductID.String())
		}
		seen[line.ProductID] = true
	}

	return nil
}
