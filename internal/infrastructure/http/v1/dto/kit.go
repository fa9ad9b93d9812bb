package dto

import (
	"solkit/internal/core/apperror"
	"solkit/internal/core/id"
	"solkit/internal/domain/catalog/kit"
	"solkit/internal/domain/catalog/product"
	"solkit/internal/domain/pricing"
)

// --- Request DTOs ---

// KitLineRequest is one product entry of a kit payload. Line order in the
// request defines line positions.
type KitLineRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// CreateKitRequest is the request body for creating a kit.
type CreateKitRequest struct {
	Code        string           `json:"code"`
	Name        string           `json:"name" binding:"required"`
	Style       kit.Style        `json:"style" binding:"required"`
	Description *string          `json:"description"`
	SurfaceM2   *float64         `json:"surfaceM2"`
	Lines       []KitLineRequest `json:"lines"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateKitRequest) ToEntity() (*kit.Kit, error) {
	k := kit.New(r.Code, r.Name, r.Style)
	k.Description = r.Description
	k.SurfaceM2 = r.SurfaceM2

	lines, err := mapKitLines(k.ID, r.Lines)
	if err != nil {
		return nil, err
	}
	k.Lines = lines
	return k, nil
}

// UpdateKitRequest is the request body for updating a kit.
type UpdateKitRequest struct {
	Code        string           `json:"code"`
	Name        string           `json:"name" binding:"required"`
	Style       kit.Style        `json:"style" binding:"required"`
	Description *string          `json:"description"`
	SurfaceM2   *float64         `json:"surfaceM2"`
	Lines       []KitLineRequest `json:"lines"`
	Version     int              `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateKitRequest) ApplyTo(k *kit.Kit) error {
	k.Code = r.Code
	k.Name = r.Name
	k.Style = r.Style
	k.Description = r.Description
	k.SurfaceM2 = r.SurfaceM2
	k.Version = r.Version

	lines, err := mapKitLines(k.ID, r.Lines)
	if err != nil {
		return err
	}
	k.Lines = lines
	return nil
}

func mapKitLines(kitID id.ID, reqs []KitLineRequest) ([]kit.Line, error) {
	lines := make([]kit.Line, 0, len(reqs))
	for i, lr := range reqs {
		productID, err := id.Parse(lr.ProductID)
		if err != nil {
			return nil, apperror.NewValidation("invalid product id").
				WithDetail("line", i).
				WithDetail("productId", lr.ProductID)
		}
		line := kit.NewLine(kitID, productID, lr.Quantity)
		line.Position = i
		lines = append(lines, line)
	}
	return lines, nil
}

// --- Response DTOs ---

// KitLineResponse is one product entry of a kit.
type KitLineResponse struct {
	ID        string           `json:"id"`
	ProductID string           `json:"productId"`
	Quantity  int              `json:"quantity"`
	Position  int              `json:"position"`
	Product   *ProductResponse `json:"product,omitempty"`
}

// KitResponse is the response body for a kit.
type KitResponse struct {
	BaseResponse
	Code        string            `json:"code"`
	Name        string            `json:"name"`
	Style       kit.Style         `json:"style"`
	Description *string           `json:"description,omitempty"`
	SurfaceM2   *float64          `json:"surfaceM2,omitempty"`
	Lines       []KitLineResponse `json:"lines"`
}

// FromKit creates response DTO from domain entity.
func FromKit(k *kit.Kit) *KitResponse {
	lines := make([]KitLineResponse, len(k.Lines))
	for i, line := range k.Lines {
		lines[i] = KitLineResponse{
			ID:        line.ID.String(),
			ProductID: line.ProductID.String(),
			Quantity:  line.Quantity,
			Position:  line.Position,
		}
		if line.Product != nil {
			lines[i].Product = FromProduct(line.Product)
		}
	}

	return &KitResponse{
		BaseResponse: FromBaseEntity(k.BaseEntity),
		Code:         k.Code,
		Name:         k.Name,
		Style:        k.Style,
		Description:  k.Description,
		SurfaceM2:    k.SurfaceM2,
		Lines:        lines,
	}
}

// --- Totals ---

// KitTotalsResponse is the weighted roll-up of a kit for one (mode, period).
type KitTotalsResponse struct {
	KitID  string         `json:"kitId"`
	Mode   product.Mode   `json:"mode"`
	Period product.Period `json:"period"`

	Price          float64              `json:"price"`
	FormattedPrice string               `json:"formattedPrice"`
	Impact         pricing.ImpactTotals `json:"impact"`
	Surface        float64              `json:"surface"`
}

// NewKitTotalsResponse aggregates and formats kit totals.
func NewKitTotalsResponse(k *kit.Kit, mode product.Mode, period product.Period) KitTotalsResponse {
	agg := pricing.KitTotals(k, mode, period)
	return KitTotalsResponse{
		KitID:          k.ID.String(),
		Mode:           mode,
		Period:         period,
		Price:          agg.Price,
		FormattedPrice: pricing.FormatPrice(&agg.Price),
		Impact:         agg.Impact,
		Surface:        agg.Surface,
	}
}
