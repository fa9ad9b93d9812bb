package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solkit/internal/domain/catalog/product"
	"solkit/internal/domain/pricing"
	"solkit/internal/infrastructure/http/v1/dto"
)

// ProductHandler handles product catalog endpoints: generic CRUD plus
// pricing resolution and stock queries.
type ProductHandler struct {
	*CatalogHandler[*product.Product, dto.CreateProductRequest, dto.UpdateProductRequest]
	service *product.Service
}

// NewProductHandler creates a new product handler.
func NewProductHandler(base *BaseHandler, service *product.Service) *ProductHandler {
	config := CatalogHandlerConfig[*product.Product, dto.CreateProductRequest, dto.UpdateProductRequest]{
		Service:    service.CatalogService,
		EntityName: "product",

		MapCreateDTO: func(req dto.CreateProductRequest) *product.Product {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateProductRequest, existing *product.Product) *product.Product {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *product.Product) any {
			return dto.FromProduct(entity)
		},
	}

	return &ProductHandler{
		CatalogHandler: NewCatalogHandler(base, config),
		service:        service,
	}
}

// LowStock handles GET /products/low-stock - products below a stock threshold.
func (h *ProductHandler) LowStock(c *gin.Context) {
	ctx := c.Request.Context()

	threshold := h.ParseIntQuery(c, "threshold", 5)
	filter, ok := h.ParseListFilter(c)
	if !ok {
		return
	}

	result, err := h.service.FindLowStock(ctx, threshold, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, item := range result.Items {
		items[i] = dto.FromProduct(item)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Pricing handles GET /products/:id/pricing - resolved price point and
// environmental impact for a (mode, period) pair. When the mode is omitted
// the product's default mode applies; the period defaults to 1 year.
func (h *ProductHandler) Pricing(c *gin.Context) {
	ctx := c.Request.Context()

	productID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	mode, ok := h.ParseMode(c)
	if !ok {
		return
	}
	period, ok := h.ParsePeriod(c)
	if !ok {
		return
	}

	p, err := h.service.GetByID(ctx, productID)
	if err != nil {
		h.Error(c, err)
		return
	}

	if mode == "" {
		mode = pricing.DefaultMode(p)
	}
	if period == "" {
		period = product.Period1Year
	}

	c.JSON(http.StatusOK, dto.NewProductPricingResponse(p, mode, period))
}
