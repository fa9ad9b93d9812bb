package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solkit/internal/domain/catalog/kit"
	"solkit/internal/domain/catalog/product"
	"solkit/internal/infrastructure/http/v1/dto"
)

// KitHandler handles kit catalog endpoints. Kits always travel with their
// line composition, so CRUD goes through SaveWithLines rather than the
// generic catalog handler.
type KitHandler struct {
	*BaseHandler
	service *kit.Service
}

// NewKitHandler creates a new kit handler.
func NewKitHandler(base *BaseHandler, service *kit.Service) *KitHandler {
	return &KitHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /kits - list with filtering and pagination.
func (h *KitHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter, ok := h.ParseListFilter(c)
	if !ok {
		return
	}

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, item := range result.Items {
		items[i] = dto.FromKit(item)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /kits/:id - kit with lines and resolved products.
func (h *KitHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	kitID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	k, err := h.service.GetWithLines(ctx, kitID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromKit(k))
}

// Create handles POST /kits - create kit with its line composition.
func (h *KitHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateKitRequest
	if !h.BindJSON(c, &req) {
		return
	}

	k, err := req.ToEntity()
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.SaveWithLines(ctx, k, true); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromKit(k))
}

// Update handles PUT /kits/:id - update kit and replace its lines.
func (h *KitHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	kitID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateKitRequest
	if !h.BindJSON(c, &req) {
		return
	}

	existing, err := h.service.GetByID(ctx, kitID)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := req.ApplyTo(existing); err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.SaveWithLines(ctx, existing, false); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromKit(existing))
}

// Delete handles DELETE /kits/:id - soft delete kit.
func (h *KitHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	kitID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, kitID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SetDeletionMark handles POST /kits/:id/deletion-mark
func (h *KitHandler) SetDeletionMark(c *gin.Context) {
	ctx := c.Request.Context()

	kitID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.SetDeletionMarkRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.SetDeletionMark(ctx, kitID, req.Marked); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "deletion mark updated")
}

// Totals handles GET /kits/:id/totals - weighted price, impact and surface
// roll-up for a (mode, period) pair.
func (h *KitHandler) Totals(c *gin.Context) {
	ctx := c.Request.Context()

	kitID, ok := h.ParseID(c, "id")
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
	if mode == "" {
		mode = product.ModePurchase
	}
	if period == "" {
		period = product.Period1Year
	}

	k, err := h.service.GetWithLines(ctx, kitID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewKitTotalsResponse(k, mode, period))
}
