package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solkit/internal/core/apperror"
	"solkit/internal/domain/catalog/product"
	"solkit/internal/domain/project"
	"solkit/internal/infrastructure/http/v1/dto"
)

// ProjectHandler handles project endpoints: CRUD, status changes and the
// pricing/impact roll-ups.
type ProjectHandler struct {
	*BaseHandler
	service *project.Service
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(base *BaseHandler, service *project.Service) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /projects - list with filtering and pagination.
func (h *ProjectHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	base, ok := h.ParseListFilter(c)
	if !ok {
		return
	}

	filter := project.ListFilter{
		ListFilter: base,
		ClientName: c.Query("clientName"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := project.Status(statusStr)
		if !status.Valid() {
			h.Error(c, apperror.NewValidation("invalid status").WithDetail("status", statusStr))
			return
		}
		filter.Status = &status
	}

	projects, total, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(projects))
	for i, p := range projects {
		items[i] = dto.FromProject(p)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: total,
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	})
}

// Get handles GET /projects/:id - project with lines and resolved kits.
func (h *ProjectHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	projectID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	p, err := h.service.GetByID(ctx, projectID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromProject(p))
}

// Create handles POST /projects - create project with its kit lines.
func (h *ProjectHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateProjectRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p, err := req.ToEntity()
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Create(ctx, p); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromProject(p))
}

// Update handles PUT /projects/:id - update project and replace its lines.
func (h *ProjectHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	projectID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if !h.BindJSON(c, &req) {
		return
	}

	existing, err := h.service.GetByID(ctx, projectID)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := req.ApplyTo(existing); err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Update(ctx, existing); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromProject(existing))
}

// Delete handles DELETE /projects/:id - soft delete project.
func (h *ProjectHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	projectID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, projectID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SetStatus handles POST /projects/:id/status - lifecycle state change.
func (h *ProjectHandler) SetStatus(c *gin.Context) {
	ctx := c.Request.Context()

	projectID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.SetStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.SetStatus(ctx, projectID, req.Status); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "status updated")
}

// Totals handles GET /projects/:id/totals - purchase total, impact totals,
// surface and the rental cost table.
func (h *ProjectHandler) Totals(c *gin.Context) {
	ctx := c.Request.Context()

	projectID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	p, err := h.service.GetByID(ctx, projectID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProjectTotalsResponse(p))
}

// Summary handles GET /projects/:id/summary - the card metrics for a mode.
func (h *ProjectHandler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	projectID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	mode, ok := h.ParseMode(c)
	if !ok {
		return
	}
	if mode == "" {
		mode = product.ModePurchase
	}

	p, err := h.service.GetByID(ctx, projectID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProjectSummaryResponse(p, mode))
}
