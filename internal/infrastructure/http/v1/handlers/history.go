package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solkit/internal/core/apperror"
	"solkit/internal/infrastructure/http/v1/dto"
	"solkit/internal/infrastructure/storage/postgres"
)

// historyEntityTypes are the entity types with recorded history.
var historyEntityTypes = map[string]bool{
	"product": true,
	"kit":     true,
	"project": true,
}

// HistoryHandler exposes entity change history.
type HistoryHandler struct {
	*BaseHandler
	service *postgres.HistoryService
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(base *BaseHandler, service *postgres.HistoryService) *HistoryHandler {
	return &HistoryHandler{
		BaseHandler: base,
		service:     service,
	}
}

// GetEntityHistory handles GET /history/:entityType/:id - recorded changes
// of one entity, newest first.
func (h *HistoryHandler) GetEntityHistory(c *gin.Context) {
	ctx := c.Request.Context()

	entityType := c.Param("entityType")
	if !historyEntityTypes[entityType] {
		h.Error(c, apperror.NewValidation("unknown entity type").
			WithDetail("entityType", entityType))
		return
	}

	entityID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	limit := h.ParseIntQuery(c, "limit", 50)
	if limit < 1 || limit > 500 {
		limit = 50
	}

	entries, err := h.service.GetEntityHistory(ctx, entityType, entityID, limit)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(entries))
	for i, e := range entries {
		items[i] = dto.FromHistoryEntry(e)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: int64(len(entries)),
		Limit:      limit,
	})
}
