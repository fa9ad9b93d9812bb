package dto

import (
	"encoding/json"
	"time"

	"solkit/internal/infrastructure/storage/postgres"
)

// HistoryEntryResponse is one recorded change of an entity.
type HistoryEntryResponse struct {
	ID         string                 `json:"id"`
	EntityType string                 `json:"entityType"`
	EntityID   string                 `json:"entityId"`
	Action     postgres.HistoryAction `json:"action"`
	UserID     string                 `json:"userId,omitempty"`
	Changes    json.RawMessage        `json:"changes,omitempty"`
	CreatedAt  time.Time              `json:"createdAt"`
}

// FromHistoryEntry creates response DTO from a history entry.
// Entries arrive already decompressed.
func FromHistoryEntry(e postgres.HistoryEntry) HistoryEntryResponse {
	return HistoryEntryResponse{
		ID:         e.ID.String(),
		EntityType: e.EntityType,
		EntityID:   e.EntityID.String(),
		Action:     e.Action,
		UserID:     e.UserID,
		Changes:    e.Changes,
		CreatedAt:  e.CreatedAt,
	}
}
