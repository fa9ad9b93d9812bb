package kit

import (
	"context"

	"solkit/internal/core/id"
	"solkit/internal/domain"
)

// Repository defines data access for the Kit catalog.
// GetByID and List load kits with their lines and resolved products.
type Repository interface {
	domain.CatalogRepository[*Kit]

	// ReplaceLines atomically replaces the line composition of a kit.
	ReplaceLines(ctx context.Context, kitID id.ID, lines []Line) error

	// GetLines loads the lines of a kit with products resolved.
	GetLines(ctx context.Context, kitID id.ID) ([]Line, error)
}
