package product

import (
	"context"

	"solkit/internal/domain"
)

// Repository defines data access for the Product catalog.
type Repository interface {
	domain.CatalogRepository[*Product]

	// FindLowStock retrieves products with stock below the given threshold.
	FindLowStock(ctx context.Context, threshold int, filter domain.ListFilter) (domain.ListResult[*Product], error)
}
