package product

import (
	"context"
	"fmt"

	"solkit/internal/core/apperror"
	"solkit/internal/core/id"
	"solkit/internal/core/tx"
	"solkit/internal/domain"
)

// Service provides business logic for the Product catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Product]
	repo Repository
}

// NewService creates a new Product service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "product",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForSave)
	base.Hooks().OnBeforeUpdate(svc.prepareForSave)

	return svc
}

// prepareForSave handles code generation and uniqueness checks.
func (s *Service) prepareForSave(ctx context.Context, item *Product) error {
	if item.Code == "" {
		item.Code = fmt.Sprintf("PR-%s", item.ID.String()[:8])
	}

	if exists, err := s.checkCodeTaken(ctx, item.Code, item.ID); err == nil && exists {
		return apperror.NewDuplicate("product", "code", item.Code)
	}

	return nil
}

// FindLowStock retrieves products with stock below the given threshold.
func (s *Service) FindLowStock(ctx context.Context, threshold int, filter domain.ListFilter) (domain.ListResult[*Product], error) {
	if threshold < 0 {
		threshold = 0
	}
	return s.repo.FindLowStock(ctx, threshold, filter)
}

// checkCodeTaken checks if code is already used by another product.
func (s *Service) checkCodeTaken(ctx context.Context, code string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return false, nil
	}
	return existing.ID != excludeID, nil
}
