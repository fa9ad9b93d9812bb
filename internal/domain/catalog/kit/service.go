package kit

import (
	"context"
	"fmt"

	"solkit/internal/core/id"
	"solkit/internal/core/tx"
	"solkit/internal/domain"
)

// Service provides business logic for the Kit catalog.
type Service struct {
	*domain.CatalogService[*Kit]
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new Kit service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Kit]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "kit",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		txManager:      txManager,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForSave)
	base.Hooks().OnBeforeUpdate(svc.prepareForSave)

	return svc
}

func (s *Service) prepareForSave(ctx context.Context, k *Kit) error {
	if k.Code == "" {
		k.Code = fmt.Sprintf("KIT-%s", k.ID.String()[:8])
	}
	return nil
}

// SaveWithLines persists the kit and its full line composition in one
// transaction. Line positions are normalized to the given order.
func (s *Service) SaveWithLines(ctx context.Context, k *Kit, create bool) error {
	for i := range k.Lines {
		k.Lines[i].KitID = k.ID
		k.Lines[i].Position = i
		if id.IsNil(k.Lines[i].ID) {
			k.Lines[i].ID = id.New()
		}
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		if create {
			err = s.Create(ctx, k)
		} else {
			err = s.Update(ctx, k)
		}
		if err != nil {
			return err
		}
		return s.repo.ReplaceLines(ctx, k.ID, k.Lines)
	})
}

// GetWithLines loads a kit with its lines and resolved products.
func (s *Service) GetWithLines(ctx context.Context, kitID id.ID) (*Kit, error) {
	k, err := s.GetByID(ctx, kitID)
	if err != nil {
		return nil, err
	}
	lines, err := s.repo.GetLines(ctx, kitID)
	if err != nil {
		return nil, fmt.Errorf("load kit lines: %w", err)
	}
	k.Lines = lines
	return k, nil
}
