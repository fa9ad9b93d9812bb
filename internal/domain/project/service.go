package project

import (
	"context"
	"fmt"

	"solkit/internal/core/apperror"
	"solkit/internal/core/id"
	"solkit/internal/core/tx"
)

// ChangeAction names the kind of project write a listener is told about.
type ChangeAction string

const (
	ChangeCreate       ChangeAction = "create"
	ChangeUpdate       ChangeAction = "update"
	ChangeStatusChange ChangeAction = "status_change"
)

// ChangeListener is notified after a successful project write.
type ChangeListener func(ctx context.Context, p *Project, action ChangeAction)

// Service provides business logic for projects.
type Service struct {
	repo      Repository
	txManager tx.Manager
	listeners []ChangeListener
}

// NewService creates a new project service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// OnChange registers a listener called after every successful write.
func (s *Service) OnChange(l ChangeListener) {
	s.listeners = append(s.listeners, l)
}

func (s *Service) notify(ctx context.Context, p *Project, action ChangeAction) {
	for _, l := range s.listeners {
		l(ctx, p, action)
	}
}

// Create validates and persists a new project with its lines.
func (s *Service) Create(ctx context.Context, p *Project) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}
	s.normalizeLines(p)

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, p); err != nil {
			return fmt.Errorf("create project: %w", err)
		}
		return s.repo.ReplaceLines(ctx, p.ID, p.Lines)
	})
	if err != nil {
		return err
	}

	s.notify(ctx, p, ChangeCreate)
	return nil
}

// Update validates and persists project changes, replacing lines wholesale.
func (s *Service) Update(ctx context.Context, p *Project) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}
	s.normalizeLines(p)

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, p); err != nil {
			return fmt.Errorf("update project: %w", err)
		}
		return s.repo.ReplaceLines(ctx, p.ID, p.Lines)
	})
	if err != nil {
		return err
	}

	s.notify(ctx, p, ChangeUpdate)
	return nil
}

// GetByID loads a project with its kit lines resolved.
func (s *Service) GetByID(ctx context.Context, projectID id.ID) (*Project, error) {
	p, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("project", projectID.String())
		}
		return nil, err
	}

	lines, err := s.repo.GetLines(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("load project lines: %w", err)
	}
	p.Lines = lines
	return p, nil
}

// List retrieves projects matching the filter. Lines are not loaded.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Project, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Limit > 500 {
		filter.Limit = 500
	}
	res, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return res.Items, res.TotalCount, nil
}

// SetStatus transitions the project lifecycle state.
func (s *Service) SetStatus(ctx context.Context, projectID id.ID, status Status) error {
	if !status.Valid() {
		return apperror.NewValidation("invalid project status").
			WithDetail("value", string(status))
	}

	var updated *Project
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		p, err := s.repo.GetByID(ctx, projectID)
		if err != nil {
			return err
		}
		p.Status = status
		p.Touch()
		updated = p
		return s.repo.Update(ctx, p)
	})
	if err != nil {
		return err
	}

	s.notify(ctx, updated, ChangeStatusChange)
	return nil
}

// Delete soft-deletes a project.
func (s *Service) Delete(ctx context.Context, projectID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.SetDeletionMark(ctx, projectID, true)
	})
}

func (s *Service) normalizeLines(p *Project) {
	for i := range p.Lines {
		p.Lines[i].ProjectID = p.ID
		p.Lines[i].Position = i
		if id.IsNil(p.Lines[i].ID) {
			p.Lines[i].ID = id.New()
		}
	}
}
