package project

import (
	"context"

	"solkit/internal/core/id"
	"solkit/internal/domain"
)

// Repository defines data access for projects.
type Repository interface {
	Create(ctx context.Context, p *Project) error
	GetByID(ctx context.Context, projectID id.ID) (*Project, error)
	Update(ctx context.Context, p *Project) error
	SetDeletionMark(ctx context.Context, projectID id.ID, marked bool) error
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Project], error)

	// ReplaceLines atomically replaces the kit composition of a project.
	ReplaceLines(ctx context.Context, projectID id.ID, lines []Line) error

	// GetLines loads project lines with kits (and their product lines) resolved.
	GetLines(ctx context.Context, projectID id.ID) ([]Line, error)
}

// ListFilter narrows project listings.
type ListFilter struct {
	domain.ListFilter

	// Status filters by lifecycle state when set.
	Status *Status

	// ClientName filters by exact client.
	ClientName string
}
