// Package project provides customer projects: the top-level billable unit,
// composed of kit lines with quantities.
package project

import (
	"context"

	"solkit/internal/core/apperror"
	"solkit/internal/core/entity"
	"solkit/internal/core/id"
	"solkit/internal/domain/catalog/kit"
)

// Status is the lifecycle state of a project.
type Status string

const (
	StatusActive   Status = "ACTIF"
	StatusDone     Status = "TERMINE"
	StatusPaused   Status = "EN_PAUSE"
	StatusArchived Status = "ARCHIVE"
)

// Valid reports whether the status is known.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusDone, StatusPaused, StatusArchived:
		return true
	}
	return false
}

// Project is a customer-level container of kit lines.
type Project struct {
	entity.BaseEntity

	Name       string  `db:"name" json:"name"`
	ClientName string  `db:"client_name" json:"clientName"`
	Status     Status  `db:"status" json:"status"`
	Notes      *string `db:"notes" json:"notes,omitempty"`

	// SurfaceOverride + SurfaceManual replace the auto-computed surface when
	// the override flag is set and a manual value is present.
	SurfaceOverride bool     `db:"surface_override" json:"surfaceOverride"`
	SurfaceManual   *float64 `db:"surface_manual" json:"surfaceManual,omitempty"`

	// Lines is the ordered kit composition, loaded by the repository.
	Lines []Line `db:"-" json:"lines,omitempty"`
}

// Line is one kit entry of a project.
type Line struct {
	ID        id.ID `db:"id" json:"id"`
	ProjectID id.ID `db:"project_id" json:"projectId"`
	KitID     id.ID `db:"kit_id" json:"kitId"`

	// Quantity of the kit in the project, at least 1.
	Quantity int `db:"quantity" json:"quantity"`

	// Position keeps the user-defined ordering.
	Position int `db:"position" json:"position"`

	// Kit is the resolved reference, nil when the kit was removed.
	// Aggregations treat such lines as zero.
	Kit *kit.Kit `db:"-" json:"kit,omitempty"`
}

// New creates a new active Project.
func New(name, clientName string) *Project {
	return &Project{
		BaseEntity: entity.NewBaseEntity(),
		Name:       name,
		ClientName: clientName,
		Status:     StatusActive,
	}
}

// NewLine creates a project line for a kit.
func NewLine(projectID, kitID id.ID, quantity int) Line {
	return Line{
		ID:        id.New(),
		ProjectID: projectID,
		KitID:     kitID,
		Quantity:  quantity,
	}
}

// Validate implements entity.Validatable interface.
func (p *Project) Validate(ctx context.Context) error {
	if p.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}

	if !p.Status.Valid() {
		return apperror.NewValidation("invalid project status").
			WithDetail("field", "status").
			WithDetail("value", string(p.Status))
	}

	if p.SurfaceManual != nil && *p.SurfaceManual < 0 {
		return apperror.NewValidation("manual surface cannot be negative").
			WithDetail("field", "surfaceManual")
	}

	for i, line := range p.Lines {
		if line.Quantity < 1 {
			return apperror.NewValidation("line quantity must be at least 1").
				WithDetail("line", i).
				WithDetail("quantity", line.Quantity)
		}
	}

	return nil
}
