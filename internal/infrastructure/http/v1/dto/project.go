package dto

import (
	"solkit/internal/core/apperror"
	"solkit/internal/core/id"
	"solkit/internal/domain/catalog/product"
	"solkit/internal/domain/pricing"
	"solkit/internal/domain/project"
)

// --- Request DTOs ---

// ProjectLineRequest is one kit entry of a project payload. Line order in
// the request defines line positions.
type ProjectLineRequest struct {
	KitID    string `json:"kitId" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// CreateProjectRequest is the request body for creating a project.
type CreateProjectRequest struct {
	Name            string               `json:"name" binding:"required"`
	ClientName      string               `json:"clientName"`
	Notes           *string              `json:"notes"`
	SurfaceOverride bool                 `json:"surfaceOverride"`
	SurfaceManual   *float64             `json:"surfaceManual"`
	Lines           []ProjectLineRequest `json:"lines"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateProjectRequest) ToEntity() (*project.Project, error) {
	p := project.New(r.Name, r.ClientName)
	p.Notes = r.Notes
	p.SurfaceOverride = r.SurfaceOverride
	p.SurfaceManual = r.SurfaceManual

	lines, err := mapProjectLines(p.ID, r.Lines)
	if err != nil {
		return nil, err
	}
	p.Lines = lines
	return p, nil
}

// UpdateProjectRequest is the request body for updating a project.
type UpdateProjectRequest struct {
	Name            string               `json:"name" binding:"required"`
	ClientName      string               `json:"clientName"`
	Status          project.Status       `json:"status" binding:"required"`
	Notes           *string              `json:"notes"`
	SurfaceOverride bool                 `json:"surfaceOverride"`
	SurfaceManual   *float64             `json:"surfaceManual"`
	Lines           []ProjectLineRequest `json:"lines"`
	Version         int                  `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateProjectRequest) ApplyTo(p *project.Project) error {
	p.Name = r.Name
	p.ClientName = r.ClientName
	p.Status = r.Status
	p.Notes = r.Notes
	p.SurfaceOverride = r.SurfaceOverride
	p.SurfaceManual = r.SurfaceManual
	p.Version = r.Version

	lines, err := mapProjectLines(p.ID, r.Lines)
	if err != nil {
		return err
	}
	p.Lines = lines
	return nil
}

// SetStatusRequest changes a project's lifecycle state.
type SetStatusRequest struct {
	Status project.Status `json:"status" binding:"required"`
}

func mapProjectLines(projectID id.ID, reqs []ProjectLineRequest) ([]project.Line, error) {
	lines := make([]project.Line, 0, len(reqs))
	for i, lr := range reqs {
		kitID, err := id.Parse(lr.KitID)
		if err != nil {
			return nil, apperror.NewValidation("invalid kit id").
				WithDetail("line", i).
				WithDetail("kitId", lr.KitID)
		}
		line := project.NewLine(projectID, kitID, lr.Quantity)
		line.Position = i
		lines = append(lines, line)
	}
	return lines, nil
}

// --- Response DTOs ---

// ProjectLineResponse is one kit entry of a project.
type ProjectLineResponse struct {
	ID       string       `json:"id"`
	KitID    string       `json:"kitId"`
	Quantity int          `json:"quantity"`
	Position int          `json:"position"`
	Kit      *KitResponse `json:"kit,omitempty"`
}

// ProjectResponse is the response body for a project.
type ProjectResponse struct {
	BaseResponse
	Name            string                `json:"name"`
	ClientName      string                `json:"clientName"`
	Status          project.Status        `json:"status"`
	Notes           *string               `json:"notes,omitempty"`
	SurfaceOverride bool                  `json:"surfaceOverride"`
	SurfaceManual   *float64              `json:"surfaceManual,omitempty"`
	Lines           []ProjectLineResponse `json:"lines"`
}

// FromProject creates response DTO from domain entity.
func FromProject(p *project.Project) *ProjectResponse {
	lines := make([]ProjectLineResponse, len(p.Lines))
	for i, line := range p.Lines {
		lines[i] = ProjectLineResponse{
			ID:       line.ID.String(),
			KitID:    line.KitID.String(),
			Quantity: line.Quantity,
			Position: line.Position,
		}
		if line.Kit != nil {
			lines[i].Kit = FromKit(line.Kit)
		}
	}

	return &ProjectResponse{
		BaseResponse:    FromBaseEntity(p.BaseEntity),
		Name:            p.Name,
		ClientName:      p.ClientName,
		Status:          p.Status,
		Notes:           p.Notes,
		SurfaceOverride: p.SurfaceOverride,
		SurfaceManual:   p.SurfaceManual,
		Lines:           lines,
	}
}

// --- Totals ---

// RentalCostResponse is one rental tier's cost with formatted figures.
type RentalCostResponse struct {
	Annual           float64 `json:"annual"`
	Monthly          float64 `json:"monthly"`
	FormattedAnnual  string  `json:"formattedAnnual"`
	FormattedMonthly string  `json:"formattedMonthly"`
}

func newRentalCostResponse(rc pricing.RentalCost) RentalCostResponse {
	return RentalCostResponse{
		Annual:           rc.Annual,
		Monthly:          rc.Monthly,
		FormattedAnnual:  pricing.FormatPrice(&rc.Annual),
		FormattedMonthly: pricing.FormatPrice(&rc.Monthly),
	}
}

// ProjectTotalsResponse is the full roll-up of a project: purchase price,
// impact totals, surface, purchase cost and the rental cost table.
type ProjectTotalsResponse struct {
	ProjectID string `json:"projectId"`

	TotalPrice          float64              `json:"totalPrice"`
	FormattedTotalPrice string               `json:"formattedTotalPrice"`
	TotalImpact         pricing.ImpactTotals `json:"totalImpact"`
	TotalSurface        float64              `json:"totalSurface"`

	PurchaseCost float64 `json:"purchaseCost"`

	Rental struct {
		Year1 RentalCostResponse `json:"1an"`
		Year2 RentalCostResponse `json:"2ans"`
		Year3 RentalCostResponse `json:"3ans"`
	} `json:"rental"`
}

// NewProjectTotalsResponse aggregates and formats project totals.
func NewProjectTotalsResponse(p *project.Project) ProjectTotalsResponse {
	agg := pricing.ProjectTotals(p)
	rental := pricing.ProjectRentalCosts(p)

	resp := ProjectTotalsResponse{
		ProjectID:           p.ID.String(),
		TotalPrice:          agg.TotalPrice,
		FormattedTotalPrice: pricing.FormatPrice(&agg.TotalPrice),
		TotalImpact:         agg.TotalImpact,
		TotalSurface:        agg.TotalSurface,
		PurchaseCost:        pricing.ProjectPurchaseCost(p),
	}
	resp.Rental.Year1 = newRentalCostResponse(rental.Year1)
	resp.Rental.Year2 = newRentalCostResponse(rental.Year2)
	resp.Rental.Year3 = newRentalCostResponse(rental.Year3)
	return resp
}

// --- Summary card ---

// ProjectSummaryResponse carries the metrics shown on project cards.
// Rental figures use the 3-year tier by card convention.
type ProjectSummaryResponse struct {
	ProjectID string       `json:"projectId"`
	Mode      product.Mode `json:"mode"`

	Price          float64 `json:"price"`
	FormattedPrice string  `json:"formattedPrice"`

	CO2          float64 `json:"co2"`
	FormattedCO2 string  `json:"formattedCo2"`

	PricePerM2          *float64 `json:"pricePerM2,omitempty"`
	FormattedPricePerM2 string   `json:"formattedPricePerM2"`

	ProductCount int `json:"productCount"`
	TotalUnits   int `json:"totalUnits"`
	KitCount     int `json:"kitCount"`
}

// NewProjectSummaryResponse computes and formats card metrics.
func NewProjectSummaryResponse(p *project.Project, mode product.Mode) ProjectSummaryResponse {
	price := pricing.ProjectPrice(p, mode)
	co2 := pricing.ProjectCO2(p, mode)
	perM2 := pricing.PricePerM2(p, mode)

	return ProjectSummaryResponse{
		ProjectID:           p.ID.String(),
		Mode:                mode,
		Price:               price,
		FormattedPrice:      pricing.FormatPrice(&price),
		CO2:                 co2,
		FormattedCO2:        pricing.FormatImpact(&co2, pricing.UnitKg),
		PricePerM2:          perM2,
		FormattedPricePerM2: pricing.FormatPrice(perM2),
		ProductCount:        pricing.ProductCount(p),
		TotalUnits:          pricing.TotalUnits(p),
		KitCount:            pricing.KitCount(p),
	}
}
