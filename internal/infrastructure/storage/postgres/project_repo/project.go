// Package project_repo provides the PostgreSQL implementation of the
// project repository.
package project_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"solkit/internal/core/apperror"
	"solkit/internal/core/id"
	"solkit/internal/domain"
	"solkit/internal/domain/catalog/kit"
	"solkit/internal/domain/project"
	"solkit/internal/infrastructure/storage/postgres"
	"solkit/internal/infrastructure/storage/postgres/catalog_repo"
)

const (
	projectTable     = "projects"
	projectLineTable = "project_lines"
)

// ProjectRepo implements project.Repository. GetByID resolves lines down to
// kits and their product lines, so pricing aggregation works off a fully
// loaded graph.
type ProjectRepo struct {
	txManager  *postgres.TxManager
	kits       *catalog_repo.KitRepo
	selectCols []string
}

var _ project.Repository = (*ProjectRepo)(nil)

// NewProjectRepo creates a new project repository.
func NewProjectRepo(txManager *postgres.TxManager, kits *catalog_repo.KitRepo) *ProjectRepo {
	return &ProjectRepo{
		txManager:  txManager,
		kits:       kits,
		selectCols: postgres.ExtractDBColumns[project.Project](),
	}
}

func (r *ProjectRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *ProjectRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder().
		Select(r.selectCols...).
		From(projectTable)
}

// Create inserts a new project row. Lines are persisted via ReplaceLines.
func (r *ProjectRepo) Create(ctx context.Context, p *project.Project) error {
	data := postgres.StructToMap(p)

	filteredData := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	sql, args, err := r.builder().
		Insert(projectTable).
		SetMap(filteredData).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID retrieves a project with its kit lines fully resolved.
func (r *ProjectRepo) GetByID(ctx context.Context, projectID id.ID) (*project.Project, error) {
	p := &project.Project{}

	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"id": projectID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), p, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(projectTable, projectID.String())
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	if p.Lines, err = r.GetLines(ctx, projectID); err != nil {
		return nil, err
	}
	return p, nil
}

// Update modifies a project row with optimistic locking.
func (r *ProjectRepo) Update(ctx context.Context, p *project.Project) error {
	data := postgres.StructToMap(p)

	version, ok := data["version"].(int)
	if !ok {
		return fmt.Errorf("project has no version field")
	}

	filteredData := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if col == "id" || col == "version" {
			continue
		}
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	sql, args, err := r.builder().
		Update(projectTable).
		SetMap(filteredData).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": p.ID}).
		Where(squirrel.Eq{"version": version}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification(projectTable, p.ID)
	}
	return nil
}

// SetDeletionMark sets or clears the deletion mark.
func (r *ProjectRepo) SetDeletionMark(ctx context.Context, projectID id.ID, marked bool) error {
	sql, args, err := r.builder().
		Update(projectTable).
		Set("deletion_mark", marked).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": projectID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set deletion mark: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("execute set deletion mark: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(projectTable, projectID.String())
	}
	return nil
}

// List retrieves projects with filtering and pagination. Lines are not
// loaded; listings only need row-level fields and counts come from the
// summary endpoints.
func (r *ProjectRepo) List(ctx context.Context, f project.ListFilter) (domain.ListResult[*project.Project], error) {
	result := domain.ListResult[*project.Project]{
		Limit:  f.Limit,
		Offset: f.Offset,
	}

	q := r.baseSelect()

	if !f.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"client_name": pattern},
		})
	}

	if f.Status != nil {
		q = q.Where(squirrel.Eq{"status": *f.Status})
	}

	if f.ClientName != "" {
		q = q.Where(squirrel.Eq{"client_name": f.ClientName})
	}

	if len(f.IDs) > 0 {
		q = q.Where(squirrel.Eq{"id": f.IDs})
	}

	countSQL, countArgs, err := r.builder().
		Select("COUNT(*)").
		FromSelect(q, "sub").
		ToSql()
	if err != nil {
		return result, fmt.Errorf("build count query: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&result.TotalCount); err != nil {
		return result, fmt.Errorf("count: %w", err)
	}

	orderBy := f.OrderBy
	if orderBy == "" {
		orderBy = "-created_at"
	}
	switch orderBy {
	case "name":
		q = q.OrderBy("name ASC")
	case "-name":
		q = q.OrderBy("name DESC")
	case "created_at":
		q = q.OrderBy("created_at ASC")
	case "-created_at":
		q = q.OrderBy("created_at DESC")
	case "client_name":
		q = q.OrderBy("client_name ASC")
	default:
		return result, apperror.NewValidation("invalid orderBy").WithDetail("orderBy", f.OrderBy)
	}

	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		q = q.Offset(uint64(f.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("list projects: %w", err)
	}

	return result, nil
}

// ReplaceLines atomically replaces the kit composition of a project.
func (r *ProjectRepo) ReplaceLines(ctx context.Context, projectID id.ID, lines []project.Line) error {
	querier := r.txManager.GetQuerier(ctx)

	delSQL, delArgs, err := r.builder().
		Delete(projectLineTable).
		Where(squirrel.Eq{"project_id": projectID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete lines: %w", err)
	}
	if _, err := querier.Exec(ctx, delSQL, delArgs...); err != nil {
		return fmt.Errorf("delete project lines: %w", err)
	}

	if len(lines) == 0 {
		return nil
	}

	ins := r.builder().
		Insert(projectLineTable).
		Columns("id", "project_id", "kit_id", "quantity", "position")
	for _, line := range lines {
		ins = ins.Values(line.ID, projectID, line.KitID, line.Quantity, line.Position)
	}

	insSQL, insArgs, err := ins.ToSql()
	if err != nil {
		return fmt.Errorf("build insert lines: %w", err)
	}
	if _, err := querier.Exec(ctx, insSQL, insArgs...); err != nil {
		return fmt.Errorf("insert project lines: %w", err)
	}

	return nil
}

// GetLines loads project lines with kits and their product lines resolved.
func (r *ProjectRepo) GetLines(ctx context.Context, projectID id.ID) ([]project.Line, error) {
	sql, args, err := r.builder().
		Select("id", "project_id", "kit_id", "quantity", "position").
		From(projectLineTable).
		Where(squirrel.Eq{"project_id": projectID}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lines query: %w", err)
	}

	var lines []project.Line
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("select project lines: %w", err)
	}

	if err := r.resolveKits(ctx, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// resolveKits attaches kit references (with their product lines) to project
// lines. A kit removed from the catalog leaves a nil reference; aggregation
// treats such lines as zero.
func (r *ProjectRepo) resolveKits(ctx context.Context, lines []project.Line) error {
	if len(lines) == 0 {
		return nil
	}

	seen := make(map[id.ID]bool, len(lines))
	kitIDs := make([]id.ID, 0, len(lines))
	for _, line := range lines {
		if !seen[line.KitID] {
			seen[line.KitID] = true
			kitIDs = append(kitIDs, line.KitID)
		}
	}

	result, err := r.kits.List(ctx, domain.ListFilter{IDs: kitIDs, IncludeDeleted: true, Limit: len(kitIDs)})
	if err != nil {
		return fmt.Errorf("resolve kits: %w", err)
	}

	byID := make(map[id.ID]*kit.Kit, len(result.Items))
	for _, k := range result.Items {
		byID[k.ID] = k
	}

	for i := range lines {
		lines[i].Kit = byID[lines[i].KitID]
	}
	return nil
}
