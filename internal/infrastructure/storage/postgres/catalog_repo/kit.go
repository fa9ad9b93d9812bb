package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"solkit/internal/core/id"
	"solkit/internal/domain"
	"solkit/internal/domain/catalog/kit"
	"solkit/internal/infrastructure/storage/postgres"
)

const (
	kitTable     = "cat_kits"
	kitLineTable = "cat_kit_lines"
)

// KitRepo implements kit.Repository. GetByID and List return kits with
// their lines and product references resolved.
type KitRepo struct {
	*BaseCatalogRepo[*kit.Kit]

	products *ProductRepo
}

var _ kit.Repository = (*KitRepo)(nil)

// NewKitRepo creates a new kit repository.
func NewKitRepo(txManager *postgres.TxManager, products *ProductRepo) *KitRepo {
	return &KitRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			kitTable,
			postgres.ExtractDBColumns[kit.Kit](),
			func() *kit.Kit { return &kit.Kit{} },
		),
		products: products,
	}
}

// GetByID retrieves a kit with its lines resolved.
func (r *KitRepo) GetByID(ctx context.Context, kitID id.ID) (*kit.Kit, error) {
	k, err := r.BaseCatalogRepo.GetByID(ctx, kitID)
	if err != nil {
		return nil, err
	}

	if k.Lines, err = r.GetLines(ctx, kitID); err != nil {
		return nil, err
	}
	return k, nil
}

// List retrieves kits with lines resolved for every item.
func (r *KitRepo) List(ctx context.Context, f domain.ListFilter) (domain.ListResult[*kit.Kit], error) {
	result, err := r.BaseCatalogRepo.List(ctx, f)
	if err != nil {
		return result, err
	}

	if err := r.attachLines(ctx, result.Items); err != nil {
		return result, err
	}
	return result, nil
}

// GetLines loads the lines of a kit with products resolved.
func (r *KitRepo) GetLines(ctx context.Context, kitID id.ID) ([]kit.Line, error) {
	lines, err := r.selectLines(ctx, []id.ID{kitID})
	if err != nil {
		return nil, err
	}
	if err := r.resolveProducts(ctx, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// ReplaceLines atomically replaces the line composition of a kit.
// Callers run this inside a transaction together with the kit update.
func (r *KitRepo) ReplaceLines(ctx context.Context, kitID id.ID, lines []kit.Line) error {
	querier := r.Querier(ctx)

	delSQL, delArgs, err := r.Builder().
		Delete(kitLineTable).
		Where(squirrel.Eq{"kit_id": kitID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete lines: %w", err)
	}
	if _, err := querier.Exec(ctx, delSQL, delArgs...); err != nil {
		return fmt.Errorf("delete kit lines: %w", err)
	}

	if len(lines) == 0 {
		return nil
	}

	ins := r.Builder().
		Insert(kitLineTable).
		Columns("id", "kit_id", "product_id", "quantity", "position")
	for _, line := range lines {
		ins = ins.Values(line.ID, kitID, line.ProductID, line.Quantity, line.Position)
	}

	insSQL, insArgs, err := ins.ToSql()
	if err != nil {
		return fmt.Errorf("build insert lines: %w", err)
	}
	if _, err := querier.Exec(ctx, insSQL, insArgs...); err != nil {
		return fmt.Errorf("insert kit lines: %w", err)
	}

	return nil
}

// attachLines loads and distributes lines for a batch of kits.
func (r *KitRepo) attachLines(ctx context.Context, kits []*kit.Kit) error {
	if len(kits) == 0 {
		return nil
	}

	kitIDs := make([]id.ID, len(kits))
	for i, k := range kits {
		kitIDs[i] = k.ID
	}

	lines, err := r.selectLines(ctx, kitIDs)
	if err != nil {
		return err
	}
	if err := r.resolveProducts(ctx, lines); err != nil {
		return err
	}

	byKit := make(map[id.ID][]kit.Line, len(kits))
	for _, line := range lines {
		byKit[line.KitID] = append(byKit[line.KitID], line)
	}
	for _, k := range kits {
		k.Lines = byKit[k.ID]
	}
	return nil
}

func (r *KitRepo) selectLines(ctx context.Context, kitIDs []id.ID) ([]kit.Line, error) {
	q := r.Builder().
		Select("id", "kit_id", "product_id", "quantity", "position").
		From(kitLineTable).
		Where(squirrel.Eq{"kit_id": kitIDs}).
		OrderBy("kit_id", "position ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lines query: %w", err)
	}

	var lines []kit.Line
	if err := pgxscan.Select(ctx, r.Querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("select kit lines: %w", err)
	}
	return lines, nil
}

// resolveProducts attaches product references to lines in one query.
// Lines whose product vanished keep a nil reference.
func (r *KitRepo) resolveProducts(ctx context.Context, lines []kit.Line) error {
	if len(lines) == 0 {
		return nil
	}

	seen := make(map[id.ID]bool, len(lines))
	productIDs := make([]id.ID, 0, len(lines))
	for _, line := range lines {
		if !seen[line.ProductID] {
			seen[line.ProductID] = true
			productIDs = append(productIDs, line.ProductID)
		}
	}

	resolved, err := r.products.GetByIDs(ctx, productIDs)
	if err != nil {
		return err
	}

	for i := range lines {
		lines[i].Product = resolved[lines[i].ProductID]
	}
	return nil
}
