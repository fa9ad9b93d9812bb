package catalog_repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solkit/internal/domain/filter"
)

func newTestRepo() *BaseCatalogRepo[any] {
	return NewBaseCatalogRepo[any](nil, "test_table", []string{"id", "name", "stock_quantity"}, func() any { return nil })
}

func TestApplyAdvancedFilters_Operators(t *testing.T) {
	repo := newTestRepo()

	tests := []struct {
		name     string
		item     filter.Item
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "Greater",
			item:     filter.Item{Field: "stock_quantity", Operator: filter.Greater, Value: 10},
			wantSQL:  "SELECT id, name, stock_quantity FROM test_table WHERE stock_quantity > $1",
			wantArgs: []any{10},
		},
		{
			name:     "Less",
			item:     filter.Item{Field: "stock_quantity", Operator: filter.Less, Value: 5},
			wantSQL:  "SELECT id, name, stock_quantity FROM test_table WHERE stock_quantity < $1",
			wantArgs: []any{5},
		},
		{
			name:     "Like",
			item:     filter.Item{Field: "name", Operator: filter.Like, Value: "panneau"},
			wantSQL:  "SELECT id, name, stock_quantity FROM test_table WHERE name ILIKE $1",
			wantArgs: []any{"%panneau%"},
		},
		{
			name:    "IsNull",
			item:    filter.Item{Field: "name", Operator: filter.IsNull},
			wantSQL: "SELECT id, name, stock_quantity FROM test_table WHERE name IS NULL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := repo.ApplyAdvancedFilters(repo.baseSelect(), []filter.Item{tt.item})
			require.NoError(t, err)

			sql, args, err := q.ToSql()
			require.NoError(t, err)

			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestApplyAdvancedFilters_RejectsUnknownColumn(t *testing.T) {
	repo := newTestRepo()

	_, err := repo.ApplyAdvancedFilters(repo.baseSelect(), []filter.Item{
		{Field: "password_hash", Operator: filter.Equal, Value: "x"},
	})
	require.Error(t, err)
}

func TestApplyAdvancedFilters_RejectsUnknownOperator(t *testing.T) {
	repo := newTestRepo()

	_, err := repo.ApplyAdvancedFilters(repo.baseSelect(), []filter.Item{
		{Field: "name", Operator: filter.Operator("between"), Value: 1},
	})
	require.Error(t, err)
}

func TestParseOrderBy(t *testing.T) {
	repo := newTestRepo()

	tests := []struct {
		orderBy string
		want    string
		wantErr bool
	}{
		{orderBy: "", want: "name ASC"},
		{orderBy: "name", want: "name ASC"},
		{orderBy: "-name", want: "name DESC"},
		{orderBy: "+stock_quantity", want: "stock_quantity ASC"},
		{orderBy: "-created_at", want: "created_at DESC"},
		{orderBy: "name; DROP TABLE users", wantErr: true},
		{orderBy: "unknown_col", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.orderBy, func(t *testing.T) {
			got, err := repo.ParseOrderBy(tt.orderBy)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
