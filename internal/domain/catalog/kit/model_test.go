package kit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"solkit/internal/core/id"
)

func TestKit_Validate(t *testing.T) {
	ctx := context.Background()

	k := New("KIT-RES-8", "Kit résidentiel", StyleResidential)
	productID := id.New()
	k.Lines = []Line{NewLine(k.ID, productID, 8)}
	require.NoError(t, k.Validate(ctx))

	t.Run("invalid style", func(t *testing.T) {
		bad := New("X", "x", Style("agricole"))
		require.Error(t, bad.Validate(ctx))
	})

	t.Run("zero quantity line", func(t *testing.T) {
		bad := New("X", "x", StyleCommercial)
		bad.Lines = []Line{NewLine(bad.ID, id.New(), 0)}
		require.Error(t, bad.Validate(ctx))
	})

	t.Run("duplicate product", func(t *testing.T) {
		bad := New("X", "x", StyleIndustrial)
		dup := id.New()
		bad.Lines = []Line{
			NewLine(bad.ID, dup, 1),
			NewLine(bad.ID, dup, 2),
		}
		require.Error(t, bad.Validate(ctx))
	})
}
