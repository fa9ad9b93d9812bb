package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func TestProduct_Validate(t *testing.T) {
	ctx := context.Background()

	p := New("PAN-400", "Panneau solaire 400W")
	require.NoError(t, p.Validate(ctx))

	t.Run("name required", func(t *testing.T) {
		bad := New("X", "")
		require.Error(t, bad.Validate(ctx))
	})

	t.Run("negative stock", func(t *testing.T) {
		bad := New("X", "x")
		bad.StockQuantity = -1
		require.Error(t, bad.Validate(ctx))
	})

	t.Run("negative surface", func(t *testing.T) {
		bad := New("X", "x")
		bad.SurfaceM2 = fptr(-0.5)
		require.Error(t, bad.Validate(ctx))
	})

	t.Run("negative price", func(t *testing.T) {
		bad := New("X", "x")
		bad.PurchaseSellPrice = fptr(-10)
		require.Error(t, bad.Validate(ctx))
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		free := New("X", "x")
		free.PurchaseSellPrice = fptr(0)
		require.NoError(t, free.Validate(ctx))
	})
}

func TestMode_Valid(t *testing.T) {
	assert.True(t, ModePurchase.Valid())
	assert.True(t, ModeRental.Valid())
	assert.False(t, Mode("leasing").Valid())
}

func TestPeriod_Valid(t *testing.T) {
	assert.True(t, Period1Year.Valid())
	assert.True(t, Period2Years.Valid())
	assert.True(t, Period3Years.Valid())
	assert.False(t, Period("5ans").Valid())
}
