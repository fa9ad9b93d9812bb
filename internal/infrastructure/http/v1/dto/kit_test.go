package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solkit/internal/core/id"
	"solkit/internal/domain/catalog/kit"
)

func TestCreateKitRequest_ToEntity(t *testing.T) {
	p1 := id.New()
	p2 := id.New()

	req := CreateKitRequest{
		Name:  "Kit résidentiel",
		Style: kit.StyleResidential,
		Lines: []KitLineRequest{
			{ProductID: p1.String(), Quantity: 8},
			{ProductID: p2.String(), Quantity: 1},
		},
	}

	k, err := req.ToEntity()
	require.NoError(t, err)

	require.Len(t, k.Lines, 2)
	// Request order defines positions.
	assert.Equal(t, 0, k.Lines[0].Position)
	assert.Equal(t, 1, k.Lines[1].Position)
	assert.Equal(t, p1, k.Lines[0].ProductID)
	assert.Equal(t, k.ID, k.Lines[0].KitID)
	assert.Equal(t, 8, k.Lines[0].Quantity)
}

func TestCreateKitRequest_InvalidProductID(t *testing.T) {
	req := CreateKitRequest{
		Name:  "Kit",
		Style: kit.StyleCommercial,
		Lines: []KitLineRequest{{ProductID: "not-a-uuid", Quantity: 1}},
	}

	_, err := req.ToEntity()
	require.Error(t, err)
}

func TestUpdateKitRequest_ApplyTo(t *testing.T) {
	existing := kit.New("KIT-1", "Ancien nom", kit.StyleResidential)
	existing.Version = 3

	req := UpdateKitRequest{
		Code:    "KIT-1",
		Name:    "Nouveau nom",
		Style:   kit.StyleCommercial,
		Version: 3,
		Lines:   []KitLineRequest{{ProductID: id.New().String(), Quantity: 2}},
	}

	require.NoError(t, req.ApplyTo(existing))
	assert.Equal(t, "Nouveau nom", existing.Name)
	assert.Equal(t, kit.StyleCommercial, existing.Style)
	require.Len(t, existing.Lines, 1)
	assert.Equal(t, existing.ID, existing.Lines[0].KitID)
}
