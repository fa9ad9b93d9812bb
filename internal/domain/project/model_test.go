package project

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solkit/internal/core/id"
)

func TestProject_Validate(t *testing.T) {
	ctx := context.Background()

	p := New("Maison Dupont", "Famille Dupont")
	p.Lines = []Line{NewLine(p.ID, id.New(), 1)}
	require.NoError(t, p.Validate(ctx))

	t.Run("name required", func(t *testing.T) {
		bad := New("", "client")
		require.Error(t, bad.Validate(ctx))
	})

	t.Run("invalid status", func(t *testing.T) {
		bad := New("x", "client")
		bad.Status = Status("BROUILLON")
		require.Error(t, bad.Validate(ctx))
	})

	t.Run("zero quantity line", func(t *testing.T) {
		bad := New("x", "client")
		bad.Lines = []Line{NewLine(bad.ID, id.New(), 0)}
		require.Error(t, bad.Validate(ctx))
	})

	t.Run("negative manual surface", func(t *testing.T) {
		bad := New("x", "client")
		neg := -3.0
		bad.SurfaceManual = &neg
		require.Error(t, bad.Validate(ctx))
	})
}

func TestStatus_Valid(t *testing.T) {
	for _, s := range []Status{StatusActive, StatusDone, StatusPaused, StatusArchived} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Status("SUPPRIME").Valid())
}
