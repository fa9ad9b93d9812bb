package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	oldState := map[string]any{
		"name":           "Panneau 400W",
		"stock_quantity": 120,
		"code":           "PAN-400",
	}
	newState := map[string]any{
		"name":           "Panneau 410W",
		"stock_quantity": 120,
		"image_url":      "https://cdn.example/pan.png",
	}

	changes := Diff(oldState, newState)

	assert.Contains(t, changes, "name")
	assert.Equal(t, map[string]any{"old": "Panneau 400W", "new": "Panneau 410W"}, changes["name"])

	// Unchanged fields are not part of the diff.
	assert.NotContains(t, changes, "stock_quantity")

	// Added field.
	assert.Equal(t, map[string]any{"old": nil, "new": "https://cdn.example/pan.png"}, changes["image_url"])

	// Removed field.
	assert.Equal(t, map[string]any{"old": "PAN-400", "new": nil}, changes["code"])
}

func TestDiff_NoChanges(t *testing.T) {
	state := map[string]any{"name": "x", "version": 3}
	assert.Empty(t, Diff(state, map[string]any{"name": "x", "version": 3}))
}
