package engine

import (
	"testing"

	"github.com/kdriggs/binpack2d/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two items exactly tiling one bin should both land in a single, fully-
// packed bin.
func TestLGFISingleBinTwoHalves(t *testing.T) {
	items := []model.Item{
		model.NewItem(0, 100, 50),
		model.NewItem(1, 100, 50),
	}
	bins := LGFI(items, 100, 100, true, true)
	require.Len(t, bins, 1)
	assert.InDelta(t, 1.0, bins[0].FillRatio(), 1e-9)
	assert.Len(t, bins[0].Items, 2)
}

// An item that only fits a bin when rotated 90 degrees must be rejected by
// CheckFeasible without rotation and placed rotated by LGFI with it.
func TestLGFIRotationRequired(t *testing.T) {
	items := []model.Item{model.NewItem(0, 20, 10)}

	err := CheckFeasible(items, 10, 20, false)
	assert.Error(t, err, "item should be infeasible without rotation")

	bins := LGFI(items, 10, 20, true, true)
	require.Len(t, bins, 1)
	require.Len(t, bins[0].Items, 1)
	placed := bins[0].Items[0]
	assert.True(t, placed.Rotated)
	assert.Equal(t, int32(10), placed.Width)
	assert.Equal(t, int32(20), placed.Height)
}

// Five rectangles arranged as a pinwheel around a center piece tile the 5x5
// bin exactly, but that tiling is not guillotine-cuttable, so
// guillotine_cut=true must need at least two bins; the non-guillotine run
// must never need more bins than the guillotine one (for this item order
// both runs use two bins).
func TestLGFIGuillotineVsNonGuillotine(t *testing.T) {
	items := []model.Item{
		model.NewItem(0, 3, 2),
		model.NewItem(1, 2, 3),
		model.NewItem(2, 3, 2),
		model.NewItem(3, 2, 3),
		model.NewItem(4, 1, 1),
	}

	guillotineBins := LGFI(items, 5, 5, true, false)
	assert.GreaterOrEqual(t, len(guillotineBins), 2)

	nonGuillotineBins := LGFI(items, 5, 5, false, false)
	assert.LessOrEqual(t, len(nonGuillotineBins), len(guillotineBins))
}

func TestLGFICompletenessAndContainment(t *testing.T) {
	items := []model.Item{
		model.NewItem(0, 30, 20),
		model.NewItem(1, 50, 40),
		model.NewItem(2, 60, 30),
		model.NewItem(3, 50, 50),
		model.NewItem(4, 10, 10),
	}
	bins := LGFI(items, 100, 100, true, true)

	seen := map[int32]bool{}
	for _, b := range bins {
		for _, it := range b.Items {
			assert.False(t, seen[it.ID], "item %d placed more than once", it.ID)
			seen[it.ID] = true
			assert.GreaterOrEqual(t, it.CornerX, int32(0))
			assert.GreaterOrEqual(t, it.CornerY, int32(0))
			assert.LessOrEqual(t, it.CornerX+it.Width, b.Width)
			assert.LessOrEqual(t, it.CornerY+it.Height, b.Height)
		}
	}
	for _, it := range items {
		assert.True(t, seen[it.ID], "item %d missing from output", it.ID)
	}
}

func TestLGFINonOverlap(t *testing.T) {
	items := []model.Item{
		model.NewItem(0, 40, 40),
		model.NewItem(1, 40, 60),
		model.NewItem(2, 60, 40),
		model.NewItem(3, 60, 60),
	}
	bins := LGFI(items, 100, 100, true, true)

	for _, b := range bins {
		for i := 0; i < len(b.Items); i++ {
			for j := i + 1; j < len(b.Items); j++ {
				assert.False(t, rectsOverlap(b.Items[i], b.Items[j]), "items %d and %d overlap", b.Items[i].ID, b.Items[j].ID)
			}
		}
	}
}

func rectsOverlap(a, b model.Item) bool {
	return a.CornerX < b.CornerX+b.Width &&
		b.CornerX < a.CornerX+a.Width &&
		a.CornerY < b.CornerY+b.Height &&
		b.CornerY < a.CornerY+a.Height
}

func TestCheckFeasibleRejectsOversizedItem(t *testing.T) {
	items := []model.Item{model.NewItem(0, 200, 50)}
	err := CheckFeasible(items, 100, 100, true)
	assert.Error(t, err)
}
