package bpio

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kdriggs/binpack2d/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBP2DValid(t *testing.T) {
	input := `BIN_WIDTH: 100
BIN_HEIGHT: 200
ITEMS
0 30 40
1 50 60
`
	problem, err := ParseBP2D(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, int32(100), problem.BinWidth)
	assert.Equal(t, int32(200), problem.BinHeight)
	require.Len(t, problem.Items, 2)
	assert.Equal(t, model.NewItem(0, 30, 40), problem.Items[0])
	assert.Equal(t, model.NewItem(1, 50, 60), problem.Items[1])
}

func TestParseBP2DMissingHeader(t *testing.T) {
	input := "BIN_WIDTH: 100\nITEMS\n0 10 10\n"
	_, err := ParseBP2D(strings.NewReader(input))
	assert.Error(t, err)
}

func TestParseBP2DBadFieldCount(t *testing.T) {
	input := "BIN_WIDTH: 100\nBIN_HEIGHT: 100\nITEMS\n0 10\n"
	_, err := ParseBP2D(strings.NewReader(input))
	assert.ErrorContains(t, err, "line 4")
}

func TestParseBP2DNonIntegerField(t *testing.T) {
	input := "BIN_WIDTH: 100\nBIN_HEIGHT: 100\nITEMS\n0 ten 10\n"
	_, err := ParseBP2D(strings.NewReader(input))
	assert.ErrorContains(t, err, "line 4")
}

func TestParseBP2DNonPositiveDimension(t *testing.T) {
	input := "BIN_WIDTH: 100\nBIN_HEIGHT: 100\nITEMS\n0 0 10\n"
	_, err := ParseBP2D(strings.NewReader(input))
	assert.Error(t, err)
}

func TestBP2DRoundTrip(t *testing.T) {
	problem := Problem{
		BinWidth:  120,
		BinHeight: 80,
		Items: []model.Item{
			model.NewItem(0, 10, 20),
			model.NewItem(1, 30, 40),
			model.NewItem(2, 5, 5),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteBP2D(&buf, problem))

	roundTripped, err := ParseBP2D(&buf)
	require.NoError(t, err)
	assert.Equal(t, problem, roundTripped)
}

func TestSolutionWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solution.json")

	sol := model.Solution{
		{
			ID: 0, Width: 100, Height: 100,
			Items: []model.PlacedItem{
				{ID: 0, Width: 50, Height: 100, CornerX: 0, CornerY: 0},
				{ID: 1, Width: 50, Height: 100, Rotated: true, CornerX: 50, CornerY: 0},
			},
		},
	}

	require.NoError(t, WriteSolution(path, sol))
	loaded, err := ReadSolution(path)
	require.NoError(t, err)
	assert.Equal(t, sol, loaded)
}

func TestReadSolutionMissingFile(t *testing.T) {
	_, err := ReadSolution("/nonexistent/path/solution.json")
	assert.Error(t, err)
}
