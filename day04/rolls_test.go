package day04

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolve_Sample runs the full pipeline on the sample input.
func TestSolve_Sample(t *testing.T) {
	f, err := os.Open("testdata/sample.txt")
	require.NoError(t, err)
	defer f.Close()

	part1, part2, err := Solve(f)
	require.NoError(t, err)
	assert.Equal(t, "2", part1, "accessible rolls in the starting grid")
	assert.Equal(t, "12", part2, "rolls removed until fixpoint")
}

// TestParseGrid rejects stray characters.
func TestParseGrid(t *testing.T) {
	_, err := ParseGrid(strings.NewReader(".@x\n"))
	assert.ErrorIs(t, err, ErrBadCell)
}

// TestRollNeighbors checks edge and interior counts on a 3×3 block.
func TestRollNeighbors(t *testing.T) {
	g, err := ParseGrid(strings.NewReader("@@@\n@@@\n@@@\n"))
	require.NoError(t, err)

	if got := g.rollNeighbors(1, 1); got != 8 {
		t.Errorf("center neighbors = %d; want 8", got)
	}
	if got := g.rollNeighbors(0, 0); got != 3 {
		t.Errorf("corner neighbors = %d; want 3", got)
	}
	if got := g.rollNeighbors(0, 1); got != 5 {
		t.Errorf("edge neighbors = %d; want 5", got)
	}
}

// TestCountRemovable_Everything: any finite heap is eventually carted away.
func TestCountRemovable_Everything(t *testing.T) {
	g, err := ParseGrid(strings.NewReader("@@@\n@@@\n@@@\n"))
	require.NoError(t, err)
	assert.Equal(t, 9, CountRemovable(g))
}

// TestRemove_Immutable: removing must not mutate the source grid.
func TestRemove_Immutable(t *testing.T) {
	g, err := ParseGrid(strings.NewReader("@@\n"))
	require.NoError(t, err)
	_ = g.remove([][2]int{{0, 0}})
	assert.Equal(t, Roll, g[0][0], "source grid changed by remove")
}

// TestSolve_Empty keeps the degenerate input defined.
func TestSolve_Empty(t *testing.T) {
	part1, part2, err := Solve(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "0", part1)
	assert.Equal(t, "0", part2)
}
