package day07

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
	assert.Equal(t, "5", part1, "splitters that split")
	assert.Equal(t, "6", part2, "timelines reaching the floor")
}

// TestCountSplit_SingleColumn: one splitter under the source splits once and
// absorbs nothing else.
func TestCountSplit_SingleColumn(t *testing.T) {
	m, err := Parse(strings.NewReader(".S.\n...\n.^.\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, m.CountSplit())
	assert.Equal(t, uint64(2), m.CountTimelines())
}

// TestCountSplit_ExhaustedSplitter: the second ray into a splitter is
// absorbed, so the splitter below it never fires.
func TestCountSplit_ExhaustedSplitter(t *testing.T) {
	// S splits at row 1; the children fall in cols 0 and 2 onto the row-2
	// splitters, whose own children re-enter col 1 below everything.
	m, err := Parse(strings.NewReader(".S.\n.^.\n^.^\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, m.CountSplit())
	// Timelines: center splits -> each side splits -> 2 fronts each.
	assert.Equal(t, uint64(4), m.CountTimelines())
}

// TestCountSplit_NoSplitters: the beam sails through.
func TestCountSplit_NoSplitters(t *testing.T) {
	m, err := Parse(strings.NewReader("S..\n...\n"))
	require.NoError(t, err)
	assert.Zero(t, m.CountSplit())
	assert.Equal(t, uint64(1), m.CountTimelines())
}

// TestParse_BadTile rejects unknown characters.
func TestParse_BadTile(t *testing.T) {
	_, err := Parse(strings.NewReader("S#\n"))
	assert.ErrorIs(t, err, ErrBadTile)
}
