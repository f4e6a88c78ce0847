package day05

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
	assert.Equal(t, "3", part1, "fresh IDs")
	assert.Equal(t, "14", part2, "covered IDs")
}

// TestTree_DisjointInserts keeps separate spans separate.
func TestTree_DisjointInserts(t *testing.T) {
	tree := &Tree{}
	tree.Insert(Span{10, 14})
	tree.Insert(Span{3, 5})
	tree.Insert(Span{16, 20})

	assert.Equal(t, uint64(5+3+5), tree.Size())
	assert.True(t, tree.Contains(3))
	assert.True(t, tree.Contains(14))
	assert.False(t, tree.Contains(15), "gap between spans")
	assert.False(t, tree.Contains(2))
	assert.False(t, tree.Contains(21))
}

// TestTree_FuseAcrossSiblings: one wide insert must swallow both neighbors.
func TestTree_FuseAcrossSiblings(t *testing.T) {
	tree := &Tree{}
	tree.Insert(Span{10, 14})
	tree.Insert(Span{3, 5})
	tree.Insert(Span{16, 20})
	// bridges 10-14 and 16-20 through the root
	tree.Insert(Span{12, 18})

	assert.Equal(t, uint64(3+11), tree.Size(), "10-20 fused into one span")
	assert.True(t, tree.Contains(15), "former gap now covered")
}

// TestTree_AdjacentSpansStaySeparate: touching is not overlapping.
func TestTree_AdjacentSpansStaySeparate(t *testing.T) {
	tree := &Tree{}
	tree.Insert(Span{1, 2})
	tree.Insert(Span{3, 4})

	assert.Equal(t, uint64(4), tree.Size())
	assert.False(t, tree.Contains(0))
	assert.True(t, tree.Contains(3))
}

// TestTree_Empty covers the zero value.
func TestTree_Empty(t *testing.T) {
	tree := &Tree{}
	assert.Zero(t, tree.Size())
	assert.False(t, tree.Contains(1))
}

// TestParse_Errors rejects malformed inputs.
func TestParse_Errors(t *testing.T) {
	_, _, err := Parse(strings.NewReader("3-5\n1\n"))
	assert.ErrorIs(t, err, ErrMissingSections)

	_, _, err = Parse(strings.NewReader("3:5\n\n1\n"))
	assert.ErrorIs(t, err, ErrBadSpan)

	_, _, err = Parse(strings.NewReader("3-5\n\nxyz\n"))
	assert.Error(t, err)
}
