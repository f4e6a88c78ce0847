package day01

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
	assert.Equal(t, "4", part1, "rotations ending on 0")
	assert.Equal(t, "6", part2, "total zero passes")
}

// TestParseRotations rejects malformed lines and maps L/R to signs.
func TestParseRotations(t *testing.T) {
	turns, err := ParseRotations(strings.NewReader("L10\nR3\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{-10, 3}, turns)

	_, err = ParseRotations(strings.NewReader("X10\n"))
	assert.ErrorIs(t, err, ErrBadRotation)

	_, err = ParseRotations(strings.NewReader("L\n"))
	assert.ErrorIs(t, err, ErrBadRotation)

	_, err = ParseRotations(strings.NewReader("Labc\n"))
	assert.Error(t, err)
}

// TestStepDial_Exact pins the landing-on-zero case from a full wrap.
func TestStepDial_Exact(t *testing.T) {
	newPos, crossed := stepDial(50, 150)
	assert.Equal(t, 0, newPos)
	assert.Equal(t, 2, crossed)
}

// TestStepDial_BruteForce cross-checks stepDial against a unit-step walk for
// every start position 1..99 and turns of up to three revolutions.
func TestStepDial_BruteForce(t *testing.T) {
	for pos := 1; pos < dialSize; pos++ {
		for turn := -300; turn <= 300; turn++ {
			if turn == 0 {
				continue
			}
			newPos, crossed := stepDial(pos, turn)

			step := 1
			if turn < 0 {
				step = -1
			}
			want := 0
			for i := 1; i <= abs(turn); i++ {
				if floorMod(pos+i*step, dialSize) == 0 {
					want++
				}
			}
			if crossed != want {
				t.Fatalf("stepDial(%d,%d): crossed = %d; want %d", pos, turn, crossed, want)
			}
			if got := floorMod(pos+turn, dialSize); newPos != got {
				t.Fatalf("stepDial(%d,%d): newPos = %d; want %d", pos, turn, newPos, got)
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// TestCountStops walks a tiny hand-checked sequence.
func TestCountStops(t *testing.T) {
	// 50 → 0 (stop) → 50 → 49 → 0 (stop)
	assert.Equal(t, 2, CountStops([]int{50, 50, -1, -49}))
}
