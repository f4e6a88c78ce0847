package solve

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLookup finds registered days and rejects the rest.
func TestLookup(t *testing.T) {
	d, err := Lookup(7)
	require.NoError(t, err)
	assert.Equal(t, 7, d.Number)
	assert.Equal(t, "Tachyon Manifold", d.Title)

	_, err = Lookup(13)
	assert.ErrorIs(t, err, ErrUnknownDay)
	_, err = Lookup(0)
	assert.ErrorIs(t, err, ErrUnknownDay)
}

// TestAll returns the twelve days in order.
func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, 12)
	for i, d := range all {
		assert.Equal(t, i+1, d.Number)
		assert.NotEmpty(t, d.Title)
		assert.NotNil(t, d.Run)
	}
}

// TestDaySolve runs a day end to end through the registry.
func TestDaySolve(t *testing.T) {
	d, err := Lookup(11)
	require.NoError(t, err)

	got, err := d.Solve(strings.NewReader("you: out\nsvr: out\n"))
	require.NoError(t, err)
	assert.Equal(t, Answers{Part1: "1", Part2: "0"}, got)
}

// TestDaySolve_Error wraps the day's parse error with its number.
func TestDaySolve_Error(t *testing.T) {
	d, err := Lookup(4)
	require.NoError(t, err)

	_, err = d.Solve(strings.NewReader("@#.\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "day 4")
}
