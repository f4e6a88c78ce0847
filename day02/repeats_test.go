package day02

import (
	"os"
	"strconv"
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
	assert.Equal(t, "132", part1, "sum of doubled IDs")
	assert.Equal(t, "243", part2, "sum of distinct repeated IDs")
}

// TestParseRanges accepts tokens split across lines and rejects junk.
func TestParseRanges(t *testing.T) {
	ranges, err := ParseRanges(strings.NewReader("11-22,95-115,\n998-1012"))
	require.NoError(t, err)
	assert.Equal(t, []IDRange{{11, 22}, {95, 115}, {998, 1012}}, ranges)

	_, err = ParseRanges(strings.NewReader("12:34"))
	assert.ErrorIs(t, err, ErrBadRange)
}

// TestDoubledIn pins the enumeration on a handful of hand-checked ranges.
func TestDoubledIn(t *testing.T) {
	assert.Equal(t, []uint64{11, 22}, doubledIn(11, 22))
	assert.Equal(t, []uint64{99}, doubledIn(95, 115))
	assert.Equal(t, []uint64{222222}, doubledIn(222220, 222224))
	assert.Empty(t, doubledIn(1698522, 1698528))
}

// TestRepeat spells out the block concatenation.
func TestRepeat(t *testing.T) {
	assert.Equal(t, uint64(111), repeat(1, 3))
	assert.Equal(t, uint64(1313), repeat(13, 2))
	assert.Equal(t, uint64(197019701970), repeat(1970, 3))
}

// TestRepeatedIn_Low covers the smallest repeated ID.
func TestRepeatedIn_Low(t *testing.T) {
	ids := repeatedIn(1, 14)
	assert.Equal(t, map[uint64]struct{}{11: {}}, ids)
}

// isRepeat reports whether the decimal string of an ID is a block repeated
// at least twice; used to validate the enumeration below.
func isRepeat(s string) bool {
	for size := 1; size < len(s); size++ {
		if len(s)%size != 0 {
			continue
		}
		ok := true
		for i := size; i < len(s); i += size {
			if s[i:i+size] != s[:size] {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

func TestIsRepeat(t *testing.T) {
	assert.True(t, isRepeat("111"))
	assert.True(t, isRepeat("1313"))
	assert.True(t, isRepeat("197019701970"))
	assert.False(t, isRepeat("197019701971"))
}

// TestRepeatedIn_Exhaustive verifies, for ranges sampled inside [1,1000],
// that each enumerated ID lies in range and really is a repetition.
func TestRepeatedIn_Exhaustive(t *testing.T) {
	for begin := uint64(1); begin <= 1000; begin += 37 {
		for end := begin; end <= 1000; end += 59 {
			for id := range repeatedIn(begin, end) {
				if id < begin || id > end {
					t.Fatalf("repeatedIn(%d,%d): %d out of range", begin, end, id)
				}
				if !isRepeat(strconv.FormatUint(id, 10)) {
					t.Fatalf("repeatedIn(%d,%d): %d is not a repetition", begin, end, id)
				}
			}
		}
	}
}
