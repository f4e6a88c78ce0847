package day02

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrBadRange is returned when a range token is not "<lo>-<hi>".
var ErrBadRange = errors.New("day02: range must be <lo>-<hi>")

// IDRange is an inclusive range of product IDs.
type IDRange struct {
	Begin uint64
	End   uint64
}

// ParseRanges reads comma-separated "<lo>-<hi>" tokens; newlines around
// tokens are ignored.
func ParseRanges(r io.Reader) ([]IDRange, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("day02: read input: %w", err)
	}

	var ranges []IDRange
	for _, token := range strings.Split(string(raw), ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		lo, hi, ok := strings.Cut(token, "-")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadRange, token)
		}
		begin, err := strconv.ParseUint(lo, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("day02: bad range begin %q: %w", token, err)
		}
		end, err := strconv.ParseUint(hi, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("day02: bad range end %q: %w", token, err)
		}
		ranges = append(ranges, IDRange{Begin: begin, End: end})
	}

	return ranges, nil
}

// SumDoubled sums, over all ranges, the IDs that are a digit block written
// exactly twice. Overlapping ranges contribute their IDs once per range.
func SumDoubled(ranges []IDRange) uint64 {
	var sum uint64
	for _, rg := range ranges {
		for _, id := range doubledIn(rg.Begin, rg.End) {
			sum += id
		}
	}

	return sum
}

// SumRepeated sums the distinct IDs, over all ranges, that are a digit block
// written two or more times.
func SumRepeated(ranges []IDRange) uint64 {
	seen := make(map[uint64]struct{})
	for _, rg := range ranges {
		for id := range repeatedIn(rg.Begin, rg.End) {
			seen[id] = struct{}{}
		}
	}

	var sum uint64
	for id := range seen {
		sum += id
	}

	return sum
}

// doubledIn enumerates the IDs in [begin, end] of the form prefix·10^k+prefix
// where prefix has k digits, in ascending order.
//
// Only prefix lengths between half the digit counts of begin and end can
// produce an ID inside the range, so the search space stays tiny.
func doubledIn(begin, end uint64) []uint64 {
	minLen := max(1, digitCount(begin)/2)
	maxLen := max(1, digitCount(end)/2)

	var ids []uint64
	for length := minLen; length <= maxLen; length++ {
		shift := pow10(length)
		for prefix := pow10(length - 1); prefix < shift; prefix++ {
			id := prefix*shift + prefix
			if id < begin {
				continue
			}
			if id > end {
				break
			}
			ids = append(ids, id)
		}
	}

	return ids
}

// repeatedIn enumerates the IDs in [begin, end] that are some prefix repeated
// at least twice. The result is a set: 111111 is both 1×6 and 111×2.
func repeatedIn(begin, end uint64) map[uint64]struct{} {
	beginDigits := digitCount(begin)
	maxLen := max(1, digitCount(end)/2)

	ids := make(map[uint64]struct{})
	for length := uint(1); length <= maxLen; length++ {
		beginRepeat := max(2, beginDigits/length)
		endRepeat := digitCount(end) / length
		limit := pow10(length)

		for count := beginRepeat; count <= endRepeat; count++ {
			for prefix := pow10(length - 1); prefix < limit; prefix++ {
				id := repeat(prefix, count)
				if id < begin {
					continue
				}
				if id > end {
					break
				}
				ids[id] = struct{}{}
			}
		}
	}

	return ids
}

// repeat writes prefix back-to-back count times: repeat(13, 2) == 1313.
func repeat(prefix uint64, count uint) uint64 {
	length := digitCount(prefix)
	var id uint64
	for i := uint(0); i < count; i++ {
		id += prefix * pow10(i*length)
	}

	return id
}

// digitCount returns the number of decimal digits of n (1 for 0).
func digitCount(n uint64) uint {
	count := uint(1)
	for n >= 10 {
		n /= 10
		count++
	}

	return count
}

// pow10 returns 10^exp.
func pow10(exp uint) uint64 {
	p := uint64(1)
	for i := uint(0); i < exp; i++ {
		p *= 10
	}

	return p
}

// Solve parses the ranges and returns both answers as strings.
func Solve(r io.Reader) (part1, part2 string, err error) {
	ranges, err := ParseRanges(r)
	if err != nil {
		return "", "", err
	}

	return strconv.FormatUint(SumDoubled(ranges), 10),
		strconv.FormatUint(SumRepeated(ranges), 10), nil
}
