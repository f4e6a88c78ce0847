package day05

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Sentinel errors for input parsing.
var (
	// ErrMissingSections is returned when the blank-line separator between
	// ranges and IDs is absent.
	ErrMissingSections = errors.New("day05: input needs ranges, a blank line, then IDs")

	// ErrBadSpan is returned when a range line is not "<lo>-<hi>".
	ErrBadSpan = errors.New("day05: range must be <lo>-<hi>")
)

// Parse reads the two input sections: one "<lo>-<hi>" range per line, a blank
// line, then one ID per line. Ranges go straight into the fusion tree.
func Parse(r io.Reader) (*Tree, []uint64, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("day05: read input: %w", err)
	}
	head, tail, ok := strings.Cut(string(raw), "\n\n")
	if !ok {
		return nil, nil, ErrMissingSections
	}

	tree := &Tree{}
	for _, line := range strings.Split(head, "\n") {
		if line == "" {
			continue
		}
		span, err := parseSpan(line)
		if err != nil {
			return nil, nil, err
		}
		tree.Insert(span)
	}

	var ids []uint64
	for _, line := range strings.Split(tail, "\n") {
		if line == "" {
			continue
		}
		id, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("day05: bad ID %q: %w", line, err)
		}
		ids = append(ids, id)
	}

	return tree, ids, nil
}

// parseSpan converts one "<lo>-<hi>" line.
func parseSpan(line string) (Span, error) {
	lo, hi, ok := strings.Cut(line, "-")
	if !ok {
		return Span{}, fmt.Errorf("%w: %q", ErrBadSpan, line)
	}
	begin, err := strconv.ParseUint(lo, 10, 64)
	if err != nil {
		return Span{}, fmt.Errorf("day05: bad range %q: %w", line, err)
	}
	end, err := strconv.ParseUint(hi, 10, 64)
	if err != nil {
		return Span{}, fmt.Errorf("day05: bad range %q: %w", line, err)
	}

	return Span{Lo: begin, Hi: end}, nil
}

// CountFresh returns how many of the listed IDs fall inside the tree.
func CountFresh(tree *Tree, ids []uint64) int {
	count := 0
	for _, id := range ids {
		if tree.Contains(id) {
			count++
		}
	}

	return count
}

// Solve parses the input and returns both answers as strings.
func Solve(r io.Reader) (part1, part2 string, err error) {
	tree, ids, err := Parse(r)
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(CountFresh(tree, ids)),
		strconv.FormatUint(tree.Size(), 10), nil
}
