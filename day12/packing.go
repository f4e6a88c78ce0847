package day12

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrBadProblem is returned when a problem line is not "WxH: count ...".
var ErrBadProblem = errors.New("day12: problem must be <width>x<height>: <count> ...")

// Problem is one packing question: a grid and how many of each piece must go
// in.
type Problem struct {
	width, height uint64
	pieceCounts   []uint64
}

// definitelyFits reports whether every required piece can claim its own 3x3
// box, which packs regardless of shape.
func (p Problem) definitelyFits() bool {
	var total uint64
	for _, c := range p.pieceCounts {
		total += c
	}

	return total <= (p.width/3)*(p.height/3)
}

// definitelyDoesNotFit reports whether the pieces' cells outnumber the
// grid's.
func (p Problem) definitelyDoesNotFit(pieceSizes []uint64) bool {
	var cells uint64
	for i, size := range pieceSizes {
		if i == len(p.pieceCounts) {
			break
		}
		cells += size * p.pieceCounts[i]
	}

	return cells > p.width*p.height
}

// FitReport tallies the classification of every problem.
type FitReport struct {
	Fit        int
	DoesNotFit int
	Unknown    int
}

// String renders the tallies in answer form.
func (r FitReport) String() string {
	return fmt.Sprintf("fit: %d, does_not_fit: %d, unknown: %d",
		r.Fit, r.DoesNotFit, r.Unknown)
}

// Inventory is the parsed input: piece sizes in appearance order, plus the
// problems.
type Inventory struct {
	pieceSizes []uint64
	problems   []Problem
}

// Parse reads the blank-line-separated input. A section drawing at least one
// '#' is a piece shape and contributes its cell count; any other section
// holds one problem per line.
func Parse(r io.Reader) (*Inventory, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("day12: read input: %w", err)
	}

	inv := &Inventory{}
	for _, part := range strings.Split(string(text), "\n\n") {
		if strings.Contains(part, "#") {
			inv.pieceSizes = append(inv.pieceSizes, uint64(strings.Count(part, "#")))
			continue
		}
		for _, line := range strings.Split(part, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			p, err := parseProblem(line)
			if err != nil {
				return nil, err
			}
			inv.problems = append(inv.problems, p)
		}
	}

	return inv, nil
}

func parseProblem(line string) (Problem, error) {
	dims, counts, ok := strings.Cut(line, ": ")
	if !ok {
		return Problem{}, fmt.Errorf("%w: %q", ErrBadProblem, line)
	}
	w, h, ok := strings.Cut(dims, "x")
	if !ok {
		return Problem{}, fmt.Errorf("%w: %q", ErrBadProblem, line)
	}

	var p Problem
	var err error
	if p.width, err = strconv.ParseUint(w, 10, 64); err != nil {
		return Problem{}, fmt.Errorf("%w: %q", ErrBadProblem, line)
	}
	if p.height, err = strconv.ParseUint(h, 10, 64); err != nil {
		return Problem{}, fmt.Errorf("%w: %q", ErrBadProblem, line)
	}
	for _, word := range strings.Fields(counts) {
		c, err := strconv.ParseUint(word, 10, 64)
		if err != nil {
			return Problem{}, fmt.Errorf("%w: %q", ErrBadProblem, line)
		}
		p.pieceCounts = append(p.pieceCounts, c)
	}

	return p, nil
}

// Classify buckets every problem into fit, does-not-fit or unknown.
func (inv *Inventory) Classify() FitReport {
	var r FitReport
	for _, p := range inv.problems {
		switch {
		case p.definitelyFits():
			r.Fit++
		case p.definitelyDoesNotFit(inv.pieceSizes):
			r.DoesNotFit++
		default:
			r.Unknown++
		}
	}

	return r
}

// Solve parses the inventory and returns both answers as strings. There is
// no second question on the last day.
func Solve(r io.Reader) (part1, part2 string, err error) {
	inv, err := Parse(r)
	if err != nil {
		return "", "", err
	}

	return inv.Classify().String(), "0", nil
}
