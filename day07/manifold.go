package day07

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// ErrBadTile is returned when the grid holds anything but 'S', '^' or '.'.
var ErrBadTile = errors.New("day07: tiles must be 'S', '^' or '.'")

// Manifold is the splitter field: per column, the sorted rows that hold a
// splitter, plus the column the beam enters at.
type Manifold struct {
	sourceCol int
	splitters [][]int // splitters[col] = ascending splitter rows
}

// ray is a falling beam front at (row, col).
type ray struct {
	row int
	col int
}

// Parse reads the grid. The source S must sit on the first line.
func Parse(r io.Reader) (*Manifold, error) {
	m := &Manifold{}
	sc := bufio.NewScanner(r)
	for row := 0; sc.Scan(); row++ {
		line := sc.Text()
		for col := 0; col < len(line); col++ {
			if row == 0 {
				m.splitters = append(m.splitters, nil)
			}
			switch line[col] {
			case 'S':
				m.sourceCol = col
			case '^':
				m.splitters[col] = append(m.splitters[col], row)
			case '.':
			default:
				return nil, fmt.Errorf("%w: %q", ErrBadTile, line[col])
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("day07: read input: %w", err)
	}

	return m, nil
}

// nextSplitter returns the first splitter row at or below row in col, or
// false when the ray leaves the grid.
func (m *Manifold) nextSplitter(row, col int) (int, bool) {
	if col < 0 || col >= len(m.splitters) {
		return 0, false
	}
	rows := m.splitters[col]
	i := sort.SearchInts(rows, row)
	if i == len(rows) {
		return 0, false
	}

	return rows[i], true
}

// CountSplit fires the beam and returns how many splitters split.
//
// Rays are kept on a stack. A ray falls to the first splitter at or below it;
// if that splitter has not split yet it does so now, spawning rays in the two
// adjacent columns at the splitter's row. A ray reaching an exhausted
// splitter is absorbed.
func (m *Manifold) CountSplit() int {
	split := make(map[ray]bool)
	stack := []ray{{row: 0, col: m.sourceCol}}
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		row, ok := m.nextSplitter(r.row, r.col)
		if !ok {
			continue
		}
		hit := ray{row: row, col: r.col}
		if split[hit] {
			continue
		}
		split[hit] = true
		stack = append(stack,
			ray{row: row, col: r.col - 1},
			ray{row: row, col: r.col + 1},
		)
	}

	return len(split)
}

// CountTimelines returns the number of distinct paths the tachyon can take to
// the bottom when every splitter splits it, counted with memoization.
//
// Complexity: O(splitters) states, O(log splitters) per lookup.
func (m *Manifold) CountTimelines() uint64 {
	memo := make(map[ray]uint64)

	return m.timelines(ray{row: 0, col: m.sourceCol}, memo)
}

// timelines counts paths from a falling front; a front that exits the grid is
// one settled timeline.
func (m *Manifold) timelines(r ray, memo map[ray]uint64) uint64 {
	row, ok := m.nextSplitter(r.row, r.col)
	if !ok {
		return 1
	}
	at := ray{row: row, col: r.col}
	if n, ok := memo[at]; ok {
		return n
	}

	n := m.timelines(ray{row: row, col: r.col - 1}, memo) +
		m.timelines(ray{row: row, col: r.col + 1}, memo)
	memo[at] = n

	return n
}

// Solve parses the manifold and returns both answers as strings.
func Solve(r io.Reader) (part1, part2 string, err error) {
	m, err := Parse(r)
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(m.CountSplit()),
		strconv.FormatUint(m.CountTimelines(), 10), nil
}
