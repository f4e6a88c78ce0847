package day04

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// accessibleMax is the largest neighbor count that still leaves a roll
// reachable by a forklift.
const accessibleMax = 3

// ErrBadCell is returned when a grid line holds anything but '@' or '.'.
var ErrBadCell = errors.New("day04: grid cells must be '@' or '.'")

// Cell is one grid square.
type Cell byte

// Cell states.
const (
	Empty Cell = iota
	Roll
)

// Grid is a rectangular warehouse floor, rows first.
type Grid [][]Cell

// neighborOffsets are the 8 surrounding squares.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// ParseGrid reads a '@'/'.' grid, one row per line.
func ParseGrid(r io.Reader) (Grid, error) {
	var g Grid
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		row := make([]Cell, len(line))
		for i := 0; i < len(line); i++ {
			switch line[i] {
			case '@':
				row[i] = Roll
			case '.':
				row[i] = Empty
			default:
				return nil, fmt.Errorf("%w: %q", ErrBadCell, line[i])
			}
		}
		g = append(g, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("day04: read input: %w", err)
	}

	return g, nil
}

// at reports the cell at (row, col); squares outside the grid read as Empty.
func (g Grid) at(row, col int) Cell {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[0]) {
		return Empty
	}

	return g[row][col]
}

// rollNeighbors counts occupied squares around (row, col).
func (g Grid) rollNeighbors(row, col int) int {
	count := 0
	for _, off := range neighborOffsets {
		if g.at(row+off[0], col+off[1]) == Roll {
			count++
		}
	}

	return count
}

// accessible lists the coordinates of rolls with at most accessibleMax
// occupied neighbors, in row-major order.
func (g Grid) accessible() [][2]int {
	var pos [][2]int
	for row := range g {
		for col := range g[row] {
			if g[row][col] == Roll && g.rollNeighbors(row, col) <= accessibleMax {
				pos = append(pos, [2]int{row, col})
			}
		}
	}

	return pos
}

// remove clears the given squares and returns a fresh grid; the receiver is
// left untouched.
func (g Grid) remove(pos [][2]int) Grid {
	next := make(Grid, len(g))
	for row := range g {
		next[row] = append([]Cell(nil), g[row]...)
	}
	for _, p := range pos {
		next[p[0]][p[1]] = Empty
	}

	return next
}

// CountAccessible returns the number of rolls a forklift can reach right now.
func CountAccessible(g Grid) int {
	return len(g.accessible())
}

// CountRemovable removes accessible rolls round after round until the grid
// settles, returning the total number removed.
//
// Complexity: O(rounds · rows · cols); each round rescans the whole floor,
// exactly like a cellular automaton step.
func CountRemovable(g Grid) int {
	total := 0
	for {
		pos := g.accessible()
		if len(pos) == 0 {
			break
		}
		total += len(pos)
		g = g.remove(pos)
	}

	return total
}

// Solve parses the grid and returns both answers as strings.
func Solve(r io.Reader) (part1, part2 string, err error) {
	g, err := ParseGrid(r)
	if err != nil {
		return "", "", err
	}
	if len(g) == 0 {
		return "0", "0", nil
	}

	return strconv.Itoa(CountAccessible(g)), strconv.Itoa(CountRemovable(g)), nil
}
