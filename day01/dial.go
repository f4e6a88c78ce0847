package day01

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// dial constants: the lock face has 100 positions and every run starts at 50.
const (
	dialSize = 100
	dialHome = 50
)

// ErrBadRotation is returned when an input line does not start with L or R.
var ErrBadRotation = errors.New("day01: rotation must start with L or R")

// ParseRotations reads one rotation per line: "L<n>" turns left (negative),
// "R<n>" turns right (positive).
func ParseRotations(r io.Reader) ([]int, error) {
	var turns []int
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		n, err := parseRotation(line)
		if err != nil {
			return nil, err
		}
		turns = append(turns, n)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("day01: read input: %w", err)
	}

	return turns, nil
}

// parseRotation converts a single "L<n>"/"R<n>" token into a signed turn.
func parseRotation(line string) (int, error) {
	if len(line) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrBadRotation, line)
	}
	n, err := strconv.Atoi(line[1:])
	if err != nil {
		return 0, fmt.Errorf("day01: bad rotation amount %q: %w", line, err)
	}
	switch line[0] {
	case 'L':
		return -n, nil
	case 'R':
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadRotation, line)
	}
}

// CountStops applies every rotation from the home position and returns how
// many rotations end with the dial pointing at 0.
func CountStops(turns []int) int {
	pos, stops := dialHome, 0
	for _, t := range turns {
		pos = floorMod(pos+t, dialSize)
		if pos == 0 {
			stops++
		}
	}

	return stops
}

// CountCrossings returns the total number of times the dial points at 0
// during the rotations, counting intermediate passes of full revolutions.
func CountCrossings(turns []int) int {
	pos, total := dialHome, 0
	for _, t := range turns {
		var crossed int
		pos, crossed = stepDial(pos, t)
		total += crossed
	}

	return total
}

// stepDial turns the dial from pos by turn and reports the new position and
// the number of times the needle pointed at 0 on the way.
//
// The crossing count is derived from the floor quotient of the raw sum:
//   - landing on 0 after a non-positive quotient counts the landing plus one
//     pass per completed backward revolution;
//   - leaving 0 backwards counts only the completed revolutions;
//   - otherwise the magnitude of the quotient is the number of passes.
func stepDial(pos, turn int) (newPos, crossed int) {
	sum := pos + turn
	quot := floorDiv(sum, dialSize)
	newPos = sum - quot*dialSize

	switch {
	case newPos == 0 && quot <= 0:
		crossed = -quot + 1
	case pos == 0 && quot < 0:
		crossed = -(quot + 1)
	case quot < 0:
		crossed = -quot
	default:
		crossed = quot
	}

	return newPos, crossed
}

// floorDiv returns the quotient of a/b rounded toward negative infinity.
// b must be positive.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}

	return q
}

// floorMod returns a modulo b with a result in [0, b). b must be positive.
func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

// Solve parses the rotations and returns both answers as strings.
func Solve(r io.Reader) (part1, part2 string, err error) {
	turns, err := ParseRotations(r)
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(CountStops(turns)), strconv.Itoa(CountCrossings(turns)), nil
}
