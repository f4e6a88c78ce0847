package solve

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/advent2025/day01"
	"github.com/katalvlaran/advent2025/day02"
	"github.com/katalvlaran/advent2025/day03"
	"github.com/katalvlaran/advent2025/day04"
	"github.com/katalvlaran/advent2025/day05"
	"github.com/katalvlaran/advent2025/day06"
	"github.com/katalvlaran/advent2025/day07"
	"github.com/katalvlaran/advent2025/day08"
	"github.com/katalvlaran/advent2025/day09"
	"github.com/katalvlaran/advent2025/day10"
	"github.com/katalvlaran/advent2025/day11"
	"github.com/katalvlaran/advent2025/day12"
)

// Log is the shared logger; the CLI raises its level with --verbose.
var Log = logrus.New()

// ErrUnknownDay is returned when no puzzle is registered for a day number.
var ErrUnknownDay = errors.New("solve: unknown day")

// Func reads one puzzle input and returns both answers.
type Func func(io.Reader) (part1, part2 string, err error)

// Day is one registered puzzle.
type Day struct {
	Number int
	Title  string
	Run    Func
}

var days = map[int]Day{
	1:  {Number: 1, Title: "Dial Rotations", Run: day01.Solve},
	2:  {Number: 2, Title: "Repeated IDs", Run: day02.Solve},
	3:  {Number: 3, Title: "Joltage Banks", Run: day03.Solve},
	4:  {Number: 4, Title: "Paper Rolls", Run: day04.Solve},
	5:  {Number: 5, Title: "Fresh Ingredients", Run: day05.Solve},
	6:  {Number: 6, Title: "Worksheet Arithmetic", Run: day06.Solve},
	7:  {Number: 7, Title: "Tachyon Manifold", Run: day07.Solve},
	8:  {Number: 8, Title: "Junction Circuits", Run: runDay08},
	9:  {Number: 9, Title: "Theater Rectangles", Run: day09.Solve},
	10: {Number: 10, Title: "Indicator Machines", Run: day10.Solve},
	11: {Number: 11, Title: "Device Network", Run: day11.Solve},
	12: {Number: 12, Title: "Present Packing", Run: day12.Solve},
}

// runDay08 pins the default pair limit.
func runDay08(r io.Reader) (string, string, error) {
	return day08.Solve(r)
}

// Lookup returns the puzzle registered for a day number.
func Lookup(number int) (Day, error) {
	d, ok := days[number]
	if !ok {
		return Day{}, fmt.Errorf("%w: %d", ErrUnknownDay, number)
	}

	return d, nil
}

// All returns every registered puzzle in day order.
func All() []Day {
	all := make([]Day, 0, len(days))
	for _, d := range days {
		all = append(all, d)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Number < all[j].Number })

	return all
}

// Answers holds both answers of one puzzle.
type Answers struct {
	Part1, Part2 string
}

// Solve runs the puzzle on an input and logs how long it took.
func (d Day) Solve(r io.Reader) (Answers, error) {
	start := time.Now()
	part1, part2, err := d.Run(r)
	if err != nil {
		return Answers{}, fmt.Errorf("day %d: %w", d.Number, err)
	}
	Log.WithFields(logrus.Fields{
		"day":      d.Number,
		"title":    d.Title,
		"duration": time.Since(start),
	}).Debug("solved")

	return Answers{Part1: part1, Part2: part2}, nil
}
