package day01_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/advent2025/day01"
)

// ExampleSolve runs both parts on a short rotation list: four rotations stop
// on the zero mark, and the dial sweeps past it six times in total.
func ExampleSolve() {
	input := "R50\nL250\nR50\nR100\nL1\nL99\n"
	part1, part2, err := day01.Solve(strings.NewReader(input))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(part1, part2)
	// Output:
	// 4 6
}

// ExampleCountCrossings shows a single left rotation that reaches the zero
// mark twice: starting at 50, turning 150 left touches zero halfway and
// lands on it.
func ExampleCountCrossings() {
	rotations, err := day01.ParseRotations(strings.NewReader("L150\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(day01.CountCrossings(rotations))
	// Output:
	// 2
}
