// Command advent runs the Advent of Code 2025 solutions.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/advent2025/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
