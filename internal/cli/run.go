package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent2025/internal/solve"
)

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <day> <input>",
		Short: "Solve one day's puzzle against an input file",
		Long: `Solve one day's puzzle against an input file.

Example:
  advent run 5 inputs/day05.txt
  advent run 5 inputs/day05.txt --verbose`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("day must be a number: %q", args[0])
			}
			day, err := solve.Lookup(number)
			if err != nil {
				return err
			}

			f, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer f.Close()

			answers, err := day.Solve(f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "part1: %s\npart2: %s\n",
				answers.Part1, answers.Part2)

			return nil
		},
	}
}
