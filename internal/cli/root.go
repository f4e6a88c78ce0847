// Package cli wires the daily puzzles into a cobra command tree.
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent2025/internal/solve"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the advent CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "advent",
		Short:         "Advent of Code 2025 solutions",
		Long:          "Runs any of the twelve daily puzzle solutions against an input file.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			solve.Log.SetOutput(cmd.ErrOrStderr())
			if opts.Verbose {
				solve.Log.SetLevel(logrus.DebugLevel)
			} else {
				solve.Log.SetLevel(logrus.WarnLevel)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log solve timings")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewListCommand(opts))

	return cmd
}
