package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent2025/internal/solve"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available days",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, d := range solve.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "day %2d  %s\n", d.Number, d.Title)
			}
		},
	}
}
