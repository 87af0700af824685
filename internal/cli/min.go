package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/hanoi/internal/puzzle"
)

var minCmd = &cobra.Command{
	Use:   "min <disks>",
	Short: "Show the minimum number of moves",
	Long:  `Show 2^n - 1, the fewest moves that solve a tower of n disks.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		disks, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: disk count %q is not a number", puzzle.ErrInvalidArgument, args[0])
		}
		minMoves, err := puzzle.MinMoves(disks)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), map[string]interface{}{
				"disks":    disks,
				"minMoves": minMoves,
			})
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), minMoves)
		return nil
	},
}
