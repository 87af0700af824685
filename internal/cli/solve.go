package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/hanoi/internal/puzzle"
	"github.com/danieljhkim/hanoi/internal/solver"
)

var (
	solveFrom int
	solveTo   int
	solveVia  int
	solveChk  bool
)

// solveOutput is the JSON shape of the solve command.
type solveOutput struct {
	Disks  int           `json:"disks"`
	Pegs   solver.Pegs   `json:"pegs"`
	Solver string        `json:"solver"`
	Count  int           `json:"count"`
	Moves  []puzzle.Move `json:"moves"`

	// Check is set by --check
	Check *solver.ReplayResult `json:"check,omitempty"`
}

var solveCmd = &cobra.Command{
	Use:   "solve <disks>",
	Short: "Print the optimal move sequence",
	Long: `Print the optimal move sequence for the given number of disks.

By default the tower moves from peg 0 to peg 2 using peg 1 as the spare.
When only --from and --to are given, the remaining peg is the spare.

With --check the sequence is also replayed on a fresh board (all disks on
peg 0) and the command reports whether it solves it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		disks, err := parseDisks(args[0], settings)
		if err != nil {
			return err
		}
		s, err := newSolver(settings)
		if err != nil {
			return err
		}

		pegs := solver.Pegs{Source: solveFrom, Destination: solveTo, Auxiliary: solveVia}
		if !cmd.Flags().Changed("via") {
			pegs.Auxiliary = puzzle.NumPegs - solveFrom - solveTo
		}

		moves, err := s.Solve(disks, pegs)
		if err != nil {
			return err
		}

		var check *solver.ReplayResult
		if solveChk {
			if check, err = checkMoves(disks, moves); err != nil {
				return err
			}
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), solveOutput{
				Disks:  disks,
				Pegs:   pegs,
				Solver: s.Name(),
				Count:  len(moves),
				Moves:  moves,
				Check:  check,
			})
		}

		out := newPrinter(cmd.OutOrStdout())
		out.Section(fmt.Sprintf("Solution for %s", formatCount(disks, "disk", "disks")))
		items := make([]string, 0, len(moves))
		for _, m := range moves {
			items = append(items, m.String())
		}
		out.NumberedList(items, 1)
		fmt.Fprintln(cmd.OutOrStdout())
		out.LabelValue("Moves", fmt.Sprintf("%d", len(moves)))
		out.LabelValue("Solver", s.Name())
		if check != nil {
			printCheck(out, check)
		}
		return nil
	},
}

// checkMoves replays moves on a fresh board of the given size.
func checkMoves(disks int, moves []puzzle.Move) (*solver.ReplayResult, error) {
	p, err := puzzle.New(disks)
	if err != nil {
		return nil, err
	}
	return solver.Replay(p, moves)
}

func printCheck(out *printer, r *solver.ReplayResult) {
	switch {
	case r.Rejected != nil:
		out.Warning(fmt.Sprintf("Check: move %d (%s) rejected after %s",
			r.RejectedAt+1, r.Rejected, formatCount(r.Applied, "move", "moves")))
	case r.Solved:
		out.Success(fmt.Sprintf("Check: solves the puzzle in %s", formatCount(r.Applied, "move", "moves")))
	default:
		out.Warning(fmt.Sprintf("Check: all %s applied but the puzzle is not solved", formatCount(r.Applied, "move", "moves")))
	}
}

func init() {
	solveCmd.Flags().IntVar(&solveFrom, "from", solver.Standard.Source, "Source peg")
	solveCmd.Flags().IntVar(&solveTo, "to", solver.Standard.Destination, "Destination peg")
	solveCmd.Flags().IntVar(&solveVia, "via", solver.Standard.Auxiliary, "Spare peg")
	solveCmd.Flags().BoolVar(&solveChk, "check", false, "Replay the sequence on a fresh board")
}
