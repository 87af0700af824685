package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/hanoi/internal/game"
)

var replayDelay time.Duration

// replayOutput is the JSON shape of the replay command.
type replayOutput struct {
	Steps  []*game.StepResult `json:"steps"`
	Status *game.StatusResult `json:"status"`
}

var replayCmd = &cobra.Command{
	Use:   "replay <disks>",
	Short: "Watch the optimal solution play out",
	Long: `Start a fresh board and replay the optimal solution on it, printing the
board after every move. Use --delay to pace the moves (default from
HANOI_STEP_DELAY).`,
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
		g, err := newGame(settings)
		if err != nil {
			return err
		}

		delay := settings.StepDelay
		if cmd.Flags().Changed("delay") {
			delay = replayDelay
		}

		if err := g.Start(disks); err != nil {
			return err
		}
		if _, err := g.AutoSolve(); err != nil {
			return err
		}

		out := newPrinter(cmd.OutOrStdout())
		var steps []*game.StepResult
		if !jsonOutput {
			out.Section(fmt.Sprintf("Replaying %s", formatCount(disks, "disk", "disks")))
			st, _ := g.Status()
			out.Board(st.Pegs, -1)
		} else {
			// scripts want the result, not the pacing
			delay = 0
		}

		err = g.Play(cmd.Context(), delay, func(step *game.StepResult) {
			if jsonOutput {
				steps = append(steps, step)
				return
			}
			st, _ := g.Status()
			fmt.Fprintf(cmd.OutOrStdout(), "\nMove %d: %s\n", step.Index+1, step.Move)
			out.Board(st.Pegs, -1)
		})
		if err != nil {
			return err
		}

		status, err := g.Status()
		if err != nil {
			return err
		}
		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), replayOutput{Steps: steps, Status: status})
		}

		fmt.Fprintln(cmd.OutOrStdout())
		if status.Solved {
			out.Success(fmt.Sprintf("Solved in %s", formatCount(status.Moves, "move", "moves")))
		} else {
			out.Warning("Replay finished without solving the puzzle")
		}
		return nil
	},
}

func init() {
	replayCmd.Flags().DurationVar(&replayDelay, "delay", 0, "Delay between moves (e.g. 250ms)")
}
