package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/hanoi/internal/config"
	"github.com/danieljhkim/hanoi/internal/game"
	"github.com/danieljhkim/hanoi/internal/puzzle"
)

var (
	playTier  string
	playDelay time.Duration
)

const playHelp = `Commands:
  <peg>          pick up the top disk of a peg, then drop it on another
  m <from> <to>  move the top disk of <from> onto <to>
  auto           let the solver finish the puzzle
  restart        start over with the same number of disks
  status         show moves, time and phase
  help           show this help
  quit           leave the game

Rules: move one disk at a time and never place a larger disk on a smaller one.
Move every disk from peg 0 to peg 2.`

var playCmd = &cobra.Command{
	Use:   "play [disks]",
	Short: "Play the puzzle interactively",
	Long: `Play the Tower of Hanoi interactively, reading commands from standard input.

The disk count comes from [disks], --tier, or HANOI_DISKS, in that order.
Type 'help' during the game to list the commands.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		disks, err := playDisks(args, settings)
		if err != nil {
			return err
		}

		g, err := newGame(settings)
		if err != nil {
			return err
		}
		if err := g.Start(disks); err != nil {
			return err
		}

		delay := settings.StepDelay
		if cmd.Flags().Changed("delay") {
			delay = playDelay
		}

		s := &playSession{
			game:  g,
			w:     cmd.OutOrStdout(),
			out:   newPrinter(cmd.OutOrStdout()),
			delay: delay,
		}
		return s.run(cmd.Context(), cmd.InOrStdin())
	},
}

func init() {
	playCmd.Flags().StringVarP(&playTier, "tier", "t", "", "Difficulty tier (see 'hanoi tiers')")
	playCmd.Flags().DurationVar(&playDelay, "delay", 0, "Delay between auto-play moves (e.g. 250ms)")
}

// playDisks picks the disk count from the argument, the tier flag or the
// settings default.
func playDisks(args []string, settings *config.Settings) (int, error) {
	if len(args) > 0 && playTier != "" {
		return 0, fmt.Errorf("%w: give either a disk count or --tier, not both", puzzle.ErrInvalidArgument)
	}
	if len(args) > 0 {
		return parseDisks(args[0], settings)
	}
	if playTier != "" {
		tier, err := config.TierByName(playTier)
		if err != nil {
			return 0, err
		}
		if err := settings.ValidateDisks(tier.Disks); err != nil {
			return 0, fmt.Errorf("tier %s: %w", tier.Name, err)
		}
		return tier.Disks, nil
	}
	return settings.Disks, nil
}

// playSession drives a Game from text commands.
type playSession struct {
	game  *game.Game
	w     io.Writer
	out   *printer
	delay time.Duration
}

func (s *playSession) run(ctx context.Context, in io.Reader) error {
	st, err := s.game.Status()
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Tower of Hanoi - %s", formatCount(st.Disks, "disk", "disks"))
	if tier, ok := config.TierByDisks(st.Disks); ok {
		title += " (" + tier.Name + ")"
	}
	s.out.Section(title)
	s.out.LabelValue("Minimum moves", strconv.FormatUint(st.MinMoves, 10))
	s.out.Info("Type 'help' for commands.")
	s.board()

	done := make(chan struct{})
	defer close(done)
	lines, readErr := readLines(in, done)

	for {
		if err := ctx.Err(); err != nil {
			fmt.Fprintln(s.w)
			return err
		}
		fmt.Fprint(s.w, "> ")

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.w)
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(s.w)
				return <-readErr
			}
			line = l
		}

		quit, err := s.handle(ctx, line)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// readLines scans in on its own goroutine so a blocked read never holds up
// cancellation. The line channel is closed at end of input, after the scan
// error (possibly nil) has been sent on the error channel. Closing done
// releases the goroutine early.
func readLines(in io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

// handle runs one command line. Rule violations and bad input are reported
// and the session continues.
func (s *playSession) handle(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false, nil
	}

	var err error
	switch fields[0] {
	case "q", "quit", "exit":
		s.out.Info("Bye!")
		return true, nil
	case "h", "help", "?":
		s.out.Info(playHelp)
	case "s", "status":
		err = s.status()
	case "r", "restart":
		if err = s.game.Restart(); err == nil {
			s.out.Success("Restarted")
			s.board()
		}
	case "a", "auto":
		err = s.auto(ctx)
	case "m", "move":
		err = s.move(fields[1:])
	default:
		err = s.selectPeg(fields[0])
	}

	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, puzzle.ErrInvalidArgument),
		errors.Is(err, game.ErrAlreadySolved),
		errors.Is(err, game.ErrAutoPlaying):
		s.out.Warning(err.Error())
		return false, nil
	default:
		return false, err
	}
}

func (s *playSession) selectPeg(arg string) error {
	peg, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("%w: unknown command %q (type 'help')", puzzle.ErrInvalidArgument, arg)
	}

	res, err := s.game.Select(peg)
	if err != nil {
		return err
	}

	switch res.Outcome {
	case game.OutcomeSelected:
		s.out.Info(fmt.Sprintf("Picked up disk %d. Now choose the destination peg!", res.Disk))
		s.board()
		return nil
	case game.OutcomeDeselected:
		s.out.Info(fmt.Sprintf("Put disk %d back.", res.Disk))
		return nil
	case game.OutcomeIgnored:
		s.out.Warning(res.Reason)
		return nil
	}
	return s.report(res)
}

func (s *playSession) move(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: usage: m <from> <to>", puzzle.ErrInvalidArgument)
	}
	from, err1 := strconv.Atoi(args[0])
	to, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		return fmt.Errorf("%w: peg numbers must be integers", puzzle.ErrInvalidArgument)
	}

	res, err := s.game.Move(from, to)
	if err != nil {
		return err
	}
	return s.report(res)
}

// report prints the outcome of an attempted move.
func (s *playSession) report(res *game.SelectResult) error {
	if res.Outcome == game.OutcomeRejected {
		s.out.Error(fmt.Sprintf("Invalid move! Try a different peg. (%s)", res.Reason))
		return nil
	}

	s.board()
	if res.Solved {
		return s.win()
	}
	s.out.Success("Great move! Select another disk to continue.")
	return nil
}

func (s *playSession) auto(ctx context.Context) error {
	res, err := s.game.AutoSolve()
	if err != nil {
		return err
	}
	if res.AlreadySolved {
		s.out.Info("Puzzle is already solved!")
		return nil
	}

	s.out.Info(fmt.Sprintf("Watch the automatic solution! (%s, %s solver)",
		formatCount(res.Planned, "move", "moves"), res.Solver))

	err = s.game.Play(ctx, s.delay, func(step *game.StepResult) {
		if step.Rejected {
			s.out.Warning(fmt.Sprintf("Step %d: %s rejected, skipping", step.Index+1, step.Move))
			return
		}
		fmt.Fprintf(s.w, "Step %d: %s\n", step.Index+1, step.Move)
		s.board()
	})
	if err != nil {
		s.game.Stop()
		return err
	}

	st, err := s.game.Status()
	if err != nil {
		return err
	}
	if st.Solved {
		return s.win()
	}
	s.out.Warning("Solution complete! The solver replays from the start position, so earlier moves got in the way.")
	s.out.Info("Type 'restart' to try again.")
	return nil
}

func (s *playSession) win() error {
	summary, err := s.game.Summary()
	if err != nil {
		return err
	}

	s.out.Section("Congratulations! Puzzle solved!")
	s.out.LabelValue("Time", formatElapsed(summary.Elapsed))
	s.out.LabelValue("Moves", strconv.Itoa(summary.Moves))
	s.out.LabelValue("Minimum", strconv.FormatUint(summary.Minimum, 10))
	s.out.Success(summary.Rating)
	s.out.Info("Type 'restart' to play again or 'quit' to leave.")
	return nil
}

func (s *playSession) status() error {
	st, err := s.game.Status()
	if err != nil {
		return err
	}
	s.out.LabelValue("Phase", st.Phase.String())
	s.out.LabelValue("Moves", fmt.Sprintf("%d (minimum %d)", st.Moves, st.MinMoves))
	s.out.LabelValue("Time", formatElapsed(st.Elapsed))
	s.board()
	return nil
}

func (s *playSession) board() {
	st, err := s.game.Status()
	if err != nil {
		return
	}
	s.out.Board(st.Pegs, st.Selected)
}

// formatElapsed renders a duration as mm:ss.
func formatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
