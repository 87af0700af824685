// Package game runs a Tower of Hanoi session on top of the puzzle and
// solver packages.
//
// The game package is the layer between the CLI and the core. It owns the
// single Puzzle of a session together with everything the core does not
// care about: the pick-up/drop selection flow, the move counter, the timer
// and auto-play of a solver plan.
//
// Key components:
//   - Game: session orchestrator, one per player
//   - Phase: Idle, DiskSelected or AutoPlaying
//   - Select/Move: player input
//   - AutoSolve/Step/Play: auto-play of the optimal sequence
package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/danieljhkim/hanoi/internal/clock"
	"github.com/danieljhkim/hanoi/internal/puzzle"
	"github.com/danieljhkim/hanoi/internal/solver"
)

const (
	ratingPerfect = "Perfect!"
	ratingGood    = "Good job!"
)

// Game orchestrates one session. It is not safe for concurrent use.
type Game struct {
	clock  clock.Clock
	solver solver.Solver

	puzzle   *puzzle.Puzzle
	disks    int
	phase    Phase
	selected int
	moves    int

	startedAt  time.Time
	finishedAt time.Time

	plan       []puzzle.Move
	planPos    int
	rejections int
	autoPlayed bool
}

// New creates a Game with the given dependencies.
func New(clk clock.Clock, s solver.Solver) *Game {
	return &Game{
		clock:    clk,
		solver:   s,
		selected: -1,
	}
}

// Start begins a new session with the given disk count. Counts above
// puzzle.MaxCountedDisks are refused since the move minimum could not be
// reported.
func (g *Game) Start(disks int) error {
	if disks > puzzle.MaxCountedDisks {
		return fmt.Errorf("failed to start game: %w: disk count %d above %d",
			puzzle.ErrInvalidArgument, disks, puzzle.MaxCountedDisks)
	}
	p, err := puzzle.New(disks)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	g.puzzle = p
	g.disks = disks
	g.phase = Idle
	g.selected = -1
	g.moves = 0
	g.startedAt = g.clock.Now()
	g.finishedAt = time.Time{}
	g.plan = nil
	g.planPos = 0
	g.rejections = 0
	g.autoPlayed = false
	return nil
}

// Restart starts over with the current disk count.
func (g *Game) Restart() error {
	if g.puzzle == nil {
		return ErrNotStarted
	}
	return g.Start(g.disks)
}

// Phase returns the current input phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Select handles a click on a peg: the first click picks up the top disk,
// the second drops it on the chosen peg.
func (g *Game) Select(peg int) (*SelectResult, error) {
	if err := g.checkInput(); err != nil {
		return nil, err
	}
	if !puzzle.ValidPeg(peg) {
		return nil, fmt.Errorf("%w: peg index %d outside 0..%d", puzzle.ErrInvalidArgument, peg, puzzle.NumPegs-1)
	}

	if g.phase == Idle {
		disk, ok := g.puzzle.Top(peg)
		if !ok {
			return &SelectResult{Outcome: OutcomeIgnored, Reason: fmt.Sprintf("peg %d is empty", peg)}, nil
		}
		g.selected = peg
		g.phase = DiskSelected
		return &SelectResult{Outcome: OutcomeSelected, Disk: disk}, nil
	}

	from := g.selected
	g.clearSelection()
	if from == peg {
		disk, _ := g.puzzle.Top(peg)
		return &SelectResult{Outcome: OutcomeDeselected, Disk: disk}, nil
	}
	return g.move(from, peg)
}

// Move applies a direct (from, to) command. A pending selection is dropped.
func (g *Game) Move(from, to int) (*SelectResult, error) {
	if err := g.checkInput(); err != nil {
		return nil, err
	}
	g.clearSelection()
	return g.move(from, to)
}

func (g *Game) move(from, to int) (*SelectResult, error) {
	disk, _ := g.puzzle.Top(from)
	result := &SelectResult{Move: puzzle.Move{From: from, To: to}, Disk: disk}

	if err := g.puzzle.MoveDisk(from, to); err != nil {
		if !errors.Is(err, puzzle.ErrInvalidMove) {
			return nil, err
		}
		result.Outcome = OutcomeRejected
		result.Reason = err.Error()
		return result, nil
	}

	result.Outcome = OutcomeMoved
	if from != to {
		g.moves++
	}
	result.Solved = g.checkSolved()
	return result, nil
}

// AutoSolve queues the optimal sequence for the board's disk count and
// enters AutoPlaying. The sequence is computed from scratch, so on a board
// the player has already changed some steps will be rejected.
func (g *Game) AutoSolve() (*AutoSolveResult, error) {
	if g.puzzle == nil {
		return nil, ErrNotStarted
	}
	if g.phase == AutoPlaying {
		return nil, ErrAutoPlaying
	}

	result := &AutoSolveResult{Solver: g.solver.Name()}
	if g.puzzle.IsSolved() {
		result.AlreadySolved = true
		return result, nil
	}

	plan, err := solver.Remaining(g.solver, g.puzzle)
	if err != nil {
		return nil, fmt.Errorf("failed to compute solution: %w", err)
	}

	g.clearSelection()
	g.plan = plan
	g.planPos = 0
	g.rejections = 0
	g.autoPlayed = true
	if len(plan) > 0 {
		g.phase = AutoPlaying
	}

	result.Planned = len(plan)
	return result, nil
}

// Step applies the next planned move. Rejected moves are skipped. Auto-play
// ends when the plan is exhausted or the puzzle is solved.
func (g *Game) Step() (*StepResult, error) {
	if g.phase != AutoPlaying {
		return nil, ErrNotAutoPlaying
	}

	result := &StepResult{Index: g.planPos, Move: g.plan[g.planPos]}
	g.planPos++

	if err := g.puzzle.Apply(result.Move); err != nil {
		if !errors.Is(err, puzzle.ErrInvalidMove) {
			g.Stop()
			return nil, err
		}
		result.Rejected = true
		g.rejections++
	} else {
		g.moves++
	}

	result.Solved = g.checkSolved()
	if result.Solved || g.planPos >= len(g.plan) {
		result.Done = true
		g.phase = Idle
	}
	return result, nil
}

// Play runs auto-play to the end, waiting delay between steps and calling
// onStep after each one. It returns ctx.Err() if ctx is cancelled first; the
// session then stays in AutoPlaying so the caller may resume or Stop.
func (g *Game) Play(ctx context.Context, delay time.Duration, onStep func(*StepResult)) error {
	for g.phase == AutoPlaying {
		if err := ctx.Err(); err != nil {
			return err
		}

		step, err := g.Step()
		if err != nil {
			return err
		}
		if onStep != nil {
			onStep(step)
		}
		if step.Done || delay <= 0 {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-g.clock.After(delay):
		}
	}
	return nil
}

// Stop abandons auto-play.
func (g *Game) Stop() {
	if g.phase != AutoPlaying {
		return
	}
	g.phase = Idle
	g.plan = nil
	g.planPos = 0
}

// Status returns a snapshot of the session.
func (g *Game) Status() (*StatusResult, error) {
	if g.puzzle == nil {
		return nil, ErrNotStarted
	}

	minMoves, err := puzzle.MinMoves(g.disks)
	if err != nil {
		return nil, err
	}

	return &StatusResult{
		Disks:       g.disks,
		Phase:       g.phase,
		Selected:    g.selected,
		Pegs:        g.puzzle.Pegs(),
		Moves:       g.moves,
		MinMoves:    minMoves,
		Solved:      g.puzzle.IsSolved(),
		Elapsed:     g.elapsed(),
		PlanLength:  len(g.plan),
		PlanApplied: g.planPos,
		Rejections:  g.rejections,
	}, nil
}

// Summary returns the end-of-game report.
func (g *Game) Summary() (*Summary, error) {
	if g.puzzle == nil {
		return nil, ErrNotStarted
	}
	if !g.puzzle.IsSolved() {
		return nil, ErrNotSolved
	}

	peg, _ := g.puzzle.Peg(2)
	minimum, err := puzzle.MinMoves(len(peg))
	if err != nil {
		return nil, err
	}

	s := &Summary{
		Elapsed:  g.elapsed(),
		Moves:    g.moves,
		Minimum:  minimum,
		Perfect:  uint64(g.moves) == minimum,
		AutoPlay: g.autoPlayed,
	}
	s.Rating = ratingGood
	if s.Perfect {
		s.Rating = ratingPerfect
	}
	return s, nil
}

func (g *Game) checkInput() error {
	if g.puzzle == nil {
		return ErrNotStarted
	}
	if g.phase == AutoPlaying {
		return ErrAutoPlaying
	}
	if g.puzzle.IsSolved() {
		return ErrAlreadySolved
	}
	return nil
}

func (g *Game) clearSelection() {
	g.selected = -1
	if g.phase == DiskSelected {
		g.phase = Idle
	}
}

// checkSolved stops the timer the first time the board is solved.
func (g *Game) checkSolved() bool {
	if !g.puzzle.IsSolved() {
		return false
	}
	if g.finishedAt.IsZero() {
		g.finishedAt = g.clock.Now()
	}
	return true
}

func (g *Game) elapsed() time.Duration {
	if !g.finishedAt.IsZero() {
		return g.finishedAt.Sub(g.startedAt)
	}
	return g.clock.Now().Sub(g.startedAt)
}
