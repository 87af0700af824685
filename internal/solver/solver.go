// Package solver produces the optimal Tower of Hanoi move sequence.
//
// The sequence depends only on the disk count and on which peg plays the
// source, destination and auxiliary role. It never looks at a live board:
// Remaining recomputes the full sequence for the board's disk count, so
// replaying it on a board that is not in the start position can hit moves
// the board rejects.
package solver

import (
	"fmt"

	"github.com/danieljhkim/hanoi/internal/puzzle"
)

// Pegs assigns a role to each peg index.
type Pegs struct {
	Source      int `json:"source"`
	Destination int `json:"destination"`
	Auxiliary   int `json:"auxiliary"`
}

// Standard moves the tower from peg 0 to peg 2 using peg 1 as the spare.
var Standard = Pegs{Source: 0, Destination: 2, Auxiliary: 1}

// Validate checks that the roles name three distinct pegs.
func (p Pegs) Validate() error {
	for _, i := range []int{p.Source, p.Destination, p.Auxiliary} {
		if !puzzle.ValidPeg(i) {
			return fmt.Errorf("%w: peg index %d outside 0..%d", puzzle.ErrInvalidArgument, i, puzzle.NumPegs-1)
		}
	}
	if p.Source == p.Destination || p.Source == p.Auxiliary || p.Destination == p.Auxiliary {
		return fmt.Errorf("%w: peg roles must be distinct, got %d/%d/%d",
			puzzle.ErrInvalidArgument, p.Source, p.Destination, p.Auxiliary)
	}
	return nil
}

// Solver generates the optimal move sequence for n disks.
type Solver interface {
	// Name identifies the strategy ("recursive" or "iterative").
	Name() string

	// Solve returns exactly 2^n - 1 moves relocating n disks from
	// pegs.Source to pegs.Destination.
	Solve(n int, pegs Pegs) ([]puzzle.Move, error)
}

// ByName returns the strategy registered under name.
func ByName(name string) (Solver, error) {
	switch name {
	case "", RecursiveName:
		return Recursive{}, nil
	case IterativeName:
		return Iterative{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown solver %q", puzzle.ErrInvalidArgument, name)
	}
}

// Names lists the available strategies.
func Names() []string {
	return []string{RecursiveName, IterativeName}
}

// Solve runs the recursive strategy.
func Solve(n int, pegs Pegs) ([]puzzle.Move, error) {
	return Recursive{}.Solve(n, pegs)
}

// Optimal solves the standard 0 -> 2 instance.
func Optimal(n int) ([]puzzle.Move, error) {
	return Solve(n, Standard)
}

// Remaining returns the from-scratch optimal sequence for the board's disk
// count. It ignores where the disks currently sit.
func Remaining(s Solver, p *puzzle.Puzzle) ([]puzzle.Move, error) {
	return s.Solve(p.DiskCount(), Standard)
}

func checkRequest(n int, pegs Pegs) error {
	if n < 0 {
		return fmt.Errorf("%w: disk count must not be negative, got %d", puzzle.ErrInvalidArgument, n)
	}
	return pegs.Validate()
}

// capacityHint keeps preallocation bounded for very large towers.
func capacityHint(n int) int {
	if n > 24 {
		n = 24
	}
	return (1 << uint(n)) - 1
}
