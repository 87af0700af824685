package solver

import (
	"errors"
	"fmt"

	"github.com/danieljhkim/hanoi/internal/puzzle"
)

// ReplayResult describes how far a move sequence got on a board.
type ReplayResult struct {
	// Applied is the number of moves accepted by the board
	Applied int `json:"applied"`

	// Rejected is the first move the board refused (nil if none)
	Rejected *puzzle.Move `json:"rejected,omitempty"`

	// RejectedAt is the index of Rejected in the sequence (-1 if none)
	RejectedAt int `json:"rejectedAt"`

	// Solved reports the board state after the replay
	Solved bool `json:"solved"`
}

// Complete reports whether every move was applied.
func (r *ReplayResult) Complete() bool {
	return r.Rejected == nil
}

// Replay applies moves to p in order and stops at the first move the board
// rejects with puzzle.ErrInvalidMove. A truncated replay is not an error;
// only malformed moves (bad peg indices) are returned as errors.
func Replay(p *puzzle.Puzzle, moves []puzzle.Move) (*ReplayResult, error) {
	result := &ReplayResult{RejectedAt: -1}

	for i, m := range moves {
		if err := p.Apply(m); err != nil {
			if !errors.Is(err, puzzle.ErrInvalidMove) {
				return result, fmt.Errorf("move %d (%s): %w", i, m, err)
			}
			rejected := m
			result.Rejected = &rejected
			result.RejectedAt = i
			break
		}
		result.Applied++
	}

	result.Solved = p.IsSolved()
	return result, nil
}
