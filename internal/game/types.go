package game

import (
	"time"

	"github.com/danieljhkim/hanoi/internal/puzzle"
)

// Phase is the input state of a game session.
type Phase int

const (
	// Idle waits for the player to pick up a disk.
	Idle Phase = iota

	// DiskSelected holds a picked-up disk waiting for a destination.
	DiskSelected

	// AutoPlaying replays a solver plan; player input is refused.
	AutoPlaying
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case DiskSelected:
		return "disk-selected"
	case AutoPlaying:
		return "auto-playing"
	default:
		return "unknown"
	}
}

// MarshalText encodes the phase by name.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Outcome describes what a Select or Move call did.
type Outcome string

const (
	OutcomeSelected   Outcome = "selected"
	OutcomeDeselected Outcome = "deselected"
	OutcomeIgnored    Outcome = "ignored"
	OutcomeMoved      Outcome = "moved"
	OutcomeRejected   Outcome = "rejected"
)

// SelectResult represents the result of a Select or Move call.
type SelectResult struct {
	// Outcome is what happened to the board or selection
	Outcome Outcome `json:"outcome"`

	// Move is the attempted move (zero unless Outcome is moved or rejected)
	Move puzzle.Move `json:"move"`

	// Disk is the disk picked up or moved
	Disk int `json:"disk"`

	// Reason explains a rejection
	Reason string `json:"reason,omitempty"`

	// Solved is true when this call completed the puzzle
	Solved bool `json:"solved"`
}

// AutoSolveResult represents the result of starting auto-play.
type AutoSolveResult struct {
	// Planned is the number of moves queued
	Planned int `json:"planned"`

	// AlreadySolved is true when nothing was queued because the board is solved
	AlreadySolved bool `json:"alreadySolved"`

	// Solver names the strategy that produced the plan
	Solver string `json:"solver"`
}

// StepResult represents one auto-play step.
type StepResult struct {
	// Index is the position of Move in the plan
	Index int `json:"index"`

	// Move is the planned move
	Move puzzle.Move `json:"move"`

	// Rejected is true when the board refused Move
	Rejected bool `json:"rejected"`

	// Done is true when the plan is exhausted
	Done bool `json:"done"`

	// Solved reports the board after the step
	Solved bool `json:"solved"`
}

// StatusResult represents the current session state.
type StatusResult struct {
	Disks       int                   `json:"disks"`
	Phase       Phase                 `json:"phase"`
	Selected    int                   `json:"selected"`
	Pegs        [puzzle.NumPegs][]int `json:"pegs"`
	Moves       int                   `json:"moves"`
	MinMoves    uint64                `json:"minMoves"`
	Solved      bool                  `json:"solved"`
	Elapsed     time.Duration         `json:"elapsed"`
	PlanLength  int                   `json:"planLength"`
	PlanApplied int                   `json:"planApplied"`
	Rejections  int                   `json:"rejections"`
}

// Summary is the end-of-game report.
type Summary struct {
	Elapsed  time.Duration `json:"elapsed"`
	Moves    int           `json:"moves"`
	Minimum  uint64        `json:"minimum"`
	Perfect  bool          `json:"perfect"`
	Rating   string        `json:"rating"`
	AutoPlay bool          `json:"autoPlay"`
}
