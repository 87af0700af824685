// Package config manages hanoi runtime settings and difficulty tiers.
//
// Settings come from built-in defaults that can be overridden with
// environment variables; CLI flags override settings in turn.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/danieljhkim/hanoi/internal/puzzle"
)

// Environment variables read by DefaultSettings.
const (
	EnvDisks     = "HANOI_DISKS"
	EnvStepDelay = "HANOI_STEP_DELAY"
	EnvMaxDisks  = "HANOI_MAX_DISKS"
	EnvSolver    = "HANOI_SOLVER"
)

// Defaults used when no environment override is set.
const (
	DefaultDisks     = 3
	DefaultStepDelay = 800 * time.Millisecond
	DefaultMaxDisks  = 20
	DefaultSolver    = "recursive"
)

// Settings holds the values a CLI session starts from.
type Settings struct {
	// Disks is the disk count used when none is given
	Disks int

	// StepDelay paces auto-play between moves
	StepDelay time.Duration

	// MaxDisks caps the disk count accepted from users
	MaxDisks int

	// Solver names the solving strategy ("recursive" or "iterative")
	Solver string
}

// DefaultSettings returns the default settings.
// Values can be overridden with environment variables:
// - HANOI_DISKS: default disk count
// - HANOI_STEP_DELAY: auto-play delay as a Go duration (e.g. "250ms")
// - HANOI_MAX_DISKS: largest accepted disk count, at most 64
// - HANOI_SOLVER: solving strategy
func DefaultSettings() (*Settings, error) {
	s := &Settings{
		Disks:     DefaultDisks,
		StepDelay: DefaultStepDelay,
		MaxDisks:  DefaultMaxDisks,
		Solver:    DefaultSolver,
	}

	if v := os.Getenv(EnvMaxDisks); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > puzzle.MaxCountedDisks {
			return nil, fmt.Errorf("invalid %s %q: must be an integer in 1..%d", EnvMaxDisks, v, puzzle.MaxCountedDisks)
		}
		s.MaxDisks = n
	}

	if v := os.Getenv(EnvDisks); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvDisks, v, err)
		}
		s.Disks = n
	}
	if err := s.ValidateDisks(s.Disks); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvDisks, err)
	}

	if v := os.Getenv(EnvStepDelay); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvStepDelay, v, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("invalid %s %q: must not be negative", EnvStepDelay, v)
		}
		s.StepDelay = d
	}

	if v := os.Getenv(EnvSolver); v != "" {
		s.Solver = v
	}

	return s, nil
}

// ValidateDisks checks that n is within 1..MaxDisks.
func (s *Settings) ValidateDisks(n int) error {
	if n < 1 || n > s.MaxDisks {
		return fmt.Errorf("%w: disk count %d outside 1..%d", puzzle.ErrInvalidArgument, n, s.MaxDisks)
	}
	return nil
}
