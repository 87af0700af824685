package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/danieljhkim/hanoi/internal/clock"
	"github.com/danieljhkim/hanoi/internal/config"
	"github.com/danieljhkim/hanoi/internal/game"
	"github.com/danieljhkim/hanoi/internal/puzzle"
	"github.com/danieljhkim/hanoi/internal/solver"
)

// newClock is swapped out by tests to avoid real waits.
var newClock = func() clock.Clock { return &clock.RealClock{} }

// loadSettings reads settings from the environment and applies the global
// --solver flag.
func loadSettings() (*config.Settings, error) {
	settings, err := config.DefaultSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if solverName != "" {
		settings.Solver = solverName
	}
	return settings, nil
}

// newSolver resolves the configured solving strategy.
func newSolver(settings *config.Settings) (solver.Solver, error) {
	s, err := solver.ByName(settings.Solver)
	if err != nil {
		return nil, fmt.Errorf("failed to select solver: %w", err)
	}
	return s, nil
}

// newGame creates a game wired with the configured solver and clock.
func newGame(settings *config.Settings) (*game.Game, error) {
	s, err := newSolver(settings)
	if err != nil {
		return nil, err
	}
	return game.New(newClock(), s), nil
}

// parseDisks parses a disk-count argument and checks it against the
// configured maximum.
func parseDisks(arg string, settings *config.Settings) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: disk count %q is not a number", puzzle.ErrInvalidArgument, arg)
	}
	if err := settings.ValidateDisks(n); err != nil {
		return 0, err
	}
	return n, nil
}

// FormatError formats an error for display.
func FormatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
