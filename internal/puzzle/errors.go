package puzzle

import "errors"

var (
	// ErrInvalidMove indicates a move that breaks the puzzle rules.
	// The board is never modified when this is returned.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidArgument indicates a peg index or disk count outside the
	// accepted range.
	ErrInvalidArgument = errors.New("invalid argument")
)
