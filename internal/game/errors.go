package game

import "errors"

var (
	// ErrNotStarted indicates no game has been started yet.
	ErrNotStarted = errors.New("game not started")

	// ErrAutoPlaying indicates player input arrived during auto-play.
	ErrAutoPlaying = errors.New("auto-play in progress")

	// ErrNotAutoPlaying indicates Step was called without an active plan.
	ErrNotAutoPlaying = errors.New("auto-play not running")

	// ErrAlreadySolved indicates a move was attempted on a solved board.
	ErrAlreadySolved = errors.New("puzzle already solved")

	// ErrNotSolved indicates a summary was requested before the puzzle was solved.
	ErrNotSolved = errors.New("puzzle not solved")
)
