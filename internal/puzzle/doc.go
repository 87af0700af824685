// Package puzzle holds the Tower of Hanoi board and its legality rules.
//
// A Puzzle owns exactly three pegs. Each peg is a stack of disk sizes
// stored bottom to top, and the only way to change a Puzzle after
// initialization is MoveDisk, which refuses to put a disk on a smaller one.
//
// Key concepts:
//   - Puzzle: the three pegs for one game session
//   - Move: an ordered (from, to) pair of peg indices
//   - ErrInvalidMove: a rule violation, recoverable by the caller
//   - ErrInvalidArgument: a malformed request (bad peg index, bad disk count)
package puzzle
