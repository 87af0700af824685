package solver

import "github.com/danieljhkim/hanoi/internal/puzzle"

// RecursiveName is the registry name of Recursive.
const RecursiveName = "recursive"

// Recursive is the textbook divide-and-conquer solver. Stack depth grows
// linearly with n.
type Recursive struct{}

// Name implements Solver.
func (Recursive) Name() string { return RecursiveName }

// Solve implements Solver.
func (Recursive) Solve(n int, pegs Pegs) ([]puzzle.Move, error) {
	if err := checkRequest(n, pegs); err != nil {
		return nil, err
	}
	moves := make([]puzzle.Move, 0, capacityHint(n))
	return appendTower(moves, n, pegs.Source, pegs.Destination, pegs.Auxiliary), nil
}

// appendTower moves the top n-1 disks onto the spare peg, the largest disk
// onto dst, then the n-1 disks from the spare onto dst.
func appendTower(moves []puzzle.Move, n, src, dst, aux int) []puzzle.Move {
	switch n {
	case 0:
		return moves
	case 1:
		return append(moves, puzzle.Move{From: src, To: dst})
	}
	moves = appendTower(moves, n-1, src, aux, dst)
	moves = append(moves, puzzle.Move{From: src, To: dst})
	return appendTower(moves, n-1, aux, dst, src)
}
