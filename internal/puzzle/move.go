package puzzle

import (
	"fmt"
	"math"
)

// NumPegs is the number of pegs on every board.
const NumPegs = 3

// MaxCountedDisks is the largest disk count whose minimum move count fits
// in a uint64.
const MaxCountedDisks = 64

// Move moves the top disk of peg From onto peg To.
type Move struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// String renders the move as "from->to".
func (m Move) String() string {
	return fmt.Sprintf("%d->%d", m.From, m.To)
}

// MinMoves returns 2^n - 1, the fewest moves that relocate n disks.
func MinMoves(n int) (uint64, error) {
	if n < 0 || n > MaxCountedDisks {
		return 0, fmt.Errorf("%w: disk count %d outside 0..%d", ErrInvalidArgument, n, MaxCountedDisks)
	}
	if n == MaxCountedDisks {
		return math.MaxUint64, nil
	}
	return (uint64(1) << uint(n)) - 1, nil
}

// ValidPeg reports whether i names one of the three pegs.
func ValidPeg(i int) bool {
	return i >= 0 && i < NumPegs
}

func checkPeg(i int) error {
	if !ValidPeg(i) {
		return fmt.Errorf("%w: peg index %d outside 0..%d", ErrInvalidArgument, i, NumPegs-1)
	}
	return nil
}
