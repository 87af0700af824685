package puzzle

import (
	"fmt"
	"strings"
)

// Puzzle is the board for one game session.
// It is not safe for concurrent use.
type Puzzle struct {
	// pegs holds disk sizes bottom to top; the last element is the top disk
	pegs  [NumPegs][]int
	disks int
}

// New returns a Puzzle initialized with numDisks disks on peg 0.
func New(numDisks int) (*Puzzle, error) {
	p := &Puzzle{}
	if err := p.Initialize(numDisks); err != nil {
		return nil, err
	}
	return p, nil
}

// Initialize resets the board: peg 0 holds every disk, largest at the
// bottom, and pegs 1 and 2 are empty. The receiver is left untouched when
// numDisks is not positive.
func (p *Puzzle) Initialize(numDisks int) error {
	if numDisks <= 0 {
		return fmt.Errorf("%w: disk count must be positive, got %d", ErrInvalidArgument, numDisks)
	}

	first := make([]int, numDisks)
	for i := range first {
		first[i] = numDisks - 1 - i
	}

	p.pegs = [NumPegs][]int{first, {}, {}}
	p.disks = numDisks
	return nil
}

// MoveDisk moves the top disk of peg from onto peg to.
//
// It returns ErrInvalidMove when peg from is empty or when the top disk of
// peg to is smaller than the disk being moved. Moving a disk onto its own
// peg is allowed and leaves the board unchanged.
func (p *Puzzle) MoveDisk(from, to int) error {
	if err := checkPeg(from); err != nil {
		return err
	}
	if err := checkPeg(to); err != nil {
		return err
	}

	src := p.pegs[from]
	if len(src) == 0 {
		return fmt.Errorf("%w: peg %d is empty", ErrInvalidMove, from)
	}
	disk := src[len(src)-1]

	if dst := p.pegs[to]; len(dst) > 0 && dst[len(dst)-1] < disk {
		return fmt.Errorf("%w: disk %d cannot go on disk %d", ErrInvalidMove, disk, dst[len(dst)-1])
	}

	p.pegs[from] = src[:len(src)-1]
	p.pegs[to] = append(p.pegs[to], disk)
	return nil
}

// Apply is MoveDisk for a Move value.
func (p *Puzzle) Apply(m Move) error {
	return p.MoveDisk(m.From, m.To)
}

// IsSolved reports whether pegs 0 and 1 are both empty, i.e. every disk
// sits on peg 2.
func (p *Puzzle) IsSolved() bool {
	return len(p.pegs[0]) == 0 && len(p.pegs[1]) == 0
}

// DiskCount returns the number of disks the board was initialized with.
func (p *Puzzle) DiskCount() int {
	return p.disks
}

// Peg returns a copy of peg i, bottom to top.
func (p *Puzzle) Peg(i int) ([]int, error) {
	if err := checkPeg(i); err != nil {
		return nil, err
	}
	return append([]int{}, p.pegs[i]...), nil
}

// Pegs returns a copy of all three pegs.
func (p *Puzzle) Pegs() [NumPegs][]int {
	var out [NumPegs][]int
	for i, peg := range p.pegs {
		out[i] = append([]int{}, peg...)
	}
	return out
}

// Top returns the top disk of peg i. The second result is false when the
// peg is empty or i is out of range.
func (p *Puzzle) Top(i int) (int, bool) {
	if !ValidPeg(i) || len(p.pegs[i]) == 0 {
		return 0, false
	}
	peg := p.pegs[i]
	return peg[len(peg)-1], true
}

// String renders one line per peg, e.g. "0: [2 1 0]".
func (p *Puzzle) String() string {
	var b strings.Builder
	for i, peg := range p.pegs {
		fmt.Fprintf(&b, "%d: %v\n", i, peg)
	}
	return b.String()
}
