package solver

import "github.com/danieljhkim/hanoi/internal/puzzle"

// IterativeName is the registry name of Iterative.
const IterativeName = "iterative"

// Iterative walks the same decomposition as Recursive with an explicit
// stack, so deep towers do not grow the goroutine stack. The output is
// identical to Recursive.
type Iterative struct{}

// Name implements Solver.
func (Iterative) Name() string { return IterativeName }

// frame is a pending "move n disks from src to dst via aux" task.
type frame struct {
	n, src, dst, aux int
}

// Solve implements Solver.
func (Iterative) Solve(n int, pegs Pegs) ([]puzzle.Move, error) {
	if err := checkRequest(n, pegs); err != nil {
		return nil, err
	}

	moves := make([]puzzle.Move, 0, capacityHint(n))
	stack := newFrameStack(2*n + 1)
	stack.Push(frame{n: n, src: pegs.Source, dst: pegs.Destination, aux: pegs.Auxiliary})

	for {
		f, ok := stack.Pop()
		if !ok {
			break
		}
		switch f.n {
		case 0:
			continue
		case 1:
			moves = append(moves, puzzle.Move{From: f.src, To: f.dst})
			continue
		}
		// pushed in reverse so the first half pops first
		stack.Push(frame{n: f.n - 1, src: f.aux, dst: f.dst, aux: f.src})
		stack.Push(frame{n: 1, src: f.src, dst: f.dst, aux: f.aux})
		stack.Push(frame{n: f.n - 1, src: f.src, dst: f.aux, aux: f.dst})
	}

	return moves, nil
}

// frameStack is a LIFO of pending frames.
type frameStack struct {
	items []frame
}

func newFrameStack(capacity int) *frameStack {
	if capacity <= 0 {
		return &frameStack{}
	}
	return &frameStack{items: make([]frame, 0, capacity)}
}

func (s *frameStack) Push(f frame) {
	s.items = append(s.items, f)
}

func (s *frameStack) Pop() (frame, bool) {
	if len(s.items) == 0 {
		return frame{}, false
	}
	last := len(s.items) - 1
	f := s.items[last]
	s.items = s.items[:last]
	return f, true
}

func (s *frameStack) Len() int {
	return len(s.items)
}
