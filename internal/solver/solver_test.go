package solver

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/danieljhkim/hanoi/internal/puzzle"
)

func strategies() []Solver {
	return []Solver{Recursive{}, Iterative{}}
}

func TestSolve_ThreeDisks(t *testing.T) {
	want := []puzzle.Move{
		{From: 0, To: 2}, {From: 0, To: 1}, {From: 2, To: 1}, {From: 0, To: 2},
		{From: 1, To: 0}, {From: 1, To: 2}, {From: 0, To: 2},
	}

	for _, s := range strategies() {
		t.Run(s.Name(), func(t *testing.T) {
			got, err := s.Solve(3, Standard)
			if err != nil {
				t.Fatalf("Solve(3) error = %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("Solve(3) = %v, want %v", got, want)
			}

			p, _ := puzzle.New(3)
			result, err := Replay(p, got)
			if err != nil {
				t.Fatalf("Replay() error = %v", err)
			}
			if !result.Complete() || !result.Solved {
				t.Fatalf("Replay() = %+v, want complete and solved", result)
			}
			pegs := p.Pegs()
			if !reflect.DeepEqual(pegs[2], []int{2, 1, 0}) {
				t.Errorf("peg 2 = %v, want [2 1 0]", pegs[2])
			}
			if len(pegs[0]) != 0 || len(pegs[1]) != 0 {
				t.Errorf("pegs 0 and 1 should be empty, got %v and %v", pegs[0], pegs[1])
			}
		})
	}
}

func TestSolve_ZeroAndOne(t *testing.T) {
	for _, s := range strategies() {
		t.Run(s.Name(), func(t *testing.T) {
			got, err := s.Solve(0, Standard)
			if err != nil {
				t.Fatalf("Solve(0) error = %v", err)
			}
			if len(got) != 0 {
				t.Errorf("Solve(0) = %v, want empty", got)
			}

			got, err = s.Solve(1, Pegs{Source: 1, Destination: 0, Auxiliary: 2})
			if err != nil {
				t.Fatalf("Solve(1) error = %v", err)
			}
			if !reflect.DeepEqual(got, []puzzle.Move{{From: 1, To: 0}}) {
				t.Errorf("Solve(1) = %v, want [1->0]", got)
			}
		})
	}
}

func TestSolve_MoveCountAndReplay(t *testing.T) {
	for _, s := range strategies() {
		for n := 1; n <= 12; n++ {
			t.Run(fmt.Sprintf("%s/%d", s.Name(), n), func(t *testing.T) {
				moves, err := s.Solve(n, Standard)
				if err != nil {
					t.Fatalf("Solve(%d) error = %v", n, err)
				}

				want, _ := puzzle.MinMoves(n)
				if uint64(len(moves)) != want {
					t.Fatalf("len(Solve(%d)) = %d, want %d", n, len(moves), want)
				}

				p, _ := puzzle.New(n)
				for i, m := range moves {
					if err := p.Apply(m); err != nil {
						t.Fatalf("move %d (%s) rejected: %v", i, m, err)
					}
				}
				if !p.IsSolved() {
					t.Errorf("board not solved after replaying Solve(%d)", n)
				}
			})
		}
	}
}

func TestSolve_Deterministic(t *testing.T) {
	for _, s := range strategies() {
		first, _ := s.Solve(6, Standard)
		second, _ := s.Solve(6, Standard)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: repeated Solve(6) calls differ", s.Name())
		}
	}
}

func TestIterative_MatchesRecursive(t *testing.T) {
	roles := []Pegs{
		Standard,
		{Source: 0, Destination: 1, Auxiliary: 2},
		{Source: 2, Destination: 0, Auxiliary: 1},
		{Source: 1, Destination: 2, Auxiliary: 0},
	}

	for _, pegs := range roles {
		for n := 0; n <= 10; n++ {
			rec, err := Recursive{}.Solve(n, pegs)
			if err != nil {
				t.Fatalf("Recursive.Solve(%d, %+v) error = %v", n, pegs, err)
			}
			it, err := Iterative{}.Solve(n, pegs)
			if err != nil {
				t.Fatalf("Iterative.Solve(%d, %+v) error = %v", n, pegs, err)
			}
			if !reflect.DeepEqual(rec, it) {
				t.Fatalf("n=%d pegs=%+v: iterative %v differs from recursive %v", n, pegs, it, rec)
			}
		}
	}
}

func TestSolve_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		n    int
		pegs Pegs
	}{
		{"negative disks", -1, Standard},
		{"peg out of range", 3, Pegs{Source: 0, Destination: 3, Auxiliary: 1}},
		{"negative peg", 3, Pegs{Source: -1, Destination: 2, Auxiliary: 1}},
		{"duplicate roles", 3, Pegs{Source: 0, Destination: 0, Auxiliary: 1}},
	}

	for _, tt := range tests {
		for _, s := range strategies() {
			t.Run(tt.name+"/"+s.Name(), func(t *testing.T) {
				_, err := s.Solve(tt.n, tt.pegs)
				if !errors.Is(err, puzzle.ErrInvalidArgument) {
					t.Errorf("Solve() error = %v, want ErrInvalidArgument", err)
				}
			})
		}
	}
}

func TestOptimal(t *testing.T) {
	got, err := Optimal(2)
	if err != nil {
		t.Fatalf("Optimal(2) error = %v", err)
	}
	want := []puzzle.Move{{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Optimal(2) = %v, want %v", got, want)
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"", RecursiveName, false},
		{"recursive", RecursiveName, false},
		{"iterative", IterativeName, false},
		{"bogus", "", true},
	}

	for _, tt := range tests {
		s, err := ByName(tt.name)
		if tt.wantErr {
			if !errors.Is(err, puzzle.ErrInvalidArgument) {
				t.Errorf("ByName(%q) error = %v, want ErrInvalidArgument", tt.name, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ByName(%q) error = %v", tt.name, err)
		}
		if s.Name() != tt.want {
			t.Errorf("ByName(%q).Name() = %q, want %q", tt.name, s.Name(), tt.want)
		}
	}

	if len(Names()) != 2 {
		t.Errorf("Names() = %v, want two strategies", Names())
	}
}

func TestRemaining_IgnoresBoardContents(t *testing.T) {
	p, _ := puzzle.New(3)
	fresh, err := Remaining(Recursive{}, p)
	if err != nil {
		t.Fatalf("Remaining() error = %v", err)
	}

	if err := p.MoveDisk(0, 1); err != nil {
		t.Fatalf("MoveDisk() error = %v", err)
	}
	midGame, err := Remaining(Recursive{}, p)
	if err != nil {
		t.Fatalf("Remaining() error = %v", err)
	}

	if !reflect.DeepEqual(fresh, midGame) {
		t.Error("Remaining() should not depend on where the disks sit")
	}
}

// A mid-game solve replays the from-scratch sequence, which the board
// rejects as soon as it disagrees with the current arrangement.
func TestReplay_TruncatesOnScrambledBoard(t *testing.T) {
	p, _ := puzzle.New(3)
	if err := p.MoveDisk(0, 1); err != nil {
		t.Fatalf("MoveDisk() error = %v", err)
	}

	moves, _ := Remaining(Recursive{}, p)
	before := p.Pegs()

	// first planned move is 0->2 (disk 1), then 0->1 moves disk 2 onto disk 0
	result, err := Replay(p, moves)
	if err != nil {
		t.Fatalf("Replay() error = %v", err)
	}
	if result.Complete() {
		t.Fatal("replay on a scrambled board should be truncated")
	}
	if result.RejectedAt != 1 || result.Applied != 1 {
		t.Errorf("Replay() = %+v, want rejection at index 1 after 1 applied move", result)
	}
	if *result.Rejected != (puzzle.Move{From: 0, To: 1}) {
		t.Errorf("Rejected = %v, want 0->1", *result.Rejected)
	}
	if result.Solved {
		t.Error("truncated replay should not report solved")
	}

	after := p.Pegs()
	if reflect.DeepEqual(before, after) {
		t.Error("the accepted first move should have changed the board")
	}
	if !reflect.DeepEqual(after[2], []int{1}) || !reflect.DeepEqual(after[1], []int{0}) {
		t.Errorf("unexpected board after truncated replay: %v", after)
	}
}

func TestReplay_MalformedMove(t *testing.T) {
	p, _ := puzzle.New(2)
	result, err := Replay(p, []puzzle.Move{{From: 0, To: 1}, {From: 0, To: 9}})
	if !errors.Is(err, puzzle.ErrInvalidArgument) {
		t.Fatalf("Replay() error = %v, want ErrInvalidArgument", err)
	}
	if result.Applied != 1 {
		t.Errorf("Applied = %d, want 1", result.Applied)
	}
}

func TestFrameStack(t *testing.T) {
	s := newFrameStack(0)
	if _, ok := s.Pop(); ok {
		t.Fatal("Pop() on empty stack should report false")
	}

	s.Push(frame{n: 1})
	s.Push(frame{n: 2})
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if f, _ := s.Pop(); f.n != 2 {
		t.Errorf("Pop() = %+v, want n=2", f)
	}
	if f, _ := s.Pop(); f.n != 1 {
		t.Errorf("Pop() = %+v, want n=1", f)
	}
}
