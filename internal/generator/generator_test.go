package generator

import (
	"testing"

	"github.com/cyounger/gensudoku/internal/board"
	"github.com/cyounger/gensudoku/internal/solver"
)

func generate(t *testing.T, opts *Options) (*board.Board, *board.Board) {
	t.Helper()
	puzzle, solution, err := New(opts).Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return puzzle, solution
}

func TestGenerate(t *testing.T) {
	puzzle, solution := generate(t, &Options{Seed: 12345})

	if !solution.IsComplete() {
		t.Error("solution is not a complete valid grid")
	}
	if puzzle.HintCount() >= board.CellCount {
		t.Errorf("puzzle has %d hints, expected fewer than %d", puzzle.HintCount(), board.CellCount)
	}
	if !puzzle.IsValid() {
		t.Error("puzzle violates Sudoku constraints")
	}

	// Every hint must agree with the solution.
	for pos := 0; pos < board.CellCount; pos++ {
		if v := puzzle.Get(pos); v != board.EmptyCell && v != solution.Get(pos) {
			t.Fatalf("hint at %d is %d, solution has %d", pos, v, solution.Get(pos))
		}
	}

	// The correctness guarantee: a generated puzzle is uniquely solvable.
	if !solver.HasUniqueSolution(puzzle) {
		t.Error("generated puzzle does not have a unique solution")
	}

	// Restoring every empty cell from the solution reproduces it.
	restored := puzzle.Clone()
	for pos := 0; pos < board.CellCount; pos++ {
		if restored.Get(pos) == board.EmptyCell {
			restored.SetForce(pos, solution.Get(pos))
		}
	}
	if restored.String() != solution.String() {
		t.Error("puzzle plus solution cells does not reproduce the solution")
	}
}

func TestGenerateSolvesToSolution(t *testing.T) {
	puzzle, solution := generate(t, &Options{Seed: 99})

	solved, err := solver.Solve(puzzle, nil)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if solved.String() != solution.String() {
		t.Error("solving the puzzle does not yield the paired solution")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p1, s1 := generate(t, &Options{Seed: 7})
	p2, s2 := generate(t, &Options{Seed: 7})

	if p1.String() != p2.String() {
		t.Error("same seed produced different puzzles")
	}
	if s1.String() != s2.String() {
		t.Error("same seed produced different solutions")
	}

	p3, _ := generate(t, &Options{Seed: 8})
	if p1.String() == p3.String() {
		t.Error("different seeds produced the same puzzle")
	}
}

func TestExtraHints(t *testing.T) {
	base, _ := generate(t, &Options{Seed: 31})
	eased, solution := generate(t, &Options{Seed: 31, ExtraHints: 10})

	// The pipeline draws from the random stream identically up to the
	// restoration pass, so the eased puzzle is the base puzzle plus
	// exactly ten solution cells.
	if got, want := eased.HintCount(), base.HintCount()+10; got != want {
		t.Errorf("eased puzzle has %d hints, want %d", got, want)
	}
	for pos := 0; pos < board.CellCount; pos++ {
		if v := base.Get(pos); v != board.EmptyCell && eased.Get(pos) != v {
			t.Fatalf("eased puzzle lost base hint at %d", pos)
		}
		if v := eased.Get(pos); v != board.EmptyCell && v != solution.Get(pos) {
			t.Fatalf("extra hint at %d does not match the solution", pos)
		}
	}

	// Extra hints never break uniqueness.
	if !solver.HasUniqueSolution(eased) {
		t.Error("eased puzzle does not have a unique solution")
	}
}

func TestExtraHintsClamped(t *testing.T) {
	// Asking for more hints than there are empty cells fills the whole
	// grid, yielding the solution itself.
	puzzle, solution := generate(t, &Options{Seed: 5, ExtraHints: board.CellCount})

	if puzzle.String() != solution.String() {
		t.Error("clamped extra hints should reproduce the solution grid")
	}
}

func TestNilOptions(t *testing.T) {
	puzzle, solution, err := New(nil).Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if puzzle == nil || solution == nil {
		t.Fatal("expected a puzzle and a solution")
	}
}

func TestRemoveDeducedHints(t *testing.T) {
	// On a solved grid, the greedy pass must leave a board that still
	// pins the original solution: every cleared cell has exactly one
	// candidate consistent with the remaining hints at removal time,
	// and the final board is uniquely completable to the original.
	g := New(&Options{Seed: 1})
	b := board.New()
	g.seedFirstRow(b)
	solved, err := solver.Solve(b, g.rng)
	if err != nil {
		t.Fatal(err)
	}
	want := solved.String()

	removeDeducedHints(solved, g.rng.Perm(board.CellCount))

	if solved.EmptyCount() == 0 {
		t.Error("expected the greedy pass to remove at least one hint")
	}
	if !solver.HasUniqueSolution(solved) {
		t.Fatal("greedy pass broke uniqueness")
	}

	got, err := solver.Solve(solved, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != want {
		t.Error("greedy pass changed the unique completion")
	}
}
