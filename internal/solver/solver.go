// Package solver solves Sudoku boards by reduction to exact cover.
//
// Each candidate placement becomes a row of a 729x324 boolean matrix
// and the Sudoku rules become its columns; the dlx package then finds a
// row set covering every column exactly once. Solving and uniqueness
// checking share the same reduction and differ only in the search mode.
package solver

import (
	"errors"
	"math/rand"

	"github.com/cyounger/gensudoku/internal/board"
	"github.com/cyounger/gensudoku/internal/dlx"
)

var (
	ErrNoSolution    = errors.New("puzzle has no solution")
	ErrInvalidPuzzle = errors.New("puzzle violates Sudoku constraints")
)

// Solve returns a completed copy of the board, leaving the input
// untouched. When rng is non-nil the search branches in random order,
// so boards with several completions come back with a random one;
// repeated calls with the same seeded rng are deterministic.
func Solve(b *board.Board, rng *rand.Rand) (*board.Board, error) {
	if !b.IsValid() {
		return nil, ErrInvalidPuzzle
	}

	solved := b.Clone()
	s := dlx.NewSolver(buildMatrix(solved), false)

	set := make([]int, board.CellCount)
	if !s.Run(dlx.ModeAny, set, rng) {
		return nil, ErrNoSolution
	}

	applySolution(solved, set)
	return solved, nil
}

// HasUniqueSolution reports whether the board has exactly one
// completion. Zero and two-or-more completions both report false.
func HasUniqueSolution(b *board.Board) bool {
	if !b.IsValid() {
		return false
	}

	s := dlx.NewSolver(buildMatrix(b), false)
	set := make([]int, board.CellCount)
	return s.Run(dlx.ModeUnique, set, nil)
}
