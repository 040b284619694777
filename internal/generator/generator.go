// Package generator creates Sudoku puzzles with exactly one solution.
//
// Generation seeds an empty board, completes it with a randomized
// exact cover solve, and then strips hints in two passes over one
// random position order: a cheap greedy pass removes hints implied by
// the rest of the board, and a second pass removes hints one at a time,
// keeping each removal only if the puzzle still has a unique solution.
// An optional final pass copies hints back from the solution to ease
// the puzzle.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/cyounger/gensudoku/internal/board"
	"github.com/cyounger/gensudoku/internal/solver"
)

var ErrGenerationFailed = errors.New("failed to generate valid puzzle")

// Generator creates Sudoku puzzles.
type Generator struct {
	options *Options
	rng     *rand.Rand
}

// New creates a puzzle generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions()
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Generate creates a new Sudoku puzzle.
// Returns the puzzle and its solution, or an error if the seeded board
// cannot be completed. Generation is not retried; callers that want
// another attempt should build a new Generator with a fresh seed.
func (g *Generator) Generate() (puzzle, solution *board.Board, err error) {
	// Partially prefill an empty board to anchor the solve, then
	// complete it with a randomized search.
	b := board.New()
	g.seedFirstRow(b)

	puzzle, err = solver.Solve(b, g.rng)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	// Snapshot the solution before any hints are removed.
	solution = puzzle.Clone()

	// Both removal passes walk the same random position order. The
	// order matters: the greedy pass is order-sensitive, and that
	// sensitivity is where puzzle variety comes from.
	order := g.rng.Perm(board.CellCount)
	removeDeducedHints(puzzle, order)
	removeAmbiguousHints(puzzle, order)

	g.addExtraHints(puzzle, solution)

	return puzzle, solution, nil
}

// seedFirstRow fills row 0 with a random permutation of 1-9. Any
// permutation extends to a full grid, so this only anchors the search
// without constraining which grids can be produced.
func (g *Generator) seedFirstRow(b *board.Board) {
	for col, v := range g.rng.Perm(9) {
		b.SetForce(board.MakePos(0, col), v+1)
	}
}

// removeDeducedHints clears every hint that is fully implied by the
// remaining ones, processing positions in the given order.
//
// The masks track which digits are still present among the remaining
// hints of each row, column, and box; the board starts solved, so they
// start all-on. A hint is implied when its row, column, and box
// together still contain every digit, because only one digit can then
// be legal in its cell. Greedy and order-sensitive: removing a hint
// early can make a later hint non-removable.
func removeDeducedHints(b *board.Board, order []int) {
	var rowMasks, colMasks, boxMasks [9]uint
	for i := 0; i < 9; i++ {
		rowMasks[i] = board.AllNine
		colMasks[i] = board.AllNine
		boxMasks[i] = board.AllNine
	}

	for _, pos := range order {
		row, col, box := board.RowOf(pos), board.ColOf(pos), board.BoxOf(pos)
		if rowMasks[row]|colMasks[col]|boxMasks[box] != board.AllNine {
			continue
		}
		bit := uint(1 << (b.Get(pos) - 1))
		rowMasks[row] &^= bit
		colMasks[col] &^= bit
		boxMasks[box] &^= bit
		b.Clear(pos)
	}
}

// removeAmbiguousHints tentatively clears each remaining hint and keeps
// the removal only while the puzzle still has exactly one solution.
// After this pass the puzzle is guaranteed to be uniquely solvable.
func removeAmbiguousHints(b *board.Board, order []int) {
	for _, pos := range order {
		val := b.Get(pos)
		if val == board.EmptyCell {
			continue
		}
		b.Clear(pos)
		if !solver.HasUniqueSolution(b) {
			b.SetForce(pos, val)
		}
	}
}

// addExtraHints copies up to ExtraHints values from the solution into
// random empty cells. Adding hints can only re-derive the unique
// solution, never introduce a second one, so no re-verification is
// needed.
func (g *Generator) addExtraHints(puzzle, solution *board.Board) {
	num := g.options.ExtraHints
	if num <= 0 {
		return
	}

	empty := make([]int, 0, board.CellCount)
	for pos := 0; pos < board.CellCount; pos++ {
		if puzzle.Get(pos) == board.EmptyCell {
			empty = append(empty, pos)
		}
	}
	g.rng.Shuffle(len(empty), func(i, j int) {
		empty[i], empty[j] = empty[j], empty[i]
	})

	if num > len(empty) {
		num = len(empty)
	}
	for _, pos := range empty[:num] {
		puzzle.SetForce(pos, solution.Get(pos))
	}
}
