package solver

import (
	"github.com/cyounger/gensudoku/internal/board"
	"github.com/cyounger/gensudoku/internal/dlx"
)

// Exact cover dimensions for a 9x9 board. Rows are candidate
// placements (value v at position pos), columns are constraints. The
// four constraint families, 81 columns each: a position is filled, a
// row contains a value, a column contains a value, a box contains a
// value.
const (
	MatrixRows = 729
	MatrixCols = 324
)

// matrixRow maps a placement to its exact cover row index.
// With pos = 9*row+col this is the classic 81*row + 9*col + (v-1).
func matrixRow(pos, val int) int {
	return 9*pos + val - 1
}

// rowPlacement is the inverse of matrixRow.
func rowPlacement(r int) (pos, val int) {
	return r / 9, r%9 + 1
}

// Constraint column indices for placing val at pos.
func colCellFilled(pos, val int) int { return pos }
func colRowValue(pos, val int) int   { return 81 + 9*board.RowOf(pos) + val - 1 }
func colColValue(pos, val int) int   { return 162 + 9*board.ColOf(pos) + val - 1 }
func colBoxValue(pos, val int) int   { return 243 + 9*board.BoxOf(pos) + val - 1 }

// buildMatrix encodes the board's empty cells as an exact cover
// matrix. Each empty position contributes one matrix row per digit not
// already excluded by its row, column, or box; filled positions
// contribute nothing, which leaves their constraint columns empty and
// is why the solver graph is built with strict=false.
func buildMatrix(b *board.Board) *dlx.Matrix {
	m := dlx.NewMatrix(MatrixRows, MatrixCols)

	for pos := 0; pos < board.CellCount; pos++ {
		if b.Get(pos) != board.EmptyCell {
			continue
		}
		mask := b.GetCandidatesMask(pos)
		for val := 1; val <= 9; val++ {
			if mask&uint(1<<(val-1)) == 0 {
				continue
			}
			r := matrixRow(pos, val)
			m.Set(r, colCellFilled(pos, val))
			m.Set(r, colRowValue(pos, val))
			m.Set(r, colColValue(pos, val))
			m.Set(r, colBoxValue(pos, val))
		}
	}

	return m
}

// applySolution decodes a solution row set into board placements.
// Entries of -1 (padding past the solution length) are skipped.
func applySolution(b *board.Board, set []int) {
	for _, r := range set {
		if r < 0 {
			continue
		}
		pos, val := rowPlacement(r)
		b.SetForce(pos, val)
	}
}
