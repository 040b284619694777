// Package dlx implements Knuth's dancing links algorithm (Algorithm X)
// for exact cover problems.
//
// A problem is described by a sparse boolean Matrix whose rows are
// candidate actions and whose columns are constraints that must each be
// satisfied exactly once. The Solver builds a toroidal doubly-linked
// graph over the matrix and searches it with recursive backtracking,
// using O(1) cover/uncover splices instead of copying state.
package dlx

// Matrix is a sparse boolean exact cover matrix.
// It is pure data: build it with Set and hand it to NewSolver.
type Matrix struct {
	nrows int
	ncols int
	cells []bool
	inuse int
}

// NewMatrix creates an all-false matrix with the given dimensions.
func NewMatrix(nrows, ncols int) *Matrix {
	return &Matrix{
		nrows: nrows,
		ncols: ncols,
		cells: make([]bool, nrows*ncols),
	}
}

// Set marks the cell at (row, col) as on.
// Setting the same cell twice counts it once.
func (m *Matrix) Set(row, col int) {
	idx := row*m.ncols + col
	if !m.cells[idx] {
		m.cells[idx] = true
		m.inuse++
	}
}

// At reports whether the cell at (row, col) is on.
func (m *Matrix) At(row, col int) bool {
	return m.cells[row*m.ncols+col]
}

// Rows returns the number of rows in the matrix.
func (m *Matrix) Rows() int { return m.nrows }

// Cols returns the number of columns in the matrix.
func (m *Matrix) Cols() int { return m.ncols }

// InUse returns the number of cells that are on. The solver uses it to
// size its node arena.
func (m *Matrix) InUse() int { return m.inuse }
