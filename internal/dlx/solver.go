package dlx

import "math/rand"

// Mode selects the termination policy for a search.
type Mode int

const (
	// ModeAny stops at the first solution found. Candidate rows are
	// shuffled at each branch point, so different random streams surface
	// different solutions.
	ModeAny Mode = iota

	// ModeUnique searches until a second solution is found or the search
	// space is exhausted. Run reports true only when exactly one
	// solution exists.
	ModeUnique
)

// node is a participant in the toroidal linked graph. All links are
// indices into the solver's arena, which keeps the cover/uncover
// splices free of pointer ownership concerns. Column headers use count;
// ordinary nodes use row.
type node struct {
	left, right int
	up, down    int
	col         int // owning column header
	count       int // headers: live rows in this column
	row         int // non-headers: matrix row this node represents
}

// Solver owns the node arena and the search state for one exact cover
// instance. It is not safe for concurrent use: search mutates the graph
// in place and restores it on backtrack.
type Solver struct {
	nodes []node
	root  int
	ncols int
	nrows int

	mode     Mode
	rng      *rand.Rand
	solution []int
	count    int
}

// NewSolver builds the dancing links graph for the given matrix.
//
// Headers occupy arena slots 0..ncols-1 and the root sentinel sits just
// past them, so the arena holds exactly InUse()+ncols+1 nodes. When
// strict is false, columns with no candidate rows are unlinked from the
// header list; constraints already satisfied by the caller (filled grid
// cells) produce such columns and must not take part in the search.
func NewSolver(m *Matrix, strict bool) *Solver {
	s := &Solver{
		nodes: make([]node, m.InUse()+m.Cols()+1),
		root:  m.Cols(),
		ncols: m.Cols(),
		nrows: m.Rows(),
	}
	s.initGraph(m, strict)
	return s
}

// initGraph links headers, column lists, and row lists into a fully
// circular mesh, following the matrix in column-major then row-major
// order so that vertical lists run top to bottom and horizontal lists
// follow column order.
func (s *Solver) initGraph(m *Matrix, strict bool) {
	// Circular header list with the root spliced in.
	for col := 0; col < s.ncols; col++ {
		left, right := col-1, col+1
		if left < 0 {
			left = s.root
		}
		if right == s.ncols {
			right = s.root
		}
		s.nodes[col].left = left
		s.nodes[col].right = right
	}
	s.nodes[s.root].left = s.ncols - 1
	s.nodes[s.root].right = 0

	// Vertical lists. Remember each node's arena slot so the row lists
	// can be linked on a second pass.
	used := make([]int, s.nrows*s.ncols)
	for i := range used {
		used[i] = -1
	}

	next := s.ncols + 1
	for col := 0; col < s.ncols; col++ {
		cur := col
		for row := 0; row < s.nrows; row++ {
			if !m.At(row, col) {
				continue
			}
			n := next
			next++
			s.nodes[cur].down = n
			s.nodes[n].up = cur
			s.nodes[n].col = col
			s.nodes[n].row = row
			s.nodes[col].count++
			used[row*s.ncols+col] = n
			cur = n
		}
		s.nodes[cur].down = col
		s.nodes[col].up = cur
	}

	// Horizontal lists.
	for row := 0; row < s.nrows; row++ {
		first, cur := -1, -1
		for col := 0; col < s.ncols; col++ {
			n := used[row*s.ncols+col]
			if n < 0 {
				continue
			}
			if first < 0 {
				first, cur = n, n
				continue
			}
			s.nodes[cur].right = n
			s.nodes[n].left = cur
			cur = n
		}
		if first >= 0 {
			s.nodes[cur].right = first
			s.nodes[first].left = cur
		}
	}

	if !strict {
		// A column with no intersecting rows can never be satisfied by
		// the search; it is either already satisfied externally or
		// impossible. Bypass it in the header list.
		for col := 0; col < s.ncols; col++ {
			if s.nodes[col].count == 0 {
				l, r := s.nodes[col].left, s.nodes[col].right
				s.nodes[l].right = r
				s.nodes[r].left = l
			}
		}
	}
}

// Run searches for solutions to the exact cover instance.
//
// The caller provides the solution buffer; it is filled with matrix row
// indices, one per search depth, and padded with -1 beyond the solution
// length. In ModeAny, rng drives the branch shuffling and Run reports
// whether any solution was found. In ModeUnique, rng may be nil and Run
// reports whether exactly one solution exists.
//
// Run may be called repeatedly on the same Solver; the graph is fully
// restored by the backtracking discipline after each search.
func (s *Solver) Run(mode Mode, solution []int, rng *rand.Rand) bool {
	s.mode = mode
	s.rng = rng
	s.solution = solution
	s.count = 0

	for i := range solution {
		solution[i] = -1
	}

	found := s.search(0)
	if mode == ModeAny {
		return found
	}
	return s.count == 1
}

// SolutionCount returns the number of solutions encountered by the last
// Run. ModeAny stops at 1; ModeUnique stops at 2.
func (s *Solver) SolutionCount() int {
	return s.count
}

// search is the recursive Algorithm X step at depth k.
//
// It reports true to stop the whole search: in ModeAny as soon as a
// solution is recorded, in ModeUnique only once a second solution shows
// the instance is ambiguous. Returning false after the first solution
// in ModeUnique forces backtracking to continue, which lets one
// traversal both find a solution and prove or refute its uniqueness.
func (s *Solver) search(k int) bool {
	if s.nodes[s.root].right == s.root {
		// No live columns: every constraint is satisfied by the rows
		// recorded at depths 0..k-1. Exact cover solutions are distinct
		// row sets, so the same solution is never counted twice.
		s.count++
		return s.mode == ModeAny || s.count > 1
	}

	// Pick the live column with the fewest candidate rows to keep the
	// branching factor down. Ties go to the first one encountered.
	column := s.nodes[s.root].right
	min := s.nodes[column].count
	for c := s.nodes[column].right; c != s.root; c = s.nodes[c].right {
		if s.nodes[c].count < min {
			column = c
			min = s.nodes[c].count
		}
	}

	s.cover(column)

	// Collect the rows hanging off the chosen column. The count is
	// re-read after cover, which only removes rows from other columns.
	if n := s.nodes[column].count; n > 0 {
		rows := make([]int, 0, n)
		for r := s.nodes[column].down; r != column; r = s.nodes[r].down {
			rows = append(rows, r)
		}

		if s.mode == ModeAny && s.rng != nil {
			s.rng.Shuffle(len(rows), func(i, j int) {
				rows[i], rows[j] = rows[j], rows[i]
			})
		}

		for _, row := range rows {
			s.solution[k] = s.nodes[row].row

			// Eliminate every row competing for a constraint this row
			// satisfies.
			for c := s.nodes[row].right; c != row; c = s.nodes[c].right {
				s.cover(s.nodes[c].col)
			}

			if s.search(k + 1) {
				return true
			}

			// Undo this row's covers in reverse traversal order.
			for c := s.nodes[row].left; c != row; c = s.nodes[c].left {
				s.uncover(s.nodes[c].col)
			}
		}
	}

	// No candidate row satisfies this constraint from here. Backtrack.
	s.uncover(column)
	return false
}

// cover removes a column from the header list and detaches every row
// intersecting it from the other columns those rows belong to. The
// column's own nodes are bypassed, not destroyed, so uncover can splice
// everything back.
func (s *Solver) cover(column int) {
	l, r := s.nodes[column].left, s.nodes[column].right
	s.nodes[l].right = r
	s.nodes[r].left = l

	for row := s.nodes[column].down; row != column; row = s.nodes[row].down {
		for n := s.nodes[row].right; n != row; n = s.nodes[n].right {
			up, down := s.nodes[n].up, s.nodes[n].down
			s.nodes[up].down = down
			s.nodes[down].up = up
			s.nodes[s.nodes[n].col].count--
		}
	}
}

// uncover is the exact structural inverse of cover. It walks the column
// bottom-up and each row leftward, the opposite order from cover, so
// shared state touched by later covers is restored first.
func (s *Solver) uncover(column int) {
	for row := s.nodes[column].up; row != column; row = s.nodes[row].up {
		for n := s.nodes[row].left; n != row; n = s.nodes[n].left {
			up, down := s.nodes[n].up, s.nodes[n].down
			s.nodes[up].down = n
			s.nodes[down].up = n
			s.nodes[s.nodes[n].col].count++
		}
	}

	l, r := s.nodes[column].left, s.nodes[column].right
	s.nodes[l].right = column
	s.nodes[r].left = column
}
