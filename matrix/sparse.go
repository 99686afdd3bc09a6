// SPDX-License-Identifier: MIT

// Package matrix implements the sparse, append-only row matrix and
// the F4 quad-matrix construction and reduction of spec §4.9/§4.10.
package matrix

import (
	"sort"

	"github.com/go-groebner/groebner/field"
)

// Row describes one row's half-open span into the shared cols/scalars
// arenas: [Start, End).
type Row struct {
	Start, End int
}

// SparseMatrix is an append-only sparse matrix over a field: two
// parallel arenas (cols, scalars) hold every row's nonzero entries
// contiguously and in insertion order, and Row descriptors slice into
// them. Grounded on the donor pack's append-only adjacency
// construction, generalized from an adjacency map of small integers to
// a growable arena of field elements addressed by column index.
type SparseMatrix struct {
	cols    []uint32
	scalars []field.Elem
	rows    []Row
	ncols   int
}

// New constructs an empty SparseMatrix with zero columns; call
// EnsureAtLeastThisManyColumns before appending entries with column
// indices at or beyond the current count.
func New() *SparseMatrix {
	return &SparseMatrix{}
}

// NumRows returns the number of finalized rows.
func (m *SparseMatrix) NumRows() int { return len(m.rows) }

// NumCols returns the current column count.
func (m *SparseMatrix) NumCols() int { return m.ncols }

// EnsureAtLeastThisManyColumns grows the column count monotonically;
// it never shrinks it.
func (m *SparseMatrix) EnsureAtLeastThisManyColumns(n int) error {
	if n < 0 {
		return ErrBadShape
	}
	if uint64(n) > uint64(^uint32(0)) {
		return ErrColumnOverflow
	}
	if n > m.ncols {
		m.ncols = n
	}
	return nil
}

// AppendEntry appends one (col, scalar) pair to the row currently
// under construction. col must be within the current column count.
func (m *SparseMatrix) AppendEntry(col uint32, scalar field.Elem) error {
	if int(col) >= m.ncols {
		return ErrOutOfRange
	}
	m.cols = append(m.cols, col)
	m.scalars = append(m.scalars, scalar)
	return nil
}

// RowDone finalizes the row currently under construction (possibly
// empty) and starts the next one.
func (m *SparseMatrix) RowDone() {
	start := 0
	if len(m.rows) > 0 {
		start = m.rows[len(m.rows)-1].End
	}
	m.rows = append(m.rows, Row{Start: start, End: len(m.cols)})
}

// AppendRow copies row rowIdx of other onto the end of m as a new,
// already-finalized row. It returns ErrDimensionMismatch when the two
// matrices' column counts differ.
func (m *SparseMatrix) AppendRow(other *SparseMatrix, rowIdx int) error {
	if rowIdx < 0 || rowIdx >= len(other.rows) {
		return ErrOutOfRange
	}
	if other.ncols != m.ncols {
		return ErrDimensionMismatch
	}
	r := other.rows[rowIdx]
	start := len(m.cols)
	m.cols = append(m.cols, other.cols[r.Start:r.End]...)
	m.scalars = append(m.scalars, other.scalars[r.Start:r.End]...)
	m.rows = append(m.rows, Row{Start: start, End: len(m.cols)})
	return nil
}

// Row returns row i's span.
func (m *SparseMatrix) Row(i int) (Row, error) {
	if i < 0 || i >= len(m.rows) {
		return Row{}, ErrOutOfRange
	}
	return m.rows[i], nil
}

// Entries returns row i's column indices and scalars as slices into
// the shared arenas; callers must not retain them across further
// mutation of m.
func (m *SparseMatrix) Entries(i int) ([]uint32, []field.Elem, error) {
	r, err := m.Row(i)
	if err != nil {
		return nil, nil, err
	}
	return m.cols[r.Start:r.End], m.scalars[r.Start:r.End], nil
}

// ApplyColumnMap rewrites every stored column index through perm, in
// place, in O(entries).
func (m *SparseMatrix) ApplyColumnMap(perm []uint32) error {
	for i, c := range m.cols {
		if int(c) >= len(perm) {
			return ErrOutOfRange
		}
		m.cols[i] = perm[c]
	}
	return nil
}

// PivotColumn returns row i's smallest column index, i.e. its pivot
// under the convention that columns are sorted in descending monomial
// order (so the smallest column index is the row's lead term).
func (m *SparseMatrix) PivotColumn(i int) (uint32, bool) {
	r := m.rows[i]
	if r.Start == r.End {
		return 0, false
	}
	pivot := m.cols[r.Start]
	for _, c := range m.cols[r.Start+1 : r.End] {
		if c < pivot {
			pivot = c
		}
	}
	return pivot, true
}

// SortRowsByIncreasingPivots computes each row's pivot column, sorts
// rows by ascending pivot (empty rows last), and returns a fresh
// matrix with rows copied into that order. Grounded on the donor
// pack's pivot-oriented row-permutation bookkeeping for Gaussian
// elimination, generalized from dense float64 rows to sparse
// field.Elem rows.
func (m *SparseMatrix) SortRowsByIncreasingPivots() *SparseMatrix {
	type keyed struct {
		row   int
		pivot uint32
		empty bool
	}
	keys := make([]keyed, len(m.rows))
	for i := range m.rows {
		p, ok := m.PivotColumn(i)
		keys[i] = keyed{row: i, pivot: p, empty: !ok}
	}
	sort.SliceStable(keys, func(a, b int) bool {
		ka, kb := keys[a], keys[b]
		if ka.empty != kb.empty {
			return kb.empty
		}
		return ka.pivot < kb.pivot
	})

	out := New()
	out.ncols = m.ncols
	for _, k := range keys {
		r := m.rows[k.row]
		start := len(out.cols)
		out.cols = append(out.cols, m.cols[r.Start:r.End]...)
		out.scalars = append(out.scalars, m.scalars[r.Start:r.End]...)
		out.rows = append(out.rows, Row{Start: start, End: len(out.cols)})
	}
	return out
}
