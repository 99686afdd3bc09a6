// SPDX-License-Identifier: MIT

package matrix

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-groebner/groebner/basis"
	"github.com/go-groebner/groebner/divisor"
	"github.com/go-groebner/groebner/field"
	"github.com/go-groebner/groebner/monomial"
	"github.com/go-groebner/groebner/polynomial"
)

func newTestPool(n int) *monomial.Pool { return monomial.NewPool(n, monomial.Width32, 7) }

func TestSparseMatrixAppendAndRead(t *testing.T) {
	m := New()
	require.NoError(t, m.EnsureAtLeastThisManyColumns(3))

	require.NoError(t, m.AppendEntry(0, field.Elem(5)))
	require.NoError(t, m.AppendEntry(2, field.Elem(9)))
	m.RowDone()
	m.RowDone() // empty row

	require.Equal(t, 2, m.NumRows())
	cols, vals, err := m.Entries(0)
	require.NoError(t, err)
	require.Equal(t, []uint32{0, 2}, cols)
	require.Equal(t, []field.Elem{5, 9}, vals)

	cols, vals, err = m.Entries(1)
	require.NoError(t, err)
	require.Empty(t, cols)
	require.Empty(t, vals)
}

func TestSparseMatrixAppendEntryRejectsOutOfRangeColumn(t *testing.T) {
	m := New()
	require.NoError(t, m.EnsureAtLeastThisManyColumns(1))
	err := m.AppendEntry(5, field.Elem(1))
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestSparseMatrixPivotColumnIsSmallestIndex(t *testing.T) {
	m := New()
	require.NoError(t, m.EnsureAtLeastThisManyColumns(4))
	require.NoError(t, m.AppendEntry(3, field.Elem(1)))
	require.NoError(t, m.AppendEntry(1, field.Elem(1)))
	m.RowDone()

	pivot, ok := m.PivotColumn(0)
	require.True(t, ok)
	require.EqualValues(t, 1, pivot)
}

func TestSparseMatrixSortRowsByIncreasingPivots(t *testing.T) {
	m := New()
	require.NoError(t, m.EnsureAtLeastThisManyColumns(3))
	require.NoError(t, m.AppendEntry(2, field.Elem(1)))
	m.RowDone() // pivot 2
	require.NoError(t, m.AppendEntry(0, field.Elem(1)))
	m.RowDone() // pivot 0
	m.RowDone() // empty

	sorted := m.SortRowsByIncreasingPivots()
	require.Equal(t, 3, sorted.NumRows())
	p0, ok := sorted.PivotColumn(0)
	require.True(t, ok)
	require.EqualValues(t, 0, p0)
	p1, ok := sorted.PivotColumn(1)
	require.True(t, ok)
	require.EqualValues(t, 2, p1)
	_, ok = sorted.PivotColumn(2)
	require.False(t, ok)
}

func TestSparseMatrixAppendRowConcatenates(t *testing.T) {
	src := New()
	require.NoError(t, src.EnsureAtLeastThisManyColumns(2))
	require.NoError(t, src.AppendEntry(1, field.Elem(4)))
	src.RowDone()

	dst := New()
	require.NoError(t, dst.EnsureAtLeastThisManyColumns(2))
	require.NoError(t, dst.AppendRow(src, 0))

	cols, vals, err := dst.Entries(0)
	require.NoError(t, err)
	require.Equal(t, []uint32{1}, cols)
	require.Equal(t, []field.Elem{4}, vals)
}

// simplePoly adapts *polynomial.Poly to PolyLike for Builder.Build's
// wrap closure.
type simplePoly struct{ p *polynomial.Poly }

func (s simplePoly) Len() int                  { return len(s.p.Terms) }
func (s simplePoly) Coeff(i int) field.Elem     { return s.p.Terms[i].Coeff }
func (s simplePoly) Mono(i int) *monomial.Mono { return s.p.Terms[i].Mono }

// buildTestBasis inserts x^2-y and xy-z over vars x,y,z (x>y>z) into a
// fresh PolyBasis + DivList pair.
func buildTestBasis(t *testing.T, pool *monomial.Pool, ord monomial.Ordering, f field.Field) (*basis.PolyBasis, *divisor.DivList) {
	t.Helper()
	b := basis.New()
	lookup := divisor.NewDivList(false, func(genIdx int) int { return len(b.Get(genIdx).Terms) })

	mk := func(terms []polynomial.Term) *polynomial.Poly {
		p := polynomial.New(pool, ord, f)
		for _, tm := range terms {
			p.Append(tm.Coeff, tm.Mono)
		}
		require.NoError(t, p.Finalize())
		return p
	}
	mono := func(exps ...int32) *monomial.Mono {
		m := pool.Borrow()
		require.NoError(t, pool.SetExponents(m, exps, 0))
		return m
	}

	p1 := mk([]polynomial.Term{
		{Coeff: f.FromInt64(1), Mono: mono(2, 0, 0)},
		{Coeff: f.FromInt64(-1), Mono: mono(0, 1, 0)},
	})
	idx1 := b.Insert(p1)
	lead1, _ := p1.Lead()
	lookup.Insert(lead1.Mono, idx1)

	p2 := mk([]polynomial.Term{
		{Coeff: f.FromInt64(1), Mono: mono(1, 1, 0)},
		{Coeff: f.FromInt64(-1), Mono: mono(0, 0, 1)},
	})
	idx2 := b.Insert(p2)
	lead2, _ := p2.Lead()
	lookup.Insert(lead2.Mono, idx2)

	return b, lookup
}

func TestBuilderBuildProducesQuadMatrixForOverlappingLeads(t *testing.T) {
	pool := newTestPool(3)
	ord := monomial.Ordering{Term: monomial.GrevLex}
	f, err := field.New(101)
	require.NoError(t, err)

	b, lookup := buildTestBasis(t, pool, ord, f)

	bld := NewBuilder(pool, f, ord, b, lookup)
	wrap := func(genIdx int) PolyLike { return simplePoly{p: b.Get(genIdx)} }
	qm, err := bld.Build([]SPairSource{{I: 0, J: 1}}, wrap)
	require.NoError(t, err)
	require.NotNil(t, qm)
	require.Equal(t, len(qm.LeftCols), len(qm.PivotRowOfLeftCol))
	require.Equal(t, qm.TopLeft.NumRows(), len(qm.LeftCols))
	require.Equal(t, 2, qm.BottomLeft.NumRows())

	qm.Release(pool)
}

// TestF4ReducerReducePairComputesTheSPolynomial checks ReducePair
// against the hand-derived S-polynomial of x^2-y and xy-z:
// y*(x^2-y) - x*(xy-z) = x^2y - y^2 - x^2y + xz = xz - y^2, monic in
// GrevLex as y^2 - xz (y^2 outranks xz: both degree 2, and GrevLex
// breaks the tie by preferring the smaller exponent on the
// last-indexed variable z, where y^2 has 0 and xz has 1).
func TestF4ReducerReducePairComputesTheSPolynomial(t *testing.T) {
	pool := newTestPool(3)
	ord := monomial.Ordering{Term: monomial.GrevLex}
	f, err := field.New(101)
	require.NoError(t, err)

	b, lookup := buildTestBasis(t, pool, ord, f)
	bld := NewBuilder(pool, f, ord, b, lookup)
	wrap := func(genIdx int) PolyLike { return simplePoly{p: b.Get(genIdx)} }
	qm, err := bld.Build([]SPairSource{{I: 0, J: 1}}, wrap)
	require.NoError(t, err)
	require.Equal(t, 2, qm.BottomLeft.NumRows())

	r, err := NewF4Reducer(f, qm)
	require.NoError(t, err)

	row, err := r.ReducePair(0, 1)
	require.NoError(t, err)
	require.False(t, row.Zero)
	require.Equal(t, []uint32{0, 1}, row.Cols)
	require.Equal(t, []field.Elem{1, 100}, row.Coeffs)

	require.Equal(t, []int32{0, 2, 0}, qm.RightCols[row.Cols[0]].Exponents())
	require.Equal(t, []int32{1, 0, 1}, qm.RightCols[row.Cols[1]].Exponents())

	qm.Release(pool)
}

func TestF4ReducerReduceNormalizesAndEliminates(t *testing.T) {
	pool := newTestPool(3)
	ord := monomial.Ordering{Term: monomial.GrevLex}
	f, err := field.New(101)
	require.NoError(t, err)

	b, lookup := buildTestBasis(t, pool, ord, f)
	bld := NewBuilder(pool, f, ord, b, lookup)
	wrap := func(genIdx int) PolyLike { return simplePoly{p: b.Get(genIdx)} }
	qm, err := bld.Build([]SPairSource{{I: 0, J: 1}}, wrap)
	require.NoError(t, err)

	r, err := NewF4Reducer(f, qm)
	require.NoError(t, err)

	rows, err := r.Reduce(context.Background())
	require.NoError(t, err)
	require.Equal(t, qm.BottomLeft.NumRows(), len(rows))
	for _, row := range rows {
		if row.Zero {
			continue
		}
		require.Equal(t, field.Elem(1), row.Coeffs[0], "leading coefficient must be normalized to monic")
	}
}
