// SPDX-License-Identifier: MIT

package matrix

import (
	"sort"

	"github.com/go-groebner/groebner/basis"
	"github.com/go-groebner/groebner/divisor"
	"github.com/go-groebner/groebner/field"
	"github.com/go-groebner/groebner/monomial"
)

// SPairSource names one S-pair's two generator indices for Build.
type SPairSource struct {
	I, J int
}

// colBook assigns stable indices to monomials encountered while
// scattering rows, keyed by hash then linear scan for the exact match
// (a hash collision bucket, same collision-handling shape as
// reducer's PolyHashTable, generalized here from monomial-to-node-id
// to monomial-to-column-index).
type colBook struct {
	buckets map[uint64][]int
	monos   []*monomial.Mono
	isLead  []bool
	queued  []bool
}

func newColBook() *colBook { return &colBook{buckets: make(map[uint64][]int)} }

func (cb *colBook) getOrAdd(m *monomial.Mono) (int, bool) {
	for _, idx := range cb.buckets[m.Hash()] {
		if cb.monos[idx].Equal(m) {
			return idx, false
		}
	}
	idx := len(cb.monos)
	cb.monos = append(cb.monos, m)
	cb.isLead = append(cb.isLead, false)
	cb.queued = append(cb.queued, false)
	cb.buckets[m.Hash()] = append(cb.buckets[m.Hash()], idx)
	return idx, true
}

type rawEntry struct {
	col   int
	coeff field.Elem
}

// Builder assembles a QuadMatrix from a batch of S-pairs and the
// current basis, following the four phases of the matrix-based
// reduction step. Phase 2's frontier expansion is grounded on the
// donor pack's Dinic BFS level-graph construction: newly discovered
// monomials are queued and drained until none remain, mirroring
// Dinic's level-BFS draining a frontier until no more vertices are
// discovered.
type Builder struct {
	pool   *monomial.Pool
	f      field.Field
	ord    monomial.Ordering
	b      *basis.PolyBasis
	lookup divisor.Lookup
}

// NewBuilder constructs a Builder over the given basis and divisor
// lookup index.
func NewBuilder(pool *monomial.Pool, f field.Field, ord monomial.Ordering, b *basis.PolyBasis, lookup divisor.Lookup) *Builder {
	return &Builder{pool: pool, f: f, ord: ord, b: b, lookup: lookup}
}

// PolyLike mirrors reducer's unexported polyLike contract, exported
// here (rather than kept package-private the way reducer keeps its
// own copy) so that callers assembling S-pair batches — namely
// groebner's F4 dispatch — can hand Build an adapter over their own
// polynomial representation without matrix importing reducer or
// polynomial and creating a cycle.
type PolyLike interface {
	Len() int
	Coeff(i int) field.Elem
	Mono(i int) *monomial.Mono
}

// scatter multiplies every term of poly by multiplier, registers each
// resulting monomial's column in cb (enqueueing newly discovered ones
// into frontier), and returns the row as (column, coefficient) pairs.
func (bld *Builder) scatter(cb *colBook, frontier *[]int, multiplier *monomial.Mono, poly PolyLike) ([]rawEntry, error) {
	row := make([]rawEntry, 0, poly.Len())
	for i := 0; i < poly.Len(); i++ {
		m, err := bld.pool.Multiply(multiplier, poly.Mono(i))
		if err != nil {
			return nil, err
		}
		col, isNew := cb.getOrAdd(m)
		if !isNew {
			bld.pool.Release(m)
		}
		if !cb.queued[col] {
			cb.queued[col] = true
			*frontier = append(*frontier, col)
		}
		row = append(row, rawEntry{col: col, coeff: poly.Coeff(i)})
	}
	return row, nil
}

// Build runs the four construction phases over pairs, returning the
// assembled QuadMatrix.
func (bld *Builder) Build(pairs []SPairSource, wrap func(genIdx int) PolyLike) (*QuadMatrix, error) {
	cb := newColBook()
	var frontier []int

	type topRow struct {
		leadCol int
		entries []rawEntry
	}
	var topRows []topRow
	var bottomRows [][]rawEntry

	// Phase 1: two rows per S-pair.
	for _, pr := range pairs {
		li, _ := bld.b.Get(pr.I).Lead()
		lj, _ := bld.b.Get(pr.J).Lead()
		u, v, err := bld.pool.Colons(li.Mono, lj.Mono)
		if err != nil {
			return nil, err
		}
		rowI, err := bld.scatter(cb, &frontier, v, wrap(pr.I))
		if err != nil {
			return nil, err
		}
		rowJ, err := bld.scatter(cb, &frontier, u, wrap(pr.J))
		if err != nil {
			return nil, err
		}
		bld.pool.Release(u)
		bld.pool.Release(v)
		bottomRows = append(bottomRows, rowI, rowJ)
	}

	// Phase 2: frontier expansion via divisor lookup, draining the
	// queue exactly like a level-BFS until no new monomial appears.
	for len(frontier) > 0 {
		col := frontier[0]
		frontier = frontier[1:]
		if cb.isLead[col] {
			continue
		}
		m := cb.monos[col]
		entry, ok := bld.lookup.FindAnyDivisor(m)
		if !ok {
			continue
		}
		multiplier, err := bld.pool.Divide(entry.Mono, m)
		if err != nil {
			return nil, err
		}
		row, err := bld.scatter(cb, &frontier, multiplier, wrap(entry.GenIdx))
		bld.pool.Release(multiplier)
		if err != nil {
			return nil, err
		}
		cb.isLead[col] = true
		topRows = append(topRows, topRow{leadCol: col, entries: row})
	}

	// Phase 3/4: split columns into LEFT (isLead) and RIGHT, sorted
	// descending by monomial order; build the permutation from raw
	// colBook index to (side, final index).
	var leftIdx, rightIdx []int
	for i := range cb.monos {
		if cb.isLead[i] {
			leftIdx = append(leftIdx, i)
		} else {
			rightIdx = append(rightIdx, i)
		}
	}
	sortDescending(bld.ord, cb.monos, leftIdx)
	sortDescending(bld.ord, cb.monos, rightIdx)

	leftPos := make(map[int]int, len(leftIdx))
	leftCols := make([]*monomial.Mono, len(leftIdx))
	for pos, orig := range leftIdx {
		leftPos[orig] = pos
		leftCols[pos] = cb.monos[orig]
	}
	rightPos := make(map[int]int, len(rightIdx))
	rightCols := make([]*monomial.Mono, len(rightIdx))
	for pos, orig := range rightIdx {
		rightPos[orig] = pos
		rightCols[pos] = cb.monos[orig]
	}

	topLeft := New()
	topRight := New()
	bottomLeft := New()
	bottomRight := New()
	if err := topLeft.EnsureAtLeastThisManyColumns(len(leftCols)); err != nil {
		return nil, err
	}
	if err := bottomLeft.EnsureAtLeastThisManyColumns(len(leftCols)); err != nil {
		return nil, err
	}
	if err := topRight.EnsureAtLeastThisManyColumns(len(rightCols)); err != nil {
		return nil, err
	}
	if err := bottomRight.EnsureAtLeastThisManyColumns(len(rightCols)); err != nil {
		return nil, err
	}

	pivotRowOfLeftCol := make([]int, len(leftCols))

	writeRow := func(left, right *SparseMatrix, entries []rawEntry) error {
		for _, e := range entries {
			if pos, ok := leftPos[e.col]; ok {
				if err := left.AppendEntry(uint32(pos), e.coeff); err != nil {
					return err
				}
			} else {
				pos := rightPos[e.col]
				if err := right.AppendEntry(uint32(pos), e.coeff); err != nil {
					return err
				}
			}
		}
		left.RowDone()
		right.RowDone()
		return nil
	}

	for rowIdx, tr := range topRows {
		if err := writeRow(topLeft, topRight, tr.entries); err != nil {
			return nil, err
		}
		pivotRowOfLeftCol[leftPos[tr.leadCol]] = rowIdx
	}
	for _, br := range bottomRows {
		if err := writeRow(bottomLeft, bottomRight, br); err != nil {
			return nil, err
		}
	}

	return &QuadMatrix{
		TopLeft: topLeft, TopRight: topRight,
		BottomLeft: bottomLeft, BottomRight: bottomRight,
		LeftCols: leftCols, RightCols: rightCols,
		PivotRowOfLeftCol: pivotRowOfLeftCol,
	}, nil
}

// sortDescending reorders idx (indices into monos) so that
// monos[idx[0]] is the greatest under ord, descending.
func sortDescending(ord monomial.Ordering, monos []*monomial.Mono, idx []int) {
	sort.SliceStable(idx, func(a, b int) bool {
		return ord.Compare(monos[idx[a]], monos[idx[b]]) == monomial.GT
	})
}
