// SPDX-License-Identifier: MIT

package groebner

import (
	"github.com/go-groebner/groebner/basis"
	"github.com/go-groebner/groebner/divisor"
	"github.com/go-groebner/groebner/field"
	"github.com/go-groebner/groebner/matrix"
	"github.com/go-groebner/groebner/monomial"
	"github.com/go-groebner/groebner/polynomial"
)

// f4ReduceGroup computes the fully tail-reduced S-polynomial of every
// pair in pairs via a single shared QuadMatrix, implementing spec
// §4.8/§4.9's SPairGroupSize batching: pairs sharing a common sort key
// are built into one matrix (Builder.Build's Phase 2 frontier
// expansion discovers and folds in every reachable basis divisor once
// for the whole batch, not once per pair), then each pair's row is
// extracted independently via F4Reducer.ReducePair. This replaces
// classicReduceSPair's reducer.Queue construction and
// classicTailReduce's iterative divisor lookup for every pair in the
// batch at once. Results are returned in the same order as pairs.
func f4ReduceGroup(pool *monomial.Pool, f field.Field, ord monomial.Ordering, b *basis.PolyBasis, lookup divisor.Lookup, pairs []matrix.SPairSource) ([]*polynomial.Poly, error) {
	bld := matrix.NewBuilder(pool, f, ord, b, lookup)
	wrap := func(genIdx int) matrix.PolyLike {
		return scaledPoly{p: b.Get(genIdx), f: f, scale: f.One()}
	}
	qm, err := bld.Build(pairs, wrap)
	if err != nil {
		return nil, err
	}
	defer qm.Release(pool)

	r, err := matrix.NewF4Reducer(f, qm)
	if err != nil {
		return nil, err
	}

	out := make([]*polynomial.Poly, len(pairs))
	for k := range pairs {
		row, err := r.ReducePair(2*k, 2*k+1)
		if err != nil {
			return nil, err
		}
		p := polynomial.New(pool, ord, f)
		for idx, col := range row.Cols {
			m := qm.RightCols[col]
			clone := pool.Borrow()
			if err := pool.SetExponents(clone, m.Exponents(), m.Component()); err != nil {
				return nil, err
			}
			p.Append(row.Coeffs[idx], clone)
		}
		if err := p.Finalize(); err != nil {
			return nil, err
		}
		out[k] = p
	}
	return out, nil
}
