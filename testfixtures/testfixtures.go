// SPDX-License-Identifier: MIT

// Package testfixtures builds small, deterministic polynomial systems
// for exercising the classical and signature-based Gröbner basis
// algorithms end to end, adapted from the donor pack's builder
// package: a uniform Constructor closure type plus one factory
// function per fixture, composed by a single orchestrator.
package testfixtures

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/go-groebner/groebner/field"
	"github.com/go-groebner/groebner/monomial"
	"github.com/go-groebner/groebner/polynomial"
)

// RawTerm is an unordered (coefficient, exponent vector) pair; System
// constructors describe polynomials this way and let buildPoly sort
// and finalize them, so fixture code never has to hand-order terms.
type RawTerm struct {
	Coeff int64
	Exps  []int32
}

// System populates and returns a generator set for a fixed
// monomial.Pool/Ordering/Field triple. Implementations MUST:
//   - Only use exponents within the pool's arity and width.
//   - Return sentinel-wrapped errors, never panic.
type System func(pool *monomial.Pool, ord monomial.Ordering, f field.Field) ([]*polynomial.Poly, error)

// ErrArityMismatch reports a fixture built against a pool of the wrong
// arity for that fixture.
var ErrArityMismatch = fmt.Errorf("testfixtures: pool arity does not match fixture requirement")

// Build runs sys against pool/ord/f, wrapping any error with the
// fixture's context, mirroring the donor pack's BuildGraph wrapping
// convention.
func Build(pool *monomial.Pool, ord monomial.Ordering, f field.Field, sys System) ([]*polynomial.Poly, error) {
	gens, err := sys(pool, ord, f)
	if err != nil {
		return nil, fmt.Errorf("testfixtures.Build: %w", err)
	}
	return gens, nil
}

// buildPoly sorts terms in strictly decreasing order under ord,
// borrows a monomial per term from pool, and returns the finalized
// polynomial.
func buildPoly(pool *monomial.Pool, ord monomial.Ordering, f field.Field, arity int, terms []RawTerm) (*polynomial.Poly, error) {
	sorted := make([]RawTerm, len(terms))
	copy(sorted, terms)

	monos := make([]*monomial.Mono, len(sorted))
	for i, t := range sorted {
		if len(t.Exps) != arity {
			return nil, ErrArityMismatch
		}
		m := pool.Borrow()
		if err := pool.SetExponents(m, t.Exps, 0); err != nil {
			return nil, err
		}
		monos[i] = m
	}

	idx := make([]int, len(sorted))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return ord.Compare(monos[idx[a]], monos[idx[b]]) == monomial.GT
	})

	p := polynomial.New(pool, ord, f)
	for _, i := range idx {
		p.Append(f.FromInt64(sorted[i].Coeff), monos[i])
	}
	if err := p.Finalize(); err != nil {
		return nil, err
	}
	return p, nil
}

// e returns an exponent vector of width n with a 1 at position i (and
// 0 elsewhere), the standard basis vector used to spell out a single
// variable's monomial.
func e(n, i int) []int32 {
	v := make([]int32, n)
	v[i] = 1
	return v
}

// zero returns the identity exponent vector of width n.
func zero(n int) []int32 { return make([]int32, n) }

// Scenario1 is `{a-b, b-c}` over vars a,b,c (indices 0,1,2), char 101.
func Scenario1(pool *monomial.Pool, ord monomial.Ordering, f field.Field) ([]*polynomial.Poly, error) {
	const n = 3
	p1, err := buildPoly(pool, ord, f, n, []RawTerm{{1, e(n, 0)}, {-1, e(n, 1)}})
	if err != nil {
		return nil, err
	}
	p2, err := buildPoly(pool, ord, f, n, []RawTerm{{1, e(n, 1)}, {-1, e(n, 2)}})
	if err != nil {
		return nil, err
	}
	return []*polynomial.Poly{p1, p2}, nil
}

// Scenario2 is `{ab - c, a - b}` over vars a,b,c, char 101.
func Scenario2(pool *monomial.Pool, ord monomial.Ordering, f field.Field) ([]*polynomial.Poly, error) {
	const n = 3
	ab := []int32{1, 1, 0}
	p1, err := buildPoly(pool, ord, f, n, []RawTerm{{1, ab}, {-1, e(n, 2)}})
	if err != nil {
		return nil, err
	}
	p2, err := buildPoly(pool, ord, f, n, []RawTerm{{1, e(n, 0)}, {-1, e(n, 1)}})
	if err != nil {
		return nil, err
	}
	return []*polynomial.Poly{p1, p2}, nil
}

// Scenario3 is `{x^2-y, xy-z, yz-x}` over vars x,y,z (x>y>z), char 101.
func Scenario3(pool *monomial.Pool, ord monomial.Ordering, f field.Field) ([]*polynomial.Poly, error) {
	const n = 3
	x2 := []int32{2, 0, 0}
	xy := []int32{1, 1, 0}
	yz := []int32{0, 1, 1}
	p1, err := buildPoly(pool, ord, f, n, []RawTerm{{1, x2}, {-1, e(n, 1)}})
	if err != nil {
		return nil, err
	}
	p2, err := buildPoly(pool, ord, f, n, []RawTerm{{1, xy}, {-1, e(n, 2)}})
	if err != nil {
		return nil, err
	}
	p3, err := buildPoly(pool, ord, f, n, []RawTerm{{1, yz}, {-1, e(n, 0)}})
	if err != nil {
		return nil, err
	}
	return []*polynomial.Poly{p1, p2, p3}, nil
}

// Scenario4 is `{a^2+b^2+c^2-1, a+b+c-1}` over vars a,b,c, char 32003.
func Scenario4(pool *monomial.Pool, ord monomial.Ordering, f field.Field) ([]*polynomial.Poly, error) {
	const n = 3
	a2 := []int32{2, 0, 0}
	b2 := []int32{0, 2, 0}
	c2 := []int32{0, 0, 2}
	p1, err := buildPoly(pool, ord, f, n, []RawTerm{{1, a2}, {1, b2}, {1, c2}, {-1, zero(n)}})
	if err != nil {
		return nil, err
	}
	p2, err := buildPoly(pool, ord, f, n, []RawTerm{{1, e(n, 0)}, {1, e(n, 1)}, {1, e(n, 2)}, {-1, zero(n)}})
	if err != nil {
		return nil, err
	}
	return []*polynomial.Poly{p1, p2}, nil
}

// Scenario5 is `{x_i^2 - x_i : i=1..4}`, the boolean-ring generators
// that already form a reduced basis, char 101, ComponentOrder = None.
func Scenario5(pool *monomial.Pool, ord monomial.Ordering, f field.Field) ([]*polynomial.Poly, error) {
	const n = 4
	var gens []*polynomial.Poly
	for i := 0; i < n; i++ {
		sq := make([]int32, n)
		sq[i] = 2
		p, err := buildPoly(pool, ord, f, n, []RawTerm{{1, sq}, {-1, e(n, i)}})
		if err != nil {
			return nil, err
		}
		gens = append(gens, p)
	}
	return gens, nil
}

// Scenario6 is `{a^2, a}`, exercising autoTopReduce (a^2 is a proper
// multiple of a's lead and must be retired), char 101.
func Scenario6(pool *monomial.Pool, ord monomial.Ordering, f field.Field) ([]*polynomial.Poly, error) {
	const n = 3
	a2 := []int32{2, 0, 0}
	p1, err := buildPoly(pool, ord, f, n, []RawTerm{{1, a2}})
	if err != nil {
		return nil, err
	}
	p2, err := buildPoly(pool, ord, f, n, []RawTerm{{1, e(n, 0)}})
	if err != nil {
		return nil, err
	}
	return []*polynomial.Poly{p1, p2}, nil
}

// RandomSparse returns a System sampling nGens random polynomials over
// an arity-variable pool: each generator gets a random number of terms
// between 1 and maxTerms (inclusive), each term a random exponent
// vector with per-variable degree in [0,maxDegree] and a uniformly
// random nonzero coefficient, deduplicated by exponent vector.
// Adapted from the donor pack's RandomSparse graph constructor: a
// single seeded math/rand source drives every Bernoulli/uniform draw
// in a fixed, documented trial order, so the same seed always yields
// the same system.
func RandomSparse(arity, nGens, maxTerms, maxDegree int, seed int64) System {
	return func(pool *monomial.Pool, ord monomial.Ordering, f field.Field) ([]*polynomial.Poly, error) {
		if arity != pool.Arity() {
			return nil, ErrArityMismatch
		}
		rng := rand.New(rand.NewSource(seed))
		gens := make([]*polynomial.Poly, 0, nGens)
		for g := 0; g < nGens; g++ {
			nTerms := 1 + rng.Intn(maxTerms)
			seen := make(map[string]bool, nTerms)
			var terms []RawTerm
			for t := 0; t < nTerms; t++ {
				exps := make([]int32, arity)
				for v := 0; v < arity; v++ {
					exps[v] = int32(rng.Intn(maxDegree + 1))
				}
				key := fmt.Sprint(exps)
				if seen[key] {
					continue
				}
				seen[key] = true
				coeff := int64(1 + rng.Intn(int(f.P())-1))
				terms = append(terms, RawTerm{Coeff: coeff, Exps: exps})
			}
			if len(terms) == 0 {
				continue
			}
			p, err := buildPoly(pool, ord, f, arity, terms)
			if err != nil {
				return nil, err
			}
			gens = append(gens, p)
		}
		return gens, nil
	}
}
