// SPDX-License-Identifier: MIT

// Package polynomial implements sparse ordered polynomials over a
// field.Field, built from monomial.Mono terms drawn from a single
// monomial.Pool. A Poly exclusively owns its monomials: cloning
// deep-copies them, and Free returns every term's monomial to the pool.
package polynomial

import (
	"github.com/go-groebner/groebner/field"
	"github.com/go-groebner/groebner/internal/errs"
	"github.com/go-groebner/groebner/monomial"
)

// Term is one (coefficient, monomial) pair of a Poly.
type Term struct {
	Coeff field.Elem
	Mono  *monomial.Mono
}

// Poly is a sparse, ordered polynomial: Terms is strictly decreasing
// under Ordering, with no zero coefficients. The empty slice is the
// zero polynomial.
type Poly struct {
	Terms []Term
	pool  *monomial.Pool
	ord   monomial.Ordering
	f     field.Field
}

// New returns an empty (zero) polynomial bound to pool, ord, and f.
// Terms are added with Append and the polynomial is sealed with
// Finalize before use.
func New(pool *monomial.Pool, ord monomial.Ordering, f field.Field) *Poly {
	return &Poly{pool: pool, ord: ord, f: f}
}

// Append adds a term without checking order; call Finalize once all
// terms are appended.
func (p *Poly) Append(coeff field.Elem, m *monomial.Mono) {
	p.Terms = append(p.Terms, Term{Coeff: coeff, Mono: m})
}

// Finalize asserts the invariant required by spec §4.2: terms strictly
// decreasing in p's ordering, no zero coefficients. It returns an
// errs.KindInput error describing the first violation.
func (p *Poly) Finalize() error {
	for i, t := range p.Terms {
		if p.f.IsZero(t.Coeff) {
			return errs.Newf(errs.KindInput, "polynomial: zero coefficient at term %d", i)
		}
		if i > 0 {
			prev := p.Terms[i-1].Mono
			if p.ord.Compare(prev, t.Mono) != monomial.GT {
				return errs.Newf(errs.KindInput, "polynomial: terms not strictly decreasing at %d", i)
			}
			if prev.Component() != t.Mono.Component() {
				return errs.Newf(errs.KindInput, "polynomial: component tag mismatch at term %d", i)
			}
		}
	}
	return nil
}

// IsZero reports whether p has no terms.
func (p *Poly) IsZero() bool { return len(p.Terms) == 0 }

// Lead returns the lead term (the first, greatest under Ordering) and
// whether p is nonzero.
func (p *Poly) Lead() (Term, bool) {
	if len(p.Terms) == 0 {
		return Term{}, false
	}
	return p.Terms[0], true
}

// Component returns the module component tag shared by every term, or
// 0 for the zero polynomial.
func (p *Poly) Component() int32 {
	if len(p.Terms) == 0 {
		return 0
	}
	return p.Terms[0].Mono.Component()
}

// Normalize divides every coefficient by the lead coefficient so the
// lead becomes monic (coefficient 1). No-op on the zero polynomial.
func (p *Poly) Normalize() error {
	lead, ok := p.Lead()
	if !ok {
		return nil
	}
	inv, err := p.f.Inv(lead.Coeff)
	if err != nil {
		return err
	}
	for i := range p.Terms {
		p.Terms[i].Coeff = p.f.Mul(p.Terms[i].Coeff, inv)
	}
	return nil
}

// Clone deep-copies p, borrowing fresh monomials from pool for every
// term (Poly exclusively owns its monomials per spec §3).
func (p *Poly) Clone() *Poly {
	q := &Poly{pool: p.pool, ord: p.ord, f: p.f, Terms: make([]Term, len(p.Terms))}
	for i, t := range p.Terms {
		m := p.pool.Borrow()
		_ = p.pool.SetExponents(m, t.Mono.Exponents(), t.Mono.Component())
		q.Terms[i] = Term{Coeff: t.Coeff, Mono: m}
	}
	return q
}

// Free releases every term's monomial back to the owning pool. p must
// not be used afterward.
func (p *Poly) Free() {
	for _, t := range p.Terms {
		p.pool.Release(t.Mono)
	}
	p.Terms = nil
}

// Equal reports whether p and q have identical terms in order.
func (p *Poly) Equal(q *Poly) bool {
	if len(p.Terms) != len(q.Terms) {
		return false
	}
	for i := range p.Terms {
		if p.Terms[i].Coeff != q.Terms[i].Coeff || !p.Terms[i].Mono.Equal(q.Terms[i].Mono) {
			return false
		}
	}
	return true
}

// Add returns p+q as a freshly allocated polynomial, merging both
// operands' strictly-decreasing term lists the way the reducer package
// merges S-pair contributions (spec §4.3's "each distinct monomial
// exactly once, coefficient equal to the sum of contributions"), just
// specialized here to two known-sorted inputs instead of a priority
// queue of arbitrarily many. p and q must share pool, ord, and f.
func (p *Poly) Add(q *Poly) (*Poly, error) {
	out := New(p.pool, p.ord, p.f)
	i, j := 0, 0
	clone := func(m *monomial.Mono) (*monomial.Mono, error) {
		c := p.pool.Borrow()
		if err := p.pool.SetExponents(c, m.Exponents(), m.Component()); err != nil {
			return nil, err
		}
		return c, nil
	}
	for i < len(p.Terms) && j < len(q.Terms) {
		pt, qt := p.Terms[i], q.Terms[j]
		switch p.ord.Compare(pt.Mono, qt.Mono) {
		case monomial.GT:
			c, err := clone(pt.Mono)
			if err != nil {
				return nil, err
			}
			out.Append(pt.Coeff, c)
			i++
		case monomial.LT:
			c, err := clone(qt.Mono)
			if err != nil {
				return nil, err
			}
			out.Append(qt.Coeff, c)
			j++
		default:
			sum := p.f.Add(pt.Coeff, qt.Coeff)
			if !p.f.IsZero(sum) {
				c, err := clone(pt.Mono)
				if err != nil {
					return nil, err
				}
				out.Append(sum, c)
			}
			i++
			j++
		}
	}
	for ; i < len(p.Terms); i++ {
		c, err := clone(p.Terms[i].Mono)
		if err != nil {
			return nil, err
		}
		out.Append(p.Terms[i].Coeff, c)
	}
	for ; j < len(q.Terms); j++ {
		c, err := clone(q.Terms[j].Mono)
		if err != nil {
			return nil, err
		}
		out.Append(q.Terms[j].Coeff, c)
	}
	if err := out.Finalize(); err != nil {
		return nil, err
	}
	return out, nil
}

// ScalarMul multiplies every coefficient of p by c in place.
func (p *Poly) ScalarMul(c field.Elem) {
	for i := range p.Terms {
		p.Terms[i].Coeff = p.f.Mul(p.Terms[i].Coeff, c)
	}
}

// Ordering returns the ordering p's terms are sorted under.
func (p *Poly) Ordering() monomial.Ordering { return p.ord }

// Field returns p's coefficient field.
func (p *Poly) Field() field.Field { return p.f }

// Pool returns the monomial pool p's monomials were borrowed from.
func (p *Poly) Pool() *monomial.Pool { return p.pool }
