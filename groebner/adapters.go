// SPDX-License-Identifier: MIT

package groebner

import (
	"github.com/go-groebner/groebner/basis"
	"github.com/go-groebner/groebner/divisor"
	"github.com/go-groebner/groebner/field"
	"github.com/go-groebner/groebner/monomial"
	"github.com/go-groebner/groebner/polynomial"
	"github.com/go-groebner/groebner/reducer"
)

// generatorSource is the subset of *basis.PolyBasis/*basis.SigPolyBasis
// newLookup needs to build a termCount closure.
type generatorSource interface {
	Get(i int) *polynomial.Poly
}

var _ generatorSource = (*basis.PolyBasis)(nil)
var _ generatorSource = (*basis.SigPolyBasis)(nil)

// scaledPoly presents p's terms multiplied through by a fixed field
// scalar without copying the polynomial, satisfying package reducer's
// unexported polyLike contract structurally.
type scaledPoly struct {
	p     *polynomial.Poly
	f     field.Field
	scale field.Elem
}

func (s scaledPoly) Len() int                  { return len(s.p.Terms) }
func (s scaledPoly) Coeff(i int) field.Elem    { return s.f.Mul(s.scale, s.p.Terms[i].Coeff) }
func (s scaledPoly) Mono(i int) *monomial.Mono { return s.p.Terms[i].Mono }

// newLookup builds the divisor index cfg.DivisorLookup names. b
// supplies the termCount closure DivList's preferSparse tie-break
// reads from (spec §4.3). KdTree's FindAnyDivisor returns the first
// mask-surviving candidate its tree layout reaches and has no
// tie-break hook, so PreferSparseReducers has no effect when
// DivisorLookupKdTree is selected.
func newLookup(cfg Config, arity int, b generatorSource) divisor.Lookup {
	switch cfg.DivisorLookup {
	case DivisorLookupKdTree:
		return divisor.NewKdTree(arity)
	default:
		termCount := func(genIdx int) int { return len(b.Get(genIdx).Terms) }
		return divisor.NewDivList(cfg.PreferSparseReducers, termCount)
	}
}

func queueKindFor(k SPairQueueKind) reducer.QueueKind {
	switch k {
	case SPairQueueTournament:
		return reducer.Tournament
	case SPairQueueGeobucket:
		return reducer.Geobucket
	case SPairQueuePairing:
		return reducer.Pairing
	default:
		return reducer.Heap
	}
}
