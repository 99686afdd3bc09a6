// SPDX-License-Identifier: MIT

package basis

import (
	"github.com/go-groebner/groebner/monomial"
	"github.com/go-groebner/groebner/polynomial"
)

// ratio packs a generator's signature-to-lead quotient as a signed
// exponent difference: diff[i] = sig.Exponent(i) - lead.Exponent(i).
// Comparing ratios is comparing these signed vectors under the same
// term order used for monomials, generalized to allow negative
// entries (spec §7).
type ratio struct {
	diff      []int32
	degree    int32
	component int32
}

func makeRatio(sig, lead *monomial.Mono) ratio {
	n := sig.N()
	d := make([]int32, n)
	var deg int32
	for i := 0; i < n; i++ {
		d[i] = sig.Exponent(i) - lead.Exponent(i)
		deg += d[i]
	}
	return ratio{diff: d, degree: deg, component: sig.Component()}
}

// compareRatio orders two ratios the way Ordering.Compare orders two
// monomials, but over signed exponent vectors.
func compareRatio(term monomial.Order, a, b ratio) monomial.Sign {
	switch term {
	case monomial.Lex:
		for i := range a.diff {
			if a.diff[i] != b.diff[i] {
				return signOf(a.diff[i] - b.diff[i])
			}
		}
	case monomial.GrevLex:
		if a.degree != b.degree {
			return signOf(a.degree - b.degree)
		}
		for i := len(a.diff) - 1; i >= 0; i-- {
			if a.diff[i] != b.diff[i] {
				return signOf(b.diff[i] - a.diff[i])
			}
		}
	}
	return signOf(a.component - b.component)
}

func signOf(v int32) monomial.Sign {
	switch {
	case v < 0:
		return monomial.LT
	case v > 0:
		return monomial.GT
	default:
		return monomial.EQ
	}
}

// SigPolyBasis extends PolyBasis with a module-monomial signature per
// generator (spec §7). ratios is kept ready for comparison; sortedIdx
// is a permutation of generator indices kept sorted by ascending
// ratio, adapted from the donor pack's matrix pivot-permutation
// machinery (sortRowsByIncreasingPivots) repurposed from sorting rows
// by pivot column to sorting generators by signature ratio.
type SigPolyBasis struct {
	*PolyBasis

	term      monomial.Order
	sigs      []*monomial.Mono
	ratios    []ratio
	sortedIdx []int
}

// NewSig constructs an empty SigPolyBasis using term for ratio
// comparisons.
func NewSig(term monomial.Order) *SigPolyBasis {
	return &SigPolyBasis{PolyBasis: New(), term: term}
}

// InsertSig appends p with signature sig and returns its new index. In
// gb_debug builds this panics with ErrDuplicateSignature if sig duplicates an
// existing generator's signature (spec §7's uniqueness invariant).
func (b *SigPolyBasis) InsertSig(p *polynomial.Poly, sig *monomial.Mono) int {
	assertUniqueSignature(b, sig)
	idx := b.Insert(p)
	b.sigs = append(b.sigs, sig)
	lead, ok := p.Lead()
	var r ratio
	if ok {
		r = makeRatio(sig, lead.Mono)
	} else {
		r = makeRatio(sig, sig) // zero polynomial: ratio is the signature itself
	}
	b.ratios = append(b.ratios, r)
	b.insertSorted(idx, r)
	return idx
}

func (b *SigPolyBasis) insertSorted(idx int, r ratio) {
	pos := 0
	for pos < len(b.sortedIdx) && compareRatio(b.term, b.ratios[b.sortedIdx[pos]], r) < 0 {
		pos++
	}
	b.sortedIdx = append(b.sortedIdx, 0)
	copy(b.sortedIdx[pos+1:], b.sortedIdx[pos:])
	b.sortedIdx[pos] = idx
}

// Signature returns generator i's module monomial signature.
func (b *SigPolyBasis) Signature(i int) *monomial.Mono { return b.sigs[i] }

// RatioCompare compares generators i and j by their signature/lead
// ratio, returning a monomial.Sign.
func (b *SigPolyBasis) RatioCompare(i, j int) monomial.Sign {
	return compareRatio(b.term, b.ratios[i], b.ratios[j])
}

// SortedByRatio calls visit for every generator index in ascending
// ratio order, stopping early if visit returns false.
func (b *SigPolyBasis) SortedByRatio(visit func(idx int) bool) {
	for _, idx := range b.sortedIdx {
		if !visit(idx) {
			return
		}
	}
}
