// SPDX-License-Identifier: MIT

package spair

import (
	"github.com/go-groebner/groebner/basis"
	"github.com/go-groebner/groebner/monomial"
)

// SignatureCriterion discards a pair whose signature already lies in
// the syzygy module: sig is a multiple of some previously recorded
// syzygy's module monomial (spec §4.7).
func SignatureCriterion(sig *monomial.Mono, syzygies []*monomial.Mono) bool {
	for _, s := range syzygies {
		if monomial.Divides(s, sig) {
			return true
		}
	}
	return false
}

// SingularCriterion discards a pair whose signature equals an
// existing active generator's signature unless the candidate's lead
// is strictly smaller than that generator's, per spec §4.7's
// "keeping only the smaller lead." exclude names the pair's own two
// generators, which are skipped: a pair's multiplier is often the
// identity, making its derived signature equal one of its two parent
// generators' signatures by construction, which is not a genuine
// singular collision with a distinct basis element.
func SingularCriterion(b *basis.SigPolyBasis, ord monomial.Ordering, sig, candidateLead *monomial.Mono, exclude ...int) bool {
	skip := func(idx int) bool {
		for _, e := range exclude {
			if idx == e {
				return true
			}
		}
		return false
	}
	for i := 0; i < b.Len(); i++ {
		if b.IsRetired(i) || skip(i) {
			continue
		}
		if !b.Signature(i).Equal(sig) {
			continue
		}
		lead, ok := b.Get(i).Lead()
		if !ok {
			continue
		}
		if ord.Compare(candidateLead, lead.Mono) != monomial.LT {
			return true
		}
	}
	return false
}

// LowBaseDivisor searches, in ascending signature-ratio order, for the
// first active generator whose signature divides sig, inspecting at
// most maxDivisors candidates. Adapted from a bounded best-known-bound
// search idiom in the donor pack (an early-exit scan capped at a fixed
// candidate budget), generalized here from a numeric bound to a
// ratio-ordered cutoff. exclude names the pair's own two generators,
// skipped because a signature trivially divides itself, which is not a
// genuine base-divisor relationship with a distinct basis element.
func LowBaseDivisor(b *basis.SigPolyBasis, sig *monomial.Mono, maxDivisors int, exclude ...int) (int, bool) {
	skip := func(idx int) bool {
		for _, e := range exclude {
			if idx == e {
				return true
			}
		}
		return false
	}
	found := -1
	checked := 0
	b.SortedByRatio(func(idx int) bool {
		if checked >= maxDivisors {
			return false
		}
		checked++
		if !b.IsRetired(idx) && !skip(idx) && monomial.Divides(b.Signature(idx), sig) {
			found = idx
			return false
		}
		return true
	})
	return found, found >= 0
}

// HighBaseDivisor finds the unique divisor of sig with maximal
// signature ratio among active generators, ties broken by smallest
// index, inspecting at most maxDivisors matches from the high end of
// ratio order. exclude has the same self-collision-avoidance meaning
// as in LowBaseDivisor.
func HighBaseDivisor(b *basis.SigPolyBasis, sig *monomial.Mono, maxDivisors int, exclude ...int) (int, bool) {
	skip := func(idx int) bool {
		for _, e := range exclude {
			if idx == e {
				return true
			}
		}
		return false
	}
	var matches []int
	b.SortedByRatio(func(idx int) bool {
		if !b.IsRetired(idx) && !skip(idx) && monomial.Divides(b.Signature(idx), sig) {
			matches = append(matches, idx)
		}
		return true
	})
	if len(matches) == 0 {
		return -1, false
	}
	limit := maxDivisors
	if limit > len(matches) {
		limit = len(matches)
	}
	window := matches[len(matches)-limit:]
	best := window[len(window)-1]
	for _, idx := range window {
		if idx < best && b.RatioCompare(idx, best) == monomial.EQ {
			best = idx
		}
	}
	return best, true
}

// NonRegularity reports whether S-pair (i,j) is non-regular: its two
// candidate module-monomial signatures u*sig(i) and v*sig(j) compare
// equal under ord, so the pair carries no useful signature information
// and is discarded (spec §4.7).
func NonRegularity(pool *monomial.Pool, ord monomial.Ordering, b *basis.SigPolyBasis, i, j int, u, v *monomial.Mono) (bool, error) {
	sigI, err := pool.Multiply(u, b.Signature(i))
	if err != nil {
		return false, err
	}
	defer pool.Release(sigI)
	sigJ, err := pool.Multiply(v, b.Signature(j))
	if err != nil {
		return false, err
	}
	defer pool.Release(sigJ)
	return ord.Compare(sigI, sigJ) == monomial.EQ, nil
}
