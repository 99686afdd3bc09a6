// SPDX-License-Identifier: MIT

package spair

import (
	"sort"

	"github.com/go-groebner/groebner/basis"
	"github.com/go-groebner/groebner/monomial"
)

// RelativelyPrime reports whether lead(g_i) and lead(g_j) share no
// variable, per spec §4.6: such a pair's S-polynomial always reduces
// to zero and can be discarded outright.
func RelativelyPrime(i, j int, b *basis.PolyBasis) bool {
	li, _ := b.Get(i).Lead()
	lj, _ := b.Get(j).Lead()
	return monomial.RelativelyPrime(li.Mono, lj.Mono)
}

// Chain implements the Gebauer-Möller chain criterion of spec §4.6:
// (i,j) is discarded if some other active generator k has a lead term
// dividing lcm(lead_i,lead_j) while both lcm(i,k) and lcm(j,k) are
// proper divisors of lcm(i,j).
//
// Adapted from the donor pack's kruskal.go: that function sorts
// candidate edges and greedily accepts or rejects each by a
// union-find test; here candidate indices k are likewise collected,
// sorted for deterministic iteration order, and greedily tested by a
// divisibility-and-strict-domination gate instead of a cycle test.
func Chain(pool *monomial.Pool, ord monomial.Ordering, b *basis.PolyBasis, i, j int, open func(k int) bool) (bool, error) {
	var candidates []int
	for k := 0; k < b.Len(); k++ {
		if k == i || k == j || b.IsRetired(k) || !open(k) {
			continue
		}
		candidates = append(candidates, k)
	}
	sort.Ints(candidates)

	for _, k := range candidates {
		discard, err := ChainDiscardsPair(pool, ord, b, i, j, k)
		if err != nil {
			return false, err
		}
		if discard {
			return true, nil
		}
	}
	return false, nil
}

// ChainDiscardsPair reports whether generator k alone triggers the
// chain criterion against pair (i,j): lead_k divides lcm(lead_i,
// lead_j) while both lcm(i,k) and lcm(j,k) are proper divisors of
// lcm(i,j). Chain calls this once per open candidate; buchberger.go
// also calls it directly to retroactively prune pairs already queued
// before k existed, per spec §4.6's "deletions of earlier pairs"
// clause.
func ChainDiscardsPair(pool *monomial.Pool, ord monomial.Ordering, b *basis.PolyBasis, i, j, k int) (bool, error) {
	li, _ := b.Get(i).Lead()
	lj, _ := b.Get(j).Lead()
	lk, _ := b.Get(k).Lead()
	lcmIJ, err := pool.Lcm(li.Mono, lj.Mono)
	if err != nil {
		return false, err
	}
	defer pool.Release(lcmIJ)

	if !monomial.Divides(lk.Mono, lcmIJ) {
		return false, nil
	}
	lcmIK, err := pool.Lcm(li.Mono, lk.Mono)
	if err != nil {
		return false, err
	}
	defer pool.Release(lcmIK)
	lcmJK, err := pool.Lcm(lj.Mono, lk.Mono)
	if err != nil {
		return false, err
	}
	defer pool.Release(lcmJK)

	return ord.Compare(lcmIK, lcmIJ) != monomial.EQ && ord.Compare(lcmJK, lcmIJ) != monomial.EQ, nil
}
