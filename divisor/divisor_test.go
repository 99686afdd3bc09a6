// SPDX-License-Identifier: MIT
package divisor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-groebner/groebner/divisor"
	"github.com/go-groebner/groebner/monomial"
)

func lookups(n int) map[string]divisor.Lookup {
	return map[string]divisor.Lookup{
		"DivList": divisor.NewDivList(false, nil),
		"KdTree":  divisor.NewKdTree(n),
	}
}

func m(t *testing.T, pool *monomial.Pool, exps ...int32) *monomial.Mono {
	t.Helper()
	mono := pool.Borrow()
	require.NoError(t, pool.SetExponents(mono, exps, 0))
	return mono
}

func TestLookupFindAnyDivisor(t *testing.T) {
	pool := monomial.NewPool(2, monomial.Width32, 1)
	for name, l := range lookups(2) {
		t.Run(name, func(t *testing.T) {
			l.Insert(m(t, pool, 1, 0), 0)
			l.Insert(m(t, pool, 0, 2), 1)

			entry, ok := l.FindAnyDivisor(m(t, pool, 1, 1))
			require.True(t, ok)
			require.Equal(t, 0, entry.GenIdx)

			_, ok = l.FindAnyDivisor(m(t, pool, 0, 1))
			require.False(t, ok)

			require.Equal(t, 2, l.Len())
		})
	}
}

func TestLookupRemoveByMono(t *testing.T) {
	pool := monomial.NewPool(1, monomial.Width32, 1)
	for name, l := range lookups(1) {
		t.Run(name, func(t *testing.T) {
			target := m(t, pool, 3)
			l.Insert(target, 0)
			require.Equal(t, 1, l.Len())
			l.RemoveByMono(m(t, pool, 3))
			require.Equal(t, 0, l.Len())
		})
	}
}

func TestLookupRemoveMultiples(t *testing.T) {
	pool := monomial.NewPool(1, monomial.Width32, 1)
	for name, l := range lookups(1) {
		t.Run(name, func(t *testing.T) {
			l.Insert(m(t, pool, 1), 0)
			l.Insert(m(t, pool, 5), 1)
			l.Insert(m(t, pool, 0), 2) // not a multiple of 1's own value under Divides(m, e)

			l.RemoveMultiples(m(t, pool, 1))
			require.Equal(t, 1, l.Len())

			_, ok := l.FindAnyDivisor(m(t, pool, 0))
			require.True(t, ok)
		})
	}
}

func TestLookupForEachDivisorAndMultiple(t *testing.T) {
	pool := monomial.NewPool(1, monomial.Width32, 1)
	for name, l := range lookups(1) {
		t.Run(name, func(t *testing.T) {
			l.Insert(m(t, pool, 1), 0)
			l.Insert(m(t, pool, 2), 1)
			l.Insert(m(t, pool, 3), 2)

			var divisors []int
			l.ForEachDivisor(m(t, pool, 6), func(e divisor.Entry) bool {
				divisors = append(divisors, e.GenIdx)
				return true
			})
			require.ElementsMatch(t, []int{0, 1, 2}, divisors)

			var multiples []int
			l.ForEachMultiple(m(t, pool, 1), func(e divisor.Entry) bool {
				multiples = append(multiples, e.GenIdx)
				return true
			})
			require.ElementsMatch(t, []int{0, 1, 2}, multiples)
		})
	}
}

func TestLookupForEachDivisorEarlyStop(t *testing.T) {
	pool := monomial.NewPool(1, monomial.Width32, 1)
	for name, l := range lookups(1) {
		t.Run(name, func(t *testing.T) {
			l.Insert(m(t, pool, 1), 0)
			l.Insert(m(t, pool, 1), 1)
			l.Insert(m(t, pool, 1), 2)

			count := 0
			l.ForEachDivisor(m(t, pool, 1), func(e divisor.Entry) bool {
				count++
				return false
			})
			require.Equal(t, 1, count)
		})
	}
}

func TestDivListPreferSparsePicksFewestTermsThenSmallestIndex(t *testing.T) {
	pool := monomial.NewPool(1, monomial.Width32, 1)
	terms := map[int]int{0: 3, 1: 1, 2: 1, 3: 2}
	d := divisor.NewDivList(true, func(genIdx int) int { return terms[genIdx] })
	d.Insert(m(t, pool, 1), 0) // 3 terms
	d.Insert(m(t, pool, 1), 3) // 2 terms
	d.Insert(m(t, pool, 1), 1) // 1 term, index 1
	d.Insert(m(t, pool, 1), 2) // 1 term, index 2 (tie on terms, loses to index 1)

	entry, ok := d.FindAnyDivisor(m(t, pool, 1))
	require.True(t, ok)
	require.Equal(t, 1, entry.GenIdx)
}

func TestDivListWithoutPreferSparseReturnsFirstMatch(t *testing.T) {
	pool := monomial.NewPool(1, monomial.Width32, 1)
	terms := map[int]int{0: 1, 1: 1}
	d := divisor.NewDivList(false, func(genIdx int) int { return terms[genIdx] })
	d.Insert(m(t, pool, 1), 5)
	d.Insert(m(t, pool, 1), 0)

	entry, ok := d.FindAnyDivisor(m(t, pool, 1))
	require.True(t, ok)
	require.Equal(t, 5, entry.GenIdx)
}

func TestKdTreeRebuildsAfterManyTombstones(t *testing.T) {
	pool := monomial.NewPool(1, monomial.Width32, 1)
	tree := divisor.NewKdTree(1)
	for i := int32(0); i < 64; i++ {
		tree.Insert(m(t, pool, i), int(i))
	}
	for i := int32(0); i < 48; i++ {
		tree.RemoveByMono(m(t, pool, i))
	}
	require.Equal(t, 16, tree.Len())
	entry, ok := tree.FindAnyDivisor(m(t, pool, 50))
	require.True(t, ok)
	require.GreaterOrEqual(t, entry.GenIdx, 48)
}
