// SPDX-License-Identifier: MIT
package spair_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-groebner/groebner/basis"
	"github.com/go-groebner/groebner/field"
	"github.com/go-groebner/groebner/monomial"
	"github.com/go-groebner/groebner/polynomial"
	"github.com/go-groebner/groebner/spair"
)

func setup(t *testing.T) (*monomial.Pool, monomial.Ordering, field.Field) {
	t.Helper()
	pool := monomial.NewPool(2, monomial.Width32, 9)
	ord := monomial.Ordering{Term: monomial.GrevLex}
	f, err := field.New(101)
	require.NoError(t, err)
	return pool, ord, f
}

func poly(t *testing.T, pool *monomial.Pool, ord monomial.Ordering, f field.Field, exps ...int32) *polynomial.Poly {
	t.Helper()
	p := polynomial.New(pool, ord, f)
	m := pool.Borrow()
	require.NoError(t, pool.SetExponents(m, exps, 0))
	p.Append(f.One(), m)
	require.NoError(t, p.Finalize())
	return p
}

func TestRelativelyPrime(t *testing.T) {
	pool, ord, f := setup(t)
	b := basis.New()
	i := b.Insert(poly(t, pool, ord, f, 1, 0))
	j := b.Insert(poly(t, pool, ord, f, 0, 1))
	k := b.Insert(poly(t, pool, ord, f, 1, 1))

	require.True(t, spair.RelativelyPrime(i, j, b))
	require.False(t, spair.RelativelyPrime(i, k, b))
}

func TestChainDiscardsDominatedPair(t *testing.T) {
	pool, ord, f := setup(t)
	b := basis.New()
	i := b.Insert(poly(t, pool, ord, f, 2, 0))
	j := b.Insert(poly(t, pool, ord, f, 0, 2))
	b.Insert(poly(t, pool, ord, f, 1, 1)) // k: lead x*y divides lcm(x^2,y^2)=x^2y^2

	discard, err := spair.Chain(pool, ord, b, i, j, func(int) bool { return true })
	require.NoError(t, err)
	require.True(t, discard)
}

func TestChainKeepsPairWithNoDominator(t *testing.T) {
	pool, ord, f := setup(t)
	b := basis.New()
	i := b.Insert(poly(t, pool, ord, f, 1, 0))
	j := b.Insert(poly(t, pool, ord, f, 0, 1))

	discard, err := spair.Chain(pool, ord, b, i, j, func(int) bool { return true })
	require.NoError(t, err)
	require.False(t, discard)
}

func TestTriangleOrdersBySmallestKey(t *testing.T) {
	pool, ord, _ := setup(t)
	leads := map[[2]int]*monomial.Mono{}
	set := func(i, j int, exps ...int32) {
		m := pool.Borrow()
		_ = pool.SetExponents(m, exps, 0)
		leads[[2]int{i, j}] = m
	}
	set(1, 0, 3, 0)
	set(2, 0, 1, 0)
	set(2, 1, 2, 2)

	tri := spair.New(ord, func(i, j int) (*monomial.Mono, bool) {
		m, ok := leads[[2]int{i, j}]
		return m, ok
	})
	tri.OpenColumn(1)
	tri.OpenColumn(2)

	i, j, ok := tri.Pop()
	require.True(t, ok)
	require.Equal(t, 2, i)
	require.Equal(t, 0, j)
}

func TestTriangleTopPairDoesNotRemove(t *testing.T) {
	pool, ord, _ := setup(t)
	m := pool.Borrow()
	_ = pool.SetExponents(m, []int32{1, 0}, 0)

	tri := spair.New(ord, func(i, j int) (*monomial.Mono, bool) { return m, true })
	tri.OpenColumn(1)

	i, j, ok := tri.TopPair()
	require.True(t, ok)
	require.Equal(t, 1, i)
	require.Equal(t, 0, j)

	i2, j2, ok := tri.Pop()
	require.True(t, ok)
	require.Equal(t, i, i2)
	require.Equal(t, j, j2)

	_, _, ok = tri.Pop()
	require.False(t, ok)
}

func TestSignatureCriterion(t *testing.T) {
	pool, _, _ := setup(t)
	syz := pool.Borrow()
	_ = pool.SetExponents(syz, []int32{1, 0}, 0)
	sig := pool.Borrow()
	_ = pool.SetExponents(sig, []int32{2, 0}, 0)

	require.True(t, spair.SignatureCriterion(sig, []*monomial.Mono{syz}))

	other := pool.Borrow()
	_ = pool.SetExponents(other, []int32{0, 1}, 0)
	require.False(t, spair.SignatureCriterion(other, []*monomial.Mono{syz}))
}

func sigMono(t *testing.T, pool *monomial.Pool, exps []int32) *monomial.Mono {
	t.Helper()
	m := pool.Borrow()
	require.NoError(t, pool.SetExponents(m, exps, 0))
	return m
}

// sigMonoComp is sigMono with an explicit nonzero component, matching how
// SignatureBased tags each seed generator's e_i signature (component 0 is
// a monomial.Divides wildcard, so real signatures use components >= 1).
func sigMonoComp(t *testing.T, pool *monomial.Pool, exps []int32, component int32) *monomial.Mono {
	t.Helper()
	m := pool.Borrow()
	require.NoError(t, pool.SetExponents(m, exps, component))
	return m
}

func TestLowBaseDivisorFindsSmallestRatioMatch(t *testing.T) {
	pool, ord, f := setup(t)
	b := basis.NewSig(ord.Term)
	b.InsertSig(poly(t, pool, ord, f, 1, 0), sigMono(t, pool, []int32{2, 0}))
	b.InsertSig(poly(t, pool, ord, f, 1, 0), sigMono(t, pool, []int32{1, 0}))

	target := sigMono(t, pool, []int32{2, 0})
	idx, found := spair.LowBaseDivisor(b, target, 10)
	require.True(t, found)
	require.Equal(t, 1, idx) // ratio-smaller generator (sig x) divides x^2 first
}

func TestNonRegularityDetectsEqualSignatures(t *testing.T) {
	pool, ord, f := setup(t)
	b := basis.NewSig(ord.Term)
	i := b.InsertSig(poly(t, pool, ord, f, 1, 0), sigMono(t, pool, []int32{1, 0}))
	j := b.InsertSig(poly(t, pool, ord, f, 0, 1), sigMono(t, pool, []int32{1, 0}))

	u := sigMono(t, pool, []int32{0, 0})
	v := sigMono(t, pool, []int32{0, 0})
	nonRegular, err := spair.NonRegularity(pool, ord, b, i, j, u, v)
	require.NoError(t, err)
	require.True(t, nonRegular)
}

func TestBuildPairsSkipsRelativelyPrimePairs(t *testing.T) {
	pool, ord, f := setup(t)
	b := basis.NewSig(ord.Term)
	b.InsertSig(poly(t, pool, ord, f, 1, 0), sigMono(t, pool, []int32{0, 0}))
	i := b.InsertSig(poly(t, pool, ord, f, 0, 1), sigMono(t, pool, []int32{0, 0}))

	cands, err := spair.BuildPairs(pool, ord, b, i, nil, spair.DefaultBuildConfig())
	require.NoError(t, err)
	require.Empty(t, cands)
}

func TestBuildPairsProducesCandidateForOverlappingLeads(t *testing.T) {
	pool, ord, f := setup(t)
	b := basis.NewSig(ord.Term)
	b.InsertSig(poly(t, pool, ord, f, 1, 0), sigMonoComp(t, pool, []int32{0, 0}, 1))
	i := b.InsertSig(poly(t, pool, ord, f, 1, 1), sigMonoComp(t, pool, []int32{1, 0}, 2))

	cands, err := spair.BuildPairs(pool, ord, b, i, nil, spair.DefaultBuildConfig())
	require.NoError(t, err)
	require.Len(t, cands, 1)
	require.Equal(t, i, cands[0].I)
	require.Equal(t, 0, cands[0].J)
}
