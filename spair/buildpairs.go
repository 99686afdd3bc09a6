// SPDX-License-Identifier: MIT

package spair

import (
	"github.com/go-groebner/groebner/basis"
	"github.com/go-groebner/groebner/monomial"
)

// BuildConfig bounds the cost of the low/high base-divisor searches
// BuildPairs runs per candidate pair.
type BuildConfig struct {
	MaxLowBaseDivisors  int
	MaxHighBaseDivisors int
}

// DefaultBuildConfig returns the bounds mathicgb's SPairHandler uses by
// default: an unbounded low-base scan and a high-base scan capped at a
// small constant, cheap enough to run on every candidate pair.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{MaxLowBaseDivisors: 1 << 30, MaxHighBaseDivisors: 8}
}

// Candidate is one surviving signature S-pair, carrying the cofactor
// monomials each generator must be multiplied by to reach the shared
// LCM and the pair's module-monomial signature.
type Candidate struct {
	I, J    int
	U, V    *monomial.Mono // U multiplies generator I, V multiplies generator J; lead_I*U = lead_J*V = lcm
	Sig     *monomial.Mono
	SigFrom int // the generator (I or J) that owns this signature
}

// BuildPairs runs the signature-based criteria of spec §4.7 over every
// pair (k, i) for k < i, in this order: relatively-prime, then
// non-regularity, then syzygy-membership, then singular, then the
// low/high base-divisor divisibility tests. Surviving candidates are
// released to the caller in no particular order; the caller's Triangle
// imposes the final priority.
func BuildPairs(pool *monomial.Pool, ord monomial.Ordering, b *basis.SigPolyBasis, i int, syzygies []*monomial.Mono, cfg BuildConfig) ([]Candidate, error) {
	var out []Candidate
	for k := 0; k < i; k++ {
		if b.IsRetired(k) {
			continue
		}
		if RelativelyPrime(k, i, b.PolyBasis) {
			continue
		}

		lk, _ := b.Get(k).Lead()
		li, _ := b.Get(i).Lead()
		// Colons(lk,li) satisfies li*u = lk*v = lcm(lk,li): u multiplies
		// generator i, v multiplies generator k.
		u, v, err := pool.Colons(lk.Mono, li.Mono)
		if err != nil {
			return nil, err
		}

		nonRegular, err := NonRegularity(pool, ord, b, i, k, u, v)
		if err != nil {
			pool.Release(u)
			pool.Release(v)
			return nil, err
		}
		if nonRegular {
			pool.Release(u)
			pool.Release(v)
			continue
		}

		sigI, err := pool.Multiply(u, b.Signature(i))
		if err != nil {
			pool.Release(u)
			pool.Release(v)
			return nil, err
		}
		sigK, err := pool.Multiply(v, b.Signature(k))
		if err != nil {
			pool.Release(u)
			pool.Release(v)
			pool.Release(sigI)
			return nil, err
		}

		// Whichever cofactor's signature is greater under ord owns the
		// pair's signature, per spec §4.7's "signature of the S-pair is
		// the max of the two candidate signatures."
		var sig *monomial.Mono
		var sigFrom int
		if ord.Compare(sigK, sigI) == monomial.LT {
			sig, sigFrom = sigI, i
			pool.Release(sigK)
		} else {
			sig, sigFrom = sigK, k
			pool.Release(sigI)
		}

		if SignatureCriterion(sig, syzygies) {
			pool.Release(u)
			pool.Release(v)
			pool.Release(sig)
			continue
		}
		if SingularCriterion(b, ord, sig, li.Mono, i, k) {
			pool.Release(u)
			pool.Release(v)
			pool.Release(sig)
			continue
		}
		if _, found := LowBaseDivisor(b, sig, cfg.MaxLowBaseDivisors, i, k); found {
			pool.Release(u)
			pool.Release(v)
			pool.Release(sig)
			continue
		}
		if _, found := HighBaseDivisor(b, sig, cfg.MaxHighBaseDivisors, i, k); found {
			pool.Release(u)
			pool.Release(v)
			pool.Release(sig)
			continue
		}

		out = append(out, Candidate{I: i, J: k, U: u, V: v, Sig: sig, SigFrom: sigFrom})
	}
	return out, nil
}
