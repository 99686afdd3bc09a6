// SPDX-License-Identifier: MIT

// Package basis holds the growing set of generators a Gröbner basis
// computation accumulates, along with the per-generator bookkeeping
// flags (retired, used-as-reducer) the top-level algorithms consult.
//
// PolyBasis and SigPolyBasis use separate locks per concern (muGen for
// the generator slice, muFlags for the flag bitsets), the same
// discipline the donor pack's core.Graph applies to vertices versus
// edges: outside the two named parallel regions (spec §5) the engine
// is single-threaded. Every method takes the relevant lock in all
// builds; gb_debug builds additionally provide
// AssertNotConcurrentlyMutated, which probes the same locks.
package basis

import (
	"sync"

	"github.com/bits-and-blooms/bitset"
	"github.com/go-groebner/groebner/polynomial"
)

// PolyBasis is the classical (non-signature) generator container of
// spec §7: an append-only list of polynomials plus retirement and
// reducer-usage flags.
type PolyBasis struct {
	muGen   sync.RWMutex
	muFlags sync.RWMutex

	generators []*polynomial.Poly

	retired                *bitset.BitSet
	wasReducer             *bitset.BitSet
	wasNonSignatureReducer *bitset.BitSet
}

// New constructs an empty PolyBasis.
func New() *PolyBasis {
	return &PolyBasis{
		retired:                bitset.New(0),
		wasReducer:             bitset.New(0),
		wasNonSignatureReducer: bitset.New(0),
	}
}

// Insert appends p and returns its new index.
func (b *PolyBasis) Insert(p *polynomial.Poly) int {
	b.muGen.Lock()
	b.generators = append(b.generators, p)
	idx := len(b.generators) - 1
	b.muGen.Unlock()
	return idx
}

// Get returns the generator at i.
func (b *PolyBasis) Get(i int) *polynomial.Poly {
	b.muGen.RLock()
	defer b.muGen.RUnlock()
	return b.generators[i]
}

// Len returns the total number of generators ever inserted, including
// retired ones.
func (b *PolyBasis) Len() int {
	b.muGen.RLock()
	defer b.muGen.RUnlock()
	return len(b.generators)
}

// Retire marks generator i as no longer a candidate for new S-pairs.
func (b *PolyBasis) Retire(i int) {
	b.muFlags.Lock()
	defer b.muFlags.Unlock()
	b.retired.Set(uint(i))
}

// IsRetired reports whether generator i has been retired.
func (b *PolyBasis) IsRetired(i int) bool {
	b.muFlags.RLock()
	defer b.muFlags.RUnlock()
	return b.retired.Test(uint(i))
}

// MarkReducer records that generator i has served as a top-reduction
// or tail-reduction divisor at least once.
func (b *PolyBasis) MarkReducer(i int, nonSignature bool) {
	b.muFlags.Lock()
	defer b.muFlags.Unlock()
	b.wasReducer.Set(uint(i))
	if nonSignature {
		b.wasNonSignatureReducer.Set(uint(i))
	}
}

// WasReducer reports whether generator i has ever served as a reducer.
func (b *PolyBasis) WasReducer(i int) bool {
	b.muFlags.RLock()
	defer b.muFlags.RUnlock()
	return b.wasReducer.Test(uint(i))
}

// Active calls visit for every non-retired generator index in
// increasing order, stopping early if visit returns false.
func (b *PolyBasis) Active(visit func(idx int) bool) {
	b.muGen.RLock()
	n := len(b.generators)
	b.muGen.RUnlock()
	for i := 0; i < n; i++ {
		if b.IsRetired(i) {
			continue
		}
		if !visit(i) {
			return
		}
	}
}

// MemoryEstimate returns a rough byte count of the retained generator
// polynomials, adapted from mathicgb's getMemoryUse instrumentation
// hook (spec §16).
func (b *PolyBasis) MemoryEstimate() uint64 {
	b.muGen.RLock()
	defer b.muGen.RUnlock()
	var total uint64
	for _, p := range b.generators {
		if p == nil {
			continue
		}
		for _, t := range p.Terms {
			total += uint64(4 * (2 + t.Mono.N())) // coeff + degree/hash + exponents, int32-sized
		}
	}
	return total
}
