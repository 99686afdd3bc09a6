// SPDX-License-Identifier: MIT

//go:build gb_debug

package basis

import "github.com/go-groebner/groebner/monomial"

// assertUniqueSignature panics if sig duplicates an existing
// generator's signature, per spec §7's invariant.
func assertUniqueSignature(b *SigPolyBasis, sig *monomial.Mono) {
	for _, s := range b.sigs {
		if s.Equal(sig) {
			panic(ErrDuplicateSignature)
		}
	}
}

// AssertNotConcurrentlyMutated attempts to acquire both of b's locks
// without blocking; a failed attempt means some other goroutine is
// mutating b outside the two named parallel regions (spec §5), which
// is a programming error caught only in gb_debug builds.
func AssertNotConcurrentlyMutated(b *PolyBasis) {
	if !b.muGen.TryLock() {
		panic("basis: concurrent mutation of generator slice detected")
	}
	b.muGen.Unlock()
	if !b.muFlags.TryLock() {
		panic("basis: concurrent mutation of flag bitsets detected")
	}
	b.muFlags.Unlock()
}
