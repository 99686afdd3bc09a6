// SPDX-License-Identifier: MIT

//go:build !gb_debug

package basis

import "github.com/go-groebner/groebner/monomial"

// assertUniqueSignature is a no-op outside gb_debug builds.
func assertUniqueSignature(b *SigPolyBasis, sig *monomial.Mono) {}

// AssertNotConcurrentlyMutated is a no-op outside gb_debug builds.
func AssertNotConcurrentlyMutated(b *PolyBasis) {}
