// SPDX-License-Identifier: MIT

// Package divisor implements the divisor-lookup index of spec §4.3:
// an index over the monomials of basis lead terms supporting
// divisibility queries, behind one shared contract with two
// interchangeable implementations, DivList and KdTree.
package divisor

import "github.com/go-groebner/groebner/monomial"

// Entry is one indexed (monomial, generator index) pair.
type Entry struct {
	Mono   *monomial.Mono
	GenIdx int
}

// Sink is an early-stop visitor: returning false stops traversal. Adapted from the donor corpus's bfs/dfs visitor callback
// convention (bfs.Visit/dfs.Visit style early exit), generalized here
// from graph traversal to divisor-set traversal.
type Sink func(Entry) bool

// Lookup is the shared divisor-lookup contract implemented by DivList
// and KdTree.
type Lookup interface {
	// Insert adds (m, genIdx) to the index. m is not copied; the caller
	// retains ownership and must not release it while indexed.
	Insert(m *monomial.Mono, genIdx int)

	// RemoveByMono removes the first entry whose monomial equals m.
	RemoveByMono(m *monomial.Mono)

	// RemoveMultiples removes every entry that is a multiple of m.
	RemoveMultiples(m *monomial.Mono)

	// FindAnyDivisor returns some entry dividing m, if one exists.
	FindAnyDivisor(m *monomial.Mono) (Entry, bool)

	// ForEachDivisor visits every entry dividing m until sink returns
	// false.
	ForEachDivisor(m *monomial.Mono, sink Sink)

	// ForEachMultiple visits every entry m divides until sink returns
	// false.
	ForEachMultiple(m *monomial.Mono, sink Sink)

	// Len returns the number of live (non-removed) entries.
	Len() int
}
