// SPDX-License-Identifier: MIT

package divisor

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/go-groebner/groebner/monomial"
)

// entryWithMask pairs an Entry with its precomputed divisor mask: one
// bit per variable with positive exponent, per spec §4.3. Using
// bitset.BitSet (rather than a single machine word) means variable
// counts beyond 64 still get the one-AND-and-compare fast reject,
// per the wiring decision in SPEC_FULL.md §3.
type entryWithMask struct {
	Entry
	mask *bitset.BitSet
}

func maskOf(m *monomial.Mono) *bitset.BitSet {
	b := bitset.New(uint(m.N()))
	for i := 0; i < m.N(); i++ {
		if m.Exponent(i) > 0 {
			b.Set(uint(i))
		}
	}
	return b
}

// maskRejects reports whether candidate cannot possibly divide target
// based on masks alone: any bit set in candidate but not in target
// rules out divisibility immediately (spec §4.3).
func maskRejects(candidate, target *bitset.BitSet) bool {
	return !target.IsSuperSet(candidate)
}

// DivList is a flat vector of entries with precomputed divisor masks.
// FindAnyDivisor scans, skipping by mask; RemoveMultiples compacts the
// vector in place, adapted from prim_kruskal's in-place elimination of
// dominated candidates from a sorted edge list.
type DivList struct {
	entries      []entryWithMask
	preferSparse bool
	termCount    func(genIdx int) int // for classicReducer tie-breaking
}

// NewDivList constructs an empty DivList. termCount, if non-nil, lets
// FindAnyDivisor prefer sparser reducers when preferSparse is set; pass
// nil when that policy is unused.
func NewDivList(preferSparse bool, termCount func(genIdx int) int) *DivList {
	return &DivList{preferSparse: preferSparse, termCount: termCount}
}

func (d *DivList) Insert(m *monomial.Mono, genIdx int) {
	d.entries = append(d.entries, entryWithMask{Entry: Entry{Mono: m, GenIdx: genIdx}, mask: maskOf(m)})
}

func (d *DivList) RemoveByMono(m *monomial.Mono) {
	for i, e := range d.entries {
		if e.Mono.Equal(m) {
			d.entries = append(d.entries[:i], d.entries[i+1:]...)
			return
		}
	}
}

func (d *DivList) RemoveMultiples(m *monomial.Mono) {
	mMask := maskOf(m)
	kept := d.entries[:0]
	for _, e := range d.entries {
		if !maskRejects(mMask, e.mask) && monomial.Divides(m, e.Mono) {
			continue // e is a multiple of m: drop it
		}
		kept = append(kept, e)
	}
	d.entries = kept
}

// FindAnyDivisor returns some entry dividing m. With preferSparse and
// a non-nil termCount, it scans every candidate and keeps the one with
// fewest terms, breaking further ties by smallest GenIdx, per spec
// §4.3's classicReducer rule ("when preferSparse, fewest terms wins;
// then smallest index"). Without preferSparse (or without a termCount
// closure to consult) it returns the first candidate found, i.e. the
// earliest-inserted matching entry, whatever its GenIdx.
func (d *DivList) FindAnyDivisor(m *monomial.Mono) (Entry, bool) {
	mMask := maskOf(m)
	if !d.preferSparse || d.termCount == nil {
		for _, e := range d.entries {
			if maskRejects(e.mask, mMask) {
				continue
			}
			if monomial.Divides(e.Mono, m) {
				return e.Entry, true
			}
		}
		return Entry{}, false
	}

	var best Entry
	found := false
	bestTerms := 0
	for _, e := range d.entries {
		if maskRejects(e.mask, mMask) {
			continue
		}
		if !monomial.Divides(e.Mono, m) {
			continue
		}
		terms := d.termCount(e.GenIdx)
		if !found || terms < bestTerms || (terms == bestTerms && e.GenIdx < best.GenIdx) {
			best, bestTerms, found = e.Entry, terms, true
		}
	}
	return best, found
}

func (d *DivList) ForEachDivisor(m *monomial.Mono, sink Sink) {
	mMask := maskOf(m)
	for _, e := range d.entries {
		if maskRejects(e.mask, mMask) {
			continue
		}
		if monomial.Divides(e.Mono, m) {
			if !sink(e.Entry) {
				return
			}
		}
	}
}

func (d *DivList) ForEachMultiple(m *monomial.Mono, sink Sink) {
	mMask := maskOf(m)
	for _, e := range d.entries {
		if maskRejects(mMask, e.mask) {
			continue
		}
		if monomial.Divides(m, e.Mono) {
			if !sink(e.Entry) {
				return
			}
		}
	}
}

func (d *DivList) Len() int { return len(d.entries) }
