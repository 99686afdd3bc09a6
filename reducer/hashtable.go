// SPDX-License-Identifier: MIT

// Package reducer implements the classical priority-queue reducer of
// spec §4.4: given a sum of polynomial multiples m_k * f_k, it yields
// the sum's terms one at a time, sorted and coefficient-combined. A
// PolyHashTable collides new terms against whatever is already queued
// at the same monomial so cancellation is detected before a term ever
// leaves the queue, resolving spec §9's "hash-table back-pointers...
// expressed as an index into a slab" note: nodeID below is a slab
// index into the queue's node arena, not a pointer.
package reducer

import (
	"github.com/cespare/xxhash/v2"
	"github.com/go-groebner/groebner/field"
	"github.com/go-groebner/groebner/monomial"
)

// record is one polynomial multiple's cursor into its own term list.
// It is owned by exactly one node at a time.
type record struct {
	poly   polyLike
	mult   *monomial.Mono // owned by this record until the poly is exhausted
	cursor int
}

// polyLike is the minimal surface reducer needs from a polynomial,
// kept narrow so tests can drive the reducer with fixtures instead of
// a full polynomial.Poly.
type polyLike interface {
	Len() int
	Coeff(i int) field.Elem
	Mono(i int) *monomial.Mono
}

// node aggregates every record currently sharing one current monomial.
type node struct {
	mono    *monomial.Mono // owned; released when the node is destroyed
	coeff   field.Elem
	members []record
}

// slab is the back-link target for PolyHashTable: a slab index rather
// than a pointer (spec §9).
type slab struct {
	nodes []*node
	free  []int // recycled slab slots
}

func newSlab() *slab { return &slab{} }

func (s *slab) alloc(n *node) int {
	if k := len(s.free); k > 0 {
		id := s.free[k-1]
		s.free = s.free[:k-1]
		s.nodes[id] = n
		return id
	}
	s.nodes = append(s.nodes, n)
	return len(s.nodes) - 1
}

func (s *slab) get(id int) *node { return s.nodes[id] }

func (s *slab) release(id int) {
	s.nodes[id] = nil
	s.free = append(s.free, id)
}

// PolyHashTable buckets slab ids by a mixed hash of the monomial's own
// linear hash. The linear hash stays the spec-mandated additive hash;
// xxhash only spreads bucket indices, per the wiring decision in
// SPEC_FULL.md §3.
type PolyHashTable struct {
	buckets map[uint64][]int
	s       *slab
}

func newPolyHashTable(s *slab) *PolyHashTable {
	return &PolyHashTable{buckets: make(map[uint64][]int), s: s}
}

func mix(h uint64) uint64 {
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(h >> (8 * i))
	}
	return xxhash.Sum64(buf[:])
}

// find returns the slab id of an existing node whose monomial equals
// m, or (-1, false).
func (t *PolyHashTable) find(m *monomial.Mono) (int, bool) {
	bucket := mix(m.Hash())
	for _, id := range t.buckets[bucket] {
		if n := t.s.get(id); n != nil && n.mono.Equal(m) {
			return id, true
		}
	}
	return -1, false
}

func (t *PolyHashTable) insertID(m *monomial.Mono, id int) {
	bucket := mix(m.Hash())
	t.buckets[bucket] = append(t.buckets[bucket], id)
}

func (t *PolyHashTable) removeID(m *monomial.Mono, id int) {
	bucket := mix(m.Hash())
	ids := t.buckets[bucket]
	for i, v := range ids {
		if v == id {
			ids[i] = ids[len(ids)-1]
			t.buckets[bucket] = ids[:len(ids)-1]
			return
		}
	}
}
