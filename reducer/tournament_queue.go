// SPDX-License-Identifier: MIT

package reducer

import "github.com/go-groebner/groebner/monomial"

// tournamentIDQueue is a static-layout tournament tree of slab ids: a
// complete binary tree whose leaves hold live ids (or -1 for an empty
// slot) and whose internal nodes cache the winning child, so the
// current maximum is always available at the root in O(1). pop costs
// O(log capacity); push first scans the leaves linearly for an empty
// slot, then updates one root path in O(log capacity).
//
// Adapted from the donor pack's minimal concrete-type binary heap
// (other_examples' gnark r1cs minHeap, which avoids interface overhead
// by comparing a concrete slice directly) generalized here from a
// binary heap to the tournament-tree layout spec §4.4 names as a
// distinct reducer variant.
type tournamentIDQueue struct {
	leaves  []int // -1 marks an empty leaf
	tree    []int // 1-indexed; tree[1] is the overall winner
	idToPos map[int]int
	count   int
	s       *slab
	ord     monomial.Ordering
}

func newTournamentIDQueue(s *slab, ord monomial.Ordering) *tournamentIDQueue {
	t := &tournamentIDQueue{idToPos: make(map[int]int), s: s, ord: ord}
	t.grow(1)
	return t
}

func (t *tournamentIDQueue) better(a, b int) int {
	if a == -1 {
		return b
	}
	if b == -1 {
		return a
	}
	if t.ord.Compare(t.s.get(a).mono, t.s.get(b).mono) == monomial.GT {
		return a
	}
	return b
}

func (t *tournamentIDQueue) grow(minCap int) {
	newCap := 1
	for newCap < minCap {
		newCap *= 2
	}
	newLeaves := make([]int, newCap)
	for i := range newLeaves {
		newLeaves[i] = -1
	}
	copy(newLeaves, t.leaves)
	t.leaves = newLeaves
	t.tree = make([]int, 2*newCap)
	t.rebuild()
}

func (t *tournamentIDQueue) rebuild() {
	cap := len(t.leaves)
	for i := 0; i < cap; i++ {
		t.tree[cap+i] = t.leaves[i]
	}
	for p := cap - 1; p >= 1; p-- {
		t.tree[p] = t.better(t.tree[2*p], t.tree[2*p+1])
	}
}

func (t *tournamentIDQueue) updatePath(leafIdx int) {
	cap := len(t.leaves)
	p := cap + leafIdx
	t.tree[p] = t.leaves[leafIdx]
	for p > 1 {
		p /= 2
		t.tree[p] = t.better(t.tree[2*p], t.tree[2*p+1])
	}
}

func (t *tournamentIDQueue) findFreeLeaf() int {
	for i, id := range t.leaves {
		if id == -1 {
			return i
		}
	}
	return -1
}

func (t *tournamentIDQueue) push(id int) {
	idx := t.findFreeLeaf()
	if idx == -1 {
		t.grow(len(t.leaves) * 2)
		idx = t.findFreeLeaf()
	}
	t.leaves[idx] = id
	t.idToPos[id] = idx
	t.updatePath(idx)
	t.count++
}

func (t *tournamentIDQueue) peek() (int, bool) {
	if len(t.tree) == 0 || t.tree[1] == -1 {
		return 0, false
	}
	return t.tree[1], true
}

func (t *tournamentIDQueue) pop() (int, bool) {
	id, ok := t.peek()
	if !ok {
		return 0, false
	}
	idx := t.idToPos[id]
	t.leaves[idx] = -1
	delete(t.idToPos, id)
	t.updatePath(idx)
	t.count--
	return id, true
}

func (t *tournamentIDQueue) len() int { return t.count }
