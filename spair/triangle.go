// SPDX-License-Identifier: MIT

// Package spair implements the critical-pair triangle and the
// criteria that discard useless pairs before they ever reach a
// reducer.
package spair

import (
	"container/heap"

	"github.com/go-groebner/groebner/monomial"
)

// CalculateOrderBy computes pair (i,j)'s sort-key monomial, or returns
// false to have the pair silently dropped. The classical variant
// returns lcm(lead_i, lead_j); the signature variant returns
// sig(spair(i,j)) — one Triangle implementation serves both, matching
// the donor pack's preference for a closure field over a second
// concrete type where two call sites differ only in one computation.
type CalculateOrderBy func(i, j int) (*monomial.Mono, bool)

// Triangle is the S-pair queue contract of spec §4.5.
type Triangle interface {
	// OpenColumn adds provisional pairs (i,j) for every j<i, dropping
	// any pair whose CalculateOrderBy returns false.
	OpenColumn(i int)

	// Pop removes and returns the minimum-key pair.
	Pop() (i, j int, ok bool)

	// TopPair peeks the minimum-key pair without removing it.
	TopPair() (i, j int, ok bool)

	// TopOrderBy peeks the minimum key itself.
	TopOrderBy() (*monomial.Mono, bool)

	// RemoveIf deletes every currently queued pair (i,j) for which
	// discard returns true, per spec §4.6's chain-criterion clause
	// that a newly inserted generator can also dominate pairs opened
	// before it existed, not just ones formed against it.
	RemoveIf(discard func(i, j int) bool)
}

// pairItem is one heap entry: an (i,j) pair plus its sort-key
// monomial, mirroring the donor pack's dijkstra nodeItem (vertex plus
// distance) generalized from a single scalar distance to a monomial
// compared by an Ordering.
type pairItem struct {
	i, j int
	key  *monomial.Mono
}

// pairPQ is a min-heap of *pairItem ordered by key ascending, the same
// container/heap.Interface shape as dijkstra's nodePQ, reused here for
// pair records instead of vertex-distance records.
type pairPQ struct {
	items []*pairItem
	ord   monomial.Ordering
}

func (pq pairPQ) Len() int { return len(pq.items) }
func (pq pairPQ) Less(i, j int) bool {
	return pq.ord.Compare(pq.items[i].key, pq.items[j].key) == monomial.LT
}
func (pq pairPQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *pairPQ) Push(x interface{}) { pq.items = append(pq.items, x.(*pairItem)) }

func (pq *pairPQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	pq.items = old[:n-1]
	return item
}

// triangle is the shared Triangle implementation for spec §4.5/§4.7.
type triangle struct {
	pq               pairPQ
	calculateOrderBy CalculateOrderBy
}

// New constructs a Triangle ordered by ord, using calculateOrderBy to
// compute (or reject) each pair's sort key.
func New(ord monomial.Ordering, calculateOrderBy CalculateOrderBy) Triangle {
	t := &triangle{pq: pairPQ{ord: ord}, calculateOrderBy: calculateOrderBy}
	heap.Init(&t.pq)
	return t
}

func (t *triangle) OpenColumn(i int) {
	for j := 0; j < i; j++ {
		key, ok := t.calculateOrderBy(i, j)
		if !ok {
			continue
		}
		heap.Push(&t.pq, &pairItem{i: i, j: j, key: key})
	}
}

func (t *triangle) Pop() (int, int, bool) {
	if t.pq.Len() == 0 {
		return 0, 0, false
	}
	item := heap.Pop(&t.pq).(*pairItem)
	return item.i, item.j, true
}

func (t *triangle) TopPair() (int, int, bool) {
	if t.pq.Len() == 0 {
		return 0, 0, false
	}
	return t.pq.items[0].i, t.pq.items[0].j, true
}

func (t *triangle) TopOrderBy() (*monomial.Mono, bool) {
	if t.pq.Len() == 0 {
		return nil, false
	}
	return t.pq.items[0].key, true
}

func (t *triangle) RemoveIf(discard func(i, j int) bool) {
	kept := t.pq.items[:0]
	for _, item := range t.pq.items {
		if discard(item.i, item.j) {
			continue
		}
		kept = append(kept, item)
	}
	t.pq.items = kept
	heap.Init(&t.pq)
}
