// SPDX-License-Identifier: MIT

package reducer

import (
	"container/heap"

	"github.com/go-groebner/groebner/monomial"
)

// heapIDQueue is a container/heap-backed max-priority-queue of slab
// ids, ordered by their node's monomial (greatest first). Adapted from
// the "lazy decrease-key" heap discipline the donor corpus's dijkstra
// package documents (dijkstra/doc.go): here PolyHashTable removes the
// need to push stale duplicates in the first place, so every id in the
// heap is live.
type heapIDQueue struct {
	ids []int
	s   *slab
	ord monomial.Ordering
}

func newHeapIDQueue(s *slab, ord monomial.Ordering) *heapIDQueue {
	q := &heapIDQueue{s: s, ord: ord}
	heap.Init(q)
	return q
}

func (h *heapIDQueue) Len() int { return len(h.ids) }
func (h *heapIDQueue) Less(i, j int) bool {
	a := h.s.get(h.ids[i]).mono
	b := h.s.get(h.ids[j]).mono
	return h.ord.Compare(a, b) == monomial.GT
}
func (h *heapIDQueue) Swap(i, j int) { h.ids[i], h.ids[j] = h.ids[j], h.ids[i] }
func (h *heapIDQueue) Push(x any)    { h.ids = append(h.ids, x.(int)) }
func (h *heapIDQueue) Pop() any {
	n := len(h.ids)
	id := h.ids[n-1]
	h.ids = h.ids[:n-1]
	return id
}

func (h *heapIDQueue) push(id int) { heap.Push(h, id) }
func (h *heapIDQueue) peek() (int, bool) {
	if len(h.ids) == 0 {
		return 0, false
	}
	return h.ids[0], true
}
func (h *heapIDQueue) pop() (int, bool) {
	if len(h.ids) == 0 {
		return 0, false
	}
	return heap.Pop(h).(int), true
}
func (h *heapIDQueue) len() int { return len(h.ids) }
