// SPDX-License-Identifier: MIT

package reducer

import (
	"github.com/go-groebner/groebner/field"
	"github.com/go-groebner/groebner/monomial"
)

// idQueue orders slab ids by their node's monomial, greatest first.
// Both concrete priority structures (heapIDQueue, tournamentIDQueue)
// implement this narrow surface so Queue's control flow (advance,
// LeadTerm, RemoveLeadTerm) is written once and shared, per spec
// §4.4's "variants differ only in the priority-queue data structure."
type idQueue interface {
	push(id int)
	peek() (int, bool)
	pop() (int, bool)
	len() int
}

// Queue implements the classical reducer contract of spec §4.4 over
// any idQueue implementation.
type Queue struct {
	pool *monomial.Pool
	f    field.Field
	ord  monomial.Ordering
	s    *slab
	ht   *PolyHashTable
	q    idQueue
}


// Insert pushes a record for multiplier*poly starting at poly's lead
// (index 0).
func (rq *Queue) Insert(multiplier *monomial.Mono, poly polyLike) {
	rq.advance(multiplier, poly, 0)
}

// InsertTail pushes a record for multiplier*poly starting just after
// poly's lead (index 1); a no-op if poly has fewer than two terms.
func (rq *Queue) InsertTail(multiplier *monomial.Mono, poly polyLike) {
	rq.advance(multiplier, poly, 1)
}

// advance folds poly's term at idx (multiplied by multiplier) into an
// existing node sharing that monomial, or creates a new one, per the
// PolyHashTable collision contract of spec §4.9's design note.
func (rq *Queue) advance(multiplier *monomial.Mono, poly polyLike, idx int) {
	if idx >= poly.Len() {
		rq.pool.Release(multiplier)
		return
	}
	cur, err := rq.pool.Multiply(multiplier, poly.Mono(idx))
	if err != nil {
		panic(err) // exponent overflow: fatal per spec §7
	}
	coeff := poly.Coeff(idx)
	if id, ok := rq.ht.find(cur); ok {
		n := rq.s.get(id)
		n.coeff = rq.f.Add(n.coeff, coeff)
		n.members = append(n.members, record{poly: poly, mult: multiplier, cursor: idx})
		rq.pool.Release(cur)
		return
	}
	n := &node{mono: cur, coeff: coeff, members: []record{{poly: poly, mult: multiplier, cursor: idx}}}
	id := rq.s.alloc(n)
	rq.ht.insertID(cur, id)
	rq.q.push(id)
}

// LeadTerm returns the top record's monomial and accumulated
// coefficient, peeling records whose coefficients summed to zero and
// advancing them, until a non-zero lead is found or the queue empties.
func (rq *Queue) LeadTerm() (*monomial.Mono, field.Elem, bool) {
	for {
		id, ok := rq.q.peek()
		if !ok {
			return nil, 0, false
		}
		n := rq.s.get(id)
		if !rq.f.IsZero(n.coeff) {
			return n.mono, n.coeff, true
		}
		rq.popAndAdvance(id)
	}
}

// RemoveLeadTerm advances all top records (those merged into the
// current lead node) by one term and re-inserts or drops them.
// Callers must have just observed a non-zero LeadTerm.
func (rq *Queue) RemoveLeadTerm() {
	id, ok := rq.q.peek()
	if !ok {
		return
	}
	rq.popAndAdvance(id)
}

func (rq *Queue) popAndAdvance(id int) {
	rq.q.pop()
	n := rq.s.get(id)
	rq.ht.removeID(n.mono, id)
	members := n.members
	rq.pool.Release(n.mono)
	rq.s.release(id)
	for _, r := range members {
		rq.advance(r.mult, r.poly, r.cursor+1)
	}
}

// Empty reports whether the queue holds no records at all.
func (rq *Queue) Empty() bool { return rq.q.len() == 0 }
