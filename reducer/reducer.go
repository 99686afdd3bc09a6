// SPDX-License-Identifier: MIT

package reducer

import (
	"github.com/go-groebner/groebner/field"
	"github.com/go-groebner/groebner/internal/log"
	"github.com/go-groebner/groebner/monomial"
	"github.com/go-groebner/groebner/polynomial"
)

// QueueKind selects the priority-queue data structure backing a Queue,
// per spec §4.4 ("variants differ only in the priority-queue data
// structure: heap, tournament tree, geobucket, or pairing heap").
type QueueKind int

const (
	Heap QueueKind = iota
	Tournament
	Geobucket
	Pairing
)

var logger = log.Default().Subsystem("reducer")

// New constructs a Queue backed by the requested QueueKind. Geobucket
// and Pairing are recorded as an accepted equivalence to Heap for this
// engine (see DESIGN.md Open Questions) rather than silently aliased:
// selecting either logs an Info notice once per Queue construction.
func New(kind QueueKind, pool *monomial.Pool, f field.Field, ord monomial.Ordering) *Queue {
	s := newSlab()
	var q idQueue
	switch kind {
	case Heap:
		q = newHeapIDQueue(s, ord)
	case Tournament:
		q = newTournamentIDQueue(s, ord)
	case Geobucket, Pairing:
		logger.Info("queue kind not separately implemented, falling back to heap queue", "requested", kind)
		q = newHeapIDQueue(s, ord)
	default:
		panic("reducer: unknown queue kind")
	}
	return &Queue{pool: pool, f: f, ord: ord, s: s, ht: newPolyHashTable(s), q: q}
}

// polyAdapter lets a *polynomial.Poly satisfy polyLike without the
// polynomial package importing reducer (avoiding an import cycle).
type polyAdapter struct{ p *polynomial.Poly }

func (a polyAdapter) Len() int                  { return len(a.p.Terms) }
func (a polyAdapter) Coeff(i int) field.Elem    { return a.p.Terms[i].Coeff }
func (a polyAdapter) Mono(i int) *monomial.Mono { return a.p.Terms[i].Mono }

// Wrap adapts a *polynomial.Poly for use with Insert/InsertTail.
func Wrap(p *polynomial.Poly) polyLike { return polyAdapter{p: p} }

// Drain extracts every remaining term from rq as a finished polynomial
// (in decreasing order, per spec §8's reducer property), consuming the
// queue. Each term's monomial is a fresh copy borrowed from the pool
// rq was constructed with.
func Drain(rq *Queue, out *polynomial.Poly) {
	for {
		m, c, ok := rq.LeadTerm()
		if !ok {
			return
		}
		clone := rq.pool.Borrow()
		_ = rq.pool.SetExponents(clone, m.Exponents(), m.Component())
		out.Append(c, clone)
		rq.RemoveLeadTerm()
	}
}
