// SPDX-License-Identifier: MIT

package groebner

import (
	"context"
	"time"

	"github.com/go-groebner/groebner/basis"
	"github.com/go-groebner/groebner/divisor"
	"github.com/go-groebner/groebner/field"
	"github.com/go-groebner/groebner/internal/log"
	"github.com/go-groebner/groebner/matrix"
	"github.com/go-groebner/groebner/monomial"
	"github.com/go-groebner/groebner/polynomial"
	"github.com/go-groebner/groebner/reducer"
	"github.com/go-groebner/groebner/spair"
)

var logger = log.Default().Subsystem("groebner")

// Buchberger computes a Gröbner basis of the ideal generated by gens
// using the classical S-pair loop of spec §4.8. It returns whatever
// partial basis has been built if ctx is cancelled or cfg.BreakAfter
// elapses.
func Buchberger(ctx context.Context, pool *monomial.Pool, f field.Field, ord monomial.Ordering, gens []*polynomial.Poly, cfg Config) (*basis.PolyBasis, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := basis.New()
	lookup := newLookup(cfg, pool.Arity(), b)

	tri := spair.New(ord, func(i, j int) (*monomial.Mono, bool) {
		if b.IsRetired(i) || b.IsRetired(j) {
			return nil, false
		}
		if spair.RelativelyPrime(i, j, b) {
			return nil, false
		}
		if discard, err := spair.Chain(pool, ord, b, i, j, func(k int) bool { return true }); err == nil && discard {
			return nil, false
		}
		li, _ := b.Get(i).Lead()
		lj, _ := b.Get(j).Lead()
		lcm, err := pool.Lcm(li.Mono, lj.Mono)
		if err != nil {
			return nil, false
		}
		return lcm, true
	})

	insert := func(p *polynomial.Poly) int {
		idx := b.Insert(p)
		if lead, ok := p.Lead(); ok {
			lookup.Insert(lead.Mono, idx)
		}
		tri.OpenColumn(idx)
		// The chain criterion also deletes pairs opened before idx
		// existed, not just ones formed against it: if idx's lead
		// divides lcm(i,j) and strictly dominates it on both sides,
		// (i,j)'s S-polynomial reduces through idx regardless.
		tri.RemoveIf(func(i, j int) bool {
			if i == idx || j == idx {
				return false
			}
			discard, err := spair.ChainDiscardsPair(pool, ord, b, i, j, idx)
			return err == nil && discard
		})
		return idx
	}

	for _, g := range gens {
		insert(g)
		if cfg.AutoTopReduce {
			// Retiring must follow insertion (and the OpenColumn it
			// triggers): the pair between g and whatever it makes
			// redundant has to be queued first, or that S-polynomial
			// is lost rather than reduced to zero.
			topReduce(pool, f, ord, cfg, b, lookup, g)
		}
	}

	var deadline time.Time
	hasDeadline := cfg.BreakAfter > 0
	if hasDeadline {
		deadline = time.Now().Add(cfg.BreakAfter)
	}

	rounds := 0
	for {
		if hasDeadline && time.Now().After(deadline) {
			logger.Info("breakAfter deadline reached, returning partial basis", "basisSize", b.Len())
			break
		}
		select {
		case <-ctx.Done():
			return b, ctx.Err()
		default:
		}

		// No re-check of IsRetired here: a pair already queued was
		// formed while both sides were active, and PolyBasis.Retire's
		// contract only bars a retired generator from NEW pairs, not
		// from ones already pending — retiring it later must not
		// erase the S-polynomial that pair still owes the basis.

		var sPolys []*polynomial.Poly
		if cfg.Reducer == ReducerF4 {
			batch, ok := popSPairGroup(tri, ord, cfg.SPairGroupSize)
			if !ok {
				break
			}
			polys, err := f4ReduceGroup(pool, f, ord, b, lookup, batch)
			if err != nil {
				return nil, err
			}
			sPolys = polys
		} else {
			i, j, ok := tri.Pop()
			if !ok {
				break
			}
			s, err := classicReduceSPair(pool, f, ord, cfg, b, lookup, i, j)
			if err != nil {
				return nil, err
			}
			sPolys = []*polynomial.Poly{s}
		}

		for _, s := range sPolys {
			if s.IsZero() {
				s.Free()
				continue // syzygy: statistics only, per spec §4.8
			}
			if err := s.Normalize(); err != nil {
				return nil, err
			}

			newIdx := insert(s)
			if cfg.AutoTopReduce {
				topReduce(pool, f, ord, cfg, b, lookup, s)
			}
			if cfg.AutoTailReduce {
				tailReduceAllByNew(pool, f, ord, b, lookup, newIdx)
			}

			rounds++
			if cfg.PrintInterval > 0 && rounds%cfg.PrintInterval == 0 {
				logger.Info("progress", "rounds", rounds, "basisSize", b.Len())
			}
		}
	}
	return b, nil
}

// classicReduceSPair computes the S-polynomial of (g_i, g_j) and
// immediately tail-reduces it against the basis, per spec §4.8's
// "compute S-polynomial then classicTailReduce."
func classicReduceSPair(pool *monomial.Pool, f field.Field, ord monomial.Ordering, cfg Config, b *basis.PolyBasis, lookup divisor.Lookup, i, j int) (*polynomial.Poly, error) {
	gi, gj := b.Get(i), b.Get(j)
	li, _ := gi.Lead()
	lj, _ := gj.Lead()
	u, v, err := pool.Colons(li.Mono, lj.Mono)
	if err != nil {
		return nil, err
	}

	rq := reducer.New(queueKindFor(cfg.SPairQueue), pool, f, ord)
	rq.Insert(v, scaledPoly{p: gi, f: f, scale: f.One()})
	rq.Insert(u, scaledPoly{p: gj, f: f, scale: f.Neg(f.One())})

	s := polynomial.New(pool, ord, f)
	reducer.Drain(rq, s)
	if err := s.Finalize(); err != nil {
		return nil, err
	}
	return classicTailReduce(pool, f, ord, cfg, b, lookup, s)
}

// classicTailReduce reduces s to normal form against the active
// generators reachable through lookup, using the same lazy
// merge-and-peel machinery the classical reducer package documents.
func classicTailReduce(pool *monomial.Pool, f field.Field, ord monomial.Ordering, cfg Config, b *basis.PolyBasis, lookup divisor.Lookup, s *polynomial.Poly) (*polynomial.Poly, error) {
	rq := reducer.New(queueKindFor(cfg.SPairQueue), pool, f, ord)
	identity := pool.Identity()
	rq.Insert(identity, reducer.Wrap(s))

	out := polynomial.New(pool, ord, f)
	for {
		m, c, ok := rq.LeadTerm()
		if !ok {
			break
		}
		entry, found := lookup.FindAnyDivisor(m)
		if !found {
			clone := pool.Borrow()
			if err := pool.SetExponents(clone, m.Exponents(), m.Component()); err != nil {
				return nil, err
			}
			out.Append(c, clone)
			rq.RemoveLeadTerm()
			continue
		}
		gk := b.Get(entry.GenIdx)
		lk, _ := gk.Lead()
		mult, err := pool.Divide(lk.Mono, m)
		if err != nil {
			return nil, err
		}
		inv, err := f.Inv(lk.Coeff)
		if err != nil {
			return nil, err
		}
		cancelScale := f.Neg(f.Mul(c, inv))
		rq.Insert(mult, scaledPoly{p: gk, f: f, scale: cancelScale})
		b.MarkReducer(entry.GenIdx, true)
	}
	s.Free()
	if err := out.Finalize(); err != nil {
		return nil, err
	}
	return out, nil
}

// topReduce retires any active generator whose lead is a proper
// multiple of s's lead, per spec §4.8's autoTopReduce clause, and
// removes it from lookup.
func topReduce(pool *monomial.Pool, f field.Field, ord monomial.Ordering, cfg Config, b *basis.PolyBasis, lookup divisor.Lookup, s *polynomial.Poly) {
	sLead, ok := s.Lead()
	if !ok {
		return
	}
	b.Active(func(k int) bool {
		lk, ok := b.Get(k).Lead()
		if !ok {
			return true
		}
		if monomial.Divides(sLead.Mono, lk.Mono) && !lk.Mono.Equal(sLead.Mono) {
			b.Retire(k)
			lookup.RemoveByMono(lk.Mono)
		}
		return true
	})
}

// tailReduceAllByNew tail-reduces every other active generator's
// non-lead terms against newIdx, per spec §4.8's autoTailReduce
// clause. Each generator's own lead term is preserved untouched.
func tailReduceAllByNew(pool *monomial.Pool, f field.Field, ord monomial.Ordering, b *basis.PolyBasis, lookup divisor.Lookup, newIdx int) {
	newGen := b.Get(newIdx)
	newLead, ok := newGen.Lead()
	if !ok {
		return
	}
	b.Active(func(k int) bool {
		if k == newIdx {
			return true
		}
		gk := b.Get(k)
		if len(gk.Terms) < 2 {
			return true
		}
		rq := reducer.New(reducer.Heap, pool, b.Get(k).Field(), ord)
		identity := pool.Identity()
		rq.InsertTail(identity, reducer.Wrap(gk))

		out := polynomial.New(pool, ord, gk.Field())
		out.Append(gk.Terms[0].Coeff, clonePoolMono(pool, gk.Terms[0].Mono))
		for {
			m, c, ok := rq.LeadTerm()
			if !ok {
				break
			}
			if monomial.Divides(newLead.Mono, m) {
				mult, err := pool.Divide(newLead.Mono, m)
				if err != nil {
					break
				}
				inv, err := gk.Field().Inv(newLead.Coeff)
				if err != nil {
					break
				}
				cancelScale := gk.Field().Neg(gk.Field().Mul(c, inv))
				rq.Insert(mult, scaledPoly{p: newGen, f: gk.Field(), scale: cancelScale})
				continue
			}
			clone := clonePoolMono(pool, m)
			out.Append(c, clone)
			rq.RemoveLeadTerm()
		}
		if err := out.Finalize(); err == nil {
			gk.Free()
			*gk = *out
		}
		return true
	})
}

// popSPairGroup pops up to groupSize pairs off tri that all share the
// current minimum sort key, implementing spec §4.8/§4.9's
// SPairGroupSize batching: F4 builds one QuadMatrix per group of
// same-key pairs instead of one per pair. ok is false only when tri
// was already empty; a non-empty batch is always returned with ok
// true even if it falls short of groupSize because fewer pairs share
// the key.
func popSPairGroup(tri spair.Triangle, ord monomial.Ordering, groupSize int) ([]matrix.SPairSource, bool) {
	firstKey, ok := tri.TopOrderBy()
	if !ok {
		return nil, false
	}
	var batch []matrix.SPairSource
	for len(batch) < groupSize {
		key, ok := tri.TopOrderBy()
		if !ok || ord.Compare(key, firstKey) != monomial.EQ {
			break
		}
		i, j, ok := tri.Pop()
		if !ok {
			break
		}
		batch = append(batch, matrix.SPairSource{I: i, J: j})
	}
	return batch, true
}

func clonePoolMono(pool *monomial.Pool, m *monomial.Mono) *monomial.Mono {
	c := pool.Borrow()
	_ = pool.SetExponents(c, m.Exponents(), m.Component())
	return c
}
