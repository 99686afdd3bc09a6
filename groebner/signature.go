// SPDX-License-Identifier: MIT

package groebner

import (
	"context"
	"time"

	"github.com/go-groebner/groebner/basis"
	"github.com/go-groebner/groebner/divisor"
	"github.com/go-groebner/groebner/field"
	"github.com/go-groebner/groebner/monomial"
	"github.com/go-groebner/groebner/polynomial"
	"github.com/go-groebner/groebner/reducer"
	"github.com/go-groebner/groebner/spair"
)

type pairKey struct{ i, j int }

// SignatureBased computes a Gröbner basis using the signature-guided
// S-pair criteria of spec §4.7 (an F5-style algorithm), tracking each
// generator's module-monomial signature and discarding pairs whose
// signature already lies in the accumulated syzygy set.
func SignatureBased(ctx context.Context, pool *monomial.Pool, f field.Field, ord monomial.Ordering, gens []*polynomial.Poly, cfg Config) (*basis.SigPolyBasis, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Reducer == ReducerF4 {
		return nil, ErrF4RequiresClassical
	}

	b := basis.NewSig(ord.Term)
	lookup := newLookup(cfg, pool.Arity(), b)
	buildCfg := spair.DefaultBuildConfig()

	var syzygies []*monomial.Mono
	pairData := make(map[pairKey]spair.Candidate)
	var currentCands map[int]spair.Candidate

	tri := spair.New(ord, func(i, j int) (*monomial.Mono, bool) {
		c, ok := currentCands[j]
		if !ok {
			return nil, false
		}
		pairData[pairKey{i, j}] = c
		return c.Sig, true
	})

	openPairsFor := func(idx int) error {
		cands, err := spair.BuildPairs(pool, ord, b, idx, syzygies, buildCfg)
		if err != nil {
			return err
		}
		currentCands = make(map[int]spair.Candidate, len(cands))
		for _, c := range cands {
			currentCands[c.J] = c
		}
		tri.OpenColumn(idx)
		currentCands = nil
		return nil
	}

	insert := func(p *polynomial.Poly, sig *monomial.Mono) (int, error) {
		idx := b.InsertSig(p, sig)
		if lead, ok := p.Lead(); ok {
			lookup.Insert(lead.Mono, idx)
		}
		return idx, openPairsFor(idx)
	}

	for _, g := range gens {
		sig := pool.Identity()
		exps := make([]int32, pool.Arity())
		// Components start at 1, not 0: monomial.Divides treats component 0
		// as a wildcard that matches any component, so a component-0
		// signature would spuriously "divide" every other generator's
		// signature regardless of which standard basis vector it names.
		if err := pool.SetExponents(sig, exps, int32(b.Len())+1); err != nil {
			return nil, err
		}
		if _, err := insert(g, sig); err != nil {
			return nil, err
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

		i, j, ok := tri.Pop()
		if !ok {
			break
		}
		key := pairKey{i, j}
		cand, found := pairData[key]
		delete(pairData, key)
		if !found {
			continue
		}
		if b.IsRetired(i) || b.IsRetired(j) {
			pool.Release(cand.Sig)
			pool.Release(cand.U)
			pool.Release(cand.V)
			continue
		}

		s, err := sigReduceSPair(pool, f, ord, b, lookup, cand)
		if err != nil {
			return nil, err
		}
		if s.IsZero() {
			s.Free()
			syzygies = append(syzygies, cand.Sig)
			continue
		}
		if err := s.Normalize(); err != nil {
			return nil, err
		}

		if _, err := insert(s, cand.Sig); err != nil {
			return nil, err
		}

		rounds++
		if cfg.PrintInterval > 0 && rounds%cfg.PrintInterval == 0 {
			logger.Info("progress", "rounds", rounds, "basisSize", b.Len())
		}
	}
	return b, nil
}

// sigReduceSPair computes cand's S-polynomial (U*g_I - V*g_J, the two
// cofactors Colons produced) and reduces it to normal form, applying
// only reducers whose own signature times the required multiplier
// stays strictly below cand.Sig — a regular reduction step, per spec
// §4.7's signature-safety invariant. Each lead term is checked against
// every dividing generator via lookup.ForEachDivisor, not just the
// first one lookup happens to return, since a term can have several
// divisors and only some of them may be signature-safe. A term with no
// safe divisor among any of its candidates survives into the output
// unchanged.
func sigReduceSPair(pool *monomial.Pool, f field.Field, ord monomial.Ordering, b *basis.SigPolyBasis, lookup divisor.Lookup, cand spair.Candidate) (*polynomial.Poly, error) {
	gi, gj := b.Get(cand.I), b.Get(cand.J)

	rq := reducer.New(reducer.Heap, pool, f, ord)
	rq.Insert(cand.U, scaledPoly{p: gi, f: f, scale: f.One()})
	rq.Insert(cand.V, scaledPoly{p: gj, f: f, scale: f.Neg(f.One())})

	s := polynomial.New(pool, ord, f)
	reducer.Drain(rq, s)
	if err := s.Finalize(); err != nil {
		return nil, err
	}

	rq2 := reducer.New(reducer.Heap, pool, f, ord)
	identity := pool.Identity()
	rq2.Insert(identity, reducer.Wrap(s))

	out := polynomial.New(pool, ord, f)
	for {
		m, c, ok := rq2.LeadTerm()
		if !ok {
			break
		}

		var (
			applyMult *monomial.Mono
			applyIdx  int
			loopErr   error
		)
		lookup.ForEachDivisor(m, func(entry divisor.Entry) bool {
			mult, err := pool.Divide(entry.Mono, m)
			if err != nil {
				loopErr = err
				return false
			}
			reducerSig, err := pool.Multiply(mult, b.Signature(entry.GenIdx))
			if err != nil {
				pool.Release(mult)
				loopErr = err
				return false
			}
			safe := ord.Compare(reducerSig, cand.Sig) == monomial.LT
			pool.Release(reducerSig)
			if !safe {
				pool.Release(mult)
				return true // not safe: keep scanning other divisors of m
			}
			applyMult, applyIdx = mult, entry.GenIdx
			return false // found a signature-safe divisor, stop scanning
		})
		if loopErr != nil {
			return nil, loopErr
		}

		if applyMult != nil {
			gk := b.Get(applyIdx)
			lk, _ := gk.Lead()
			inv, err := f.Inv(lk.Coeff)
			if err != nil {
				pool.Release(applyMult)
				return nil, err
			}
			cancelScale := f.Neg(f.Mul(c, inv))
			rq2.Insert(applyMult, scaledPoly{p: gk, f: f, scale: cancelScale})
			b.MarkReducer(applyIdx, false)
			continue
		}

		clone := pool.Borrow()
		if err := pool.SetExponents(clone, m.Exponents(), m.Component()); err != nil {
			return nil, err
		}
		out.Append(c, clone)
		rq2.RemoveLeadTerm()
	}
	s.Free()
	if err := out.Finalize(); err != nil {
		return nil, err
	}
	return out, nil
}
