// SPDX-License-Identifier: MIT

package matrix

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/go-groebner/groebner/field"
)

// ReducedRow is one BottomRow after its LEFT portion has been
// eliminated: the surviving RIGHT-column entries, normalized to
// monic.
type ReducedRow struct {
	Cols   []uint32
	Coeffs []field.Elem
	Zero   bool
}

// F4Reducer performs the dense-scratch reduction of spec §4.9 over a
// QuadMatrix.
type F4Reducer struct {
	f  field.Field
	qm *QuadMatrix
}

// NewF4Reducer constructs an F4Reducer and normalizes qm's TOP rows to
// monic in place (spec §4.9: "ensure each is monic").
func NewF4Reducer(f field.Field, qm *QuadMatrix) (*F4Reducer, error) {
	r := &F4Reducer{f: f, qm: qm}
	if err := r.normalizeTopRows(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *F4Reducer) normalizeTopRows() error {
	for c, rowIdx := range r.qm.PivotRowOfLeftCol {
		lcols, lvals, err := r.qm.TopLeft.Entries(rowIdx)
		if err != nil {
			return err
		}
		var pivotVal field.Elem
		found := false
		for i, pc := range lcols {
			if int(pc) == c {
				pivotVal = lvals[i]
				found = true
				break
			}
		}
		if !found {
			return ErrSingularPivot
		}
		inv, err := r.f.Inv(pivotVal)
		if err != nil {
			return err
		}
		for i := range lvals {
			lvals[i] = r.f.Mul(lvals[i], inv)
		}
		_, rvals, err := r.qm.TopRight.Entries(rowIdx)
		if err != nil {
			return err
		}
		for i := range rvals {
			rvals[i] = r.f.Mul(rvals[i], inv)
		}
	}
	return nil
}

// eliminateLeft runs forward elimination of BottomRow bottomRowIdx's
// LEFT portion against the TOP rows, using a private dense scratch
// vector, accumulating raw uint64 sums and reducing modulo p only
// when a column's current value is needed, exploiting
// p^2*maxAccum < 2^64 (spec §4.9's deferred-reduction note) to avoid a
// mod on every single subtraction. It returns the surviving RIGHT
// portion, fully reduced mod p but NOT yet rescaled to monic — callers
// that need to combine two rows linearly (ReducePair) must combine
// before normalizing, since monic rescaling is a per-row, nonlinear
// step.
func (r *F4Reducer) eliminateLeft(bottomRowIdx int) ([]uint64, error) {
	p := uint64(r.f.P())
	nLeft := len(r.qm.LeftCols)
	nRight := len(r.qm.RightCols)
	scratch := make([]uint64, nLeft+nRight)

	lcols, lvals, err := r.qm.BottomLeft.Entries(bottomRowIdx)
	if err != nil {
		return nil, err
	}
	for i, c := range lcols {
		scratch[c] += uint64(lvals[i])
	}
	rcols, rvals, err := r.qm.BottomRight.Entries(bottomRowIdx)
	if err != nil {
		return nil, err
	}
	for i, c := range rcols {
		scratch[nLeft+int(c)] += uint64(rvals[i])
	}

	// Forward elimination: LeftCols is sorted in descending monomial
	// order, so a pivot row's non-pivot LEFT entries all lie at
	// columns greater than its own pivot column — a single forward
	// pass suffices, matching the "TOP rows already echelon" claim.
	for c := 0; c < nLeft; c++ {
		val := scratch[c] % p
		if val == 0 {
			continue
		}
		rowIdx := r.qm.PivotRowOfLeftCol[c]
		plcols, plvals, err := r.qm.TopLeft.Entries(rowIdx)
		if err != nil {
			return nil, err
		}
		prcols, prvals, err := r.qm.TopRight.Entries(rowIdx)
		if err != nil {
			return nil, err
		}
		for i, pc := range plcols {
			scratch[pc] += (p - (val*uint64(plvals[i]))%p) % p
		}
		for i, pc := range prcols {
			idx := nLeft + int(pc)
			scratch[idx] += (p - (val*uint64(prvals[i]))%p) % p
		}
	}

	right := make([]uint64, nRight)
	for c := 0; c < nRight; c++ {
		right[c] = scratch[nLeft+c] % p
	}
	return right, nil
}

// normalizeRight packs right's nonzero entries into a ReducedRow and
// rescales them so the first surviving entry is 1.
func (r *F4Reducer) normalizeRight(right []uint64) (ReducedRow, error) {
	var cols []uint32
	var coeffs []field.Elem
	for c, v := range right {
		if v == 0 {
			continue
		}
		cols = append(cols, uint32(c))
		coeffs = append(coeffs, field.Elem(v))
	}
	if len(coeffs) == 0 {
		return ReducedRow{Zero: true}, nil
	}
	inv, err := r.f.Inv(coeffs[0])
	if err != nil {
		return ReducedRow{}, err
	}
	for i := range coeffs {
		coeffs[i] = r.f.Mul(coeffs[i], inv)
	}
	return ReducedRow{Cols: cols, Coeffs: coeffs}, nil
}

// reduceOne eliminates BottomRow bottomRowIdx's LEFT portion and
// normalizes the survivor to monic.
func (r *F4Reducer) reduceOne(bottomRowIdx int) (ReducedRow, error) {
	right, err := r.eliminateLeft(bottomRowIdx)
	if err != nil {
		return ReducedRow{}, err
	}
	return r.normalizeRight(right)
}

// ReducePair eliminates the LEFT portions of two BottomRows built for
// the same S-pair by Builder.Build's Phase 1 (rowA = lead_i's
// cofactor row, rowB = lead_j's cofactor row) and returns the
// normalized reduction of their difference, i.e. the S-polynomial's
// fully tail-reduced form. The two eliminations must be combined
// before normalizing rather than after: reduceOne(rowA) and
// reduceOne(rowB) are each independently rescaled to their own monic
// leading entry, so subtracting the already-normalized results would
// not recover the eliminated S-polynomial in general.
func (r *F4Reducer) ReducePair(rowA, rowB int) (ReducedRow, error) {
	p := uint64(r.f.P())
	a, err := r.eliminateLeft(rowA)
	if err != nil {
		return ReducedRow{}, err
	}
	b, err := r.eliminateLeft(rowB)
	if err != nil {
		return ReducedRow{}, err
	}
	diff := make([]uint64, len(a))
	for i := range a {
		diff[i] = (a[i] + (p - b[i])) % p
	}
	return r.normalizeRight(diff)
}

// Reduce eliminates every BottomRow, in parallel, one scratch vector
// per goroutine — the second of the two named parallel regions (spec
// §5) — via golang.org/x/sync/errgroup, matching the wiring decision
// in §3. Results are written into a pre-sized slice by index so no
// goroutine shares mutable state with another.
func (r *F4Reducer) Reduce(ctx context.Context) ([]ReducedRow, error) {
	n := r.qm.BottomLeft.NumRows()
	out := make([]ReducedRow, n)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row, err := r.reduceOne(i)
			if err != nil {
				return err
			}
			out[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
