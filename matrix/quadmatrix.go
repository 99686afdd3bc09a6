// SPDX-License-Identifier: MIT

package matrix

import "github.com/go-groebner/groebner/monomial"

// QuadMatrix is the four-block matrix spec §4.9 reduces: TopLeft rows
// are already in echelon form over LeftCols (one distinct pivot per
// row), TopRight/BottomLeft/BottomRight share those same LeftCols and
// RightCols column monomial lists.
type QuadMatrix struct {
	TopLeft, TopRight, BottomLeft, BottomRight *SparseMatrix
	LeftCols, RightCols                        []*monomial.Mono

	// PivotRowOfLeftCol maps a LeftCols index to the TopLeft/TopRight
	// row whose pivot lies in that column, one row per left column by
	// construction.
	PivotRowOfLeftCol []int
}

// Release returns every column monomial back to pool. Callers must
// not use qm afterward.
func (qm *QuadMatrix) Release(pool *monomial.Pool) {
	for _, m := range qm.LeftCols {
		pool.Release(m)
	}
	for _, m := range qm.RightCols {
		pool.Release(m)
	}
}
