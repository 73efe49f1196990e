// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Each facade delegates to the canonical kernel; no logic duplication.

package matrix

// ZerosLike returns a new zero matrix with the same shape as m.
// Zero-sized shapes are preserved; kernels allocate their outputs with it.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return newDenseZeroOK(m.Rows(), m.Cols())
}

// ClampColumns returns a copy of X where column j is pinned into [lo[j], hi[j]].
// len(lo) and len(hi) must equal X.Cols(); X is not modified.
// Complexity: O(r*c).
func ClampColumns(X Matrix, lo, hi []float64) (*Dense, error) {
	return ewClampCols(X, lo, hi)
}

// ColumnQuantile is ColumnQuantiles for a single q.
func ColumnQuantile(X Matrix, q float64) ([]float64, error) {
	out, err := ColumnQuantiles(X, []float64{q})
	if err != nil {
		return nil, err
	}

	return out[0], nil
}
