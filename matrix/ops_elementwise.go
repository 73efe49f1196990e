// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, private element-wise broadcast kernels (ew*) so the
//     public facades in api.go stay thin.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j).
//   - Dense fast-path operates on a single flat buffer (row-major).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

// ewClampCols computes out[i,j] = min(max(X[i,j], lo[j]), hi[j]).
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
//
// NaN elements stay NaN (builtin min/max propagate NaN). When lo[j] > hi[j]
// every element of column j becomes hi[j].
func ewClampCols(X Matrix, lo, hi []float64) (*Dense, error) {
	// Validate matrix presence using centralized validator.
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("clampCols", err)
	}
	r, c := X.Rows(), X.Cols()
	// Check broadcast vector lengths.
	if err := ValidateVecLen(lo, c); err != nil {
		return nil, matrixErrorf("clampCols", err)
	}
	if err := ValidateVecLen(hi, c); err != nil {
		return nil, matrixErrorf("clampCols", err)
	}
	// Allocate result; 0×c partitions are legal and pass straight through.
	out, err := ZerosLike(X)
	if err != nil {
		return nil, matrixErrorf("clampCols", err)
	}

	// Dense fast-path: single pass over the flat row-major buffer.
	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c // cache the base offset for row i
			for j := 0; j < c; j++ {
				out.data[base+j] = min(max(d.data[base+j], lo[j]), hi[j])
			}
		}
		return out, nil
	}

	// Generic fallback via At (still deterministic).
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf("clampCols", e)
			}
			out.data[i*c+j] = min(max(v, lo[j]), hi[j])
		}
	}

	return out, nil
}
