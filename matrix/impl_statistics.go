// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide per-column order statistics (quantiles) as deterministic
//     compositions over a single sort per column.
//
// Exposed API:
//   - Quantile(sorted, q)      -> value   // linear interpolation between closest ranks
//   - ColumnQuantiles(X, qs)   -> [][]    // result[k][j] = quantile qs[k] of column j
//
// Determinism & Performance:
//   - Fixed i→j traversal when gathering columns.
//   - Each column is copied and sorted once, regardless of len(qs).
//
// AI-Hints:
//   - Sanitize inputs first (ValidateFinite) if NaN must not reach the sort.

package matrix

import (
	"fmt"
	"math"
	"slices"
)

// Operation name constants for unified error wrapping.
const (
	opQuantile        = "Quantile"
	opColumnQuantiles = "ColumnQuantiles"
)

// matrixErrorf wraps an error with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Quantile returns the q-quantile of an ascending-sorted sample.
// Implementation:
//   - Stage 1: validate len(sorted)>0 and q ∈ [0,1].
//   - Stage 2: virtual index h = q·(n-1); lo = ⌊h⌋, t = h - lo.
//   - Stage 3: interpolate between sorted[lo] and sorted[lo+1].
//
// Behavior highlights:
//   - q=0 yields the minimum, q=1 the maximum, exactly.
//   - For t ≥ 0.5 the interpolation is anchored on the upper neighbour, which
//     keeps the result inside [sorted[lo], sorted[lo+1]] under rounding.
//
// Errors:
//   - ErrEmpty for an empty sample, ErrQuantileRange for q ∉ [0,1].
//
// Complexity:
//   - Time O(1), Space O(1).
func Quantile(sorted []float64, q float64) (float64, error) {
	// Stage 1 (Validate).
	n := len(sorted)
	if n == 0 {
		return 0, matrixErrorf(opQuantile, ErrEmpty)
	}
	if err := validateQuantile(q); err != nil {
		return 0, matrixErrorf(opQuantile, err)
	}

	// Stage 2 (Prepare): locate the bracketing order statistics.
	h := q * float64(n-1)
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1], nil
	}
	t := h - float64(lo)

	// Stage 3 (Execute): lerp a→b by t.
	a, b := sorted[lo], sorted[lo+1]
	diff := b - a
	if t >= 0.5 {
		return b - diff*(1-t), nil
	}

	return a + diff*t, nil
}

// ColumnQuantiles computes, for every q in qs, the q-quantile of each column.
// Implementation:
//   - Stage 1: validate X (non-nil, Rows()>0) and every q.
//   - Stage 2: per column, gather values (Dense fast-path; At fallback) and sort.
//   - Stage 3: evaluate each q on the sorted column.
//
// Returns:
//   - [][]float64 with len(qs) rows and Cols() entries each.
//
// Errors:
//   - ErrNilMatrix, ErrEmpty (zero rows), ErrQuantileRange.
//
// Determinism:
//   - NaN values sort first (slices.Sort order) and so skew low quantiles;
//     callers that care reject them up front.
//
// Complexity:
//   - Time O(c · r log r), Space O(r) scratch + O(len(qs)·c) output.
func ColumnQuantiles(X Matrix, qs []float64) ([][]float64, error) {
	// Stage 1 (Validate).
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnQuantiles, err)
	}
	r, c := X.Rows(), X.Cols()
	if r == 0 {
		return nil, matrixErrorf(opColumnQuantiles, ErrEmpty)
	}
	for _, q := range qs {
		if err := validateQuantile(q); err != nil {
			return nil, matrixErrorf(opColumnQuantiles, err)
		}
	}

	out := make([][]float64, len(qs))
	for k := range out {
		out[k] = make([]float64, c)
	}

	// Stage 2 (Execute): one scratch buffer reused across columns.
	col := make([]float64, r)
	d, fast := X.(*Dense)
	var i, j, k int
	for j = 0; j < c; j++ {
		if fast {
			for i = 0; i < r; i++ {
				col[i] = d.data[i*c+j]
			}
		} else {
			for i = 0; i < r; i++ {
				v, err := X.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opColumnQuantiles, err)
				}
				col[i] = v
			}
		}
		slices.Sort(col)

		// Stage 3 (Finalize): evaluate every requested quantile on this column.
		for k = range qs {
			v, err := Quantile(col, qs[k])
			if err != nil {
				return nil, matrixErrorf(opColumnQuantiles, err)
			}
			out[k][j] = v
		}
	}

	return out, nil
}
