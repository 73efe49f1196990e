// SPDX-License-Identifier: MIT

package winsor

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/prepkit/matrix"
)

// Operation tags for error wrapping.
const (
	opFit       = "Fit"
	opTransform = "Transform"
)

// Winsorizer is the stateless configuration of a quantile clipper.
//
// Fields:
//   - Lower, Upper: clipping quantiles in [0, 1], Lower ≤ Upper.
//   - IgnoreNaN: drop NaN cells per column during Fit; otherwise NaN or
//     ±Inf in fit data is rejected with matrix.ErrNaNInf.
type Winsorizer struct {
	Lower     float64
	Upper     float64
	IgnoreNaN bool
}

// New returns a Winsorizer with DefaultLower/DefaultUpper and opts applied.
func New(opts ...Option) Winsorizer {
	w := Winsorizer{Lower: DefaultLower, Upper: DefaultUpper}
	for _, opt := range opts {
		if opt != nil {
			opt(&w)
		}
	}

	return w
}

// Validate checks both quantiles lie in [0, 1] and Lower ≤ Upper.
func (w Winsorizer) Validate() error {
	for _, q := range []float64{w.Lower, w.Upper} {
		if !(q >= 0 && q <= 1) {
			return fmt.Errorf("%g: %w", q, ErrInvalidQuantile)
		}
	}
	if w.Lower > w.Upper {
		return fmt.Errorf("%g > %g: %w", w.Lower, w.Upper, ErrQuantileOrder)
	}

	return nil
}

// Fitted holds per-column clipping bounds. It is immutable once returned
// by Fit; the zero value is "not fitted".
type Fitted struct {
	w     Winsorizer
	lower []float64
	upper []float64
}

// Fit computes, independently per column of X (rows = samples), the values
// at w.Lower and w.Upper.
// Implementation:
//   - Stage 1: validate the configuration, then X (non-nil, rows > 0, finite).
//   - Stage 2: sort each column once and read both quantiles from it.
//
// Errors:
//   - ErrInvalidQuantile, ErrQuantileOrder, matrix.ErrNilMatrix,
//     ErrEmptyInput, matrix.ErrNaNInf.
//
// Complexity:
//   - Time O(c · r log r), Space O(r + c).
func (w Winsorizer) Fit(X matrix.Matrix) (*Fitted, error) {
	// Stage 1 (Validate).
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opFit, err)
	}
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, fmt.Errorf("%s: %w", opFit, err)
	}
	if X.Rows() == 0 {
		return nil, fmt.Errorf("%s: %w", opFit, ErrEmptyInput)
	}

	// Stage 2 (Execute).
	qs := []float64{w.Lower, w.Upper}
	var bounds [][]float64
	var err error
	if w.IgnoreNaN {
		bounds, err = nanColumnQuantiles(X, qs)
	} else {
		if err = matrix.ValidateFinite(X); err != nil {
			return nil, fmt.Errorf("%s: %w", opFit, err)
		}
		bounds, err = matrix.ColumnQuantiles(X, qs)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFit, err)
	}

	return &Fitted{w: w, lower: bounds[0], upper: bounds[1]}, nil
}

// nanColumnQuantiles is ColumnQuantiles with NaN cells dropped per column.
// ±Inf is still rejected.
func nanColumnQuantiles(X matrix.Matrix, qs []float64) ([][]float64, error) {
	r, c := X.Rows(), X.Cols()
	out := make([][]float64, len(qs))
	for k := range out {
		out[k] = make([]float64, c)
	}

	col := make([]float64, 0, r)
	for j := 0; j < c; j++ {
		col = col[:0]
		for i := 0; i < r; i++ {
			v, err := X.At(i, j)
			if err != nil {
				return nil, err
			}
			switch {
			case math.IsNaN(v):
				continue
			case math.IsInf(v, 0):
				return nil, fmt.Errorf("(%d,%d): %w", i, j, matrix.ErrNaNInf)
			}
			col = append(col, v)
		}
		if len(col) == 0 {
			return nil, fmt.Errorf("column %d: %w", j, ErrEmptyInput)
		}
		slices.Sort(col)
		for k, q := range qs {
			v, err := matrix.Quantile(col, q)
			if err != nil {
				return nil, err
			}
			out[k][j] = v
		}
	}

	return out, nil
}

// Transform returns a copy of X with every element of column j clamped into
// [Lower()[j], Upper()[j]]. NaN cells stay NaN.
//
// Errors:
//   - ErrNotFitted when f is nil or zero (checked before X).
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch when X.Cols()
//     differs from the fitted feature count.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (f *Fitted) Transform(X matrix.Matrix) (*matrix.Dense, error) {
	if !f.IsFitted() {
		return nil, fmt.Errorf("%s: %w", opTransform, ErrNotFitted)
	}
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, fmt.Errorf("%s: %w", opTransform, err)
	}
	if X.Cols() != len(f.lower) {
		return nil, fmt.Errorf("%s: %d features, fitted on %d: %w",
			opTransform, X.Cols(), len(f.lower), matrix.ErrDimensionMismatch)
	}

	out, err := matrix.ClampColumns(X, f.lower, f.upper)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTransform, err)
	}

	return out, nil
}

// IsFitted reports whether f carries bounds.
func (f *Fitted) IsFitted() bool {
	return f != nil && f.lower != nil && f.upper != nil
}

// Features returns the number of fitted columns.
func (f *Fitted) Features() int {
	if f == nil {
		return 0
	}

	return len(f.lower)
}

// Lower returns a copy of the per-column lower bounds.
func (f *Fitted) Lower() []float64 {
	if f == nil {
		return nil
	}

	return slices.Clone(f.lower)
}

// Upper returns a copy of the per-column upper bounds.
func (f *Fitted) Upper() []float64 {
	if f == nil {
		return nil
	}

	return slices.Clone(f.upper)
}

// Quantiles returns the configuration the bounds were fitted with.
func (f *Fitted) Quantiles() (lower, upper float64) {
	if f == nil {
		return 0, 0
	}

	return f.w.Lower, f.w.Upper
}

// FitTransform fits w on X and clips X with the result.
func FitTransform(w Winsorizer, X matrix.Matrix) (*Fitted, *matrix.Dense, error) {
	f, err := w.Fit(X)
	if err != nil {
		return nil, nil, err
	}
	out, err := f.Transform(X)
	if err != nil {
		return nil, nil, err
	}

	return f, out, nil
}
