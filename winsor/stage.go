// SPDX-License-Identifier: MIT

package winsor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/prepkit/matrix"
)

// Transformer is the stateful pipeline-stage protocol over gonum matrices.
type Transformer interface {
	Fit(X mat.Matrix) error
	Transform(X mat.Matrix) (mat.Matrix, error)
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}

var _ Transformer = (*Stage)(nil)

// Stage adapts a Winsorizer to Transformer. Each successful Fit replaces
// the held bounds. A Stage is not safe for concurrent Fit; share the
// *Fitted from Fitted() instead.
type Stage struct {
	w      Winsorizer
	fitted *Fitted
}

// NewStage returns an unfitted Stage for w.
func NewStage(w Winsorizer) *Stage {
	return &Stage{w: w}
}

// Fit learns bounds from X. On error the previous bounds are kept.
func (s *Stage) Fit(X mat.Matrix) error {
	d, err := fromGonum(X)
	if err != nil {
		return fmt.Errorf("%s: %w", opFit, err)
	}
	f, err := s.w.Fit(d)
	if err != nil {
		return err
	}
	s.fitted = f

	return nil
}

// Transform clips X with the held bounds.
func (s *Stage) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !s.fitted.IsFitted() {
		return nil, fmt.Errorf("%s: %w", opTransform, ErrNotFitted)
	}
	d, err := fromGonum(X)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTransform, err)
	}
	out, err := s.fitted.Transform(d)
	if err != nil {
		return nil, err
	}

	return toGonum(out), nil
}

// FitTransform is Fit followed by Transform on the same X.
func (s *Stage) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}

	return s.Transform(X)
}

// Fitted returns the held bounds, or nil before the first successful Fit.
func (s *Stage) Fitted() *Fitted { return s.fitted }

// fromGonum copies X into a *matrix.Dense. An empty gonum Dense (0×0)
// converts to a 0×0 matrix.
func fromGonum(X mat.Matrix) (*matrix.Dense, error) {
	if X == nil {
		return nil, matrix.ErrNilMatrix
	}
	if d, ok := X.(*mat.Dense); ok && d.IsEmpty() {
		return matrix.NewFromData(0, 0, nil)
	}
	r, c := X.Dims()
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = X.At(i, j)
		}
	}

	return matrix.NewFromData(r, c, data)
}

// toGonum copies d into a *mat.Dense. Zero-sized input yields an empty
// *mat.Dense, which gonum cannot construct through NewDense.
func toGonum(d *matrix.Dense) *mat.Dense {
	r, c := d.Rows(), d.Cols()
	if r == 0 || c == 0 {
		return &mat.Dense{}
	}
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		row, _ := d.Row(i)
		data = append(data, row...)
	}

	return mat.NewDense(r, c, data)
}
