// SPDX-License-Identifier: MIT

package table

import (
	"fmt"

	"github.com/katalvlaran/prepkit/matrix"
)

// Floats extracts the named columns as a Len()×len(names) matrix.
// Missing cells become NaN; a string cell fails with ErrNotNumeric naming
// its position. A zero-row table yields a 0×len(names) matrix.
func (t *Table) Floats(names ...string) (*matrix.Dense, error) {
	if err := t.Require(names...); err != nil {
		return nil, err
	}
	c := len(names)
	data := make([]float64, t.n*c)
	for k, name := range names {
		col := t.cols[t.index[name]]
		for i, v := range col {
			f, ok := v.Float64()
			if !ok {
				return nil, fmt.Errorf("row %d column %q (%s): %w", i, name, v.Kind(), ErrNotNumeric)
			}
			data[i*c+k] = f
		}
	}

	return matrix.NewFromData(t.n, c, data)
}

// WithFloats returns a copy of t with the named columns replaced by the
// columns of m as Float values. m must be Len()×len(names); NaN cells read
// back as missing.
func (t *Table) WithFloats(names []string, m matrix.Matrix) (*Table, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}
	if m.Rows() != t.n || m.Cols() != len(names) {
		return nil, fmt.Errorf("WithFloats: %dx%d matrix for %d rows × %d columns: %w",
			m.Rows(), m.Cols(), t.n, len(names), ErrLengthMismatch)
	}
	if err := t.Require(names...); err != nil {
		return nil, err
	}

	out := t.Clone()
	for k, name := range names {
		col := make([]Value, t.n)
		for i := 0; i < t.n; i++ {
			f, err := m.At(i, k)
			if err != nil {
				return nil, err
			}
			col[i] = Float(f)
		}
		out.cols[out.index[name]] = col
	}

	return out, nil
}
