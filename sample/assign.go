// SPDX-License-Identifier: MIT

package sample

import (
	"fmt"
	"math"

	"github.com/katalvlaran/prepkit/table"
)

// Label values stamped by Assign.
const (
	Train = "train"
	Test  = "test"
)

// Operation tags for error wrapping.
const (
	opAssign    = "Assign"
	opFractions = "Fractions"
)

// Assign returns a copy of t with a label column ("train"/"test") computed
// from the key columns, in the given order.
// Implementation:
//   - Stage 1: validate fraction and label column name, then table and
//     columns; then column presence.
//   - Stage 2: per row, Fraction(key) and compare against the threshold.
//   - Stage 3: attach the label column on a copy (overwriting a same-named column).
//
// Errors:
//   - ErrInvalidFraction, ErrNoSampleColumn, table.ErrNilTable, ErrNoColumns,
//     table.ErrColumnNotFound (naming every missing column).
//
// Complexity:
//   - Time O(r·k) hashing plus O(r·c) for the copy.
func Assign(t *table.Table, columns []string, opts ...Option) (*table.Table, error) {
	o := gatherOptions(opts)
	if err := validateFraction(o.TrainingFrac); err != nil {
		return nil, fmt.Errorf("%s: %w", opAssign, err)
	}
	if o.SampleColumn == "" {
		return nil, fmt.Errorf("%s: %w", opAssign, ErrNoSampleColumn)
	}

	fractions, err := Fractions(t, columns)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAssign, err)
	}

	labels := make([]table.Value, len(fractions))
	for i, f := range fractions {
		labels[i] = table.String(Label(f, o.TrainingFrac))
	}

	out, err := t.WithColumn(o.SampleColumn, labels)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAssign, err)
	}

	return out, nil
}

// Fractions returns the per-row key fraction. It is the threshold-free half
// of Assign: labels for several fractions can be derived from one call.
func Fractions(t *table.Table, columns []string) ([]float64, error) {
	if t == nil {
		return nil, fmt.Errorf("%s: %w", opFractions, table.ErrNilTable)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%s: %w", opFractions, ErrNoColumns)
	}
	keys, err := t.Keys(columns...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFractions, err)
	}

	out := make([]float64, len(keys))
	for i, key := range keys {
		out[i] = Fraction(key)
	}

	return out, nil
}

// CreateSampleSplit keeps the single-column signature of earlier releases.
// It forwards to Assign with the default sample column.
//
// Deprecated: use Assign.
func CreateSampleSplit(t *table.Table, idColumn string, trainingFrac float64) (*table.Table, error) {
	return Assign(t, []string{idColumn}, WithTrainingFrac(trainingFrac))
}

// ParseColumns normalizes a dynamically-typed column spec (as decoded from
// YAML or JSON) to a list: a string is one column; []string and []any of
// strings are taken in order. Anything else fails with ErrColumnsType.
func ParseColumns(v any) ([]string, error) {
	switch x := v.(type) {
	case string:
		return []string{x}, nil
	case []string:
		out := make([]string, len(x))
		copy(out, x)
		return out, nil
	case []any:
		out := make([]string, len(x))
		for i, e := range x {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("element %d is %T: %w", i, e, ErrColumnsType)
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%T: %w", v, ErrColumnsType)
	}
}

// validateFraction accepts 0 ≤ f ≤ 1; NaN fails both comparisons.
func validateFraction(f float64) error {
	if math.IsNaN(f) || f < 0 || f > 1 {
		return fmt.Errorf("%g: %w", f, ErrInvalidFraction)
	}

	return nil
}
