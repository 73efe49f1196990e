// SPDX-License-Identifier: MIT

package table

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// FromRecord copies an Arrow record batch into a Table.
// Supported column types: utf8, large_utf8, int32, int64, float32, float64
// and bool; nulls become Null. The record is not retained or released.
func FromRecord(rec arrow.Record) (*Table, error) {
	if rec == nil {
		return nil, ErrNilTable
	}
	nc, nr := int(rec.NumCols()), int(rec.NumRows())
	names := make([]string, nc)
	cols := make([][]Value, nc)
	for j := 0; j < nc; j++ {
		names[j] = rec.ColumnName(j)
		col, err := arrowColumn(rec.Column(j), nr)
		if err != nil {
			return nil, fmt.Errorf("FromRecord: column %q: %w", names[j], err)
		}
		cols[j] = col
	}

	return fromColumns(names, cols)
}

// arrowColumn converts one Arrow array to Values.
func arrowColumn(arr arrow.Array, n int) ([]Value, error) {
	out := make([]Value, n)
	var at func(i int) Value
	switch a := arr.(type) {
	case *array.String:
		at = func(i int) Value { return String(a.Value(i)) }
	case *array.LargeString:
		at = func(i int) Value { return String(a.Value(i)) }
	case *array.Int64:
		at = func(i int) Value { return Int(a.Value(i)) }
	case *array.Int32:
		at = func(i int) Value { return Int(int64(a.Value(i))) }
	case *array.Float64:
		at = func(i int) Value { return Float(a.Value(i)) }
	case *array.Float32:
		at = func(i int) Value { return Float(float64(a.Value(i))) }
	case *array.Boolean:
		at = func(i int) Value { return Bool(a.Value(i)) }
	default:
		return nil, fmt.Errorf("%s: %w", arr.DataType(), ErrUnsupportedType)
	}
	for i := 0; i < n; i++ {
		if arr.IsNull(i) {
			continue // zero Value is Null
		}
		out[i] = at(i)
	}

	return out, nil
}
