// SPDX-License-Identifier: MIT

package table

import "fmt"

// Table is an ordered set of equal-length named columns.
// Build one with New + AppendRow, FromRows, or an ingestion helper.
type Table struct {
	names []string
	index map[string]int
	cols  [][]Value
	n     int
}

// New returns an empty table with the given columns.
func New(columns ...string) (*Table, error) {
	t := &Table{
		names: make([]string, 0, len(columns)),
		index: make(map[string]int, len(columns)),
		cols:  make([][]Value, 0, len(columns)),
	}
	for _, name := range columns {
		if _, dup := t.index[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		t.index[name] = len(t.names)
		t.names = append(t.names, name)
		t.cols = append(t.cols, nil)
	}

	return t, nil
}

// FromRows builds a table from row-major values.
func FromRows(columns []string, rows [][]Value) (*Table, error) {
	t, err := New(columns...)
	if err != nil {
		return nil, err
	}
	for j := range t.cols {
		t.cols[j] = make([]Value, 0, len(rows))
	}
	for _, row := range rows {
		if err := t.AppendRow(row...); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// fromColumns builds a table from column-major values, taking ownership.
func fromColumns(names []string, cols [][]Value) (*Table, error) {
	t, err := New(names...)
	if err != nil {
		return nil, err
	}
	n := 0
	if len(cols) > 0 {
		n = len(cols[0])
	}
	for j, col := range cols {
		if len(col) != n {
			return nil, fmt.Errorf("column %q has %d values, want %d: %w", names[j], len(col), n, ErrLengthMismatch)
		}
	}
	t.cols = cols
	t.n = n

	return t, nil
}

// AppendRow appends one row in column order. It is the only method that
// mutates its receiver and is meant for building a table before use.
func (t *Table) AppendRow(values ...Value) error {
	if t == nil {
		return ErrNilTable
	}
	if len(values) != len(t.names) {
		return fmt.Errorf("row %d has %d values, want %d: %w", t.n, len(values), len(t.names), ErrRowWidth)
	}
	for j, v := range values {
		t.cols[j] = append(t.cols[j], v)
	}
	t.n++

	return nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return t.n }

// Columns returns a copy of the column names in order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)

	return out
}

// HasColumn reports whether name is a column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Missing returns the subset of names that are not columns, in request order.
func (t *Table) Missing(names ...string) []string {
	var missing []string
	for _, name := range names {
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}

	return missing
}

// Require fails with ErrColumnNotFound naming every absent column.
func (t *Table) Require(names ...string) error {
	if missing := t.Missing(names...); len(missing) > 0 {
		return fmt.Errorf("%w: %q", ErrColumnNotFound, missing)
	}

	return nil
}

// Column returns a copy of the named column.
func (t *Table) Column(name string) ([]Value, error) {
	j, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	out := make([]Value, t.n)
	copy(out, t.cols[j])

	return out, nil
}

// At returns the value at (row, column name).
func (t *Table) At(row int, name string) (Value, error) {
	j, ok := t.index[name]
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	if row < 0 || row >= t.n {
		return Value{}, fmt.Errorf("At(%d): %w", row, ErrRowOutOfRange)
	}

	return t.cols[j][row], nil
}

// Row returns row i in column order.
func (t *Table) Row(i int) ([]Value, error) {
	if i < 0 || i >= t.n {
		return nil, fmt.Errorf("Row(%d): %w", i, ErrRowOutOfRange)
	}
	out := make([]Value, len(t.cols))
	for j := range t.cols {
		out[j] = t.cols[j][i]
	}

	return out, nil
}

// values returns row i restricted to the column indices idx.
// Callers resolve and validate the indices first.
func (t *Table) values(i int, idx []int) []Value {
	out := make([]Value, len(idx))
	for k, j := range idx {
		out[k] = t.cols[j][i]
	}

	return out
}

// Keys returns, for every row, the tuple of values in the named columns.
func (t *Table) Keys(names ...string) ([][]Value, error) {
	if err := t.Require(names...); err != nil {
		return nil, err
	}
	idx := make([]int, len(names))
	for k, name := range names {
		idx[k] = t.index[name]
	}
	out := make([][]Value, t.n)
	for i := 0; i < t.n; i++ {
		out[i] = t.values(i, idx)
	}

	return out, nil
}

// Clone returns a deep copy: no column slice is shared with t.
func (t *Table) Clone() *Table {
	out := &Table{
		names: make([]string, len(t.names)),
		index: make(map[string]int, len(t.index)),
		cols:  make([][]Value, len(t.cols)),
		n:     t.n,
	}
	copy(out.names, t.names)
	for k, v := range t.index {
		out.index[k] = v
	}
	for j, col := range t.cols {
		out.cols[j] = make([]Value, len(col))
		copy(out.cols[j], col)
	}

	return out
}

// WithColumn returns a copy of t with the named column set to values.
// An existing column is replaced in place (its position is kept); a new
// one is appended last.
func (t *Table) WithColumn(name string, values []Value) (*Table, error) {
	if len(values) != t.n {
		return nil, fmt.Errorf("column %q has %d values, want %d: %w", name, len(values), t.n, ErrLengthMismatch)
	}
	out := t.Clone()
	col := make([]Value, t.n)
	copy(col, values)
	if j, ok := out.index[name]; ok {
		out.cols[j] = col
		return out, nil
	}
	out.index[name] = len(out.names)
	out.names = append(out.names, name)
	out.cols = append(out.cols, col)

	return out, nil
}

// Take returns a new table with the given rows, in the given order.
func (t *Table) Take(rows []int) (*Table, error) {
	out := &Table{
		names: t.Columns(),
		index: make(map[string]int, len(t.index)),
		cols:  make([][]Value, len(t.cols)),
		n:     len(rows),
	}
	for k, v := range t.index {
		out.index[k] = v
	}
	for j := range t.cols {
		out.cols[j] = make([]Value, len(rows))
	}
	for k, i := range rows {
		if i < 0 || i >= t.n {
			return nil, fmt.Errorf("Take(%d): %w", i, ErrRowOutOfRange)
		}
		for j := range t.cols {
			out.cols[j][k] = t.cols[j][i]
		}
	}

	return out, nil
}

// Where returns the rows whose value in column name satisfies pred, plus
// their original indices (ascending).
func (t *Table) Where(name string, pred func(Value) bool) (*Table, []int, error) {
	j, ok := t.index[name]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	rows := make([]int, 0, t.n)
	for i, v := range t.cols[j] {
		if pred(v) {
			rows = append(rows, i)
		}
	}
	out, err := t.Take(rows)
	if err != nil {
		return nil, nil, err
	}

	return out, rows, nil
}
