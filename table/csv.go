// SPDX-License-Identifier: MIT

package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ReadCSV reads a header row followed by data rows. Every cell is typed
// with Parse, so a column may mix kinds; numeric consumers (Floats) only
// require each cell to have a numeric view.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = false

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return New()
	}
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: header: %w", err)
	}
	t, err := New(header...)
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: %w", err)
	}

	row := make([]Value, len(header))
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// csv.ErrFieldCount is reported here with the line number.
			return nil, fmt.Errorf("ReadCSV: %w", err)
		}
		for j, cell := range rec {
			row[j] = Parse(cell)
		}
		if err := t.AppendRow(row...); err != nil {
			return nil, fmt.Errorf("ReadCSV: %w", err)
		}
	}

	return t, nil
}

// WriteCSV writes a header row and every row using Value.Text, so missing
// cells become empty fields and floats keep their canonical form.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.names); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	rec := make([]string, len(t.names))
	for i := 0; i < t.n; i++ {
		for j := range t.cols {
			rec[j] = t.cols[j][i].Text()
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteCSV: row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
