// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/prepkit/table"
)

var (
	errNoInput       = errors.New("one of --in, --arrow or --sqlite is required")
	errManyInputs    = errors.New("--in, --arrow and --sqlite are mutually exclusive")
	errQueryRequired = errors.New("--sqlite requires --query")
)

// source names where the input table comes from.
type source struct {
	csvPath    string
	arrowPath  string
	sqlitePath string
	query      string
}

func (s source) validate() error {
	n := 0
	for _, p := range []string{s.csvPath, s.arrowPath, s.sqlitePath} {
		if p != "" {
			n++
		}
	}
	switch {
	case n == 0:
		return errNoInput
	case n > 1:
		return errManyInputs
	case s.sqlitePath != "" && s.query == "":
		return errQueryRequired
	}

	return nil
}

// load reads the input table. stdin is used for --in "-".
func (s source) load(ctx context.Context, stdin io.Reader) (*table.Table, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	switch {
	case s.sqlitePath != "":
		return loadSQLite(ctx, s.sqlitePath, s.query)
	case s.arrowPath != "":
		return loadArrow(s.arrowPath)
	case s.csvPath == "-":
		return table.ReadCSV(stdin)
	default:
		f, err := os.Open(s.csvPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return table.ReadCSV(f)
	}
}

func loadSQLite(ctx context.Context, path, query string) (*table.Table, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer db.Close()

	return table.ReadSQL(ctx, db, query)
}

// loadArrow reads every record batch of an Arrow IPC stream into one table.
func loadArrow(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rdr, err := ipc.NewReader(f, ipc.WithAllocator(memory.NewGoAllocator()))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	defer rdr.Release()

	var out *table.Table
	for rdr.Next() {
		batch, err := table.FromRecord(rdr.Record())
		if err != nil {
			return nil, err
		}
		if out == nil {
			out = batch
			continue
		}
		for i := 0; i < batch.Len(); i++ {
			row, _ := batch.Row(i)
			if err := out.AppendRow(row...); err != nil {
				return nil, err
			}
		}
	}
	if err := rdr.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if out == nil {
		names := make([]string, 0, rdr.Schema().NumFields())
		for _, field := range rdr.Schema().Fields() {
			names = append(names, field.Name)
		}
		return table.New(names...)
	}

	return out, nil
}

// writeTable writes t as CSV to path, or to stdout for "-".
func writeTable(t *table.Table, path string, stdout io.Writer) error {
	if path == "-" || path == "" {
		return t.WriteCSV(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := t.WriteCSV(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
