// Package table is a small in-memory tabular dataset: an ordered list of
// named columns holding typed scalar Values, all of equal length.
//
// Tables are treated as values. Every transforming method (WithColumn,
// WithFloats, Where, Take) returns a new *Table and leaves the receiver
// untouched; row order and row count are preserved unless a method's whole
// purpose is to select rows.
//
// Ingestion:
//
//	t, err := table.ReadCSV(f)                     // type-inferred CSV
//	t, err := table.FromRecord(rec)                // Apache Arrow record batch
//	t, err := table.ReadSQL(ctx, db, "SELECT ...") // any database/sql driver
//
// Numeric bridge:
//
//	X, err := t.Floats("x", "y")   // *matrix.Dense, missing cells become NaN
//	t2, err := t.WithFloats([]string{"x", "y"}, Y)
package table
