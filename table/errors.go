// SPDX-License-Identifier: MIT

package table

import "errors"

// Sentinel errors. Messages carry the "table:" prefix; callers match them
// with errors.Is after any wrapping.
var (
	// ErrNilTable indicates a nil *Table argument or receiver.
	ErrNilTable = errors.New("table: nil table")

	// ErrColumnNotFound indicates one or more requested columns are absent.
	// Returned errors name the missing columns.
	ErrColumnNotFound = errors.New("table: column not found")

	// ErrDuplicateColumn indicates a column name given twice at construction.
	ErrDuplicateColumn = errors.New("table: duplicate column")

	// ErrRowWidth indicates a row whose length differs from the column count.
	ErrRowWidth = errors.New("table: row width mismatch")

	// ErrLengthMismatch indicates a column whose length differs from Len().
	ErrLengthMismatch = errors.New("table: column length mismatch")

	// ErrRowOutOfRange indicates a row index outside [0, Len()).
	ErrRowOutOfRange = errors.New("table: row index out of range")

	// ErrNotNumeric indicates a non-missing cell with no numeric view.
	ErrNotNumeric = errors.New("table: value is not numeric")

	// ErrUnsupportedType indicates a source column type with no Value mapping.
	ErrUnsupportedType = errors.New("table: unsupported column type")
)
