// SPDX-License-Identifier: MIT

package sample

import "errors"

var (
	// ErrInvalidFraction indicates a training fraction outside [0, 1] (or NaN).
	ErrInvalidFraction = errors.New("sample: training fraction must be in [0, 1]")

	// ErrNoColumns indicates an empty key column list.
	ErrNoColumns = errors.New("sample: at least one key column is required")

	// ErrNoSampleColumn indicates an empty label column name.
	ErrNoSampleColumn = errors.New("sample: sample column name is empty")

	// ErrColumnsType indicates a column spec that is neither a column name
	// nor a sequence of column names.
	ErrColumnsType = errors.New("sample: columns must be a column name or a sequence of column names")
)
