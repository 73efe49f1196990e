// SPDX-License-Identifier: MIT

package winsor

import "errors"

var (
	// ErrNotFitted indicates Transform on a nil or zero Fitted, or on a Stage
	// whose Fit has not succeeded.
	ErrNotFitted = errors.New("winsor: transform called before fit")

	// ErrInvalidQuantile indicates a quantile outside [0, 1] (or NaN).
	ErrInvalidQuantile = errors.New("winsor: quantile must be in [0, 1]")

	// ErrQuantileOrder indicates Lower > Upper.
	ErrQuantileOrder = errors.New("winsor: lower quantile exceeds upper quantile")

	// ErrEmptyInput indicates fit data with no rows (or, with IgnoreNaN, a
	// column with no finite values).
	ErrEmptyInput = errors.New("winsor: no samples to fit")
)
