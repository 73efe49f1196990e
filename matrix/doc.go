// Package matrix offers a small dense float64 matrix and the column-wise
// statistics kernels used by the preprocessing packages.
//
// The matrix package provides:
//
//   - Dense, a row-major Matrix with bounds-checked At/Set and cheap Clone.
//   - ColumnQuantiles / Quantile for per-column order statistics with linear
//     interpolation between closest ranks.
//   - ClampColumns, a broadcast kernel that pins every element into a
//     per-column [lo, hi] window.
//   - Central validators and a sentinel error set matched via errors.Is.
//
// All kernels allocate a fresh output and never mutate their inputs; loops
// run in a fixed i→j order so results are reproducible bit for bit.
//
// See the examples in this package for usage patterns.
package matrix
