// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/prepkit/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the non-*Dense (At/Set) fallback paths in code under test.
type hide struct{ matrix.Matrix }

// NewFilledDense allocates an r×c *Dense from a row-major slice or fails the test.
func NewFilledDense(t testing.TB, r, c int, data []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromData(r, c, data)
	if err != nil {
		t.Fatalf("NewFromData(%d,%d): %v", r, c, err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareClose asserts same shape and |a-b| <= atol + rtol*|b| elementwise.
func CompareClose(t testing.TB, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Fatalf("shape mismatch: %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			x, y := MustAt(t, a, i, j), MustAt(t, b, i, j)
			if math.IsNaN(x) && math.IsNaN(y) {
				continue
			}
			if math.Abs(x-y) > atol+rtol*math.Abs(y) {
				t.Fatalf("(%d,%d): got %g want %g", i, j, x, y)
			}
		}
	}
}

// sliceClose asserts two slices match within atol + rtol*|want|.
func sliceClose(t testing.TB, got, want []float64, rtol, atol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len mismatch: got %d want %d", len(got), len(want))
	}
	for k := range got {
		if math.Abs(got[k]-want[k]) > atol+rtol*math.Abs(want[k]) {
			t.Fatalf("[%d]: got %g want %g", k, got[k], want[k])
		}
	}
}
