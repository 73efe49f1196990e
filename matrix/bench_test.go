// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/prepkit/matrix"
)

// randDense fills an r×c matrix from a fixed seed.
func randDense(b *testing.B, r, c int) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	data := make([]float64, r*c)
	for k := range data {
		data[k] = rng.NormFloat64()
	}

	return NewFilledDense(b, r, c, data)
}

func BenchmarkColumnQuantiles_10000x8(b *testing.B) {
	X := randDense(b, 10000, 8)
	qs := []float64{0.05, 0.95}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.ColumnQuantiles(X, qs); err != nil {
			b.Fatalf("ColumnQuantiles: %v", err)
		}
	}
}

func BenchmarkClampColumns_10000x8(b *testing.B) {
	X := randDense(b, 10000, 8)
	lo := make([]float64, 8)
	hi := make([]float64, 8)
	for j := range lo {
		lo[j], hi[j] = -1, 1
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.ClampColumns(X, lo, hi); err != nil {
			b.Fatalf("ClampColumns: %v", err)
		}
	}
}
