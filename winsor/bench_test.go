// SPDX-License-Identifier: MIT

package winsor_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/prepkit/matrix"
	"github.com/katalvlaran/prepkit/winsor"
)

func benchMatrix(b *testing.B, r, c int) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(1))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	m, err := matrix.NewFromData(r, c, data)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkFit_10kx8(b *testing.B) {
	X := benchMatrix(b, 10_000, 8)
	w := winsor.New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := w.Fit(X); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTransform_10kx8(b *testing.B) {
	X := benchMatrix(b, 10_000, 8)
	f, err := winsor.New().Fit(X)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.Transform(X); err != nil {
			b.Fatal(err)
		}
	}
}
