// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prepkit/matrix"
)

func TestClampColumns_FastAndFallback(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 3, 2, []float64{
		-5, 0,
		1, 50,
		9, 100,
	})
	lo := []float64{0, 10}
	hi := []float64{5, 60}

	want := NewFilledDense(t, 3, 2, []float64{
		0, 10,
		1, 50,
		5, 60,
	})

	Yf, err := matrix.ClampColumns(X, lo, hi)
	require.NoError(t, err)
	Ys, err := matrix.ClampColumns(hide{X}, lo, hi)
	require.NoError(t, err)

	CompareClose(t, Yf, want, 0, 0)
	CompareClose(t, Ys, want, 0, 0)
	require.Equal(t, -5.0, MustAt(t, X, 0, 0), "input must not be mutated")
}

func TestClampColumns_NaNPassesThrough(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 1, 1, []float64{math.NaN()})
	Y, err := matrix.ClampColumns(X, []float64{0}, []float64{1})
	require.NoError(t, err)
	require.True(t, math.IsNaN(MustAt(t, Y, 0, 0)))
}

func TestClampColumns_ZeroRows(t *testing.T) {
	t.Parallel()

	X, err := matrix.NewFromData(0, 2, nil)
	require.NoError(t, err)
	Y, err := matrix.ClampColumns(X, []float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, 0, Y.Rows())
	require.Equal(t, 2, Y.Cols())
}

func TestClampColumns_BadBroadcast(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 1, 2, []float64{1, 2})
	_, err := matrix.ClampColumns(X, []float64{0}, []float64{1, 1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.ClampColumns(nil, nil, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestZerosLike(t *testing.T) {
	t.Parallel()

	src := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	Z, err := matrix.ZerosLike(hide{src})
	require.NoError(t, err)
	require.Equal(t, 2, Z.Rows())
	require.Equal(t, 3, Z.Cols())
	for i := 0; i < 2; i++ {
		row, err := Z.Row(i)
		require.NoError(t, err)
		require.Equal(t, []float64{0, 0, 0}, row)
	}

	empty, err := matrix.NewFromData(0, 4, nil)
	require.NoError(t, err)
	Z, err = matrix.ZerosLike(empty)
	require.NoError(t, err)
	require.Equal(t, 0, Z.Rows())
	require.Equal(t, 4, Z.Cols())

	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
