// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatrix/matrix"
)

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := FromRows(t, [][]float64{{1 + 1e-12, 2}, {3, 4 - 1e-12}})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(hide{a}, b, 0, 0)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.AllClose(a, MustDense(t, 1, 2), 0, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := FromRows(t, [][]float64{{1, 2}})
	eq, err := matrix.Equal(a, a.Clone())
	require.NoError(t, err)
	require.True(t, eq)

	eq, err = matrix.Equal(a, MustDense(t, 2, 1))
	require.NoError(t, err)
	require.False(t, eq)

	_, err = matrix.Equal(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
