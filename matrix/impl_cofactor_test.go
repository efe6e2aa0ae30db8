// SPDX-License-Identifier: MIT
// Package matrix_test covers minors, determinants, the adjoint and inversion.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatrix/matrix"
)

func TestDeterminant_Known(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"1x1", [][]float64{{-7}}, -7},
		{"2x2", [][]float64{{3, 8}, {4, 6}}, 3*6 - 8*4},
		{"3x3", [][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}, -306},
		{"4x4", [][]float64{
			{1, 0, 2, -1},
			{3, 0, 0, 5},
			{2, 1, 4, -3},
			{1, 0, 5, 0},
		}, 30},
		{"zero row", [][]float64{{1, 2, 3}, {0, 0, 0}, {7, 8, 9}}, 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := FromRows(t, tc.rows)
			got, err := m.Determinant()
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, tol)

			// Fallback path must agree.
			got, err = matrix.Det(hide{m})
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, tol)
		})
	}
}

func TestDeterminant_IdentityAndEmpty(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 6; n++ {
		d, err := MustIdentity(t, n).Determinant()
		require.NoError(t, err)
		require.Equal(t, 1.0, d)
	}
}

func TestDeterminant_NonSquare(t *testing.T) {
	t.Parallel()

	_, err := MustDense(t, 2, 3).Determinant()
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Determinant(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestDeterminant_RowExpansionMatchesClosedForm compares an order-4
// expansion with the sum of closed-form 3×3 terms computed by hand.
func TestDeterminant_RowExpansionMatchesClosedForm(t *testing.T) {
	t.Parallel()

	m := RandFilledDense(t, 4, 4, 99)
	want := 0.0
	for col := 0; col < 4; col++ {
		mn, err := m.Minor(0, col)
		require.NoError(t, err)
		d3, err := mn.Determinant()
		require.NoError(t, err)
		s := 1.0
		if col%2 == 1 {
			s = -1
		}
		want += m.Get(0, col) * d3 * s
	}
	got, err := m.Determinant()
	require.NoError(t, err)
	require.InDelta(t, want, got, tol)
}

func TestMinor(t *testing.T) {
	t.Parallel()

	m := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	mn, err := m.Minor(0, 0)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{5, 6}, {8, 9}}, mn)

	mn, err = matrix.Minor(hide{m}, 1, 2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2}, {7, 8}}, mn)

	one := FromRows(t, [][]float64{{42}})
	mn, err = one.Minor(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, mn.Rows())
	require.Equal(t, 0, mn.Cols())

	_, err = m.Minor(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = MustDense(t, 2, 3).Minor(0, 0)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestCofactorAndTrace(t *testing.T) {
	t.Parallel()

	m := FromRows(t, [][]float64{{1, 2, 3}, {0, 4, 5}, {1, 0, 6}})

	c, err := m.Cofactor(0, 1)
	require.NoError(t, err)
	require.Equal(t, -(0*6 - 5*1.0), c)

	tr, err := m.Trace()
	require.NoError(t, err)
	require.Equal(t, 11.0, tr)

	_, err = m.Cofactor(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestAdjoint(t *testing.T) {
	t.Parallel()

	m := FromRows(t, [][]float64{{1, 2, 3}, {0, 4, 5}, {1, 0, 6}})
	want := [][]float64{
		{24, -12, -2},
		{5, 3, -5},
		{-4, 2, 4},
	}

	adj, err := m.Adjoint()
	require.NoError(t, err)
	CompareExact(t, want, adj)

	adj, err = matrix.Adjugate(hide{m})
	require.NoError(t, err)
	CompareExact(t, want, adj)

	// A · adj(A) = det(A) · I
	d, err := m.Determinant()
	require.NoError(t, err)
	prod, err := m.Mul(adj)
	require.NoError(t, err)
	RequireClose(t, MustIdentity(t, 3).MulScalarInPlace(d), prod, tol)

	one, err := FromRows(t, [][]float64{{5}}).Adjoint()
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1}}, one)
}

func TestAdjoint_NonSquare(t *testing.T) {
	t.Parallel()

	rect := MustDense(t, 2, 3)

	_, err := rect.Adjoint()
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Adjoint(hide{rect})
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Adjoint(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestInverse_Known(t *testing.T) {
	t.Parallel()

	inv, err := FromRows(t, [][]float64{{4}}).Inverse()
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0.25}}, inv)

	inv, err = FromRows(t, [][]float64{{2, 0}, {0, 2}}).Inverse()
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0.5, 0}, {0, 0.5}}, inv)

	inv, err = FromRows(t, [][]float64{{4, 7}, {2, 6}}).Inverse()
	require.NoError(t, err)
	RequireClose(t, FromRows(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}}), inv, tol)

	empty, err := MustDense(t, 0, 0).Inverse()
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
}

func TestInverse_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int{3, 4, 5} {
		a := RandFilledDense(t, n, n, int64(n*31))
		_, err := a.AddInPlace(MustIdentity(t, n).MulScalarInPlace(float64(n)))
		require.NoError(t, err)
		inv, err := matrix.InverseOf(a)
		require.NoError(t, err)

		left, err := a.Mul(inv)
		require.NoError(t, err)
		RequireClose(t, MustIdentity(t, n), left, tol)

		right, err := inv.Mul(a)
		require.NoError(t, err)
		RequireClose(t, MustIdentity(t, n), right, tol)
	}

	a := FromRows(t, [][]float64{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}})
	inv, err := matrix.Inverse(hide{a})
	require.NoError(t, err)
	RequireClose(t, FromRows(t, [][]float64{
		{0.75, 0.5, 0.25},
		{0.5, 1, 0.5},
		{0.25, 0.5, 0.75},
	}), inv, tol)
}

func TestInverse_Singular(t *testing.T) {
	t.Parallel()

	cases := map[string][][]float64{
		"1x1 zero":  {{0}},
		"2x2 zero":  {{0, 0}, {0, 0}},
		"2x2 rank1": {{1, 2}, {2, 4}},
		"3x3 zero row": {
			{1, 2, 3},
			{0, 0, 0},
			{4, 5, 6},
		},
		"4x4 dup col": {
			{1, 1, 2, 3},
			{4, 4, 5, 6},
			{7, 7, 8, 9},
			{1, 1, 0, 1},
		},
	}
	for name, rows := range cases {
		rows := rows
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := FromRows(t, rows).Inverse()
			require.ErrorIs(t, err, matrix.ErrSingular)
		})
	}
}

func TestInverse_NonSquare(t *testing.T) {
	t.Parallel()

	_, err := MustDense(t, 2, 3).Inverse()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.NotErrorIs(t, err, matrix.ErrSingular)
}

func TestIdentityLike(t *testing.T) {
	t.Parallel()

	I, err := matrix.IdentityLike(MustDense(t, 3, 3))
	require.NoError(t, err)
	tr, err := I.Trace()
	require.NoError(t, err)
	require.Equal(t, 3.0, tr)

	_, err = matrix.IdentityLike(MustDense(t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
