// SPDX-License-Identifier: MIT

// Package matrix - minors, determinants and classical-adjoint inversion.
//
// Purpose:
//   - Determinant by closed forms for orders 1..3 and recursive cofactor
//     expansion along the first row above that.
//   - Adjoint (classical adjugate) as the transpose of the cofactor matrix,
//     written in a single pass: cofactor (i,j) lands at (j,i).
//   - Inverse with closed forms for orders 1 and 2, and for larger orders one
//     fused pass that builds the adjoint while accumulating the determinant
//     from the first-row cofactors.
//
// Numeric policy:
//   - Singularity is EXACT: a determinant that compares == 0 is singular,
//     anything else is inverted. There is no epsilon: a
//     nearly singular input yields a (huge, inaccurate) inverse rather than
//     ErrSingular.
//
// Complexity:
//   - Cofactor expansion is O(n!) with no memoization; every minor is a fresh
//     allocation. These routines target small orders (roughly n ≤ 8) and must
//     not be used for large matrices. Recursion depth equals the order.

package matrix

// sign returns +1 for even k and -1 for odd k, i.e. (-1)^k.
func sign(k int) float64 {
	if k&1 == 1 {
		return -1
	}

	return 1
}

// asDense returns m itself when it is a *Dense, otherwise an owning copy read
// through At. The caller has validated m.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	res := newDenseUnchecked(rows, cols)
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}

// squareDense runs the shared preamble of every square-only kernel:
// NotNil → Square → materialize.
func squareDense(opTag string, m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fail(opTag, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, failShape(opTag, m, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, fail(opTag, err)
	}

	return d, nil
}

// minorOf drops row and col from the square matrix m, keeping the relative
// order of what remains. No validation.
func minorOf(m *Dense, row, col int) *Dense {
	n := m.r
	res := newDenseUnchecked(n-1, n-1)
	dst := 0
	var i, j, base int
	for i = 0; i < n; i++ {
		if i == row {
			continue
		}
		base = i * n
		for j = 0; j < n; j++ {
			if j == col {
				continue
			}
			res.data[dst] = m.data[base+j]
			dst++
		}
	}

	return res
}

// det is the unvalidated determinant of the square matrix m.
// The empty (0×0) matrix has determinant 1.
func det(m *Dense) float64 {
	d := m.data
	switch m.r {
	case 0:
		return 1
	case 1:
		return d[0]
	case 2:
		return d[0]*d[3] - d[1]*d[2]
	case 3:
		return d[0]*(d[4]*d[8]-d[7]*d[5]) -
			d[1]*(d[3]*d[8]-d[6]*d[5]) +
			d[2]*(d[3]*d[7]-d[6]*d[4])
	}

	// Expansion along row 0: Σ a[0,col] · det(M(0,col)) · (-1)^col.
	sum := ZeroSum
	for col := 0; col < m.c; col++ {
		sum += d[col] * det(minorOf(m, 0, col)) * sign(col)
	}

	return sum
}

// Minor returns the (n-1)×(n-1) matrix obtained by deleting row and col
// from the square matrix m. A 1×1 input yields a 0×0 matrix.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrNonSquare, ErrOutOfRange.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func Minor(m Matrix, row, col int) (*Dense, error) {
	d, err := squareDense(opMinor, m)
	if err != nil {
		return nil, err
	}
	if err = ValidateIndex(d, row, col); err != nil {
		return nil, failShape(opMinor, d, err)
	}

	return minorOf(d, row, col), nil
}

// Cofactor returns det(Minor(row, col)) · (-1)^(row+col).
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrNonSquare, ErrOutOfRange.
func Cofactor(m Matrix, row, col int) (float64, error) {
	d, err := squareDense(opCofactor, m)
	if err != nil {
		return 0, err
	}
	if err = ValidateIndex(d, row, col); err != nil {
		return 0, failShape(opCofactor, d, err)
	}

	return det(minorOf(d, row, col)) * sign(row+col), nil
}

// Determinant returns det(m).
// MAIN DESCRIPTION:
//   - Orders 1, 2 and 3 use closed forms (a; ad−bc; the 3×3 rule).
//   - Order ≥ 4 expands along the first row recursively.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrNonSquare.
//
// Complexity:
//   - O(1) for n ≤ 3, O(n!) beyond. Keep n small.
func Determinant(m Matrix) (float64, error) {
	d, err := squareDense(opDeterminant, m)
	if err != nil {
		return 0, err
	}

	return det(d), nil
}

// Adjoint returns the classical adjugate adj(m), the transpose of the
// cofactor matrix: result(j,i) = det(M(i,j)) · (-1)^(i+j).
// The adjoint of a 1×1 matrix is [[1]].
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrNonSquare.
//
// Complexity:
//   - n^2 minor determinants, each O((n-1)!).
func Adjoint(m Matrix) (*Dense, error) {
	d, err := squareDense(opAdjoint, m)
	if err != nil {
		return nil, err
	}

	return adjoint(d, nil), nil
}

// adjoint fills the adjugate of d. When detOut is non-nil it also accumulates
// det(d) from the first-row cofactors (Laplace expansion on row 0).
func adjoint(d *Dense, detOut *float64) *Dense {
	n := d.r
	res := newDenseUnchecked(n, n)
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = det(minorOf(d, i, j)) * sign(i+j)
			if i == 0 && detOut != nil {
				*detOut += v * d.data[j]
			}
			if v != 0 { // keep untouched cells at +0
				res.data[j*n+i] = v
			}
		}
	}

	return res
}

// Inverse returns m⁻¹ computed from the classical adjoint.
// MAIN DESCRIPTION:
//   - n = 1: [[1/a]].
//   - n = 2: swap the diagonal, negate the off-diagonal, divide by ad−bc.
//   - n ≥ 3: one fused pass computes adj(m) and det(m) (from row 0), then
//     scales adj(m) by 1/det(m).
//   - n = 0: the empty matrix is its own inverse.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrNonSquare.
//   - ErrSingular when the determinant is exactly zero (no tolerance).
//
// Complexity:
//   - O(1) for n ≤ 2; n^2 minor determinants beyond.
func Inverse(m Matrix) (*Dense, error) {
	d, err := squareDense(opInverse, m)
	if err != nil {
		return nil, err
	}

	n := d.r
	res := newDenseUnchecked(n, n)
	switch n {
	case 0:
		return res, nil
	case 1:
		if d.data[0] == 0 {
			return nil, failShape(opInverse, d, ErrSingular)
		}
		res.data[0] = 1 / d.data[0]

		return res, nil
	case 2:
		a, b, c, e := d.data[0], d.data[1], d.data[2], d.data[3]
		dt := a*e - b*c
		if dt == 0 {
			return nil, failShape(opInverse, d, ErrSingular)
		}
		res.data[0], res.data[1] = e, -b
		res.data[2], res.data[3] = -c, a

		return res.MulScalarInPlace(1 / dt), nil
	}

	dt := ZeroSum
	res = adjoint(d, &dt)
	if dt == 0 {
		return nil, failShape(opInverse, d, ErrSingular)
	}

	return res.MulScalarInPlace(1 / dt), nil
}

// Trace returns the sum of the main diagonal.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrNonSquare.
func Trace(m Matrix) (float64, error) {
	d, err := squareDense(opTrace, m)
	if err != nil {
		return 0, err
	}
	sum := ZeroSum
	for i := 0; i < d.r; i++ {
		sum += d.data[i*d.c+i]
	}

	return sum, nil
}

// ---------- *Dense method forms ----------

// Minor returns m with row and col removed. See package-level Minor.
func (m *Dense) Minor(row, col int) (*Dense, error) { return Minor(m, row, col) }

// Cofactor returns the signed minor determinant at (row, col).
func (m *Dense) Cofactor(row, col int) (float64, error) { return Cofactor(m, row, col) }

// Determinant returns det(m). See package-level Determinant.
func (m *Dense) Determinant() (float64, error) { return Determinant(m) }

// Adjoint returns adj(m). See package-level Adjoint.
func (m *Dense) Adjoint() (*Dense, error) { return Adjoint(m) }

// Inverse returns m⁻¹. See package-level Inverse.
func (m *Dense) Inverse() (*Dense, error) { return Inverse(m) }

// Trace returns the diagonal sum of m.
func (m *Dense) Trace() (float64, error) { return Trace(m) }
