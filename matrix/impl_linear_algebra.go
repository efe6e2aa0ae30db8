// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication and transpose.
// All functions validate fail-fast, never mutate their operands and return a
// freshly allocated owning *Dense.
//
// Purpose:
//   - Canonical linear-algebra kernels with a *Dense flat-slice fast path and a
//     generic At/Set fallback for any other Matrix implementation.
//   - Compound (in-place) forms on *Dense that mutate only the receiver.
//
// Notes:
//   - Every failure is wrapped with the operation tag and reported once to the
//     package logger (see log.go).

package matrix

import (
	"fmt"
)

// ZeroSum is the initial value of an inner-product accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opAddInPlace  = "AddInPlace"
	opSubInPlace  = "SubInPlace"
	opTranspose   = "Transpose"
	opAddScalar   = "AddScalar"
	opSubScalar   = "SubScalar"
	opScale       = "Scale"
	opMinor       = "Minor"
	opCofactor    = "Cofactor"
	opDeterminant = "Determinant"
	opAdjoint     = "Adjoint"
	opInverse     = "Inverse"
	opTrace       = "Trace"
	opIdentity    = "Identity"
	opRandom      = "Random"
	opAllClose    = "AllClose"
	opEqual       = "Equal"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: validate both operands and their shapes; allocate result.
//   - Stage 2: fast path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix / ErrReleased for unusable operands.
//   - ErrDimensionMismatch with both shapes in the message.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBothNotNil(a, b); err != nil {
		return nil, fail(opTag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, failPair(opTag, a, b, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res := newDenseUnchecked(rows, cols)

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, fail(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, fail(opTag, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: validate A,B (usable) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: if A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use i→j→k with a fixed order.
//   - No term is skipped: a zero in A times ±Inf or NaN in B still yields NaN,
//     exactly as the naive contraction does.
//
// Behavior highlights:
//   - Every C[i,j] accumulates A[i,k]*B[k,j] in ascending k on both paths, so
//     the two paths agree bit for bit on finite inputs.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateBothNotNil(a, b); err != nil {
		return nil, fail(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, failPair(opMul, a, b, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newDenseUnchecked(aRows, bCols)
	var (
		i, j, k         int
		av, bv, current float64
		err             error
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, fail(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, fail(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped, so that
// result(i,j) = m(j,i).
//
// Errors:
//   - ErrNilMatrix, ErrReleased.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fail(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDenseUnchecked(cols, rows) // dims flipped

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fail(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// ---------- *Dense method forms ----------

// Add returns m + b as a new matrix. See package-level Add.
func (m *Dense) Add(b Matrix) (*Dense, error) { return Add(m, b) }

// Sub returns m - b as a new matrix. See package-level Sub.
func (m *Dense) Sub(b Matrix) (*Dense, error) { return Sub(m, b) }

// Mul returns the product m × b as a new matrix. See package-level Mul.
func (m *Dense) Mul(b Matrix) (*Dense, error) { return Mul(m, b) }

// Transpose returns mᵀ as a new matrix.
func (m *Dense) Transpose() (*Dense, error) { return Transpose(m) }

// AddInPlace performs m += b and returns m.
// The same shape check as Add applies; on error m is left untouched.
func (m *Dense) AddInPlace(b Matrix) (*Dense, error) {
	return m.addSubInPlace(b, +1, opAddInPlace)
}

// SubInPlace performs m -= b and returns m.
// The same shape check as Sub applies; on error m is left untouched.
func (m *Dense) SubInPlace(b Matrix) (*Dense, error) {
	return m.addSubInPlace(b, -1, opSubInPlace)
}

// addSubInPlace is the compound counterpart of addSub. Only the receiver is
// written; b may alias m (m.AddInPlace(m) doubles every element).
func (m *Dense) addSubInPlace(b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBothNotNil(m, b); err != nil {
		return nil, fail(opTag, err)
	}
	if err := ValidateSameShape(m, b); err != nil {
		return nil, failPair(opTag, m, b, err)
	}

	if db, ok := b.(*Dense); ok {
		for idx := range m.data {
			m.data[idx] += sign * db.data[idx]
		}

		return m, nil
	}

	// Read the whole operand first so a failing At leaves m untouched.
	tmp := make([]float64, len(m.data))
	var i, j int
	var v float64
	var err error
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if v, err = b.At(i, j); err != nil {
				return nil, fail(opTag, err)
			}
			tmp[i*m.c+j] = v
		}
	}
	for idx := range m.data {
		m.data[idx] += sign * tmp[idx]
	}

	return m, nil
}
