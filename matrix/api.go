// SPDX-License-Identifier: MIT
// Package matrix: factories and public API facades.
//
// Purpose:
//   - Factory functions (Identity, Random, RandomSquare, NewZeros).
//   - Thin, intention-revealing aliases; each delegates to the canonical
//     kernel with no logic of its own.

package matrix

// ---------- Factories ----------

// Identity returns the order×order identity: ones on the diagonal, zeros elsewhere.
//
// Errors:
//   - ErrInvalidDimensions when order is negative or exceeds MaxDim.
//
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity(order int) (*Dense, error) {
	I, err := NewDense(order, order)
	if err != nil {
		return nil, fail(opIdentity, err)
	}
	for i := 0; i < order; i++ {
		I.data[i*order+i] = 1
	}

	return I, nil
}

// Random returns a rows×cols matrix of independent draws from [0,1).
// The source comes from WithRand; without it the global math/rand source is
// used. The library never seeds: reproducibility is up to the caller.
//
// Errors:
//   - ErrInvalidDimensions.
func Random(rows, cols int, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, fail(opRandom, err)
	}
	o := gatherOptions(opts...)
	for idx := range m.data {
		m.data[idx] = o.float64()
	}

	return m, nil
}

// RandomSquare is Random(order, order, opts...).
func RandomSquare(order int, opts ...Option) (*Dense, error) {
	return Random(order, order, opts...)
}

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return Identity(m.Rows())
}

// ---------- Aliases ----------

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// T is an alias for Transpose.
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// Det is an alias for Determinant.
func Det(m Matrix) (float64, error) { return Determinant(m) }

// Adjugate is an alias for Adjoint (the classical adjoint).
func Adjugate(m Matrix) (*Dense, error) { return Adjoint(m) }

// InverseOf is an alias for Inverse.
func InverseOf(m Matrix) (*Dense, error) { return Inverse(m) }
