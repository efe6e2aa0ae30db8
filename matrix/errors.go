// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels wrapped with an operation tag and
// tests MUST check them via errors.Is. No kernel panics on user-triggered
// error conditions; the unchecked accessors (Get, At1, Ref1) are documented
// caller preconditions, not error paths.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(op, err) so a
// failure reads "Inverse: matrix: singular matrix"; callers still match with
// errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil/released -> dimensions -> shape (square / conformable) -> index -> singular.

var (
	// ErrInvalidDimensions indicates that requested dimensions are negative or
	// exceed MaxDim.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrBadShape is returned when a caller-supplied buffer or row set cannot
	// back the requested shape (short external buffer, ragged rows).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Checked accessors (At/Set) and Minor/Cofactor return it; Get does not check.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when the determinant is exactly zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// by the numeric policy (checked Set, tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrReleased indicates use of a Dense after Release.
	ErrReleased = errors.New("matrix: matrix has been released")
)
