// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense kernels.
// This file contains ONLY the public Matrix interface and the capacity
// constants. Errors and options live in dedicated files (errors.go,
// options.go).
package matrix

// MaxDim is the largest row or column count a matrix may have.
// It is the capacity of the 8-bit index type the cofactor routines were
// designed around; indices themselves are plain ints.
const MaxDim = 255

// Matrix represents a two-dimensional mutable array of float64 values.
// *Dense is the only implementation in this package; kernels that accept a
// Matrix take a flat-slice fast path for *Dense and fall back to At/Set for
// anything else.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at zero-based position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at zero-based position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
