// Package matrix is a small dense-matrix value type with arithmetic,
// structural transforms and classical-adjoint inversion.
//
// 🚀 What is in the box?
//
//   - Dense: a row-major float64 matrix, owning its buffer or viewing
//     caller storage (NewView) without ever releasing it.
//   - Arithmetic: scalar and matrix +, -, × returning new matrices, and
//     compound in-place forms that mutate only the receiver.
//   - Structure: Transpose, Minor.
//   - Numerics: Determinant (closed forms up to 3×3, cofactor expansion
//     beyond), Adjoint, Inverse.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvmatrix/matrix"
//
//	a, _ := matrix.NewFromRows([][]float64{{4, 7}, {2, 6}})
//	inv, err := a.Inverse()
//	if errors.Is(err, matrix.ErrSingular) {
//	  // det(a) == 0 exactly
//	}
//	fmt.Print(inv)
//
// Errors are sentinels (ErrDimensionMismatch, ErrNonSquare, ErrSingular, ...)
// wrapped with the operation name; match them with errors.Is. Each failure is
// also reported once, at Warn level, to the logger installed with SetLogger.
// The default logger is a no-op, so nothing is written anywhere until a
// caller installs one.
//
// Performance:
//
//   - Add/Sub/Scale/Transpose: O(r·c); Mul: O(r·n·c).
//   - Determinant/Adjoint/Inverse: factorial time in the order. Intended for
//     small matrices only; dimensions are capped at MaxDim.
//
// Dense is not safe for concurrent mutation.
package matrix
