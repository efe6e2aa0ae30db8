// Package lvmatrix is a small dense-matrix toolkit: a float64 Matrix value
// type with classical-adjoint inversion, plus a few companions around it.
//
// 🚀 What is in the box?
//
//   - matrix: Dense storage (owning or view), arithmetic, transpose,
//     minors, determinant, adjoint and inverse.
//   - mmapstore: a matrix kept in a memory-mapped file, exposed as a view.
//   - dictionary: an insertion-ordered string→int list.
//   - cmd/matcalc: evaluate one operation on matrices read from a file.
//
// ✨ Notes
//
//   - Determinant and inverse use cofactor expansion: exact closed forms up
//     to 3×3, factorial time beyond. Keep orders small.
//   - Singularity is an exact determinant == 0 test.
//   - Failures are sentinel errors (errors.Is). The matrix package also
//     reports each failure to its zap logger, which is a no-op until
//     matrix.SetLogger installs a real one; matcalc does so at startup.
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{4, 7}, {2, 6}})
//	inv, _ := a.Inverse()
//	fmt.Print(inv) // 0.600000 -0.700000 / -0.200000 0.400000
package lvmatrix
