// SPDX-License-Identifier: MIT

package matrix

import "math"

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN is never close to anything.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be usable and have identical shapes (ErrDimensionMismatch).
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances → ErrNaNInf.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, fail(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBothNotNil(a, b); err != nil {
		return false, fail(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, failPair(opAllClose, a, b, err)
	}

	near := func(av, bv float64) bool {
		if av == bv { // covers equal infinities
			return true
		}

		return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
	}

	r, c := a.Rows(), a.Cols()
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !near(da.data[idx], db.data[idx]) {
					return false, nil // early-exit on first violation
				}
			}

			return true, nil
		}
	}

	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, fail(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, fail(opAllClose, err)
			}
			if !near(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}

// Equal reports exact element-wise equality (same shape, a[i,j] == b[i,j]).
// Shape differences are reported as (false, nil), not as an error.
func Equal(a, b Matrix) (bool, error) {
	if err := ValidateBothNotNil(a, b); err != nil {
		return false, fail(opEqual, err)
	}
	if ValidateSameShape(a, b) != nil {
		return false, nil
	}

	return AllClose(a, b, 0, 0)
}
