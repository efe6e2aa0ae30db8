// SPDX-License-Identifier: MIT

package matrix

// mapScalar returns a new matrix whose elements are f(m[i,j]).
// Fast path walks the flat *Dense buffer; otherwise fixed i→j At order.
//
// Errors:
//   - ErrNilMatrix, ErrReleased.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func mapScalar(m Matrix, opTag string, f func(v float64) float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fail(opTag, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDenseUnchecked(rows, cols)

	if dm, ok := m.(*Dense); ok {
		for idx, v := range dm.data {
			res.data[idx] = f(v)
		}

		return res, nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fail(opTag, err)
			}
			res.data[i*cols+j] = f(v)
		}
	}

	return res, nil
}

// AddScalar returns a new matrix with v added to every element of m.
func AddScalar(m Matrix, v float64) (*Dense, error) {
	return mapScalar(m, opAddScalar, func(x float64) float64 { return x + v })
}

// SubScalar returns a new matrix with v subtracted from every element of m.
func SubScalar(m Matrix, v float64) (*Dense, error) {
	return mapScalar(m, opSubScalar, func(x float64) float64 { return x - v })
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// alpha = 0 yields an explicit zero matrix with the same shape.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	return mapScalar(m, opScale, func(x float64) float64 { return x * alpha })
}

// AddScalar returns m + v (elementwise) as a new matrix.
func (m *Dense) AddScalar(v float64) (*Dense, error) { return AddScalar(m, v) }

// SubScalar returns m - v (elementwise) as a new matrix.
func (m *Dense) SubScalar(v float64) (*Dense, error) { return SubScalar(m, v) }

// MulScalar returns v * m as a new matrix.
func (m *Dense) MulScalar(v float64) (*Dense, error) { return Scale(m, v) }

// AddScalarInPlace adds v to every element of m and returns m.
func (m *Dense) AddScalarInPlace(v float64) *Dense {
	for idx := range m.data {
		m.data[idx] += v
	}

	return m
}

// SubScalarInPlace subtracts v from every element of m and returns m.
func (m *Dense) SubScalarInPlace(v float64) *Dense {
	for idx := range m.data {
		m.data[idx] -= v
	}

	return m
}

// MulScalarInPlace multiplies every element of m by v and returns m.
func (m *Dense) MulScalarInPlace(v float64) *Dense {
	for idx := range m.data {
		m.data[idx] *= v
	}

	return m
}
