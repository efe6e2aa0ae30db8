// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major), ownership & accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Separate owning matrices (constructors, results of every operation) from
//     non-owning views over caller storage (NewView). Release honours the flag:
//     an owning Dense drops its buffer, a view only detaches and never touches
//     the caller's memory.
//   - Offer two access contracts side by side:
//     unchecked zero-based Get and one-based At1/Ref1 for hot loops (caller
//     precondition), and checked zero-based At/Set returning ErrOutOfRange.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; Get/At/Set/At1/Ref1: O(1); Clone: O(r*c);
//     NewView: O(1).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"   // method tag used in error wrappers
	ctxSet  = "Set"  // method tag used in error wrappers
	ctxView = "View" // ctor tag for NewView
	ctxRows = "Rows" // ctor tag for NewFromRows
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable via errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
//   - r,c hold dimensions (rows, cols), each in [0, MaxDim].
//   - data is a flat buffer of length r*c (offset = i*c + j).
//   - owned is false for views created by NewView.
//
// The zero value is an UNINITIALIZED matrix: its dimensions and buffer are not
// meaningful and it must be initialized with Init before any other method is
// called. Kernels that validate their inputs treat it as 0×0; the unchecked
// accessors do not validate anything.
type Dense struct {
	r, c           int       // row and column counts
	data           []float64 // contiguous row-major storage (len == r*c)
	owned          bool      // buffer allocated by this package
	released       bool      // Release has been called
	validateNaNInf bool      // checked Set rejects NaN/Inf when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// validateDims checks 0 ≤ rows, cols ≤ MaxDim.
func validateDims(rows, cols int) error {
	if rows < 0 || cols < 0 || rows > MaxDim || cols > MaxDim {
		return ErrInvalidDimensions
	}

	return nil
}

// NewDense creates an owning rows×cols matrix.
// The buffer is zero-filled by the runtime; callers must not rely on any
// other initial content.
//
// Errors:
//   - ErrInvalidDimensions when rows or cols is negative or exceeds MaxDim.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		owned:          true,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewSquare creates an owning order×order matrix.
func NewSquare(order int, opts ...Option) (*Dense, error) {
	return NewDense(order, order, opts...)
}

// newDenseUnchecked is the internal allocator for results whose shape is
// already known to be valid (derived from validated operands).
func newDenseUnchecked(rows, cols int) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		owned:          true,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// NewView adopts buf as the storage of a rows×cols matrix without copying.
// MAIN DESCRIPTION:
//   - The result does NOT own buf: writes through the view land in buf,
//     and Release only detaches the view. The caller keeps buf alive and
//     frees or unmaps it on its own schedule.
//
// Inputs:
//   - buf: at least rows*cols values in row-major order; extra tail elements
//     are ignored and never touched.
//
// Errors:
//   - ErrInvalidDimensions for bad dimensions; ErrBadShape when buf is short.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewView(rows, cols int, buf []float64, opts ...Option) (*Dense, error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, fmt.Errorf("Dense.%s(%d,%d): %w", ctxView, rows, cols, err)
	}
	n := rows * cols
	if len(buf) < n {
		return nil, fmt.Errorf("Dense.%s(%d,%d): buffer holds %d values: %w", ctxView, rows, cols, len(buf), ErrBadShape)
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf[:n:n], // cap clipped so nothing can grow into the caller's tail
		owned:          false,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewFromRows builds an owning matrix from a slice of equal-length rows.
// An empty input yields a 0×0 matrix.
//
// Errors:
//   - ErrBadShape for ragged rows; ErrInvalidDimensions beyond MaxDim.
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxRows, err)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("Dense.%s: row %d has %d values, want %d: %w", ctxRows, i, len(row), c, ErrBadShape)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Init (re)initializes m as an owning rows×cols zero matrix.
// It is the only valid first call on a zero-value Dense.
func (m *Dense) Init(rows, cols int) error {
	if err := validateDims(rows, cols); err != nil {
		return err
	}
	*m = Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		owned:          true,
		validateNaNInf: DefaultValidateNaNInf,
	}

	return nil
}

// Release ends the life of m.
// An owning matrix drops its buffer; a view detaches from the caller's buffer
// without writing to it. Dimensions become 0×0 and kernels report
// ErrReleased afterwards. A second Release is a no-op.
func (m *Dense) Release() {
	if m.released {
		return
	}
	m.data = nil
	m.r, m.c = 0, 0
	m.released = true
}

// Owned reports whether m owns its buffer (false for NewView results).
func (m *Dense) Owned() bool { return m.owned }

// Released reports whether Release has been called.
func (m *Dense) Released() bool { return m.released }

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// RawData exposes the row-major backing slice. For a view this is the
// caller's own buffer (clipped to rows*cols).
func (m *Dense) RawData() []float64 { return m.data }

// ---------- unchecked access (caller precondition) ----------

// Get returns element (row, col) using offset row*cols + col.
// No bounds checking: out-of-range indices either panic with a runtime
// index error or silently read another element (col ≥ cols aliases into the
// next row). Callers guarantee 0 ≤ row < Rows() and 0 ≤ col < Cols().
func (m *Dense) Get(row, col int) float64 {
	return m.data[row*m.c+col]
}

// At1 is the one-based read accessor: At1(1,1) is the top-left element.
// Offset (row-1)*cols + (col-1); same caller precondition as Get.
func (m *Dense) At1(row, col int) float64 {
	return m.data[(row-1)*m.c+(col-1)]
}

// Ref1 is the one-based read-write accessor. The pointer aliases the
// backing buffer and stays valid until Release (or until the caller's buffer
// goes away, for views).
func (m *Dense) Ref1(row, col int) *float64 {
	return &m.data[(row-1)*m.c+(col-1)]
}

// ---------- checked access (Matrix interface) ----------

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on bad indices.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// The NaN/±Inf check applies to Set only. NewFromRows, NewView, Ref1 and
// every kernel result store any float64, so a matrix may still hold
// non-finite values; build it with WithNoValidateNaNInf to let Set accept
// them too.
//
// Errors:
//   - ErrOutOfRange for bad indices; ErrNaNInf for NaN/±Inf while the
//     numeric policy is on (see WithNoValidateNaNInf).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep, owning copy (new buffer, same numeric policy).
// Cloning a view yields an independent owning matrix.
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is Clone with the concrete type.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		owned:          true,
		validateNaNInf: m.validateNaNInf,
	}
}
