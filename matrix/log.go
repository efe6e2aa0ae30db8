// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
)

// pkgLogger receives one diagnostic per failed kernel call.
// It defaults to a no-op logger; SetLogger installs a real one.
var pkgLogger atomic.Pointer[zap.Logger]

func init() {
	pkgLogger.Store(zap.NewNop())
}

// SetLogger installs l as the diagnostics sink for the package.
// Until it is called, failure diagnostics are discarded: the default sink is
// zap.NewNop(), and the returned errors are the only report. Passing nil
// restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	pkgLogger.Store(l)
}

// Logger returns the currently installed diagnostics logger.
func Logger() *zap.Logger { return pkgLogger.Load() }

// shapeOf renders the dimensions of m as "(RxC)" for messages and log fields.
func shapeOf(m Matrix) string {
	return fmt.Sprintf("(%dx%d)", m.Rows(), m.Cols())
}

// fail wraps err with the operation tag, writes the diagnostic and returns
// the wrapped error. Callers must pass a non-nil err.
func fail(op string, err error, fields ...zap.Field) error {
	wrapped := matrixErrorf(op, err)
	Logger().Warn("matrix operation failed",
		append([]zap.Field{zap.String("op", op), zap.Error(wrapped)}, fields...)...)

	return wrapped
}

// failShape is fail with the operand shape attached as a log field.
func failShape(op string, m Matrix, err error) error {
	return fail(op, err, zap.String("shape", shapeOf(m)))
}

// failPair reports a two-operand failure; both shapes go into the message and
// the log fields.
func failPair(op string, a, b Matrix, err error) error {
	lhs, rhs := shapeOf(a), shapeOf(b)

	return fail(op, fmt.Errorf("%s and %s: %w", lhs, rhs, err),
		zap.String("lhs", lhs), zap.String("rhs", rhs))
}
