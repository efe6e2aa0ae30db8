// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtSep      = " "
	_fmtRowClose = "\n"
	_fmtPrintRow = "%.2f\t"
)

// String renders m with DefaultPrecision; see Render.
func (m *Dense) String() string {
	return m.Render()
}

// Render produces the textual form of m: each row's elements in fixed-point
// notation separated by single spaces, every row terminated by a newline.
// A matrix with no rows renders as the empty string.
//
// Implementation:
//   - Stage 1: resolve precision from opts (DefaultPrecision otherwise).
//   - Stage 2: append into a strings.Builder pre-grown for the common width;
//     the builder grows on demand, so wide values never overflow.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Render(opts ...Option) string {
	o := gatherOptions(opts...)

	var b strings.Builder
	b.Grow(m.r*m.c*(o.precision+4) + m.r)
	var num [32]byte
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.Write(strconv.AppendFloat(num[:0], m.data[base+j], 'f', o.precision, 64))
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Print writes the tabular dump used for quick inspection: two decimals,
// each element followed by a tab, one line per row.
func (m *Dense) Print(w io.Writer) error {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if _, err := fmt.Fprintf(w, _fmtPrintRow, m.data[i*m.c+j]); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, _fmtRowClose); err != nil {
			return err
		}
	}

	return nil
}
