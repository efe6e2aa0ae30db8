// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvmatrix/internal/config"
	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/mmapstore"
)

const (
	opDet   = "det"
	opInv   = "inv"
	opAdj   = "adj"
	opT     = "t"
	opMinor = "minor"
	opMul   = "mul"
	opAdd   = "add"
	opSub   = "sub"
	opShow  = "show"
)

var (
	errUsage   = errors.New("usage: matcalc [-op det|inv|adj|t|minor|mul|add|sub|show] [-row r -col c] [-save out.lvmx] input")
	errNoB     = errors.New(`operation needs a second matrix under key "b"`)
	errUnknown = errors.New("unknown operation")
)

var (
	colorTitle = lipgloss.Color("#89b4fa")
	colorValue = lipgloss.Color("#a6e3a1")
	colorMeta  = lipgloss.Color("#7f849c")
)

// result is either a matrix or a scalar.
type result struct {
	m      *matrix.Dense
	scalar float64
}

// run parses args, evaluates the operation and writes the rendered result to out.
func run(args []string, out io.Writer, cfg config.Config) error {
	fs := flag.NewFlagSet("matcalc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	op := fs.String("op", opDet, "operation")
	row := fs.Int("row", 0, "row index for minor (zero-based)")
	col := fs.Int("col", 0, "column index for minor (zero-based)")
	save := fs.String("save", "", "write a matrix result to this mmapstore file")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != 1 {
		return errUsage
	}

	a, b, err := loadInput(fs.Arg(0))
	if err != nil {
		return err
	}

	res, err := evaluate(*op, a, b, *row, *col)
	if err != nil {
		return err
	}

	if *save != "" && res.m != nil {
		if err = saveResult(*save, res.m); err != nil {
			return err
		}
	}

	return render(out, cfg.Output, *op, res)
}

func evaluate(op string, a, b *matrix.Dense, row, col int) (result, error) {
	needB := op == opMul || op == opAdd || op == opSub
	if needB && b == nil {
		return result{}, errNoB
	}

	var (
		r   result
		err error
	)
	switch op {
	case opDet:
		r.scalar, err = a.Determinant()
	case opInv:
		r.m, err = a.Inverse()
	case opAdj:
		r.m, err = a.Adjoint()
	case opT:
		r.m, err = a.Transpose()
	case opMinor:
		r.m, err = a.Minor(row, col)
	case opMul:
		r.m, err = a.Mul(b)
	case opAdd:
		r.m, err = a.Add(b)
	case opSub:
		r.m, err = a.Sub(b)
	case opShow:
		r.m = a
	default:
		return result{}, fmt.Errorf("%w %q", errUnknown, op)
	}

	return r, err
}

func render(out io.Writer, oc config.OutputConfig, op string, r result) error {
	title := lipgloss.NewStyle().Bold(true).Foreground(colorTitle)
	value := lipgloss.NewStyle().Foreground(colorValue)
	meta := lipgloss.NewStyle().Foreground(colorMeta)
	if !oc.Styled {
		title, value, meta = lipgloss.NewStyle(), lipgloss.NewStyle(), lipgloss.NewStyle()
	}

	var sb strings.Builder
	if r.m == nil {
		sb.WriteString(title.Render(op) + "\n")
		sb.WriteString(value.Render(strconv.FormatFloat(r.scalar, 'f', oc.Precision, 64)) + "\n")
	} else {
		rows, cols := r.m.Shape()
		sb.WriteString(title.Render(op) + " " + meta.Render(fmt.Sprintf("(%dx%d)", rows, cols)) + "\n")
		body := strings.TrimSuffix(r.m.Render(matrix.WithPrecision(oc.Precision)), "\n")
		if body != "" {
			// Style row by row; a multi-line Render would pad rows to a common width.
			for _, line := range strings.Split(body, "\n") {
				sb.WriteString(value.Render(line) + "\n")
			}
		}
	}
	_, err := io.WriteString(out, sb.String())

	return err
}

// loadInput reads a (and b when present). Files ending in .lvmx are mmapstore
// files holding only a; anything else is parsed by viper.
func loadInput(path string) (a, b *matrix.Dense, err error) {
	if strings.HasSuffix(path, ".lvmx") {
		a, err = loadStore(path)
		return a, nil, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err = v.ReadInConfig(); err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !v.IsSet("a") {
		return nil, nil, fmt.Errorf("read %s: missing key \"a\"", path)
	}
	if a, err = toDense(v.Get("a")); err != nil {
		return nil, nil, fmt.Errorf("key a: %w", err)
	}
	if v.IsSet("b") {
		if b, err = toDense(v.Get("b")); err != nil {
			return nil, nil, fmt.Errorf("key b: %w", err)
		}
	}

	return a, b, nil
}

// toDense converts a decoded nested list into a matrix.
func toDense(raw any) (*matrix.Dense, error) {
	outer, err := cast.ToSliceE(raw)
	if err != nil {
		return nil, err
	}
	rows := make([][]float64, len(outer))
	for i, r := range outer {
		cells, err := cast.ToSliceE(r)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows[i] = make([]float64, len(cells))
		for j, c := range cells {
			if rows[i][j], err = cast.ToFloat64E(c); err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", i, j, err)
			}
		}
	}

	return matrix.NewFromRows(rows)
}

// loadStore copies the stored matrix out of the mapping so the store can be
// closed before evaluation.
func loadStore(path string) (*matrix.Dense, error) {
	s, err := mmapstore.Open(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	view, err := s.Matrix()
	if err != nil {
		return nil, err
	}
	owned, ok := view.Clone().(*matrix.Dense)
	if !ok {
		return nil, fmt.Errorf("load %s: unexpected clone type", path)
	}

	return owned, nil
}

func saveResult(path string, m *matrix.Dense) error {
	s, err := mmapstore.Create(path, m.Rows(), m.Cols())
	if err != nil {
		return err
	}
	if err = s.Store(m); err != nil {
		s.Close()
		return err
	}

	return s.Close()
}
