// SPDX-License-Identifier: MIT

package mmapstore

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"unsafe"

	"github.com/edsrzf/mmap-go"

	"github.com/katalvlaran/lvmatrix/matrix"
)

const (
	headSize = 16
	itemSize = 8
	magic    = "LVMX"
)

// header is the decoded form of the first headSize bytes of a store file.
type header struct {
	rows, cols int
}

func (h header) fileSize() int64 {
	return int64(headSize + itemSize*h.rows*h.cols)
}

func (h header) encode(b []byte) {
	copy(b[0:4], magic)
	binary.LittleEndian.PutUint16(b[4:6], uint16(h.rows))
	binary.LittleEndian.PutUint16(b[6:8], uint16(h.cols))
	for i := 8; i < headSize; i++ {
		b[i] = 0
	}
}

func decodeHeader(b []byte) (header, error) {
	if len(b) < headSize || string(b[0:4]) != magic {
		return header{}, ErrBadHeader
	}
	h := header{
		rows: int(binary.LittleEndian.Uint16(b[4:6])),
		cols: int(binary.LittleEndian.Uint16(b[6:8])),
	}
	if h.rows > matrix.MaxDim || h.cols > matrix.MaxDim {
		return header{}, ErrBadHeader
	}

	return h, nil
}

// Store is a memory-mapped matrix file.
type Store struct {
	file *os.File
	data mmap.MMap
	head header
}

// Create makes a new zero-filled store at path, truncating any existing file.
func Create(path string, rows, cols int) (s *Store, err error) {
	if rows < 0 || cols < 0 || rows > matrix.MaxDim || cols > matrix.MaxDim {
		return nil, fmt.Errorf("mmapstore: create %dx%d: %w", rows, cols, matrix.ErrInvalidDimensions)
	}

	s = &Store{head: header{rows: rows, cols: cols}}
	if s.file, err = os.Create(path); err != nil {
		return nil, err
	}
	if err = s.file.Truncate(s.head.fileSize()); err != nil {
		s.file.Close()
		return nil, err
	}
	if s.data, err = mmap.Map(s.file, mmap.RDWR, 0); err != nil {
		s.file.Close()
		return nil, err
	}

	s.head.encode(s.data[:headSize])
	if err = s.data.Flush(); err != nil {
		s.Close()
		return nil, err
	}

	return s, nil
}

// Open maps an existing store read-write after validating its header and size.
func Open(path string) (s *Store, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() < headSize {
		return nil, ErrBadHeader
	}

	s = &Store{}
	if s.file, err = os.OpenFile(path, os.O_RDWR, 0); err != nil {
		return nil, err
	}

	b := make([]byte, headSize)
	if _, err = io.ReadFull(s.file, b); err != nil {
		s.file.Close()
		return nil, err
	}
	if s.head, err = decodeHeader(b); err != nil {
		s.file.Close()
		return nil, err
	}
	if info.Size() != s.head.fileSize() {
		s.file.Close()
		return nil, ErrBadSize
	}

	if s.data, err = mmap.Map(s.file, mmap.RDWR, 0); err != nil {
		s.file.Close()
		return nil, err
	}

	return s, nil
}

// Rows returns the stored row count.
func (s *Store) Rows() int { return s.head.rows }

// Cols returns the stored column count.
func (s *Store) Cols() int { return s.head.cols }

// floats reinterprets the mapped payload as []float64.
func (s *Store) floats() []float64 {
	n := s.head.rows * s.head.cols
	if n == 0 {
		return []float64{}
	}

	return unsafe.Slice((*float64)(unsafe.Pointer(&s.data[headSize])), n)
}

// Matrix returns a view over the mapped values. The view does not own the
// memory; Release on it is harmless and it is invalid after Close.
func (s *Store) Matrix() (*matrix.Dense, error) {
	if s.data == nil {
		return nil, ErrClosed
	}

	return matrix.NewView(s.head.rows, s.head.cols, s.floats())
}

// Store copies m into the mapped payload. m must have the store's shape.
func (s *Store) Store(m matrix.Matrix) error {
	if s.data == nil {
		return ErrClosed
	}
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != s.head.rows || m.Cols() != s.head.cols {
		return fmt.Errorf("mmapstore: store (%dx%d) into (%dx%d): %w",
			m.Rows(), m.Cols(), s.head.rows, s.head.cols, matrix.ErrDimensionMismatch)
	}

	dst := s.floats()
	if d, ok := m.(*matrix.Dense); ok {
		copy(dst, d.RawData())
		return nil
	}
	for i := 0; i < s.head.rows; i++ {
		for j := 0; j < s.head.cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			dst[i*s.head.cols+j] = v
		}
	}

	return nil
}

// Flush syncs the mapping to disk.
func (s *Store) Flush() error {
	if s.data == nil {
		return ErrClosed
	}

	return s.data.Flush()
}

// Close flushes, unmaps and closes the file. Every step runs even if an
// earlier one fails; their errors are joined. A second Close returns ErrClosed.
func (s *Store) Close() error {
	if s.data == nil {
		return ErrClosed
	}
	flushErr := s.data.Flush()
	unmapErr := s.data.Unmap()
	s.data = nil
	closeErr := s.file.Close()

	return errors.Join(flushErr, unmapErr, closeErr)
}
