// Package matrix holds the square int32 matrices the benchmark multiplies,
// their on-disk format, and the naive multiplication kernel under test.
package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadDimension is returned for a non-positive matrix dimension.
	ErrBadDimension = errors.New("matrix: dimension must be > 0")

	// ErrDimensionMismatch is returned when operands have different sizes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrShortFile is returned when a file holds fewer than n*n values.
	ErrShortFile = errors.New("matrix: file too short")

	// ErrTrailingData is returned when a file holds more than n*n values.
	ErrTrailingData = errors.New("matrix: unexpected trailing data")
)

// Matrix is an n×n grid of int32 stored row-major in a flat slice.
type Matrix struct {
	n    int
	data []int32
}

// New returns a zeroed n×n matrix.
func New(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, fmt.Errorf("new %d: %w", n, ErrBadDimension)
	}

	return &Matrix{n: n, data: make([]int32, n*n)}, nil
}

// FromRows builds a matrix from a square slice of rows.
func FromRows(rows [][]int32) (*Matrix, error) {
	n := len(rows)

	m, err := New(n)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf(
				"row %d has %d columns, want %d: %w",
				i, len(row), n, ErrDimensionMismatch,
			)
		}

		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}

// N returns the matrix dimension.
func (m *Matrix) N() int { return m.n }

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) int32 { return m.data[i*m.n+j] }

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v int32) { m.data[i*m.n+j] = v }

// Rows returns a copy of the matrix as a slice of rows.
func (m *Matrix) Rows() [][]int32 {
	rows := make([][]int32, m.n)
	for i := range rows {
		rows[i] = make([]int32, m.n)
		copy(rows[i], m.data[i*m.n:(i+1)*m.n])
	}

	return rows
}
