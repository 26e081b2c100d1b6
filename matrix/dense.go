// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major float64 buffer with offset i*cols + j.
//   - Return errors instead of panicking at the public surface.
//   - Reject NaN and ±Inf on writes so accumulated statistics stay finite.
//
// Unlike a general linear-algebra matrix, a 0×0 Dense is legal: a partition
// pinned by hints may have no modalities and still owns an (empty) table.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Add: O(1); Reset/Do: O(r*c).
package matrix

import "math"

// Dense is a row-major matrix of float64 values.
//   - r, c hold dimensions (rows, cols), both >= 0.
//   - data has length r*c; element (i,j) lives at i*c + j.
type Dense struct {
	r, c int
	data []float64
}

// NewDense creates an r×c zero matrix.
// Stage 1 (Validate): rows >= 0 and cols >= 0, else ErrInvalidDimensions.
// Stage 2 (Prepare): allocate the zero-filled flat buffer.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewSquare creates an n×n zero matrix.
func NewSquare(n int) (*Dense, error) { return NewDense(n, n) }

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Callers wrap the sentinel with their own method tag.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Errors: ErrOutOfRange for bounds, ErrNaNInf for non-finite v.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Add increments the value at (row, col) by delta and returns the new value.
// Errors: ErrOutOfRange for bounds, ErrNaNInf for non-finite delta.
// Complexity: O(1).
func (m *Dense) Add(row, col int, delta float64) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAdd, row, col, err)
	}
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return 0, denseErrorf(ctxAdd, row, col, ErrNaNInf)
	}
	m.data[off] += delta

	return m.data[off], nil
}

// Reset sets every element to zero, keeping the shape.
func (m *Dense) Reset() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// Do visits each element in row-major order and stops when f returns false.
// Complexity: O(r*c), no allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}
