// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Flat buffer with the explicit index formula i*cols + j.
//   - At/Set return errors instead of panicking.
//   - Set rejects NaN/Inf so encoded gains stay finite.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxSetRow = "SetRow"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
type Dense struct {
	r, c int       // row and column counts
	data []float64 // len == r*c, offset = i*c + j
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
//
// Errors: ErrInvalidDimensions when rows or cols is not positive.
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a matrix from equally long rows. The input is copied.
//
// Errors: ErrInvalidDimensions for empty input, ErrDimensionMismatch for
// ragged rows, ErrNaNInf for non-finite values.
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err = m.SetRow(i, row); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape returns Rows() and Cols().
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}
	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors: ErrOutOfRange for bounds, ErrNaNInf for non-finite v.
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

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])
	return out, nil
}

// SetRow overwrites row i with v.
//
// Errors: ErrOutOfRange, ErrDimensionMismatch, ErrNaNInf.
func (m *Dense) SetRow(i int, v []float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSetRow, i, 0, ErrOutOfRange)
	}
	if err := ValidateVecLen(v, m.c); err != nil {
		return denseErrorf(ctxSetRow, i, 0, err)
	}
	for j, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return denseErrorf(ctxSetRow, i, j, ErrNaNInf)
		}
	}
	copy(m.data[i*m.c:], v)
	return nil
}

// ScaleCols returns a new matrix with out[i,j] = m[i,j] * scale[j].
//
// Errors: ErrDimensionMismatch when len(scale) != Cols().
// Complexity: O(r*c).
func (m *Dense) ScaleCols(scale []float64) (*Dense, error) {
	if err := ValidateVecLen(scale, m.c); err != nil {
		return nil, fmt.Errorf("Dense.ScaleCols: %w", err)
	}
	out := m.Clone()
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			out.data[base+j] *= scale[j]
		}
	}
	return out, nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)
	return &Dense{r: m.r, c: m.c, data: cp}
}

// String renders rows for diagnostics.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}
	return b.String()
}

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds elementwise.
// Negative tolerances are taken by absolute value.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (tolerances).
// Complexity: O(r*c).
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, fmt.Errorf("AllClose: %w", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateNotNil(a); err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}
	for k := range a.data {
		if math.Abs(a.data[k]-b.data[k]) > atol+rtol*math.Abs(b.data[k]) {
			return false, nil
		}
	}
	return true, nil
}
