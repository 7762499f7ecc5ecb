// SPDX-License-Identifier: MIT
// Package matrix: Dense is a concrete, row-major matrix of exact rationals,
// storing pointers to big.Rat values in a flat slice.
package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of *big.Rat values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// A Dense owns every value it stores: no entry is shared with callers.
type Dense struct {
	r, c int        // number of rows and columns
	data []*big.Rat // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice with fresh zero values.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}
	// Allocate flat slice, one independent value per cell
	data := make([]*big.Rat, rows*cols)
	for i := range data {
		data[i] = new(big.Rat)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// FromRows validates rows (see ValidateRows) and returns a Dense holding
// deep copies of every entry. The caller keeps ownership of rows.
// Complexity: O(r*c).
func FromRows(rows [][]*big.Rat) (*Dense, error) {
	// Stage 1: validate before touching anything
	if err := ValidateRows(rows); err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}

	// Stage 2: copy values in row-major order
	r, c := len(rows), len(rows[0])
	data := make([]*big.Rat, 0, r*c)
	for _, row := range rows {
		for _, v := range row {
			data = append(data, new(big.Rat).Set(v))
		}
	}

	return &Dense{r: r, c: c, data: data}, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Identity: %w", err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i].SetInt64(1)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns a copy of the element at (row, col).
// Complexity: O(1) plus the size of the copied value.
func (m *Dense) At(row, col int) (*big.Rat, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return nil, err
	}

	return new(big.Rat).Set(m.data[idx]), nil
}

// Set stores a copy of v at (row, col).
func (m *Dense) Set(row, col int, v *big.Rat) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if v == nil {
		return denseErrorf("Set", row, col, ErrNotRational)
	}
	m.data[idx].Set(v)

	return nil
}

// at returns the stored pointer without bounds checks or copying.
// Callers inside the module must not retain or mutate it.
func (m *Dense) at(row, col int) *big.Rat { return m.data[row*m.c+col] }

// Entry returns the stored value at (row, col) without copying. It panics
// on out-of-range indices like a slice access. The returned pointer is owned
// by m: read it, do not mutate or retain it.
func (m *Dense) Entry(row, col int) *big.Rat { return m.at(row, col) }

// IsZero reports whether the element at (row, col) is zero.
func (m *Dense) IsZero(row, col int) bool { return m.at(row, col).Sign() == 0 }

// SwapRows exchanges rows i and j in place.
// Complexity: O(c).
func (m *Dense) SwapRows(i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return denseErrorf("SwapRows", i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	bi, bj := i*m.c, j*m.c
	for k := 0; k < m.c; k++ {
		m.data[bi+k], m.data[bj+k] = m.data[bj+k], m.data[bi+k]
	}

	return nil
}

// SwapCols exchanges columns i and j in every row, in place.
// Complexity: O(r).
func (m *Dense) SwapCols(i, j int) error {
	if i < 0 || i >= m.c || j < 0 || j >= m.c {
		return denseErrorf("SwapCols", i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	for row := 0; row < m.r; row++ {
		base := row * m.c
		m.data[base+i], m.data[base+j] = m.data[base+j], m.data[base+i]
	}

	return nil
}

// AddScaledRow performs row[target] += coef × row[source] across the full
// row width, in place.
// Complexity: O(c).
func (m *Dense) AddScaledRow(source, target int, coef *big.Rat) error {
	if source < 0 || source >= m.r || target < 0 || target >= m.r {
		return denseErrorf("AddScaledRow", source, target, ErrOutOfRange)
	}
	if coef == nil {
		return denseErrorf("AddScaledRow", source, target, ErrNotRational)
	}
	var (
		bs, bt = source * m.c, target * m.c
		term   big.Rat // scratch for coef*src
	)
	for k := 0; k < m.c; k++ {
		term.Mul(coef, m.data[bs+k])
		m.data[bt+k].Add(m.data[bt+k], &term)
	}

	return nil
}

// Row returns copies of the values in row i.
func (m *Dense) Row(i int) ([]*big.Rat, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]*big.Rat, m.c)
	for k := range out {
		out[k] = new(big.Rat).Set(m.data[i*m.c+k])
	}

	return out, nil
}

// ToRows returns a deep copy of the matrix as nested slices.
func (m *Dense) ToRows() [][]*big.Rat {
	out := make([][]*big.Rat, m.r)
	for i := range out {
		out[i], _ = m.Row(i)
	}

	return out
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	copyData := make([]*big.Rat, len(m.data))
	for i, v := range m.data {
		copyData[i] = new(big.Rat).Set(v)
	}

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// Equal reports whether m and o have the same shape and equal entries.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i].Cmp(o.data[i]) != 0 {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging. Entries are printed in
// lowest terms with RatString ("9/2", "-1", "0").
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.data[i*m.c+j].RatString())
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
