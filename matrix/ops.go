// SPDX-License-Identifier: MIT
// Package matrix: exact linear-algebra kernels on Dense.
//
// Notes:
//   - Kernels validate with the central validators and wrap failures with an
//     operation tag via matrixErrorf.
//   - Inputs are never mutated; results are freshly allocated.

package matrix

import (
	"fmt"
	"math/big"
)

// Operation name constants for unified error wrapping.
const (
	opMatVec    = "MatVec"
	opMul       = "Mul"
	opTranspose = "Transpose"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w. Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols(); no nil entries.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m *Dense, x []*big.Rat) ([]*big.Rat, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]*big.Rat, m.r)
	var term big.Rat // scratch for a(i,j)*x(j)
	for i := 0; i < m.r; i++ {
		acc := new(big.Rat)
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if x[j].Sign() == 0 { // skip zero multiplications
				continue
			}
			term.Mul(m.data[base+j], x[j])
			acc.Add(acc, &term)
		}
		y[i] = acc
	}

	return y, nil
}

// Mul performs standard matrix multiplication C = A × B.
// Errors: ErrNilMatrix, ErrDimensionMismatch when a.Cols() != b.Rows().
// Complexity: O(r*k*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d × %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var term big.Rat
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik.Sign() == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				term.Mul(aik, b.data[k*b.c+j])
				cell := res.data[i*b.c+j]
				cell.Add(cell, &term)
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i].Set(m.data[i*m.c+j])
		}
	}

	return res, nil
}
