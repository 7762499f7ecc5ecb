// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for input validation.
//  - Keep the solver minimal by delegating shape/nil/type checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    match them with errors.Is.
//
// Note:
//  - Each validator follows the fixed priority documented in errors.go and
//    allocates nothing.

package matrix

import (
	"fmt"
	"math/big"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateRows checks that rows is a non-empty rectangular table of
// non-nil rationals.
//
// Errors (in priority order):
//   - ErrNotRational if any entry is nil (reported before shape problems,
//     so a malformed table is always a type error first);
//   - ErrEmptyMatrix if there are no rows;
//   - ErrBadShape if the first row is empty;
//   - ErrRaggedRows if any row length differs from the first.
//
// Complexity: O(r*c).
func ValidateRows(rows [][]*big.Rat) error {
	for i, row := range rows {
		for j, v := range row {
			if v == nil {
				return validatorErrorf("ValidateRows", fmt.Errorf("entry (%d,%d): %w", i, j, ErrNotRational))
			}
		}
	}
	if len(rows) == 0 {
		return validatorErrorf("ValidateRows", ErrEmptyMatrix)
	}
	width := len(rows[0])
	if width == 0 {
		return validatorErrorf("ValidateRows", ErrBadShape)
	}
	for i, row := range rows {
		if len(row) != width {
			return validatorErrorf("ValidateRows", fmt.Errorf("row %d has length %d, want %d: %w", i, len(row), width, ErrRaggedRows))
		}
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateColumn ensures col has exactly n non-nil entries.
//
// Errors: ErrNotRational (nil entry), ErrDimensionMismatch (len(col) != n).
// Complexity: O(n).
func ValidateColumn(col []*big.Rat, n int) error {
	for i, v := range col {
		if v == nil {
			return validatorErrorf("ValidateColumn", fmt.Errorf("entry %d: %w", i, ErrNotRational))
		}
	}
	if len(col) != n {
		return validatorErrorf("ValidateColumn", fmt.Errorf("length %d, want %d: %w", len(col), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateVecLen ensures x has exactly n non-nil entries. It is
// ValidateColumn under the name used by product kernels.
func ValidateVecLen(x []*big.Rat, n int) error {
	if err := ValidateColumn(x, n); err != nil {
		return validatorErrorf("ValidateVecLen", err)
	}

	return nil
}
