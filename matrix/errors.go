// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every constructor, validator and kernel returns these sentinels
// (optionally wrapped with an operation tag) and tests check them via
// errors.Is. No function panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." to allow easy grepping across
// logs. When context is essential, wrap with fmt.Errorf("ctx: %w", ErrX) at
// the boundary; callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> type (nil entry) -> empty -> shape -> ragged -> dimension mismatch.

var (
	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNotRational is the type error: an entry is not an exact rational
	// (a nil *big.Rat where a value is required).
	ErrNotRational = errors.New("matrix: matrix must be rows of exact rationals")

	// ErrEmptyMatrix is returned when a matrix without rows is supplied.
	ErrEmptyMatrix = errors.New("matrix: empty matrix")

	// ErrBadShape is returned when requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("matrix: all rows must have constant non-zero length")

	// ErrRaggedRows indicates that a row length differs from the first row.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a free-term column whose length differs from the row count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadNumber is returned by the parsing helpers for text that is not a
	// rational number, and by Frac for a zero denominator.
	ErrBadNumber = errors.New("matrix: malformed rational number")
)

// structural lists the sentinels that describe malformed input.
var structural = []error{
	ErrNilMatrix,
	ErrNotRational,
	ErrEmptyMatrix,
	ErrBadShape,
	ErrRaggedRows,
	ErrDimensionMismatch,
}

// IsStructural reports whether err describes malformed input (shape or
// content) rather than a property of the equation system.
func IsStructural(err error) bool {
	for _, s := range structural {
		if errors.Is(err, s) {
			return true
		}
	}

	return false
}
