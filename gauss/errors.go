// SPDX-License-Identifier: MIT
// Package gauss: sentinel error set.
// Structural input errors come from package matrix (matrix.ErrNotRational,
// matrix.ErrEmptyMatrix, ...) and are passed through wrapped; this file
// declares only the solver's own sentinels.

package gauss

import "errors"

var (
	// ErrNoSolution is returned when back-substitution meets an equation
	// 0 = c with c ≠ 0: the system is inconsistent.
	ErrNoSolution = errors.New("gauss: the equation has no solution")

	// ErrNotEchelon is returned by BackSubstitute when a row has no new
	// variable yet still depends on free columns, which cannot happen for a
	// matrix produced by ToRowEchelonForm.
	ErrNotEchelon = errors.New("gauss: matrix is not in row-echelon form")

	// ErrUnknownAction is returned when an action log holds a value that is
	// neither a Swap nor a RowAddition, or a Swap of unknown kind.
	ErrUnknownAction = errors.New("gauss: unknown action")

	// ErrUnboundParameter is returned by Solution.Evaluate when a free column
	// has no value in the parameter map.
	ErrUnboundParameter = errors.New("gauss: free column not bound")

	// ErrNotFree is returned by Solution.Evaluate for a parameter naming a
	// column that is not free.
	ErrNotFree = errors.New("gauss: column is not free")

	// ErrVerifyFailed is returned by Verify when A·x differs from b.
	ErrVerifyFailed = errors.New("gauss: solution does not satisfy the system")
)
