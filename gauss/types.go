// SPDX-License-Identifier: MIT

// Package gauss: domain types of the solver.
// This file contains ONLY the action log (a sealed tagged union), the pivot
// record and the solution model. Errors and options live in errors.go and
// options.go.
package gauss

import (
	"fmt"
	"math/big"
)

// SwapKind tells whether a Swap exchanged two rows or two columns.
type SwapKind uint8

const (
	// RowSwap exchanges two equations. It is replayed onto the free-term column.
	RowSwap SwapKind = iota + 1
	// ColumnSwap exchanges two variables. It is undone on the solution vector.
	ColumnSwap
)

// String implements fmt.Stringer.
func (k SwapKind) String() string {
	switch k {
	case RowSwap:
		return "row"
	case ColumnSwap:
		return "column"
	default:
		return fmt.Sprintf("SwapKind(%d)", uint8(k))
	}
}

// Action is one recorded elimination step. The only implementations are
// Swap and RowAddition; the set is closed by the unexported marker method,
// so type switches over Action can be exhaustive.
type Action interface {
	fmt.Stringer
	isAction()
}

// Swap is a transposition of two rows or two columns.
type Swap struct {
	Kind          SwapKind
	First, Second int
}

func (Swap) isAction() {}

// String implements fmt.Stringer.
func (s Swap) String() string {
	return fmt.Sprintf("swap %ss %d<->%d", s.Kind, s.First, s.Second)
}

// RowAddition means row[Target] += Coefficient × row[Source].
type RowAddition struct {
	Source, Target int
	Coefficient    *big.Rat
}

func (RowAddition) isAction() {}

// String implements fmt.Stringer.
func (a RowAddition) String() string {
	return fmt.Sprintf("row %d += %s × row %d", a.Target, ratString(a.Coefficient), a.Source)
}

// Pivot is the result of FindMax: the position of the entry with maximal
// absolute value in the trailing submatrix, and that absolute value.
type Pivot struct {
	Row, Col int
	Value    *big.Rat
}

// Kind classifies a solution entry.
type Kind uint8

const (
	// Undetermined marks a free column: no equation pinned it.
	Undetermined Kind = iota
	// Fixed marks a column with a single exact value.
	Fixed
	// Parametric marks a column expressed affinely in the free columns.
	Parametric
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Undetermined:
		return "undetermined"
	case Fixed:
		return "fixed"
	case Parametric:
		return "parametric"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Entry is one slot of a Solution.
//
//   - Fixed: Value holds the column's value.
//   - Undetermined: no other field is set.
//   - Parametric: x = Σ_j Coefficients[j]·x_j + Constant, with one coefficient
//     per column. Non-zero coefficients only name Undetermined columns and the
//     entry's own coefficient is zero.
type Entry struct {
	Kind         Kind
	Value        *big.Rat
	Coefficients []*big.Rat
	Constant     *big.Rat
}

// Solution holds one Entry per matrix column, in the caller's column order.
type Solution []Entry

// Report is the detailed outcome of SolveReport.
type Report struct {
	// Solution is the classified solution vector.
	Solution Solution
	// Actions is the elimination log in recorded order.
	Actions []Action
	// Rank is the number of non-zero pivots found during elimination.
	Rank int
}

// ratString formats r in lowest terms, tolerating nil.
func ratString(r *big.Rat) string {
	if r == nil {
		return "<nil>"
	}

	return r.RatString()
}
