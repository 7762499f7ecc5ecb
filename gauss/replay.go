// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/ratsolve/matrix"
)

// ApplyToColumn replays the row operations of actions onto col, in recorded
// order, keeping the free terms in step with the reduced matrix.
// Row swaps swap two entries, row additions add coef × col[source] to
// col[target], column swaps are skipped: they rename variables, not
// equations.
//
// Errors: matrix.ErrNotRational (nil entry), matrix.ErrOutOfRange (index
// outside col), ErrUnknownAction. col may be partially updated on error.
// Complexity: O(len(actions)).
func ApplyToColumn(actions []Action, col []*big.Rat) error {
	for i, v := range col {
		if v == nil {
			return fmt.Errorf("ApplyToColumn: entry %d: %w", i, matrix.ErrNotRational)
		}
	}
	inRange := func(idx ...int) bool {
		for _, k := range idx {
			if k < 0 || k >= len(col) {
				return false
			}
		}
		return true
	}

	var term big.Rat
	for n, act := range actions {
		switch a := act.(type) {
		case Swap:
			switch a.Kind {
			case RowSwap:
				if !inRange(a.First, a.Second) {
					return fmt.Errorf("ApplyToColumn: action %d (%s): %w", n, a, matrix.ErrOutOfRange)
				}
				col[a.First], col[a.Second] = col[a.Second], col[a.First]
			case ColumnSwap:
				// undone on the solution vector instead
			default:
				return fmt.Errorf("ApplyToColumn: action %d: %w", n, ErrUnknownAction)
			}
		case RowAddition:
			if !inRange(a.Source, a.Target) {
				return fmt.Errorf("ApplyToColumn: action %d (%s): %w", n, a, matrix.ErrOutOfRange)
			}
			if a.Coefficient == nil {
				return fmt.Errorf("ApplyToColumn: action %d: %w", n, matrix.ErrNotRational)
			}
			term.Mul(a.Coefficient, col[a.Source])
			col[a.Target] = new(big.Rat).Add(col[a.Target], &term)
		default:
			return fmt.Errorf("ApplyToColumn: action %d (%T): %w", n, act, ErrUnknownAction)
		}
	}

	return nil
}

// UndoColumnSwaps walks actions in reverse and, for every column swap,
// swaps the two solution entries and the same two positions inside every
// parametric coefficient vector. Afterwards sol is indexed by the caller's
// original column order. Row swaps and row additions are ignored.
//
// Errors: matrix.ErrOutOfRange, ErrUnknownAction.
// Complexity: O(len(actions)·len(sol)).
func UndoColumnSwaps(actions []Action, sol Solution) error {
	for n := len(actions) - 1; n >= 0; n-- {
		switch a := actions[n].(type) {
		case Swap:
			switch a.Kind {
			case ColumnSwap:
				if a.First < 0 || a.First >= len(sol) || a.Second < 0 || a.Second >= len(sol) {
					return fmt.Errorf("UndoColumnSwaps: action %d (%s): %w", n, a, matrix.ErrOutOfRange)
				}
				sol[a.First], sol[a.Second] = sol[a.Second], sol[a.First]
				for k := range sol {
					if sol[k].Kind != Parametric {
						continue
					}
					c := sol[k].Coefficients
					c[a.First], c[a.Second] = c[a.Second], c[a.First]
				}
			case RowSwap:
				// equations only
			default:
				return fmt.Errorf("UndoColumnSwaps: action %d: %w", n, ErrUnknownAction)
			}
		case RowAddition:
			// equations only
		default:
			return fmt.Errorf("UndoColumnSwaps: action %d (%T): %w", n, actions[n], ErrUnknownAction)
		}
	}

	return nil
}
