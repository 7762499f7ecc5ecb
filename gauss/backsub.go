// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/ratsolve/matrix"
)

// affine is Σ coef[j]·x_j + constant over the columns of the system.
type affine struct {
	coef     []*big.Rat
	constant *big.Rat
}

func newAffine(n int) *affine {
	f := &affine{coef: make([]*big.Rat, n), constant: new(big.Rat)}
	for j := range f.coef {
		f.coef[j] = new(big.Rat)
	}

	return f
}

// addEntry adds a·e to f, where e is a Fixed or Parametric entry.
func (f *affine) addEntry(a *big.Rat, e Entry) {
	var term big.Rat
	switch e.Kind {
	case Fixed:
		f.constant.Add(f.constant, term.Mul(a, e.Value))
	case Parametric:
		for j, c := range e.Coefficients {
			if c.Sign() != 0 {
				f.coef[j].Add(f.coef[j], term.Mul(a, c))
			}
		}
		f.constant.Add(f.constant, term.Mul(a, e.Constant))
	}
}

// isConstant reports whether f does not depend on any column.
func (f *affine) isConstant() bool {
	for _, c := range f.coef {
		if c.Sign() != 0 {
			return false
		}
	}

	return true
}

// BackSubstitute solves an upper row-echelon system m·x = col from the last
// row to the first and classifies every column.
//
// Per row, columns with non-zero entries split into "new" ones (slot still
// Undetermined) and known ones, whose contribution is accumulated into the
// left-hand side. Known slots may be Parametric, so the left-hand side is
// an affine form rather than a number.
//
//   - no new column: the row reads left = col[row]; a mismatch is
//     ErrNoSolution.
//   - otherwise the smallest new column k is solved for:
//     x_k = (col[row] − left − Σ_{other new j} a_j·x_j) / a_k.
//     The slot becomes Fixed when that form has no free column left
//     (always the case for a single new column with fixed neighbors) and
//     Parametric otherwise.
//
// The returned solution is in m's column order; combine with
// UndoColumnSwaps to map it back. m and col are not modified.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNotRational,
// matrix.ErrDimensionMismatch, ErrNoSolution, ErrNotEchelon.
// Complexity: O(r·c²) in the worst case (parametric rows), O(r·c) otherwise.
func BackSubstitute(m *matrix.Dense, col []*big.Rat) (Solution, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("BackSubstitute: %w", err)
	}
	if err := matrix.ValidateColumn(col, m.Rows()); err != nil {
		return nil, fmt.Errorf("BackSubstitute: %w", err)
	}

	cols := m.Cols()
	sol := make(Solution, cols)
	for row := m.Rows() - 1; row >= 0; row-- {
		// Stage 1: classify columns of this row
		left := newAffine(cols)
		newVars, newPos := 0, cols
		for c := 0; c < cols; c++ {
			a := m.Entry(row, c)
			if a.Sign() == 0 {
				continue
			}
			if sol[c].Kind == Undetermined {
				newVars++
				newPos = min(newPos, c)
				continue
			}
			left.addEntry(a, sol[c])
		}

		// Stage 2: consistency check for rows without new columns
		if newVars == 0 {
			if !left.isConstant() {
				return nil, fmt.Errorf("BackSubstitute: row %d: %w", row, ErrNotEchelon)
			}
			if left.constant.Cmp(col[row]) != 0 {
				return nil, fmt.Errorf("BackSubstitute: row %d: %w", row, ErrNoSolution)
			}
			continue
		}

		// Stage 3: solve for the leading new column
		pivot := new(big.Rat).Add(m.Entry(row, newPos), left.coef[newPos])
		if pivot.Sign() == 0 {
			return nil, fmt.Errorf("BackSubstitute: row %d: %w", row, ErrNotEchelon)
		}
		expr := Entry{
			Coefficients: make([]*big.Rat, cols),
			Constant:     new(big.Rat).Sub(col[row], left.constant),
		}
		expr.Constant.Quo(expr.Constant, pivot)
		dependent := false
		for c := 0; c < cols; c++ {
			k := new(big.Rat)
			if c != newPos {
				k.Set(left.coef[c])
				if sol[c].Kind == Undetermined {
					k.Add(k, m.Entry(row, c))
				}
				k.Quo(k, pivot)
				k.Neg(k)
			}
			if k.Sign() != 0 {
				dependent = true
			}
			expr.Coefficients[c] = k
		}

		if dependent {
			expr.Kind = Parametric
			sol[newPos] = expr
			continue
		}
		sol[newPos] = Entry{Kind: Fixed, Value: expr.Constant}
	}

	return sol, nil
}
