// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/ratsolve/matrix"
)

// FindMax scans the trailing submatrix rows[start:], cols[start:] in
// row-major order and returns the entry of maximal absolute value.
// The initial candidate is (start, start); a later entry replaces it only
// when strictly greater, so ties resolve to the first one found.
//
// A zero Value means the whole trailing submatrix is zero.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrOutOfRange when start is not in
// [0, min(rows, cols)).
// Complexity: O((r-start)·(c-start)).
func FindMax(m *matrix.Dense, start int) (Pivot, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return Pivot{}, fmt.Errorf("FindMax: %w", err)
	}
	if start < 0 || start >= min(m.Rows(), m.Cols()) {
		return Pivot{}, fmt.Errorf("FindMax: start %d: %w", start, matrix.ErrOutOfRange)
	}

	return findMax(m, start), nil
}

// findMax is FindMax without validation.
func findMax(m *matrix.Dense, start int) Pivot {
	best := Pivot{Row: start, Col: start, Value: new(big.Rat).Abs(m.Entry(start, start))}
	var cur big.Rat // scratch for |m[i][j]|
	for i := start; i < m.Rows(); i++ {
		for j := start; j < m.Cols(); j++ {
			cur.Abs(m.Entry(i, j))
			if cur.Cmp(best.Value) > 0 {
				best.Row, best.Col = i, j
				best.Value.Set(&cur)
			}
		}
	}

	return best
}

// ToRowEchelonForm reduces m in place to row-echelon form with full
// pivoting and returns the ordered log of every action applied.
//
// Implementation:
//   - Stage 1: for i in 0..min(r,c)-1 find the maximal pivot in the trailing
//     submatrix; a zero pivot ends the reduction early (rank i).
//   - Stage 2: bring the pivot to (i,i) with a row swap and a column swap,
//     each recorded only when it moves something.
//   - Stage 3: clear column i below the pivot with recorded RowAdditions;
//     rows that are already zero there are skipped.
//
// Errors: matrix.ErrNilMatrix. A zero pivot is not an error.
// Complexity: O(min(r,c)·r·c).
func ToRowEchelonForm(m *matrix.Dense) ([]Action, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToRowEchelonForm: %w", err)
	}
	actions, _, err := eliminate(m)
	if err != nil {
		return nil, fmt.Errorf("ToRowEchelonForm: %w", err)
	}

	return actions, nil
}

// eliminate performs the reduction and also reports the rank it found.
// Row operation errors are returned together with the actions recorded so
// far.
func eliminate(m *matrix.Dense) ([]Action, int, error) {
	var (
		actions []Action
		steps   = min(m.Rows(), m.Cols())
	)
	for i := 0; i < steps; i++ {
		// Stage 1: pivot search
		p := findMax(m, i)
		if p.Value.Sign() == 0 {
			return actions, i, nil
		}

		// Stage 2: move the pivot onto the diagonal
		if p.Row != i {
			if err := m.SwapRows(i, p.Row); err != nil {
				return actions, i, err
			}
			actions = append(actions, Swap{Kind: RowSwap, First: i, Second: p.Row})
		}
		if p.Col != i {
			if err := m.SwapCols(i, p.Col); err != nil {
				return actions, i, err
			}
			actions = append(actions, Swap{Kind: ColumnSwap, First: i, Second: p.Col})
		}

		// Stage 3: eliminate below the pivot
		pivot := m.Entry(i, i)
		for r := i + 1; r < m.Rows(); r++ {
			if m.IsZero(r, i) {
				continue
			}
			coef := new(big.Rat).Quo(m.Entry(r, i), pivot)
			coef.Neg(coef)
			if err := m.AddScaledRow(i, r, coef); err != nil {
				return actions, i, err
			}
			actions = append(actions, RowAddition{Source: i, Target: r, Coefficient: coef})
		}
	}

	return actions, steps, nil
}
