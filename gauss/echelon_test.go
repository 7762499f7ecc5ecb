// SPDX-License-Identifier: MIT
// Package gauss_test contains unit tests for the individual elimination
// stages: pivot search, reduction, replay, back-substitution and undo.
package gauss_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/ratsolve/gauss"
	"github.com/katalvlaran/ratsolve/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// coupled is the rank-deficient fixture shared by the stage tests.
func coupled(t *testing.T) (*matrix.Dense, []*big.Rat) {
	return MustRows(t, []string{"1", "0", "0"}, []string{"0", "1", "1"}, []string{"0", "4.5", "4.5"}),
		MustCol(t, "0", "2", "9")
}

func TestFindMax(t *testing.T) {
	t.Parallel()

	m := MustRows(t,
		[]string{"1", "-7", "2"},
		[]string{"7", "0", "-7"},
		[]string{"0", "3", "1"},
	)

	tests := []struct {
		name     string
		start    int
		row, col int
		value    string
	}{
		// |-7| at (0,1) is found first; later ties do not replace it.
		{"whole matrix", 0, 0, 1, "7"},
		{"trailing 2x2", 1, 1, 2, "7"},
		{"trailing 1x1", 2, 2, 2, "1"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			p, err := gauss.FindMax(m, tc.start)
			require.NoError(t, err)
			assert.Equal(t, tc.row, p.Row)
			assert.Equal(t, tc.col, p.Col)
			assert.Zero(t, p.Value.Cmp(R(t, tc.value)))
		})
	}

	zero, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	p, err := gauss.FindMax(zero, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Row, "a zero block keeps the diagonal candidate")
	assert.Equal(t, 0, p.Col)
	assert.Zero(t, p.Value.Sign())

	_, err = gauss.FindMax(m, 3)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = gauss.FindMax(m, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = gauss.FindMax(nil, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestToRowEchelonForm(t *testing.T) {
	t.Parallel()

	m, _ := coupled(t)
	actions, err := gauss.ToRowEchelonForm(m)
	require.NoError(t, err)

	require.Len(t, actions, 4)
	assert.Equal(t, gauss.Swap{Kind: gauss.RowSwap, First: 0, Second: 2}, actions[0])
	assert.Equal(t, gauss.Swap{Kind: gauss.ColumnSwap, First: 0, Second: 1}, actions[1])
	add, ok := actions[2].(gauss.RowAddition)
	require.True(t, ok, "third action must be a RowAddition, got %T", actions[2])
	assert.Equal(t, 0, add.Source)
	assert.Equal(t, 1, add.Target)
	assert.Zero(t, add.Coefficient.Cmp(R(t, "-2/9")))
	assert.Equal(t, gauss.Swap{Kind: gauss.RowSwap, First: 1, Second: 2}, actions[3])

	want := MustRows(t, []string{"9/2", "0", "9/2"}, []string{"0", "1", "0"}, []string{"0", "0", "0"})
	assert.True(t, m.Equal(want), "got\n%s", m)

	// Below-diagonal entries are zero for every reduced row.
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < i && j < m.Cols(); j++ {
			assert.True(t, m.IsZero(i, j), "entry (%d,%d) must be zero", i, j)
		}
	}

	_, err = gauss.ToRowEchelonForm(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestToRowEchelonForm_WideAndTall(t *testing.T) {
	t.Parallel()

	wide := MustRows(t, []string{"1", "2", "3", "4"}, []string{"2", "4", "6", "9"})
	actions, err := gauss.ToRowEchelonForm(wide)
	require.NoError(t, err)
	assert.NotEmpty(t, actions)
	assert.True(t, wide.IsZero(1, 0))

	tall := MustRows(t, []string{"1"}, []string{"-3"}, []string{"2"})
	actions, err = gauss.ToRowEchelonForm(tall)
	require.NoError(t, err)
	// pivot -3 moves up, then two additions clear the column
	require.Len(t, actions, 3)
	assert.Equal(t, gauss.Swap{Kind: gauss.RowSwap, First: 0, Second: 1}, actions[0])
	assert.True(t, tall.IsZero(1, 0))
	assert.True(t, tall.IsZero(2, 0))
}

func TestToRowEchelonForm_EveryShape(t *testing.T) {
	t.Parallel()

	for rows := 1; rows <= 4; rows++ {
		for cols := 1; cols <= 4; cols++ {
			data := make([][]int64, rows)
			for i := range data {
				data[i] = make([]int64, cols)
				for j := range data[i] {
					data[i][j] = int64((i*7+j*3)%5 - 2)
				}
			}
			m, err := matrix.Ints(data)
			require.NoError(t, err)

			actions, err := gauss.ToRowEchelonForm(m)
			require.NoError(t, err, "%dx%d", rows, cols)
			for _, act := range actions {
				if s, ok := act.(gauss.Swap); ok {
					assert.Less(t, s.First, s.Second, "%dx%d: %s", rows, cols, s)
				}
			}
			for j := 0; j < cols && j < rows; j++ {
				for i := j + 1; i < rows; i++ {
					assert.True(t, m.IsZero(i, j), "%dx%d: (%d,%d)", rows, cols, i, j)
				}
			}
		}
	}
}

func TestApplyToColumn(t *testing.T) {
	t.Parallel()

	m, b := coupled(t)
	actions, err := gauss.ToRowEchelonForm(m)
	require.NoError(t, err)

	require.NoError(t, gauss.ApplyToColumn(actions, b))
	assert.True(t, matrix.ColumnsEqual(MustCol(t, "9", "0", "0"), b), "row additions must be replayed")

	// Column swaps do not touch the column.
	col := MustCol(t, "1", "2")
	require.NoError(t, gauss.ApplyToColumn([]gauss.Action{gauss.Swap{Kind: gauss.ColumnSwap, First: 0, Second: 1}}, col))
	assert.True(t, matrix.ColumnsEqual(MustCol(t, "1", "2"), col))

	tests := []struct {
		name    string
		actions []gauss.Action
		want    error
	}{
		{"nil action", []gauss.Action{nil}, gauss.ErrUnknownAction},
		{"bad kind", []gauss.Action{gauss.Swap{Kind: 9}}, gauss.ErrUnknownAction},
		{"row out of range", []gauss.Action{gauss.Swap{Kind: gauss.RowSwap, First: 0, Second: 5}}, matrix.ErrOutOfRange},
		{"addition out of range", []gauss.Action{gauss.RowAddition{Source: -1, Target: 0, Coefficient: big.NewRat(1, 1)}}, matrix.ErrOutOfRange},
		{"nil coefficient", []gauss.Action{gauss.RowAddition{Source: 0, Target: 1}}, matrix.ErrNotRational},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := gauss.ApplyToColumn(tc.actions, MustCol(t, "1", "2"))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBackSubstitute(t *testing.T) {
	t.Parallel()

	upper := MustRows(t, []string{"2", "1"}, []string{"0", "4"})
	sol, err := gauss.BackSubstitute(upper, MustCol(t, "3", "2"))
	require.NoError(t, err)
	RequireSolution(t, gauss.Solution{fixed(t, "5/4"), fixed(t, "1/2")}, sol)

	// Two new columns in one row produce a parametric slot for the leftmost.
	wide := MustRows(t, []string{"3", "6", "-3"})
	sol, err = gauss.BackSubstitute(wide, MustCol(t, "9"))
	require.NoError(t, err)
	RequireSolution(t, gauss.Solution{param(t, "0", "-2", "1", "3"), free(), free()}, sol)

	zeroRow := MustRows(t, []string{"1", "1"}, []string{"0", "0"})
	_, err = gauss.BackSubstitute(zeroRow, MustCol(t, "1", "1"))
	assert.ErrorIs(t, err, gauss.ErrNoSolution)

	// Row 0 has no new column left but still depends on the free x1.
	notEchelon := MustRows(t, []string{"1", "0"}, []string{"1", "1"})
	_, err = gauss.BackSubstitute(notEchelon, MustCol(t, "1", "1"))
	assert.ErrorIs(t, err, gauss.ErrNotEchelon)

	_, err = gauss.BackSubstitute(upper, MustCol(t, "1"))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestUndoColumnSwaps(t *testing.T) {
	t.Parallel()

	// Permuted order: (x2, x0, x1) after swaps (0,1) then (0,2).
	sol := gauss.Solution{
		param(t, "0", "5", "0", "1"), // depends on permuted column 1
		free(),
		fixed(t, "3"),
	}
	actions := []gauss.Action{
		gauss.Swap{Kind: gauss.ColumnSwap, First: 0, Second: 1},
		gauss.RowAddition{Source: 0, Target: 1, Coefficient: big.NewRat(1, 1)},
		gauss.Swap{Kind: gauss.RowSwap, First: 0, Second: 1},
		gauss.Swap{Kind: gauss.ColumnSwap, First: 0, Second: 2},
	}
	require.NoError(t, gauss.UndoColumnSwaps(actions, sol))

	// Reverse (0,2): [fixed 3, free, param]; coef [0,5,0] stays.
	// Reverse (0,1): [free, fixed 3, param]; coef becomes [5,0,0].
	RequireSolution(t, gauss.Solution{free(), fixed(t, "3"), param(t, "5", "0", "0", "1")}, sol)

	bad := []gauss.Action{gauss.Swap{Kind: gauss.ColumnSwap, First: 0, Second: 3}}
	assert.ErrorIs(t, gauss.UndoColumnSwaps(bad, sol), matrix.ErrOutOfRange)
	assert.ErrorIs(t, gauss.UndoColumnSwaps([]gauss.Action{nil}, sol), gauss.ErrUnknownAction)
}

func TestActionString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "swap columns 1<->3", gauss.Swap{Kind: gauss.ColumnSwap, First: 1, Second: 3}.String())
	assert.Equal(t, "row 2 += 1/3 × row 0",
		gauss.RowAddition{Source: 0, Target: 2, Coefficient: big.NewRat(1, 3)}.String())
	assert.Equal(t, "SwapKind(7)", gauss.SwapKind(7).String())
	assert.Equal(t, "parametric", gauss.Parametric.String())
}
