// SPDX-License-Identifier: MIT

package gauss

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/katalvlaran/ratsolve/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opSolve       = "Solve"
	opSolveReport = "SolveReport"
)

// solveErrorf wraps err with an operation tag, preserving it for errors.Is.
func solveErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Solve solves a·x = b exactly and returns the classified solution in the
// caller's column order.
//
// Implementation:
//   - Stage 1 (Validate): a non-nil, b has one non-nil entry per row.
//   - Stage 2 (Prepare): deep-copy a and b unless WithInPlace is given.
//   - Stage 3 (Eliminate): ToRowEchelonForm with full pivoting.
//   - Stage 4 (Replay): ApplyToColumn keeps b in step with the rows.
//   - Stage 5 (Substitute): BackSubstitute classifies every column.
//   - Stage 6 (Finalize): UndoColumnSwaps restores the column order.
//
// Errors:
//   - structural: matrix.ErrNilMatrix, matrix.ErrNotRational,
//     matrix.ErrDimensionMismatch (checked before any mutation);
//   - semantic: ErrNoSolution when the system is inconsistent.
//
// Complexity: O(min(r,c)·r·c) for elimination plus back-substitution.
func Solve(a *matrix.Dense, b []*big.Rat, opts ...Option) (Solution, error) {
	rep, err := solve(a, b, gatherOptions(opts...))
	if err != nil {
		return nil, solveErrorf(opSolve, err)
	}

	return rep.Solution, nil
}

// SolveReport is Solve that also returns the action log and the rank.
func SolveReport(a *matrix.Dense, b []*big.Rat, opts ...Option) (*Report, error) {
	rep, err := solve(a, b, gatherOptions(opts...))
	if err != nil {
		return nil, solveErrorf(opSolveReport, err)
	}

	return rep, nil
}

// SolveRows validates rows with matrix.FromRows and solves the system. The
// inputs are always copied.
func SolveRows(rows [][]*big.Rat, b []*big.Rat, opts ...Option) (Solution, error) {
	a, err := matrix.FromRows(rows)
	if err != nil {
		return nil, solveErrorf(opSolve, err)
	}

	return Solve(a, b, append(opts[:len(opts):len(opts)], WithCopy())...)
}

func solve(a *matrix.Dense, b []*big.Rat, o Options) (*Report, error) {
	// Stage 1: validate
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, err
	}
	if err := matrix.ValidateColumn(b, a.Rows()); err != nil {
		return nil, err
	}

	// Stage 2: ownership
	if !o.inPlace {
		a = a.Clone()
		b = matrix.CloneColumn(b)
	}

	// Stage 3: eliminate
	actions, rank, err := eliminate(a)
	if err != nil {
		return nil, err
	}
	logActions(o.logger, actions)

	// Stage 4: replay row operations
	if err := ApplyToColumn(actions, b); err != nil {
		return nil, err
	}

	// Stage 5: back-substitute
	sol, err := BackSubstitute(a, b)
	if err != nil {
		o.logger.Debug("system is inconsistent", slog.Int("rank", rank))
		return nil, err
	}

	// Stage 6: restore the caller's column order
	if err = UndoColumnSwaps(actions, sol); err != nil {
		return nil, err
	}
	o.logger.Debug("system solved",
		slog.Int("rows", a.Rows()),
		slog.Int("cols", a.Cols()),
		slog.Int("rank", rank),
		slog.Any("free", sol.FreeColumns()),
	)

	return &Report{Solution: sol, Actions: actions, Rank: rank}, nil
}

// logActions emits one debug record per recorded action.
func logActions(l *slog.Logger, actions []Action) {
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	for i, act := range actions {
		l.Debug("elimination step", slog.Int("step", i), slog.String("action", act.String()))
	}
}
