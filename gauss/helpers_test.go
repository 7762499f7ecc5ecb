// SPDX-License-Identifier: MIT
// Package gauss_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the solver tests.
//   - Keep the conversion of plain numbers into rationals in one place.

package gauss_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/ratsolve/gauss"
	"github.com/katalvlaran/ratsolve/matrix"
	"github.com/stretchr/testify/require"
)

// R parses s into a rational or fails the test.
func R(t testing.TB, s string) *big.Rat {
	t.Helper()
	r, err := matrix.Parse(s)
	require.NoError(t, err)

	return r
}

// MustRows builds a Dense from Parse-compatible strings or fails the test.
func MustRows(t testing.TB, rows ...[]string) *matrix.Dense {
	t.Helper()
	m, err := matrix.ParseRows(rows)
	require.NoError(t, err)

	return m
}

// MustCol builds a column from Parse-compatible strings or fails the test.
func MustCol(t testing.TB, vals ...string) []*big.Rat {
	t.Helper()
	c, err := matrix.ParseColumn(vals)
	require.NoError(t, err)

	return c
}

// fixed builds a Fixed entry.
func fixed(t testing.TB, v string) gauss.Entry {
	return gauss.Entry{Kind: gauss.Fixed, Value: R(t, v)}
}

// param builds a Parametric entry; the last value is the constant term.
func param(t testing.TB, vals ...string) gauss.Entry {
	coef := MustCol(t, vals[:len(vals)-1]...)

	return gauss.Entry{Kind: gauss.Parametric, Coefficients: coef, Constant: R(t, vals[len(vals)-1])}
}

// free builds an Undetermined entry.
func free() gauss.Entry { return gauss.Entry{Kind: gauss.Undetermined} }

// RequireSolution compares two solutions entry by entry with exact rational
// equality (big.Rat values are not comparable with ==).
func RequireSolution(t testing.TB, want, got gauss.Solution) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Equalf(t, want[i].Kind, got[i].Kind, "kind of column %d", i)
		switch want[i].Kind {
		case gauss.Fixed:
			require.Zerof(t, want[i].Value.Cmp(got[i].Value), "column %d: want %s, got %s",
				i, want[i].Value.RatString(), got[i].Value.RatString())
		case gauss.Parametric:
			require.Truef(t, matrix.ColumnsEqual(want[i].Coefficients, got[i].Coefficients),
				"coefficients of column %d: got %s", i, got[i].Expression())
			require.Zerof(t, want[i].Constant.Cmp(got[i].Constant), "constant of column %d", i)
		}
	}
}

// zeroParams binds every free column of sol to zero.
func zeroParams(sol gauss.Solution) map[int]*big.Rat {
	params := make(map[int]*big.Rat)
	for _, k := range sol.FreeColumns() {
		params[k] = new(big.Rat)
	}

	return params
}
