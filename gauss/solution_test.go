// SPDX-License-Identifier: MIT
// Package gauss_test contains unit tests for the Solution model.
package gauss_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/ratsolve/gauss"
	"github.com/katalvlaran/ratsolve/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// family is x0 = 0, x1 = -x2 + 2, x2 free.
func family(t *testing.T) gauss.Solution {
	return gauss.Solution{fixed(t, "0"), param(t, "0", "0", "-1", "2"), free()}
}

func TestSolution_Evaluate(t *testing.T) {
	t.Parallel()

	x, err := family(t).Evaluate(map[int]*big.Rat{2: R(t, "1/2")})
	require.NoError(t, err)
	assert.True(t, matrix.ColumnsEqual(MustCol(t, "0", "3/2", "1/2"), x))

	tests := []struct {
		name   string
		params map[int]*big.Rat
		want   error
	}{
		{"missing binding", nil, gauss.ErrUnboundParameter},
		{"fixed column", map[int]*big.Rat{0: R(t, "1"), 2: R(t, "1")}, gauss.ErrNotFree},
		{"parametric column", map[int]*big.Rat{1: R(t, "1"), 2: R(t, "1")}, gauss.ErrNotFree},
		{"out of range", map[int]*big.Rat{2: R(t, "1"), 9: R(t, "1")}, gauss.ErrNotFree},
		{"nil value", map[int]*big.Rat{2: nil}, matrix.ErrNotRational},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := family(t).Evaluate(tc.params)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSolution_Values(t *testing.T) {
	t.Parallel()

	x, err := gauss.Solution{fixed(t, "1"), fixed(t, "-2/3")}.Values()
	require.NoError(t, err)
	assert.True(t, matrix.ColumnsEqual(MustCol(t, "1", "-2/3"), x))

	_, err = family(t).Values()
	assert.ErrorIs(t, err, gauss.ErrUnboundParameter)
}

func TestSolution_Values_DoNotAlias(t *testing.T) {
	t.Parallel()

	sol := gauss.Solution{fixed(t, "4")}
	x, err := sol.Values()
	require.NoError(t, err)
	x[0].SetInt64(99)
	assert.Equal(t, "4", sol[0].Value.RatString())
}

func TestEntry_Expression(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry gauss.Entry
		col   int
		want  string
	}{
		{"fixed", fixed(t, "-7/2"), 0, "x0 = -7/2"},
		{"free", free(), 3, "x3 free"},
		{"single term", param(t, "0", "0", "-1", "2"), 1, "x1 = -x2 + 2"},
		{"scaled terms", param(t, "0", "-2", "1/3", "-5"), 0, "x0 = -2·x1 + 1/3·x2 - 5"},
		{"no constant", param(t, "0", "1", "0"), 0, "x0 = x1"},
		{"all zero", param(t, "0", "0", "0"), 0, "x0 = 0"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.entry.Describe(tc.col))
		})
	}
}
