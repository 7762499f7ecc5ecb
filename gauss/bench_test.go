// SPDX-License-Identifier: MIT
// Package gauss_test provides benchmarks for Solve on deterministic
// pseudo-random integer systems.
package gauss_test

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/ratsolve/gauss"
	"github.com/katalvlaran/ratsolve/matrix"
)

// benchSizes are the system sizes to benchmark.
var benchSizes = []int{4, 16, 32}

// sink defeats dead-code elimination.
var sink gauss.Solution

// randomSystem fills an n×n system with integers in [-9, 9].
func randomSystem(b *testing.B, n int, seed int64) (*matrix.Dense, []*big.Rat) {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]int64, n)
	col := make([]int64, n)
	for i := range rows {
		rows[i] = make([]int64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Int63n(19) - 9
		}
		col[i] = rng.Int63n(19) - 9
	}
	a, err := matrix.Ints(rows)
	if err != nil {
		b.Fatal(err)
	}

	return a, matrix.IntColumn(col...)
}

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a, col := randomSystem(b, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sol, err := gauss.Solve(a, col)
				if err != nil && !errors.Is(err, gauss.ErrNoSolution) {
					b.Fatal(err)
				}
				sink = sol
			}
		})
	}
}

func BenchmarkSolve_InPlace(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a, col := randomSystem(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				work, wcol := a.Clone(), matrix.CloneColumn(col)
				b.StartTimer()
				sol, err := gauss.Solve(work, wcol, gauss.WithInPlace())
				if err != nil && !errors.Is(err, gauss.ErrNoSolution) {
					b.Fatal(err)
				}
				sink = sol
			}
		})
	}
}
