// Package ratsolve solves systems of linear equations A·x = b exactly, over
// the rational numbers.
//
// What is inside?
//
//	matrix/   Dense matrices of *big.Rat, validators, parsers and kernels
//	gauss/    full-pivot Gaussian elimination, back-substitution, parametric
//	          solutions, verification
//	cmd/      the ratsolve CLI (YAML/TOML system files, text or JSON output)
//
// A solution is either unique, a parametric family expressed in the free
// columns, or absent (gauss.ErrNoSolution). Nothing is ever rounded:
//
//	a, _ := matrix.ParseRows([][]string{{"1", "0"}, {"0", "4.5"}})
//	sol, _ := gauss.Solve(a, matrix.IntColumn(1, 9))
//	fmt.Println(sol) // x0 = 1, x1 = 2
//
//	go install github.com/katalvlaran/ratsolve/cmd/ratsolve@latest
package ratsolve
