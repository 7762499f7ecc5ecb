// Package gauss solves linear systems A·x = b over the exact rationals by
// Gaussian elimination with full (row and column) pivoting.
//
// What it does:
//
//	Solve reduces A to row-echelon form, recording every row swap, column
//	swap and row addition in an action log. The row operations are replayed
//	onto b, a bottom-up back-substitution classifies each column, and the
//	column swaps are undone so the result lines up with the caller's
//	variables. The outcome is one of:
//	  • a unique solution: every Entry is Fixed;
//	  • a parametric family: some columns are Undetermined (free) and others
//	    are Parametric, i.e. affine in the free ones;
//	  • ErrNoSolution: the system is inconsistent.
//
// Pivoting:
//
//	Each step picks the entry of largest magnitude in the remaining
//	submatrix. Arithmetic is exact, so this is not about numerical
//	stability: a zero maximum proves the remaining block is zero and ends the
//	reduction with the rank found so far.
//
// Ownership:
//
//	By default Solve works on copies and leaves its arguments untouched.
//	WithInPlace makes it reduce the caller's matrix and column instead.
//
// Usage:
//
//	a, _ := matrix.Ints([][]int64{{1, 0, 0}, {0, 1, 1}, {0, 2, 2}})
//	sol, err := gauss.Solve(a, matrix.IntColumn(0, 2, 4))
//	// sol: x0 = 0, x1 = -x2 + 2, x2 free
//	x, err := sol.Evaluate(map[int]*big.Rat{2: big.NewRat(1, 2)})
//
// Complexity:
//
//   - Time:   O(min(r,c)·r·c) rational operations
//   - Memory: O(r·c) for the working copy
package gauss
