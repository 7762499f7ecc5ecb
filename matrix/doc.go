// Package matrix offers an exact-rational dense matrix for linear algebra
// over the field of rational numbers.
//
// The matrix package provides:
//
//   - Dense, an r×c row-major matrix of *big.Rat that owns its entries.
//   - Validators (ValidateRows, ValidateColumn) that reject malformed input
//     before any computation touches it.
//   - In-place elementary row/column operations (SwapRows, SwapCols,
//     AddScaledRow) used by elimination algorithms.
//   - Exact kernels (MatVec, Mul, Transpose) for verification.
//   - Converters (Int, Frac, Float, Parse, Ints, ParseRows) from plain Go
//     numbers and text.
//
// No arithmetic in this package rounds: every result is exact.
//
// See the examples in this package and gauss for usage patterns.
package matrix
