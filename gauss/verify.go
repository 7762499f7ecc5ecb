// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/ratsolve/matrix"
)

// Verify checks a·x == b exactly by re-multiplying.
//
// Errors: structural errors from matrix.MatVec / matrix.ValidateColumn, and
// ErrVerifyFailed naming the first row that differs.
// Complexity: O(r·c).
func Verify(a *matrix.Dense, x, b []*big.Rat) error {
	got, err := matrix.MatVec(a, x)
	if err != nil {
		return fmt.Errorf("Verify: %w", err)
	}
	if err = matrix.ValidateColumn(b, a.Rows()); err != nil {
		return fmt.Errorf("Verify: %w", err)
	}
	for i := range got {
		if got[i].Cmp(b[i]) != 0 {
			return fmt.Errorf("Verify: row %d: got %s, want %s: %w",
				i, got[i].RatString(), b[i].RatString(), ErrVerifyFailed)
		}
	}

	return nil
}
