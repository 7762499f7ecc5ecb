// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/katalvlaran/ratsolve/matrix"
)

// FreeColumns returns the indices of Undetermined entries in ascending order.
func (s Solution) FreeColumns() []int {
	free := make([]int, 0, len(s))
	for i, e := range s {
		if e.Kind == Undetermined {
			free = append(free, i)
		}
	}

	return free
}

// IsUnique reports whether every entry is Fixed.
func (s Solution) IsUnique() bool {
	for _, e := range s {
		if e.Kind != Fixed {
			return false
		}
	}

	return true
}

// Values returns the fixed values of a unique solution.
// Returns ErrUnboundParameter if any entry is not Fixed.
func (s Solution) Values() ([]*big.Rat, error) {
	return s.Evaluate(nil)
}

// Evaluate binds every free column to the value given in params and returns
// the concrete vector that results. Fixed entries are copied; parametric
// entries are computed from their coefficients.
//
// Errors:
//   - ErrUnboundParameter when a free column has no binding;
//   - ErrNotFree when params names a column that is not free;
//   - matrix.ErrNotRational when a bound value is nil.
//
// Complexity: O(c²).
func (s Solution) Evaluate(params map[int]*big.Rat) ([]*big.Rat, error) {
	keys := make([]int, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Ints(keys) // deterministic error reporting
	for _, k := range keys {
		if k < 0 || k >= len(s) || s[k].Kind != Undetermined {
			return nil, fmt.Errorf("Evaluate: column %d: %w", k, ErrNotFree)
		}
		if params[k] == nil {
			return nil, fmt.Errorf("Evaluate: column %d: %w", k, matrix.ErrNotRational)
		}
	}

	out := make([]*big.Rat, len(s))
	for i, e := range s {
		switch e.Kind {
		case Fixed:
			out[i] = new(big.Rat).Set(e.Value)
		case Undetermined:
			v, ok := params[i]
			if !ok {
				return nil, fmt.Errorf("Evaluate: column %d: %w", i, ErrUnboundParameter)
			}
			out[i] = new(big.Rat).Set(v)
		}
	}

	var term big.Rat
	for i, e := range s {
		if e.Kind != Parametric {
			continue
		}
		v := new(big.Rat).Set(e.Constant)
		for j, c := range e.Coefficients {
			if c.Sign() == 0 {
				continue
			}
			if out[j] == nil {
				return nil, fmt.Errorf("Evaluate: column %d depends on column %d: %w", i, j, ErrUnboundParameter)
			}
			v.Add(v, term.Mul(c, out[j]))
		}
		out[i] = v
	}

	return out, nil
}

// Describe renders the entry for column col, e.g. "x1 = -x2 + 2",
// "x2 free", "x0 = 0".
func (e Entry) Describe(col int) string {
	switch e.Kind {
	case Fixed:
		return fmt.Sprintf("x%d = %s", col, ratString(e.Value))
	case Parametric:
		return fmt.Sprintf("x%d = %s", col, e.Expression())
	default:
		return fmt.Sprintf("x%d free", col)
	}
}

// Expression renders the right-hand side of the entry: the value for Fixed,
// the affine expression for Parametric, "free" for Undetermined.
func (e Entry) Expression() string {
	switch e.Kind {
	case Fixed:
		return ratString(e.Value)
	case Undetermined:
		return "free"
	}

	var sb strings.Builder
	var abs big.Rat
	for j, c := range e.Coefficients {
		if c.Sign() == 0 {
			continue
		}
		abs.Abs(c)
		switch {
		case sb.Len() == 0 && c.Sign() < 0:
			sb.WriteString("-")
		case sb.Len() > 0 && c.Sign() < 0:
			sb.WriteString(" - ")
		case sb.Len() > 0:
			sb.WriteString(" + ")
		}
		if abs.Cmp(big.NewRat(1, 1)) != 0 {
			sb.WriteString(abs.RatString())
			sb.WriteString("·")
		}
		fmt.Fprintf(&sb, "x%d", j)
	}
	switch {
	case e.Constant == nil || e.Constant.Sign() == 0:
		if sb.Len() == 0 {
			sb.WriteString("0")
		}
	case sb.Len() == 0:
		sb.WriteString(e.Constant.RatString())
	case e.Constant.Sign() < 0:
		sb.WriteString(" - ")
		sb.WriteString(abs.Abs(e.Constant).RatString())
	default:
		sb.WriteString(" + ")
		sb.WriteString(e.Constant.RatString())
	}

	return sb.String()
}

// String implements fmt.Stringer: one Describe line per column.
func (s Solution) String() string {
	lines := make([]string, len(s))
	for i, e := range s {
		lines[i] = e.Describe(i)
	}

	return strings.Join(lines, "\n")
}
