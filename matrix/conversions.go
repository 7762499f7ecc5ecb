// SPDX-License-Identifier: MIT
// Package matrix: converters from plain Go numbers and text into exact
// rationals, and into Dense matrices / columns built from them.
package matrix

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Int returns n as a rational.
func Int(n int64) *big.Rat { return new(big.Rat).SetInt64(n) }

// Frac returns p/q in lowest terms. A zero denominator yields ErrBadNumber.
func Frac(p, q int64) (*big.Rat, error) {
	if q == 0 {
		return nil, fmt.Errorf("Frac(%d,%d): %w", p, q, ErrBadNumber)
	}

	return big.NewRat(p, q), nil
}

// Float returns the exact binary value of f. 4.5 becomes 9/2; 0.1 becomes
// 3602879701896397/36028797018963968. Use Parse("0.1") for decimal intent.
// NaN and ±Inf yield ErrBadNumber.
func Float(f float64) (*big.Rat, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("Float(%g): %w", f, ErrBadNumber)
	}

	return new(big.Rat).SetFloat64(f), nil
}

// Parse reads an integer ("-3"), a decimal ("4.5", "1e-3") or a fraction
// ("9/2", "-1/3") into an exact rational. Surrounding spaces are ignored.
func Parse(s string) (*big.Rat, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, fmt.Errorf("Parse(%q): %w", s, ErrBadNumber)
	}
	r, ok := new(big.Rat).SetString(trimmed)
	if !ok {
		return nil, fmt.Errorf("Parse(%q): %w", s, ErrBadNumber)
	}

	return r, nil
}

// Ints builds a Dense from a table of integers.
func Ints(rows [][]int64) (*Dense, error) {
	conv := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		conv[i] = IntColumn(row...)
	}
	m, err := FromRows(conv)
	if err != nil {
		return nil, fmt.Errorf("Ints: %w", err)
	}

	return m, nil
}

// IntColumn converts integers into a column of rationals.
func IntColumn(vals ...int64) []*big.Rat {
	out := make([]*big.Rat, len(vals))
	for i, v := range vals {
		out[i] = Int(v)
	}

	return out
}

// ParseRows builds a Dense from a table of Parse-compatible strings.
func ParseRows(rows [][]string) (*Dense, error) {
	conv := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		col, err := ParseColumn(row)
		if err != nil {
			return nil, fmt.Errorf("ParseRows: row %d: %w", i, err)
		}
		conv[i] = col
	}
	m, err := FromRows(conv)
	if err != nil {
		return nil, fmt.Errorf("ParseRows: %w", err)
	}

	return m, nil
}

// ParseColumn converts Parse-compatible strings into a column of rationals.
func ParseColumn(vals []string) ([]*big.Rat, error) {
	out := make([]*big.Rat, len(vals))
	for i, s := range vals {
		r, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("ParseColumn: entry %d: %w", i, err)
		}
		out[i] = r
	}

	return out, nil
}

// CloneColumn deep-copies a column. Nil entries stay nil.
func CloneColumn(col []*big.Rat) []*big.Rat {
	if col == nil {
		return nil
	}
	out := make([]*big.Rat, len(col))
	for i, v := range col {
		if v != nil {
			out[i] = new(big.Rat).Set(v)
		}
	}

	return out
}

// ColumnsEqual reports whether a and b have equal length and entries.
func ColumnsEqual(a, b []*big.Rat) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] == nil || b[i] == nil {
			if a[i] != b[i] {
				return false
			}
			continue
		}
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}

	return true
}
