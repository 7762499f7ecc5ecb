// SPDX-License-Identifier: MIT

package sysfile

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/ratsolve/matrix"
	"gopkg.in/yaml.v3"
)

// Scalar is one exact rational read from a document. Integers, decimals and
// strings in any matrix.Parse form are accepted. Decimals are taken from
// their textual form, so 0.1 reads as exactly 1/10.
//
// Unmarshalling never fails: an entry that is not a number is remembered
// and reported by Document.check with its position. The zero Scalar holds
// no value; a null inside a Row decodes to it and Document.System rejects
// it with matrix.ErrNotRational.
type Scalar struct {
	rat *big.Rat
	bad string // source text of a rejected entry
}

// NewScalar wraps a copy of r.
func NewScalar(r *big.Rat) Scalar {
	if r == nil {
		return Scalar{}
	}

	return Scalar{rat: new(big.Rat).Set(r)}
}

// Rat returns a copy of the value, or nil when there is none.
func (s Scalar) Rat() *big.Rat {
	if s.rat == nil {
		return nil
	}

	return new(big.Rat).Set(s.rat)
}

// String implements fmt.Stringer.
func (s Scalar) String() string {
	switch {
	case s.rat != nil:
		return s.rat.RatString()
	case s.bad != "":
		return s.bad
	}

	return "null"
}

// UnmarshalYAML implements yaml.Unmarshaler. Only int, float and string
// scalars are accepted; the node's source text is parsed, never a float64.
func (s *Scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		s.bad = fmt.Sprintf("<collection at line %d>", node.Line)
		return nil
	}
	switch node.ShortTag() {
	case "!!int", "!!float", "!!str":
		s.set(node.Value)
	default:
		s.bad = node.Value
	}

	return nil
}

// maxFloatDigits is the number of significant decimal digits a float64
// always round-trips.
const maxFloatDigits = 15

// UnmarshalTOML implements toml.Unmarshaler. The TOML decoder hands over
// int64, float64 or string values; floats are re-read from their shortest
// decimal form. A float whose shortest form needs more than maxFloatDigits
// significant digits may already have been rounded, so it is rejected and
// has to be written as a quoted string.
func (s *Scalar) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case int64:
		s.rat = new(big.Rat).SetInt64(v)
	case float64:
		text := strconv.FormatFloat(v, 'g', -1, 64)
		if significantDigits(v) > maxFloatDigits {
			s.bad = text + " (quote decimals longer than 15 digits)"
			return nil
		}
		s.set(text)
	case string:
		s.set(v)
	default:
		s.bad = fmt.Sprintf("%v", value)
	}

	return nil
}

func (s *Scalar) set(text string) {
	r, err := matrix.Parse(text)
	if err != nil {
		s.bad = strconv.Quote(text)
		return
	}
	s.rat = r
}

// significantDigits counts the digits of the shortest decimal form of v.
func significantDigits(v float64) int {
	mant, _, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")

	return len(strings.NewReplacer("-", "", ".", "").Replace(mant))
}

// valid reports whether s holds a number or is an explicit null.
func (s Scalar) valid() bool { return s.bad == "" }

// Row is one sequence of scalars. Unlike a plain []Scalar it keeps null
// entries in place, as zero Scalars, instead of dropping them.
type Row []Scalar

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Row) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: want a sequence: %w", node.Line, ErrBadDocument)
	}
	out := make(Row, len(node.Content))
	for i, n := range node.Content {
		if n.Kind == yaml.AliasNode && n.Alias != nil {
			n = n.Alias
		}
		if n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null" {
			continue
		}
		if err := out[i].UnmarshalYAML(n); err != nil {
			return err
		}
	}
	*r = out

	return nil
}
