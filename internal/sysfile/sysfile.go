// SPDX-License-Identifier: MIT
// Package sysfile reads linear systems from YAML or TOML documents:
//
//	name: coupled
//	matrix:
//	  - [1, 0, 0]
//	  - [0, 1, 1]
//	  - [0, 4.5, "9/2"]
//	column: [0, 2, 9]
//
// The format is chosen by file extension.
package sysfile

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/ratsolve/matrix"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownFormat is returned for a file extension other than
	// .yaml, .yml or .toml.
	ErrUnknownFormat = errors.New("sysfile: unknown document format")

	// ErrBadScalar is returned for a matrix or column entry that is not
	// an exact rational.
	ErrBadScalar = errors.New("sysfile: entry is not a rational number")

	// ErrBadDocument is returned for malformed documents and unknown keys.
	ErrBadDocument = errors.New("sysfile: malformed document")
)

// Format is a document encoding.
type Format int

const (
	// FormatYAML is YAML 1.2 via gopkg.in/yaml.v3.
	FormatYAML Format = iota + 1
	// FormatTOML is TOML 1.0 via github.com/BurntSushi/toml.
	FormatTOML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// FormatOf picks the format from the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}

	return 0, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

// Document is a named system A·x = b.
type Document struct {
	Name   string `yaml:"name" toml:"name"`
	Matrix []Row  `yaml:"matrix" toml:"matrix"`
	Column Row    `yaml:"column" toml:"column"`
}

// Load reads and decodes the document at path. An unnamed document takes
// the file's base name without extension.
func Load(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sysfile: %w", err)
	}
	doc, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return doc, nil
}

// Decode parses data in the given format. Unknown keys are rejected.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadDocument, err)
		}
	case FormatTOML:
		meta, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadDocument, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown key %q: %w", undecoded[0].String(), ErrBadDocument)
		}
	default:
		return nil, fmt.Errorf("format %d: %w", format, ErrUnknownFormat)
	}

	if err := doc.check(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// check reports the first entry that is not a number.
func (d *Document) check() error {
	for i, row := range d.Matrix {
		for j, s := range row {
			if !s.valid() {
				return fmt.Errorf("matrix[%d][%d] = %s: %w", i, j, s.bad, ErrBadScalar)
			}
		}
	}
	for i, s := range d.Column {
		if !s.valid() {
			return fmt.Errorf("column[%d] = %s: %w", i, s.bad, ErrBadScalar)
		}
	}

	return nil
}

// System converts the document into a matrix and a free-term column.
// Shape problems surface as the matrix package's structural errors.
func (d *Document) System() (*matrix.Dense, []*big.Rat, error) {
	rows := make([][]*big.Rat, len(d.Matrix))
	for i, row := range d.Matrix {
		rows[i] = rats(row)
	}
	a, err := matrix.FromRows(rows)
	if err != nil {
		return nil, nil, fmt.Errorf("sysfile: matrix: %w", err)
	}
	b := rats(d.Column)
	if err := matrix.ValidateColumn(b, a.Rows()); err != nil {
		return nil, nil, fmt.Errorf("sysfile: column: %w", err)
	}

	return a, b, nil
}

func rats(in []Scalar) []*big.Rat {
	out := make([]*big.Rat, len(in))
	for i, s := range in {
		out[i] = s.rat
	}

	return out
}
