// SPDX-License-Identifier: MIT

// Package gauss: functional configuration for Solve and SolveReport.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option changes observable behavior and is tested.
//   - Safe by construction: constructors panic only on nonsensical values
//     (programmer error), never on user data.
package gauss

import (
	"io"
	"log/slog"
)

// DefaultInPlace controls whether Solve mutates the caller's matrix and
// column. false ⇒ the solver works on deep copies.
const DefaultInPlace = false

const panicNilLogger = "gauss: WithLogger: logger must be non-nil"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	inPlace bool         // DefaultInPlace
	logger  *slog.Logger // discard unless WithLogger
}

// WithInPlace lets Solve reduce the caller's matrix to row-echelon form and
// replay the row operations onto the caller's column, instead of copying.
func WithInPlace() Option {
	return func(o *Options) { o.inPlace = true }
}

// WithCopy restores the default copying behavior.
func WithCopy() Option {
	return func(o *Options) { o.inPlace = false }
}

// WithLogger routes debug traces (one record per action, one summary) to l.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// defaultOptions returns the zero-configuration state.
func defaultOptions() Options {
	return Options{
		inPlace: DefaultInPlace,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// gatherOptions applies user options over the defaults, in order.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
