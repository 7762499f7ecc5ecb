// SPDX-License-Identifier: MIT
// Package render prints solver results as styled text or JSON.
package render

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/ratsolve/gauss"
	"github.com/muesli/termenv"
)

// Status values shared by the text and JSON forms.
const (
	StatusUnique       = "unique"
	StatusParametric   = "parametric"
	StatusInconsistent = "inconsistent"
)

// Result is what a solve produced for one named system.
type Result struct {
	Name string
	// Report is nil when the system has no solution.
	Report *gauss.Report
	// Values is the evaluated vector, when one was computed.
	Values []*big.Rat
}

// Status classifies r.
func (r Result) Status() string {
	switch {
	case r.Report == nil:
		return StatusInconsistent
	case r.Report.Solution.IsUnique():
		return StatusUnique
	default:
		return StatusParametric
	}
}

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorOK      = lipgloss.Color("#10B981")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

type styles struct {
	title  lipgloss.Style
	status lipgloss.Style
	errorS lipgloss.Style
	column lipgloss.Style
	fixed  lipgloss.Style
	param  lipgloss.Style
	free   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(colorPrimary),
		status: r.NewStyle().Foreground(colorOK),
		errorS: r.NewStyle().Bold(true).Foreground(colorError),
		column: r.NewStyle().Foreground(colorMuted),
		fixed:  r.NewStyle().Foreground(colorOK),
		param:  r.NewStyle().Foreground(colorAccent),
		free:   r.NewStyle().Foreground(colorMuted).Italic(true),
	}
}

// Printer writes text results to one writer.
type Printer struct {
	w      io.Writer
	styles styles
}

// NewPrinter returns a Printer for w. With color false no escape sequences
// are written; with color true they are written only when w is a terminal
// that supports them.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{w: w, styles: newStyles(r)}
}

// Text prints a header line followed by one line per column, e.g.
//
//	coupled: unique solution (rank 3)
//	  x0 = 0
//	  x1 = 2
func (p *Printer) Text(res Result) error {
	var sb strings.Builder
	name := res.Name
	if name == "" {
		name = "system"
	}
	sb.WriteString(p.styles.title.Render(name))
	sb.WriteString(": ")

	if res.Report == nil {
		sb.WriteString(p.styles.errorS.Render("no solution (inconsistent system)"))
		sb.WriteByte('\n')
		_, err := io.WriteString(p.w, sb.String())
		return err
	}

	sol := res.Report.Solution
	switch free := len(sol.FreeColumns()); {
	case free == 0:
		sb.WriteString(p.styles.status.Render("unique solution"))
	case free == 1:
		sb.WriteString(p.styles.status.Render("parametric family, 1 free column"))
	default:
		sb.WriteString(p.styles.status.Render(fmt.Sprintf("parametric family, %d free columns", free)))
	}
	fmt.Fprintf(&sb, " (rank %d)\n", res.Report.Rank)

	for col, e := range sol {
		sb.WriteString("  ")
		sb.WriteString(p.styles.column.Render(fmt.Sprintf("x%d", col)))
		switch e.Kind {
		case gauss.Fixed:
			sb.WriteString(" = ")
			sb.WriteString(p.styles.fixed.Render(e.Expression()))
		case gauss.Parametric:
			sb.WriteString(" = ")
			sb.WriteString(p.styles.param.Render(e.Expression()))
		default:
			sb.WriteByte(' ')
			sb.WriteString(p.styles.free.Render("free"))
		}
		sb.WriteByte('\n')
	}

	if res.Values != nil {
		sb.WriteString("  x = (")
		sb.WriteString(joinRats(res.Values))
		sb.WriteString(")\n")
	}

	_, err := io.WriteString(p.w, sb.String())
	return err
}

func joinRats(vals []*big.Rat) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = v.RatString()
	}

	return strings.Join(parts, ", ")
}
