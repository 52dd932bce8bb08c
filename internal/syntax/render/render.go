// Package render renders diagnostics against the source text they were
// reported in, drawing the offending line with a pointer under the span:
//
//	x := (1 + ;
//	          ^
//	          |
//	          +-- expected expression, found <Semicolon>
//
// Long lines are trimmed to a window either side of the span so a diagnostic
// in a minified or generated file stays readable.
package render

import (
	"fmt"
	"io"
	"strings"

	"go.followtheprocess.codes/hue"
	"go.followtheprocess.codes/quill/internal/syntax"
	"go.followtheprocess.codes/quill/internal/syntax/diag"
)

// DefaultMaxWidth is the default number of bytes of context shown either side
// of a span.
const DefaultMaxWidth = 80

const (
	highlight = hue.Red | hue.Bold    // The offending span
	errorText = hue.Red | hue.Bold    // "error" in a header
	warnText  = hue.Yellow | hue.Bold // "warning" in a header
)

// Source is the line index a [Renderer] uses to find the line a diagnostic
// points into.
//
// It is satisfied by text.Text.
type Source interface {
	// LineIndex returns the 0 indexed line containing offset.
	LineIndex(offset int) int

	// LineStart returns the byte offset the line starts at.
	LineStart(line int) int

	// Line returns the contents of the line, without its newline.
	Line(line int) string
}

// Option is a functional option for configuring a [Renderer].
type Option func(*Renderer)

// MaxWidth sets the maximum number of bytes of the line shown either side of
// the span, it also caps how far the pointer is indented.
//
// Values less than 1 are ignored.
func MaxWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.maxWidth = width
		}
	}
}

// Color sets whether the span (and header, if there is one) are highlighted
// with terminal colours.
func Color(enabled bool) Option {
	return func(r *Renderer) {
		r.color = enabled
	}
}

// Name sets the name of the file being rendered, when set every block is
// preceded by a "file:line:col: severity: message" header.
func Name(name string) Option {
	return func(r *Renderer) {
		r.name = name
	}
}

// Renderer renders diagnostics for a single piece of source text.
type Renderer struct {
	src      Source // Line index over the source the diagnostics belong to
	name     string // Optional file name, enables headers
	maxWidth int    // Bytes of context either side of the span
	color    bool   // Whether to highlight with colour
}

// New returns a [Renderer] over src, configured by options.
func New(src Source, options ...Option) Renderer {
	r := Renderer{
		src:      src,
		maxWidth: DefaultMaxWidth,
	}

	for _, option := range options {
		option(&r)
	}

	return r
}

// Render renders a single diagnostic as a block of text with no trailing newline.
//
// Every slice of the line is clamped to the line's bounds, so Render never panics
// no matter where the diagnostic points.
func (r Renderer) Render(d diag.Diagnostic) string {
	line := r.src.LineIndex(d.Span.Start)
	text := r.src.Line(line)
	column := max(0, d.Span.Start-r.src.LineStart(line))

	prefixEnd := min(column, len(text))
	prefixStart := max(0, prefixEnd-r.maxWidth)
	suffixStart := min(prefixEnd+d.Span.Len(), len(text))
	suffixEnd := min(suffixStart+r.maxWidth, len(text))

	prefix := text[prefixStart:prefixEnd]
	span := text[prefixEnd:suffixStart]
	suffix := text[suffixStart:suffixEnd]

	if r.color {
		span = highlight.Text(span)
	}

	indent := strings.Repeat(" ", min(r.maxWidth, column))

	s := &strings.Builder{}

	if r.name != "" {
		s.WriteString(r.header(d, line, column))
		s.WriteByte('\n')
	}

	s.WriteString(prefix)
	s.WriteString(span)
	s.WriteString(suffix)
	s.WriteByte('\n')

	s.WriteString(indent)
	s.WriteString(strings.Repeat("^", d.Span.Len()))
	s.WriteByte('\n')

	s.WriteString(indent)
	s.WriteString("|\n")

	s.WriteString(indent)
	s.WriteString("+-- ")
	s.WriteString(d.Message)

	return s.String()
}

// RenderAll renders every diagnostic to w in the order given, each block is
// followed by a newline.
func (r Renderer) RenderAll(w io.Writer, diagnostics []diag.Diagnostic) error {
	for _, d := range diagnostics {
		if _, err := fmt.Fprintln(w, r.Render(d)); err != nil {
			return fmt.Errorf("could not write diagnostic: %w", err)
		}
	}

	return nil
}

// header returns the "file:line:col: severity: message" line for d.
func (r Renderer) header(d diag.Diagnostic, line, column int) string {
	startCol := column + 1
	endCol := max(startCol, startCol+d.Span.Len()-1)

	pos := syntax.Position{
		Name:     r.name,
		Offset:   d.Span.Start,
		Line:     line + 1,
		StartCol: startCol,
		EndCol:   endCol,
	}

	severity := d.Severity.String()

	if r.color {
		switch d.Severity {
		case diag.SeverityWarning:
			severity = warnText.Text(severity)
		default:
			severity = errorText.Text(severity)
		}
	}

	return fmt.Sprintf("%s: %s: %s", pos, severity, d.Message)
}
