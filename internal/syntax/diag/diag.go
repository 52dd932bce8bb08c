// Package diag implements the diagnostic bag, the append only log of problems
// found in a piece of source text.
//
// A single [Bag] is created per parse and passed down to every stage that can
// detect a problem (the scanner, then the parser) so they can all report into one
// ordered log without knowing about each other. Stages only ever append; the
// bag is read once both have finished, to decide whether the resulting tree can
// be trusted and to drive rendering.
//
// A Bag is not safe for concurrent use, each parse should have its own.
package diag

import (
	"fmt"
	"slices"

	"go.followtheprocess.codes/quill/internal/syntax"
	"go.followtheprocess.codes/quill/internal/syntax/token"
)

// Severity is the severity of a [Diagnostic].
type Severity int

//go:generate stringer -type Severity -linecomment
const (
	SeverityError   Severity = iota // error
	SeverityWarning                 // warning
)

// MarshalText implements [encoding.TextMarshaler] for [Severity].
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Diagnostic is a single problem found in the source, it is never
// modified after it has been reported.
type Diagnostic struct {
	Message  string      `json:"message"  toml:"message"  yaml:"message"`  // A descriptive message explaining the problem
	Span     syntax.Span `json:"span"     toml:"span"     yaml:"span"`     // The span of source the diagnostic points to
	Severity Severity    `json:"severity" toml:"severity" yaml:"severity"` // Error or warning
}

// String implements [fmt.Stringer] for a [Diagnostic].
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s: %s", d.Span, d.Severity, d.Message)
}

// Bag is the shared collection of diagnostics for a single parse.
//
// The zero value is an empty bag ready to use.
type Bag struct {
	items []Diagnostic
}

// NewBag returns a new, empty [Bag].
func NewBag() *Bag {
	return &Bag{}
}

// Report appends a diagnostic to the bag.
func (b *Bag) Report(message string, span syntax.Span, severity Severity) {
	b.items = append(b.items, Diagnostic{
		Message:  message,
		Span:     span,
		Severity: severity,
	})
}

// Error reports an error with a formatted message at span.
func (b *Bag) Error(span syntax.Span, format string, a ...any) {
	b.Report(fmt.Sprintf(format, a...), span, SeverityError)
}

// Warning reports a warning with a formatted message at span.
func (b *Bag) Warning(span syntax.Span, format string, a ...any) {
	b.Report(fmt.Sprintf(format, a...), span, SeverityWarning)
}

// UnexpectedToken reports that a token of kind expected was required but actual
// was found instead. The diagnostic points at the actual token.
func (b *Bag) UnexpectedToken(expected token.Kind, actual token.Token) {
	b.Error(actual.Span, "expected <%s>, found <%s>", expected, actual.Kind)
}

// ExpectedExpression reports that an expression was required but actual was found
// instead. The diagnostic points at the actual token.
func (b *Bag) ExpectedExpression(actual token.Token) {
	b.Error(actual.Span, "expected expression, found <%s>", actual.Kind)
}

// UnknownToken reports a region of source text the scanner could not recognise.
func (b *Bag) UnknownToken(span syntax.Span) {
	b.Error(span, "unknown token <%s>", span.Literal)
}

// Len returns the number of diagnostics in the bag.
func (b *Bag) Len() int {
	return len(b.items)
}

// IsEmpty reports whether nothing has been reported.
func (b *Bag) IsEmpty() bool {
	return len(b.items) == 0
}

// HasErrors reports whether at least one diagnostic in the bag is an error.
func (b *Bag) HasErrors() bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool {
		return d.Severity == SeverityError
	})
}

// Items returns the diagnostics in the order they were reported.
//
// The returned slice is a copy, so callers can't mutate the contents of the bag.
func (b *Bag) Items() []Diagnostic {
	return slices.Clone(b.items)
}

// Sorted returns the diagnostics ordered by the position of their span in the
// source. Diagnostics at the same position keep the order they were reported in.
//
// Reporting order is only roughly positional (parser recovery inside nested
// expressions can report a later span first), callers that need a strict order
// should use Sorted rather than [Bag.Items].
func (b *Bag) Sorted() []Diagnostic {
	sorted := slices.Clone(b.items)
	slices.SortStableFunc(sorted, func(x, y Diagnostic) int {
		return syntax.CompareSpan(x.Span, y.Span)
	})

	return sorted
}
