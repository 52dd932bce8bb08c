// Package syntax holds the source addressing types shared by every stage of the
// quill front end: the byte range [Span] that tokens, tree nodes and diagnostics
// point at, and the human facing [Position] derived from it when a diagnostic
// is reported against a named file.
//
// The tokeniser, parser, diagnostics and renderer live in the sub packages.
package syntax

import (
	"cmp"
	"fmt"
)

// Span is a half open byte range [Start, End) into a piece of source text
// along with the text it covered at the time it was created.
//
// The Literal is captured rather than recomputed, so a span can always be rendered
// even if the buffer it was taken from has since changed.
type Span struct {
	Literal string `json:"literal" toml:"literal" yaml:"literal"` // The source text covered by the span
	Start   int    `json:"start"   toml:"start"   yaml:"start"`   // Byte offset of the start of the span (inclusive)
	End     int    `json:"end"     toml:"end"     yaml:"end"`     // Byte offset of the end of the span (exclusive)
}

// NewSpan returns a [Span] covering src[start:end], capturing the literal text.
//
// Offsets are clamped to the bounds of src and end is never allowed to precede
// start, so NewSpan never panics regardless of its inputs.
func NewSpan(src string, start, end int) Span {
	start = max(0, min(start, len(src)))
	end = max(start, min(end, len(src)))

	return Span{
		Start:   start,
		End:     end,
		Literal: src[start:end],
	}
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty reports whether the span covers no text.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// String implements [fmt.Stringer] for a [Span].
func (s Span) String() string {
	return fmt.Sprintf("[%d:%d]", s.Start, s.End)
}

// CompareSpan is like [cmp.Compare] for a [Span], ordering by start offset
// and then by end offset.
func CompareSpan(x, y Span) int {
	if c := cmp.Compare(x.Start, y.Start); c != 0 {
		return c
	}

	return cmp.Compare(x.End, y.End)
}

// Position is an arbitrary source file position including file, line
// and column information. It can also express a range of source via StartCol
// and EndCol, this is useful for error reporting.
//
// Positions without filenames are considered invalid, in the case of stdin
// the string "stdin" may be used.
type Position struct {
	Name     string `json:"name"`     // Filename
	Offset   int    `json:"offset"`   // Byte offset of the position from the start of the file
	Line     int    `json:"line"`     // Line number (1 indexed)
	StartCol int    `json:"startCol"` // Start column (1 indexed)
	EndCol   int    `json:"endCol"`   // End column (1 indexed), EndCol == StartCol when pointing to a single character
}

// IsValid reports whether the [Position] describes a valid source position.
//
// The rules are:
//
//   - At least Name, Line and StartCol must be set (and non zero)
//   - EndCol cannot be 0, it's only allowed values are StartCol or any number greater than StartCol
func (p Position) IsValid() bool {
	if p.Name == "" || p.Line < 1 || p.StartCol < 1 || p.EndCol < 1 || p.EndCol < p.StartCol {
		return false
	}

	return true
}

// String returns a string representation of a [Position].
//
// It is formatted such that most text editors/terminals will be able to support clicking on it
// and navigating to the position.
//
// Depending on which fields are set, the string returned will be different:
//
//   - "file:line:start-end": valid position pointing to a range of text on the line
//   - "file:line:start": valid position pointing to a single character on the line (EndCol == StartCol)
//
// At least Name, Line and StartCol must be present for a valid position, and Line and StartCol must be > 0.
// If not, an error string will be returned.
func (p Position) String() string {
	if !p.IsValid() {
		return fmt.Sprintf(
			"BadPosition: {Name: %q, Line: %d, StartCol: %d, EndCol: %d}",
			p.Name,
			p.Line,
			p.StartCol,
			p.EndCol,
		)
	}

	if p.StartCol == p.EndCol {
		// No range, just a single position
		return fmt.Sprintf("%s:%d:%d", p.Name, p.Line, p.StartCol)
	}

	return fmt.Sprintf("%s:%d:%d-%d", p.Name, p.Line, p.StartCol, p.EndCol)
}

// ComparePosition is like [cmp.Compare] for a [syntax.Position].
//
// If x and y are equal ComparePosition returns 0.
//
// If x and y refer to the same file, it returns [cmp.Compare] of
// the two offsets.
//
// If the positions refer to different files, they are compared alphabetically.
func ComparePosition(x, y Position) int {
	if x == y {
		return 0
	}

	if x.Name == y.Name {
		return cmp.Compare(x.Offset, y.Offset)
	}

	return cmp.Compare(x.Name, y.Name)
}
