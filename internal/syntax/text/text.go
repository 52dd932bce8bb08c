// Package text provides a line index over a piece of source text, mapping byte
// offsets to lines and lines back to their contents.
//
// It is the collaborator the diagnostics renderer uses to reconstruct the line
// and column context around a span.
package text

import (
	"slices"
	"strings"

	"go.followtheprocess.codes/quill/internal/syntax"
)

// Text is an immutable, line indexed piece of source text.
type Text struct {
	src    string // The raw source
	starts []int  // Byte offset of the start of every line, starts[0] is always 0
}

// New builds a [Text] from src, indexing the start offset of every line.
func New(src string) Text {
	starts := make([]int, 1, strings.Count(src, "\n")+1)

	for i := range len(src) {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}

	return Text{src: src, starts: starts}
}

// Source returns the raw source text.
func (t Text) Source() string {
	return t.src
}

// LineCount returns the number of lines in the text. An empty text
// still has a single (empty) line.
func (t Text) LineCount() int {
	return len(t.starts)
}

// LineIndex returns the 0 indexed line containing offset.
//
// Offsets before the start of the text resolve to the first line, offsets
// past the end resolve to the last.
func (t Text) LineIndex(offset int) int {
	// The index of the first line starting after offset, the line we want
	// is the one before it
	index, found := slices.BinarySearch(t.starts, offset)
	if found {
		return index
	}

	return max(0, index-1)
}

// LineStart returns the byte offset at which the given line starts.
//
// Out of range lines are clamped to the first or last line.
func (t Text) LineStart(line int) int {
	return t.starts[t.clamp(line)]
}

// Line returns the contents of the given line, without its trailing newline.
//
// Out of range lines are clamped to the first or last line.
func (t Text) Line(line int) string {
	line = t.clamp(line)
	start := t.starts[line]

	end := len(t.src)
	if line+1 < len(t.starts) {
		end = t.starts[line+1] - 1 // Drop the '\n'
	}

	return t.src[start:end]
}

// Position converts a span into a [syntax.Position] in the file called name.
//
// Spans covering more than one line are truncated to the end of their first line.
func (t Text) Position(name string, span syntax.Span) syntax.Position {
	line := t.LineIndex(span.Start)
	lineStart := t.starts[line]
	lineLength := len(t.Line(line))

	startCol := 1 + span.Start - lineStart
	endCol := 1 + min(max(span.End-1, span.Start), lineStart+lineLength) - lineStart

	return syntax.Position{
		Name:     name,
		Offset:   span.Start,
		Line:     line + 1,
		StartCol: startCol,
		EndCol:   max(startCol, endCol),
	}
}

// clamp brings line into the range of valid line indices.
func (t Text) clamp(line int) int {
	return max(0, min(line, len(t.starts)-1))
}
