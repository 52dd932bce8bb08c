// Package format exports the lexical view of a quill source file, its tokens and
// the diagnostics found while scanning them, into external formats.
//
// The [Exporter] interface does this in a format-agnostic way, JSON, YAML and TOML
// exporters are built in and looked up by name with [Lookup].
package format

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"fortio.org/safecast"
	"go.followtheprocess.codes/quill/internal/syntax/diag"
	"go.followtheprocess.codes/quill/internal/syntax/text"
	"go.followtheprocess.codes/quill/internal/syntax/token"
)

// Exporter is the interface defining a mechanism for exporting a [Document]
// into an external format.
type Exporter interface {
	// Export exports the [Document] into an external format, written to w.
	Export(w io.Writer, doc Document) error
}

// exporters maps the names accepted by [Lookup] to their exporter.
var exporters = map[string]Exporter{
	"json": JSONExporter{},
	"toml": TOMLExporter{},
	"yaml": YAMLExporter{},
}

// Names returns the names of the built in exporters, sorted.
func Names() []string {
	names := make([]string, 0, len(exporters))
	for name := range exporters {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Lookup returns the built in [Exporter] called name.
func Lookup(name string) (Exporter, error) {
	exporter, ok := exporters[name]
	if !ok {
		return nil, fmt.Errorf("unknown format %q, allowed values are %s", name, strings.Join(Names(), ", "))
	}

	return exporter, nil
}

// Document is the exported view of a single source file.
type Document struct {
	File        string       `json:"file"        toml:"file"        yaml:"file"`
	Tokens      []Token      `json:"tokens"      toml:"tokens"      yaml:"tokens"`
	Diagnostics []Diagnostic `json:"diagnostics" toml:"diagnostics" yaml:"diagnostics"`
}

// Token is the exported form of a [token.Token].
type Token struct {
	Kind   string `json:"kind"   toml:"kind"   yaml:"kind"`   // The kind of token e.g. "IntLiteral"
	Lexeme string `json:"lexeme" toml:"lexeme" yaml:"lexeme"` // Raw source text of the token
	Start  int    `json:"start"  toml:"start"  yaml:"start"`  // Byte offset of the start of the token
	End    int    `json:"end"    toml:"end"    yaml:"end"`    // Byte offset of the end of the token
	Line   uint32 `json:"line"   toml:"line"   yaml:"line"`   // 1 indexed line the token starts on
	Column uint32 `json:"column" toml:"column" yaml:"column"` // 1 indexed column the token starts at
}

// Diagnostic is the exported form of a [diag.Diagnostic].
type Diagnostic struct {
	Severity string `json:"severity" toml:"severity" yaml:"severity"` // "error" or "warning"
	Message  string `json:"message"  toml:"message"  yaml:"message"`  // The diagnostic message
	Start    int    `json:"start"    toml:"start"    yaml:"start"`    // Byte offset of the start of the span
	End      int    `json:"end"      toml:"end"      yaml:"end"`      // Byte offset of the end of the span
	Line     uint32 `json:"line"     toml:"line"     yaml:"line"`     // 1 indexed line the span starts on
	Column   uint32 `json:"column"   toml:"column"   yaml:"column"`   // 1 indexed column the span starts at
}

// NewDocument builds the [Document] for the file called name, src is used to
// resolve offsets to lines and columns.
func NewDocument(name string, src text.Text, tokens []token.Token, diagnostics []diag.Diagnostic) (Document, error) {
	doc := Document{
		File:        name,
		Tokens:      make([]Token, 0, len(tokens)),
		Diagnostics: make([]Diagnostic, 0, len(diagnostics)),
	}

	for _, tok := range tokens {
		line, column, err := lineColumn(name, src, tok.Span.Start)
		if err != nil {
			return Document{}, err
		}

		doc.Tokens = append(doc.Tokens, Token{
			Kind:   tok.Kind.String(),
			Lexeme: tok.Lexeme,
			Start:  tok.Span.Start,
			End:    tok.Span.End,
			Line:   line,
			Column: column,
		})
	}

	for _, d := range diagnostics {
		line, column, err := lineColumn(name, src, d.Span.Start)
		if err != nil {
			return Document{}, err
		}

		doc.Diagnostics = append(doc.Diagnostics, Diagnostic{
			Severity: d.Severity.String(),
			Message:  d.Message,
			Start:    d.Span.Start,
			End:      d.Span.End,
			Line:     line,
			Column:   column,
		})
	}

	return doc, nil
}

// lineColumn resolves offset to a 1 indexed line and column.
func lineColumn(name string, src text.Text, offset int) (line, column uint32, err error) {
	index := src.LineIndex(offset)

	line, err = safecast.Conv[uint32](index + 1)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: line number out of range at offset %d: %w", name, offset, err)
	}

	column, err = safecast.Conv[uint32](offset - src.LineStart(index) + 1)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: column out of range at offset %d: %w", name, offset, err)
	}

	return line, column, nil
}
