// Package ast defines the syntax tree for the quill grammar, along with the
// [Visitor] used to walk it.
//
// The tree is a closed set of node types: a [File] holds [Statement]s which are
// either an [ExpressionStatement] or an [AssignStatement], and expressions are one
// of [Number], [Binary], [Parenthesized], [Variable] or [Error]. Every node owns its
// children outright and nothing modifies a tree once the parser has built it.
package ast

import (
	"go.followtheprocess.codes/quill/internal/syntax/token"
)

// Node is the interface for ast nodes.
type Node interface {
	// Start returns the first token associated with the node.
	Start() token.Token

	// End returns the last token associated with the node.
	End() token.Token

	// Kind returns the kind of node this is.
	Kind() Kind
}

// File is an ast [Node] representing a single quill source file.
type File struct {
	// Name is the name of the file.
	Name string

	// Statements is the list of ast statements in the file.
	Statements []Statement
}

// Start returns the first token in a file.
//
// If the file is empty, [token.EOF] is returned.
func (f File) Start() token.Token {
	if len(f.Statements) == 0 {
		return token.Token{Kind: token.EOF}
	}

	return f.Statements[0].Start()
}

// End returns the final token in the file.
func (f File) End() token.Token {
	if len(f.Statements) == 0 {
		return token.Token{Kind: token.EOF}
	}

	return f.Statements[len(f.Statements)-1].End()
}

// Kind returns [KindFile].
func (f File) Kind() Kind {
	return KindFile
}
