package resolver

import (
	"go.followtheprocess.codes/quill/internal/syntax"
	"go.followtheprocess.codes/quill/internal/syntax/token"
)

// environment records where each name in a file was first assigned.
//
// quill has no blocks so there is a single, file level scope.
type environment struct {
	spans map[string]syntax.Span // Name to the span of its first assignment
	names []string               // Names in the order they were first assigned
}

// newEnvironment returns a new, empty [environment].
func newEnvironment() *environment {
	return &environment{
		spans: make(map[string]syntax.Span),
	}
}

// define records ident as assigned.
//
// If the name was already assigned, the environment is left untouched and the
// span of the first assignment is returned along with false.
func (e *environment) define(ident token.Token) (syntax.Span, bool) {
	if first, exists := e.spans[ident.Lexeme]; exists {
		return first, false
	}

	e.spans[ident.Lexeme] = ident.Span
	e.names = append(e.names, ident.Lexeme)

	return ident.Span, true
}

// get reports whether name has been assigned.
func (e *environment) get(name string) bool {
	_, ok := e.spans[name]
	return ok
}
