// Package resolver implements name resolution for a parsed quill file.
//
// Nothing is ever bound to a value, the resolver only tracks which names a file
// assigns and where. Assigning the same name twice is reported as a warning and
// referring to a name before it is assigned is an error.
package resolver

import (
	"slices"

	"go.followtheprocess.codes/quill/internal/syntax/ast"
	"go.followtheprocess.codes/quill/internal/syntax/diag"
)

// Resolver resolves the names in a single file.
type Resolver struct {
	ast.Base

	bag *diag.Bag    // Diagnostics are reported here
	env *environment // Names assigned so far
}

// New returns a new [Resolver] reporting to bag.
func New(bag *diag.Bag) *Resolver {
	r := &Resolver{
		bag: bag,
		env: newEnvironment(),
	}
	r.Base = ast.Base{Visitor: r}

	return r
}

// Resolve resolves every statement in file, in order.
//
// It may be called more than once, names from earlier files remain assigned.
func (r *Resolver) Resolve(file ast.File) {
	ast.Walk(r, file.Statements...)
}

// Names returns the names assigned so far in the order they were first assigned.
func (r *Resolver) Names() []string {
	return slices.Clone(r.env.names)
}

// VisitAssign resolves the initializer, then assigns the name.
//
// The initializer goes first so "x := x;" refers to an x from before.
func (r *Resolver) VisitAssign(stmt ast.AssignStatement) {
	r.Base.VisitAssign(stmt)

	if first, ok := r.env.define(stmt.Ident); !ok {
		r.bag.Warning(stmt.Ident.Span, "%s is already assigned at %s", stmt.Ident.Lexeme, first)
	}
}

// VisitVariable reports names used before they are assigned.
func (r *Resolver) VisitVariable(expr ast.Variable) {
	if !r.env.get(expr.Ident.Lexeme) {
		r.bag.Error(expr.Ident.Span, "use of unassigned name %s", expr.Ident.Lexeme)
	}
}
