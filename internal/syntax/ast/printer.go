package ast

import (
	"fmt"
	"io"
	"strings"
)

// levelIndent is the number of spaces each level of the tree is indented by.
const levelIndent = 2

// Printer is a [Visitor] that writes an indented, human readable outline
// of a tree, one node per line:
//
//	Statement:
//	  Expression:
//	    Binary Expression:
//	      Operator: Plus
//	      Expression:
//	        Number: 1
//	      Expression:
//	        Number: 2
type Printer struct {
	Base

	w      io.Writer // Where the outline is written
	err    error     // First error encountered writing to w
	indent int       // Current indentation in spaces
}

// NewPrinter returns a [Printer] that writes to w.
func NewPrinter(w io.Writer) *Printer {
	p := &Printer{w: w}
	p.Base = Base{Visitor: p}

	return p
}

// Print writes the outline of every statement to w, returning the first
// error from writing, if any.
func (p *Printer) Print(statements ...Statement) error {
	Walk(p, statements...)

	return p.err
}

// VisitStatement prints a statement heading and its contents one level in.
func (p *Printer) VisitStatement(stmt Statement) {
	p.line("Statement:")
	p.indent += levelIndent
	DispatchStatement(p, stmt)
	p.indent -= levelIndent
}

// VisitAssign prints the name being assigned and its initializer.
func (p *Printer) VisitAssign(stmt AssignStatement) {
	p.line("Assign Statement:")
	p.indent += levelIndent
	p.line("Identifier: " + stmt.Ident.Lexeme)
	p.VisitExpression(stmt.Initializer)
	p.indent -= levelIndent
}

// VisitExpression prints an expression heading and its contents one level in.
func (p *Printer) VisitExpression(expr Expression) {
	p.line("Expression:")
	p.indent += levelIndent
	DispatchExpression(p, expr)
	p.indent -= levelIndent
}

// VisitNumber prints the value of a number.
func (p *Printer) VisitNumber(expr Number) {
	p.line(fmt.Sprintf("Number: %d", expr.Value))
}

// VisitBinary prints the operator then both operands.
func (p *Printer) VisitBinary(expr Binary) {
	p.line("Binary Expression:")
	p.indent += levelIndent
	p.line("Operator: " + expr.Op.Kind.String())
	p.VisitExpression(expr.Left)
	p.VisitExpression(expr.Right)
	p.indent -= levelIndent
}

// VisitParenthesized prints the wrapped expression.
func (p *Printer) VisitParenthesized(expr Parenthesized) {
	p.line("Parenthesized Expression:")
	p.indent += levelIndent
	p.VisitExpression(expr.Inner)
	p.indent -= levelIndent
}

// VisitVariable prints the name of the variable.
func (p *Printer) VisitVariable(expr Variable) {
	p.line("Variable: " + expr.Ident.Lexeme)
}

// VisitError prints the text the parser couldn't make sense of.
func (p *Printer) VisitError(expr Error) {
	p.line(fmt.Sprintf("Error: %q", expr.Span().Literal))
}

// line writes text at the current indentation, followed by a newline.
func (p *Printer) line(text string) {
	if p.err != nil {
		return
	}

	_, p.err = fmt.Fprintf(p.w, "%s%s\n", strings.Repeat(" ", p.indent), text)
}
