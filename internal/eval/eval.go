// Package eval implements a tree walking evaluator for quill arithmetic.
//
// It is a reference consumer of the syntax tree: integer literals, the binary
// operators and parentheses are evaluated over int64 with Go's wrapping
// arithmetic, everything else is rejected with [ErrUnsupported]. Trees containing
// [ast.Error] nodes came from source with diagnostics and should never be handed
// to the evaluator in the first place.
package eval

import (
	"errors"
	"fmt"

	"go.followtheprocess.codes/quill/internal/syntax/ast"
)

var (
	// ErrDivisionByZero is returned when the right hand side of a division or
	// modulo evaluates to zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnsupported is returned for nodes the evaluator has no semantics for:
	// assignments, variables and error nodes.
	ErrUnsupported = errors.New("unsupported")
)

// Evaluator is an [ast.Visitor] that computes the value of expressions.
//
// An Evaluator holds the state of one evaluation at a time and is not safe for
// concurrent use.
type Evaluator struct {
	ast.Base

	err   error // The first error encountered, stops evaluation
	value int64 // Value of the most recently evaluated expression
}

// New returns a new [Evaluator].
func New() *Evaluator {
	e := &Evaluator{}
	e.Base = ast.Base{Visitor: e}

	return e
}

// Evaluate evaluates a single statement, returning the value of its expression.
func (e *Evaluator) Evaluate(stmt ast.Statement) (int64, error) {
	e.reset()
	e.VisitStatement(stmt)

	return e.result()
}

// EvaluateExpression evaluates a single expression.
func (e *Evaluator) EvaluateExpression(expr ast.Expression) (int64, error) {
	e.reset()
	e.VisitExpression(expr)

	return e.result()
}

// VisitStatement evaluates stmt unless evaluation has already failed.
func (e *Evaluator) VisitStatement(stmt ast.Statement) {
	if e.err != nil {
		return
	}

	e.Base.VisitStatement(stmt)
}

// VisitExpression evaluates expr unless evaluation has already failed.
func (e *Evaluator) VisitExpression(expr ast.Expression) {
	if e.err != nil {
		return
	}

	e.Base.VisitExpression(expr)
}

// VisitAssign rejects the assignment, there is nowhere to store variables.
func (e *Evaluator) VisitAssign(stmt ast.AssignStatement) {
	e.fail(fmt.Errorf("assignment to %q at %s: %w", stmt.Ident.Lexeme, stmt.Ident.Span, ErrUnsupported))
}

// VisitNumber sets the current value to the literal's value.
func (e *Evaluator) VisitNumber(expr ast.Number) {
	e.value = expr.Value
}

// VisitBinary evaluates both operands, left then right, and combines them.
func (e *Evaluator) VisitBinary(expr ast.Binary) {
	e.VisitExpression(expr.Left)
	left := e.value

	e.VisitExpression(expr.Right)
	right := e.value

	if e.err != nil {
		return
	}

	switch expr.Op.Kind {
	case ast.Plus:
		e.value = left + right
	case ast.Minus:
		e.value = left - right
	case ast.Multiply:
		e.value = left * right
	case ast.Divide, ast.Mod:
		if right == 0 {
			e.fail(fmt.Errorf("%d %s 0 at %s: %w", left, expr.Op.Token.Lexeme, expr.Op.Token.Span, ErrDivisionByZero))
			return
		}

		if expr.Op.Kind == ast.Divide {
			e.value = left / right
		} else {
			e.value = left % right
		}
	default:
		e.fail(fmt.Errorf("operator %s at %s: %w", expr.Op.Kind, expr.Op.Token.Span, ErrUnsupported))
	}
}

// VisitVariable rejects the variable, there are no values to look up.
func (e *Evaluator) VisitVariable(expr ast.Variable) {
	e.fail(fmt.Errorf("variable %q at %s: %w", expr.Ident.Lexeme, expr.Ident.Span, ErrUnsupported))
}

// VisitError rejects the error node.
func (e *Evaluator) VisitError(expr ast.Error) {
	e.fail(fmt.Errorf("syntax error at %s: %w", expr.Span(), ErrUnsupported))
}

// fail records err if it's the first.
func (e *Evaluator) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

// result returns the outcome of the evaluation just run.
func (e *Evaluator) result() (int64, error) {
	if e.err != nil {
		return 0, e.err
	}

	return e.value, nil
}

// reset clears the result of any previous evaluation.
func (e *Evaluator) reset() {
	e.err = nil
	e.value = 0
}
