package ast

// Visitor is implemented by anything that wants to walk a syntax tree.
//
// There is one method per node type plus the two generic entry points
// VisitStatement and VisitExpression. A visitor normally embeds [Base], which
// provides the default behaviour for every method (dispatch to the right
// variant and recurse into children), and overrides only the ones it cares
// about.
//
// Visitors must not modify the tree.
type Visitor interface {
	// VisitStatement is called for every statement, the default dispatches
	// to the method for the statement's concrete type.
	VisitStatement(stmt Statement)

	// VisitExpressionStatement is called for an [ExpressionStatement].
	VisitExpressionStatement(stmt ExpressionStatement)

	// VisitAssign is called for an [AssignStatement].
	VisitAssign(stmt AssignStatement)

	// VisitExpression is called for every expression, the default dispatches
	// to the method for the expression's concrete type.
	VisitExpression(expr Expression)

	// VisitNumber is called for a [Number].
	VisitNumber(expr Number)

	// VisitBinary is called for a [Binary] expression.
	VisitBinary(expr Binary)

	// VisitParenthesized is called for a [Parenthesized] expression.
	VisitParenthesized(expr Parenthesized)

	// VisitVariable is called for a [Variable].
	VisitVariable(expr Variable)

	// VisitError is called for an [Error] node.
	VisitError(expr Error)
}

// Walk visits each of the statements in order.
func Walk(v Visitor, statements ...Statement) {
	for _, stmt := range statements {
		v.VisitStatement(stmt)
	}
}

// DispatchStatement calls the method on v matching the concrete type of stmt.
func DispatchStatement(v Visitor, stmt Statement) {
	switch stmt := stmt.(type) {
	case ExpressionStatement:
		v.VisitExpressionStatement(stmt)
	case AssignStatement:
		v.VisitAssign(stmt)
	}
}

// DispatchExpression calls the method on v matching the concrete type of expr.
func DispatchExpression(v Visitor, expr Expression) {
	switch expr := expr.(type) {
	case Number:
		v.VisitNumber(expr)
	case Binary:
		v.VisitBinary(expr)
	case Parenthesized:
		v.VisitParenthesized(expr)
	case Variable:
		v.VisitVariable(expr)
	case Error:
		v.VisitError(expr)
	}
}

// Base provides the default implementation of every [Visitor] method: statements
// and expressions are dispatched to their variant and each variant recurses into
// its children left to right.
//
// Embed it and set Visitor to the embedding type so that the recursion calls back
// into any overridden methods:
//
//	type counter struct {
//		ast.Base
//		numbers int
//	}
//
//	func (c *counter) VisitNumber(ast.Number) { c.numbers++ }
//
//	c := &counter{}
//	c.Base = ast.Base{Visitor: c}
//	ast.Walk(c, statements...)
//
// A Base with no Visitor set walks the tree and does nothing.
type Base struct {
	// Visitor is the outer visitor recursion is routed through.
	Visitor Visitor
}

// VisitStatement dispatches stmt to the method for its concrete type.
func (b Base) VisitStatement(stmt Statement) {
	DispatchStatement(b.self(), stmt)
}

// VisitExpressionStatement visits the statement's expression.
func (b Base) VisitExpressionStatement(stmt ExpressionStatement) {
	b.self().VisitExpression(stmt.Expr)
}

// VisitAssign visits the initializer.
func (b Base) VisitAssign(stmt AssignStatement) {
	b.self().VisitExpression(stmt.Initializer)
}

// VisitExpression dispatches expr to the method for its concrete type.
func (b Base) VisitExpression(expr Expression) {
	DispatchExpression(b.self(), expr)
}

// VisitNumber is a leaf, it does nothing.
func (b Base) VisitNumber(Number) {}

// VisitBinary visits the left then the right operand.
func (b Base) VisitBinary(expr Binary) {
	b.self().VisitExpression(expr.Left)
	b.self().VisitExpression(expr.Right)
}

// VisitParenthesized visits the inner expression.
func (b Base) VisitParenthesized(expr Parenthesized) {
	b.self().VisitExpression(expr.Inner)
}

// VisitVariable is a leaf, it does nothing.
func (b Base) VisitVariable(Variable) {}

// VisitError is a leaf, it does nothing.
func (b Base) VisitError(Error) {}

// self returns the visitor to route recursion through.
func (b Base) self() Visitor {
	if b.Visitor == nil {
		return b
	}

	return b.Visitor
}
