package ast

import "go.followtheprocess.codes/quill/internal/syntax/token"

// Statement is a statement node.
type Statement interface {
	Node
	statementNode() // Prevents accidental misuse as another node type
}

// ExpressionStatement is a bare expression used as a statement e.g. "1 + 2".
type ExpressionStatement struct {
	// Expr is the expression.
	Expr Expression
}

// Start returns the first token of the expression.
func (e ExpressionStatement) Start() token.Token {
	return e.Expr.Start()
}

// End returns the last token of the expression.
func (e ExpressionStatement) End() token.Token {
	return e.Expr.End()
}

// Kind returns [KindExpressionStatement].
func (e ExpressionStatement) Kind() Kind {
	return KindExpressionStatement
}

// statementNode marks an [ExpressionStatement] as an [ast.Statement].
func (e ExpressionStatement) statementNode() {}

// AssignStatement binds the value of an expression to a name e.g. "x := 5;".
type AssignStatement struct {
	// Initializer is the expression whose value is being assigned.
	Initializer Expression

	// Ident is the [token.Ident] being assigned to.
	Ident token.Token

	// Semicolon is the token terminating the statement. If the source was
	// missing the semicolon, this is whatever token was found in its place.
	Semicolon token.Token
}

// Start returns the identifier being assigned to.
func (a AssignStatement) Start() token.Token {
	return a.Ident
}

// End returns the terminating semicolon.
func (a AssignStatement) End() token.Token {
	return a.Semicolon
}

// Kind returns [KindAssignStatement].
func (a AssignStatement) Kind() Kind {
	return KindAssignStatement
}

// statementNode marks an [AssignStatement] as an [ast.Statement].
func (a AssignStatement) statementNode() {}
