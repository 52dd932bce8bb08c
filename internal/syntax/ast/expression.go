package ast

import (
	"go.followtheprocess.codes/quill/internal/syntax"
	"go.followtheprocess.codes/quill/internal/syntax/token"
)

// Expression is an expression node.
type Expression interface {
	Node
	expressionNode() // Prevents accidental misuse as another node type
}

// Number is an integer literal.
type Number struct {
	// The [token.IntLiteral] token.
	Token token.Token

	// Value is the value of the literal.
	Value int64
}

// Start returns the [token.IntLiteral].
func (n Number) Start() token.Token {
	return n.Token
}

// End also returns the [token.IntLiteral].
func (n Number) End() token.Token {
	return n.Token
}

// Kind returns [KindNumber].
func (n Number) Kind() Kind {
	return KindNumber
}

// expressionNode marks a [Number] as an [ast.Expression].
func (n Number) expressionNode() {}

// OperatorKind is the kind of a binary operator.
type OperatorKind int

//go:generate stringer -type OperatorKind -linecomment
const (
	Plus     OperatorKind = iota // Plus
	Minus                        // Minus
	Multiply                     // Multiply
	Divide                       // Divide
	Mod                          // Mod
)

// BinaryOperator is the operator in a [Binary] expression.
type BinaryOperator struct {
	// Token is the operator token the operator was parsed from.
	Token token.Token

	// Kind is the kind of operator.
	Kind OperatorKind
}

// Operator reports whether tok is a binary operator, returning the operator
// and true if it is.
func Operator(tok token.Token) (BinaryOperator, bool) {
	var kind OperatorKind

	switch tok.Kind {
	case token.Plus:
		kind = Plus
	case token.Minus:
		kind = Minus
	case token.Star:
		kind = Multiply
	case token.Slash:
		kind = Divide
	case token.Percent:
		kind = Mod
	default:
		return BinaryOperator{}, false
	}

	return BinaryOperator{Kind: kind, Token: tok}, true
}

// Precedence returns the binding strength of the operator, higher binds tighter.
func (b BinaryOperator) Precedence() int {
	switch b.Kind {
	case Multiply, Divide, Mod:
		return 4
	default:
		return 3
	}
}

// Binary is a binary expression e.g. "1 + 2".
type Binary struct {
	// Left is the left hand operand.
	Left Expression

	// Right is the right hand operand.
	Right Expression

	// Op is the operator.
	Op BinaryOperator
}

// Start returns the first token of the left operand.
func (b Binary) Start() token.Token {
	return b.Left.Start()
}

// End returns the last token of the right operand.
func (b Binary) End() token.Token {
	return b.Right.End()
}

// Kind returns [KindBinary].
func (b Binary) Kind() Kind {
	return KindBinary
}

// expressionNode marks a [Binary] as an [ast.Expression].
func (b Binary) expressionNode() {}

// Parenthesized is an expression wrapped in parentheses.
type Parenthesized struct {
	// Inner is the wrapped expression.
	Inner Expression

	// Open is the opening [token.LeftParen].
	Open token.Token

	// Close is the token closing the expression, normally a [token.RightParen].
	Close token.Token
}

// Start returns the opening paren.
func (p Parenthesized) Start() token.Token {
	return p.Open
}

// End returns the closing paren.
func (p Parenthesized) End() token.Token {
	return p.Close
}

// Kind returns [KindParenthesized].
func (p Parenthesized) Kind() Kind {
	return KindParenthesized
}

// expressionNode marks a [Parenthesized] as an [ast.Expression].
func (p Parenthesized) expressionNode() {}

// Variable is a reference to a named value.
type Variable struct {
	// Ident is the [token.Ident] naming the variable.
	Ident token.Token
}

// Start returns the identifier.
func (v Variable) Start() token.Token {
	return v.Ident
}

// End also returns the identifier.
func (v Variable) End() token.Token {
	return v.Ident
}

// Kind returns [KindVariable].
func (v Variable) Kind() Kind {
	return KindVariable
}

// expressionNode marks a [Variable] as an [ast.Expression].
func (v Variable) expressionNode() {}

// Error stands in for an expression that could not be parsed. There is
// always a diagnostic with the same span as the Error node.
type Error struct {
	// Token is the token found where an expression was required.
	Token token.Token
}

// Start returns the offending token.
func (e Error) Start() token.Token {
	return e.Token
}

// End also returns the offending token.
func (e Error) End() token.Token {
	return e.Token
}

// Kind returns [KindError].
func (e Error) Kind() Kind {
	return KindError
}

// Span returns the span of the offending token.
func (e Error) Span() syntax.Span {
	return e.Token.Span
}

// expressionNode marks an [Error] as an [ast.Expression].
func (e Error) expressionNode() {}
