package ast_test

import (
	"bytes"
	"errors"
	"testing"

	"go.followtheprocess.codes/quill/internal/syntax"
	"go.followtheprocess.codes/quill/internal/syntax/ast"
	"go.followtheprocess.codes/quill/internal/syntax/token"
	"go.followtheprocess.codes/test"
)

// src is the text the hand built trees below are taken from.
//
//	0         1         2
//	0123456789012345678901234
//	(1 + 2) * x @ y := 3;
const src = "(1 + 2) * x @ y := 3;"

func tok(kind token.Kind, start, end int) token.Token {
	span := syntax.NewSpan(src, start, end)
	return token.Token{Kind: kind, Span: span, Lexeme: span.Literal}
}

func number(value int64, start, end int) ast.Number {
	return ast.Number{Value: value, Token: tok(token.IntLiteral, start, end)}
}

func operator(kind token.Kind, start, end int) ast.BinaryOperator {
	op, ok := ast.Operator(tok(kind, start, end))
	if !ok {
		panic("not an operator: " + kind.String())
	}

	return op
}

// tree returns the statements for "(1 + 2) * x" and "y := 3;".
func tree() []ast.Statement {
	return []ast.Statement{
		ast.ExpressionStatement{
			Expr: ast.Binary{
				Left: ast.Parenthesized{
					Open: tok(token.LeftParen, 0, 1),
					Inner: ast.Binary{
						Left:  number(1, 1, 2),
						Op:    operator(token.Plus, 3, 4),
						Right: number(2, 5, 6),
					},
					Close: tok(token.RightParen, 6, 7),
				},
				Op:    operator(token.Star, 8, 9),
				Right: ast.Variable{Ident: tok(token.Ident, 10, 11)},
			},
		},
		ast.AssignStatement{
			Ident:       tok(token.Ident, 14, 15),
			Initializer: number(3, 19, 20),
			Semicolon:   tok(token.Semicolon, 20, 21),
		},
	}
}

func TestNode(t *testing.T) {
	statements := tree()

	tests := []struct {
		node  ast.Node    // Node under test
		name  string      // Name of the test case
		start token.Token // Expected start token
		end   token.Token // Expected end token
		kind  ast.Kind    // Expected node kind
	}{
		{
			name:  "empty file",
			node:  ast.File{},
			start: token.Token{Kind: token.EOF},
			end:   token.Token{Kind: token.EOF},
			kind:  ast.KindFile,
		},
		{
			name:  "file",
			node:  ast.File{Name: "test.ql", Statements: statements},
			start: tok(token.LeftParen, 0, 1),
			end:   tok(token.Semicolon, 20, 21),
			kind:  ast.KindFile,
		},
		{
			name:  "number",
			node:  number(1, 1, 2),
			start: tok(token.IntLiteral, 1, 2),
			end:   tok(token.IntLiteral, 1, 2),
			kind:  ast.KindNumber,
		},
		{
			name:  "expression statement",
			node:  statements[0],
			start: tok(token.LeftParen, 0, 1),
			end:   tok(token.Ident, 10, 11),
			kind:  ast.KindExpressionStatement,
		},
		{
			name:  "assign statement",
			node:  statements[1],
			start: tok(token.Ident, 14, 15),
			end:   tok(token.Semicolon, 20, 21),
			kind:  ast.KindAssignStatement,
		},
		{
			name:  "parenthesized",
			node:  statements[0].(ast.ExpressionStatement).Expr.(ast.Binary).Left,
			start: tok(token.LeftParen, 0, 1),
			end:   tok(token.RightParen, 6, 7),
			kind:  ast.KindParenthesized,
		},
		{
			name:  "binary",
			node:  statements[0].(ast.ExpressionStatement).Expr,
			start: tok(token.LeftParen, 0, 1),
			end:   tok(token.Ident, 10, 11),
			kind:  ast.KindBinary,
		},
		{
			name:  "variable",
			node:  ast.Variable{Ident: tok(token.Ident, 10, 11)},
			start: tok(token.Ident, 10, 11),
			end:   tok(token.Ident, 10, 11),
			kind:  ast.KindVariable,
		},
		{
			name:  "error",
			node:  ast.Error{Token: tok(token.EOF, 12, 13)},
			start: tok(token.EOF, 12, 13),
			end:   tok(token.EOF, 12, 13),
			kind:  ast.KindError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, tt.node.Start(), tt.start)
			test.Equal(t, tt.node.End(), tt.end)
			test.Equal(t, tt.node.Kind(), tt.kind)
		})
	}
}

func TestOperator(t *testing.T) {
	tests := []struct {
		name       string           // Name of the test case
		kind       token.Kind       // Token kind
		want       ast.OperatorKind // Expected operator kind
		precedence int              // Expected precedence
		ok         bool             // Whether it is an operator at all
	}{
		{name: "plus", kind: token.Plus, want: ast.Plus, precedence: 3, ok: true},
		{name: "minus", kind: token.Minus, want: ast.Minus, precedence: 3, ok: true},
		{name: "star", kind: token.Star, want: ast.Multiply, precedence: 4, ok: true},
		{name: "slash", kind: token.Slash, want: ast.Divide, precedence: 4, ok: true},
		{name: "percent", kind: token.Percent, want: ast.Mod, precedence: 4, ok: true},
		{name: "semicolon", kind: token.Semicolon, ok: false},
		{name: "and", kind: token.AndAnd, ok: false},
		{name: "eof", kind: token.EOF, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, ok := ast.Operator(token.Token{Kind: tt.kind})
			test.Equal(t, ok, tt.ok)

			if tt.ok {
				test.Equal(t, op.Kind, tt.want)
				test.Equal(t, op.Precedence(), tt.precedence)
			}
		})
	}
}

// recorder records the order nodes are visited in, overriding only the leaves
// and relying on [ast.Base] for everything else.
type recorder struct {
	ast.Base

	visited []string
}

func newRecorder() *recorder {
	r := &recorder{}
	r.Base = ast.Base{Visitor: r}

	return r
}

func (r *recorder) VisitNumber(expr ast.Number) {
	r.visited = append(r.visited, expr.Token.Lexeme)
}

func (r *recorder) VisitVariable(expr ast.Variable) {
	r.visited = append(r.visited, expr.Ident.Lexeme)
}

func (r *recorder) VisitBinary(expr ast.Binary) {
	r.visited = append(r.visited, expr.Op.Token.Lexeme)
	r.Base.VisitBinary(expr)
}

func TestBaseRecursion(t *testing.T) {
	r := newRecorder()
	ast.Walk(r, tree()...)

	// Outer to inner, left to right
	want := []string{"*", "+", "1", "2", "x", "3"}

	test.Equal(t, len(r.visited), len(want))

	for i := range want {
		test.Equal(t, r.visited[i], want[i])
	}
}

func TestBaseWithoutVisitor(t *testing.T) {
	// Should walk the whole thing without blowing up
	var base ast.Base

	ast.Walk(base, tree()...)
	ast.Walk(base, ast.ExpressionStatement{Expr: ast.Error{Token: tok(token.EOF, 21, 21)}})
}

func TestPrinter(t *testing.T) {
	buf := &bytes.Buffer{}
	err := ast.NewPrinter(buf).Print(tree()...)
	test.Ok(t, err)

	want := `Statement:
  Expression:
    Binary Expression:
      Operator: Multiply
      Expression:
        Parenthesized Expression:
          Expression:
            Binary Expression:
              Operator: Plus
              Expression:
                Number: 1
              Expression:
                Number: 2
      Expression:
        Variable: x
Statement:
  Assign Statement:
    Identifier: y
    Expression:
      Number: 3
`

	test.Diff(t, buf.String(), want)
}

func TestPrinterError(t *testing.T) {
	buf := &bytes.Buffer{}
	statement := ast.ExpressionStatement{Expr: ast.Error{Token: tok(token.Semicolon, 20, 21)}}

	err := ast.NewPrinter(buf).Print(statement)
	test.Ok(t, err)

	test.Diff(t, buf.String(), "Statement:\n  Expression:\n    Error: \";\"\n")
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken")
}

func TestPrinterWriteError(t *testing.T) {
	err := ast.NewPrinter(brokenWriter{}).Print(tree()...)
	test.Err(t, err)
}
