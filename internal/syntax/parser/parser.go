// Package parser implements the quill parser.
//
// The parser turns the token sequence from the scanner into statements, one at a
// time, on demand. If a syntax error occurs the parser does not stop, it reports a
// diagnostic to the shared [diag.Bag] and keeps going, so partial trees are returned
// rather than the idiomatic Go norm of <zero value>, error. This is intentional both to
// report as many problems as possible in one pass and to hand tools a best effort tree
// for source that is incomplete or wrong.
//
// Recovery works in two ways:
//
//   - A missing or wrong structural token (":=", ";" or ")") is reported, the token
//     actually found is consumed in its place and parsing continues as if it was
//     what was expected.
//   - Where an expression is required but the current token can't start one, the
//     token is consumed and an [ast.Error] node with the same span as the reported
//     diagnostic stands in for the expression.
//
// Binary expressions are parsed by precedence climbing. The right hand side of an
// operator is parsed at the operator's own precedence, so operators of equal
// precedence group to the right: "8 - 3 - 2" is 8 - (3 - 2).
package parser

import (
	"iter"

	"go.followtheprocess.codes/quill/internal/syntax"
	"go.followtheprocess.codes/quill/internal/syntax/ast"
	"go.followtheprocess.codes/quill/internal/syntax/diag"
	"go.followtheprocess.codes/quill/internal/syntax/scanner"
	"go.followtheprocess.codes/quill/internal/syntax/token"
)

// lowestPrecedence is the minimum precedence a full expression is parsed at.
const lowestPrecedence = 0

// Parser is the quill parser.
type Parser struct {
	bag    *diag.Bag     // Diagnostics are reported here
	tokens []token.Token // The full token sequence, always ending in EOF
	pos    int           // Index of the current token, only ever increases
}

// New returns a [Parser] over tokens, reporting any syntax errors to bag.
//
// tokens should be the output of the scanner and so end with a single [token.EOF],
// if they don't, one is added after the last token.
func New(tokens []token.Token, bag *diag.Bag) *Parser {
	if len(tokens) == 0 || !tokens[len(tokens)-1].Is(token.EOF) {
		end := 0
		if len(tokens) != 0 {
			end = tokens[len(tokens)-1].Span.End
		}

		eof := token.Token{Kind: token.EOF, Span: syntax.Span{Start: end, End: end}}
		tokens = append(tokens[:len(tokens):len(tokens)], eof)
	}

	return &Parser{
		bag:    bag,
		tokens: tokens,
	}
}

// Parse tokenizes and parses src in one go, returning the parsed [ast.File].
//
// Problems found by both the scanner and the parser are reported to bag, callers
// should check [diag.Bag.IsEmpty] before trusting the returned tree.
func Parse(name, src string, bag *diag.Bag) ast.File {
	return New(scanner.Tokenize(src, bag), bag).Parse(name)
}

// Next parses and returns the next statement.
//
// Once the parser has reached the end of the input, Next returns nil and false, as
// will every call after that.
func (p *Parser) Next() (ast.Statement, bool) {
	if p.current().Is(token.EOF) {
		return nil, false
	}

	return p.parseStatement(), true
}

// All returns an iterator over the remaining statements, it stops when the input is
// exhausted or the caller stops ranging.
func (p *Parser) All() iter.Seq[ast.Statement] {
	return func(yield func(ast.Statement) bool) {
		for {
			statement, ok := p.Next()
			if !ok || !yield(statement) {
				return
			}
		}
	}
}

// Parse parses the remaining statements into an [ast.File] called name.
func (p *Parser) Parse(name string) ast.File {
	file := ast.File{
		Name:       name,
		Statements: make([]ast.Statement, 0),
	}

	for statement := range p.All() {
		file.Statements = append(file.Statements, statement)
	}

	return file
}

// peek returns the token offset places from the current one.
//
// Looking past the end of the sequence returns the terminal EOF.
func (p *Parser) peek(offset int) token.Token {
	index := min(p.pos+offset, len(p.tokens)-1)
	return p.tokens[index]
}

// current returns the token currently under inspection.
func (p *Parser) current() token.Token {
	return p.peek(0)
}

// advance consumes the current token, returning it.
//
// The cursor never moves past the terminal EOF, so at the end of the input advance
// keeps returning EOF.
func (p *Parser) advance() token.Token {
	tok := p.current()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}

	return tok
}

// expect consumes and returns the current token, reporting an unexpected token
// diagnostic first if it is not of the given kind.
//
// The token is consumed either way so the parser can carry on as if the expected
// token had been there.
func (p *Parser) expect(kind token.Kind) token.Token {
	tok := p.advance()
	if !tok.Is(kind) {
		p.bag.UnexpectedToken(kind, tok)
	}

	return tok
}

// parseStatement parses a single statement.
func (p *Parser) parseStatement() ast.Statement {
	if p.current().Is(token.Ident) {
		return p.parseAssign()
	}

	return ast.ExpressionStatement{Expr: p.parseExpression()}
}

// parseAssign parses an assignment statement, e.g. "x := 1 + 2;".
func (p *Parser) parseAssign() ast.AssignStatement {
	ident := p.advance()
	p.expect(token.Assign)
	initializer := p.parseExpression()
	semicolon := p.expect(token.Semicolon)

	return ast.AssignStatement{
		Ident:       ident,
		Initializer: initializer,
		Semicolon:   semicolon,
	}
}

// parseExpression parses a full expression.
func (p *Parser) parseExpression() ast.Expression {
	return p.parseBinary(lowestPrecedence)
}

// parseBinary parses a chain of binary operators binding at least as tightly as
// precedence.
func (p *Parser) parseBinary(precedence int) ast.Expression {
	left := p.parsePrimary()

	for {
		op, ok := ast.Operator(p.current())
		if !ok || op.Precedence() < precedence {
			return left
		}

		p.advance()
		right := p.parseBinary(op.Precedence())

		left = ast.Binary{
			Left:  left,
			Op:    op,
			Right: right,
		}
	}
}

// parsePrimary parses a number or a parenthesized expression.
//
// Any other token is consumed and replaced by an [ast.Error] node.
func (p *Parser) parsePrimary() ast.Expression {
	tok := p.advance()

	switch tok.Kind {
	case token.IntLiteral:
		return ast.Number{Token: tok, Value: tok.Int}
	case token.LeftParen:
		inner := p.parseExpression()
		closing := p.expect(token.RightParen)

		return ast.Parenthesized{
			Open:  tok,
			Inner: inner,
			Close: closing,
		}
	default:
		p.bag.ExpectedExpression(tok)
		return ast.Error{Token: tok}
	}
}
