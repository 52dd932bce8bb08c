// Package token provides the set of lexical tokens for the quill language.
package token

import (
	"fmt"
	"slices"

	"go.followtheprocess.codes/quill/internal/syntax"
)

// Token is a lexical token in a quill source file.
type Token struct {
	Lexeme string      // The raw source text of the token
	Text   string      // Identifier name or unquoted string literal value
	Span   syntax.Span // The span of source the token was scanned from
	Int    int64       // Parsed value of an [IntLiteral]
	Float  float64     // Parsed value of a [FloatLiteral]
	Kind   Kind        // The kind of token this is
}

// String implement [fmt.Stringer] for a [Token].
func (t Token) String() string {
	return fmt.Sprintf("<Token::%s start=%d, end=%d>", t.Kind, t.Span.Start, t.Span.End)
}

// Is reports whether the token is any of the provided [Kind]s.
func (t Token) Is(kinds ...Kind) bool {
	return slices.Contains(kinds, t.Kind)
}

// Keyword reports whether a string refers to a keyword, returning it's [Kind]
// and true if it is. Otherwise [Ident] and false are returned.
//
// Keywords are case sensitive, "Print" is a keyword but "print" is an identifier.
func Keyword(text string) (kind Kind, ok bool) {
	switch text {
	case "Int":
		return Int, true
	case "Float":
		return Float, true
	case "String":
		return String, true
	case "Logical":
		return Logical, true
	case "Begin":
		return Begin, true
	case "End":
		return End, true
	case "Print":
		return Print, true
	case "True":
		return True, true
	case "False":
		return False, true
	default:
		return Ident, false
	}
}

// Operator reports whether text is an operator or punctuation symbol, returning
// its [Kind] and true if it is. Otherwise [EOF] and false are returned.
func Operator(text string) (kind Kind, ok bool) {
	switch text {
	case ":=":
		return Assign, true
	case "+":
		return Plus, true
	case "-":
		return Minus, true
	case "*":
		return Star, true
	case "/":
		return Slash, true
	case "%":
		return Percent, true
	case "&&":
		return AndAnd, true
	case "&":
		return And, true
	case "||":
		return OrOr, true
	case "|":
		return Or, true
	case "^":
		return Caret, true
	case "!":
		return Bang, true
	case "~":
		return Tilde, true
	case "=":
		return Equal, true
	case "(":
		return LeftParen, true
	case ")":
		return RightParen, true
	case ";":
		return Semicolon, true
	default:
		return EOF, false
	}
}
