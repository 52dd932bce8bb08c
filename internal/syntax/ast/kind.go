package ast

// Kind is the type of an ast Node.
type Kind int

// AST Node kinds.
//
//go:generate stringer -type Kind -linecomment
const (
	KindInvalid             Kind = iota // Invalid
	KindFile                            // File
	KindExpressionStatement             // ExpressionStatement
	KindAssignStatement                 // AssignStatement
	KindNumber                          // Number
	KindBinary                          // Binary
	KindParenthesized                   // Parenthesized
	KindVariable                        // Variable
	KindError                           // Error
)

// MarshalText implements [encoding.TextMarshaler] for [Kind].
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
