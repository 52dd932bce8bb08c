package token

// Kind is the kind of a token.
type Kind int

// Token definitions.
//
//go:generate stringer -type Kind -linecomment
const (
	EOF           Kind = iota // EOF
	Int                       // Int
	Float                     // Float
	String                    // String
	Logical                   // Logical
	Begin                     // Begin
	End                       // End
	Print                     // Print
	True                      // True
	False                     // False
	Ident                     // Ident
	IntLiteral                // IntLiteral
	FloatLiteral              // FloatLiteral
	StringLiteral             // StringLiteral
	Assign                    // Assign
	Plus                      // Plus
	Minus                     // Minus
	Star                      // Star
	Slash                     // Slash
	Percent                   // Percent
	AndAnd                    // AndAnd
	And                       // And
	OrOr                      // OrOr
	Or                        // Or
	Caret                     // Caret
	Bang                      // Bang
	Tilde                     // Tilde
	Equal                     // Equal
	LeftParen                 // LeftParen
	RightParen                // RightParen
	Semicolon                 // Semicolon
)

// MarshalText implements [encoding.TextMarshaler] for [Kind].
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
