// Package scanner implements the lexical scanner for quill, reading the raw
// source text and producing the sequence of tokens consumed by the parser.
//
// The scanner is a state-function based scanner similar to that described by Rob Pike
// in his talk [Lexical Scanning in Go], based on the implementation of text/template in the Go
// standard library.
//
// Unlike text/template the scanner does not run concurrently, the parser needs the
// full token sequence before it starts so the state machine is simply run to
// completion and the tokens collected into a slice.
//
// The scanner never fails, characters that don't form any token are reported to the
// [diag.Bag] as an unknown token and skipped. The returned sequence always ends with
// exactly one [token.EOF].
//
// [Lexical Scanning in Go]: https://go.dev/talks/2011/lex.slide#1
package scanner

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"go.followtheprocess.codes/quill/internal/syntax"
	"go.followtheprocess.codes/quill/internal/syntax/diag"
	"go.followtheprocess.codes/quill/internal/syntax/token"
)

const eof = rune(-1) // eof signifies we have reached the end of the input.

// scanFn represents the state of the scanner as a function that does the work
// associated with the current state, then returns the next state.
type scanFn func(*Scanner) scanFn

// Scanner is the quill scanner.
type Scanner struct {
	bag    *diag.Bag     // Diagnostics are reported here
	src    string        // Raw source text
	tokens []token.Token // Tokens scanned so far
	start  int           // The start position of the current token
	pos    int           // Current scanner position in src (bytes, 0 indexed)
	done   bool          // Whether the state machine has run to completion
}

// New returns a new [Scanner] for src, reporting any problems to bag.
func New(src string, bag *diag.Bag) *Scanner {
	return &Scanner{
		bag: bag,
		src: src,
	}
}

// Tokenize scans the whole of src and returns the resulting tokens, it is
// shorthand for New(src, bag).Scan().
func Tokenize(src string, bag *diag.Bag) []token.Token {
	return New(src, bag).Scan()
}

// Scan scans the entire input and returns the tokens, the last of which is
// always [token.EOF].
//
// Subsequent calls return the same tokens without re-scanning or re-reporting.
func (s *Scanner) Scan() []token.Token {
	if !s.done {
		s.run()
		s.done = true
	}

	return s.tokens
}

// run starts the state machine for the scanner, it runs with each [scanFn] returning the next
// state until one returns nil, which only happens once the EOF token has been emitted.
func (s *Scanner) run() {
	for state := scanStart; state != nil; {
		state = state(s)
	}
}

// atEOF reports whether the scanner is at the end of the input.
func (s *Scanner) atEOF() bool {
	return s.pos >= len(s.src)
}

// next returns the next utf8 rune in the input or [eof], and advances
// the scanner over that rune such that successive calls to next iterate
// through src one rune at a time.
//
// Invalid utf8 is consumed one byte at a time as [utf8.RuneError].
func (s *Scanner) next() rune {
	if s.atEOF() {
		return eof
	}

	char, width := utf8.DecodeRuneInString(s.src[s.pos:])
	s.pos += width

	return char
}

// peek returns the next utf8 rune in the input or [eof], but does not
// advance the scanner. Successive calls to peek return the same char
// over and over again.
func (s *Scanner) peek() rune {
	if s.atEOF() {
		return eof
	}

	char, _ := utf8.DecodeRuneInString(s.src[s.pos:])

	return char
}

// rest returns the rest of the input from the current scanner position,
// or "" if the scanner is at EOF.
func (s *Scanner) rest() string {
	if s.atEOF() {
		return ""
	}

	return s.src[s.pos:]
}

// skip ignores any characters for which the predicate returns true, stopping at the
// first one that returns false such that after it returns, [Scanner.next] returns the
// first 'false' char.
//
// The scanner start position is brought up to the current position before returning, effectively
// ignoring everything it's travelled over in the meantime.
func (s *Scanner) skip(predicate func(r rune) bool) {
	for predicate(s.peek()) {
		s.next()
	}

	s.start = s.pos
}

// takeWhile consumes characters so long as the predicate returns true, stopping at the
// first one that returns false such that after it returns, [Scanner.next] returns the first 'false' rune.
func (s *Scanner) takeWhile(predicate func(r rune) bool) {
	for predicate(s.peek()) {
		s.next()
	}
}

// advance moves the scanner forward n bytes, never past the end of the input.
func (s *Scanner) advance(n int) {
	s.pos = min(s.pos+n, len(s.src))
}

// span returns the span of source between the start of the current token
// and the current position.
func (s *Scanner) span() syntax.Span {
	return syntax.NewSpan(s.src, s.start, s.pos)
}

// token builds a token of the given kind from the scanner's current state.
func (s *Scanner) token(kind token.Kind) token.Token {
	span := s.span()

	return token.Token{
		Kind:   kind,
		Span:   span,
		Lexeme: span.Literal,
	}
}

// emit appends a token to the output, using the scanner's internal state
// to populate position information.
func (s *Scanner) emit(tok token.Token) {
	s.tokens = append(s.tokens, tok)
	s.start = s.pos
}

// discard brings the start position up to current, dropping whatever
// text the scanner has "collected" up to this point.
func (s *Scanner) discard() {
	s.start = s.pos
}

// scanStart is the initial state of the scanner, and the state it returns
// to after every token.
func scanStart(s *Scanner) scanFn {
	s.skip(isWhitespace)

	char := s.peek()

	switch {
	case char == eof:
		s.emit(s.token(token.EOF))
		return nil
	case isIdentStart(char):
		return scanIdent
	case isDigit(char), char == '.', char == '-':
		return scanNumber
	case char == '"':
		return scanString
	default:
		return scanOperator
	}
}

// scanIdent scans an identifier or keyword.
func scanIdent(s *Scanner) scanFn {
	s.next()
	s.takeWhile(isIdent)

	tok := s.token(token.Ident)
	tok.Text = tok.Lexeme

	if kind, ok := token.Keyword(tok.Lexeme); ok {
		tok.Kind = kind
		tok.Text = ""
	}

	s.emit(tok)

	return scanStart
}

// scanNumber scans an integer or float literal, or a lone minus
// operator if that's all there is.
func scanNumber(s *Scanner) scanFn {
	length, isFloat := matchNumber(s.rest())

	switch {
	case length == 0 && s.peek() == '-':
		s.next()
		s.emit(s.token(token.Minus))

		return scanStart
	case length == 0:
		// A '.' not followed by a digit
		return scanUnknown
	}

	s.advance(length)
	lexeme := s.src[s.start:s.pos]

	if isFloat {
		value, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			s.bag.Error(s.span(), "float literal %s out of range", lexeme)
			s.discard()

			return scanStart
		}

		tok := s.token(token.FloatLiteral)
		tok.Float = value
		s.emit(tok)

		return scanStart
	}

	value, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		s.bag.Error(s.span(), "integer literal %s out of range", lexeme)
		s.discard()

		return scanStart
	}

	tok := s.token(token.IntLiteral)
	tok.Int = value
	s.emit(tok)

	return scanStart
}

// scanString scans a double quoted string literal.
//
// A string that is never closed, or that contains an escape sequence other
// than the allowed ones, is not a string at all; the opening quote is reported
// as unknown and scanning carries on from the character after it.
func scanString(s *Scanner) scanFn {
	length, ok := matchString(s.rest())
	if !ok {
		return scanUnknown
	}

	s.advance(length)

	tok := s.token(token.StringLiteral)
	tok.Text = unquote(tok.Lexeme)
	s.emit(tok)

	return scanStart
}

// scanOperator scans an operator or punctuation symbol, preferring the
// longest one that matches.
func scanOperator(s *Scanner) scanFn {
	length, kind := matchOperator(s.rest())
	if length == 0 {
		return scanUnknown
	}

	s.advance(length)
	s.emit(s.token(kind))

	return scanStart
}

// scanUnknown consumes a run of characters that don't begin any valid token and
// reports the whole run as a single unknown token.
//
// The run ends at whitespace, at the end of the input or at the first character
// that does begin a token, so every malformed region gets exactly one diagnostic.
// It always consumes at least one character, so the scanner can never stall.
func scanUnknown(s *Scanner) scanFn {
	s.next()

	for {
		char := s.peek()
		if char == eof || isWhitespace(char) || matchesAt(s.rest()) {
			break
		}

		s.next()
	}

	s.bag.UnknownToken(s.span())
	s.discard()

	return scanStart
}

// matchesAt reports whether any token rule matches at the start of rest.
func matchesAt(rest string) bool {
	if rest == "" {
		return false
	}

	char, _ := utf8.DecodeRuneInString(rest)

	switch {
	case isIdentStart(char), char == '-':
		return true
	case isDigit(char), char == '.':
		length, _ := matchNumber(rest)
		return length > 0
	case char == '"':
		_, ok := matchString(rest)
		return ok
	default:
		length, _ := matchOperator(rest)
		return length > 0
	}
}

// matchNumber returns the length of the longest integer or float literal
// at the start of text, and whether that literal is a float.
//
// Integers are -?[0-9]+, floats are [0-9]*\.[0-9]+([eE][+-]?[0-9]+)? or
// [0-9]+[eE][+-]?[0-9]+. A length of 0 means no number matches.
func matchNumber(text string) (length int, isFloat bool) {
	intLength := 0
	if strings.HasPrefix(text, "-") {
		if digits := countDigits(text[1:]); digits > 0 {
			intLength = 1 + digits
		}
	} else {
		intLength = countDigits(text)
	}

	floatLength := 0
	whole := countDigits(text)

	if rest := text[whole:]; strings.HasPrefix(rest, ".") {
		if fraction := countDigits(rest[1:]); fraction > 0 {
			floatLength = whole + 1 + fraction
			floatLength += matchExponent(text[floatLength:])
		}
	} else if whole > 0 {
		if exponent := matchExponent(rest); exponent > 0 {
			floatLength = whole + exponent
		}
	}

	if floatLength > intLength {
		return floatLength, true
	}

	return intLength, false
}

// matchExponent returns the length of an exponent [eE][+-]?[0-9]+ at the
// start of text, or 0 if there isn't a complete one.
func matchExponent(text string) int {
	if text == "" || (text[0] != 'e' && text[0] != 'E') {
		return 0
	}

	length := 1
	if len(text) > 1 && (text[1] == '+' || text[1] == '-') {
		length++
	}

	digits := countDigits(text[length:])
	if digits == 0 {
		return 0
	}

	return length + digits
}

// countDigits returns the number of leading ASCII digits in text.
func countDigits(text string) int {
	n := 0
	for n < len(text) && isDigit(rune(text[n])) {
		n++
	}

	return n
}

// matchString returns the length of the string literal at the start of text, and whether
// there was one at all.
//
// A string is a '"' followed by any characters other than '"' or '\', or one of the
// escapes \t \u \n \", and a closing '"'.
func matchString(text string) (length int, ok bool) {
	if !strings.HasPrefix(text, `"`) {
		return 0, false
	}

	for i := 1; i < len(text); i++ {
		switch text[i] {
		case '"':
			return i + 1, true
		case '\\':
			if i+1 >= len(text) {
				return 0, false
			}

			switch text[i+1] {
			case 't', 'u', 'n', '"':
				i++
			default:
				return 0, false
			}
		}
	}

	// Never closed
	return 0, false
}

// unquote strips the surrounding quotes from a string literal and interprets
// its escape sequences.
//
// \u carries no code point of its own, so it is kept as written.
func unquote(lexeme string) string {
	body := strings.TrimSuffix(strings.TrimPrefix(lexeme, `"`), `"`)
	replacer := strings.NewReplacer(`\t`, "\t", `\n`, "\n", `\"`, `"`)

	return replacer.Replace(body)
}

// matchOperator returns the length and kind of the longest operator
// at the start of text, or a length of 0 if there isn't one.
func matchOperator(text string) (length int, kind token.Kind) {
	for _, n := range []int{2, 1} {
		if len(text) < n {
			continue
		}

		if kind, ok := token.Operator(text[:n]); ok {
			return n, kind
		}
	}

	return 0, token.EOF
}

// isWhitespace reports whether r is whitespace that separates tokens.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\f'
}

// isAlpha reports whether r is an alpha character.
func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// isDigit reports whether r is a valid ASCII digit.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isIdentStart reports whether r may begin an identifier.
func isIdentStart(r rune) bool {
	return isAlpha(r) || r == '$' || r == '_'
}

// isIdent reports whether r is a valid identifier character.
func isIdent(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}
