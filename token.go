package linda

import "strconv"

// TokenKind discriminates the variants of a Token.
type TokenKind int

const (
	// MarkerToken is the leading operation symbol of a command line.
	MarkerToken TokenKind = iota
	// NumberToken is a field that parsed as a whole number.
	NumberToken
	// TextToken is any field that failed integer parsing, trimmed.
	TextToken
)

func (k TokenKind) String() string {
	switch k {
	case MarkerToken:
		return "marker"
	case NumberToken:
		return "number"
	case TextToken:
		return "text"
	default:
		return "token"
	}
}

// Token is one typed unit of a command line. A marker only ever appears as
// the first token of a command.
type Token struct {
	kind   TokenKind
	marker rune
	number int
	text   string
}

// Marker returns a marker token for the given operation symbol.
func Marker(r rune) Token { return Token{kind: MarkerToken, marker: r} }

// Number returns a number token for the given value.
func Number(n int) Token { return Token{kind: NumberToken, number: n} }

// Text returns a text token for the given (already trimmed) field.
func Text(s string) Token { return Token{kind: TextToken, text: s} }

// Kind returns the token's variant.
func (t Token) Kind() TokenKind { return t.kind }

// String returns the token's value as it appeared on the command line.
func (t Token) String() string {
	switch t.kind {
	case MarkerToken:
		return string(t.marker)
	case NumberToken:
		return strconv.Itoa(t.number)
	default:
		return t.text
	}
}
