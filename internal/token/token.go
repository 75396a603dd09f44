package token

import (
	"fmt"
)

type TokenType int

const (
	NUMBER TokenType = iota
	OPERATOR
	LEFT_PAREN
	RIGHT_PAREN
	UNKNOWN
)

var tokenTypeNames = [...]string{
	NUMBER:      "NUMBER",
	OPERATOR:    "OPERATOR",
	LEFT_PAREN:  "LEFT_PAREN",
	RIGHT_PAREN: "RIGHT_PAREN",
	UNKNOWN:     "UNKNOWN",
}

// String implements fmt.Stringer.
func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenTypeNames) {
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
	return tokenTypeNames[t]
}

// Token represents a lexical token.
// It is one of Number, Operator, LeftParen, RightParen or Unknown.
type Token interface {
	Type() TokenType
	// Lexeme returns the token text as it is fed to later stages.
	Lexeme() string
	// Column returns the 1-based position of the token start in the source.
	Column() int

	fmt.Stringer
	fmt.GoStringer

	token()
}

// Number holds raw numeral text. Parsing is deferred until the base is known.
type Number struct {
	Text string
	Col  int
}

// Operator is one of + - * / ^.
type Operator struct {
	Symbol rune
	Col    int
}

// LeftParen originates from '(' or '['.
type LeftParen struct {
	Col int
}

// RightParen originates from ')' or ']'.
type RightParen struct {
	Col int
}

// Unknown carries a character the scanner does not recognise.
type Unknown struct {
	Char rune
	Col  int
}

func (Number) Type() TokenType     { return NUMBER }
func (Operator) Type() TokenType   { return OPERATOR }
func (LeftParen) Type() TokenType  { return LEFT_PAREN }
func (RightParen) Type() TokenType { return RIGHT_PAREN }
func (Unknown) Type() TokenType    { return UNKNOWN }

func (n Number) Lexeme() string   { return n.Text }
func (o Operator) Lexeme() string { return string(o.Symbol) }
func (LeftParen) Lexeme() string  { return "(" }
func (RightParen) Lexeme() string { return ")" }
func (u Unknown) Lexeme() string  { return string(u.Char) }

func (n Number) Column() int     { return n.Col }
func (o Operator) Column() int   { return o.Col }
func (l LeftParen) Column() int  { return l.Col }
func (r RightParen) Column() int { return r.Col }
func (u Unknown) Column() int    { return u.Col }

func (Number) token()     {}
func (Operator) token()   {}
func (LeftParen) token()  {}
func (RightParen) token() {}
func (Unknown) token()    {}

// String implements fmt.Stringer.
func (n Number) String() string     { return stringify(n) }
func (o Operator) String() string   { return stringify(o) }
func (l LeftParen) String() string  { return stringify(l) }
func (r RightParen) String() string { return stringify(r) }
func (u Unknown) String() string    { return stringify(u) }

// GoString implements fmt.GoStringer.
func (n Number) GoString() string     { return goStringify(n) }
func (o Operator) GoString() string   { return goStringify(o) }
func (l LeftParen) GoString() string  { return goStringify(l) }
func (r RightParen) GoString() string { return goStringify(r) }
func (u Unknown) GoString() string    { return goStringify(u) }

func stringify(t Token) string {
	return fmt.Sprintf("%s %s", t.Type(), t.Lexeme())
}

func goStringify(t Token) string {
	return fmt.Sprintf("{Type: %s, Lexeme: %q, Col: %d}", t.Type(), t.Lexeme(), t.Column())
}

var _ Token = Number{}
var _ Token = Operator{}
var _ Token = LeftParen{}
var _ Token = RightParen{}
var _ Token = Unknown{}
