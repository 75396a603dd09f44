package scanner

import (
	"github.com/leonardinius/gocalc/internal/token"
)

// Scanner splits an expression into tokens.
// Unrecognised characters become token.Unknown, so scanning never fails.
type Scanner interface {
	Scan() []token.Token
}

type scanner struct {
	source         []rune
	tokens         []token.Token
	start, current int
}

// NewScanner returns a new Scanner.
func NewScanner(input string) Scanner {
	return &scanner{source: []rune(input), start: 0, current: 0}
}

// Scan implements Scanner.
func (s *scanner) Scan() []token.Token {
	for !s.isAtEnd() {
		// We are at the beginning of the next lexeme.
		s.start = s.current
		s.scanToken()
	}

	return s.tokens
}

func (s *scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *scanner) scanToken() {
	var c = s.advance()

	switch c {
	case ' ', '\f', '\n', '\r', '\t', '\v':
		// Ignore whitespace.
	case '+', '-', '*', '/', '^':
		s.addToken(token.Operator{Symbol: c, Col: s.col()})
	case '(', '[':
		s.addToken(token.LeftParen{Col: s.col()})
	case ')', ']':
		s.addToken(token.RightParen{Col: s.col()})
	default:
		if s.isNumeral(c) {
			s.number()
		} else {
			s.addToken(token.Unknown{Char: c, Col: s.col()})
		}
	}
}

func (s *scanner) peek() rune {
	if s.isAtEnd() {
		return '\000'
	}
	return s.source[s.current]
}

func (s *scanner) advance() rune {
	s.current++
	return s.source[s.current-1]
}

func (s *scanner) col() int {
	return s.start + 1
}

func (s *scanner) addToken(t token.Token) {
	s.tokens = append(s.tokens, t)
}

// number consumes the longest run of digits, letters and dots.
// Letters are digits in bases above 10; validation happens at evaluation.
func (s *scanner) number() {
	for s.isNumeral(s.peek()) {
		s.advance()
	}

	text := string(s.source[s.start:s.current])
	if s.source[s.start] == '.' {
		text = "0" + text
	}
	s.addToken(token.Number{Text: text, Col: s.col()})
}

func (s *scanner) isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func (s *scanner) isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

func (s *scanner) isNumeral(c rune) bool {
	return s.isDigit(c) || s.isAlpha(c) || c == '.'
}

var _ Scanner = (*scanner)(nil)
