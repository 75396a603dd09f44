package token_test

import (
	"testing"

	"github.com/leonardinius/gocalc/internal/token"
	"github.com/stretchr/testify/assert"
)

func TestTokenRendering(t *testing.T) {
	testcases := []struct {
		tok      token.Token
		typ      token.TokenType
		str      string
		goString string
	}{
		{token.Number{Text: "0.5", Col: 1}, token.NUMBER, "NUMBER 0.5", `{Type: NUMBER, Lexeme: "0.5", Col: 1}`},
		{token.Operator{Symbol: '^', Col: 2}, token.OPERATOR, "OPERATOR ^", `{Type: OPERATOR, Lexeme: "^", Col: 2}`},
		{token.LeftParen{Col: 3}, token.LEFT_PAREN, "LEFT_PAREN (", `{Type: LEFT_PAREN, Lexeme: "(", Col: 3}`},
		{token.RightParen{Col: 4}, token.RIGHT_PAREN, "RIGHT_PAREN )", `{Type: RIGHT_PAREN, Lexeme: ")", Col: 4}`},
		{token.Unknown{Char: '#', Col: 5}, token.UNKNOWN, "UNKNOWN #", `{Type: UNKNOWN, Lexeme: "#", Col: 5}`},
	}

	for _, tc := range testcases {
		t.Run(tc.typ.String(), func(t *testing.T) {
			assert.Equal(t, tc.typ, tc.tok.Type())
			assert.Equal(t, tc.str, tc.tok.String())
			assert.Equal(t, tc.goString, tc.tok.GoString())
		})
	}
}

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "TokenType(42)", token.TokenType(42).String())
}
