package parser

import (
	"strings"

	"github.com/leonardinius/gocalc/internal/token"
)

// RPNPrinter renders postfix token sequences as text.
type RPNPrinter struct{}

func NewRPNPrinter() *RPNPrinter {
	return &RPNPrinter{}
}

// Print renders a postfix sequence as space separated lexemes, e.g. "2 3 4 * +".
func (p *RPNPrinter) Print(postfix []token.Token) string {
	out := new(strings.Builder)
	for i, tok := range postfix {
		if i > 0 {
			_, _ = out.WriteString(" ")
		}
		_, _ = out.WriteString(tok.Lexeme())
	}
	return out.String()
}
