package calcerrors

import (
	"fmt"
	"strconv"
)

type LexicalError struct {
	col   int
	char  rune
	cause error
}

func NewLexicalError(col int, char rune) *LexicalError {
	return &LexicalError{col: col, char: char, cause: ErrUnexpectedCharacter}
}

// Error implements error.
func (e *LexicalError) Error() string {
	return fmt.Sprintf("[col %d] %v: %v %s", e.col, ErrLexical, e.cause, strconv.QuoteRune(e.char))
}

func (e *LexicalError) Column() int {
	return e.col
}

func (e *LexicalError) Char() rune {
	return e.char
}

func (e *LexicalError) Unwrap() []error {
	return []error{ErrLexical, e.cause}
}

var _ error = (*LexicalError)(nil)
var _ unwrapInterface = (*LexicalError)(nil)
