package calcerrors

import (
	"fmt"
)

type SyntaxError struct {
	col    int
	lexeme string
	cause  error
}

// NewSyntaxError reports cause at the token starting at col.
// A zero col means the error was detected at the end of the input.
func NewSyntaxError(col int, lexeme string, cause error) *SyntaxError {
	return &SyntaxError{col: col, lexeme: lexeme, cause: cause}
}

// Error implements error.
func (e *SyntaxError) Error() string {
	if e.col == 0 {
		return fmt.Sprintf("%v at end: %v", ErrSyntax, e.cause)
	}
	return fmt.Sprintf("[col %d] %v at '%s': %v", e.col, ErrSyntax, e.lexeme, e.cause)
}

func (e *SyntaxError) Column() int {
	return e.col
}

func (e *SyntaxError) Unwrap() []error {
	return []error{ErrSyntax, e.cause}
}

var _ error = (*SyntaxError)(nil)
var _ unwrapInterface = (*SyntaxError)(nil)
