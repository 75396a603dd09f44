package calcerrors

import (
	"fmt"
)

type NumericFormatError struct {
	col  int
	text string
	base int
}

func NewNumericFormatError(col int, text string, base int) *NumericFormatError {
	return &NumericFormatError{col: col, text: text, base: base}
}

// Error implements error.
func (e *NumericFormatError) Error() string {
	return fmt.Sprintf("[col %d] %v: %v %q for base %d", e.col, ErrNumericFormat, ErrInvalidNumeral, e.text, e.base)
}

func (e *NumericFormatError) Column() int {
	return e.col
}

func (e *NumericFormatError) Text() string {
	return e.text
}

func (e *NumericFormatError) Base() int {
	return e.base
}

func (e *NumericFormatError) Unwrap() []error {
	return []error{ErrNumericFormat, ErrInvalidNumeral}
}

var _ error = (*NumericFormatError)(nil)
var _ unwrapInterface = (*NumericFormatError)(nil)
