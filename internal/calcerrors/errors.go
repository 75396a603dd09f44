// Package calcerrors defines the error categories reported by the calculator pipeline.
//
// Every typed error unwraps to its category sentinel (ErrLexical, ErrSyntax,
// ErrNumericFormat, ErrConfig) and to the specific cause, so both can be
// matched with errors.Is.
package calcerrors

import "errors"

var (
	ErrLexical       = errors.New("lexical error")
	ErrSyntax        = errors.New("syntax error")
	ErrNumericFormat = errors.New("numeric format error")
	ErrConfig        = errors.New("config error")
)

var (
	ErrUnexpectedCharacter   = errors.New("unexpected character")
	ErrMismatchedParentheses = errors.New("mismatched parentheses")
	ErrMissingOperand        = errors.New("missing operand")
	ErrTrailingOperands      = errors.New("malformed expression, operands left over")
	ErrEmptyExpression       = errors.New("empty expression")
	ErrUnexpectedToken       = errors.New("unexpected token")
	ErrInvalidNumeral        = errors.New("invalid numeral")
	ErrBaseOutOfRange        = errors.New("base out of range")
)

// local interface to be used with errors.Is/errors.As.
// errors package does not export one, relies on reflection instead.
type unwrapInterface interface {
	Unwrap() []error
}
