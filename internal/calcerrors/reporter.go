package calcerrors

import (
	"errors"
	"fmt"
	"io"
)

// ErrReporter prints failures of a command line calculation.
type ErrReporter interface {
	// ReportError prints a calculation or configuration error.
	ReportError(err error)
	// ReportPanic prints a value recovered from a panic.
	ReportPanic(v any)
}

type writerReporter struct {
	w io.Writer
}

// NewErrReporter returns a reporter writing one line per failure to w.
func NewErrReporter(w io.Writer) ErrReporter {
	return &writerReporter{w: w}
}

// ReportError implements ErrReporter.
// Errors outside the calculator taxonomy are prefixed with "unexpected".
func (r *writerReporter) ReportError(err error) {
	if !IsCalculationError(err) {
		fmt.Fprintf(r.w, "ERROR unexpected: %v\n", err)
		return
	}
	fmt.Fprintf(r.w, "ERROR %v\n", err)
}

// ReportPanic implements ErrReporter.
func (r *writerReporter) ReportPanic(v any) {
	fmt.Fprintf(r.w, "FATAL %v\n", v)
}

// IsCalculationError reports whether err belongs to one of the calculator categories.
func IsCalculationError(err error) bool {
	return errors.Is(err, ErrLexical) ||
		errors.Is(err, ErrSyntax) ||
		errors.Is(err, ErrNumericFormat) ||
		errors.Is(err, ErrConfig)
}

var _ ErrReporter = (*writerReporter)(nil)
