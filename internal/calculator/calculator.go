// Package calculator evaluates single-line arithmetic expressions.
//
// A calculation runs scanner, postfix conversion and evaluation in order and
// returns the first error encountered.
package calculator

import (
	"io"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/interpreter"
	"github.com/leonardinius/gocalc/internal/parser"
	"github.com/leonardinius/gocalc/internal/scanner"
	"github.com/leonardinius/gocalc/internal/token"
)

const (
	MinBase     = interpreter.MinBase
	MaxBase     = interpreter.MaxBase
	DefaultBase = interpreter.DefaultBase
)

type Result = interpreter.Result

// Calculator holds the numeral base and verbosity shared by its calculations.
//
// Not thread safe: SetBase must not race with Calculate.
// Each Calculate call reads the configuration once, on entry.
type Calculator struct {
	base        int
	verbose     bool
	traceWriter io.Writer
	precedence  *parser.PrecedenceTable
}

type Option func(*Calculator)

func WithBase(base int) Option {
	return func(c *Calculator) {
		c.base = base
	}
}

func WithVerbose(verbose bool) Option {
	return func(c *Calculator) {
		c.verbose = verbose
	}
}

// WithTraceWriter streams verbose trace lines to w in addition to Result.Trace.
func WithTraceWriter(w io.Writer) Option {
	return func(c *Calculator) {
		c.traceWriter = w
	}
}

// New returns a Calculator, base 10 and quiet unless options say otherwise.
// A base outside [MinBase, MaxBase] is rejected with a *calcerrors.ConfigError.
func New(options ...Option) (*Calculator, error) {
	c := &Calculator{base: DefaultBase, precedence: parser.DefaultPrecedence()}
	for _, opt := range options {
		opt(c)
	}

	if err := validateBase(c.base); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Calculator) Base() int {
	return c.base
}

// SetBase changes the base for subsequent calculations.
func (c *Calculator) SetBase(base int) error {
	if err := validateBase(base); err != nil {
		return err
	}
	c.base = base
	return nil
}

func (c *Calculator) Verbose() bool {
	return c.verbose
}

// Calculate evaluates source. Result.Trace is filled when the calculator is verbose.
func (c *Calculator) Calculate(source string) (Result, error) {
	evaluator := interpreter.NewEvaluator(
		interpreter.WithBase(c.base),
		interpreter.WithVerbose(c.verbose),
		interpreter.WithTraceWriter(c.traceWriter),
	)

	postfix, err := c.postfix(source)
	if err != nil {
		return Result{}, err
	}

	return evaluator.Evaluate(postfix)
}

// Postfix returns the RPN form of source, e.g. "2 3 4 * +" for "2+3*4".
// Numerals are not validated.
func (c *Calculator) Postfix(source string) (string, error) {
	postfix, err := c.postfix(source)
	if err != nil {
		return "", err
	}
	return parser.NewRPNPrinter().Print(postfix), nil
}

func (c *Calculator) postfix(source string) ([]token.Token, error) {
	tokens := scanner.NewScanner(source).Scan()
	return parser.NewPostfixConverter(tokens, c.precedence).Convert()
}

func validateBase(base int) error {
	if base < MinBase || base > MaxBase {
		return calcerrors.NewConfigError(base, MinBase, MaxBase)
	}
	return nil
}
