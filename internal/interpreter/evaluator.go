package interpreter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/stack"
	"github.com/leonardinius/gocalc/internal/token"
)

// Result is the value of an evaluated expression.
type Result struct {
	Value float64
	// Trace holds one line per binary operation, nil unless verbose.
	Trace []string
}

// Evaluator computes postfix token sequences.
type Evaluator interface {
	// Evaluate computes the value of a postfix token sequence.
	// Returns the result and an error if any.
	//
	// Evaluate keeps no state between calls.
	Evaluate(postfix []token.Token) (Result, error)
}

type evaluator struct {
	opts *evaluatorOpts
}

func NewEvaluator(options ...EvaluatorOption) Evaluator {
	return &evaluator{opts: newEvaluatorOpts(options...)}
}

// evaluation is the state of a single Evaluate call.
type evaluation struct {
	opts   *evaluatorOpts
	values *stack.Stack[float64]
	trace  []string
}

// Evaluate implements Evaluator.
func (e *evaluator) Evaluate(postfix []token.Token) (Result, error) {
	ev := &evaluation{opts: e.opts, values: stack.New[float64]()}

	for _, tok := range postfix {
		if err := ev.step(tok); err != nil {
			return Result{}, err
		}
	}

	return ev.result()
}

func (ev *evaluation) step(tok token.Token) error {
	switch t := tok.(type) {
	case token.Number:
		v, err := ParseNumeral(t.Text, ev.opts.base)
		if err != nil {
			return calcerrors.NewNumericFormatError(t.Col, t.Text, ev.opts.base)
		}
		ev.values.Push(v)
	case token.Operator:
		return ev.operator(t)
	case token.Unknown:
		return calcerrors.NewLexicalError(t.Col, t.Char)
	case token.LeftParen, token.RightParen:
		return calcerrors.NewSyntaxError(tok.Column(), tok.Lexeme(), calcerrors.ErrMismatchedParentheses)
	default:
		return calcerrors.NewSyntaxError(tok.Column(), tok.Lexeme(), calcerrors.ErrUnexpectedToken)
	}
	return nil
}

func (ev *evaluation) operator(t token.Operator) error {
	// A lone value under '-' is negated. No other operator is unary.
	if ev.values.Len() == 1 && t.Symbol == '-' {
		a, _ := ev.values.Pop()
		ev.values.Push(-a)
		return nil
	}

	if ev.values.Len() < 2 {
		return calcerrors.NewSyntaxError(t.Col, t.Lexeme(), calcerrors.ErrMissingOperand)
	}
	b, _ := ev.values.Pop()
	a, _ := ev.values.Pop()

	var v float64
	switch t.Symbol {
	case '+':
		v = a + b
	case '-':
		v = a - b
	case '*':
		v = a * b
	case '/':
		v = a / b
	case '^':
		v = math.Pow(a, b)
	default:
		return calcerrors.NewSyntaxError(t.Col, t.Lexeme(), calcerrors.ErrUnexpectedToken)
	}

	ev.traceBinary(a, t.Symbol, b, v)
	ev.values.Push(v)
	return nil
}

func (ev *evaluation) traceBinary(a float64, op rune, b float64, v float64) {
	if !ev.opts.verbose {
		return
	}
	line := fmt.Sprintf("%d) %v %c %v = %v;", len(ev.trace)+1, a, op, b, v)
	ev.trace = append(ev.trace, line)
	if ev.opts.traceWriter != nil {
		fmt.Fprintln(ev.opts.traceWriter, line)
	}
}

func (ev *evaluation) result() (Result, error) {
	switch ev.values.Len() {
	case 0:
		return Result{}, calcerrors.NewSyntaxError(0, "", calcerrors.ErrEmptyExpression)
	case 1:
		v, _ := ev.values.Pop()
		return Result{Value: v, Trace: slices.Clone(ev.trace)}, nil
	default:
		return Result{}, calcerrors.NewSyntaxError(0, "", calcerrors.ErrTrailingOperands)
	}
}

// ParseNumeral parses number token text in the given base.
//
// Base 10 accepts digits with at most one decimal point. Other bases accept
// integers only, with letters extending the digit alphabet in either case.
func ParseNumeral(text string, base int) (float64, error) {
	if base == 10 {
		if !isDecimal(text) {
			return 0, strconv.ErrSyntax
		}
		return strconv.ParseFloat(text, 64)
	}

	if base < MinBase || base > MaxBase {
		return 0, calcerrors.ErrBaseOutOfRange
	}
	n, err := strconv.ParseInt(text, base, 64)
	if err != nil {
		return 0, err
	}
	return float64(n), nil
}

func isDecimal(text string) bool {
	if strings.Count(text, ".") > 1 {
		return false
	}
	digits := 0
	for _, c := range text {
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
		default:
			return false
		}
	}
	return digits > 0
}

var _ Evaluator = (*evaluator)(nil)
