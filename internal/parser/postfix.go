package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/stack"
	"github.com/leonardinius/gocalc/internal/token"
)

// PostfixConverter reorders infix tokens into postfix (RPN) order.
type PostfixConverter interface {
	// Convert returns the postfix token sequence.
	// The input sequence is not modified.
	Convert() ([]token.Token, error)
}

type postfixConverter struct {
	tokens []token.Token
	table  *PrecedenceTable
	ops    *stack.Stack[token.Token]
	output []token.Token
}

// NewPostfixConverter returns a converter for tokens using the given precedence table.
// A nil table selects DefaultPrecedence.
func NewPostfixConverter(tokens []token.Token, table *PrecedenceTable) PostfixConverter {
	if table == nil {
		table = DefaultPrecedence()
	}
	return &postfixConverter{tokens: tokens, table: table}
}

// ToPostfix converts tokens with the default precedence table.
func ToPostfix(tokens []token.Token) ([]token.Token, error) {
	return NewPostfixConverter(tokens, nil).Convert()
}

// Convert implements PostfixConverter.
//
// Operators of equal precedence are applied left to right, including '^'.
func (c *postfixConverter) Convert() ([]token.Token, error) {
	c.ops = stack.New[token.Token]()
	c.output = make([]token.Token, 0, len(c.tokens))

	for _, tok := range c.tokens {
		var err error
		switch t := tok.(type) {
		case token.Number:
			c.emit(t)
		case token.Operator:
			err = c.operator(t)
		case token.LeftParen:
			c.ops.Push(t)
		case token.RightParen:
			err = c.rightParen(t)
		case token.Unknown:
			err = calcerrors.NewLexicalError(t.Col, t.Char)
		default:
			err = calcerrors.NewSyntaxError(tok.Column(), tok.Lexeme(), calcerrors.ErrUnexpectedToken)
		}
		if err != nil {
			return nil, err
		}
	}

	for {
		top, ok := c.ops.Pop()
		if !ok {
			break
		}
		if _, isParen := top.(token.LeftParen); isParen {
			return nil, calcerrors.NewSyntaxError(top.Column(), top.Lexeme(), calcerrors.ErrMismatchedParentheses)
		}
		c.emit(top)
	}

	return c.output, nil
}

func (c *postfixConverter) emit(t token.Token) {
	c.output = append(c.output, t)
}

func (c *postfixConverter) operator(t token.Operator) error {
	level, ok := c.table.Precedence(t.Symbol)
	if !ok {
		return calcerrors.NewSyntaxError(t.Col, t.Lexeme(), c.unknownOperator())
	}

	for {
		top, ok := c.ops.Peek()
		if !ok {
			break
		}
		op, isOp := top.(token.Operator)
		if !isOp {
			break
		}
		// Operators on the stack were validated when pushed.
		topLevel, _ := c.table.Precedence(op.Symbol)
		if topLevel < level {
			break
		}
		c.ops.Pop()
		c.emit(op)
	}

	c.ops.Push(t)
	return nil
}

func (c *postfixConverter) rightParen(t token.RightParen) error {
	for {
		top, ok := c.ops.Pop()
		if !ok {
			return calcerrors.NewSyntaxError(t.Col, t.Lexeme(), calcerrors.ErrMismatchedParentheses)
		}
		if _, isParen := top.(token.LeftParen); isParen {
			return nil
		}
		c.emit(top)
	}
}

// unknownOperator lists the operators the table does know.
func (c *postfixConverter) unknownOperator() error {
	ops := c.table.Operators()
	quoted := make([]string, len(ops))
	for i, op := range ops {
		quoted[i] = strconv.QuoteRune(op)
	}
	return fmt.Errorf("%w, expected one of %s", calcerrors.ErrUnexpectedToken, strings.Join(quoted, " "))
}

var _ PostfixConverter = (*postfixConverter)(nil)
