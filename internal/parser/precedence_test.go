package parser_test

import (
	"testing"

	"github.com/leonardinius/gocalc/internal/parser"
	"github.com/stretchr/testify/assert"
)

func TestDefaultPrecedence(t *testing.T) {
	table := parser.DefaultPrecedence()

	assert.Equal(t, []rune{'*', '+', '-', '/', '^'}, table.Operators())

	for op, expected := range map[rune]int{'+': 1, '-': 1, '*': 2, '/': 2, '^': 3} {
		level, ok := table.Precedence(op)
		assert.True(t, ok, "operator %q", op)
		assert.Equal(t, expected, level, "operator %q", op)
	}

	_, ok := table.Precedence('%')
	assert.False(t, ok)
}
