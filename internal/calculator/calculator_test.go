package calculator_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/calculator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	testcases := []struct {
		name string
		in   string  // Input
		eval float64 // Expected value
		err  error   // Expected error category
	}{
		{name: `precedence`, in: `2+3*4`, eval: 14},
		{name: `grouping`, in: `(2+3)*4`, eval: 20},
		{name: `mixed brackets`, in: `[2+3)*4`, eval: 20},
		{name: `power is left associative`, in: `2^3^2`, eval: 64},
		{name: `unary minus`, in: `-5`, eval: -5},
		{name: `binary minus`, in: `3-5`, eval: -2},
		{name: `leading point`, in: `.5+1`, eval: 1.5},
		{name: `unclosed paren`, in: `(2+3`, err: calcerrors.ErrSyntax},
		{name: `missing operand`, in: `2+`, err: calcerrors.ErrSyntax},
		{name: `double minus`, in: `--5`, err: calcerrors.ErrSyntax},
		{name: `unknown character`, in: `2#3`, err: calcerrors.ErrLexical},
		{name: `malformed decimal`, in: `1.2.3`, err: calcerrors.ErrNumericFormat},
	}

	c, err := calculator.New()
	require.NoError(t, err)

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := c.Calculate(tc.in)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.eval, result.Value)
		})
	}
}

func TestNewRejectsBase(t *testing.T) {
	for _, base := range []int{-1, 0, 1, 37, 100} {
		c, err := calculator.New(calculator.WithBase(base))
		assert.Nil(t, c)
		assert.ErrorIs(t, err, calcerrors.ErrConfig, "base %d", base)

		var cfgErr *calcerrors.ConfigError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, base, cfgErr.Base())
	}

	for _, base := range []int{calculator.MinBase, 10, 16, calculator.MaxBase} {
		c, err := calculator.New(calculator.WithBase(base))
		require.NoError(t, err, "base %d", base)
		assert.Equal(t, base, c.Base())
	}
}

func TestSetBase(t *testing.T) {
	c, err := calculator.New()
	require.NoError(t, err)
	assert.Equal(t, calculator.DefaultBase, c.Base())

	result, err := c.Calculate(`.5+1`)
	require.NoError(t, err)
	assert.Equal(t, 1.5, result.Value)

	require.NoError(t, c.SetBase(16))
	assert.Equal(t, 16, c.Base())

	result, err = c.Calculate(`ff`)
	require.NoError(t, err)
	assert.Equal(t, float64(255), result.Value)

	_, err = c.Calculate(`g`)
	assert.ErrorIs(t, err, calcerrors.ErrNumericFormat)

	err = c.SetBase(37)
	assert.ErrorIs(t, err, calcerrors.ErrConfig)
	assert.Equal(t, 16, c.Base())
}

func TestCalculateVerbose(t *testing.T) {
	out := new(strings.Builder)
	c, err := calculator.New(calculator.WithVerbose(true), calculator.WithTraceWriter(out))
	require.NoError(t, err)
	assert.True(t, c.Verbose())

	result, err := c.Calculate(`2+3*4`)
	require.NoError(t, err)
	assert.Equal(t, float64(14), result.Value)
	assert.Equal(t, []string{`1) 3 * 4 = 12;`, `2) 2 + 12 = 14;`}, result.Trace)
	assert.Equal(t, "1) 3 * 4 = 12;\n2) 2 + 12 = 14;\n", out.String())
}

func TestCalculateQuietHasNoTrace(t *testing.T) {
	c, err := calculator.New()
	require.NoError(t, err)

	result, err := c.Calculate(`2+3*4`)
	require.NoError(t, err)
	assert.Nil(t, result.Trace)
}

func TestCalculateIsDeterministic(t *testing.T) {
	c, err := calculator.New(calculator.WithVerbose(true))
	require.NoError(t, err)

	first, err := c.Calculate(`(1+2)*3^2/4`)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		next, err := c.Calculate(`(1+2)*3^2/4`)
		require.NoError(t, err)
		assert.Equal(t, first, next)
	}
}

func TestPostfix(t *testing.T) {
	c, err := calculator.New()
	require.NoError(t, err)

	rpn, err := c.Postfix(`(2+3)*4^2`)
	require.NoError(t, err)
	assert.Equal(t, `2 3 + 4 2 ^ *`, rpn)

	_, err = c.Postfix(`2+3)`)
	assert.ErrorIs(t, err, calcerrors.ErrMismatchedParentheses)
}
