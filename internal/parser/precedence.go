package parser

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// PrecedenceTable maps an operator symbol to its binding strength.
// Higher binds tighter. The table is read-only once built.
type PrecedenceTable struct {
	levels map[rune]int
}

var defaultPrecedence = &PrecedenceTable{
	levels: map[rune]int{
		'+': 1,
		'-': 1,
		'*': 2,
		'/': 2,
		'^': 3,
	},
}

// DefaultPrecedence returns the arithmetic precedence table.
func DefaultPrecedence() *PrecedenceTable {
	return defaultPrecedence
}

// Precedence returns the binding strength of op, ok is false for unknown operators.
func (p *PrecedenceTable) Precedence(op rune) (level int, ok bool) {
	level, ok = p.levels[op]
	return
}

// Operators returns the known operator symbols in ascending order.
func (p *PrecedenceTable) Operators() []rune {
	ops := maps.Keys(p.levels)
	slices.Sort(ops)
	return ops
}
