// Copyright (c) 2026 The boolexpr authors
//
// MIT License

package boolexpr

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// xor3 returns the exclusive or of three terminals in disjunctive form, one
// disjunct per odd-parity assignment.
func xor3(a, b, c string) *Expr[string] {
	ta, tb, tc := Terminal(a), Terminal(b), Terminal(c)
	return Or(
		And(ta, Not(tb), Not(tc)),
		And(Not(ta), tb, Not(tc)),
		And(Not(ta), Not(tb), tc),
		And(ta, tb, tc),
	)
}

// enumAssignments calls fn with every possible assignment over terms.
func enumAssignments(terms []string, fn func(map[string]bool)) {
	for bits := 0; bits < 1<<len(terms); bits++ {
		env := make(map[string]bool, len(terms))
		for i, t := range terms {
			env[t] = bits&(1<<i) != 0
		}
		fn(env)
	}
}

// randExpr builds a random expression of the given depth over terms.
func randExpr(r *rand.Rand, depth int, terms []string) *Expr[string] {
	if depth == 0 || r.Intn(5) == 0 {
		if r.Intn(6) == 0 {
			return Constant[string](r.Intn(2) == 0)
		}
		return Terminal(terms[r.Intn(len(terms))])
	}
	switch r.Intn(3) {
	case 0:
		return Not(randExpr(r, depth-1, terms))
	case 1:
		return And(randExpr(r, depth-1, terms), randExpr(r, depth-1, terms))
	default:
		return Or(randExpr(r, depth-1, terms), randExpr(r, depth-1, terms))
	}
}

func TestExprPredicates(t *testing.T) {
	a := Terminal("a")
	var predTests = []struct {
		e                            *Expr[string]
		terminal, cnst, not, and, or bool
	}{
		{Terminal("x"), true, false, false, false, false},
		{Constant[string](true), false, true, false, false, false},
		{Not(a), false, false, true, false, false},
		{And(a, Not(a)), false, false, false, true, false},
		{Or(a, Not(a)), false, false, false, false, true},
	}
	for _, tt := range predTests {
		assert.Equal(t, tt.terminal, tt.e.IsTerminal(), "IsTerminal(%s)", tt.e)
		assert.Equal(t, tt.cnst, tt.e.IsConst(), "IsConst(%s)", tt.e)
		assert.Equal(t, tt.not, tt.e.IsNot(), "IsNot(%s)", tt.e)
		assert.Equal(t, tt.and, tt.e.IsAnd(), "IsAnd(%s)", tt.e)
		assert.Equal(t, tt.or, tt.e.IsOr(), "IsOr(%s)", tt.e)
	}
}

func TestVariadicConstructors(t *testing.T) {
	a := Terminal("a")
	assert.True(t, And[string]().IsConst())
	assert.True(t, And[string]().Eval(nil))
	assert.True(t, Or[string]().IsConst())
	assert.False(t, Or[string]().Eval(nil))
	assert.Same(t, a, And(a))
	assert.Same(t, a, Or(a))
	assert.True(t, And(a, a, a).IsAnd())
	assert.True(t, Or(a, a, a).IsOr())
}

func TestEvalXor(t *testing.T) {
	e := xor3("A", "B", "C")
	var evalTests = []struct {
		assignment map[string]bool
		expected   bool
	}{
		{map[string]bool{"A": true, "B": false, "C": false}, true},
		{map[string]bool{"A": true, "B": true, "C": false}, false},
		{map[string]bool{"A": true, "B": true, "C": true}, true},
	}
	for _, tt := range evalTests {
		assert.Equal(t, tt.expected, e.Eval(tt.assignment), "Eval(%v)", tt.assignment)
	}
	// against the parity of the full assignment space
	enumAssignments([]string{"A", "B", "C"}, func(env map[string]bool) {
		expected := env["A"] != env["B"] != env["C"]
		assert.Equal(t, expected, e.Eval(env), "Eval(%v)", env)
	})
}

func TestEvalDefaultsToFalse(t *testing.T) {
	e := Or(Terminal("a"), Terminal("b"))
	assert.False(t, e.Eval(nil))
	assert.False(t, e.Eval(map[string]bool{}))
	assert.True(t, e.Eval(map[string]bool{"b": true}))
	assert.True(t, Not(Terminal("a")).Eval(nil))
}

func TestEvalConstants(t *testing.T) {
	require.True(t, Constant[string](true).Eval(nil))
	require.False(t, Constant[string](false).Eval(nil))
	assert.True(t, Or(Constant[string](false), Constant[string](true)).Eval(nil))
	assert.False(t, And(Terminal("a"), Constant[string](true)).Eval(nil))
}

func TestEvalDeepTree(t *testing.T) {
	// a chain of 100 000 negations must not overflow the call stack
	e := Terminal("a")
	for i := 0; i < 100000; i++ {
		e = Not(e)
	}
	assert.True(t, e.Eval(map[string]bool{"a": true}))
}

func TestExprString(t *testing.T) {
	var stringTests = []struct {
		e        *Expr[string]
		expected string
	}{
		{Terminal("a"), "a"},
		{Constant[string](true), "true"},
		{Not(Terminal("a")), "!a"},
		{Not(And(Terminal("a"), Terminal("b"))), "!(a & b)"},
		{Not(Or(Terminal("a"), Terminal("b"))), "!(a | b)"},
		{Not(Not(Terminal("a"))), "!(!a)"},
		{Or(And(Terminal("a"), Not(Terminal("b"))), Terminal("c")), "((a & !b) | c)"},
	}
	for _, tt := range stringTests {
		assert.Equal(t, tt.expected, tt.e.String())
	}
}
