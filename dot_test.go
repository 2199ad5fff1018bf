// Copyright (c) 2026 The boolexpr authors
//
// MIT License

package boolexpr

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nodeStmt = regexp.MustCompile(`(?m)^\d+ \[`)

func TestDotXor(t *testing.T) {
	b := New[string]()
	f := b.FromExpr(xor3("A", "B", "C"))
	s := b.ToDot(f)

	require.True(t, strings.HasPrefix(s, "digraph G {\n"))
	require.True(t, strings.HasSuffix(s, "}\n"))
	assert.Equal(t, strings.Count(s, "{"), strings.Count(s, "}"))

	// one node statement per reachable node, one edge per child pointer
	reach := b.reachable(f)
	assert.Equal(t, 7, len(reach))
	assert.Equal(t, len(reach), len(nodeStmt.FindAllString(s, -1)))
	assert.Equal(t, 2*(len(reach)-2), strings.Count(s, "->"))
	assert.Equal(t, len(reach)-2, strings.Count(s, "style=dashed"))
	assert.Equal(t, len(reach)-2, strings.Count(s, "style=solid"))

	// internal nodes are labeled with their terminal
	for _, tm := range []string{"A", "B", "C"} {
		assert.Contains(t, s, "[label=\""+tm+"\"]")
	}
}

func TestDotDeterministic(t *testing.T) {
	b := New[string]()
	f := b.FromExpr(xor3("A", "B", "C"))
	require.Equal(t, b.ToDot(f), b.ToDot(f))
}

func TestDotConstant(t *testing.T) {
	b := New[string]()
	s := b.ToDot(b.True())
	assert.Equal(t, 1, len(nodeStmt.FindAllString(s, -1)))
	assert.NotContains(t, s, "->")
	assert.Contains(t, s, "shape=box")
}

func TestPrint(t *testing.T) {
	b := New[string]()
	assert.Equal(t, "True", b.Print(b.True()))
	assert.Equal(t, "False", b.Print(b.False()))
	assert.Equal(t, "(2[x] ? 1 : 0)", b.Print(b.Var("x")))
}

func TestStats(t *testing.T) {
	b := New[string]()
	b.FromExpr(xor3("A", "B", "C"))
	s := b.Stats()
	assert.Contains(t, s, "Varnum:     3")
	assert.Contains(t, s, "Allocated:")
	assert.Contains(t, s, "Unique Hit:")
}
