// Copyright (c) 2026 The boolexpr authors
//
// MIT License

package boolexpr

import (
	"cmp"
	"fmt"
	"strings"
)

// Kind identifies the variant of an expression node.
type Kind int

const (
	KindTerminal Kind = iota // a free variable
	KindConst                // the constant true or false
	KindNot                  // logical complement of one argument
	KindAnd                  // logical conjunction of two arguments
	KindOr                   // logical disjunction of two arguments
)

// Expr is a Boolean logic expression over terminals of type T. An expression
// is an owned tree: each subtree belongs exclusively to its parent and no
// sharing is required. Expressions are built with the Terminal, Constant,
// Not, And and Or constructors.
type Expr[T cmp.Ordered] struct {
	kind Kind
	term T        // terminal payload, meaningful when kind is KindTerminal
	val  bool     // constant payload, meaningful when kind is KindConst
	l, r *Expr[T] // operands; NOT only uses l
}

// Terminal returns an expression standing for the free variable t. Its value
// is not known until evaluation time.
func Terminal[T cmp.Ordered](t T) *Expr[T] {
	return &Expr[T]{kind: KindTerminal, term: t}
}

// Constant returns the constant expression true or false.
func Constant[T cmp.Ordered](v bool) *Expr[T] {
	return &Expr[T]{kind: KindConst, val: v}
}

// Not returns the logical complement of e.
func Not[T cmp.Ordered](e *Expr[T]) *Expr[T] {
	return &Expr[T]{kind: KindNot, l: e}
}

// And returns the conjunction of a sequence of expressions. With no argument
// it returns the constant true; conjuncts are nested to the right.
func And[T cmp.Ordered](es ...*Expr[T]) *Expr[T] {
	if len(es) == 0 {
		return Constant[T](true)
	}
	res := es[len(es)-1]
	for i := len(es) - 2; i >= 0; i-- {
		res = &Expr[T]{kind: KindAnd, l: es[i], r: res}
	}
	return res
}

// Or returns the disjunction of a sequence of expressions. With no argument
// it returns the constant false; disjuncts are nested to the right.
func Or[T cmp.Ordered](es ...*Expr[T]) *Expr[T] {
	if len(es) == 0 {
		return Constant[T](false)
	}
	res := es[len(es)-1]
	for i := len(es) - 2; i >= 0; i-- {
		res = &Expr[T]{kind: KindOr, l: es[i], r: res}
	}
	return res
}

// Kind returns the variant of the root node of e.
func (e *Expr[T]) Kind() Kind { return e.kind }

// IsTerminal reports whether e is a terminal.
func (e *Expr[T]) IsTerminal() bool { return e.kind == KindTerminal }

// IsConst reports whether e is a constant.
func (e *Expr[T]) IsConst() bool { return e.kind == KindConst }

// IsNot reports whether e is a NOT node.
func (e *Expr[T]) IsNot() bool { return e.kind == KindNot }

// IsAnd reports whether e is an AND node.
func (e *Expr[T]) IsAnd() bool { return e.kind == KindAnd }

// IsOr reports whether e is an OR node.
func (e *Expr[T]) IsOr() bool { return e.kind == KindOr }

// Eval evaluates the expression under a particular assignment of its
// terminals. Terminals missing from the assignment read as false. The
// traversal uses an explicit stack, so arbitrarily deep trees do not
// overflow the call stack.
func (e *Expr[T]) Eval(assignment map[T]bool) bool {
	type frame struct {
		e    *Expr[T]
		post bool
	}
	todo := []frame{{e, false}}
	var vals []bool
	for len(todo) > 0 {
		f := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		if f.post {
			switch f.e.kind {
			case KindNot:
				vals[len(vals)-1] = !vals[len(vals)-1]
			case KindAnd:
				b := vals[len(vals)-1]
				vals = vals[:len(vals)-1]
				vals[len(vals)-1] = vals[len(vals)-1] && b
			case KindOr:
				b := vals[len(vals)-1]
				vals = vals[:len(vals)-1]
				vals[len(vals)-1] = vals[len(vals)-1] || b
			}
			continue
		}
		switch f.e.kind {
		case KindTerminal:
			vals = append(vals, assignment[f.e.term])
		case KindConst:
			vals = append(vals, f.e.val)
		case KindNot:
			todo = append(todo, frame{f.e, true}, frame{f.e.l, false})
		case KindAnd, KindOr:
			todo = append(todo, frame{f.e, true}, frame{f.e.r, false}, frame{f.e.l, false})
		}
	}
	return vals[0]
}

// String returns a textual form of the expression, with & for conjunction,
// | for disjunction and ! for complement.
func (e *Expr[T]) String() string {
	var sb strings.Builder
	e.write(&sb)
	return sb.String()
}

func (e *Expr[T]) write(sb *strings.Builder) {
	switch e.kind {
	case KindTerminal:
		fmt.Fprintf(sb, "%v", e.term)
	case KindConst:
		fmt.Fprintf(sb, "%t", e.val)
	case KindNot:
		sb.WriteByte('!')
		if e.l.kind == KindNot {
			// nested negations are the only children without their own
			// parentheses or leaf form
			sb.WriteByte('(')
			e.l.write(sb)
			sb.WriteByte(')')
			return
		}
		e.l.write(sb)
	case KindAnd:
		sb.WriteByte('(')
		e.l.write(sb)
		sb.WriteString(" & ")
		e.r.write(sb)
		sb.WriteByte(')')
	case KindOr:
		sb.WriteByte('(')
		e.l.write(sb)
		sb.WriteString(" | ")
		e.r.write(sb)
		sb.WriteByte(')')
	}
}
