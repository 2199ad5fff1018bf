// Copyright (c) 2026 The boolexpr authors
//
// MIT License

package boolexpr

import "cmp"

// Simplify rewrites an expression into sum-of-products form: from root to
// leaves, nodes appear in the order OR, then AND, then NOT, so an AND node
// never has an OR node below it and a NOT node only ever wraps a terminal or
// a constant. The rewrites applied are double-negation elimination, De
// Morgan pushdown of negations, the usual constant identities, and
// distribution of AND over OR.
//
// The strategy is a single pass that pushes negation inward before anything
// is distributed: every frame of the traversal carries a polarity, flipped
// when crossing a NOT node and resolved at the leaves, so a doubly negated
// subtree simplifies exactly like the subtree itself. De Morgan's laws
// reduce to swapping the combining step under odd polarity, and only the
// conjunctions left after that pushdown distribute over disjunctions. When
// an AND combines two disjunctions, the cross product of their disjunct
// lists is emitted in left-major order, which makes the output deterministic
// for a given input. No minterm reduction is performed: the resulting terms
// may be redundant, and combinable terms are left as they are.
func Simplify[T cmp.Ordered](e *Expr[T]) *Expr[T] {
	type frame struct {
		e    *Expr[T]
		neg  bool
		post bool
	}
	todo := []frame{{e: e}}
	var out []*Expr[T]
	for len(todo) > 0 {
		f := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		if f.post {
			b := out[len(out)-1]
			out = out[:len(out)-1]
			// under odd polarity a conjunction combines as a disjunction
			// and vice versa
			if (f.e.kind == KindAnd) != f.neg {
				out[len(out)-1] = sand(out[len(out)-1], b)
			} else {
				out[len(out)-1] = sor(out[len(out)-1], b)
			}
			continue
		}
		switch f.e.kind {
		case KindTerminal:
			if f.neg {
				out = append(out, &Expr[T]{kind: KindNot, l: f.e})
			} else {
				out = append(out, f.e)
			}
		case KindConst:
			if f.neg {
				out = append(out, Constant[T](!f.e.val))
			} else {
				out = append(out, f.e)
			}
		case KindNot:
			todo = append(todo, frame{e: f.e.l, neg: !f.neg})
		case KindAnd, KindOr:
			todo = append(todo,
				frame{e: f.e, neg: f.neg, post: true},
				frame{e: f.e.r, neg: f.neg},
				frame{e: f.e.l, neg: f.neg},
			)
		}
	}
	return out[0]
}

// sor disjoins two simplified expressions. Only the constant identities
// apply: disjunction never breaks the sum-of-products shape.
func sor[T cmp.Ordered](a, b *Expr[T]) *Expr[T] {
	if a.kind == KindConst {
		if a.val {
			return a
		}
		return b
	}
	if b.kind == KindConst {
		if b.val {
			return b
		}
		return a
	}
	return &Expr[T]{kind: KindOr, l: a, r: b}
}

// sand conjoins two simplified expressions, distributing over any
// disjunction among the operands so that no OR node ends up below an AND.
func sand[T cmp.Ordered](a, b *Expr[T]) *Expr[T] {
	if a.kind == KindConst {
		if !a.val {
			return a
		}
		return b
	}
	if b.kind == KindConst {
		if !b.val {
			return b
		}
		return a
	}
	if a.kind != KindOr && b.kind != KindOr {
		return &Expr[T]{kind: KindAnd, l: a, r: b}
	}
	// (p1|...|pn) & (q1|...|qm) becomes the disjunction of all pi & qj. The
	// disjunct lists of simplified, non-constant expressions are free of
	// constants and of nested ORs.
	da := disjuncts(a)
	db := disjuncts(b)
	terms := make([]*Expr[T], 0, len(da)*len(db))
	for _, p := range da {
		for _, q := range db {
			terms = append(terms, &Expr[T]{kind: KindAnd, l: p, r: q})
		}
	}
	res := terms[len(terms)-1]
	for i := len(terms) - 2; i >= 0; i-- {
		res = &Expr[T]{kind: KindOr, l: terms[i], r: res}
	}
	return res
}

// disjuncts flattens the OR spine of a simplified expression into its list
// of products, in left-to-right order.
func disjuncts[T cmp.Ordered](e *Expr[T]) []*Expr[T] {
	var res []*Expr[T]
	todo := []*Expr[T]{e}
	for len(todo) > 0 {
		x := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		if x.kind == KindOr {
			todo = append(todo, x.r, x.l)
			continue
		}
		res = append(res, x)
	}
	return res
}
