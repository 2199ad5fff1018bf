// Copyright (c) 2026 The boolexpr authors
//
// MIT License

package boolexpr

import (
	"cmp"
	"fmt"
	"math"
)

// Func is a reference to a Boolean function held by a BDD. It is a plain
// index into the node table: cheap to copy, valid for as long as its BDD
// lives, and never invalidated since the table only grows. Two Func built
// through the same BDD denote the same Boolean function exactly when they
// are equal.
type Func int32

const (
	bddzero Func = 0 // the constant false
	bddone  Func = 1 // the constant true
)

// bddnode is an entry of the node table, representing the function "if
// variable at this level then high else low". The two constants sit at
// index 0 and 1 and have no meaningful level or branches.
type bddnode struct {
	level int32 // order of the variable in the BDD
	low   Func  // false branch
	high  Func  // true branch
}

// uniqueKey identifies a node in the unicity table.
type uniqueKey struct {
	level     int32
	low, high Func
}

type applyKey struct {
	op   Operator
	f, g Func
}

type iteKey struct {
	f, g, h Func
}

// BDD is a Reduced Ordered Binary Decision Diagram over terminals of type T.
// It owns an append-only table of nodes shared by every function built
// through it, a unicity table enforcing that each (level, low, high)
// triplet has a single entry, and memoization caches for the apply, not and
// ite combinators that are kept for the lifetime of the BDD.
//
// Terminals are mapped to variable levels on first use, in encounter order;
// see Declare for fixing the order explicitly. A BDD is not safe for
// concurrent use.
type BDD[T cmp.Ordered] struct {
	nodes  []bddnode          // node table; constants at index 0 and 1
	unique map[uniqueKey]Func // unicity table, one entry per triplet
	ranks  map[T]int32        // terminal to variable level
	terms  []T                // variable level to terminal

	applycache map[applyKey]Func
	notcache   map[Func]Func
	itecache   map[iteKey]Func

	maxnodesize int // hard limit on the number of nodes, 0 if none

	produced     int // total number of nodes ever created
	uniqueAccess int // accesses to the unicity table
	uniqueHit    int // entries found in the unicity table
	uniqueMiss   int // entries not found in the unicity table
}

// New initializes an empty BDD containing only the two constant nodes.
// Behavior can be tuned with the functional options Nodesize, Cachesize and
// Maxnodesize.
func New[T cmp.Ordered](options ...Option) *BDD[T] {
	c := makeconfigs()
	for _, f := range options {
		f(c)
	}
	b := &BDD[T]{
		nodes:       make([]bddnode, 2, c.nodesize),
		unique:      make(map[uniqueKey]Func, c.nodesize),
		ranks:       make(map[T]int32),
		applycache:  make(map[applyKey]Func, c.cachesize),
		notcache:    make(map[Func]Func, c.cachesize),
		itecache:    make(map[iteKey]Func, c.cachesize),
		maxnodesize: c.maxnodesize,
	}
	b.nodes[0] = bddnode{low: 0, high: 0}
	b.nodes[1] = bddnode{low: 1, high: 1}
	return b
}

// True returns the constant true function.
func (b *BDD[T]) True() Func { return bddone }

// False returns the constant false function.
func (b *BDD[T]) False() Func { return bddzero }

// From returns the constant function for a Boolean value.
func (b *BDD[T]) From(v bool) Func {
	if v {
		return bddone
	}
	return bddzero
}

// Var returns the function that is true exactly when terminal t is true. If
// t has not been seen before it is assigned the next free variable level.
func (b *BDD[T]) Var(t T) Func {
	return b.mknode(b.rank(t), bddzero, bddone)
}

// NVar returns the negation of the variable for terminal t. See Var.
func (b *BDD[T]) NVar(t T) Func {
	return b.mknode(b.rank(t), bddone, bddzero)
}

// Declare assigns variable levels to the given terminals in argument order,
// before any expression is built. Declaring an already known terminal is a
// no-op, so Declare only pins the relative order of terminals not yet seen.
func (b *BDD[T]) Declare(ts ...T) {
	for _, t := range ts {
		b.rank(t)
	}
}

// Varnum returns the number of variables known to the BDD.
func (b *BDD[T]) Varnum() int { return len(b.terms) }

// rank returns the variable level of terminal t, assigning the next free
// level on first use.
func (b *BDD[T]) rank(t T) int32 {
	if r, ok := b.ranks[t]; ok {
		return r
	}
	if len(b.terms) >= int(_MAXVAR) {
		panic(fmt.Errorf("%w: cannot declare terminal %v", ErrTooManyVars, t))
	}
	r := int32(len(b.terms))
	b.ranks[t] = r
	b.terms = append(b.terms, t)
	return r
}

// level returns the variable level of the root node of f. Constants always
// sit below every variable, at a level equal to the current number of
// variables.
func (b *BDD[T]) level(f Func) int32 {
	if f < 2 {
		return int32(len(b.terms))
	}
	return b.nodes[f].level
}

// low returns the false branch of f.
func (b *BDD[T]) low(f Func) Func { return b.nodes[f].low }

// high returns the true branch of f.
func (b *BDD[T]) high(f Func) Func { return b.nodes[f].high }

// cofactors returns the two cofactors of f with respect to the variable at
// the given level. A function whose top variable is further down does not
// depend on that variable, so both cofactors are f itself.
func (b *BDD[T]) cofactors(f Func, level int32) (low, high Func) {
	if b.level(f) != level {
		return f, f
	}
	return b.nodes[f].low, b.nodes[f].high
}

// mknode is the single canonicalization chokepoint: every operation that
// needs a new node goes through it. A request with equal branches collapses
// to the shared child, and the unicity table guarantees that each (level,
// low, high) triplet is allocated at most once. Exhausting the node table is
// unrecoverable and panics with ErrTooManyNodes.
func (b *BDD[T]) mknode(level int32, low, high Func) Func {
	b.uniqueAccess++
	if low == high {
		return low
	}
	k := uniqueKey{level, low, high}
	if n, ok := b.unique[k]; ok {
		b.uniqueHit++
		return n
	}
	b.uniqueMiss++
	limit := math.MaxInt32
	if b.maxnodesize > 0 && b.maxnodesize < limit {
		limit = b.maxnodesize
	}
	if len(b.nodes) >= limit {
		panic(fmt.Errorf("%w: limit of %d nodes reached", ErrTooManyNodes, limit))
	}
	n := Func(len(b.nodes))
	b.nodes = append(b.nodes, bddnode{level: level, low: low, high: high})
	b.unique[k] = n
	b.produced++
	return n
}

// FromExpr builds the function denoted by an expression tree, composing
// Var, From, Not and Apply following the structure of the expression. The
// expression does not need to be simplified first; raw and simplified trees
// build the same Func.
func (b *BDD[T]) FromExpr(e *Expr[T]) Func {
	type frame struct {
		e    *Expr[T]
		post bool
	}
	todo := []frame{{e, false}}
	var out []Func
	for len(todo) > 0 {
		f := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		if f.post {
			switch f.e.kind {
			case KindNot:
				out[len(out)-1] = b.not(out[len(out)-1])
			case KindAnd:
				g := out[len(out)-1]
				out = out[:len(out)-1]
				out[len(out)-1] = b.apply(OPand, out[len(out)-1], g)
			case KindOr:
				g := out[len(out)-1]
				out = out[:len(out)-1]
				out[len(out)-1] = b.apply(OPor, out[len(out)-1], g)
			}
			continue
		}
		switch f.e.kind {
		case KindTerminal:
			out = append(out, b.Var(f.e.term))
		case KindConst:
			out = append(out, b.From(f.e.val))
		case KindNot:
			todo = append(todo, frame{f.e, true}, frame{f.e.l, false})
		case KindAnd, KindOr:
			todo = append(todo, frame{f.e, true}, frame{f.e.r, false}, frame{f.e.l, false})
		}
	}
	return out[0]
}

// Eval evaluates the function f under the given assignment, following one
// branch per visited node. Terminals missing from the assignment read as
// false. The ordering invariant guarantees that no variable is consulted
// twice, so evaluation is linear in the number of variables.
func (b *BDD[T]) Eval(f Func, assignment map[T]bool) bool {
	for f > 1 {
		n := b.nodes[f]
		if assignment[b.terms[n.level]] {
			f = n.high
		} else {
			f = n.low
		}
	}
	return f == bddone
}
