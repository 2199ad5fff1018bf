// Copyright (c) 2026 The boolexpr authors
//
// MIT License

package boolexpr

import (
	"fmt"
	"math/big"
	"sort"
)

// Apply performs the basic binary operations with two operands, such as AND,
// OR etc. Left and right are the operands and op is the requested operation,
// one of:
//
//	Identifier    Description            Truth table
//
//	OPand         logical and            [0,0,0,1]
//	OPxor         logical xor            [0,1,1,0]
//	OPor          logical or             [0,1,1,1]
//	OPnand        logical not-and        [1,1,1,0]
//	OPnor         logical not-or         [1,0,0,0]
//	OPimp         implication            [1,1,0,1]
//	OPbiimp       equivalence            [1,0,0,1]
//	OPdiff        set difference         [0,0,1,0]
//	OPless        less than              [0,1,0,0]
//	OPinvimp      reverse implication    [1,0,1,1]
func (b *BDD[T]) Apply(left, right Func, op Operator) Func {
	if op < OPand || op > OPinvimp {
		panic(fmt.Errorf("invalid operator (%d) in call to Apply", op))
	}
	return b.apply(op, left, right)
}

// applyTask is a frame of the explicit recursion stack used by apply. A
// frame is pushed twice: once to expand the cofactors of a pair of operands,
// and once more (post set) after both cofactor results are available, to
// combine them into a node.
type applyTask struct {
	f, g  Func
	level int32
	post  bool
}

// apply is the generic combinator at the heart of the BDD. Operands are
// split on the smallest of their top variable levels, the two pairs of
// cofactors are combined recursively, and the results are joined back
// through mknode. Terminal operands short-circuit according to the operator.
// Results are memoized by (op, f, g) for the lifetime of the BDD, which
// bounds the work to the product of the operand graph sizes; commutative
// operators order their operands first to increase the hit rate. The
// recursion is run on an explicit stack so that deep operand graphs cannot
// overflow the call stack.
func (b *BDD[T]) apply(op Operator, f, g Func) Func {
	todo := []applyTask{{f: f, g: g}}
	var out []Func
	for len(todo) > 0 {
		t := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		if t.post {
			high := out[len(out)-1]
			out = out[:len(out)-1]
			low := out[len(out)-1]
			res := b.mknode(t.level, low, high)
			b.applycache[applyKey{op, t.f, t.g}] = res
			out[len(out)-1] = res
			continue
		}
		if opcommutes[op] && t.f > t.g {
			t.f, t.g = t.g, t.f
		}
		if res, ok := applyTerminal(op, t.f, t.g); ok {
			out = append(out, res)
			continue
		}
		if res, ok := b.applycache[applyKey{op, t.f, t.g}]; ok {
			out = append(out, res)
			continue
		}
		level := b.level(t.f)
		if l := b.level(t.g); l < level {
			level = l
		}
		flow, fhigh := b.cofactors(t.f, level)
		glow, ghigh := b.cofactors(t.g, level)
		todo = append(todo,
			applyTask{f: t.f, g: t.g, level: level, post: true},
			applyTask{f: fhigh, g: ghigh},
			applyTask{f: flow, g: glow},
		)
	}
	return out[0]
}

// applyTerminal reports the short-circuit result of op when one of the
// operands is a terminal (or both operands are equal) consistent with the
// operator. When both operands are constants the result comes from the opres
// truth tables.
func applyTerminal(op Operator, left, right Func) (Func, bool) {
	switch op {
	case OPand:
		if left == right {
			return left, true
		}
		if left == 0 || right == 0 {
			return 0, true
		}
		if left == 1 {
			return right, true
		}
		if right == 1 {
			return left, true
		}
	case OPor:
		if left == right {
			return left, true
		}
		if left == 1 || right == 1 {
			return 1, true
		}
		if left == 0 {
			return right, true
		}
		if right == 0 {
			return left, true
		}
	case OPxor:
		if left == right {
			return 0, true
		}
		if left == 0 {
			return right, true
		}
		if right == 0 {
			return left, true
		}
	case OPnand:
		if left == 0 || right == 0 {
			return 1, true
		}
	case OPnor:
		if left == 1 || right == 1 {
			return 0, true
		}
	case OPimp:
		if left == 0 {
			return 1, true
		}
		if left == 1 {
			return right, true
		}
		if right == 1 {
			return 1, true
		}
		if left == right {
			return 1, true
		}
	case OPbiimp:
		if left == right {
			return 1, true
		}
		if left == 1 {
			return right, true
		}
		if right == 1 {
			return left, true
		}
	case OPdiff:
		if left == right || left == 0 || right == 1 {
			return 0, true
		}
		if right == 0 {
			return left, true
		}
	case OPless:
		if left == right || left == 1 {
			return 0, true
		}
		if left == 0 {
			return right, true
		}
	case OPinvimp:
		if right == 0 {
			return 1, true
		}
		if right == 1 {
			return left, true
		}
		if left == 1 {
			return 1, true
		}
		if left == right {
			return 1, true
		}
	}
	if left < 2 && right < 2 {
		return opres[op][left][right], true
	}
	return 0, false
}

// Not returns the negation (!f) of expression f. It negates a function by
// exchanging all references to the zero constant with references to the one
// constant and vice versa.
func (b *BDD[T]) Not(f Func) Func {
	return b.not(f)
}

type notTask struct {
	f     Func
	level int32
	post  bool
}

func (b *BDD[T]) not(f Func) Func {
	todo := []notTask{{f: f}}
	var out []Func
	for len(todo) > 0 {
		t := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		if t.post {
			high := out[len(out)-1]
			out = out[:len(out)-1]
			low := out[len(out)-1]
			res := b.mknode(t.level, low, high)
			b.notcache[t.f] = res
			out[len(out)-1] = res
			continue
		}
		if t.f < 2 {
			out = append(out, t.f^1)
			continue
		}
		if res, ok := b.notcache[t.f]; ok {
			out = append(out, res)
			continue
		}
		n := b.nodes[t.f]
		todo = append(todo,
			notTask{f: t.f, level: n.level, post: true},
			notTask{f: n.high},
			notTask{f: n.low},
		)
	}
	return out[0]
}

// Ite, short for if-then-else, computes the function [(f & g) | (!f & h)]
// more efficiently than doing the three operations separately.
func (b *BDD[T]) Ite(f, g, h Func) Func {
	return b.ite(f, g, h)
}

type iteTask struct {
	f, g, h Func
	level   int32
	post    bool
}

func (b *BDD[T]) ite(f, g, h Func) Func {
	todo := []iteTask{{f: f, g: g, h: h}}
	var out []Func
	for len(todo) > 0 {
		t := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		if t.post {
			high := out[len(out)-1]
			out = out[:len(out)-1]
			low := out[len(out)-1]
			res := b.mknode(t.level, low, high)
			b.itecache[iteKey{t.f, t.g, t.h}] = res
			out[len(out)-1] = res
			continue
		}
		switch {
		case t.f == 1:
			out = append(out, t.g)
			continue
		case t.f == 0:
			out = append(out, t.h)
			continue
		case t.g == t.h:
			out = append(out, t.g)
			continue
		case t.g == 1 && t.h == 0:
			out = append(out, t.f)
			continue
		case t.g == 0 && t.h == 1:
			out = append(out, b.not(t.f))
			continue
		}
		if res, ok := b.itecache[iteKey{t.f, t.g, t.h}]; ok {
			out = append(out, res)
			continue
		}
		// split on the smallest of the three top levels; operands further
		// down are left untouched by cofactors
		level := min3(b.level(t.f), b.level(t.g), b.level(t.h))
		flow, fhigh := b.cofactors(t.f, level)
		glow, ghigh := b.cofactors(t.g, level)
		hlow, hhigh := b.cofactors(t.h, level)
		todo = append(todo,
			iteTask{f: t.f, g: t.g, h: t.h, level: level, post: true},
			iteTask{f: fhigh, g: ghigh, h: hhigh},
			iteTask{f: flow, g: glow, h: hlow},
		)
	}
	return out[0]
}

// min3 returns the smallest value between p, q and r.
func min3(p, q, r int32) int32 {
	if p <= q {
		if p <= r { // p <= q && p <= r
			return p
		}
		return r // r < p <= q
	}
	if q <= r { // q < p && q <= r
		return q
	}
	return r // r < q < p
}

// Restrict returns the cofactor of f with respect to terminal t: the
// function obtained by fixing t to the given value. A function that does not
// mention t, and in particular one built before t was ever used, is returned
// unchanged.
func (b *BDD[T]) Restrict(f Func, t T, value bool) Func {
	r, ok := b.ranks[t]
	if !ok {
		return f
	}
	return b.restrict(f, r, value)
}

type restrictTask struct {
	f     Func
	level int32
	post  bool
}

func (b *BDD[T]) restrict(f Func, level int32, value bool) Func {
	// the memo table is scoped to one restriction since its entries depend
	// on (level, value)
	memo := make(map[Func]Func)
	todo := []restrictTask{{f: f}}
	var out []Func
	for len(todo) > 0 {
		t := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		if t.post {
			high := out[len(out)-1]
			out = out[:len(out)-1]
			low := out[len(out)-1]
			res := b.mknode(t.level, low, high)
			memo[t.f] = res
			out[len(out)-1] = res
			continue
		}
		l := b.level(t.f)
		if l > level {
			// the restricted variable cannot occur below this point
			out = append(out, t.f)
			continue
		}
		if l == level {
			if value {
				out = append(out, b.high(t.f))
			} else {
				out = append(out, b.low(t.f))
			}
			continue
		}
		if res, ok := memo[t.f]; ok {
			out = append(out, res)
			continue
		}
		n := b.nodes[t.f]
		todo = append(todo,
			restrictTask{f: t.f, level: n.level, post: true},
			restrictTask{f: n.high},
			restrictTask{f: n.low},
		)
	}
	return out[0]
}

// Exist returns the existential quantification of f over the given
// terminals: for each terminal the two cofactors of the intermediate result
// are disjoined. Unknown terminals are skipped.
func (b *BDD[T]) Exist(f Func, ts ...T) Func {
	for _, t := range ts {
		r, ok := b.ranks[t]
		if !ok {
			continue
		}
		f = b.apply(OPor, b.restrict(f, r, false), b.restrict(f, r, true))
	}
	return f
}

// And returns the logical 'and' of a sequence of functions. With no argument
// it returns the constant true.
func (b *BDD[T]) And(n ...Func) Func {
	res := bddone
	for i := len(n) - 1; i >= 0; i-- {
		res = b.apply(OPand, n[i], res)
	}
	return res
}

// Or returns the logical 'or' of a sequence of functions. With no argument
// it returns the constant false.
func (b *BDD[T]) Or(n ...Func) Func {
	res := bddzero
	for i := len(n) - 1; i >= 0; i-- {
		res = b.apply(OPor, n[i], res)
	}
	return res
}

// Xor returns the exclusive or of two functions.
func (b *BDD[T]) Xor(f, g Func) Func {
	return b.apply(OPxor, f, g)
}

// Imp returns the logical 'implication' between two functions.
func (b *BDD[T]) Imp(f, g Func) Func {
	return b.apply(OPimp, f, g)
}

// Equiv returns the logical 'bi-implication' between two functions.
func (b *BDD[T]) Equiv(f, g Func) Func {
	return b.apply(OPbiimp, f, g)
}

// Equal tests equivalence between functions. Within one BDD canonicity makes
// this an integer comparison.
func (b *BDD[T]) Equal(f, g Func) bool {
	return f == g
}

// Satcount computes the number of satisfying variable assignments for the
// function denoted by f, over the variables known to the BDD when it is
// called. The result uses arbitrary-precision arithmetic to avoid overflows
// when there are many variables.
func (b *BDD[T]) Satcount(f Func) *big.Int {
	// each variable level skipped above the root doubles the count
	res := big.NewInt(0)
	res.SetBit(res, int(b.level(f)), 1)
	satc := make(map[Func]*big.Int)
	return res.Mul(res, b.satcount(f, satc))
}

type satTask struct {
	f    Func
	post bool
}

// satcount weights each child count by two to the power of the number of
// don't-care levels skipped on the way to that child. Counts are memoized
// per call since the weights depend on the current number of variables.
func (b *BDD[T]) satcount(f Func, satc map[Func]*big.Int) *big.Int {
	todo := []satTask{{f: f}}
	var out []*big.Int
	for len(todo) > 0 {
		t := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		if t.post {
			high := out[len(out)-1]
			out = out[:len(out)-1]
			low := out[len(out)-1]
			n := b.nodes[t.f]
			res := big.NewInt(0)
			w := big.NewInt(0)
			w.SetBit(w, int(b.level(n.low)-n.level-1), 1)
			res.Add(res, w.Mul(w, low))
			w = big.NewInt(0)
			w.SetBit(w, int(b.level(n.high)-n.level-1), 1)
			res.Add(res, w.Mul(w, high))
			satc[t.f] = res
			out[len(out)-1] = res
			continue
		}
		if t.f < 2 {
			out = append(out, big.NewInt(int64(t.f)))
			continue
		}
		if res, ok := satc[t.f]; ok {
			out = append(out, res)
			continue
		}
		n := b.nodes[t.f]
		todo = append(todo,
			satTask{f: t.f, post: true},
			satTask{f: n.high},
			satTask{f: n.low},
		)
	}
	return out[0]
}

// AllSat iterates through all legal variable assignments for f and calls the
// function fn on each of them. We pass an int slice of length Varnum to fn
// where each entry is either 0 if the variable is false, 1 if it is true,
// and -1 if it is a don't care. We stop and return an error if fn returns an
// error at some point. The profile slice is reused between calls, so fn must
// copy it if it needs to retain it.
func (b *BDD[T]) AllSat(f Func, fn func([]int) error) error {
	prof := make([]int, len(b.terms))
	for k := range prof {
		prof[k] = -1
	}
	// recursion depth is bounded by the number of variables
	return b.allsat(f, prof, fn)
}

func (b *BDD[T]) allsat(f Func, prof []int, fn func([]int) error) error {
	if f == bddone {
		return fn(prof)
	}
	if f == bddzero {
		return nil
	}
	n := b.nodes[f]
	if low := n.low; low != bddzero {
		prof[n.level] = 0
		for v := b.level(low) - 1; v > n.level; v-- {
			prof[v] = -1
		}
		if err := b.allsat(low, prof, fn); err != nil {
			return err
		}
	}
	if high := n.high; high != bddzero {
		prof[n.level] = 1
		for v := b.level(high) - 1; v > n.level; v-- {
			prof[v] = -1
		}
		if err := b.allsat(high, prof, fn); err != nil {
			return err
		}
	}
	prof[n.level] = -1
	return nil
}

// AllNodes applies fn over all the nodes reachable from the functions in
// f, or over the whole node table if f is absent. The parameters to fn are
// the id, level, and ids of the low and high successors of each node. The
// two constant nodes always have ids 0 and 1 and are always reported. Nodes
// are visited in increasing id order. We stop and return an error if fn
// returns an error at some point.
func (b *BDD[T]) AllNodes(fn func(id, level, low, high int) error, f ...Func) error {
	varnum := len(b.terms)
	if err := fn(0, varnum, 0, 0); err != nil {
		return err
	}
	if err := fn(1, varnum, 1, 1); err != nil {
		return err
	}
	if len(f) == 0 {
		for k := 2; k < len(b.nodes); k++ {
			n := b.nodes[k]
			if err := fn(k, int(n.level), int(n.low), int(n.high)); err != nil {
				return err
			}
		}
		return nil
	}
	for _, id := range b.reachable(f...) {
		if id < 2 {
			continue
		}
		n := b.nodes[id]
		if err := fn(int(id), int(n.level), int(n.low), int(n.high)); err != nil {
			return err
		}
	}
	return nil
}

// reachable returns the ids of the nodes reachable from the given roots,
// constants included, in increasing id order.
func (b *BDD[T]) reachable(f ...Func) []Func {
	seen := make(map[Func]bool)
	stack := append([]Func{}, f...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[n] {
			continue
		}
		seen[n] = true
		if n > 1 {
			stack = append(stack, b.nodes[n].low, b.nodes[n].high)
		}
	}
	res := make([]Func, 0, len(seen))
	for n := range seen {
		res = append(res, n)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}
