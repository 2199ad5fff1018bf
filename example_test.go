// Copyright (c) 2026 The boolexpr authors
//
// MIT License

package boolexpr_test

import (
	"fmt"

	"github.com/boolexpr-go/boolexpr"
)

// This example shows the basic usage of the package: build a function from
// variables, then count its satisfying assignments.
func Example_basic() {
	b := boolexpr.New[string]()
	// f == (x1 & x2) | !x3
	f := b.Or(b.And(b.Var("x1"), b.Var("x2")), b.NVar("x3"))
	fmt.Printf("Number of sat. assignments: %s\n", b.Satcount(f))
	// Output:
	// Number of sat. assignments: 5
}

// Simplification rewrites expressions into sum-of-products form, here by
// pushing the negation through the disjunction with De Morgan's law.
func ExampleSimplify() {
	e := boolexpr.Not(boolexpr.Or(boolexpr.Terminal("a"), boolexpr.Terminal("b")))
	fmt.Println(boolexpr.Simplify(e))
	// Output:
	// (!a & !b)
}

// The DOT export draws low branches dashed and high branches solid, with the
// constants as boxes.
func ExampleBDD_ToDot() {
	b := boolexpr.New[string]()
	fmt.Print(b.ToDot(b.Var("x")))
	// Output:
	// digraph G {
	// 0 [shape=box, label="0", style=filled, height=0.3, width=0.3];
	// 1 [shape=box, label="1", style=filled, height=0.3, width=0.3];
	// 2 [label="x"];
	// 2 -> 0 [style=dashed];
	// 2 -> 1 [style=solid];
	// }
}
