// Copyright (c) 2026 The boolexpr authors
//
// MIT License

/*
Package boolexpr provides Boolean logic expressions over free variables
(terminals) together with two canonicalization engines: a structural
simplifier producing sum-of-products expression trees, and Reduced Ordered
Binary Decision Diagrams (ROBDD) for canonical, memory-shared representations
of Boolean functions.

# Expressions

An Expr is an owned tree built from terminals, constants, and the operations
NOT, AND and OR. Terminals can be of any ordered type (the type parameter is
constrained by cmp.Ordered), so variables can be named with strings, indexed
with integers, etc. Expressions support evaluation under an assignment (a map
from terminals to Booleans, with unassigned terminals reading as false) and
structural simplification with Simplify, which rewrites a tree into
sum-of-products form using De Morgan's laws, distribution of AND over OR, and
constant identities.

# Binary Decision Diagrams

A BDD holds a growable, append-only table of nodes together with a unicity
table that guarantees each (variable, low, high) triplet appears at most
once. Functions are designated by values of type Func, which are plain
indexes into the node table: the constants False and True sit at index 0 and
1, and two Func values built through the same BDD denote the same Boolean
function exactly when they are equal. Each terminal is assigned a variable
level on first use, in encounter order; Declare can be used to fix the
ordering up front.

Most operations are built on the generic Apply combinator, which combines two
functions with any of the binary operators listed with the Operator type, and
on Ite, the if-then-else composition. Both memoize their intermediate results
for the lifetime of the BDD, so repeated constructions over shared subgraphs
stay proportional to the product of the operand graph sizes. FromExpr
composes these operations following the structure of an expression tree, and
works identically on raw and simplified trees.

# Memory model

The node table only ever grows; nodes are never garbage collected or moved,
so a Func remains valid for as long as its BDD lives. The only failure
condition is exhaustion of the node table (or of the variable space), which
is signaled by a panic carrying ErrTooManyNodes or ErrTooManyVars: there is
no notion of an invalid Boolean formula, and continuing with a truncated
table would silently break canonicity. A BDD is not safe for concurrent use;
callers that share one across goroutines must add their own synchronization.
*/
package boolexpr
