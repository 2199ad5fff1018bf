// Copyright (c) 2026 The boolexpr authors
//
// MIT License

package boolexpr

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Dot writes a graph-like description of the subgraph reachable from f using
// the GraphViz DOT format. Constant nodes are drawn as boxes labeled "0" and
// "1", internal nodes are labeled with their terminal, low branches are
// drawn dashed and high branches solid. The output is deterministic for a
// given BDD: nodes appear in increasing id order, each exactly once, with
// one edge statement per branch.
func (b *BDD[T]) Dot(w io.Writer, f Func) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	for _, v := range b.reachable(f) {
		if v < 2 {
			fmt.Fprintf(bw, "%d [shape=box, label=\"%d\", style=filled, height=0.3, width=0.3];\n", v, v)
			continue
		}
		n := b.nodes[v]
		fmt.Fprintf(bw, "%d [label=\"%v\"];\n", v, b.terms[n.level])
		fmt.Fprintf(bw, "%d -> %d [style=dashed];\n", v, n.low)
		fmt.Fprintf(bw, "%d -> %d [style=solid];\n", v, n.high)
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// ToDot returns the DOT description of the subgraph reachable from f. See
// Dot.
func (b *BDD[T]) ToDot(f Func) string {
	var sb strings.Builder
	_ = b.Dot(&sb, f) // writes to a Builder cannot fail
	return sb.String()
}

// FPrintDot writes the DOT description of the subgraph reachable from f to
// the named file, or to the standard output if filename is "-".
func (b *BDD[T]) FPrintDot(filename string, f Func) error {
	if filename == "-" {
		return b.Dot(os.Stdout, f)
	}
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer out.Close()
	return b.Dot(out, f)
}

// Print returns a one-line description of node f.
func (b *BDD[T]) Print(f Func) string {
	if f == bddzero {
		return "False"
	}
	if f == bddone {
		return "True"
	}
	if f < 0 || int(f) >= len(b.nodes) {
		return fmt.Sprintf("Error (%d not a valid index)", f)
	}
	n := b.nodes[f]
	return fmt.Sprintf("(%d[%v] ? %d : %d)", f, b.terms[n.level], n.high, n.low)
}

// Stats returns information about the BDD: the number of variables and
// nodes, and the hit rates of the unicity table and of the operation caches.
func (b *BDD[T]) Stats() string {
	res := fmt.Sprintf("Varnum:     %d\n", len(b.terms))
	res += fmt.Sprintf("Allocated:  %d\n", len(b.nodes))
	res += fmt.Sprintf("Produced:   %d\n", b.produced)
	res += "==============\n"
	res += fmt.Sprintf("Unique Access:  %d\n", b.uniqueAccess)
	res += fmt.Sprintf("Unique Hit:     %d\n", b.uniqueHit)
	res += fmt.Sprintf("Unique Miss:    %d\n", b.uniqueMiss)
	res += "==============\n"
	res += fmt.Sprintf("Apply cache:    %d\n", len(b.applycache))
	res += fmt.Sprintf("Not cache:      %d\n", len(b.notcache))
	res += fmt.Sprintf("Ite cache:      %d", len(b.itecache))
	return res
}
