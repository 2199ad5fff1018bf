// Copyright (c) 2026 The boolexpr authors
//
// MIT License

// Command boolexpr demonstrates the library: it builds the exclusive or of
// three variables in two different ways, checks that both constructions
// collapse to the same canonical function, and prints the resulting diagram
// in GraphViz DOT format.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/boolexpr-go/boolexpr"
)

var (
	simplifyFlag bool
	satFlag      bool
	verboseFlag  bool
	outputFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "boolexpr",
	Short: "Boolean expression simplification and BDD demonstration",
	Long: `boolexpr builds XOR(A, B, C) both as a sum-of-products expression and
as a nested if-then-else composition, verifies that the two constructions
yield the same canonical function, and emits the shared diagram as a
GraphViz DOT graph.`,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().BoolVar(&simplifyFlag, "simplify", false, "simplify the expression before building the diagram")
	rootCmd.Flags().BoolVar(&satFlag, "sat", false, "print the number of satisfying assignments")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "log expression and diagram statistics")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "-", "write the DOT graph to this file instead of stdout")
}

// xorExpr returns the exclusive or of three terminals in disjunctive form:
// one disjunct per odd-parity assignment.
func xorExpr(a, b, c string) *boolexpr.Expr[string] {
	ta, tb, tc := boolexpr.Terminal(a), boolexpr.Terminal(b), boolexpr.Terminal(c)
	return boolexpr.Or(
		boolexpr.And(ta, boolexpr.Not(tb), boolexpr.Not(tc)),
		boolexpr.And(boolexpr.Not(ta), tb, boolexpr.Not(tc)),
		boolexpr.And(boolexpr.Not(ta), boolexpr.Not(tb), tc),
		boolexpr.And(ta, tb, tc),
	)
}

func run(cmd *cobra.Command, args []string) error {
	expr := xorExpr("A", "B", "C")
	if verboseFlag {
		logrus.Infof("expression: %s", expr)
	}
	if simplifyFlag {
		expr = boolexpr.Simplify(expr)
		if verboseFlag {
			logrus.Infof("simplified: %s", expr)
		}
	}

	b := boolexpr.New[string]()
	f := b.FromExpr(expr)

	// the same function through nested if-then-else composition
	bc := b.Ite(b.Var("B"), b.NVar("C"), b.Var("C"))
	g := b.Ite(b.Var("A"), b.Not(bc), bc)
	if !b.Equal(f, g) {
		return fmt.Errorf("canonicity violation: %s and %s differ", b.Print(f), b.Print(g))
	}
	if verboseFlag {
		logrus.Infof("both constructions reduce to %s", b.Print(f))
		for _, line := range strings.Split(b.Stats(), "\n") {
			logrus.Info(line)
		}
	}
	if satFlag {
		fmt.Printf("Number of sat. assignments: %s\n", b.Satcount(f))
	}
	return b.FPrintDot(outputFlag, f)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
