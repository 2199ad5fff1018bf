// Copyright (c) 2026 The boolexpr authors
//
// MIT License

package boolexpr

// Operator describes the binary operations available with Apply.
type Operator int

const (
	OPand    Operator = iota // Boolean conjunction
	OPxor                    // Exclusive or
	OPor                     // Disjunction
	OPnand                   // Negation of and
	OPnor                    // Negation of or
	OPimp                    // Implication
	OPbiimp                  // Equivalence
	OPdiff                   // Set difference
	OPless                   // Less than
	OPinvimp                 // Reverse implication
)

var opnames = [10]string{
	OPand:    "and",
	OPxor:    "xor",
	OPor:     "or",
	OPnand:   "nand",
	OPnor:    "nor",
	OPimp:    "imp",
	OPbiimp:  "biimp",
	OPdiff:   "diff",
	OPless:   "less",
	OPinvimp: "invimp",
}

func (op Operator) String() string {
	return opnames[op]
}

// opres gives the result of each operator when both operands are constants.
var opres = [10][2][2]Func{
	//                          00    01               10    11
	OPand:    {0: [2]Func{0: 0, 1: 0}, 1: [2]Func{0: 0, 1: 1}}, // 0001
	OPxor:    {0: [2]Func{0: 0, 1: 1}, 1: [2]Func{0: 1, 1: 0}}, // 0110
	OPor:     {0: [2]Func{0: 0, 1: 1}, 1: [2]Func{0: 1, 1: 1}}, // 0111
	OPnand:   {0: [2]Func{0: 1, 1: 1}, 1: [2]Func{0: 1, 1: 0}}, // 1110
	OPnor:    {0: [2]Func{0: 1, 1: 0}, 1: [2]Func{0: 0, 1: 0}}, // 1000
	OPimp:    {0: [2]Func{0: 1, 1: 1}, 1: [2]Func{0: 0, 1: 1}}, // 1101
	OPbiimp:  {0: [2]Func{0: 1, 1: 0}, 1: [2]Func{0: 0, 1: 1}}, // 1001
	OPdiff:   {0: [2]Func{0: 0, 1: 0}, 1: [2]Func{0: 1, 1: 0}}, // 0010
	OPless:   {0: [2]Func{0: 0, 1: 1}, 1: [2]Func{0: 0, 1: 0}}, // 0100
	OPinvimp: {0: [2]Func{0: 1, 1: 0}, 1: [2]Func{0: 1, 1: 1}}, // 1011
}

// opcommutes marks the operators whose operands can be swapped, which lets
// apply canonicalize memoization keys and halve the cache footprint.
var opcommutes = [10]bool{
	OPand:   true,
	OPxor:   true,
	OPor:    true,
	OPnand:  true,
	OPnor:   true,
	OPbiimp: true,
}
