// Copyright (c) 2026 The boolexpr authors
//
// MIT License

package boolexpr

import "errors"

// _MAXVAR is the maximal number of variable levels in a BDD. Levels are
// stored as int32 and we keep the same 21 bit budget on every architecture.
const _MAXVAR int32 = 0x1FFFFF

// ErrTooManyNodes is carried by the panic raised when the node table cannot
// grow any further, either because the Maxnodesize limit was reached or
// because the id space is exhausted. The condition is not recoverable:
// continuing with a truncated table would break canonicity.
var ErrTooManyNodes = errors.New("node table exhausted")

// ErrTooManyVars is carried by the panic raised when the variable space is
// exhausted.
var ErrTooManyVars = errors.New("too many variables")
