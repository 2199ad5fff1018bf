// Copyright (c) 2026 The boolexpr authors
//
// MIT License

package boolexpr

// configs stores the values of the tunable parameters of a BDD.
type configs struct {
	nodesize    int // initial capacity of the node table
	cachesize   int // initial capacity of the operation caches
	maxnodesize int // maximum total number of nodes (0 if no limit)
}

func makeconfigs() *configs {
	return &configs{
		nodesize:  128,
		cachesize: 128,
	}
}

// Option is a configuration function that can be passed to New.
type Option func(*configs)

// Nodesize is a configuration option (function). Used as a parameter in New
// it sets a preferred initial capacity for the node table. The table grows
// during computation regardless, but a good initial value avoids repeated
// reallocations on large examples.
func Nodesize(size int) Option {
	return func(c *configs) {
		if size > 2 {
			c.nodesize = size
		}
	}
}

// Cachesize is a configuration option (function). Used as a parameter in New
// it sets the initial capacity of the operation caches. Caches are retained
// and keep growing for the lifetime of the BDD, so this only sizes the first
// allocation.
func Cachesize(size int) Option {
	return func(c *configs) {
		if size > 0 {
			c.cachesize = size
		}
	}
}

// Maxnodesize is a configuration option (function). Used as a parameter in
// New it sets a limit to the number of nodes in the BDD. An operation trying
// to raise the number of nodes above this limit panics with ErrTooManyNodes.
// The default value (0) means that there is no limit, in which case
// allocation can panic if all available memory is exhausted.
func Maxnodesize(size int) Option {
	return func(c *configs) {
		c.maxnodesize = size
	}
}
