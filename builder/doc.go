// Package builder fragments reads into k-mers and folds them into a
// core.Graph de Bruijn graph.
//
// The key type is Option, a function that mutates a config. config holds
// one field today — k, the k-mer length — kept as a resolved-options
// struct rather than a bare parameter so later knobs (a custom alphabet,
// a read-length validator) have somewhere to live without breaking
// Build's signature.
//
// Use newConfig to obtain defaults, then apply any number of Option.
// Later options override earlier ones.
package builder

import "errors"

// Sentinel errors for builder-stage input validation: empty input, k
// too small.
var (
	// ErrNoReads indicates the input read set was empty.
	ErrNoReads = errors.New("builder: no reads")

	// ErrKTooSmall indicates k < 1, which cannot yield a (k-1)-mer node.
	ErrKTooSmall = errors.New("builder: k too small")
)
