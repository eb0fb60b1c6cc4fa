// File: debruijn.go
// Role: de Bruijn graph construction: for each k-mer w, split it into
//       left = w[:k-1] and right = w[1:], intern both as nodes, and
//       insert-or-bump the edge left -> right.
package builder

import "github.com/katalvlaran/debruijn/core"

// Build fragments reads into k-mers (via Kmers) and folds them into a
// fresh core.Graph, following the insert-or-bump rule in debruijn.go's
// package comment above. Self-loops (left == right) are skipped before
// interning — such a k-mer never touches the graph at all, not even to
// register its node.
//
// Returns ErrNoReads if reads is empty, ErrKTooSmall if WithK wasn't
// given a value >= 1.
func Build(reads []string, opts ...Option) (*core.Graph, error) {
	cfg := newConfig(opts...)
	if cfg.k < 1 {
		return nil, ErrKTooSmall
	}
	if len(reads) == 0 {
		return nil, ErrNoReads
	}

	g := core.NewGraph()
	for _, w := range Kmers(reads, cfg.k) {
		left, right := w[:len(w)-1], w[1:]
		if left == right {
			continue
		}

		u, err := g.Intern(left)
		if err != nil {
			return nil, err
		}
		v, err := g.Intern(right)
		if err != nil {
			return nil, err
		}

		if err := g.AddEdge(u, v); err != nil {
			return nil, err
		}
	}

	return g, nil
}
