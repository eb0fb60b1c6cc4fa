// File: spell.go
// Role: genome spelling — collapse an Eulerian cycle of k-1-mer nodes
// back into a single circular genome string.
package algorithms

import "github.com/katalvlaran/debruijn/core"

// Spell reconstructs the genome a cycle traverses: the first node
// contributes its full label, and every subsequent node up to
// c_{m-(k-1)} contributes only its last character, since consecutive
// labels in the cycle overlap in their first k-2 characters by
// construction. The trailing k-1 nodes (including cₘ, which duplicates
// c₀) are dropped entirely to avoid spelling the circular wrap-around
// twice.
func Spell(g *core.Graph, cycle []core.NodeID, k int) (string, error) {
	if len(cycle) < 2 || len(cycle) <= k {
		return "", ErrCannotAssemble
	}

	first, err := g.LabelOf(cycle[0])
	if err != nil {
		return "", err
	}

	end := len(cycle) - k + 1 // exclusive; last included index is len(cycle)-k
	buf := make([]byte, 0, len(first)+end-1)
	buf = append(buf, first...)

	for _, id := range cycle[1:end] {
		label, err := g.LabelOf(id)
		if err != nil {
			return "", err
		}
		if len(label) == 0 {
			continue
		}
		buf = append(buf, label[len(label)-1])
	}

	return string(buf), nil
}
