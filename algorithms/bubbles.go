// File: bubbles.go
// Role: bubble detection and removal — enumerate alternative short
//       paths between a branching source and a re-merging target, then
//       either count disjoint pairs or keep the heaviest path and
//       delete its disjoint alternates.
package algorithms

import (
	"sort"

	"github.com/katalvlaran/debruijn/core"
	"github.com/soniakeys/bits"
)

// bubbleKey identifies a (source, target) bucket of candidate paths.
type bubbleKey struct {
	s, t core.NodeID
}

// path is a vertex-simple sequence of node ids, p[0] == s, p[len(p)-1] == c.
type path []core.NodeID

// enumeratePaths runs a vertex-simple DFS from every vertex with
// out-degree > 1, bounded to threshold edges, recording a candidate
// path every time the walk reaches a vertex c != s with in-degree > 1.
// All such candidates are kept, including multiple candidates sharing
// the same (s, t).
//
// Complexity: O(V * branching-factor^threshold), bounded in practice by
// threshold being O(k) and de Bruijn graphs having small out-degree.
func enumeratePaths(g *core.Graph, threshold int) map[bubbleKey][]path {
	candidates := make(map[bubbleKey][]path)
	n := g.NodeCount()

	for _, s := range g.Nodes() {
		if g.OutDegree(s) <= 1 {
			continue
		}

		cur := path{s}
		onPath := bits.New(n)
		onPath.SetBit(int(s), 1)

		var dfs func(current core.NodeID, depth int)
		dfs = func(current core.NodeID, depth int) {
			if current != s && g.InDegree(current) > 1 {
				key := bubbleKey{s, current}
				cp := append(path(nil), cur...)
				candidates[key] = append(candidates[key], cp)
			}
			if depth == threshold {
				return
			}

			for _, next := range g.OutNeighbors(current) {
				if onPath.Bit(int(next)) != 0 {
					continue
				}
				onPath.SetBit(int(next), 1)
				cur = append(cur, next)
				dfs(next, depth+1)
				cur = cur[:len(cur)-1]
				onPath.SetBit(int(next), 0)
			}
		}
		dfs(s, 0)
	}

	return candidates
}

// CountBubbles reports the number of distinct bubbles: for every
// (source, target) bucket, the number of unordered candidate pairs whose
// vertex sets intersect in exactly the two endpoints. The graph is not
// modified.
func CountBubbles(g *core.Graph, threshold int) int {
	candidates := enumeratePaths(g, threshold)

	count := 0
	for _, list := range candidates {
		for i := 0; i < len(list); i++ {
			for j := i + 1; j < len(list); j++ {
				if sharesOnlyEndpoints(list[i], list[j]) {
					count++
				}
			}
		}
	}

	return count
}

// RemoveBubbles enumerates bubbles exactly as CountBubbles does, then for
// each (source, target) bucket keeps the candidate with the highest
// average coverage weight and deletes every other candidate that is
// still vertex-disjoint from the keeper (except at the shared endpoints)
// and whose edges still all exist, re-checking that a bubble is still
// possible before each deletion. Buckets are processed in ascending
// (source, target) id order. Returns the number of edges removed.
func RemoveBubbles(g *core.Graph, threshold int) int {
	candidates := enumeratePaths(g, threshold)

	keys := make([]bubbleKey, 0, len(candidates))
	for key := range candidates {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].s != keys[j].s {
			return keys[i].s < keys[j].s
		}
		return keys[i].t < keys[j].t
	})

	removed := 0
	for _, key := range keys {
		list := candidates[key]
		if len(list) == 0 {
			continue
		}

		keeper := bestPath(g, list)
		for _, p := range list {
			if pathsEqual(p, keeper) {
				continue
			}
			if !bubblePossible(g, key.s, key.t) {
				continue
			}
			if !sharesOnlyEndpoints(p, keeper) {
				continue
			}
			if !pathExists(g, p) {
				continue
			}

			removed += deletePath(g, p)
		}
	}

	return removed
}

// bubblePossible re-checks that a bubble can still be removed: only
// while s remains a branch and t remains a merge point.
func bubblePossible(g *core.Graph, s, t core.NodeID) bool {
	return g.OutDegree(s) > 1 && g.InDegree(t) > 1
}

// pathExists reports whether every edge of p is still present in g.
// Missing edges are a normal consequence of cascading deletions and
// simply make the path ineligible for removal, not an error.
func pathExists(g *core.Graph, p path) bool {
	for i := 0; i+1 < len(p); i++ {
		if !g.HasEdge(p[i], p[i+1]) {
			return false
		}
	}

	return true
}

// deletePath removes every edge of p and reports how many were actually
// deleted (an edge already gone counts as zero, per the same
// stale-path-is-not-an-error policy as RemoveEdge).
func deletePath(g *core.Graph, p path) int {
	n := 0
	for i := 0; i+1 < len(p); i++ {
		if g.RemoveEdge(p[i], p[i+1]) {
			n++
		}
	}

	return n
}

// sharesOnlyEndpoints reports whether a and b's vertex sets intersect in
// exactly two vertices (their shared source and target).
func sharesOnlyEndpoints(a, b path) bool {
	set := make(map[core.NodeID]bool, len(a))
	for _, v := range a {
		set[v] = true
	}

	shared := 0
	seen := make(map[core.NodeID]bool, len(b))
	for _, v := range b {
		if seen[v] {
			continue
		}
		seen[v] = true
		if set[v] {
			shared++
		}
	}

	return shared == 2
}

// averageCoverageWeight is the sum of coverage over p's edges divided by
// its vertex count. A missing coverage entry contributes 0, per the same
// "stale path, not an error" policy used elsewhere — such a path will
// fail pathExists before it is ever acted on, so this only affects which
// candidate sorts highest.
func averageCoverageWeight(g *core.Graph, p path) float64 {
	sum := 0
	for i := 0; i+1 < len(p); i++ {
		c, _ := g.CoverageOf(p[i], p[i+1])
		sum += c
	}

	return float64(sum) / float64(len(p))
}

// bestPath selects the candidate with the highest average coverage
// weight. Ties are broken deterministically by the lexicographically
// smallest vertex-id sequence, so the same input always keeps the same
// path.
func bestPath(g *core.Graph, list []path) path {
	best := list[0]
	bestWeight := averageCoverageWeight(g, best)

	for _, p := range list[1:] {
		w := averageCoverageWeight(g, p)
		switch {
		case w > bestWeight:
			best, bestWeight = p, w
		case w == bestWeight && lexLess(p, best):
			best = p
		}
	}

	return best
}

// lexLess reports whether a sorts before b as a sequence of node ids.
func lexLess(a, b path) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}

func pathsEqual(a, b path) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
