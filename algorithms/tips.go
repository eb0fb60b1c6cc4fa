// File: tips.go
// Role: tip removal — depth-bounded pruning of dead-end paths attached
//       to a branching or source vertex.
package algorithms

import "github.com/katalvlaran/debruijn/core"

// RemoveTips deletes every tip in g that the depth-bounded probes below
// confirm, iterating over every node exactly once. A single
// outer pass suffices because confirming a tip restarts iteration over
// the examined vertex's outgoing set, letting cascading deletions expose
// and remove further tips on the same vertex before moving on.
//
// RemoveTips classifies each vertex u it visits as:
//   - a source (out-degree 1, in-degree 0): probe inward from u's lone
//     neighbor, walking the linear chain until a non-(1,1) vertex
//     confirms the tip or the depth bound is reached. A confirmed
//     inward tip has at most threshold edges.
//   - a branch (out-degree > 1): probe outward from each neighbor,
//     walking the linear chain until a dead end confirms the tip, a
//     branch/merge rules it out, or the depth bound is reached. The
//     dead end may lie up to threshold steps past the neighbor, so a
//     confirmed outward tip has at most threshold+1 edges.
//
// Returns the number of edges removed, counting every edge along a
// confirmed tip's full chain, not just the one incident to u.
//
// Complexity: O(V * threshold) — each vertex's probes are bounded by
// threshold, and threshold is O(k).
func RemoveTips(g *core.Graph, threshold int) int {
	removed := 0

	for _, u := range g.Nodes() {
		out, in := g.OutDegree(u), g.InDegree(u)

		var isTip func(v core.NodeID) bool
		switch {
		case out == 1 && in == 0:
			isTip = func(v core.NodeID) bool { return inwardTip(g, v, 0, threshold, &removed) }
		case out > 1:
			isTip = func(v core.NodeID) bool { return outwardTip(g, v, 0, threshold, &removed) }
		default:
			continue
		}

		for {
			neighbors := append([]core.NodeID(nil), g.OutNeighbors(u)...) // snapshot
			found := false
			for _, v := range neighbors {
				if !isTip(v) {
					continue
				}
				g.RemoveEdge(u, v)
				removed++
				found = true
				break
			}
			if !found {
				break
			}
		}
	}

	return removed
}

// outwardTip reports whether the path rooted at current is a tip: it
// must reach a dead end (out-degree 0) within threshold steps without
// passing through any vertex that branches (out-degree > 1) or is a
// merge point (in-degree > 1). Confirmed tips are deleted edge-by-edge
// as the recursion unwinds, incrementing removed for each edge dropped
// below current; the caller still deletes the first edge of the chain.
func outwardTip(g *core.Graph, current core.NodeID, depth, threshold int, removed *int) bool {
	if g.OutDegree(current) > 1 || g.InDegree(current) > 1 {
		return false
	}
	if g.OutDegree(current) == 0 {
		return true
	}
	if depth == threshold {
		return false
	}

	next := g.OutNeighbors(current)[0]
	if outwardTip(g, next, depth+1, threshold, removed) {
		g.RemoveEdge(current, next)
		*removed++

		return true
	}

	return false
}

// inwardTip reports whether the linear chain starting at current is a
// tip: walk forward through single-entry (out-degree 1, in-degree 1)
// vertices until a vertex departing from that shape confirms the tip, or
// the depth bound is exceeded.
func inwardTip(g *core.Graph, current core.NodeID, depth, threshold int, removed *int) bool {
	if depth == threshold {
		return false
	}
	if g.OutDegree(current) != 1 || g.InDegree(current) != 1 {
		return true
	}

	next := g.OutNeighbors(current)[0]
	if inwardTip(g, next, depth+1, threshold, removed) {
		g.RemoveEdge(current, next)
		*removed++

		return true
	}

	return false
}
