// File: methods_edges.go
// Role: edge lifecycle — AddEdge (build-time insert-or-bump coverage)
//       and RemoveEdge (tip/bubble-removal deletion), plus the
//       read-only adjacency/coverage queries every later stage needs.
package core

// AddEdge records one occurrence of the directed edge (u, v), following
// the builder's insert-or-bump rule:
//
//   - u == v is rejected with ErrSelfLoop (self-loops are never recorded).
//   - if v is not already in outgoing(u): insert it, increment
//     indegree(v), set coverage[(u,v)] = 1.
//   - if v is already in outgoing(u): increment coverage[(u,v)] only.
//
// Both u and v must already be valid node ids (the caller interns them
// first); AddEdge itself never interns labels.
func (g *Graph) AddEdge(u, v NodeID) error {
	if u == v {
		return ErrSelfLoop
	}
	if !g.HasNode(u) || !g.HasNode(v) {
		return ErrUnknownNode
	}

	key := edgeKey{u, v}
	if g.outIndex[u] == nil {
		g.outIndex[u] = make(map[NodeID]int)
	}
	if _, present := g.outIndex[u][v]; !present {
		g.outIndex[u][v] = len(g.outgoing[u])
		g.outgoing[u] = append(g.outgoing[u], v)
		g.indegree[v]++
		g.coverage[key] = 1

		return nil
	}

	g.coverage[key]++

	return nil
}

// RemoveEdge deletes the directed edge (u, v): it is dropped from
// outgoing(u), indegree(v) is decremented, and coverage[(u,v)] is
// erased. Removal is a swap-with-last on outgoing(u) (order among the
// remaining neighbors of u is otherwise preserved) so both the slice and
// outIndex stay O(1) to update.
//
// RemoveEdge is a no-op returning false if (u, v) is not currently an
// edge — callers (tip/bubble removal) rely on this to treat a stale edge
// reference as "path no longer exists" rather than an error.
func (g *Graph) RemoveEdge(u, v NodeID) bool {
	if !g.HasNode(u) {
		return false
	}
	pos, present := g.outIndex[u][v]
	if !present {
		return false
	}

	last := len(g.outgoing[u]) - 1
	moved := g.outgoing[u][last]
	g.outgoing[u][pos] = moved
	g.outgoing[u] = g.outgoing[u][:last]
	g.outIndex[u][moved] = pos
	delete(g.outIndex[u], v)

	g.indegree[v]--
	delete(g.coverage, edgeKey{u, v})

	return true
}

// OutNeighbors returns u's outgoing neighbors in first-seen order, except
// that each RemoveEdge on u moves u's last neighbor into the freed slot. The
// returned slice aliases Graph-internal storage and must be treated as a
// snapshot: callers that mutate the graph while iterating must copy it
// first and restart, since removal is a swap-with-last in place.
func (g *Graph) OutNeighbors(u NodeID) []NodeID {
	if !g.HasNode(u) {
		return nil
	}

	return g.outgoing[u]
}

// OutDegree returns the number of distinct outgoing neighbors of u.
func (g *Graph) OutDegree(u NodeID) int {
	if !g.HasNode(u) {
		return 0
	}

	return len(g.outgoing[u])
}

// InDegree returns the number of distinct edges incoming to v.
func (g *Graph) InDegree(v NodeID) int {
	if !g.HasNode(v) {
		return 0
	}

	return g.indegree[v]
}

// HasEdge reports whether (u, v) is currently an edge.
func (g *Graph) HasEdge(u, v NodeID) bool {
	if !g.HasNode(u) {
		return false
	}
	_, present := g.outIndex[u][v]

	return present
}

// CoverageOf returns the coverage of edge (u, v) and whether it exists.
func (g *Graph) CoverageOf(u, v NodeID) (int, bool) {
	c, ok := g.coverage[edgeKey{u, v}]

	return c, ok
}

// EdgeCount returns the total number of distinct directed edges, which
// always equals both Σ|outgoing(u)| and Σ indegree(v).
func (g *Graph) EdgeCount() int { return len(g.coverage) }
