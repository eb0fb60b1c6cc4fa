// File: methods_sweep.go
// Role: the post-tip-removal leaf sweep: nodes that have become sources
//       with no outgoing edges would otherwise strand the Eulerian
//       traversal, so the assembler excludes them from node enumeration
//       once cleanup is done.
package core

// LeafSweep reports every node whose outgoing degree is zero and marks it
// dead: it is skipped by AliveNodes but its NodeID, label mapping, and
// incoming-degree bookkeeping for other nodes are left untouched (ids
// stay stable for the Graph's lifetime).
//
// Complexity: O(V).
func (g *Graph) LeafSweep() []NodeID {
	if g.dead == nil {
		g.dead = make([]bool, len(g.outgoing))
	}
	for NodeID(len(g.dead)) < NodeID(len(g.outgoing)) {
		g.dead = append(g.dead, false)
	}

	var removed []NodeID
	for id := range g.outgoing {
		nid := NodeID(id)
		if !g.dead[nid] && len(g.outgoing[nid]) == 0 {
			g.dead[nid] = true
			removed = append(removed, nid)
		}
	}

	return removed
}

// AliveNodes returns every node id not dropped by a prior LeafSweep, in
// ascending order.
func (g *Graph) AliveNodes() []NodeID {
	ids := make([]NodeID, 0, len(g.outgoing))
	for id := range g.outgoing {
		nid := NodeID(id)
		if nid < NodeID(len(g.dead)) && g.dead[nid] {
			continue
		}
		ids = append(ids, nid)
	}

	return ids
}
