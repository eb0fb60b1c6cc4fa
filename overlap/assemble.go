// File: assemble.go
// Role: greedy Hamiltonian-path genome assembly over the overlap graph.
package overlap

import "sort"

// BuildGraph returns, for every read, its candidate neighbors sorted by
// descending overlap length — the adjacency list a greedy Hamiltonian
// walk consumes.
func BuildGraph(reads []string) [][]Overlap {
	trie := NewPrefixTrie()
	for i, r := range reads {
		trie.Add(r, i)
	}

	graph := make([][]Overlap, len(reads))
	for i, r := range reads {
		matches := trie.Match(r)
		sort.SliceStable(matches, func(a, b int) bool {
			return matches[a].Length > matches[b].Length
		})
		graph[i] = matches
	}

	return graph
}

// walkGreedy builds a Hamiltonian path by always taking the first
// (highest-overlap) unvisited neighbor of the current read, starting
// from read 0. Each path entry records which read comes next and how
// much of its prefix is already covered by the preceding read's suffix.
func walkGreedy(adj [][]Overlap) []Overlap {
	path := []Overlap{{Index: 0, Length: 0}}
	visited := map[int]bool{0: true}
	current := 0

	for len(visited) < len(adj) {
		advanced := false
		for _, link := range adj[current] {
			if visited[link.Index] {
				continue
			}
			visited[link.Index] = true
			current = link.Index
			path = append(path, link)
			advanced = true

			break
		}
		if !advanced {
			break
		}
	}

	return path
}

// overlapLength returns the largest i such that the last i bases of s
// equal the first i bases of t, scanning from len(s) down to 1.
func overlapLength(s, t string) int {
	for i := len(s); i > 0; i-- {
		if i > len(t) {
			continue
		}
		if s[len(s)-i:] == t[:i] {
			return i
		}
	}

	return 0
}

// AssembleGreedy concatenates reads along path, where path[i].Length is
// the overlap already shared with the previous read (so only the
// non-overlapping suffix is appended), then trims the wrap-around
// overlap between the path's last read and the first to close the
// circular genome.
func AssembleGreedy(path []Overlap, reads []string) string {
	var genome []byte
	for _, node := range path {
		genome = append(genome, reads[node.Index][node.Length:]...)
	}

	if len(path) == 0 || len(reads) == 0 {
		return string(genome)
	}

	last := reads[path[len(path)-1].Index]
	wrap := overlapLength(last, reads[0])
	if wrap > 0 && wrap <= len(genome) {
		genome = genome[:len(genome)-wrap]
	}

	return string(genome)
}

// Assemble runs the full pipeline: build the overlap graph, walk it
// greedily, and assemble the resulting path into a circular genome.
func Assemble(reads []string) string {
	if len(reads) == 0 {
		return ""
	}

	adj := BuildGraph(reads)
	path := walkGreedy(adj)

	return AssembleGreedy(path, reads)
}
