// Package overlap implements a prefix-trie / greedy-Hamiltonian-path
// genome assembler. It is deliberately independent of the core,
// builder, and algorithms packages: a second, standalone assembly
// strategy that shares no graph structure with the de Bruijn pipeline.
//
// Pipeline: build a PrefixTrie over reversed read prefixes at or above
// MinOverlapLength, use it to find, for every read, the other reads
// overlapping its suffix; assemble a Hamiltonian path greedily by
// always following the longest available overlap; concatenate and trim
// the wrap-around overlap to close the circular genome.
package overlap

// MinOverlapLength is the minimum overlap, in bases, the trie considers
// when matching one read's suffix against another's prefix.
const MinOverlapLength = 70
