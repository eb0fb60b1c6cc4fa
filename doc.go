// Package debruijn reconstructs a circular genome from short, error-prone
// sequencing reads using a de Bruijn graph.
//
// What is debruijn?
//
//	A small, sequential assembler pipeline that brings together:
//
//	  - Interning: (k-1)-mers are mapped to dense integer node ids
//	  - Graph construction: reads are fragmented into k-mers and folded
//	    into a directed multigraph with per-edge coverage
//	  - Error cleanup: tip removal and bubble removal strip the
//	    substitution-error artifacts that sequencing introduces
//	  - Eulerian traversal: a Hierholzer walk over the cleaned graph
//	    spells out the original circular genome
//
// Why this shape?
//
//   - Sequential by design — a single pipeline instance owns its graph
//     for the duration of a run; there is nothing to synchronize
//   - Deterministic — every stage iterates in a fixed, documented order
//     so the same reads always assemble to the same rotation
//   - Pure Go — no cgo; testify is test-only, and the lone runtime
//     dependency (soniakeys/bits, for dense-id visited-set bitmaps in
//     bubble detection) is a single small bitset package
//
// Everything is organized under three subpackages:
//
//	core/       — Interner and Graph: node/edge/coverage storage
//	builder/    — k-mer extraction and de Bruijn graph construction
//	algorithms/ — tip removal, bubble removal, Eulerian cycle, spelling
//
// Two peripheral packages round out the original problem set this
// assembler was drawn from:
//
//	overlap/  — prefix-trie + greedy Hamiltonian-path assembler
//	optimalk/ — "largest k with prefix-set == suffix-set" probe
//
// The cmd/ directory wires each of the above into a standalone,
// stdin-in/stdout-out CLI:
//
//	go run ./cmd/assembler        < reads.txt   > genome.txt
//	go run ./cmd/tipremover       < reads.txt   > count.txt
//	go run ./cmd/bubblecounter    < k_t_reads.txt > count.txt
//	go run ./cmd/eulercomposition < kmers.txt   > genome.txt
//	go run ./cmd/eulerlist        < edgelist.txt > cycle.txt
//	go run ./cmd/overlapasm       < reads.txt   > genome.txt
//	go run ./cmd/optimalk         < reads.txt   > k.txt
package debruijn
