// Package optimalk implements the optimal-k probe: given error-free
// reads, find the largest k-mer length whose k-mer prefix set equals
// its suffix set, a necessary condition for a de Bruijn graph built at
// that k to admit a single Eulerian cycle.
//
// This is a standalone diagnostic, never invoked by the assembler
// pipeline itself — the core assembler always takes k as an externally
// supplied parameter.
package optimalk
