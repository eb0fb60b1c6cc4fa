// Package core defines the central Interner and Graph types that back the
// de Bruijn assembler, and the sentinel errors shared by every stage that
// walks or mutates a Graph.
//
// A Graph is a directed multigraph over dense integer node ids. Nodes are
// (k-1)-mer labels, issued ids in first-seen order by an Interner; edges
// carry an integer coverage (the number of source k-mers that produced
// them) instead of being represented as literal parallel edges.
//
// Unlike a general-purpose graph library, Graph is not safe for concurrent
// use: the assembler pipeline is strictly sequential (one pass builds the
// graph, later passes mutate it in place), so there is no internal locking
// to pay for on every lookup.
//
// This file declares NodeID and the sentinel errors; Graph is declared in
// types.go.
//
// Errors:
//
//	ErrEmptyLabel   - interned label is the empty string.
//	ErrUnknownNode  - requested node id is not valid for this graph.
//	ErrSelfLoop     - an edge would connect a node to itself.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyLabel indicates Intern was called with the empty string.
	ErrEmptyLabel = errors.New("core: label is empty")

	// ErrUnknownNode indicates an operation referenced a node id this
	// graph never issued.
	ErrUnknownNode = errors.New("core: unknown node id")

	// ErrSelfLoop indicates an edge was rejected because it would
	// connect a node to itself — self-loops are rejected at build time,
	// never stored and later filtered.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// NodeID is a dense, zero-based integer identifier assigned to a (k-1)-mer
// label in first-seen order. NodeIDs are stable for the lifetime of the
// Graph that issued them: once assigned, an id is never reused or
// renumbered, even if the node's outgoing edges are later deleted.
type NodeID int
