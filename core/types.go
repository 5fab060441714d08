// Package core defines the central Graph type and the primitives for
// building, querying, and filtering undirected simple graphs.
//
// This file declares Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
// A self-loop stores the vertex in its own neighbor set once and
// contributes one to its degree.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory graph data structure.
//
// It models an undirected simple graph: no parallel edges, no weights,
// and self-loops only when enabled via WithLoops. A vertex exists iff
// it has an adjacency bucket; the bucket may be empty (degree zero).
//
// mu guards adjacency; mutations take the write lock, queries the read
// lock.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowLoops bool // allow self-loops

	// adjacency[u][v] = struct{}{} iff {u,v} is an edge.
	// Symmetric by construction: v ∈ adjacency[u] ⇔ u ∈ adjacency[v].
	adjacency map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected, unweighted, and rejects self-loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted on this graph.
func (g *Graph) Looped() bool { return g.allowLoops }
