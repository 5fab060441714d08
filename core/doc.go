// Package core provides the in-memory undirected simple Graph used by
// every other package in lvldom.
//
// The Graph G = (V,E) is deliberately small: opaque string vertex IDs,
// adjacency stored as a neighbor set per vertex, no weights, no
// direction, no parallel edges. Self-loops are rejected by default and
// enabled with WithLoops (the adjacency-list text format can express
// them, so loaders opt in).
//
// Why use core.Graph?
//
//   - Deterministic iteration — Vertices(), Neighbors() and
//     IsolatedVertices() all return IDs sorted lexicographically
//     ascending, so serialized output and test assertions are stable.
//   - Symmetric by construction — AddEdge(u, v) inserts v into u's
//     neighbor set and u into v's; there is no way to build a
//     one-sided edge.
//   - Idempotent mutation — re-adding a vertex or an edge is a no-op,
//     which lets loaders feed duplicate pairs without bookkeeping.
//   - Thread-safe — a single sync.RWMutex guards the adjacency;
//     mutations take the write lock, queries the read lock.
//
// Core methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error           // O(1)
//	HasVertex(id string) bool            // O(1)
//	RemoveVertex(id string) error        // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(u, v string) error           // O(1), auto-inserts endpoints
//	RemoveEdge(u, v string) error        // O(1)
//	HasEdge(u, v string) bool            // O(1)
//
//	// Queries
//	Neighbors(id string) ([]string, error) // O(d log d), sorted
//	Degree(id string) (int, error)         // O(1)
//	Vertices() []string                    // O(V log V), sorted
//	VertexCount() int                      // O(1)
//	EdgeCount() int                        // O(V + E)
//
//	// Isolation
//	IsIsolated(id string) (bool, error)
//	IsolatedVertices() []string            // sorted
//	HasIsolated() bool
//	RemoveIsolated() []string              // the isolation filter
//
//	// Lifecycle
//	Clone() *Graph
//	Clear()
//
// Errors are sentinel values (ErrEmptyVertexID, ErrVertexNotFound,
// ErrEdgeNotFound, ErrLoopNotAllowed); match them with errors.Is.
package core
