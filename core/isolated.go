// File: isolated.go
// Role: Degree-zero detection and removal (the isolation filter).
//
// Determinism:
//   - IsolatedVertices() and RemoveIsolated() report IDs sorted
//     lexicographically ascending.
package core

import "sort"

// IsIsolated reports whether the vertex has an empty neighbor set.
//
// Returns ErrEmptyVertexID / ErrVertexNotFound on invalid input.
// Complexity: O(1)
func (g *Graph) IsIsolated(id string) (bool, error) {
	if id == "" {
		return false, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, exists := g.adjacency[id]
	if !exists {
		return false, ErrVertexNotFound
	}

	return len(nbrs) == 0, nil
}

// IsolatedVertices returns the IDs of all degree-zero vertices,
// sorted lexicographically ascending.
// Complexity: O(V log V)
func (g *Graph) IsolatedVertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []string
	for id, nbrs := range g.adjacency {
		if len(nbrs) == 0 {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}

// HasIsolated reports whether any vertex has degree zero.
// Complexity: O(V)
func (g *Graph) HasIsolated() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, nbrs := range g.adjacency {
		if len(nbrs) == 0 {
			return true
		}
	}

	return false
}

// RemoveIsolated deletes every degree-zero vertex in place and returns
// the removed IDs sorted lexicographically ascending.
//
// Because adjacency is symmetric, a degree-zero vertex cannot appear in
// any other neighbor set, so removal never touches surviving vertices.
// The operation is idempotent: filtering an already-filtered graph
// removes nothing.
// Complexity: O(V log V)
func (g *Graph) RemoveIsolated() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var removed []string
	for id, nbrs := range g.adjacency {
		if len(nbrs) == 0 {
			removed = append(removed, id)
		}
	}
	for _, id := range removed {
		delete(g.adjacency, id)
	}
	sort.Strings(removed)

	return removed
}
