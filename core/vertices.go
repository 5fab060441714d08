// File: vertices.go
// Role: Vertex lifecycle and queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
// An existing vertex keeps its neighbor set untouched.
//
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adjacency[id]; exists {
		return nil // no-op for existing vertex
	}
	g.adjacency[id] = make(map[string]struct{})

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// RemoveVertex deletes a vertex and all incident edges.
//
// The vertex is also removed from every neighbor set that references
// it; because adjacency is symmetric by construction, the references
// are exactly the vertex's own neighbors.
//
// Returns ErrEmptyVertexID for an empty ID and ErrVertexNotFound when
// the vertex does not exist.
// Complexity: O(deg(v))
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	nbrs, exists := g.adjacency[id]
	if !exists {
		return ErrVertexNotFound
	}

	for nbr := range nbrs {
		delete(g.adjacency[nbr], id)
	}
	delete(g.adjacency, id)

	return nil
}

// Neighbors returns the neighbor IDs of id sorted lexicographically
// ascending. A degree-zero vertex yields an empty (non-nil) slice.
//
// Returns ErrEmptyVertexID / ErrVertexNotFound on invalid input.
// Complexity: O(d log d) where d = deg(id).
func (g *Graph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, exists := g.adjacency[id]
	if !exists {
		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(nbrs))
	for nbr := range nbrs {
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of distinct neighbors of id.
// A self-loop contributes one.
//
// Returns ErrEmptyVertexID / ErrVertexNotFound on invalid input.
// Complexity: O(1)
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, exists := g.adjacency[id]
	if !exists {
		return 0, ErrVertexNotFound
	}

	return len(nbrs), nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
//
// The sorted order is the stable enumeration surface the rest of the
// module relies on: serializers and solvers index vertices by their
// position in this slice.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}
