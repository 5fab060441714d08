// File: edges.go
// Role: Edge lifecycle and queries.
//
// Invariant: adjacency stays symmetric; every mutation touches both
// endpoint buckets under one write lock.
package core

// AddEdge inserts the undirected edge {u, v}, creating either endpoint
// if absent. Re-adding an existing edge is a no-op, so feeding the same
// pair from both directions of an adjacency list is harmless.
//
// Returns ErrEmptyVertexID if either ID is empty, and ErrLoopNotAllowed
// for u == v on a graph built without WithLoops.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Ensure both endpoint buckets exist.
	if _, ok := g.adjacency[u]; !ok {
		g.adjacency[u] = make(map[string]struct{})
	}
	if _, ok := g.adjacency[v]; !ok {
		g.adjacency[v] = make(map[string]struct{})
	}

	// Symmetric insertion; for a self-loop both writes hit the same set.
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}

	return nil
}

// RemoveEdge deletes the undirected edge {u, v} from both neighbor sets.
//
// Returns ErrEmptyVertexID for empty IDs, ErrVertexNotFound when either
// endpoint is absent, and ErrEdgeNotFound when the edge does not exist.
// Complexity: O(1)
func (g *Graph) RemoveEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[u]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.adjacency[v]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.adjacency[u][v]; !ok {
		return ErrEdgeNotFound
	}

	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)

	return nil
}

// HasEdge reports whether the edge {u, v} exists.
// Complexity: O(1)
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if nbrs, ok := g.adjacency[u]; ok {
		_, ok = nbrs[v]
		return ok
	}

	return false
}

// EdgeCount returns the number of distinct undirected edges.
// A self-loop counts as one edge.
// Complexity: O(V + E)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	count := 0
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			// Count each unordered pair once; u <= v covers loops too.
			if u <= v {
				count++
			}
		}
	}

	return count
}
