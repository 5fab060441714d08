// File: clone.go
// Role: Cloning and clearing graph instances.
//
// Concurrency:
//   - Clone takes a read lock on the source; the clone is a fresh,
//     unshared instance.
package core

// Clone returns a deep copy of the Graph: configuration flags,
// vertices, and adjacency. Mutating the clone never affects the source.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var opts []GraphOption
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)

	for id, nbrs := range g.adjacency {
		bucket := make(map[string]struct{}, len(nbrs))
		for nbr := range nbrs {
			bucket[nbr] = struct{}{}
		}
		clone.adjacency[id] = bucket
	}

	return clone
}

// Clear resets the graph to an empty state while preserving
// configuration flags.
// Complexity: O(1) for map reallocation.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency = make(map[string]map[string]struct{})
}
