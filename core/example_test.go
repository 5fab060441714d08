package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvldom/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := core.NewGraph()

	// Add edges (auto-adds vertices A, B, C) plus a lone vertex D:
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")
	g.AddVertex("D")

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B-A exists?", g.HasEdge("B", "A"))

	// Remove a vertex and its incident edges:
	g.RemoveVertex("B")
	fmt.Println("After removing B:", g.Vertices())
	fmt.Println("Edge A-B exists?", g.HasEdge("A", "B"))

	// Output:
	// Vertices: [A B C D]
	// Edge B-A exists? true
	// After removing B: [A C D]
	// Edge A-B exists? false
}

// ExampleGraph_RemoveIsolated shows the isolation filter.
func ExampleGraph_RemoveIsolated() {
	g := core.NewGraph()
	g.AddEdge("A", "B")
	g.AddVertex("D") // never gains an edge

	removed := g.RemoveIsolated()
	fmt.Println("Removed:", removed)
	fmt.Println("Remaining:", g.Vertices())

	// Output:
	// Removed: [D]
	// Remaining: [A B]
}
