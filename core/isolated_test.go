package core_test

import (
	"testing"

	"github.com/katalvlaran/lvldom/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildMixed returns vertices {A,B,C,D} with edges {A-B, A-C};
// D is isolated and C only ever appears as a neighbor.
func buildMixed(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "C"))
	require.NoError(t, g.AddVertex("D"))
	return g
}

func TestIsIsolated(t *testing.T) {
	g := buildMixed(t)

	for id, want := range map[string]bool{"A": false, "B": false, "C": false, "D": true} {
		got, err := g.IsIsolated(id)
		require.NoError(t, err)
		assert.Equal(t, want, got, "IsIsolated(%s)", id)
	}

	_, err := g.IsIsolated("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestIsolatedVertices(t *testing.T) {
	g := buildMixed(t)
	require.NoError(t, g.AddVertex("E"))

	assert.Equal(t, []string{"D", "E"}, g.IsolatedVertices())
	assert.True(t, g.HasIsolated())
}

func TestRemoveIsolated(t *testing.T) {
	g := buildMixed(t)

	removed := g.RemoveIsolated()

	assert.Equal(t, []string{"D"}, removed)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	assert.False(t, g.HasIsolated())

	// Surviving vertices keep their full neighbor sets.
	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, nbrs)
}

// TestRemoveIsolated_Idempotent: filtering an already-filtered graph is
// a no-op.
func TestRemoveIsolated_Idempotent(t *testing.T) {
	g := buildMixed(t)

	first := g.RemoveIsolated()
	second := g.RemoveIsolated()

	assert.Equal(t, []string{"D"}, first)
	assert.Empty(t, second)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
}

func TestRemoveIsolated_EmptyGraph(t *testing.T) {
	g := core.NewGraph()
	assert.Empty(t, g.RemoveIsolated())
	assert.Equal(t, 0, g.VertexCount())
}

// TestRemoveIsolated_AllIsolated: a graph of bare vertices empties out.
func TestRemoveIsolated_AllIsolated(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"X", "Y", "Z"} {
		require.NoError(t, g.AddVertex(id))
	}

	assert.Equal(t, []string{"X", "Y", "Z"}, g.RemoveIsolated())
	assert.Equal(t, 0, g.VertexCount())
}

// TestRemoveIsolated_LoopIsNotIsolated: a self-loop gives the vertex a
// neighbor (itself), so it survives filtering.
func TestRemoveIsolated_LoopIsNotIsolated(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.AddEdge("X", "X"))

	assert.Empty(t, g.RemoveIsolated())
	assert.True(t, g.HasVertex("X"))
}

// TestRemoveEdgeThenFilter: vertices stranded by edge removal are
// eligible on the next filter pass.
func TestRemoveEdgeThenFilter(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("C", "D"))

	require.NoError(t, g.RemoveEdge("A", "B"))
	removed := g.RemoveIsolated()

	assert.Equal(t, []string{"A", "B"}, removed)
	assert.Equal(t, []string{"C", "D"}, g.Vertices())
}
