package edgelist_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvldom/edgelist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Basic(t *testing.T) {
	in := "0 1\n1 2\n2 0\n"

	g, err := edgelist.Decode(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "1", "2"}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge("2", "0"))
}

func TestDecode_SkipsShortAndLoopLines(t *testing.T) {
	in := "0 1\nonly-one-token\n\n3 3\n4 5 ignored extra\n"

	g, err := edgelist.Decode(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "1", "4", "5"}, g.Vertices())
	assert.Equal(t, 2, g.EdgeCount())
	assert.False(t, g.HasVertex("3"), "self-loop line must contribute nothing")
	assert.False(t, g.HasVertex("ignored"))
}

func TestDecode_DuplicateEdges(t *testing.T) {
	g, err := edgelist.Decode(strings.NewReader("a b\nb a\na b\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestDecode_NoIsolatedVertices(t *testing.T) {
	g, err := edgelist.Decode(strings.NewReader("u v\nw x\n"))
	require.NoError(t, err)
	assert.False(t, g.HasIsolated())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := edgelist.Load("nope/missing.el")
	assert.ErrorIs(t, err, edgelist.ErrRead)
}

func TestRelabel(t *testing.T) {
	g, err := edgelist.Decode(strings.NewReader("zed alpha\nmid zed\n"))
	require.NoError(t, err)

	dense, mapping := edgelist.Relabel(g)

	// Lexicographic assignment: alpha→0, mid→1, zed→2.
	assert.Equal(t, map[string]string{"alpha": "0", "mid": "1", "zed": "2"}, mapping)
	assert.Equal(t, []string{"0", "1", "2"}, dense.Vertices())
	assert.True(t, dense.HasEdge("0", "2"))
	assert.True(t, dense.HasEdge("1", "2"))
	assert.Equal(t, g.EdgeCount(), dense.EdgeCount())

	// Source untouched.
	assert.True(t, g.HasVertex("zed"))
	assert.False(t, g.HasVertex("0"))
}
