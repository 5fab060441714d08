package adjlist_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvldom/adjlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeInput drops content into a temp file and returns its path.
func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// readOutput reads the produced file back as a string.
func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// TestNormalize_Scenario1: mixed graph — D isolated, C neighbor-only.
func TestNormalize_Scenario1(t *testing.T) {
	in := writeInput(t, "A B C\nB A\nD\n")
	out := filepath.Join(filepath.Dir(in), "out.txt")

	g, err := adjlist.Normalize(in, out)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	assert.Equal(t, "A B C\nB A\nC A\n", readOutput(t, out))
}

// TestNormalize_Scenario2: empty or all-blank input yields an empty file.
func TestNormalize_Scenario2(t *testing.T) {
	for _, content := range []string{"", "\n\n  \n\t\n"} {
		in := writeInput(t, content)
		out := filepath.Join(filepath.Dir(in), "out.txt")

		g, err := adjlist.Normalize(in, out)
		require.NoError(t, err)

		assert.Equal(t, 0, g.VertexCount())
		assert.Empty(t, readOutput(t, out))
	}
}

// TestNormalize_Scenario3: a single bare vertex is removed entirely.
func TestNormalize_Scenario3(t *testing.T) {
	in := writeInput(t, "X\n")
	out := filepath.Join(filepath.Dir(in), "out.txt")

	g, err := adjlist.Normalize(in, out)
	require.NoError(t, err)

	assert.Equal(t, 0, g.VertexCount())
	assert.Empty(t, readOutput(t, out))
}

// TestNormalize_Scenario4: disconnected components pass through intact.
func TestNormalize_Scenario4(t *testing.T) {
	in := writeInput(t, "A B\nC D\n")
	out := filepath.Join(filepath.Dir(in), "out.txt")

	_, err := adjlist.Normalize(in, out)
	require.NoError(t, err)

	assert.Equal(t, "A B\nB A\nC D\nD C\n", readOutput(t, out))
}

// TestNormalize_NoDataLoss: every vertex with degree > 0 keeps its full
// neighbor set through the pipeline.
func TestNormalize_NoDataLoss(t *testing.T) {
	in := writeInput(t, "hub a b c\nx y\nlonely\n")
	out := filepath.Join(filepath.Dir(in), "out.txt")

	g, err := adjlist.Normalize(in, out)
	require.NoError(t, err)

	nbrs, err := g.Neighbors("hub")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, nbrs)
	assert.True(t, g.HasEdge("x", "y"))
	assert.False(t, g.HasVertex("lonely"))
}

func TestNormalize_ReadFailure(t *testing.T) {
	_, err := adjlist.Normalize(filepath.Join(t.TempDir(), "absent.txt"), "out.txt")
	assert.ErrorIs(t, err, adjlist.ErrRead)
}

func TestNormalize_WriteFailure(t *testing.T) {
	in := writeInput(t, "A B\n")
	_, err := adjlist.Normalize(in, filepath.Join(t.TempDir(), "no", "such", "dir", "out.txt"))
	assert.ErrorIs(t, err, adjlist.ErrWrite)
}

func TestOutputPath(t *testing.T) {
	cases := map[string]string{
		"graph.txt":          "graph_normalized.txt",
		"dir/sub/k5.txt":     "dir/sub/k5_normalized.txt",
		"noext":              "noext_normalized",
		"archive.tar.gz":     "archive.tar_normalized.gz",
		"./relative/one.adj": "./relative/one_normalized.adj",
	}
	for in, want := range cases {
		assert.Equal(t, want, adjlist.OutputPath(in), "OutputPath(%q)", in)
	}
}
