// File: encode.go
// Role: Adjacency Serializer - core.Graph → deterministic text.
//
// Determinism:
//   - Vertices and neighbor lists are emitted in lexicographic
//     ascending order; encoding the same graph twice is byte-identical.
package adjlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// graphEncoder is the read-only surface Encode needs from a graph.
// core.Graph satisfies it; tests may substitute fixtures.
type graphEncoder interface {
	Vertices() []string
	Neighbors(id string) ([]string, error)
}

// Encode writes g to w as adjacency-list text, one line per vertex.
//
// Whether a zero-degree vertex may appear is the caller's concern:
// run RemoveIsolated first for isolation-free output. If one is
// present it is emitted as a bare token, which Decode reads back as a
// zero-degree vertex, keeping round trips stable.
//
// Returns ErrWrite (wrapped) on the first failing write.
//
// Complexity: O(V log V + E log E) due to sorting.
func Encode(g graphEncoder, w io.Writer) error {
	var line strings.Builder
	for _, id := range g.Vertices() {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			// Vertices() and Neighbors() disagree only if the graph is
			// mutated mid-encode; surface it as a write failure.
			return fmt.Errorf("%w: neighbors of %q: %v", ErrWrite, id, err)
		}

		line.Reset()
		line.WriteString(id)
		for _, nbr := range nbrs {
			line.WriteByte(' ')
			line.WriteString(nbr)
		}
		line.WriteByte('\n')

		if _, err = io.WriteString(w, line.String()); err != nil {
			return fmt.Errorf("%w: %v", ErrWrite, err)
		}
	}

	return nil
}

// Save creates path (truncating any previous content) and encodes g
// into it. Returns ErrWrite (wrapped) when the file cannot be created,
// written, or flushed; on failure the destination contents are
// unspecified.
func Save(g graphEncoder, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	bw := bufio.NewWriter(f)
	if err = Encode(g, bw); err != nil {
		f.Close()
		return err
	}
	if err = bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	return nil
}
