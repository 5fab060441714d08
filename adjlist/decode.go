// File: decode.go
// Role: Adjacency Loader - text source → core.Graph.
package adjlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/lvldom/core"
)

// Decode parses adjacency-list text from r into a new core.Graph.
//
// Each non-blank line contributes its first token as a vertex and an
// undirected edge to every remaining token; endpoints that only ever
// appear as neighbors are inserted too. Duplicate pairs across lines
// collapse into a single edge (the neighbor relation is a set). A line
// holding a single token declares a zero-degree vertex. The graph is
// created with core.WithLoops because the format can express X X.
//
// Returns ErrRead (wrapped) if the scan fails mid-stream; malformed
// content never fails; an effectively empty line contributes nothing.
//
// Complexity: O(V + E) over the tokens of the input.
func Decode(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph(core.WithLoops())

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		tok := strings.Fields(sc.Text())
		if len(tok) == 0 {
			continue // blank line: no vertex, no edge
		}

		// First token is the vertex; it exists even with no neighbors.
		if err := g.AddVertex(tok[0]); err != nil {
			return nil, fmt.Errorf("%w: vertex %q: %v", ErrRead, tok[0], err)
		}
		for _, nbr := range tok[1:] {
			if err := g.AddEdge(tok[0], nbr); err != nil {
				return nil, fmt.Errorf("%w: edge {%s,%s}: %v", ErrRead, tok[0], nbr, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	return g, nil
}

// Load opens path and decodes it as an adjacency list.
// Returns ErrRead (wrapped) when the file cannot be opened or read.
func Load(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	defer f.Close()

	return Decode(f)
}
