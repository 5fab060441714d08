// Package edgelist reads undirected graphs in edge-list form: one edge
// per line, the first two whitespace-separated tokens naming the
// endpoints. It is the benchmark-input companion to package adjlist.
//
// Lines with fewer than two tokens and self-loops contribute nothing;
// the format is forgiving by design, matching the tolerance of the
// adjacency-list loader.
package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvldom/core"
)

// ErrRead is returned when the source cannot be opened or read.
var ErrRead = errors.New("edgelist: cannot read source")

// Decode parses edge-list text from r into a new core.Graph.
//
// Each line contributes at most one edge between its first two tokens;
// extra tokens are ignored, short lines and self-loops are skipped.
// Duplicate edges collapse. Endpoints are auto-inserted, so the result
// never contains an isolated vertex.
//
// Complexity: O(E) over the lines of the input.
func Decode(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		tok := strings.Fields(sc.Text())
		if len(tok) < 2 {
			continue
		}
		u, v := tok[0], tok[1]
		if u == v {
			continue // self-loops carry no information for this format
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("%w: edge {%s,%s}: %v", ErrRead, u, v, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	return g, nil
}

// Load opens path and decodes it as an edge list.
// Returns ErrRead (wrapped) when the file cannot be opened or read.
func Load(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	defer f.Close()

	return Decode(f)
}

// Relabel maps the vertices of g onto the dense ID range "0".."n-1",
// assigned in lexicographic order of the original IDs, and returns the
// relabeled graph together with the old → new mapping.
//
// Dense integer IDs are what index-addressed consumers (the trd solver,
// matrix tooling) expect; the mapping lets callers translate results
// back. g itself is not modified.
//
// Complexity: O(V log V + E)
func Relabel(g *core.Graph) (*core.Graph, map[string]string) {
	ids := g.Vertices()
	mapping := make(map[string]string, len(ids))
	for i, id := range ids {
		mapping[id] = strconv.Itoa(i)
	}

	var opts []core.GraphOption
	if g.Looped() {
		opts = append(opts, core.WithLoops())
	}
	out := core.NewGraph(opts...)

	for _, id := range ids {
		// Vertices carry over even when degree-zero.
		_ = out.AddVertex(mapping[id])
		nbrs, err := g.Neighbors(id)
		if err != nil {
			continue // unreachable for IDs from Vertices()
		}
		for _, nbr := range nbrs {
			_ = out.AddEdge(mapping[id], mapping[nbr])
		}
	}

	return out, mapping
}
