// Package adjlist reads and writes undirected graphs in the plain-text
// adjacency-list format, and normalizes them by dropping isolated
// vertices.
//
// # Format
//
// One vertex per line: the first whitespace-separated token is the
// vertex ID, every following token is a neighbor:
//
//	<vertex> <neighbor1> <neighbor2> ... <neighborN>
//
// Tokens are separated by any whitespace run and contain no whitespace
// themselves. Blank lines are ignored. A line holding a single token
// declares a vertex with no recorded edges; such a vertex is exactly
// what Normalize removes.
//
// # Pipeline
//
// Normalize is the canonical Loader → Filter → Serializer chain:
//
//	err := adjlist.Normalize("graph.txt", adjlist.OutputPath("graph.txt"))
//
// Decode/Encode operate on io.Reader/io.Writer for composition; Load and
// Save bind them to files and surface the two failure kinds of the
// pipeline as sentinel errors:
//
//	ErrRead  - source missing, unreadable, or failing mid-scan.
//	ErrWrite - destination cannot be created or written.
//
// Serialization is deterministic: vertices and neighbor lists are
// emitted in lexicographic ascending order, so encoding the same graph
// twice is byte-identical and a decode/encode round trip is stable.
package adjlist
