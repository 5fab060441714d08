// Package lvldom is a toolkit for cleaning adjacency-list graph files
// and hunting for cheap total Roman dominating functions.
//
// 🚀 What is lvldom?
//
//	A thread-safe pipeline that brings together:
//		• Core primitives: an undirected graph with safe, idempotent mutation
//		• Adjacency lists: deterministic text decoding, encoding & normalization
//		• Edge lists: a second on-disk format plus dense relabeling
//		• Generation: reproducible random graphs for experiments
//		• Search: a genetic algorithm for total Roman domination
//
// ✨ Why choose lvldom?
//
//   - Deterministic – sorted enumeration and seeded randomness everywhere
//   - Rock-solid guarantees – R/W locks, sentinel errors, no silent loss
//   - Batch-friendly – repeated trials fan out over a bounded worker pool
//
// Under the hood, everything is organized under five subpackages:
//
//	adjlist/  — adjacency-list text format: Decode, Encode, Normalize
//	core/     — fundamental Graph type & thread-safe primitives
//	edgelist/ — whitespace edge-list parsing & vertex relabeling
//	gen/      — seeded random graph generation
//	trd/      — genetic search for total Roman dominating functions
//
// Quick ASCII example:
//
//	    A───B       E
//	    │   │
//	    C───D
//
//	normalizing this file drops the isolated vertex E and rewrites the
//	square A,B,C,D with sorted vertices and sorted neighbor lists.
//
// The cmd/lvldom binary wires the subpackages into normalize, generate
// and solve commands.
//
//	go get github.com/katalvlaran/lvldom
package lvldom
