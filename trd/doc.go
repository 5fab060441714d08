// Package trd solves the total Roman domination problem on undirected
// simple graphs with a heuristic-seeded genetic algorithm.
//
// # Problem
//
// A labeling f: V → {0,1,2} is a total Roman dominating function when
// every vertex labeled 0 has a neighbor labeled 2 and every vertex
// labeled 1 has a neighbor with a positive label. The weight of f is
// Σ f(v); the solver minimizes it. The graph must contain no isolated
// vertex — an isolated vertex can never satisfy either condition,
// which is exactly why inputs go through the adjlist normalizer first.
//
// # Encoding
//
// A Chromosome stores one label per vertex, indexed by the vertex's
// position in core.Graph.Vertices() (lexicographic ascending — the
// module-wide stable enumeration surface). Fitness is the labeling
// weight, cached after first evaluation.
//
// # Algorithm
//
// A Population is seeded by the heuristics H1–H5 (each contributes one
// individual; the last heuristic in the list fills the remainder), then
// evolves for a bounded number of generations: tournament or roulette
// Selection picks parents, single- or two-point Crossover recombines
// them, and a deterministic repair pass restores validity of offspring.
// The loop stops early after a configurable number of stagnant
// generations.
//
// Solve runs one search; RunTrials runs many independent searches on
// derived RNG streams and aggregates a Summary. All randomness is
// seeded — a fixed Options.Seed reproduces results exactly, including
// across the trial worker pool.
package trd
