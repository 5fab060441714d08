// File: heuristics.go
// Role: Constructive seeding heuristics H1–H5.
//
// Every heuristic returns a repaired (valid) chromosome. Determinism:
// for a fixed graph and RNG state each heuristic is reproducible; all
// tie-breaks fall back to lexicographic vertex order.
package trd

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/lvldom/core"
)

// Heuristic builds one seed chromosome for g. The RNG may be consumed
// for diversification; a nil RNG must still yield a valid chromosome
// deterministically.
type Heuristic func(g *core.Graph, rng *rand.Rand) (*Chromosome, error)

// H1 is the greedy elimination heuristic: vertices are visited in
// shuffled order (sorted when rng is nil) on a shrinking working copy.
// A vertex of residual degree ≥ 2 takes label 2, covers its residual
// neighborhood (first neighbor 1, the rest 0) and the whole group
// leaves the working graph; degree-1 vertices pair up with label 1;
// stranded vertices take label 1. Shuffling makes repeated calls
// produce distinct individuals, which is what the population filler
// needs.
func H1(g *core.Graph, rng *rand.Rand) (*Chromosome, error) {
	ids := g.Vertices()
	idx := indexOf(ids)

	order := make([]string, len(ids))
	copy(order, ids)
	if rng != nil {
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	}

	h := g.Clone()
	genes := unassignedGenes(len(ids))

	for _, v := range order {
		if genes[idx[v]] != unassigned {
			continue
		}
		residual, err := h.Neighbors(v)
		if err != nil {
			// v left the working copy through a neighbor group; it was
			// labeled at that moment.
			continue
		}
		switch len(residual) {
		case 0:
			genes[idx[v]] = labelOne
			_ = h.RemoveVertex(v)
		case 1:
			genes[idx[v]] = labelOne
			nbr := residual[0]
			genes[idx[nbr]] = labelOne
			_ = h.RemoveVertex(v)
			_ = h.RemoveVertex(nbr)
		default:
			genes[idx[v]] = labelTwo
			for i, nbr := range residual {
				if i == 0 {
					genes[idx[nbr]] = labelOne
				} else if genes[idx[nbr]] == unassigned {
					genes[idx[nbr]] = labelZero
				}
			}
			_ = h.RemoveVertex(v)
			for _, nbr := range residual {
				_ = h.RemoveVertex(nbr)
			}
		}
	}

	return finishChromosome(g, genes)
}

// H2 is the degree-descending heuristic: hubs are labeled 2 first so
// each covers as many vertices as possible.
func H2(g *core.Graph, _ *rand.Rand) (*Chromosome, error) {
	return eliminateInOrder(g, byDegreeDesc(g, g.Vertices()))
}

// H3 orders vertices by total neighborhood degree (the sum of the
// degrees of their neighbors) descending, favoring vertices embedded in
// dense regions over mere hubs.
func H3(g *core.Graph, _ *rand.Rand) (*Chromosome, error) {
	ids := g.Vertices()
	weight := make(map[string]int, len(ids))
	for _, id := range ids {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("%w: H3: %v", ErrHeuristicFailed, err)
		}
		total := 0
		for _, nbr := range nbrs {
			deg, derr := g.Degree(nbr)
			if derr != nil {
				return nil, fmt.Errorf("%w: H3: %v", ErrHeuristicFailed, derr)
			}
			total += deg
		}
		weight[id] = total
	}

	order := make([]string, len(ids))
	copy(order, ids)
	sort.SliceStable(order, func(i, j int) bool { return weight[order[i]] > weight[order[j]] })

	return eliminateInOrder(g, order)
}

// H4 is the leaf-first heuristic: every support vertex (the sole
// neighbor of a leaf) takes label 2 and its leaves take 0, since a
// leaf's only possible 2-coverage comes from its support. Remaining
// vertices fall back to 1.
func H4(g *core.Graph, _ *rand.Rand) (*Chromosome, error) {
	ids := g.Vertices()
	idx := indexOf(ids)
	genes := unassignedGenes(len(ids))

	for _, id := range ids {
		deg, err := g.Degree(id)
		if err != nil {
			return nil, fmt.Errorf("%w: H4: %v", ErrHeuristicFailed, err)
		}
		if deg != 1 {
			continue
		}
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("%w: H4: %v", ErrHeuristicFailed, err)
		}
		support := nbrs[0]
		genes[idx[support]] = labelTwo
		if genes[idx[id]] == unassigned {
			genes[idx[id]] = labelZero
		}
	}

	for i, gene := range genes {
		if gene == unassigned {
			genes[i] = labelOne
		}
	}

	return finishChromosome(g, genes)
}

// H5 is the uniform baseline: every vertex takes label 1. On a graph
// without isolated vertices this is always valid, so it doubles as the
// safety net of the default heuristic set.
func H5(g *core.Graph, _ *rand.Rand) (*Chromosome, error) {
	n := g.VertexCount()
	genes := make([]byte, n)
	for i := range genes {
		genes[i] = labelOne
	}
	return finishChromosome(g, genes)
}

// eliminateInOrder runs the H1 group-elimination scheme over a fixed
// visit order.
func eliminateInOrder(g *core.Graph, order []string) (*Chromosome, error) {
	ids := g.Vertices()
	idx := indexOf(ids)

	h := g.Clone()
	genes := unassignedGenes(len(ids))

	for _, v := range order {
		if genes[idx[v]] != unassigned {
			continue
		}
		residual, err := h.Neighbors(v)
		if err != nil {
			continue
		}
		if len(residual) == 0 {
			genes[idx[v]] = labelOne
			_ = h.RemoveVertex(v)
			continue
		}
		genes[idx[v]] = labelTwo
		for i, nbr := range residual {
			if i == 0 {
				genes[idx[nbr]] = labelOne
			} else if genes[idx[nbr]] == unassigned {
				genes[idx[nbr]] = labelZero
			}
		}
		_ = h.RemoveVertex(v)
		for _, nbr := range residual {
			_ = h.RemoveVertex(nbr)
		}
	}

	return finishChromosome(g, genes)
}

// byDegreeDesc returns ids reordered by degree descending; the sorted
// input makes ties resolve lexicographically.
func byDegreeDesc(g *core.Graph, ids []string) []string {
	order := make([]string, len(ids))
	copy(order, ids)
	deg := make(map[string]int, len(ids))
	for _, id := range ids {
		d, err := g.Degree(id)
		if err == nil {
			deg[id] = d
		}
	}
	sort.SliceStable(order, func(i, j int) bool { return deg[order[i]] > deg[order[j]] })
	return order
}

// unassignedGenes allocates a gene vector of sentinels.
func unassignedGenes(n int) []byte {
	genes := make([]byte, n)
	for i := range genes {
		genes[i] = unassigned
	}
	return genes
}

// finishChromosome wraps genes and repairs them into validity.
func finishChromosome(g *core.Graph, genes []byte) (*Chromosome, error) {
	c := NewChromosome(genes)
	c.repair(g)
	if !c.Valid(g) {
		return nil, fmt.Errorf("%w: repair left an invalid labeling", ErrHeuristicFailed)
	}
	return c, nil
}
