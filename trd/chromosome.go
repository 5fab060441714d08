// File: chromosome.go
// Role: Label-vector individuals, validity checking, and repair.
//
// Gene i labels vertex g.Vertices()[i]; the sorted enumeration is the
// contract that keeps chromosomes portable between heuristics,
// crossover, and result reporting.
package trd

import "github.com/katalvlaran/lvldom/core"

// Labels a vertex may carry in a total Roman dominating function.
const (
	labelZero byte = 0
	labelOne  byte = 1
	labelTwo  byte = 2

	// unassigned marks genes a heuristic has not decided yet; it never
	// survives into a finished chromosome.
	unassigned byte = 3
)

// Chromosome is one candidate labeling. Fitness (the labeling weight)
// is computed lazily and cached.
type Chromosome struct {
	genes   []byte
	fitness int
	scored  bool
}

// NewChromosome copies genes into a fresh individual.
func NewChromosome(genes []byte) *Chromosome {
	c := &Chromosome{genes: make([]byte, len(genes))}
	copy(c.genes, genes)
	return c
}

// Fitness returns the labeling weight Σ f(v), caching the sum.
func (c *Chromosome) Fitness() int {
	if !c.scored {
		total := 0
		for _, gene := range c.genes {
			total += int(gene)
		}
		c.fitness = total
		c.scored = true
	}
	return c.fitness
}

// Genes returns a copy of the label vector.
func (c *Chromosome) Genes() []byte {
	out := make([]byte, len(c.genes))
	copy(out, c.genes)
	return out
}

// Len returns the number of genes.
func (c *Chromosome) Len() int { return len(c.genes) }

// clone duplicates the chromosome including its fitness cache.
func (c *Chromosome) clone() *Chromosome {
	dup := NewChromosome(c.genes)
	dup.fitness, dup.scored = c.fitness, c.scored
	return dup
}

// Valid reports whether c is a total Roman dominating function on g:
// every 0-vertex has a 2-neighbor and every 1-vertex has a neighbor
// with a positive label. A length mismatch with g or a label outside
// {0,1,2} is invalid.
func (c *Chromosome) Valid(g *core.Graph) bool {
	ids := g.Vertices()
	if len(c.genes) != len(ids) {
		return false
	}
	idx := indexOf(ids)

	for i, id := range ids {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return false
		}
		switch c.genes[i] {
		case labelZero:
			if !anyNeighbor(nbrs, idx, c.genes, labelTwo) {
				return false
			}
		case labelOne:
			if !anyPositiveNeighbor(nbrs, idx, c.genes) {
				return false
			}
		case labelTwo:
			continue
		default:
			return false
		}
	}

	return true
}

// repair raises labels in place until Valid holds. The pass order is
// deterministic (sorted vertices, lexicographic tie-breaks) and every
// change strictly increases some gene, so the loop terminates; labels
// never decrease, so already-satisfied vertices stay satisfied.
func (c *Chromosome) repair(g *core.Graph) {
	ids := g.Vertices()
	if len(c.genes) != len(ids) {
		return
	}
	idx := indexOf(ids)

	// Clamp stray labels first (crossover between repaired parents
	// cannot produce them, heuristic sentinels can).
	for i, gene := range c.genes {
		if gene > labelTwo {
			c.genes[i] = labelOne
		}
	}

	for changed := true; changed; {
		changed = false
		for i, id := range ids {
			nbrs, err := g.Neighbors(id)
			if err != nil || len(nbrs) == 0 {
				continue // isolated vertices are rejected upstream
			}
			switch c.genes[i] {
			case labelZero:
				if anyNeighbor(nbrs, idx, c.genes, labelTwo) {
					continue
				}
				// Promote the busiest neighbor to 2: it covers this
				// vertex and likely other 0-neighbors of its own.
				c.genes[idx[maxDegreeNeighbor(g, nbrs)]] = labelTwo
				changed = true
			case labelOne:
				if anyPositiveNeighbor(nbrs, idx, c.genes) {
					continue
				}
				c.genes[idx[nbrs[0]]] = labelOne
				changed = true
			}
		}
	}
	c.scored = false
}

// indexOf builds the vertex ID → gene index map for a sorted ID slice.
func indexOf(ids []string) map[string]int {
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}
	return idx
}

// anyNeighbor reports whether some neighbor carries exactly want.
func anyNeighbor(nbrs []string, idx map[string]int, genes []byte, want byte) bool {
	for _, nbr := range nbrs {
		if genes[idx[nbr]] == want {
			return true
		}
	}
	return false
}

// anyPositiveNeighbor reports whether some neighbor carries 1 or 2.
func anyPositiveNeighbor(nbrs []string, idx map[string]int, genes []byte) bool {
	for _, nbr := range nbrs {
		if gene := genes[idx[nbr]]; gene == labelOne || gene == labelTwo {
			return true
		}
	}
	return false
}

// maxDegreeNeighbor returns the neighbor with the highest degree;
// nbrs is sorted, so ties resolve lexicographically ascending.
func maxDegreeNeighbor(g *core.Graph, nbrs []string) string {
	best, bestDeg := nbrs[0], -1
	for _, nbr := range nbrs {
		if deg, err := g.Degree(nbr); err == nil && deg > bestDeg {
			best, bestDeg = nbr, deg
		}
	}
	return best
}
