// File: population.go
// Role: Population seeding and one-generation evolution.
package trd

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvldom/core"
)

// Population is a fixed-size pool of chromosomes evolving together.
type Population struct {
	individuals []*Chromosome
}

// NewPopulation seeds a population of size from heuristics: each
// heuristic except the last contributes one individual, the last one
// fills the remainder (diversified by the shared RNG).
//
// Preconditions on g: non-nil, non-empty, no isolated vertices.
// Constraints: at least one heuristic, size ≥ len(heuristics).
func NewPopulation(g *core.Graph, heuristics []Heuristic, size int, rng *rand.Rand) (*Population, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if g.HasIsolated() {
		return nil, ErrIsolatedVertices
	}
	if len(heuristics) == 0 {
		return nil, ErrNoHeuristics
	}
	if size < len(heuristics) {
		return nil, fmt.Errorf("%w: size=%d < heuristics=%d", ErrPopulationSize, size, len(heuristics))
	}

	individuals := make([]*Chromosome, 0, size)
	filler := heuristics[len(heuristics)-1]

	for _, h := range heuristics[:len(heuristics)-1] {
		c, err := h(g, rng)
		if err != nil {
			return nil, err
		}
		individuals = append(individuals, c)
	}
	for len(individuals) < size {
		c, err := filler(g, rng)
		if err != nil {
			return nil, err
		}
		individuals = append(individuals, c)
	}

	return &Population{individuals: individuals}, nil
}

// NewPopulationFrom wraps existing individuals without validation;
// intended for tests and custom evolution loops.
func NewPopulationFrom(individuals []*Chromosome) *Population {
	pool := make([]*Chromosome, len(individuals))
	copy(pool, individuals)
	return &Population{individuals: pool}
}

// Size returns the number of individuals.
func (p *Population) Size() int { return len(p.individuals) }

// Individuals returns a copy of the pool slice (the chromosomes are
// shared; treat them as read-only).
func (p *Population) Individuals() []*Chromosome {
	out := make([]*Chromosome, len(p.individuals))
	copy(out, p.individuals)
	return out
}

// Add appends an individual to the pool.
func (p *Population) Add(c *Chromosome) {
	p.individuals = append(p.individuals, c)
}

// Best returns the fittest individual (lowest weight; first of equals).
func (p *Population) Best() (*Chromosome, error) {
	if len(p.individuals) == 0 {
		return nil, ErrEmptyPopulation
	}
	best := p.individuals[0]
	for _, ind := range p.individuals[1:] {
		if ind.Fitness() < best.Fitness() {
			best = ind
		}
	}
	return best, nil
}

// Worst returns the least-fit individual (highest weight).
func (p *Population) Worst() (*Chromosome, error) {
	if len(p.individuals) == 0 {
		return nil, ErrEmptyPopulation
	}
	worst := p.individuals[0]
	for _, ind := range p.individuals[1:] {
		if ind.Fitness() > worst.Fitness() {
			worst = ind
		}
	}
	return worst, nil
}

// Evolve replaces the pool with the next generation: the current best
// survives unchanged (elitism), the rest are offspring of selected
// parents, repaired against g. Population size is preserved.
func (p *Population) Evolve(g *core.Graph, sel Selection, cross Crossover, rng *rand.Rand) error {
	size := len(p.individuals)
	if size == 0 {
		return ErrEmptyPopulation
	}

	elite, err := p.Best()
	if err != nil {
		return err
	}

	next := make([]*Chromosome, 0, size)
	next = append(next, elite.clone())

	for len(next) < size {
		a := sel.Select(p, rng)
		b := sel.Select(p, rng)

		childA, childB := cross.Crossover(a, b, rng)
		childA.repair(g)
		next = append(next, childA)
		if len(next) < size {
			childB.repair(g)
			next = append(next, childB)
		}
	}

	p.individuals = next
	return nil
}
