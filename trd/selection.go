// File: selection.go
// Role: Parent selection strategies.
package trd

import "math/rand"

// Selection picks one parent from a population. Implementations must
// not mutate the population and must tolerate size-1 populations.
type Selection interface {
	Select(p *Population, rng *rand.Rand) *Chromosome
}

// KTournament selects the fittest of K uniformly drawn contestants.
// Larger K raises selection pressure; K=1 degenerates to uniform
// sampling.
type KTournament struct {
	K int
}

// Select implements Selection.
func (s KTournament) Select(p *Population, rng *rand.Rand) *Chromosome {
	size := p.Size()
	k := s.K
	if k < 1 {
		k = 1
	}

	best := p.individuals[rng.Intn(size)]
	for i := 1; i < k; i++ {
		contender := p.individuals[rng.Intn(size)]
		if contender.Fitness() < best.Fitness() {
			best = contender
		}
	}

	return best
}

// Roulette selects proportionally to inverted fitness: an individual's
// wheel slice is (worst − fitness + 1), so lighter labelings are drawn
// more often while the worst one keeps a minimal slice.
type Roulette struct{}

// Select implements Selection.
func (Roulette) Select(p *Population, rng *rand.Rand) *Chromosome {
	worst := 0
	for _, ind := range p.individuals {
		if f := ind.Fitness(); f > worst {
			worst = f
		}
	}

	total := 0
	for _, ind := range p.individuals {
		total += worst - ind.Fitness() + 1
	}

	spin := rng.Intn(total)
	for _, ind := range p.individuals {
		spin -= worst - ind.Fitness() + 1
		if spin < 0 {
			return ind
		}
	}

	// Unreachable: the slices sum to total.
	return p.individuals[len(p.individuals)-1]
}
