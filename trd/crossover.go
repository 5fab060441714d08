// File: crossover.go
// Role: Recombination strategies.
//
// Crossover alone may break validity; Population.Evolve repairs every
// offspring against the graph before it joins the next generation.
package trd

import "math/rand"

// Crossover recombines two parents into two children. Parents are
// never mutated; when the rate gate does not fire, the children are
// plain copies.
type Crossover interface {
	Crossover(a, b *Chromosome, rng *rand.Rand) (*Chromosome, *Chromosome)
}

// SinglePoint cuts both parents at one random point and swaps the
// tails. Rate is the probability of recombining, in [0,1].
type SinglePoint struct {
	Rate float64
}

// Crossover implements Crossover.
func (s SinglePoint) Crossover(a, b *Chromosome, rng *rand.Rand) (*Chromosome, *Chromosome) {
	n := a.Len()
	if n < 2 || rng.Float64() >= s.Rate {
		return a.clone(), b.clone()
	}

	point := 1 + rng.Intn(n-1)

	ga, gb := a.Genes(), b.Genes()
	childA := make([]byte, n)
	childB := make([]byte, n)
	copy(childA, ga[:point])
	copy(childA[point:], gb[point:])
	copy(childB, gb[:point])
	copy(childB[point:], ga[point:])

	return NewChromosome(childA), NewChromosome(childB)
}

// TwoPoint cuts both parents at two random points and swaps the middle
// segment. Rate is the probability of recombining, in [0,1].
type TwoPoint struct {
	Rate float64
}

// Crossover implements Crossover.
func (t TwoPoint) Crossover(a, b *Chromosome, rng *rand.Rand) (*Chromosome, *Chromosome) {
	n := a.Len()
	if n < 3 || rng.Float64() >= t.Rate {
		return a.clone(), b.clone()
	}

	lo := 1 + rng.Intn(n-2)
	hi := lo + 1 + rng.Intn(n-lo-1)

	ga, gb := a.Genes(), b.Genes()
	childA := make([]byte, n)
	childB := make([]byte, n)
	copy(childA, ga)
	copy(childB, gb)
	copy(childA[lo:hi], gb[lo:hi])
	copy(childB[lo:hi], ga[lo:hi])

	return NewChromosome(childA), NewChromosome(childB)
}
