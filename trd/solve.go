// File: solve.go
// Role: The single-run genetic search loop.
package trd

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/lvldom/core"
)

// Solve runs one genetic search on g and returns the best labeling
// found. Zero-valued Options fields take their defaults; an explicit
// out-of-domain value is ErrOptionViolation. The context is checked
// once per generation, so cancellation surfaces promptly even on large
// graphs.
func Solve(ctx context.Context, g *core.Graph, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}

	opts, err := normalizeOptions(g, opts)
	if err != nil {
		return Result{}, err
	}

	rng := rngFromSeed(opts.Seed)

	pop, err := NewPopulation(g, opts.Heuristics, opts.PopSize, rng)
	if err != nil {
		return Result{}, err
	}

	best, err := pop.Best()
	if err != nil {
		return Result{}, err
	}
	best = best.clone()

	generations := 0
	stagnant := 0
	for gen := 0; gen < opts.Generations; gen++ {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}

		if err = pop.Evolve(g, opts.Selection, opts.Crossover, rng); err != nil {
			return Result{}, err
		}
		generations++

		cur, berr := pop.Best()
		if berr != nil {
			return Result{}, berr
		}
		if cur.Fitness() < best.Fitness() {
			best = cur.clone()
			stagnant = 0
		} else {
			stagnant++
		}
		if stagnant >= opts.MaxStagnant {
			break
		}
	}

	return Result{
		Best:        best,
		Fitness:     best.Fitness(),
		Generations: generations,
		Assignment:  assignment(g, best),
	}, nil
}

// normalizeOptions fills defaults and validates domains.
func normalizeOptions(g *core.Graph, opts Options) (Options, error) {
	defaults := DefaultOptions()

	if opts.Generations == 0 {
		opts.Generations = defaults.Generations
	}
	if opts.MaxStagnant == 0 {
		opts.MaxStagnant = defaults.MaxStagnant
	}
	if opts.TournamentK == 0 {
		opts.TournamentK = defaults.TournamentK
	}
	if opts.CrossoverRate == 0 {
		opts.CrossoverRate = defaults.CrossoverRate
	}
	if opts.Heuristics == nil {
		// H1 appears twice so it also serves as the population filler.
		opts.Heuristics = []Heuristic{H1, H2, H3, H4, H5, H1}
	}

	switch {
	case opts.Generations < 0:
		return opts, fmt.Errorf("%w: generations=%d", ErrOptionViolation, opts.Generations)
	case opts.MaxStagnant < 0:
		return opts, fmt.Errorf("%w: max_stagnant=%d", ErrOptionViolation, opts.MaxStagnant)
	case opts.TournamentK < 1:
		return opts, fmt.Errorf("%w: tournament_size=%d", ErrOptionViolation, opts.TournamentK)
	case opts.CrossoverRate < 0 || opts.CrossoverRate > 1:
		return opts, fmt.Errorf("%w: crossover_rate=%f", ErrOptionViolation, opts.CrossoverRate)
	case opts.PopSize < 0:
		return opts, fmt.Errorf("%w: pop_size=%d", ErrOptionViolation, opts.PopSize)
	}

	if opts.PopSize == 0 {
		auto := int(math.Ceil(float64(g.VertexCount()) / popSizeDivisor))
		if auto < len(opts.Heuristics) {
			auto = len(opts.Heuristics)
		}
		opts.PopSize = auto
	}

	if opts.Selection == nil {
		opts.Selection = KTournament{K: opts.TournamentK}
	}
	if opts.Crossover == nil {
		opts.Crossover = SinglePoint{Rate: opts.CrossoverRate}
	}

	return opts, nil
}

// assignment maps each vertex ID to its label in c.
func assignment(g *core.Graph, c *Chromosome) map[string]byte {
	ids := g.Vertices()
	genes := c.Genes()
	if len(genes) != len(ids) {
		return nil
	}
	out := make(map[string]byte, len(ids))
	for i, id := range ids {
		out[id] = genes[i]
	}
	return out
}
