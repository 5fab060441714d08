// Package trd option and error definitions.
package trd

import "errors"

// Sentinel errors for solver construction and execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("trd: graph is nil")

	// ErrEmptyGraph is returned when the graph has no vertices.
	ErrEmptyGraph = errors.New("trd: graph has no vertices")

	// ErrIsolatedVertices is returned when the graph contains a
	// degree-zero vertex; no valid labeling exists for such a graph.
	ErrIsolatedVertices = errors.New("trd: graph has isolated vertices")

	// ErrNoHeuristics is returned when the seeding heuristic list is empty.
	ErrNoHeuristics = errors.New("trd: no seeding heuristics")

	// ErrPopulationSize is returned when the requested population is
	// smaller than the number of seeding heuristics.
	ErrPopulationSize = errors.New("trd: population smaller than heuristic count")

	// ErrHeuristicFailed is returned when a seeding heuristic cannot
	// produce a chromosome.
	ErrHeuristicFailed = errors.New("trd: heuristic failed")

	// ErrEmptyPopulation is returned by queries on an empty population.
	ErrEmptyPopulation = errors.New("trd: population is empty")

	// ErrOptionViolation is returned when an Options field is out of domain.
	ErrOptionViolation = errors.New("trd: invalid option")
)

// Default algorithm parameters; mirrored by DefaultOptions.
const (
	defaultGenerations   = 1000
	defaultMaxStagnant   = 100
	defaultTournamentK   = 5
	defaultCrossoverRate = 0.9

	// popSizeDivisor scales the automatic population size: when
	// Options.PopSize == 0, the population is ⌈V / popSizeDivisor⌉,
	// floored at the heuristic count.
	popSizeDivisor = 1.5
)

// Options holds the tunable parameters of the genetic search.
// The zero value of a field selects its default, so a partially filled
// struct (e.g. decoded from a YAML params file) is usable directly.
type Options struct {
	// PopSize is the population size; 0 derives it from the vertex count.
	PopSize int `yaml:"pop_size"`

	// Generations bounds the evolution loop.
	Generations int `yaml:"generations"`

	// MaxStagnant stops the search early after this many generations
	// without improvement.
	MaxStagnant int `yaml:"max_stagnant"`

	// TournamentK is the tournament size for the default selection.
	TournamentK int `yaml:"tournament_size"`

	// CrossoverRate is the probability of recombining a parent pair,
	// in [0,1].
	CrossoverRate float64 `yaml:"crossover_rate"`

	// Seed fixes all randomness; 0 selects the stable default stream.
	Seed int64 `yaml:"seed"`

	// Heuristics overrides the seeding set; nil selects
	// H1,H2,H3,H4,H5 with H1 as the population filler.
	Heuristics []Heuristic `yaml:"-"`

	// Selection overrides the parent selection strategy; nil selects
	// KTournament{K: TournamentK}.
	Selection Selection `yaml:"-"`

	// Crossover overrides the recombination strategy; nil selects
	// SinglePoint{Rate: CrossoverRate}.
	Crossover Crossover `yaml:"-"`
}

// DefaultOptions returns the parameter set used when a field is zero:
// 1000 generations, early stop after 100 stagnant generations,
// 5-tournament selection, single-point crossover at rate 0.9,
// population size derived from the graph.
func DefaultOptions() Options {
	return Options{
		PopSize:       0,
		Generations:   defaultGenerations,
		MaxStagnant:   defaultMaxStagnant,
		TournamentK:   defaultTournamentK,
		CrossoverRate: defaultCrossoverRate,
		Seed:          0,
	}
}

// Result reports the outcome of one Solve run.
type Result struct {
	// Best is the fittest chromosome found.
	Best *Chromosome

	// Fitness is Best's labeling weight.
	Fitness int

	// Generations is the number of evolution steps actually executed.
	Generations int

	// Assignment maps vertex ID → label for the best labeling.
	Assignment map[string]byte
}
