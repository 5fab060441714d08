// File: trials.go
// Role: Independent repeated searches and their aggregation.
package trd

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvldom/core"
)

// Trial reports one independent Solve run within RunTrials.
type Trial struct {
	// Run is the zero-based trial index.
	Run int

	// Fitness is the weight of the best labeling found.
	Fitness int

	// Generations is the number of evolution steps executed.
	Generations int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Summary aggregates a batch of trials.
type Summary struct {
	Trials        int
	BestFitness   int
	MeanFitness   float64
	StdDevFitness float64
	MeanElapsed   time.Duration
}

// RunTrials executes trials independent searches on g and returns the
// per-trial results in run order plus their Summary.
//
// Each trial runs on its own RNG stream derived from Options.Seed via
// SplitMix64 mixing, so the batch is reproducible for a fixed seed no
// matter how the worker pool schedules it. Workers are capped at
// GOMAXPROCS. The first error cancels the batch.
func RunTrials(ctx context.Context, g *core.Graph, trials int, opts Options) ([]Trial, Summary, error) {
	if trials < 1 {
		return nil, Summary{}, fmt.Errorf("%w: trials=%d", ErrOptionViolation, trials)
	}

	// Resolve the zero-seed policy once so every derived stream agrees.
	baseSeed := opts.Seed
	if baseSeed == 0 {
		baseSeed = defaultRNGSeed
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := runtime.GOMAXPROCS(0)
	if workers > trials {
		workers = trials
	}

	results := make([]Trial, trials)
	errs := make([]error, trials)
	jobs := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for run := range jobs {
				o := opts
				o.Seed = deriveSeed(baseSeed, uint64(run))

				start := time.Now()
				res, err := Solve(ctx, g, o)
				if err != nil {
					errs[run] = fmt.Errorf("trial %d: %w", run, err)
					cancel()
					continue
				}
				results[run] = Trial{
					Run:         run,
					Fitness:     res.Fitness,
					Generations: res.Generations,
					Elapsed:     time.Since(start),
				}
			}
		}()
	}

	for run := 0; run < trials; run++ {
		jobs <- run
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, Summary{}, err
		}
	}

	return results, summarize(results), nil
}

// summarize folds a non-empty trial batch into a Summary.
func summarize(trials []Trial) Summary {
	fitness := make([]float64, len(trials))
	var elapsed time.Duration
	best := trials[0].Fitness
	for i, tr := range trials {
		fitness[i] = float64(tr.Fitness)
		elapsed += tr.Elapsed
		if tr.Fitness < best {
			best = tr.Fitness
		}
	}

	stddev := 0.0
	if len(trials) > 1 {
		stddev = stat.StdDev(fitness, nil)
	}

	return Summary{
		Trials:        len(trials),
		BestFitness:   best,
		MeanFitness:   stat.Mean(fitness, nil),
		StdDevFitness: stddev,
		MeanElapsed:   elapsed / time.Duration(len(trials)),
	}
}
