package trd_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldom/trd"
)

func TestRunTrials_RunOrderAndSummary(t *testing.T) {
	g := buildCycle(t, 7)

	trials, summary, err := trd.RunTrials(context.Background(), g, 4, quickOptions(21))
	require.NoError(t, err)
	require.Len(t, trials, 4)

	best := trials[0].Fitness
	mean := 0.0
	for i, tr := range trials {
		assert.Equal(t, i, tr.Run)
		assert.Positive(t, tr.Fitness)
		assert.Positive(t, tr.Generations)
		if tr.Fitness < best {
			best = tr.Fitness
		}
		mean += float64(tr.Fitness)
	}
	mean /= float64(len(trials))

	assert.Equal(t, 4, summary.Trials)
	assert.Equal(t, best, summary.BestFitness)
	assert.InDelta(t, mean, summary.MeanFitness, 1e-9)
	assert.GreaterOrEqual(t, summary.StdDevFitness, 0.0)
}

// Per-trial seeds are derived from the base seed and the run index, so
// the batch is reproducible regardless of worker scheduling.
func TestRunTrials_Reproducible(t *testing.T) {
	g := buildCycle(t, 9)

	first, _, err := trd.RunTrials(context.Background(), g, 6, quickOptions(42))
	require.NoError(t, err)
	second, _, err := trd.RunTrials(context.Background(), g, 6, quickOptions(42))
	require.NoError(t, err)

	for i := range first {
		assert.Equal(t, first[i].Fitness, second[i].Fitness, "trial %d", i)
		assert.Equal(t, first[i].Generations, second[i].Generations, "trial %d", i)
	}
}

func TestRunTrials_SingleTrial(t *testing.T) {
	g := buildStar(t)

	trials, summary, err := trd.RunTrials(context.Background(), g, 1, quickOptions(5))
	require.NoError(t, err)
	require.Len(t, trials, 1)

	assert.Equal(t, trials[0].Fitness, summary.BestFitness)
	assert.Zero(t, summary.StdDevFitness)
	assert.Equal(t, float64(trials[0].Fitness), summary.MeanFitness)
}

func TestRunTrials_TooFewTrials(t *testing.T) {
	g := buildStar(t)

	_, _, err := trd.RunTrials(context.Background(), g, 0, quickOptions(1))
	assert.ErrorIs(t, err, trd.ErrOptionViolation)
}

func TestRunTrials_PropagatesSolveErrors(t *testing.T) {
	_, _, err := trd.RunTrials(context.Background(), nil, 3, quickOptions(1))
	assert.ErrorIs(t, err, trd.ErrNilGraph)
}

func TestRunTrials_ContextCancellation(t *testing.T) {
	g := buildCycle(t, 8)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := trd.RunTrials(ctx, g, 3, quickOptions(1))
	assert.ErrorIs(t, err, context.Canceled)
}
