package trd_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvldom/trd"
)

func TestSinglePoint_SwapsTails(t *testing.T) {
	a := trd.NewChromosome([]byte{2, 2, 2, 2, 2, 2})
	b := trd.NewChromosome([]byte{0, 0, 0, 0, 0, 0})
	rng := rand.New(rand.NewSource(3))

	childA, childB := trd.SinglePoint{Rate: 1.0}.Crossover(a, b, rng)

	ga, gb := childA.Genes(), childB.Genes()
	assert.Len(t, ga, 6)
	assert.Len(t, gb, 6)

	// Children are complementary: position by position they split the
	// parents' genes between them.
	for i := range ga {
		assert.Equal(t, byte(2), ga[i]+gb[i], "position %d", i)
	}

	// A cut point in [1,n) guarantees each child holds material from
	// both parents.
	assert.Contains(t, ga, byte(2))
	assert.Contains(t, ga, byte(0))
}

func TestSinglePoint_RateZeroCopiesParents(t *testing.T) {
	a := trd.NewChromosome([]byte{1, 2, 0, 1})
	b := trd.NewChromosome([]byte{0, 0, 2, 2})
	rng := rand.New(rand.NewSource(1))

	childA, childB := trd.SinglePoint{Rate: 0}.Crossover(a, b, rng)

	assert.Equal(t, a.Genes(), childA.Genes())
	assert.Equal(t, b.Genes(), childB.Genes())
}

func TestSinglePoint_ShortParentsCopied(t *testing.T) {
	a := trd.NewChromosome([]byte{2})
	b := trd.NewChromosome([]byte{0})
	rng := rand.New(rand.NewSource(1))

	childA, childB := trd.SinglePoint{Rate: 1.0}.Crossover(a, b, rng)

	assert.Equal(t, []byte{2}, childA.Genes())
	assert.Equal(t, []byte{0}, childB.Genes())
}

func TestSinglePoint_ParentsUntouched(t *testing.T) {
	a := trd.NewChromosome([]byte{2, 1, 0, 2, 1})
	b := trd.NewChromosome([]byte{0, 2, 1, 0, 2})
	rng := rand.New(rand.NewSource(11))

	_, _ = trd.SinglePoint{Rate: 1.0}.Crossover(a, b, rng)

	assert.Equal(t, []byte{2, 1, 0, 2, 1}, a.Genes())
	assert.Equal(t, []byte{0, 2, 1, 0, 2}, b.Genes())
}

func TestTwoPoint_SwapsMiddleSegment(t *testing.T) {
	a := trd.NewChromosome([]byte{2, 2, 2, 2, 2, 2, 2, 2})
	b := trd.NewChromosome([]byte{0, 0, 0, 0, 0, 0, 0, 0})
	rng := rand.New(rand.NewSource(8))

	childA, childB := trd.TwoPoint{Rate: 1.0}.Crossover(a, b, rng)

	ga, gb := childA.Genes(), childB.Genes()
	for i := range ga {
		assert.Equal(t, byte(2), ga[i]+gb[i], "position %d", i)
	}

	// Both cut points lie strictly inside, so the first gene always
	// stays with its own parent.
	assert.Equal(t, byte(2), ga[0])
	assert.Equal(t, byte(0), gb[0])
	assert.Contains(t, ga, byte(0))
}

func TestTwoPoint_ShortParentsCopied(t *testing.T) {
	a := trd.NewChromosome([]byte{2, 0})
	b := trd.NewChromosome([]byte{1, 1})
	rng := rand.New(rand.NewSource(1))

	childA, childB := trd.TwoPoint{Rate: 1.0}.Crossover(a, b, rng)

	assert.Equal(t, []byte{2, 0}, childA.Genes())
	assert.Equal(t, []byte{1, 1}, childB.Genes())
}
