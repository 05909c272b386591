//go:build coach

package tuning

import (
	"math/rand"
	"testing"

	"github.com/corvus-chess/corvus/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTuneRestoresEvaluatorStateOnFitnessEvaluation(t *testing.T) {
	before := engine.WeightVector()
	samples := []Sample{{Position: engine.NewPosition(), Outcome: 0.5}}

	fit := fitness(samples)
	fit(append([]int32(nil), before...))

	assert.Equal(t, before, engine.WeightVector())
}

func TestTuneReturnsAVectorOfTheRightLength(t *testing.T) {
	before := engine.WeightVector()
	samples := []Sample{
		{Position: engine.NewPosition(), Outcome: 0.5},
	}
	cfg := Config{Particles: 2, Iterations: 1, Inertia: 0.5, Cognitive: 1, Social: 1, Rand: rand.New(rand.NewSource(1))}

	got, err := Tune(samples, 1, cfg)
	require.NoError(t, err)
	assert.Len(t, got, len(before))

	engine.SetWeightVector(before)
}
