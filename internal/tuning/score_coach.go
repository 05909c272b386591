//go:build coach

// score_coach.go wires the generic swarm in lib.go to the evaluator's
// weight vector: it is only compiled into a `-tags coach` build, the
// point at which engine.SetWeightVector stops being a no-op. Grounded on
// the teacher's score.go/score_coach.go split feeding its tuner.
package tuning

import (
	"math"

	"github.com/corvus-chess/corvus/engine"
)

// texelK is the logistic scaling constant from Texel's tuning method,
// converting a centipawn score into a win-probability estimate.
const texelK = 1.0 / 400.0

func sigmoid(cp int32) float64 {
	return 1 / (1 + math.Pow(10, -texelK*float64(cp)))
}

// fitness returns a Fitness closure over samples: mean squared error
// between the evaluator's win-probability estimate (with weights applied)
// and each sample's recorded game outcome. Lower is better, so the swarm
// minimizes prediction error directly.
func fitness(samples []Sample) Fitness {
	return func(weights []int32) float64 {
		original := engine.WeightVector()
		defer engine.SetWeightVector(original)
		engine.SetWeightVector(weights)

		var sum float64
		for _, s := range samples {
			cp := engine.Evaluate(s.Position)
			err := s.Outcome - sigmoid(cp)
			sum += err * err
		}
		return sum / float64(len(samples))
	}
}

// Tune runs the particle swarm against samples, starting from the
// evaluator's current weights, and installs the best vector found back
// into the evaluator before returning it.
func Tune(samples []Sample, spread int32, cfg Config) ([]int32, error) {
	best := Swarm(engine.WeightVector(), spread, fitness(samples), cfg)
	engine.SetWeightVector(best)
	return best, nil
}
