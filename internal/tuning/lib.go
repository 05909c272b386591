// Package tuning implements a particle-swarm optimizer over the
// evaluator's weight vector. The swarm itself (this file) is plain
// numeric code with no dependency on engine; score_coach.go wires it to
// engine.WeightVector/SetWeightVector behind the "coach" build tag,
// mirroring the teacher's lib.go/lib_coach.go split.
package tuning

import "math/rand"

// Config controls the swarm's search.
type Config struct {
	Particles int
	Iterations int
	Inertia    float64
	Cognitive  float64 // pull towards a particle's own best position
	Social     float64 // pull towards the swarm's best position
	Rand       *rand.Rand
}

// DefaultConfig returns reasonable PSO coefficients for a weight vector of
// a few hundred dimensions (Kennedy & Eberhart's canonical values).
func DefaultConfig() Config {
	return Config{
		Particles: 24,
		Iterations: 100,
		Inertia:    0.7,
		Cognitive:  1.4,
		Social:     1.4,
		Rand:       rand.New(rand.NewSource(1)),
	}
}

// Fitness scores a weight vector; lower is better (Swarm minimizes).
type Fitness func(weights []int32) float64

type particle struct {
	position []int32
	velocity []float64
	best     []int32
	bestCost float64
}

// Swarm runs the particle swarm for cfg.Iterations generations starting
// from seed (the evaluator's current weights) and returns the best vector
// found, never worse than seed itself.
func Swarm(seed []int32, spread int32, fit Fitness, cfg Config) []int32 {
	n := len(seed)
	particles := make([]particle, cfg.Particles)
	globalBest := append([]int32(nil), seed...)
	globalCost := fit(seed)

	for i := range particles {
		p := particle{
			position: make([]int32, n),
			velocity: make([]float64, n),
		}
		for j := 0; j < n; j++ {
			delta := cfg.Rand.Int31n(2*spread+1) - spread
			p.position[j] = seed[j] + delta
		}
		p.best = append([]int32(nil), p.position...)
		p.bestCost = fit(p.position)
		if p.bestCost < globalCost {
			globalCost = p.bestCost
			globalBest = append([]int32(nil), p.position...)
		}
		particles[i] = p
	}

	for iter := 0; iter < cfg.Iterations; iter++ {
		for i := range particles {
			p := &particles[i]
			for j := 0; j < n; j++ {
				r1, r2 := cfg.Rand.Float64(), cfg.Rand.Float64()
				p.velocity[j] = cfg.Inertia*p.velocity[j] +
					cfg.Cognitive*r1*float64(p.best[j]-p.position[j]) +
					cfg.Social*r2*float64(globalBest[j]-p.position[j])
				p.position[j] += int32(p.velocity[j])
			}
			cost := fit(p.position)
			if cost < p.bestCost {
				p.bestCost = cost
				p.best = append([]int32(nil), p.position...)
			}
			if cost < globalCost {
				globalCost = cost
				globalBest = append([]int32(nil), p.position...)
			}
		}
	}
	return globalBest
}
