package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"

	"github.com/corvus-chess/corvus/internal/tuning"
)

// runTune runs the evaluation-parameter tuner against a PGN corpus:
// "corvus tune [--spread N] [--particles N] [--iterations N] [--seed N]
// <corpus.pgn>". Flags must come before the corpus path, since flag
// parsing stops at the first positional argument.
// Outside a `-tags coach` build, internal/tuning.Tune always reports
// tuning.ErrNotCoachBuild; this subcommand exists in every build so
// "corvus tune" gives a clear explanation rather than "unknown subcommand".
func runTune(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("tune", flag.ContinueOnError)
	spread := fs.Int("spread", 8, "maximum per-weight perturbation when seeding particles")
	particles := fs.Int("particles", 24, "swarm size")
	iterations := fs.Int("iterations", 100, "swarm generations")
	seed := fs.Int64("seed", 1, "PRNG seed, for reproducible runs")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: corvus tune [--spread N] [--particles N] [--iterations N] [--seed N] <corpus.pgn>")
	}

	samples, err := tuning.LoadPGNCorpus(fs.Arg(0))
	if err != nil {
		return err
	}

	cfg := tuning.Config{
		Particles:  *particles,
		Iterations: *iterations,
		Inertia:    0.7,
		Cognitive:  1.4,
		Social:     1.4,
		Rand:       rand.New(rand.NewSource(*seed)),
	}

	best, err := tuning.Tune(samples, int32(*spread), cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "tuned %d samples, %d weights:\n", len(samples), len(best))
	for i, x := range best {
		fmt.Fprintf(w, "%d: %d\n", i, x)
	}
	return nil
}
