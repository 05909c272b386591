//go:build !coach

package tuning

import "errors"

// ErrNotCoachBuild is returned by Tune when the binary was not built with
// `-tags coach`, since the evaluator has no mutable weight vector to tune
// without it.
var ErrNotCoachBuild = errors.New("tuning: built without -tags coach, nothing to tune")

// Tune always fails outside a coach build.
func Tune(samples []Sample, spread int32, cfg Config) ([]int32, error) {
	return nil, ErrNotCoachBuild
}
