//go:build !coach

package engine

import "testing"

func TestTuningDisabledOutsideCoachBuild(t *testing.T) {
	if TuningEnabled() {
		t.Error("TuningEnabled should be false without -tags coach")
	}
	if WeightVector() != nil {
		t.Error("WeightVector should be nil without -tags coach")
	}
}
