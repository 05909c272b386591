//go:build !coach

package tuning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTuneFailsWithoutCoachBuild(t *testing.T) {
	_, err := Tune(nil, 1, DefaultConfig())
	assert.ErrorIs(t, err, ErrNotCoachBuild)
}
