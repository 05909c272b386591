package uci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvus-chess/corvus/engine"
)

func TestSetOptionClearHash(t *testing.T) {
	s := NewSession(nil)
	s.cache.Set(engine.CachedPosition{Key: 1})
	require.NoError(t, s.Execute("setoption name ClearHash"))
	assert.Equal(t, uint64(0), s.cache.Positions)
}

func TestSetOptionHashResizesCache(t *testing.T) {
	s := NewSession(nil)
	require.NoError(t, s.Execute("setoption name Hash value 1"))
	assert.Same(t, s.cache, s.search.Cache)
}

func TestSetOptionMultiPVValidatesRange(t *testing.T) {
	s := NewSession(nil)
	require.NoError(t, s.Execute("setoption name MultiPV value 4"))
	assert.Equal(t, 4, s.search.Options.MultiPV)

	err := s.Execute("setoption name MultiPV value 0")
	assert.Error(t, err)
}

func TestSetOptionUCIAnalyseMode(t *testing.T) {
	s := NewSession(nil)
	require.NoError(t, s.Execute("setoption name UCI_AnalyseMode value true"))
	assert.True(t, s.search.Options.AnalyzeMode)
}

func TestSetOptionEvalTermToggles(t *testing.T) {
	s := NewSession(nil)
	defer func() { engine.EvalTerms.Mobility = true }()

	require.NoError(t, s.Execute("setoption name Mobility value false"))
	assert.False(t, engine.EvalTerms.Mobility)
}

func TestSetOptionUCILimitStrength(t *testing.T) {
	s := NewSession(nil)
	require.NoError(t, s.Execute("setoption name UCI_LimitStrength value true"))
	assert.True(t, s.search.Options.LimitStrength)
}

func TestSetOptionUCIEloScalesMoveError(t *testing.T) {
	s := NewSession(nil)
	require.NoError(t, s.Execute("setoption name UCI_Elo value 1350"))
	assert.Equal(t, int32(1350), s.search.Options.TargetElo)
	assert.Equal(t, int32(maxMoveError), s.search.Options.MoveError)

	require.NoError(t, s.Execute("setoption name UCI_Elo value 2850"))
	assert.Equal(t, int32(0), s.search.Options.MoveError)
}

func TestSetOptionRejectsUnknownName(t *testing.T) {
	s := NewSession(nil)
	assert.Error(t, s.Execute("setoption name NotAThing value 1"))
}

func TestSetOptionRejectsMissingValue(t *testing.T) {
	s := NewSession(nil)
	assert.Error(t, s.Execute("setoption name Hash"))
}
