package game

import (
	"testing"

	"github.com/corvus-chess/corvus/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameStartsAtInitialPosition(t *testing.T) {
	g := NewGame()
	assert.Equal(t, 0, g.Ply())
	assert.Len(t, g.LegalMoves(), 20)
}

func TestPlayMoveAdvancesPosition(t *testing.T) {
	g := NewGame()
	m, err := g.ValidateMove("e2e4")
	require.NoError(t, err)

	require.NoError(t, g.PlayMove(m))
	assert.Equal(t, 1, g.Ply())

	last, ok := g.LastMove()
	require.True(t, ok)
	assert.Equal(t, m, last)
}

func TestPlayMoveRejectsIllegalMove(t *testing.T) {
	g := NewGame()
	m := engine.NewMove(engine.SquareE2, engine.SquareE5, engine.WhitePawn, engine.NoPiece, engine.NoPiece, false, false, false)
	err := g.PlayMove(m)
	assert.ErrorIs(t, err, engine.ErrIllegalMove)
	assert.Equal(t, 0, g.Ply())
}

func TestUndoMoveRestoresPreviousPosition(t *testing.T) {
	g := NewGame()
	before := g.Position()

	m, err := g.ValidateMove("g1f3")
	require.NoError(t, err)
	require.NoError(t, g.PlayMove(m))
	assert.Equal(t, 1, g.Ply())

	ok := g.UndoMove()
	require.True(t, ok)
	assert.Equal(t, 0, g.Ply())
	assert.Equal(t, before.Key, g.Position().Key)
}

func TestUndoMoveOnEmptyHistoryReportsFalse(t *testing.T) {
	g := NewGame()
	assert.False(t, g.UndoMove())
}

func TestPlaySANResolvesStandardAlgebraic(t *testing.T) {
	g := NewGame()
	m, err := g.PlaySAN("Nf3")
	require.NoError(t, err)
	assert.Equal(t, engine.SquareG1, m.From())
	assert.Equal(t, engine.SquareF3, m.To())
}

func TestGetPositionCountDetectsRepetition(t *testing.T) {
	g := NewGame()
	moves := []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"}
	for _, s := range moves {
		_, err := g.PlaySAN(s)
		require.NoError(t, err)
	}
	assert.True(t, g.IsDrawByRepetition())
	assert.GreaterOrEqual(t, g.GetPositionCount(), 3)
}

func TestIsCheckmateDetectsFoolsMate(t *testing.T) {
	g := NewGame()
	for _, s := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		_, err := g.PlaySAN(s)
		require.NoError(t, err)
	}
	assert.True(t, g.IsCheckmate())
	assert.False(t, g.IsStalemate())
}

func TestNewGameFromFENRejectsInvalidFen(t *testing.T) {
	_, err := NewGameFromFEN("not a fen")
	assert.Error(t, err)
}
