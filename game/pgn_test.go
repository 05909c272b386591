package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scholarsMatePGN = `[Event "Casual game"]
[Site "?"]
[Date "2024.01.01"]
[Round "1"]
[White "Alice"]
[Black "Bob"]
[Result "1-0"]

1. e4 e5 2. Bc4 Nc6 3. Qh5 Nf6 4. Qxf7# 1-0
`

func TestLoadPGNPlaysEveryMove(t *testing.T) {
	g, err := LoadPGN(scholarsMatePGN)
	require.NoError(t, err)
	assert.Equal(t, 7, g.Ply())
	assert.Equal(t, "Alice", g.Tags["White"])
	assert.Equal(t, "Bob", g.Tags["Black"])
	assert.True(t, g.IsCheckmate())
}

func TestLoadPGNRejectsIllegalMove(t *testing.T) {
	bad := `[Event "?"]
[Site "?"]
[Date "?"]
[Round "?"]
[White "?"]
[Black "?"]
[Result "*"]

1. e4 e4 *
`
	_, err := LoadPGN(bad)
	assert.Error(t, err)
}

func TestGamePGNRoundTripsMoveCount(t *testing.T) {
	g := NewGame()
	for _, s := range []string{"e2e4", "e7e5", "g1f3", "b8c6"} {
		_, err := g.PlaySAN(s)
		require.NoError(t, err)
	}
	g.Tags["Result"] = "*"

	out := g.PGN()
	assert.Contains(t, out, "[Event \"?\"]")
	assert.Contains(t, out, "1. e4 e5 2. Nf3 Nc6")

	reloaded, err := LoadPGN(out)
	require.NoError(t, err)
	assert.Equal(t, g.Ply(), reloaded.Ply())
	assert.Equal(t, g.Position().Key, reloaded.Position().Key)
}

func TestMovetextTokensStripsCommentsAndClocks(t *testing.T) {
	tokens := movetextTokens("1. e4 { [%clk 0:01:00] } 1... e5 2. Nf3 1-0")
	assert.Equal(t, []string{"e4", "e5", "Nf3"}, tokens)
}

func TestSplitPGNExtractsTagPairs(t *testing.T) {
	tags, movetext := splitPGN(scholarsMatePGN)
	assert.Equal(t, "Alice", tags["White"])
	assert.Equal(t, "1-0", tags["Result"])
	assert.True(t, strings.HasPrefix(strings.TrimSpace(movetext), "1. e4 e5"))
}
