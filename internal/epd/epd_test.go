package epd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineExtractsBestMoveAndID(t *testing.T) {
	line := `rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - bm e4; id "opening 1";`
	rec, err := ParseLine(line)
	require.NoError(t, err)
	assert.Equal(t, "opening 1", rec.ID)
	assert.Equal(t, []string{"e4"}, rec.BestMoves)
	assert.NotNil(t, rec.Position)
}

func TestParseLineExtractsAvoidMove(t *testing.T) {
	line := `4k3/8/8/8/8/8/8/R3K3 w - - am Ra8;`
	rec, err := ParseLine(line)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ra8"}, rec.AvoidMoves)
}

func TestParseLineRejectsTooFewFields(t *testing.T) {
	_, err := ParseLine("not an epd line")
	assert.Error(t, err)
}

func TestLoadFileSkipsBlankAndCommentLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "suite.epd")
	content := "# a comment\n\nrnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - bm e4; id \"one\";\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	records, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "one", records[0].ID)
}
