package diagram

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvus-chess/corvus/engine"
)

func TestDrawEmitsValidSVGEnvelope(t *testing.T) {
	pos := engine.NewPosition()
	var buf bytes.Buffer
	Draw(&buf, pos)

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
}

func TestDrawPlacesOneGlyphPerOccupiedSquare(t *testing.T) {
	pos, err := engine.PositionFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	var buf bytes.Buffer
	Draw(&buf, pos)

	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("♚")))
}
