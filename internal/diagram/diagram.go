// Package diagram renders a position to an SVG board, grounded on
// barakmich-chess and mikeb26-corentings-chess's use of
// github.com/ajstarks/svgo for the same purpose. It is pure presentation:
// nothing here feeds back into search or evaluation.
package diagram

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/corvus-chess/corvus/engine"
)

const squareSize = 48

var (
	lightSquare = "fill:#eeeed2"
	darkSquare  = "fill:#769656"
	whiteText   = "fill:#ffffff;font-family:serif;font-weight:bold"
	blackText   = "fill:#000000;font-family:serif;font-weight:bold"
)

// figureGlyph maps a Figure to the Unicode chess symbol drawn on the board,
// independent of side: callers pick the white or black glyph via color.
var figureGlyph = map[engine.Figure]string{
	engine.Pawn:   "♟",
	engine.Knight: "♞",
	engine.Bishop: "♝",
	engine.Rook:   "♜",
	engine.Queen:  "♛",
	engine.King:   "♚",
}

// Draw writes an 8x8 SVG board for pos to w, a1 in the bottom-left corner.
func Draw(w io.Writer, pos *engine.Position) {
	canvas := svg.New(w)
	side := squareSize * 8
	canvas.Start(side, side)

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			x := file * squareSize
			y := (7 - rank) * squareSize
			style := lightSquare
			if (rank+file)%2 == 0 {
				style = darkSquare
			}
			canvas.Rect(x, y, squareSize, squareSize, style)

			pi := pos.Get(engine.RankFile(rank, file))
			if pi == engine.NoPiece {
				continue
			}
			glyph, ok := figureGlyph[pi.Figure()]
			if !ok {
				continue
			}
			style = blackText
			if pi.IsWhite() {
				style = whiteText
			}
			canvas.Text(x+squareSize/2, y+squareSize*2/3, glyph, "text-anchor:middle;font-size:28px;"+style)
		}
	}

	canvas.End()
}
