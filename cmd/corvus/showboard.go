package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/corvus-chess/corvus/engine"
)

// runShowBoard pretty-prints a position with ANSI square coloring,
// grounded on daystram-gambit's board-rendering conventions (alternating
// light/dark squares, uppercase white pieces).
func runShowBoard(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("showboard", flag.ContinueOnError)
	fen := fs.String("fen", "startpos", "position to render")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pos, err := positionFromFENFlag(*fen)
	if err != nil {
		return err
	}

	light := color.New(color.BgHiWhite, color.FgBlack)
	dark := color.New(color.BgGreen, color.FgBlack)

	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(w, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			pi := pos.Get(engine.RankFile(rank, file))
			glyph := pi.String()
			if glyph == " " {
				glyph = "."
			}
			sq := light
			if (rank+file)%2 == 0 {
				sq = dark
			}
			sq.Fprintf(w, " %s ", glyph)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "   a  b  c  d  e  f  g  h")
	fmt.Fprintf(w, "\nFEN: %s\n", pos.String())
	return nil
}
