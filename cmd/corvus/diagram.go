package main

import (
	"flag"
	"os"

	"github.com/corvus-chess/corvus/internal/diagram"
)

// runDiagram renders a position to an SVG file via internal/diagram.
func runDiagram(args []string) error {
	fs := flag.NewFlagSet("diagram", flag.ContinueOnError)
	fen := fs.String("fen", "startpos", "position to render")
	out := fs.String("out", "board.svg", "output SVG path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pos, err := positionFromFENFlag(*fen)
	if err != nil {
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()

	diagram.Draw(f, pos)
	return nil
}
