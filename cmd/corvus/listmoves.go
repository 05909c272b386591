package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/corvus-chess/corvus/engine"
)

// runListMoves prints every legal move from a position in UCI
// long-algebraic form, one per line.
func runListMoves(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("listmoves", flag.ContinueOnError)
	fen := fs.String("fen", "startpos", "position to generate moves from")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pos, err := positionFromFENFlag(*fen)
	if err != nil {
		return err
	}

	var moves []engine.Move
	pos.GenerateMoves(engine.AllMoves, ^engine.Bitboard(0), &moves)

	for _, m := range moves {
		if !pos.IsLegal(m) {
			continue
		}
		fmt.Fprintln(w, m.UCI())
	}
	return nil
}
