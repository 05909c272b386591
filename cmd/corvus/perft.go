package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/corvus-chess/corvus/engine"
)

// knownPerftPositions names the standard perft test positions by a short
// alias, matching the teacher's own perft tool (perft/perft.go).
var knownPerftPositions = map[string]string{
	"startpos": "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"kiwipete": "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"duplain":  "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
}

// runPerft runs the perft node-count scenarios: "corvus perft
// [--fen name-or-fen] <depth>". Flags must come before the depth, since
// flag parsing stops at the first positional argument.
func runPerft(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("perft", flag.ContinueOnError)
	fenFlag := fs.String("fen", "startpos", "position alias (startpos, kiwipete, duplain) or literal FEN")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: corvus perft [--fen name-or-fen] <depth>")
	}
	var depth int
	if _, err := fmt.Sscanf(fs.Arg(0), "%d", &depth); err != nil {
		return fmt.Errorf("perft: bad depth %q: %w", fs.Arg(0), err)
	}

	fen := *fenFlag
	if known, ok := knownPerftPositions[fen]; ok {
		fen = known
	}
	pos, err := engine.PositionFromFEN(fen)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "depth        nodes   captures enpassant castles   promotions   elapsed\n")
	fmt.Fprintf(w, "-----+------------+----------+---------+---------+----------+---------\n")
	for d := 1; d <= depth; d++ {
		start := time.Now()
		c := engine.Perft(pos, d)
		elapsed := time.Since(start)
		fmt.Fprintf(w, "%5d %12d %10d %9d %9d %10d %v\n",
			d, c.Nodes, c.Captures, c.EnPassant, c.Castles, c.Promotions, elapsed)
	}
	return nil
}
