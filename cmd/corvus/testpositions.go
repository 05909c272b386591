package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/corvus-chess/corvus/engine"
	"github.com/corvus-chess/corvus/internal/epd"
)

// runTestPositions runs an EPD suite through the searcher and reports
// pass/fail per record, grounded on the teacher's epd.go/epd_ast.go bm/am
// opcode handling.
func runTestPositions(w io.Writer, args []string, cfg engine.Config) error {
	fs := flag.NewFlagSet("testpositions", flag.ContinueOnError)
	depth := fs.Int("depth", 6, "fixed search depth per position")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: corvus testpositions <suite.epd>")
	}

	records, err := epd.LoadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	cache := engine.NewCache(cfg.HashMB)
	searcher := engine.NewSearcher(cache)
	cfg.Apply(searcher)

	pass, fail := 0, 0
	for i, rec := range records {
		tc := engine.NewFixedDepthTimeControl(rec.Position, *depth)
		tc.Start(false)
		move, _, _ := searcher.Search(rec.Position, tc)

		ok := recordPasses(rec, move)
		if ok {
			pass++
		} else {
			fail++
		}

		label := rec.ID
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}
		fmt.Fprintf(w, "%-20s %-6s played %s\n", label, verdict(ok), move.UCI())
	}

	fmt.Fprintf(w, "\n%d passed, %d failed\n", pass, fail)
	if fail > 0 {
		return fmt.Errorf("testpositions: %d of %d positions failed", fail, pass+fail)
	}
	return nil
}

func verdict(ok bool) string {
	if ok {
		return "pass"
	}
	return "FAIL"
}

// recordPasses reports whether move satisfies rec's bm/am opcodes. A
// record with neither opcode always passes (it exists only to exercise
// the searcher, e.g. a perft-style sanity position).
func recordPasses(rec epd.Record, move engine.Move) bool {
	for _, san := range rec.BestMoves {
		want, err := engine.ParseStandardAlgebraic(rec.Position, san)
		if err == nil && want == move {
			return true
		}
	}
	for _, san := range rec.AvoidMoves {
		avoid, err := engine.ParseStandardAlgebraic(rec.Position, san)
		if err == nil && avoid == move {
			return false
		}
	}
	return len(rec.BestMoves) == 0
}
