// Command corvus is a UCI chess engine. With no arguments it speaks UCI
// over stdin/stdout, matching the teacher's cmd/zurichess entry point
// (main.go: bufio.NewReader loop into Execute, log routed away from
// stdout). A handful of non-UCI subcommands exist for interactive
// debugging; see runSubcommand.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/corvus-chess/corvus/engine"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetPrefix("corvus: ")
	log.SetFlags(log.Lshortfile)

	cfg := loadConfig()

	if len(os.Args) > 1 {
		if err := runSubcommand(os.Args[1], os.Args[2:], cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	runUCI(cfg)
}

// loadConfig looks for corvus.toml next to the binary; a missing or
// malformed file is not fatal (SPEC_FULL.md §4.12), it just falls back to
// built-in defaults.
func loadConfig() engine.Config {
	exe, err := os.Executable()
	if err != nil {
		return engine.DefaultConfig()
	}
	path := filepath.Join(filepath.Dir(exe), "corvus.toml")
	if _, err := os.Stat(path); err != nil {
		return engine.DefaultConfig()
	}
	cfg, err := engine.LoadConfig(path)
	if err != nil {
		log.Printf("corvus.toml: %v (using defaults)", err)
		return engine.DefaultConfig()
	}
	log.Printf("loaded configuration from %s", path)
	return cfg
}

func runSubcommand(name string, args []string, cfg engine.Config) error {
	switch name {
	case "uci":
		runUCI(cfg)
		return nil
	case "showboard":
		return runShowBoard(os.Stdout, args)
	case "listmoves":
		return runListMoves(os.Stdout, args)
	case "testpositions":
		return runTestPositions(os.Stdout, args, cfg)
	case "diagram":
		return runDiagram(args)
	case "perft":
		return runPerft(os.Stdout, args)
	case "tune":
		return runTune(os.Stdout, args)
	default:
		return fmt.Errorf("corvus: unknown subcommand %q", name)
	}
}

// positionFromFENFlag resolves "startpos" or a literal FEN, the same
// convention the teacher's perft tool uses for its --fen flag.
func positionFromFENFlag(fen string) (*engine.Position, error) {
	if fen == "" || fen == "startpos" {
		return engine.NewPosition(), nil
	}
	return engine.PositionFromFEN(fen)
}
