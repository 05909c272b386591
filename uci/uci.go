// Package uci implements the UCI protocol I/O loop (external collaborator
// per spec.md §1): a line-oriented reader/dispatcher over stdin/stdout that
// translates inbound UCI commands into engine/game calls and outbound
// search events into UCI text.
//
// Grounded on the teacher's own zurichess/uci.go dispatcher (regexp command
// extraction, one method per command, a single in-flight search guarded by
// a handshake before `bestmove` is written) with the handshake itself
// replaced by a golang.org/x/sync/semaphore of size 1 per spec.md §5.
package uci

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/corvus-chess/corvus/engine"
	"github.com/corvus-chess/corvus/game"
)

// ErrQuit is returned by Execute when the client sent "quit".
var ErrQuit = errors.New("quit")

const (
	// EngineName and EngineAuthor answer the "uci" handshake.
	EngineName   = "Corvus"
	EngineAuthor = "the Corvus contributors"

	maxMultiPV    = 16
	defaultHashMB = 64
)

var reCommand = regexp.MustCompile(`^[[:word:]]+\b`)

// Session holds everything one UCI conversation needs: the current game,
// the long-lived searcher state (cache, killer and history tables) and the
// output stream search progress is written to. Exactly one "go" command
// runs at a time, enforced by sem.
type Session struct {
	Out io.Writer

	game    *game.Game
	cache   *engine.Cache
	search  *engine.Searcher
	logger  *Logger
	tc      *engine.TimeControl
	sem     *semaphore.Weighted
	debug   bool
}

// NewSession returns a Session ready to answer "uci"; Out defaults to
// io.Discard if left nil by the caller (tests set it to a buffer).
func NewSession(out io.Writer) *Session {
	if out == nil {
		out = io.Discard
	}
	cache := engine.NewCache(defaultHashMB)
	logger := NewLogger(out)
	s := &Session{
		Out:    out,
		game:   game.NewGame(),
		cache:  cache,
		search: engine.NewSearcher(cache),
		logger: logger,
		sem:    semaphore.NewWeighted(1),
	}
	s.search.Logger = logger
	return s
}

func (s *Session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.Out, format, args...)
}

// Searcher exposes the session's long-lived searcher so a caller such as
// cmd/corvus's config loader can seed its Options before "uci" arrives.
func (s *Session) Searcher() *engine.Searcher {
	return s.search
}

// Execute dispatches one line of UCI input. It returns ErrQuit when the
// session should terminate.
func (s *Session) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	cmd := reCommand.FindString(line)
	if cmd == "" {
		return fmt.Errorf("uci: empty command")
	}

	switch cmd {
	case "quit":
		return ErrQuit
	case "uci":
		return s.handleUCI()
	case "isready":
		return s.handleIsReady()
	case "debug":
		return s.handleDebug(line)
	case "stop":
		return s.handleStop()
	case "ponderhit":
		return s.handlePonderHit()
	case "ucinewgame":
		return s.handleNewGame()
	case "position":
		return s.handlePosition(line)
	case "go":
		return s.handleGo(line)
	case "setoption":
		return s.handleSetOption(line)
	default:
		return fmt.Errorf("uci: unhandled command %q", cmd)
	}
}

func (s *Session) handleUCI() error {
	s.printf("id name %s\n", EngineName)
	s.printf("id author %s\n", EngineAuthor)
	s.printf("option name Hash type spin default %d min 1 max 65536\n", defaultHashMB)
	s.printf("option name ClearHash type button\n")
	s.printf("option name MultiPV type spin default 1 min 1 max %d\n", maxMultiPV)
	s.printf("option name UCI_AnalyseMode type check default false\n")
	s.printf("option name PieceLocation type check default true\n")
	s.printf("option name PassedPawns type check default true\n")
	s.printf("option name Mobility type check default true\n")
	s.printf("option name KingSafety type check default true\n")
	s.printf("option name NPS type spin default 0 min 0 max 10000000\n")
	s.printf("option name MoveError type spin default 0 min 0 max 1000\n")
	s.printf("option name BlunderError type spin default 0 min 0 max 2000\n")
	s.printf("option name BlunderPercent type spin default 0 min 0 max 100\n")
	s.printf("option name UCI_LimitStrength type check default false\n")
	s.printf("option name UCI_Elo type spin default 2850 min 1350 max 2850\n")
	s.printf("uciok\n")
	return nil
}

func (s *Session) handleIsReady() error {
	s.printf("readyok\n")
	return nil
}

func (s *Session) handleDebug(line string) error {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return fmt.Errorf("uci: debug requires on|off")
	}
	s.debug = fields[1] == "on"
	return nil
}

func (s *Session) handleNewGame() error {
	// Refuses to run while a search is in flight, so shared state is never
	// cleared under it.
	if !s.sem.TryAcquire(1) {
		return fmt.Errorf("uci: ucinewgame while a search is running")
	}
	defer s.sem.Release(1)

	s.game = game.NewGame()
	s.cache.Reset()
	s.search.Killers = engine.NewKillerMoves()
	s.search.History.Reset()
	return nil
}

func (s *Session) handlePosition(line string) error {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return fmt.Errorf("uci: position requires arguments")
	}
	args := fields[1:]

	var g *game.Game
	var err error
	i := 0
	switch args[0] {
	case "startpos":
		g = game.NewGame()
		i = 1
	case "fen":
		for i = 1; i < len(args) && args[i] != "moves"; i++ {
		}
		g, err = game.NewGameFromFEN(strings.Join(args[1:i], " "))
	default:
		return fmt.Errorf("uci: unknown position argument %q", args[0])
	}
	if err != nil {
		return err
	}

	if i < len(args) {
		if args[i] != "moves" {
			return fmt.Errorf("uci: expected 'moves', got %q", args[i])
		}
		for _, token := range args[i+1:] {
			m, err := g.ValidateMove(token)
			if err != nil {
				return err
			}
			if err := g.PlayMove(m); err != nil {
				return err
			}
		}
	}

	s.game = g
	return nil
}

func (s *Session) handleGo(line string) error {
	if !s.sem.TryAcquire(1) {
		return fmt.Errorf("uci: a search is already running")
	}

	pos := s.game.Position()
	tc := engine.NewTimeControl(&pos)
	ponder := false
	infinite := false

	fields := strings.Fields(line)
	for i := 1; i < len(fields); i++ {
		switch fields[i] {
		case "ponder":
			ponder = true
		case "infinite":
			infinite = true
		case "wtime":
			i++
			tc.WTime = parseMillis(fields, i)
		case "winc":
			i++
			tc.WInc = parseMillis(fields, i)
		case "btime":
			i++
			tc.BTime = parseMillis(fields, i)
		case "binc":
			i++
			tc.BInc = parseMillis(fields, i)
		case "movestogo":
			i++
			n, _ := strconv.Atoi(at(fields, i))
			tc.MovesToGo = n
		case "depth":
			i++
			d, _ := strconv.Atoi(at(fields, i))
			tc.Depth = d
		case "movetime":
			i++
			d := parseMillis(fields, i)
			tc.WTime, tc.BTime = d, d
			tc.WInc, tc.BInc = 0, 0
			tc.MovesToGo = 1
		case "nodes", "mate", "searchmoves":
			// Not implemented; accepted and ignored so well-formed `go`
			// commands from a GUI never abort the search outright.
		}
	}
	if infinite {
		tc.MovesToGo = 1
		tc.Depth = 64
	}

	s.tc = tc
	s.search.SetGameHistory(s.game.Keys())
	tc.Start(ponder)

	go s.runSearch(pos)
	return nil
}

// runSearch executes one search to completion and writes bestmove; it runs
// in its own goroutine so Execute can keep reading "stop"/"ponderhit" off
// stdin while the search is in flight. pos is captured by the caller
// before a concurrent "position" command can replace s.game out from under
// the search.
func (s *Session) runSearch(pos engine.Position) {
	defer s.sem.Release(1)

	move, _, pv := s.search.Search(&pos, s.tc)

	if move == engine.MoveNull {
		s.printf("bestmove (none)\n")
		return
	}
	if len(pv) >= 2 {
		s.printf("bestmove %s ponder %s\n", move.UCI(), pv[1].UCI())
		return
	}
	s.printf("bestmove %s\n", move.UCI())
}

func (s *Session) handleStop() error {
	if s.tc != nil {
		s.tc.Stop()
	}
	// Block until the in-flight search (if any) has released the
	// semaphore, so "stop" only returns once bestmove has been written.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if s.sem.Acquire(ctx, 1) == nil {
		s.sem.Release(1)
	}
	return nil
}

func (s *Session) handlePonderHit() error {
	if s.tc != nil {
		s.tc.PonderHit()
	}
	return nil
}

func parseMillis(fields []string, i int) time.Duration {
	n, _ := strconv.Atoi(at(fields, i))
	return time.Duration(n) * time.Millisecond
}

func at(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return "0"
	}
	return fields[i]
}
