// Package game wraps engine.Position into a playable game (C9): a move
// history stack, repetition counting and PGN tag metadata on top of the
// bare board representation. None of this is part of the search or
// evaluation core; it is the plumbing cmd/corvus and the UCI front end use
// to drive a position forward and back.
package game

import (
	"fmt"

	"github.com/corvus-chess/corvus/engine"
)

// record is one played ply: the position reached and the move that reached
// it, kept so UndoMove can pop back to the previous position without
// recomputing anything.
type record struct {
	pos  engine.Position
	move engine.Move
}

// Game is a position plus everything needed to play, undo and record moves:
// a history stack (for UndoMove and threefold-repetition counting) and a
// PGN tag set (for game metadata).
type Game struct {
	pos     engine.Position
	history []record
	Tags    map[string]string
}

// NewGame returns a Game starting from the standard initial position.
func NewGame() *Game {
	return &Game{pos: *engine.NewPosition(), Tags: map[string]string{}}
}

// NewGameFromFEN returns a Game starting from the position fen describes.
func NewGameFromFEN(fen string) (*Game, error) {
	pos, err := engine.PositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{pos: *pos, Tags: map[string]string{}}, nil
}

// Position returns the current position. The returned value is a copy;
// mutating it does not affect g.
func (g *Game) Position() engine.Position {
	return g.pos
}

// Ply returns the number of moves played so far.
func (g *Game) Ply() int {
	return len(g.history)
}

// IsMoveLegal reports whether m is a legal move in the current position.
func (g *Game) IsMoveLegal(m engine.Move) bool {
	var moves []engine.Move
	g.pos.GenerateMoves(engine.AllMoves, ^engine.Bitboard(0), &moves)
	for _, cand := range moves {
		if cand.From() == m.From() && cand.To() == m.To() && cand.Promoted() == m.Promoted() {
			return g.pos.IsLegal(cand)
		}
	}
	return false
}

// ValidateMove parses s (UCI long algebraic or standard algebraic notation)
// against the current position and returns the resolved, legal move, or
// engine.ErrIllegalMove if s does not name one.
func (g *Game) ValidateMove(s string) (engine.Move, error) {
	if m, err := engine.ParseLongAlgebraic(&g.pos, s); err == nil {
		return m, nil
	}
	return engine.ParseStandardAlgebraic(&g.pos, s)
}

// PlayMove applies m to the current position and pushes it onto the history
// stack. It returns engine.ErrIllegalMove if m is not legal in the current
// position.
func (g *Game) PlayMove(m engine.Move) error {
	if !g.IsMoveLegal(m) {
		return fmt.Errorf("%w: %s", engine.ErrIllegalMove, m.UCI())
	}
	g.history = append(g.history, record{pos: g.pos, move: m})
	g.pos = g.pos.MakeMove(m)
	return nil
}

// PlaySAN parses s against the current position and plays it, returning the
// move actually played.
func (g *Game) PlaySAN(s string) (engine.Move, error) {
	m, err := g.ValidateMove(s)
	if err != nil {
		return engine.MoveNull, err
	}
	return m, g.PlayMove(m)
}

// UndoMove pops the most recently played move, restoring the position that
// preceded it. It reports false if there is nothing to undo.
func (g *Game) UndoMove() bool {
	if len(g.history) == 0 {
		return false
	}
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	g.pos = last.pos
	return true
}

// LastMove returns the most recently played move and true, or the zero
// move and false if no move has been played.
func (g *Game) LastMove() (engine.Move, bool) {
	if len(g.history) == 0 {
		return engine.MoveNull, false
	}
	return g.history[len(g.history)-1].move, true
}

// Keys returns the Zobrist key of every position played so far, including
// the current one, in play order. Passed to Searcher.SetGameHistory so the
// search can detect repetitions that span positions played before the
// current search started.
func (g *Game) Keys() []uint64 {
	keys := make([]uint64, 0, len(g.history)+1)
	for _, r := range g.history {
		keys = append(keys, r.pos.Key)
	}
	return append(keys, g.pos.Key)
}

// GetPositionCount returns the number of times the current position's
// piece-and-square arrangement (side to move, castling rights and
// en-passant target included) has occurred so far, counting the current
// occurrence. A result of 3 or more signals a draw by threefold repetition.
func (g *Game) GetPositionCount() int {
	count := 1
	for _, r := range g.history {
		if r.pos.Key == g.pos.Key {
			count++
		}
	}
	return count
}

// IsDrawByRepetition reports whether the current position has been reached
// three or more times.
func (g *Game) IsDrawByRepetition() bool {
	return g.GetPositionCount() >= 3
}

// IsDrawByFiftyMoveRule reports whether fifty full moves (a hundred plies)
// have passed since the last capture or pawn push.
func (g *Game) IsDrawByFiftyMoveRule() bool {
	return g.pos.PlySinceCaptureOrPawnMove >= 100
}

// LegalMoves returns every legal move available in the current position.
func (g *Game) LegalMoves() []engine.Move {
	var pseudo []engine.Move
	g.pos.GenerateMoves(engine.AllMoves, ^engine.Bitboard(0), &pseudo)
	legal := make([]engine.Move, 0, len(pseudo))
	for _, m := range pseudo {
		if g.pos.IsLegal(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// IsCheckmate reports whether the side to move has no legal moves and is
// currently in check.
func (g *Game) IsCheckmate() bool {
	return g.pos.KingInCheck && len(g.LegalMoves()) == 0
}

// IsStalemate reports whether the side to move has no legal moves and is
// not in check.
func (g *Game) IsStalemate() bool {
	return !g.pos.KingInCheck && len(g.LegalMoves()) == 0
}
