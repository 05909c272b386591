// notation.go parses and prints moves in the two textual forms the engine
// boundary uses: UCI long algebraic (unambiguous, used on the UCI
// protocol) and standard algebraic (used by diagnostics and PGN).
package engine

import (
	"fmt"
	"strings"
)

// ParseLongAlgebraic parses s ("e2e4", "e7e8q") against pos, decorating the
// result with the position's actual capture/flags so it can be fed
// straight into the searcher. Returns ErrIllegalMove if s does not name a
// legal move.
func ParseLongAlgebraic(pos *Position, s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return MoveNull, fmt.Errorf("%w: %q is not long algebraic", ErrIllegalMove, s)
	}
	from, err := SquareFromString(s[0:2])
	if err != nil {
		return MoveNull, fmt.Errorf("%w: %q", ErrIllegalMove, s)
	}
	to, err := SquareFromString(s[2:4])
	if err != nil {
		return MoveNull, fmt.Errorf("%w: %q", ErrIllegalMove, s)
	}
	promoted := NoPiece
	if len(s) == 5 {
		promoted = ColorFigure(pos.sideToMove(), figureFromLetter(s[4]))
		if promoted == NoPiece {
			return MoveNull, fmt.Errorf("%w: bad promotion letter in %q", ErrIllegalMove, s)
		}
	}
	return decorateAndValidate(pos, from, to, promoted)
}

// decorateAndValidate re-creates the packed move for (from, to, promoted)
// using pos's actual capture and move-kind flags, matching ValidateMove's
// contract in game.go: a bare user move is re-decorated before it can be
// searched.
func decorateAndValidate(pos *Position, from, to Square, promoted Piece) (Move, error) {
	var candidates []Move
	pos.GenerateMoves(AllMoves, ^Bitboard(0), &candidates)
	for _, m := range candidates {
		if m.From() == from && m.To() == to && m.Promoted() == promoted && pos.IsLegal(m) {
			return m, nil
		}
	}
	return MoveNull, fmt.Errorf("%w: no legal move %v%v", ErrIllegalMove, from, to)
}

func figureFromLetter(c byte) Figure {
	switch c {
	case 'n', 'N':
		return Knight
	case 'b', 'B':
		return Bishop
	case 'r', 'R':
		return Rook
	case 'q', 'Q':
		return Queen
	}
	return NoFigure
}

// ParseStandardAlgebraic parses s (e.g. "Nf3", "exd5", "O-O", "e8=Q+")
// against pos's legal move list, the only reliable way to resolve
// disambiguation and castling notation.
func ParseStandardAlgebraic(pos *Position, s string) (Move, error) {
	s = strings.TrimSuffix(strings.TrimSuffix(s, "+"), "#")

	var legal []Move
	pos.GenerateMoves(AllMoves, ^Bitboard(0), &legal)

	if s == "O-O" || s == "0-0" {
		for _, m := range legal {
			if m.IsCastling() && m.To().File() == 6 && pos.IsLegal(m) {
				return m, nil
			}
		}
		return MoveNull, fmt.Errorf("%w: no legal king-side castle", ErrIllegalMove)
	}
	if s == "O-O-O" || s == "0-0-0" {
		for _, m := range legal {
			if m.IsCastling() && m.To().File() == 2 && pos.IsLegal(m) {
				return m, nil
			}
		}
		return MoveNull, fmt.Errorf("%w: no legal queen-side castle", ErrIllegalMove)
	}

	for _, m := range legal {
		if !pos.IsLegal(m) {
			continue
		}
		pi := pos.Get(m.From())
		if sanMatches(pos, m, pi, s) {
			return m, nil
		}
	}
	return MoveNull, fmt.Errorf("%w: %q does not match any legal move", ErrIllegalMove, s)
}

// sanMatches is a permissive matcher: it accepts any SAN rendering of m
// that is a superstring of the move's to-square and, when present, its
// disambiguating file/rank/figure letter and promotion suffix. This is
// generous about details like the 'x' capture marker, which several
// notation variants disagree on.
func sanMatches(pos *Position, m Move, pi Piece, s string) bool {
	body := s
	if eq := strings.IndexByte(body, '='); eq >= 0 {
		promo := figureFromLetter(body[eq+1])
		if ColorFigure(pi.Color(), promo) != m.Promoted() {
			return false
		}
		body = body[:eq]
	} else if m.Promoted() != NoPiece {
		return false
	}

	if !strings.HasSuffix(body, m.To().String()) {
		return false
	}
	body = strings.TrimSuffix(body, m.To().String())
	body = strings.TrimSuffix(body, "x")

	wantFig := pi.Figure()
	if wantFig == Pawn {
		if body == "" {
			return true
		}
		return len(body) == 1 && body[0] == byte('a'+m.From().File())
	}

	letter := figureLetter(wantFig)
	if !strings.HasPrefix(body, letter) {
		return false
	}
	disambig := body[len(letter):]
	return matchesDisambiguation(m.From(), disambig)
}

func figureLetter(fig Figure) string {
	switch fig {
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return ""
}

// FormatSAN renders m, legal in pos, as standard algebraic notation. It
// disambiguates against pos's other legal moves sharing the same figure and
// destination, preferring a file letter and falling back to a rank digit or
// both when the file alone does not resolve the ambiguity. Check and mate
// suffixes are added by the caller, which alone knows the resulting
// position's status.
func FormatSAN(pos *Position, m Move) string {
	if m.IsCastling() {
		if m.To().File() == 6 {
			return "O-O"
		}
		return "O-O-O"
	}

	pi := pos.Get(m.From())
	fig := pi.Figure()
	capture := m.IsCapture()

	if fig == Pawn {
		var b strings.Builder
		if capture {
			fmt.Fprintf(&b, "%c", 'a'+m.From().File())
			b.WriteByte('x')
		}
		b.WriteString(m.To().String())
		if m.Promoted() != NoPiece {
			b.WriteByte('=')
			b.WriteString(figureLetter(m.Promoted().Figure()))
		}
		return b.String()
	}

	var legal []Move
	pos.GenerateMoves(AllMoves, ^Bitboard(0), &legal)
	sameFile, sameRank, ambiguous := false, false, false
	for _, other := range legal {
		if other == m || !pos.IsLegal(other) {
			continue
		}
		if pos.Get(other.From()).Figure() != fig || other.To() != m.To() {
			continue
		}
		ambiguous = true
		if other.From().File() == m.From().File() {
			sameFile = true
		}
		if other.From().Rank() == m.From().Rank() {
			sameRank = true
		}
	}

	var b strings.Builder
	b.WriteString(figureLetter(fig))
	switch {
	case ambiguous && !sameFile:
		fmt.Fprintf(&b, "%c", 'a'+m.From().File())
	case ambiguous && !sameRank:
		fmt.Fprintf(&b, "%c", '1'+m.From().Rank())
	case ambiguous:
		b.WriteString(m.From().String())
	}
	if capture {
		b.WriteByte('x')
	}
	b.WriteString(m.To().String())
	return b.String()
}

func matchesDisambiguation(from Square, disambig string) bool {
	if disambig == "" {
		return true
	}
	for _, c := range disambig {
		switch {
		case 'a' <= c && c <= 'h':
			if from.File() != int(c-'a') {
				return false
			}
		case '1' <= c && c <= '8':
			if from.Rank() != int(c-'1') {
				return false
			}
		}
	}
	return true
}
