// move.go implements the packed move encoding (C2): every move is a single
// uint64 whose bit layout doubles as its move-ordering priority, so sorting
// the staged move list is just sorting integers.
//
// From the high bit down: IsBest, CaptureVictim, CaptureAttacker (inverted),
// PromotedPiece, Killer, History, a block of boolean move-kind flags, then
// From/To. A move that should be searched first therefore has the
// numerically larger encoding; GetNextMove (movegen.go) relies on this to
// avoid any explicit comparator.
package engine

const (
	moveToShift   = 0
	moveFromShift = 7
	moveSquareBits = 7
	moveSquareMask = 1<<moveSquareBits - 1

	moveIsQuietShift      = 14
	moveIsCheckShift      = 15
	movePawnMoveShift     = 16
	moveDoublePawnShift   = 17
	moveEnPassantShift    = 18
	moveKingMoveShift     = 19
	moveCastlingShift     = 20
	movePlayedShift       = 21

	moveHistoryShift = 22
	moveHistoryBits  = 27
	moveHistoryMask  = 1<<moveHistoryBits - 1
	// moveHistoryBias recenters the signed history score onto an unsigned
	// 27-bit field holding [-(1<<26), 1<<26): adding 1<<26 keeps a value in
	// that range non-negative without changing its ordering. WithHistory
	// clamps anything outside it (historyMaxValue in heuristics.go is 1<<26
	// itself).
	moveHistoryBias = 1 << 26

	moveKillerShift = 49
	moveKillerBits  = 2
	moveKillerMask  = 1<<moveKillerBits - 1

	movePromotedShift = 51
	movePieceBits     = 4
	movePieceMask     = 1<<movePieceBits - 1

	moveAttackerShift = 55
	moveVictimShift   = 59

	moveIsBestShift = 63
)

// Move is a packed, 64-bit encoding of a single chess move plus its current
// search-ordering metadata.
type Move uint64

// MoveNull is the absence of a move: From and To both Illegal, every other
// field zero.
const MoveNull Move = Move(Illegal)<<moveFromShift | Move(Illegal)<<moveToShift

// NewMove builds an unordered move: from, to, the piece making the move, the
// piece captured (NoPiece if none) and the piece promoted to (NoPiece if
// none). The boolean move-kind flags are derived from the pieces and squares
// involved; the caller only needs to say whether this is a castling move,
// an en-passant capture or a double pawn push, none of which are derivable
// from from/to/piece/capture alone.
func NewMove(from, to Square, piece, capture, promoted Piece, isCastling, isEnPassant, isDoublePawn bool) Move {
	m := Move(from)<<moveFromShift | Move(to)<<moveToShift

	fig := piece.Figure()
	isPawnMove := fig == Pawn
	isKingMove := fig == King
	isQuiet := capture == NoPiece && promoted == NoPiece && !isEnPassant

	if isQuiet {
		m |= 1 << moveIsQuietShift
	}
	if isPawnMove {
		m |= 1 << movePawnMoveShift
	}
	if isDoublePawn {
		m |= 1 << moveDoublePawnShift
	}
	if isEnPassant {
		m |= 1 << moveEnPassantShift
	}
	if isKingMove {
		m |= 1 << moveKingMoveShift
	}
	if isCastling {
		m |= 1 << moveCastlingShift
	}
	if promoted != NoPiece {
		m |= Move(promoted) << movePromotedShift
	}

	m = m.withAttacker(piece)
	if capture != NoPiece {
		m = m.withCaptureVictim(capture)
	}
	return m
}

// withAttacker stores the moving piece inverted (movePieceMask - piece), so
// a cheaper attacker (smaller Piece value) sorts as a larger field: among
// captures of equal value, MVV/LVA prefers capturing with the least
// valuable piece.
func (m Move) withAttacker(piece Piece) Move {
	const mask = Move(movePieceMask) << moveAttackerShift
	inv := Move(movePieceMask) - Move(piece)&movePieceMask
	return m&^mask | inv<<moveAttackerShift
}

func (m Move) withCaptureVictim(capture Piece) Move {
	const mask = Move(movePieceMask) << moveVictimShift
	return m&^mask | Move(capture)&movePieceMask<<moveVictimShift
}

// From returns the move's origin square.
func (m Move) From() Square {
	return Square(m >> moveFromShift & moveSquareMask)
}

// To returns the move's destination square.
func (m Move) To() Square {
	return Square(m >> moveToShift & moveSquareMask)
}

// CaptureVictim returns the captured piece, or NoPiece for a non-capture.
func (m Move) CaptureVictim() Piece {
	return Piece(m >> moveVictimShift & movePieceMask)
}

// Promoted returns the piece a pawn promotes to, or NoPiece.
func (m Move) Promoted() Piece {
	return Piece(m >> movePromotedShift & movePieceMask)
}

// IsQuiet reports whether the move is neither a capture, a promotion nor an
// en-passant capture.
func (m Move) IsQuiet() bool {
	return m>>moveIsQuietShift&1 != 0
}

// IsCheck reports whether the move has been marked as giving check. Search
// sets this lazily after making the move; it is not derivable from the
// packed fields alone.
func (m Move) IsCheck() bool {
	return m>>moveIsCheckShift&1 != 0
}

// WithCheck returns m with the IsCheck flag set to v.
func (m Move) WithCheck(v bool) Move {
	return m.withFlag(moveIsCheckShift, v)
}

// IsPawnMove reports whether a pawn is moving.
func (m Move) IsPawnMove() bool {
	return m>>movePawnMoveShift&1 != 0
}

// IsDoublePawnMove reports whether the move is a two-square pawn advance.
func (m Move) IsDoublePawnMove() bool {
	return m>>moveDoublePawnShift&1 != 0
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m>>moveEnPassantShift&1 != 0
}

// IsKingMove reports whether the king is moving, including castling.
func (m Move) IsKingMove() bool {
	return m>>moveKingMoveShift&1 != 0
}

// IsCastling reports whether the move is a castling move.
func (m Move) IsCastling() bool {
	return m>>moveCastlingShift&1 != 0
}

// IsCapture reports whether the move captures a piece, by any means.
func (m Move) IsCapture() bool {
	return m.CaptureVictim() != NoPiece || m.IsEnPassant()
}

// IsViolent reports whether the move is a capture or a promotion: the
// quiescence search only considers violent moves.
func (m Move) IsViolent() bool {
	return m.IsCapture() || m.Promoted() != NoPiece
}

// Played reports whether the move has already been applied to the position
// it was generated from (used by staged generation to avoid re-yielding the
// best move or a killer move that also appears in the generic move list).
func (m Move) Played() bool {
	return m>>movePlayedShift&1 != 0
}

// WithPlayed returns m with the Played flag set.
func (m Move) WithPlayed() Move {
	return m.withFlag(movePlayedShift, true)
}

func (m Move) withFlag(shift uint, v bool) Move {
	if v {
		return m | 1<<shift
	}
	return m &^ (1 << shift)
}

// IsBest reports whether the move is flagged as the cached best move for
// its position, the highest search-ordering priority.
func (m Move) IsBest() bool {
	return m>>moveIsBestShift&1 != 0
}

// WithBest returns m flagged (or unflagged) as the cached best move.
func (m Move) WithBest(v bool) Move {
	return m.withFlag(moveIsBestShift, v)
}

// Killer returns the move's killer-slot rank: 0 if not a killer, 2 for the
// first (most recent) killer slot of the ply it was stored at and 1 for the
// second.
func (m Move) Killer() int {
	return int(m >> moveKillerShift & moveKillerMask)
}

// WithKiller returns m with its killer-slot rank set to rank (0, 1 or 2).
func (m Move) WithKiller(rank int) Move {
	const mask = Move(moveKillerMask) << moveKillerShift
	return m&^mask | Move(rank)&moveKillerMask<<moveKillerShift
}

// History returns the move's current history-heuristic score.
func (m Move) History() int32 {
	raw := int32(m >> moveHistoryShift & moveHistoryMask)
	return raw - moveHistoryBias
}

// WithHistory returns m with its history-heuristic field set to v, clamped
// to the field's representable range [-(1<<26), 1<<26-1]. MoveHistory
// values stay within ±historyMaxValue, so only +historyMaxValue itself is
// changed by the clamp.
func (m Move) WithHistory(v int32) Move {
	const mask = Move(moveHistoryMask) << moveHistoryShift
	if v >= moveHistoryBias {
		v = moveHistoryBias - 1
	} else if v < -moveHistoryBias {
		v = -moveHistoryBias
	}
	biased := Move(v+moveHistoryBias) & moveHistoryMask
	return m&^mask | biased<<moveHistoryShift
}

// UCI returns the move in UCI long algebraic notation, e.g. "e2e4" or
// "e7e8q" for a promotion. MoveNull prints as "0000", the UCI convention.
func (m Move) UCI() string {
	if m == MoveNull {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if p := m.Promoted(); p != NoPiece {
		s += promotionLetter[p.Figure()]
	}
	return s
}

var promotionLetter = map[Figure]string{
	Knight: "n",
	Bishop: "b",
	Rook:   "r",
	Queen:  "q",
}

// ClearOrderingFields returns m with IsBest, Killer and History reset to
// zero, keeping only the move's identity (From, To, pieces, flags). Used
// when a move is copied out of the staged generator into a context (e.g.
// the principal variation) where stale ordering metadata would be
// misleading.
func (m Move) ClearOrderingFields() Move {
	const mask = Move(1)<<moveIsBestShift |
		Move(moveKillerMask)<<moveKillerShift |
		Move(moveHistoryMask)<<moveHistoryShift
	return m&^mask | Move(moveHistoryBias)<<moveHistoryShift
}
