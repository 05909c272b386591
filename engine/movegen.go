// movegen.go implements pseudo-legal move generation and the staged
// BestMove → Captures → KillerMoves → QuietMoves → End contract the
// searcher drives through GetNextMove (C4).
package engine

// GenerateMode selects which kind of pseudo-legal moves to produce.
type GenerateMode int

const (
	AllMoves GenerateMode = iota
	OnlyCaptures
	OnlyNonCaptures
)

// GenerateMoves appends to moves every pseudo-legal move available to the
// side to move, restricted by mode and by toSquareMask (the set of
// destination squares allowed; all-ones, ^Bitboard(0), for normal
// search, restricted to blocking/capturing squares during check evasion).
func (pos *Position) GenerateMoves(mode GenerateMode, toSquareMask Bitboard, moves *[]Move) {
	us, them := pos.sideToMove(), pos.sideToMove().Opposite()
	mask := pos.destinationMask(mode, toSquareMask)

	pos.genPawnMoves(mode, toSquareMask, moves)
	pos.genKnightMoves(us, mask, moves)
	pos.genSliderMoves(ColorFigure(us, Bishop), Bishop, mask, moves)
	pos.genSliderMoves(ColorFigure(us, Rook), Rook, mask, moves)
	pos.genSliderMoves(ColorFigure(us, Queen), Queen, mask, moves)
	pos.genKingMoves(us, mask, moves)
	if mode != OnlyCaptures {
		pos.genCastles(us, them, moves)
	}
}

func (pos *Position) destinationMask(mode GenerateMode, toSquareMask Bitboard) Bitboard {
	var mask Bitboard
	them := pos.sideToMove().Opposite()
	switch mode {
	case OnlyCaptures:
		mask = pos.ByColor[them]
	case OnlyNonCaptures:
		mask = ^pos.All
	default:
		mask = pos.ByColor[them] | ^pos.All
	}
	return mask & toSquareMask
}

func (pos *Position) genKnightMoves(us Color, mask Bitboard, moves *[]Move) {
	pi := ColorFigure(us, Knight)
	for bb := pos.ByPiece[pi]; bb != 0; {
		from := bb.Pop()
		pos.genBitboardMoves(pi, from, BbKnightAttack[from]&mask, moves)
	}
}

func (pos *Position) genSliderMoves(pi Piece, fig Figure, mask Bitboard, moves *[]Move) {
	for bb := pos.ByPiece[pi]; bb != 0; {
		from := bb.Pop()
		var att Bitboard
		switch fig {
		case Bishop:
			att = BishopAttack(from, pos.All)
		case Rook:
			att = RookAttack(from, pos.All)
		case Queen:
			att = QueenAttack(from, pos.All)
		}
		pos.genBitboardMoves(pi, from, att&mask, moves)
	}
}

func (pos *Position) genKingMoves(us Color, mask Bitboard, moves *[]Move) {
	pi := ColorFigure(us, King)
	from := pos.ByPiece[pi].AsSquare()
	pos.genBitboardMoves(pi, from, BbKingAttack[from]&mask, moves)
}

func (pos *Position) genBitboardMoves(pi Piece, from Square, att Bitboard, moves *[]Move) {
	for att != 0 {
		to := att.Pop()
		capture := pos.Get(to)
		*moves = append(*moves, NewMove(from, to, pi, capture, NoPiece, false, false, false))
	}
}

func (pos *Position) genCastles(us, them Color, moves *[]Move) {
	rank := 0
	oo, ooo := WhiteOO, WhiteOOO
	if us == Black {
		rank, oo, ooo = 7, BlackOO, BlackOOO
	}
	king := ColorFigure(us, King)
	kingFrom := RankFile(rank, 4)

	if pos.Castling&oo != 0 && pos.IsEmpty(RankFile(rank, 5)) && pos.IsEmpty(RankFile(rank, 6)) {
		*moves = append(*moves, NewMove(kingFrom, RankFile(rank, 6), king, NoPiece, NoPiece, true, false, false))
	}
	if pos.Castling&ooo != 0 && pos.IsEmpty(RankFile(rank, 3)) && pos.IsEmpty(RankFile(rank, 2)) && pos.IsEmpty(RankFile(rank, 1)) {
		*moves = append(*moves, NewMove(kingFrom, RankFile(rank, 2), king, NoPiece, NoPiece, true, false, false))
	}
}

func (pos *Position) genPawnMoves(mode GenerateMode, toSquareMask Bitboard, moves *[]Move) {
	us, them := pos.sideToMove(), pos.sideToMove().Opposite()
	pawn := ColorFigure(us, Pawn)
	ours := pos.ByPiece[pawn]
	promoRank, startRank := BbRank7, BbRank2
	if us == Black {
		promoRank, startRank = BbRank2, BbRank7
	}

	if mode != OnlyCaptures {
		advance1 := Forward(us, ours&^promoRank) &^ pos.All
		pos.emitPawnAdvances(us, pawn, advance1, 1, toSquareMask, moves)

		advance2 := Forward(us, advance1&Forward(us, startRank)) &^ pos.All
		for bb := advance2 & toSquareMask; bb != 0; {
			to := bb.Pop()
			from := to.Relative(-2*sign(us), 0)
			*moves = append(*moves, NewMove(from, to, pawn, NoPiece, NoPiece, false, false, true))
		}
	}

	if mode != OnlyNonCaptures {
		theirs := pos.ByColor[them]
		if pos.EnPassantSquare != Illegal {
			theirs |= pos.EnPassantSquare.Bitboard()
		}
		attLeft := Forward(us, West(ours&^promoRank)) & theirs
		attRight := Forward(us, East(ours&^promoRank)) & theirs
		pos.emitPawnCaptures(us, pawn, attLeft, -1, toSquareMask, moves)
		pos.emitPawnCaptures(us, pawn, attRight, +1, toSquareMask, moves)
	}

	pos.genPawnPromotions(mode, us, pawn, promoRank, toSquareMask, moves)
}

func sign(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

func (pos *Position) emitPawnAdvances(us Color, pawn Piece, targets Bitboard, ranks int, toSquareMask Bitboard, moves *[]Move) {
	for bb := targets & toSquareMask; bb != 0; {
		to := bb.Pop()
		from := to.Relative(-ranks*sign(us), 0)
		*moves = append(*moves, NewMove(from, to, pawn, NoPiece, NoPiece, false, false, false))
	}
}

func (pos *Position) emitPawnCaptures(us Color, pawn Piece, targets Bitboard, fileDelta int, toSquareMask Bitboard, moves *[]Move) {
	for bb := targets & toSquareMask; bb != 0; {
		to := bb.Pop()
		from := to.Relative(-sign(us), -fileDelta)
		if to == pos.EnPassantSquare {
			victim := ColorFigure(us.Opposite(), Pawn)
			*moves = append(*moves, NewMove(from, to, pawn, victim, NoPiece, false, true, false))
			continue
		}
		capture := pos.Get(to)
		*moves = append(*moves, NewMove(from, to, pawn, capture, NoPiece, false, false, false))
	}
}

func (pos *Position) genPawnPromotions(mode GenerateMode, us Color, pawn Piece, promoRank, toSquareMask Bitboard, moves *[]Move) {
	them := us.Opposite()
	ours := pos.ByPiece[pawn] & promoRank
	if ours == 0 {
		return
	}
	theirs := pos.ByColor[them]

	for bb := ours; bb != 0; {
		from := bb.Pop()
		to := from.Relative(sign(us), 0)
		if mode != OnlyCaptures && pos.IsEmpty(to) && toSquareMask.Has(to) {
			pos.emitPromotions(us, from, to, NoPiece, moves)
		}
		if mode != OnlyNonCaptures {
			if from.File() != 0 {
				capTo := from.Relative(sign(us), -1)
				if theirs.Has(capTo) && toSquareMask.Has(capTo) {
					pos.emitPromotions(us, from, capTo, pos.Get(capTo), moves)
				}
			}
			if from.File() != 7 {
				capTo := from.Relative(sign(us), +1)
				if theirs.Has(capTo) && toSquareMask.Has(capTo) {
					pos.emitPromotions(us, from, capTo, pos.Get(capTo), moves)
				}
			}
		}
	}
}

func (pos *Position) emitPromotions(us Color, from, to Square, capture Piece, moves *[]Move) {
	pawn := ColorFigure(us, Pawn)
	for _, fig := range [...]Figure{Queen, Rook, Bishop, Knight} {
		promoted := ColorFigure(us, fig)
		*moves = append(*moves, NewMove(from, to, pawn, capture, promoted, false, false, false))
	}
}

// SetSearchHints primes staged generation with the cache's suggested best
// move and the current ply's two killer (piece, toSquare) keys. Call
// before the first GetNextMove of a node.
func (pos *Position) SetSearchHints(best Move, killer0, killer1 killerKey) {
	pos.bestMove = best
	pos.killer0 = killer0
	pos.killer1 = killer1
	pos.MoveGenerationStage = StageBestMove
	pos.MoveIndex = 0
	pos.CurrentMoveIndex = 0
}

// GetNextMove returns the next pseudo-legal move in staged order (BestMove,
// then captures sorted by MVV-LVA, then the two killer moves, then quiets
// sorted by history) and whether one was available. history supplies the
// ordering score for quiet moves; it may be nil, in which case quiets are
// returned in generation order.
func (pos *Position) GetNextMove(history *MoveHistory) (Move, bool) {
	for {
		switch pos.MoveGenerationStage {
		case StageBestMove:
			pos.MoveGenerationStage = StageCaptures
			if pos.bestMove != MoveNull {
				return pos.bestMove.WithBest(true), true
			}

		case StageCaptures:
			if pos.CurrentMoveIndex == 0 && pos.MoveIndex == 0 {
				pos.generateStage(OnlyCaptures)
				pos.sortRemaining()
			}
			if m, ok := pos.popNext(func(m Move) bool { return pos.isBestOrKiller(m) }); ok {
				return m, true
			}
			pos.MoveGenerationStage = StageKillers
			pos.MoveIndex, pos.CurrentMoveIndex = 0, 0

		case StageKillers:
			// CurrentMoveIndex counts the killer slots already tried.
			keys := [...]killerKey{pos.killer0, pos.killer1}
			for pos.CurrentMoveIndex < len(keys) {
				i := pos.CurrentMoveIndex
				pos.CurrentMoveIndex++
				if m, ok := pos.killerReplayMove(keys[i]); ok && !pos.isBestOrKiller(m) {
					rank := 1
					if i == 0 {
						rank = 2
					}
					return m.WithKiller(rank), true
				}
			}
			pos.MoveGenerationStage = StageQuiets
			pos.CurrentMoveIndex = 0

		case StageQuiets:
			if pos.CurrentMoveIndex == 0 && pos.MoveIndex == 0 {
				pos.generateStage(OnlyNonCaptures)
				pos.assignHistory(history)
				pos.sortRemaining()
			}
			if m, ok := pos.popNext(func(m Move) bool {
				return pos.isBestOrKiller(m) || pos.isKillerMove(m)
			}); ok {
				return m, true
			}
			pos.MoveGenerationStage = StageEnd

		case StageEnd:
			return MoveNull, false
		}
	}
}

func (pos *Position) isBestOrKiller(m Move) bool {
	return pos.bestMove != MoveNull && m.From() == pos.bestMove.From() && m.To() == pos.bestMove.To() && m.Promoted() == pos.bestMove.Promoted()
}

// killerReplayMove looks up a pseudo-legal quiet move matching k's (piece,
// toSquare) identity, since the killer table itself stores no origin
// square or move flags to replay directly.
func (pos *Position) killerReplayMove(k killerKey) (Move, bool) {
	if k.Piece == NoPiece {
		return MoveNull, false
	}
	var candidates []Move
	pos.GenerateMoves(OnlyNonCaptures, ^Bitboard(0), &candidates)
	for _, c := range candidates {
		if c.To() == k.To && pos.Get(c.From()) == k.Piece {
			return c, true
		}
	}
	return MoveNull, false
}

// isKillerMove reports whether m's (piece, toSquare) matches either of the
// current node's killer keys.
func (pos *Position) isKillerMove(m Move) bool {
	pi := pos.Get(m.From())
	return (pos.killer0.Piece != NoPiece && pos.killer0 == keyOf(pi, m.To())) ||
		(pos.killer1.Piece != NoPiece && pos.killer1 == keyOf(pi, m.To()))
}

func (pos *Position) generateStage(mode GenerateMode) {
	var gen []Move
	pos.GenerateMoves(mode, ^Bitboard(0), &gen)
	n := copy(pos.genBuf[:], gen)
	pos.MoveIndex = n
	pos.CurrentMoveIndex = 0
}

func (pos *Position) assignHistory(history *MoveHistory) {
	if history == nil {
		return
	}
	for i := 0; i < pos.MoveIndex; i++ {
		m := pos.genBuf[i]
		pi := pos.Get(m.From())
		pos.genBuf[i] = m.WithHistory(history.Get(pi, m.To()))
	}
}

// sortRemaining insertion-sorts pos.genBuf[:MoveIndex] descending by raw
// encoding: since ordering priority is baked into the packed integer, a
// plain numeric sort reproduces MVV-LVA (captures) or history order
// (quiets) without a comparator.
func (pos *Position) sortRemaining() {
	buf := pos.genBuf[:pos.MoveIndex]
	for i := 1; i < len(buf); i++ {
		v := buf[i]
		j := i - 1
		for j >= 0 && buf[j] < v {
			buf[j+1] = buf[j]
			j--
		}
		buf[j+1] = v
	}
}

func (pos *Position) popNext(skip func(Move) bool) (Move, bool) {
	for pos.CurrentMoveIndex < pos.MoveIndex {
		m := pos.genBuf[pos.CurrentMoveIndex]
		pos.CurrentMoveIndex++
		if skip(m) {
			continue
		}
		return m, true
	}
	return MoveNull, false
}
