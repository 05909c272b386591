// see.go implements the static exchange evaluator (C8 support): a cheap
// estimate of the material balance from repeatedly recapturing on one
// square with the least valuable attacker, without playing out the real
// move sequence.
package engine

// seeValue gives each figure its SEE-relevant material value; kept separate
// from the evaluator's tapered material terms since SEE only needs a
// single scale.
var seeValue = [FigureArraySize]int32{
	NoFigure: 0,
	Pawn:     100,
	Knight:   300,
	Bishop:   300,
	Rook:     500,
	Queen:    975,
	King:     10000,
}

// StaticExchangeEvaluation estimates the material gained by playing m and
// then letting both sides recapture on m.To() with their least valuable
// attacker, in order, until one side has no attacker left or would rather
// stand pat.
func (pos *Position) StaticExchangeEvaluation(m Move) int32 {
	to := m.To()
	from := m.From()
	attacker := pos.Get(from)
	target := m.CaptureVictim()
	if m.IsEnPassant() {
		target = ColorFigure(attacker.Color().Opposite(), Pawn)
	}

	occ := pos.All &^ from.Bitboard()
	side := attacker.Color().Opposite()
	gain := [32]int32{}
	depth := 0
	gain[0] = seeValue[target.Figure()]
	attackerValue := seeValue[attacker.Figure()]

	for {
		depth++
		gain[depth] = attackerValue - gain[depth-1]
		if max32(-gain[depth-1], gain[depth]) < 0 {
			break
		}

		attSq, attPiece := pos.leastValuableAttacker(occ, to, side)
		if attPiece == NoPiece {
			break
		}
		occ &^= attSq.Bitboard()
		attackerValue = seeValue[attPiece.Figure()]
		side = side.Opposite()

		if depth >= len(gain)-1 {
			break
		}
	}

	for depth--; depth > 0; depth-- {
		gain[depth-1] = -max32(-gain[depth-1], gain[depth])
	}
	return gain[0]
}

// leastValuableAttacker returns the cheapest piece of color side attacking
// sq given occupancy occ, recomputing sliding attacks against occ so
// previously "revealed" attackers behind a captured piece are found.
func (pos *Position) leastValuableAttacker(occ Bitboard, sq Square, side Color) (Square, Piece) {
	if bb := occ & pos.ByPiece[ColorFigure(side, Pawn)] & BbPawnAttack[sq] & pawnAttackersOf(side, sq); bb != 0 {
		return bb.AsSquare(), ColorFigure(side, Pawn)
	}
	if bb := occ & pos.ByPiece[ColorFigure(side, Knight)] & BbKnightAttack[sq]; bb != 0 {
		return bb.AsSquare(), ColorFigure(side, Knight)
	}
	bishopAtt := BishopAttack(sq, occ)
	if bb := occ & pos.ByPiece[ColorFigure(side, Bishop)] & bishopAtt; bb != 0 {
		return bb.AsSquare(), ColorFigure(side, Bishop)
	}
	rookAtt := RookAttack(sq, occ)
	if bb := occ & pos.ByPiece[ColorFigure(side, Rook)] & rookAtt; bb != 0 {
		return bb.AsSquare(), ColorFigure(side, Rook)
	}
	if bb := occ & pos.ByPiece[ColorFigure(side, Queen)] & (bishopAtt | rookAtt); bb != 0 {
		return bb.AsSquare(), ColorFigure(side, Queen)
	}
	if bb := occ & pos.ByPiece[ColorFigure(side, King)] & BbKingAttack[sq]; bb != 0 {
		return bb.AsSquare(), ColorFigure(side, King)
	}
	return Illegal, NoPiece
}

// pawnAttackersOf returns every square a pawn of color side would need to
// stand on to attack sq: the adjacent files one rank behind sq as seen
// from side. BbPawnAttack holds all four diagonal neighbours, so it alone
// cannot tell which of them attack sq.
func pawnAttackersOf(side Color, sq Square) Bitboard {
	bb := sq.Bitboard()
	return Forward(side.Opposite(), East(bb)|West(bb))
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// SeeSign reports whether the SEE of m is non-negative. Promotions, and
// captures of a piece worth at least the attacker, return true without
// running the exchange; other captures fall back to the full
// StaticExchangeEvaluation. Quiescence uses it to discard losing captures.
func (pos *Position) SeeSign(m Move) bool {
	if m.Promoted() != NoPiece {
		return true
	}
	attacker := pos.Get(m.From())
	victim := m.CaptureVictim()
	if seeValue[victim.Figure()] >= seeValue[attacker.Figure()] {
		return true
	}
	return pos.StaticExchangeEvaluation(m) >= 0
}
