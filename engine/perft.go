// perft.go counts leaf nodes of the legal move tree to a fixed depth, the
// standard move-generator correctness check. Exported for cmd/corvus's
// perft subcommand; grounded on the teacher's perft/perft.go, adapted from
// its make/unmake walk to the copy-make Position contract.
package engine

// PerftCounters breaks a Perft count down by move kind, matching the
// columns the teacher's perft tool reports.
type PerftCounters struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
}

func (c *PerftCounters) add(o PerftCounters) {
	c.Nodes += o.Nodes
	c.Captures += o.Captures
	c.EnPassant += o.EnPassant
	c.Castles += o.Castles
	c.Promotions += o.Promotions
}

// Perft walks the legal move tree rooted at pos to depth plies and returns
// the per-kind leaf counts.
func Perft(pos *Position, depth int) PerftCounters {
	if depth == 0 {
		return PerftCounters{Nodes: 1}
	}

	var moves []Move
	pos.GenerateMoves(AllMoves, ^Bitboard(0), &moves)

	var total PerftCounters
	for _, m := range moves {
		if !pos.IsLegal(m) {
			continue
		}
		if depth == 1 {
			if m.IsCapture() {
				total.Captures++
			}
			if m.IsEnPassant() {
				total.EnPassant++
			}
			if m.IsCastling() {
				total.Castles++
			}
			if m.Promoted() != NoPiece {
				total.Promotions++
			}
		}
		next := pos.MakeMove(m)
		total.add(Perft(&next, depth-1))
	}
	return total
}
