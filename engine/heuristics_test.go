package engine

import "testing"

func TestKillerMovesUpdateAndGet(t *testing.T) {
	k := NewKillerMoves()

	k.Update(3, WhitePawn, SquareE4)
	first, second := k.Get(3)
	if first != keyOf(WhitePawn, SquareE4) || second != (killerKey{}) {
		t.Errorf("after one update: got (%v, %v)", first, second)
	}

	k.Update(3, WhiteKnight, SquareF3)
	first, second = k.Get(3)
	if first != keyOf(WhiteKnight, SquareF3) || second != keyOf(WhitePawn, SquareE4) {
		t.Errorf("after two updates: got (%v, %v), want (%v, %v)",
			first, second, keyOf(WhiteKnight, SquareF3), keyOf(WhitePawn, SquareE4))
	}

	// Re-storing the current slot-0 key is a no-op.
	k.Update(3, WhiteKnight, SquareF3)
	first, second = k.Get(3)
	if first != keyOf(WhiteKnight, SquareF3) || second != keyOf(WhitePawn, SquareE4) {
		t.Error("re-updating the current killer should not disturb slot 1")
	}
}

// A killer recorded for one piece's move to a square must also match a
// different piece of the same kind arriving at that square from a
// different origin: spec.md's (piece, toSquare) identity, not full move
// identity.
func TestKillerMovesIdentityIgnoresOriginSquare(t *testing.T) {
	k := NewKillerMoves()
	k.Update(4, WhiteKnight, SquareE5)

	first, _ := k.Get(4)
	if first != keyOf(WhiteKnight, SquareE5) {
		t.Fatalf("got %v, want a knight-to-e5 key regardless of origin", first)
	}
}

func TestKillerMovesShift(t *testing.T) {
	k := NewKillerMoves()
	k.Update(5, WhitePawn, SquareE4)
	k.Shift(5)
	first, _ := k.Get(0)
	if first != keyOf(WhitePawn, SquareE4) {
		t.Errorf("Shift(5) should move ply 5 into ply 0, got %v", first)
	}
}

func TestMoveHistoryDecaysTowardsBound(t *testing.T) {
	h := NewMoveHistory()
	for i := 0; i < 10000; i++ {
		h.Update(WhiteKnight, SquareF3, 1)
	}
	got := h.Get(WhiteKnight, SquareF3)
	if got <= 0 {
		t.Fatalf("repeated positive updates should leave a positive score, got %d", got)
	}
	if got > historyMaxValue {
		t.Errorf("history score %d exceeds its bound %d", got, historyMaxValue)
	}
}

func TestMoveHistoryNegativeUpdatesDecreaseScore(t *testing.T) {
	h := NewMoveHistory()
	h.Update(WhiteKnight, SquareF3, 1)
	before := h.Get(WhiteKnight, SquareF3)
	h.Update(WhiteKnight, SquareF3, -1)
	after := h.Get(WhiteKnight, SquareF3)
	if after >= before {
		t.Errorf("negative update should decrease score: before=%d after=%d", before, after)
	}
}

func TestMoveHistoryReset(t *testing.T) {
	h := NewMoveHistory()
	h.Update(WhiteKnight, SquareF3, 1)
	h.Reset()
	if got := h.Get(WhiteKnight, SquareF3); got != 0 {
		t.Errorf("Reset should zero all scores, got %d", got)
	}
}
