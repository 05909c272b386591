package engine

import "testing"

func TestParseLongAlgebraicQuietMove(t *testing.T) {
	pos := NewPosition()
	m, err := ParseLongAlgebraic(pos, "e2e4")
	if err != nil {
		t.Fatalf("ParseLongAlgebraic: %v", err)
	}
	if m.From() != SquareE2 || m.To() != SquareE4 {
		t.Errorf("parsed move = %v%v, want e2e4", m.From(), m.To())
	}
	if !m.IsDoublePawnMove() {
		t.Error("e2e4 should be flagged as a double pawn move")
	}
}

func TestParseLongAlgebraicPromotion(t *testing.T) {
	pos, err := PositionFromFEN("8/4P2k/8/8/8/8/7K/8 w - - 0 1")
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	m, err := ParseLongAlgebraic(pos, "e7e8q")
	if err != nil {
		t.Fatalf("ParseLongAlgebraic: %v", err)
	}
	if got, want := m.Promoted(), WhiteQueen; got != want {
		t.Errorf("Promoted() = %v, want %v", got, want)
	}
}

func TestParseLongAlgebraicRejectsIllegalMove(t *testing.T) {
	pos := NewPosition()
	if _, err := ParseLongAlgebraic(pos, "e2e5"); err == nil {
		t.Error("e2e5 is not a legal move from the starting position")
	}
}

func TestParseStandardAlgebraicKnightMove(t *testing.T) {
	pos := NewPosition()
	m, err := ParseStandardAlgebraic(pos, "Nf3")
	if err != nil {
		t.Fatalf("ParseStandardAlgebraic: %v", err)
	}
	if m.From() != SquareG1 || m.To() != SquareF3 {
		t.Errorf("parsed move = %v%v, want g1f3", m.From(), m.To())
	}
}

func TestParseStandardAlgebraicCastle(t *testing.T) {
	pos, err := PositionFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	m, err := ParseStandardAlgebraic(pos, "O-O")
	if err != nil {
		t.Fatalf("ParseStandardAlgebraic: %v", err)
	}
	if !m.IsCastling() || m.To() != SquareG1 {
		t.Error("O-O should parse to the king-side castle landing on g1")
	}
}

func TestParseStandardAlgebraicPawnCapture(t *testing.T) {
	pos, err := PositionFromFEN("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	m, err := ParseStandardAlgebraic(pos, "exd5")
	if err != nil {
		t.Fatalf("ParseStandardAlgebraic: %v", err)
	}
	if m.From() != SquareE4 || m.To() != SquareD5 {
		t.Errorf("parsed move = %v%v, want e4d5", m.From(), m.To())
	}
}

func TestFormatSANQuietKnightMove(t *testing.T) {
	pos := NewPosition()
	m, err := ParseStandardAlgebraic(pos, "Nf3")
	if err != nil {
		t.Fatalf("ParseStandardAlgebraic: %v", err)
	}
	if got, want := FormatSAN(pos, m), "Nf3"; got != want {
		t.Errorf("FormatSAN = %q, want %q", got, want)
	}
}

func TestFormatSANPawnCapture(t *testing.T) {
	pos, err := PositionFromFEN("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	m, err := ParseStandardAlgebraic(pos, "exd5")
	if err != nil {
		t.Fatalf("ParseStandardAlgebraic: %v", err)
	}
	if got, want := FormatSAN(pos, m), "exd5"; got != want {
		t.Errorf("FormatSAN = %q, want %q", got, want)
	}
}

func TestFormatSANDisambiguatesByFile(t *testing.T) {
	// Two white rooks on the first rank can both reach c1; the file letter
	// of the moving rook must be printed to disambiguate.
	pos, err := PositionFromFEN("4k3/8/8/8/8/8/8/R2R2K1 w - - 0 1")
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	m := NewMove(SquareA1, SquareC1, WhiteRook, NoPiece, NoPiece, false, false, false)
	if got, want := FormatSAN(pos, m), "Rac1"; got != want {
		t.Errorf("FormatSAN = %q, want %q", got, want)
	}
}

func TestFormatSANCastle(t *testing.T) {
	pos, err := PositionFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	m, err := ParseStandardAlgebraic(pos, "O-O")
	if err != nil {
		t.Fatalf("ParseStandardAlgebraic: %v", err)
	}
	if got, want := FormatSAN(pos, m), "O-O"; got != want {
		t.Errorf("FormatSAN = %q, want %q", got, want)
	}
}
