package widemg_test

import (
	"strings"
	"testing"

	"wideboard/widemg"
)

func TestCheckmate_FoolsMate(t *testing.T) {
	b := mustFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if !b.IsInCheck(widemg.White) {
		t.Fatalf("expected White to be in check")
	}
	if len(b.LegalMoves()) != 0 {
		t.Fatalf("expected no legal moves for White in mate")
	}
	if !b.IsCheckmate() || b.IsStalemate() {
		t.Fatalf("expected checkmate, not stalemate")
	}
}

func TestStalemate_Basic(t *testing.T) {
	b := mustFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if b.IsInCheck(widemg.Black) {
		t.Fatalf("expected Black not in check")
	}
	if !b.IsStalemate() || b.IsCheckmate() {
		t.Fatalf("expected stalemate for Black")
	}
}

func TestBackRankMate(t *testing.T) {
	b := mustFEN(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	if b.IsCheckmate() {
		t.Fatalf("not mate before the rook move")
	}
	play(t, b, "a1a8")
	if !b.IsCheckmate() {
		t.Fatalf("expected back-rank mate after a1a8:\n%s", b.Display())
	}
}

func TestBackRankMateTenByTen(t *testing.T) {
	rows := []string{
		"00000000K0",
		"0000000PPP",
		"0000000000",
		"0000000000",
		"0000000000",
		"0000000000",
		"0000000000",
		"0000000000",
		"0000000000",
		"r0000000k0",
		"w - - 0 1",
	}
	b, err := widemg.NewBoard(10, strings.Join(rows, "\n"))
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	play(t, b, "a1a10")
	if !b.IsInCheck(widemg.Black) || !b.IsCheckmate() {
		t.Fatalf("expected mate on the tenth rank:\n%s", b.Display())
	}
}

func TestMateInOne_MakeAndDetect(t *testing.T) {
	b := mustFEN(t, "7k/6pp/6Q1/8/8/2B5/8/6K1 w - - 0 1")
	m := mustMove(t, b, "g6g7")
	if m.CapturedPiece() != widemg.BlackPawn {
		t.Fatalf("g6g7 should capture a pawn")
	}
	rec, err := b.ApplyMove(m)
	if err != nil {
		t.Fatal(err)
	}
	defer b.UndoMove(rec)
	if !b.IsCheckmate() || b.IsStalemate() {
		t.Fatalf("expected checkmate after Qxg7#")
	}
}

func TestNoKingPanicsInGeneration(t *testing.T) {
	b := widemg.StartPosition(8)
	b.ClearSquare(sq(t, b, "e1"))
	if err := b.Validate(); err == nil {
		t.Fatalf("Validate should report the missing king")
	}
	defer func() {
		if _, ok := recover().(*widemg.InvariantViolation); !ok {
			t.Fatalf("expected InvariantViolation panic")
		}
	}()
	b.LegalMoves()
}
