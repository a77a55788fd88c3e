package engine

import (
	"testing"

	"wideboard/widemg"
)

func TestEvaluateSymmetricStartIsZero(t *testing.T) {
	for n := widemg.MinDimension; n <= widemg.MaxDimension; n++ {
		b := widemg.StartPosition(n)
		if got := Evaluate(b); got != 0 {
			t.Fatalf("n=%d: start evaluates to %d (%v)", n, got, Breakdown(b))
		}
	}
}

func TestEvaluateSideToMoveSign(t *testing.T) {
	b := mustFEN(t, "4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	white := Evaluate(b)
	b.SetSideToMove(widemg.Black)
	if black := Evaluate(b); black != -white || white <= 0 {
		t.Fatalf("white %d black %d", white, black)
	}
}

func TestCentralKnightBeatsCornerKnight(t *testing.T) {
	center := Evaluate(mustFEN(t, "4k3/8/8/8/3N4/8/8/4K3 w - - 0 1"))
	corner := Evaluate(mustFEN(t, "4k3/8/8/8/8/8/8/N3K3 w - - 0 1"))
	if center <= corner {
		t.Fatalf("central knight %d should beat cornered knight %d", center, corner)
	}
	if center-corner != 6*MobilityWeight {
		t.Fatalf("mobility difference: got %d want %d", center-corner, 6*MobilityWeight)
	}
}

func TestIsolatedPawns(t *testing.T) {
	// White: a2 isolated, c2 and d2 connected. Black: h7 isolated.
	b := mustFEN(t, "4k3/7p/8/8/8/8/P1PP4/4K3 w - - 0 1")
	terms := Breakdown(b)
	if terms.Isolated != 0 {
		t.Fatalf("one isolated pawn each should cancel, got %d", terms.Isolated)
	}
	b = mustFEN(t, "4k3/6pp/8/8/8/8/P1P1P3/4K3 w - - 0 1")
	if got := Breakdown(b).Isolated; got != 3 {
		t.Fatalf("three isolated White pawns vs none: got %d", got)
	}
}

func TestMaterialWeights(t *testing.T) {
	b := mustFEN(t, "4k3/8/8/8/8/8/8/RNBQKBNR w - - 0 1")
	want := 2*PieceValues[widemg.PieceTypeRook] + 2*PieceValues[widemg.PieceTypeKnight] +
		2*PieceValues[widemg.PieceTypeBishop] + PieceValues[widemg.PieceTypeQueen]
	if got := Breakdown(b).Material; got != want {
		t.Fatalf("material: got %d want %d", got, want)
	}
}
