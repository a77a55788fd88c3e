package widemg_test

import (
	"errors"
	"testing"

	"wideboard/widemg"
)

func TestRookSlidingStopsAtBlocker(t *testing.T) {
	tb := widemg.TablesFor(16)
	a1 := widemg.SquareOf(0, 0)
	a5 := widemg.SquareOf(0, 4)
	occ := widemg.SquareBB(a5)

	att := tb.AttacksFor(widemg.PieceTypeRook, widemg.White, a1, occ)
	for rank := 1; rank <= 4; rank++ {
		if !att.Has(widemg.SquareOf(0, rank)) {
			t.Fatalf("rook on a1 should reach a%d", rank+1)
		}
	}
	for rank := 5; rank < 16; rank++ {
		if att.Has(widemg.SquareOf(0, rank)) {
			t.Fatalf("rook on a1 should not pass the blocker on a5, reached a%d", rank+1)
		}
	}
	// The whole first rank is open: 15 squares east plus 4 north.
	if got := att.Count(); got != 19 {
		t.Fatalf("rook attack count: got %d want 19\n%v", got, att)
	}
}

func TestBishopSlidingBothDirections(t *testing.T) {
	tb := widemg.TablesFor(12)
	c := widemg.SquareOf(5, 5)
	occ := widemg.SquareBB(widemg.SquareOf(7, 7)).Or(widemg.SquareBB(widemg.SquareOf(3, 3)))
	att := tb.AttacksFor(widemg.PieceTypeBishop, widemg.Black, c, occ)
	if !att.Has(widemg.SquareOf(7, 7)) || att.Has(widemg.SquareOf(8, 8)) {
		t.Fatalf("NE ray should stop on its blocker")
	}
	if !att.Has(widemg.SquareOf(3, 3)) || att.Has(widemg.SquareOf(2, 2)) {
		t.Fatalf("SW ray should stop on its blocker")
	}
	if !att.Has(widemg.SquareOf(0, 10)) || !att.Has(widemg.SquareOf(10, 0)) {
		t.Fatalf("open diagonals should reach the board edge")
	}
	if !att.AndNot(tb.Squares).IsZero() {
		t.Fatalf("attacks leak outside the 12x12 board")
	}
}

func TestQueenCombinesRookAndBishopRays(t *testing.T) {
	tb := widemg.TablesFor(14)
	from := widemg.SquareOf(6, 6)
	occ := widemg.SquareBB(widemg.SquareOf(6, 9)).Or(widemg.SquareBB(widemg.SquareOf(2, 2)))
	rook := tb.AttacksFor(widemg.PieceTypeRook, widemg.White, from, occ)
	bishop := tb.AttacksFor(widemg.PieceTypeBishop, widemg.White, from, occ)
	queen := tb.AttacksFor(widemg.PieceTypeQueen, widemg.White, from, occ)
	if queen != rook.Or(bishop) {
		t.Fatalf("queen attacks differ from rook|bishop:\n%v", queen)
	}
	if !rook.And(bishop).IsZero() {
		t.Fatalf("rook and bishop rays overlap")
	}
	for pt := widemg.PieceTypePawn; pt <= widemg.PieceTypeKing; pt++ {
		want := pt == widemg.PieceTypeBishop || pt == widemg.PieceTypeRook || pt == widemg.PieceTypeQueen
		if pt.Sliding() != want {
			t.Fatalf("%d.Sliding() = %v", pt, pt.Sliding())
		}
	}
}

func TestSteppingPiecesStayOnBoard(t *testing.T) {
	for n := widemg.MinDimension; n <= widemg.MaxDimension; n++ {
		tb := widemg.TablesFor(n)
		corner := widemg.SquareOf(n-1, n-1)
		if got := tb.AttacksFor(widemg.PieceTypeKnight, widemg.White, corner, widemg.Bitboard{}).Count(); got != 2 {
			t.Fatalf("n=%d corner knight: got %d targets want 2", n, got)
		}
		if got := tb.AttacksFor(widemg.PieceTypeKing, widemg.White, corner, widemg.Bitboard{}).Count(); got != 3 {
			t.Fatalf("n=%d corner king: got %d targets want 3", n, got)
		}
		edgePawn := widemg.SquareOf(n-1, 1)
		if got := tb.AttacksFor(widemg.PieceTypePawn, widemg.White, edgePawn, widemg.Bitboard{}).Count(); got != 1 {
			t.Fatalf("n=%d edge pawn: got %d targets want 1", n, got)
		}
	}
}

func TestTablesForRejectsDimension(t *testing.T) {
	for _, n := range []int{7, 17} {
		func() {
			defer func() {
				r := recover()
				err, ok := r.(error)
				var iv *widemg.InvariantViolation
				if !ok || !errors.As(err, &iv) {
					t.Fatalf("TablesFor(%d): expected InvariantViolation panic, got %v", n, r)
				}
			}()
			widemg.TablesFor(n)
		}()
	}
}

func TestAttacksForOffBoardSquarePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for square outside 8x8 board")
		}
	}()
	widemg.TablesFor(8).AttacksFor(widemg.PieceTypeRook, widemg.White, widemg.SquareOf(9, 0), widemg.Bitboard{})
}

func TestIsSquareAttacked_RookFiles(t *testing.T) {
	b := mustFEN(t, "4r3/8/8/8/8/8/8/k3K3 w - - 0 1")
	e1 := sq(t, b, "e1")
	if !b.InCheck(widemg.White) || !b.IsSquareAttacked(e1, widemg.Black) {
		t.Fatalf("expected e1 attacked by the rook on e8")
	}
	b.SetPiece(sq(t, b, "e3"), widemg.WhitePawn)
	if b.IsSquareAttacked(e1, widemg.Black) {
		t.Fatalf("did not expect e1 attacked after blocker added")
	}
}
