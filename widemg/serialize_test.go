package widemg_test

import (
	"errors"
	"strings"
	"testing"

	"wideboard/widemg"
)

func TestToStringStartPosition(t *testing.T) {
	b := widemg.StartPosition(8)
	want := strings.Join([]string{
		"RNBQKBNR",
		"PPPPPPPP",
		"00000000",
		"00000000",
		"00000000",
		"00000000",
		"pppppppp",
		"rnbqkbnr",
		"w KQkq - 0 1",
	}, "\n") + "\n"
	if got := b.ToString(); got != want {
		t.Fatalf("ToString:\n%s\nwant:\n%s", got, want)
	}
}

func TestStringRoundTripAllDimensions(t *testing.T) {
	for n := widemg.MinDimension; n <= widemg.MaxDimension; n++ {
		b := widemg.StartPosition(n)
		if err := b.Validate(); err != nil {
			t.Fatalf("n=%d start position invalid: %v", n, err)
		}
		back, err := widemg.FromString(b.ToString())
		if err != nil {
			t.Fatalf("n=%d FromString: %v", n, err)
		}
		if !back.Equal(b) {
			t.Fatalf("n=%d round trip mismatch:\n%s\nvs\n%s", n, back.ToString(), b.ToString())
		}
	}
}

func TestStringRoundTripAfterMoves(t *testing.T) {
	b := widemg.StartPosition(11)
	play(t, b, "f2f4", "e10e8", "b1c3")
	if b.EnPassantSquare() != widemg.NoSquare {
		t.Fatalf("en passant should be cleared after a knight move")
	}
	play(t, b, "d10d8")
	if got := b.EnPassantSquare().String(); got != "d9" {
		t.Fatalf("en passant after d10d8: got %s want d9", got)
	}
	text := b.ToString()
	back, err := widemg.FromString(text)
	if err != nil {
		t.Fatalf("FromString: %v\n%s", err, text)
	}
	if !back.Equal(b) {
		t.Fatalf("round trip mismatch:\n%s\nvs\n%s", back.ToString(), text)
	}
	if back.ToString() != text {
		t.Fatalf("second serialization differs")
	}
}

func TestFromStringWithoutStatus(t *testing.T) {
	text := strings.Repeat("00000000\n", 3) + "0000K000\n" + strings.Repeat("00000000\n", 3) + "0000k000\n"
	b, err := widemg.FromString(text)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if b.SideToMove() != widemg.White || b.CastlingRights() != 0 || b.FullmoveNumber() != 1 {
		t.Fatalf("defaults not applied: %s", b.ToFEN())
	}
	if got := b.PieceAt(sq(t, b, "e1")); got != widemg.WhiteKing {
		t.Fatalf("lowercase k should be the White king, got %d", got)
	}
}

func TestFromStringFormatErrors(t *testing.T) {
	eight := func(rows ...string) string {
		return strings.Join(rows, "\n")
	}
	empty := "00000000"
	kings := func(extra ...string) string {
		rows := []string{"0000K000", empty, empty, empty, empty, empty, empty, "0000k000"}
		return eight(append(rows, extra...)...)
	}
	cases := []struct {
		name string
		text string
		line int
	}{
		{"too few rows", eight("0000K000", empty, empty, empty, empty, empty, "0000k000"), 0},
		{"ragged row", eight("0000K000", empty, "0000000", empty, empty, empty, empty, "0000k000"), 3},
		{"unknown piece", eight("0000K000", empty, empty, "000x0000", empty, empty, empty, "0000k000"), 4},
		{"bad side", kings("x - - 0 1"), 9},
		{"bare bad side", kings("x"), 9},
		{"bare numeric token", kings("7"), 9},
		{"bad castling", kings("w KZ - 0 1"), 9},
		{"negative clock", kings("w - - -1 1"), 9},
		{"text after status", kings("w - - 0 1", "00000000"), 10},
		{"no kings", eight(empty, empty, empty, empty, empty, empty, empty, empty), 0},
		{"castling without rook", kings("w K - 0 1"), 0},
		{"pawn on back rank", eight("0000K00P", empty, empty, empty, empty, empty, empty, "0000k000"), 0},
	}
	for _, tc := range cases {
		b, err := widemg.FromString(tc.text)
		if err == nil {
			t.Fatalf("%s: expected error, got board\n%s", tc.name, b.ToString())
		}
		var fe *widemg.FormatError
		if !errors.As(err, &fe) {
			t.Fatalf("%s: expected *FormatError, got %T: %v", tc.name, err, err)
		}
		if fe.Line != tc.line {
			t.Fatalf("%s: error line %d want %d (%v)", tc.name, fe.Line, tc.line, err)
		}
	}
}

func TestFromStringBareSideLine(t *testing.T) {
	rows := []string{"0000K000", "00000000", "00000000", "00000000", "00000000", "00000000", "00000000", "0000k000"}
	b, err := widemg.FromString(strings.Join(append(rows, "b"), "\n"))
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if b.Dimension() != 8 || b.SideToMove() != widemg.Black || b.CastlingRights() != 0 {
		t.Fatalf("bare side line not read as status: %s", b.ToFEN())
	}
	_, err = widemg.FromString(strings.Join(append(rows, "q"), "\n"))
	if err == nil || !strings.Contains(err.Error(), `line 9`) || !strings.Contains(err.Error(), `side to move "q"`) {
		t.Fatalf("expected a side-to-move error on line 9, got %v", err)
	}
}

func TestFromStringRejectsOppositeCheck(t *testing.T) {
	// Black rook on e8 checks the White king but Black is to move.
	rows := []string{"0000R00K", "00000000", "00000000", "00000000", "00000000", "00000000", "00000000", "0000k000", "b - - 0 1"}
	_, err := widemg.FromString(strings.Join(rows, "\n"))
	var fe *widemg.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError for side not to move in check, got %v", err)
	}
}

func TestNewBoard(t *testing.T) {
	b, err := widemg.NewBoard(12, "")
	if err != nil {
		t.Fatalf("NewBoard(12): %v", err)
	}
	if !b.Equal(widemg.StartPosition(12)) {
		t.Fatalf("NewBoard with empty layout should be the start position")
	}
	if _, err := widemg.NewBoard(10, b.ToString()); err == nil {
		t.Fatalf("expected dimension mismatch error")
	}
	if _, err := widemg.NewBoard(17, ""); err == nil {
		t.Fatalf("expected error for dimension 17")
	}
	c, err := widemg.NewBoard(12, b.ToString())
	if err != nil || !c.Equal(b) {
		t.Fatalf("NewBoard from layout: %v", err)
	}
}

func TestDisplay(t *testing.T) {
	got := widemg.StartPosition(8).Display()
	lines := strings.Split(got, "\n")
	if lines[0] != "   ABCDEFGH" {
		t.Fatalf("header: %q", lines[0])
	}
	if lines[1] != " 8 rnbqkbnr" || lines[8] != " 1 RNBQKBNR" || lines[4] != " 5 --------" {
		t.Fatalf("unexpected diagram:\n%s", got)
	}
}
