package widemg_test

import (
	"errors"
	"testing"

	"wideboard/widemg"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		widemg.FENStartPos,
		kiwipete,
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
		"rnbnqknbnr/pppppppppp/10/10/10/10/10/10/PPPPPPPPPP/RNBNQKNBNR w KQkq - 0 1",
		"k15/16/16/16/16/16/16/16/16/16/16/16/16/16/16/15K b - - 12 40",
	}
	for _, fen := range fens {
		b := mustFEN(t, fen)
		if got := b.ToFEN(); got != fen {
			t.Fatalf("ToFEN: got %q want %q", got, fen)
		}
		if err := b.Validate(); err != nil {
			t.Fatalf("%s: %v", fen, err)
		}
	}
}

func TestFENMatchesStartPosition(t *testing.T) {
	if got := widemg.StartPosition(8).ToFEN(); got != widemg.FENStartPos {
		t.Fatalf("8x8 start: got %q", got)
	}
	want := "rnbnqknbnr/pppppppppp/10/10/10/10/10/10/PPPPPPPPPP/RNBNQKNBNR w KQkq - 0 1"
	if got := widemg.StartPosition(10).ToFEN(); got != want {
		t.Fatalf("10x10 start: got %q want %q", got, want)
	}
}

func TestFENOptionalFields(t *testing.T) {
	b := mustFEN(t, "4k3/8/8/8/8/8/8/4K3")
	if b.SideToMove() != widemg.White || b.HalfmoveClock() != 0 || b.FullmoveNumber() != 1 {
		t.Fatalf("defaults not applied: %s", b.ToFEN())
	}
}

func TestFENErrors(t *testing.T) {
	bad := map[string]string{
		"empty":          "",
		"seven ranks":    "4k3/8/8/8/8/8/4K3 w - - 0 1",
		"overfull rank":  "4k3/8/8/8/8/8/8/4K4 w - - 0 1",
		"unknown piece":  "4k3/8/8/8/8/8/8/4X3 w - - 0 1",
		"stray ep":       "4k3/8/8/8/8/8/8/4K3 w - e3 0 1",
		"fullmove zero":  "4k3/8/8/8/8/8/8/4K3 w - - 0 0",
		"trailing field": "4k3/8/8/8/8/8/8/4K3 w - - 0 1 extra",
	}
	for name, fen := range bad {
		_, err := widemg.ParseFEN(fen)
		var fe *widemg.FormatError
		if !errors.As(err, &fe) {
			t.Fatalf("%s: expected FormatError, got %v", name, err)
		}
	}
}
