package widemg_test

import (
	"testing"

	"wideboard/widemg"
)

// Kiwipete, a castling and en passant heavy 8x8 position.
const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func mustFEN(t *testing.T, fen string) *widemg.Board {
	t.Helper()
	b, err := widemg.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

func sq(t *testing.T, b *widemg.Board, name string) widemg.Square {
	t.Helper()
	s, err := widemg.ParseSquare(name, b.Dimension())
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return s
}

func mustMove(t *testing.T, b *widemg.Board, text string) widemg.Move {
	t.Helper()
	m, err := b.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q) in %s: %v", text, b.ToFEN(), err)
	}
	return m
}

func play(t *testing.T, b *widemg.Board, moves ...string) {
	t.Helper()
	for _, text := range moves {
		if _, err := b.ApplyMove(mustMove(t, b, text)); err != nil {
			t.Fatalf("ApplyMove(%s): %v", text, err)
		}
	}
}

func moveStrings(moves []widemg.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}
