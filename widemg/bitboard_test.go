package widemg_test

import (
	"testing"

	"wideboard/widemg"
)

func TestBitboardAcrossLimbs(t *testing.T) {
	var bb widemg.Bitboard
	for _, s := range []widemg.Square{0, 63, 64, 130, 255} {
		bb = bb.With(s)
	}
	if got := bb.Count(); got != 5 {
		t.Fatalf("count: got %d want 5", got)
	}
	if got := bb.LSB(); got != 0 {
		t.Fatalf("lsb: got %d want 0", got)
	}
	if got := bb.MSB(); got != 255 {
		t.Fatalf("msb: got %d want 255", got)
	}
	bb = bb.Without(0).Without(255)
	if bb.LSB() != 63 || bb.MSB() != 130 {
		t.Fatalf("after clearing ends: lsb %d msb %d", bb.LSB(), bb.MSB())
	}
	if !bb.Has(64) || bb.Has(65) {
		t.Fatalf("Has mismatch around limb boundary")
	}
}

func TestBitboardShiftCarries(t *testing.T) {
	bb := widemg.SquareBB(63).Shift(widemg.Stride)
	if !bb.Equal(widemg.SquareBB(63 + widemg.Stride)) {
		t.Fatalf("left shift across limb: got\n%v", bb)
	}
	if back := bb.Shift(-widemg.Stride); !back.Equal(widemg.SquareBB(63)) {
		t.Fatalf("right shift across limb: got\n%v", back)
	}
	if !widemg.SquareBB(250).Shift(widemg.Stride).IsZero() {
		t.Fatalf("shifting past square 255 should drop the bit")
	}
}

func TestBitboardEmpty(t *testing.T) {
	var bb widemg.Bitboard
	if !bb.IsZero() || bb.Count() != 0 {
		t.Fatalf("zero bitboard not empty")
	}
	if bb.LSB() != widemg.NoSquare || bb.MSB() != widemg.NoSquare {
		t.Fatalf("empty bitboard should report NoSquare")
	}
	a := widemg.SquareBB(5).Or(widemg.SquareBB(200))
	if got := a.AndNot(widemg.SquareBB(5)); !got.Equal(widemg.SquareBB(200)) {
		t.Fatalf("AndNot: got\n%v", got)
	}
	if got := a.Xor(a); !got.IsZero() {
		t.Fatalf("x^x should be zero")
	}
}
