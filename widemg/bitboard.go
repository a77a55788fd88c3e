package widemg

import (
	"math/bits"
	"strings"

	"github.com/holiman/uint256"
)

// Stride is the row width of the bitboard layout. Square (file, rank) maps to
// bit rank*Stride + file regardless of the board dimension.
const Stride = 16

// MaxSquares is the number of addressable bits in a Bitboard.
const MaxSquares = Stride * Stride

// Bitboard is a 256-bit square set stored as four little-endian uint64 limbs.
type Bitboard uint256.Int

func (b *Bitboard) word() *uint256.Int { return (*uint256.Int)(b) }

// SquareBB returns a bitboard with only sq set.
func SquareBB(sq Square) Bitboard {
	var r Bitboard
	r[sq>>6] = 1 << (uint(sq) & 63)
	return r
}

// Has reports whether sq is set.
func (b Bitboard) Has(sq Square) bool { return b[sq>>6]&(1<<(uint(sq)&63)) != 0 }

// With returns b with sq set.
func (b Bitboard) With(sq Square) Bitboard {
	b[sq>>6] |= 1 << (uint(sq) & 63)
	return b
}

// Without returns b with sq cleared.
func (b Bitboard) Without(sq Square) Bitboard {
	b[sq>>6] &^= 1 << (uint(sq) & 63)
	return b
}

func (b Bitboard) And(o Bitboard) Bitboard {
	var r Bitboard
	r.word().And(b.word(), o.word())
	return r
}

func (b Bitboard) Or(o Bitboard) Bitboard {
	var r Bitboard
	r.word().Or(b.word(), o.word())
	return r
}

func (b Bitboard) Xor(o Bitboard) Bitboard {
	var r Bitboard
	r.word().Xor(b.word(), o.word())
	return r
}

// Not complements all 256 bits; callers mask with the active squares.
func (b Bitboard) Not() Bitboard {
	var r Bitboard
	r.word().Not(b.word())
	return r
}

// AndNot returns b with every bit of o cleared.
func (b Bitboard) AndNot(o Bitboard) Bitboard {
	return b.And(o.Not())
}

// Shift moves every bit n places toward the high end (n > 0) or the low end (n < 0).
func (b Bitboard) Shift(n int) Bitboard {
	var r Bitboard
	if n >= 0 {
		r.word().Lsh(b.word(), uint(n))
	} else {
		r.word().Rsh(b.word(), uint(-n))
	}
	return r
}

func (b Bitboard) IsZero() bool { return b.word().IsZero() }

func (b Bitboard) Equal(o Bitboard) bool { return b.word().Eq(o.word()) }

// Count returns the number of set bits.
func (b Bitboard) Count() int {
	return bits.OnesCount64(b[0]) + bits.OnesCount64(b[1]) + bits.OnesCount64(b[2]) + bits.OnesCount64(b[3])
}

// LSB returns the lowest set square, or NoSquare when empty.
func (b Bitboard) LSB() Square {
	for i := 0; i < 4; i++ {
		if b[i] != 0 {
			return Square(i*64 + bits.TrailingZeros64(b[i]))
		}
	}
	return NoSquare
}

// MSB returns the highest set square, or NoSquare when empty.
func (b Bitboard) MSB() Square {
	n := b.word().BitLen()
	if n == 0 {
		return NoSquare
	}
	return Square(n - 1)
}

// popLSB removes and returns the lowest set square from the mask.
func popLSB(mask *Bitboard) Square {
	for i := 0; i < 4; i++ {
		if w := mask[i]; w != 0 {
			mask[i] = w & (w - 1)
			return Square(i*64 + bits.TrailingZeros64(w))
		}
	}
	return NoSquare
}

// String renders the full 16x16 bit grid, top rank first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := Stride - 1; rank >= 0; rank-- {
		for file := 0; file < Stride; file++ {
			if b.Has(SquareOf(file, rank)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
