package widemg

import (
	"sync"

	"golang.org/x/exp/rand"
)

// ZobristKey is a 64-bit position fingerprint.
type ZobristKey uint64

// ZobristSeed seeds the shared key table.
const ZobristSeed uint64 = 24337

// ZobristHasher holds the random keys for pieces, castling, en passant, and side to move.
// A hasher is immutable once built.
type ZobristHasher struct {
	piece     [15][MaxSquares]ZobristKey // indexed by piece code, then square
	castle    [16]ZobristKey             // one per castling rights state
	enPassant [Stride]ZobristKey         // en passant file
	side      ZobristKey                 // Black to move
}

// NewZobristHasher draws every key from a PCG stream seeded with seed, so equal
// seeds always produce equal tables.
func NewZobristHasher(seed uint64) *ZobristHasher {
	rnd := rand.New(rand.NewSource(seed))
	z := &ZobristHasher{}

	// Piece keys
	for p := 0; p < 15; p++ {
		for sq := 0; sq < MaxSquares; sq++ {
			z.piece[p][sq] = ZobristKey(rnd.Uint64())
		}
	}

	// Castling rights keys
	for cr := 0; cr < 16; cr++ {
		z.castle[cr] = ZobristKey(rnd.Uint64())
	}

	// En passant file keys
	for f := 0; f < Stride; f++ {
		z.enPassant[f] = ZobristKey(rnd.Uint64())
	}

	// Side to move key
	z.side = ZobristKey(rnd.Uint64())
	return z
}

var (
	defaultHasherOnce sync.Once
	defaultHasher     *ZobristHasher
)

// DefaultHasher returns the process-wide hasher built from ZobristSeed.
func DefaultHasher() *ZobristHasher {
	defaultHasherOnce.Do(func() { defaultHasher = NewZobristHasher(ZobristSeed) })
	return defaultHasher
}

// Hash calculates the key for b from scratch.
func (z *ZobristHasher) Hash(b *Board) ZobristKey {
	var key ZobristKey

	// Pieces
	for sq := 0; sq < MaxSquares; sq++ {
		p := b.pieces[sq]
		if p != NoPiece {
			key ^= z.piece[p][sq]
		}
	}

	// Side to move (only XOR if Black to move; if White, no XOR needed)
	if b.sideToMove == Black {
		key ^= z.side
	}

	// Castling rights
	key ^= z.castle[int(b.castlingRights)]

	// En passant file (if any)
	if b.enPassantSquare != NoSquare {
		key ^= z.enPassant[b.enPassantSquare.File()]
	}

	return key
}

// ComputeZobrist calculates the Zobrist hash for the current board state.
func (b *Board) ComputeZobrist() ZobristKey { return b.zobrist.Hash(b) }
