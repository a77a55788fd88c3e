package widemg

import "fmt"

// Piece constants and types for pieces and colors
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece type | 8) so that
	// - piece & 7 gives the type in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is a colorless representation of a chess piece used for table lookups.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Sliding reports whether the type moves along rays until blocked.
func (pt PieceType) Sliding() bool {
	return pt == PieceTypeBishop || pt == PieceTypeRook || pt == PieceTypeQueen
}

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// PieceFromType combines a colorless type with a side to produce a concrete Piece.
func PieceFromType(color Color, pt PieceType) Piece {
	if pt == PieceTypeNone || pt > PieceTypeKing {
		return NoPiece
	}
	if color == Black {
		return Piece(pt) | 8
	}
	return Piece(pt)
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Castling rights bit flags
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ

	CastlingAll = CastlingWhiteK | CastlingWhiteQ | CastlingBlackK | CastlingBlackQ
)

// Square is a bit index rank*Stride + file. Ranks count up from White's side.
type Square int

const NoSquare Square = -1

// SquareOf builds a square from zero-based file and rank.
func SquareOf(file, rank int) Square { return Square(rank*Stride + file) }

func (sq Square) File() int { return int(sq) % Stride }

func (sq Square) Rank() int { return int(sq) / Stride }

// String returns the algebraic name, files a..p and ranks 1..16.
func (sq Square) String() string {
	if sq == NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+sq.File(), sq.Rank()+1)
}

// Board represents the chess board state, including piece placement and game state.
type Board struct {
	// Piece bitboards indexed by color then PieceType (index 0 unused).
	// Per-color occupancy is derived from these on demand.
	pieceBB [2][7]Bitboard

	// Piece placement array for each square (0 = NoPiece, otherwise a Piece constant)
	pieces [MaxSquares]Piece

	// Side to move (which player's turn it is)
	sideToMove Color

	// Castling rights for both sides (bitmask using CastlingRights flags)
	castlingRights CastlingRights

	// En passant target square (if a pawn moved two steps last move, otherwise NoSquare)
	enPassantSquare Square

	// Halfmove clock (number of half-moves since last capture or pawn advance, for 50-move rule)
	halfmoveClock int

	// Fullmove number (starts at 1, incremented after Black's move)
	fullmoveNumber int

	// Zobrist hash key for the current position (for move repetition and hashing)
	zobristKey ZobristKey

	n       int
	tables  *AttackTables
	zobrist *ZobristHasher
}

// newEmptyBoard returns an empty n x n board wired to the shared tables.
func newEmptyBoard(n int) *Board {
	b := &Board{
		n:               n,
		tables:          TablesFor(n),
		zobrist:         DefaultHasher(),
		enPassantSquare: NoSquare,
		fullmoveNumber:  1,
	}
	b.zobristKey = b.ComputeZobrist()
	return b
}

// Dimension returns N for an N x N board.
func (b *Board) Dimension() int { return b.n }

// Tables returns the attack tables shared by boards of this dimension.
func (b *Board) Tables() *AttackTables { return b.tables }

// HalfmoveClock returns the number of half-moves since the last capture or pawn move.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the current move number.
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// EnPassantSquare returns the en passant target or NoSquare.
func (b *Board) EnPassantSquare() Square { return b.enPassantSquare }

// SideToMove returns the color to move.
func (b *Board) SideToMove() Color { return b.sideToMove }

// CastlingRights returns the current rights bitset.
func (b *Board) CastlingRights() CastlingRights { return b.castlingRights }

// Hash returns the incrementally maintained Zobrist key.
func (b *Board) Hash() ZobristKey { return b.zobristKey }

// PieceBitboard returns the squares holding pieces of the given color and type.
func (b *Board) PieceBitboard(c Color, pt PieceType) Bitboard { return b.pieceBB[c][pt] }

// ColorOccupancy returns the occupancy bitboard for the given color.
func (b *Board) ColorOccupancy(c Color) Bitboard {
	bbs := &b.pieceBB[c]
	return bbs[1].Or(bbs[2]).Or(bbs[3]).Or(bbs[4]).Or(bbs[5]).Or(bbs[6])
}

// AllOccupancy returns a bitboard of all occupied squares.
func (b *Board) AllOccupancy() Bitboard {
	return b.ColorOccupancy(White).Or(b.ColorOccupancy(Black))
}

// PieceAt returns the piece on a square.
func (b *Board) PieceAt(sq Square) Piece { return b.pieces[int(sq)] }

// KingSquare returns the square of c's king, or NoSquare.
func (b *Board) KingSquare(c Color) Square { return b.pieceBB[c][PieceTypeKing].LSB() }

// Clone returns an independent copy sharing the read-only tables.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Equal reports whether two boards describe the same position, counters included.
func (b *Board) Equal(o *Board) bool {
	return b.n == o.n &&
		b.pieceBB == o.pieceBB &&
		b.pieces == o.pieces &&
		b.sideToMove == o.sideToMove &&
		b.castlingRights == o.castlingRights &&
		b.enPassantSquare == o.enPassantSquare &&
		b.halfmoveClock == o.halfmoveClock &&
		b.fullmoveNumber == o.fullmoveNumber &&
		b.zobristKey == o.zobristKey
}

// ==========================
// Piece placement
// ==========================

// putPiece and clearPiece touch placement only; the hash is left alone.
func (b *Board) putPiece(sq Square, p Piece) {
	b.pieces[int(sq)] = p
	c, pt := p.Color(), p.Type()
	b.pieceBB[c][pt] = b.pieceBB[c][pt].With(sq)
}

func (b *Board) clearPiece(sq Square) Piece {
	p := b.pieces[int(sq)]
	if p == NoPiece {
		return NoPiece
	}
	b.pieces[int(sq)] = NoPiece
	c, pt := p.Color(), p.Type()
	b.pieceBB[c][pt] = b.pieceBB[c][pt].Without(sq)
	return p
}

// addPiece places a piece on an empty square and updates bitboards and zobrist.
func (b *Board) addPiece(sq Square, p Piece) {
	if p == NoPiece {
		return
	}
	b.putPiece(sq, p)
	b.zobristKey ^= b.zobrist.piece[p][int(sq)]
}

// removePiece removes a piece from a square and updates bitboards and zobrist.
func (b *Board) removePiece(sq Square) Piece {
	p := b.clearPiece(sq)
	if p != NoPiece {
		b.zobristKey ^= b.zobrist.piece[p][int(sq)]
	}
	return p
}

// SetPiece sets a piece on a square, replacing any existing piece, and keeps state in sync.
func (b *Board) SetPiece(sq Square, p Piece) {
	if !b.tables.Squares.Has(sq) {
		panic(&InvariantViolation{Msg: fmt.Sprintf("SetPiece: square %v outside %dx%d board", sq, b.n, b.n)})
	}
	b.removePiece(sq)
	b.addPiece(sq, p)
}

// ClearSquare removes any piece from the given square.
func (b *Board) ClearSquare(sq Square) { _ = b.removePiece(sq) }

// SetSideToMove switches the side to move, keeping the hash in sync.
func (b *Board) SetSideToMove(c Color) {
	if b.sideToMove != c {
		b.sideToMove = c
		b.zobristKey ^= b.zobrist.side
	}
}

// ==========================
// Status helpers
// ==========================

// HasLegalMoves reports whether the side to move has any legal moves.
func (b *Board) HasLegalMoves() bool {
	buf := make([]Move, 0, 64)
	return len(b.GenerateMovesInto(buf)) > 0
}

// IsDrawBy50 reports whether the halfmove clock reached 100.
func (b *Board) IsDrawBy50() bool { return b.halfmoveClock >= 100 }

// IsDrawByRepetition determines whether the current position has occurred at least
// twice before in the provided history of Zobrist keys. The last entry is ignored
// when it equals the current key, so callers may pass a history that already
// includes the current position.
func (b *Board) IsDrawByRepetition(history []ZobristKey) bool {
	target := b.zobristKey
	end := len(history)
	if end > 0 && history[end-1] == target {
		end--
	}
	matches := 0
	for i := 0; i < end; i++ {
		if history[i] == target {
			matches++
			if matches >= 2 { // plus current occurrence makes threefold
				return true
			}
		}
	}
	return false
}

// ==========================
// Move helpers for drivers
// ==========================

// PushMove attempts to make the move, and if legal, appends the resulting Zobrist
// key to the provided history and pushes the UndoRecord onto the stack for later undo.
// Returns false, leaving everything unchanged, if the move is not legal.
func (b *Board) PushMove(m Move, stack *[]UndoRecord, history *[]ZobristKey) bool {
	rec, err := b.ApplyMove(m)
	if err != nil {
		return false
	}
	*stack = append(*stack, rec)
	*history = append(*history, b.zobristKey)
	return true
}

// PopMove undoes the last move pushed with PushMove, restoring the board state
// and truncating the history by one entry.
// It panics if the stack is empty.
func (b *Board) PopMove(stack *[]UndoRecord, history *[]ZobristKey) {
	n := len(*stack)
	if n == 0 {
		panic(&InvariantViolation{Msg: "PopMove: empty stack"})
	}
	rec := (*stack)[n-1]
	*stack = (*stack)[:n-1]
	b.UndoMove(rec)
	if len(*history) > 0 {
		*history = (*history)[:len(*history)-1]
	}
}

// ==========================
// Consistency
// ==========================

// Validate checks internal consistency: disjoint piece sets, mailbox agreement,
// one king per side, no pieces off the active board and an up-to-date hash.
func (b *Board) Validate() error {
	var seen Bitboard
	for c := White; c <= Black; c++ {
		for pt := PieceTypePawn; pt <= PieceTypeKing; pt++ {
			set := b.pieceBB[c][pt]
			if !set.And(seen).IsZero() {
				return &InvariantViolation{Msg: fmt.Sprintf("%v %d bitboard overlaps another piece set", c, pt)}
			}
			seen = seen.Or(set)
			for s := set; !s.IsZero(); {
				sq := popLSB(&s)
				if b.pieces[int(sq)] != PieceFromType(c, pt) {
					return &InvariantViolation{Msg: fmt.Sprintf("mailbox disagrees with bitboards on %v", sq)}
				}
			}
		}
		if k := b.pieceBB[c][PieceTypeKing].Count(); k != 1 {
			return &InvariantViolation{Msg: fmt.Sprintf("%v has %d kings", c, k)}
		}
	}
	if !seen.AndNot(b.tables.Squares).IsZero() {
		return &InvariantViolation{Msg: "piece outside the active board"}
	}
	for sq := 0; sq < MaxSquares; sq++ {
		if b.pieces[sq] != NoPiece && !seen.Has(Square(sq)) {
			return &InvariantViolation{Msg: fmt.Sprintf("mailbox holds a piece missing from bitboards on %v", Square(sq))}
		}
	}
	// Cross-check Zobrist
	if b.zobristKey != b.ComputeZobrist() {
		return &InvariantViolation{Msg: fmt.Sprintf("hash %016x, recomputed %016x", b.zobristKey, b.ComputeZobrist())}
	}
	return nil
}
