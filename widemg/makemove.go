package widemg

import "fmt"

// UndoRecord holds everything needed to reverse a move exactly.
type UndoRecord struct {
	Move           Move
	Captured       Piece
	CapturedSquare Square // differs from Move.To() for en passant
	PrevCastling   CastlingRights
	PrevEnPassant  Square
	PrevHalfmove   int
	PrevFullmove   int
	PrevHash       ZobristKey
	RookFrom       Square // for castling undo
	RookTo         Square // for castling undo
}

// ==========================
// Geometry of home squares
// ==========================

// homeRank returns the back rank of color c.
func (b *Board) homeRank(c Color) int {
	if c == White {
		return 0
	}
	return b.n - 1
}

// pawnRank returns the rank pawns of color c start on.
func (b *Board) pawnRank(c Color) int {
	if c == White {
		return 1
	}
	return b.n - 2
}

// promotionRank returns the last rank for pawns of color c.
func (b *Board) promotionRank(c Color) int {
	if c == White {
		return b.n - 1
	}
	return 0
}

// pawnPush is the square delta of a single pawn step for color c.
func pawnPush(c Color) Square {
	if c == White {
		return Stride
	}
	return -Stride
}

// kingHome returns the castling origin of c's king.
func (b *Board) kingHome(c Color) Square { return SquareOf(b.n/2, b.homeRank(c)) }

// rookHome returns the castling origin of c's rook on the given wing.
func (b *Board) rookHome(c Color, kingside bool) Square {
	if kingside {
		return SquareOf(b.n-1, b.homeRank(c))
	}
	return SquareOf(0, b.homeRank(c))
}

func castleRight(c Color, kingside bool) CastlingRights {
	switch {
	case c == White && kingside:
		return CastlingWhiteK
	case c == White:
		return CastlingWhiteQ
	case kingside:
		return CastlingBlackK
	default:
		return CastlingBlackQ
	}
}

// rightsTouching returns the castling rights invalidated by a move from or to sq.
func (b *Board) rightsTouching(sq Square) CastlingRights {
	var lost CastlingRights
	for c := White; c <= Black; c++ {
		switch sq {
		case b.kingHome(c):
			lost |= castleRight(c, true) | castleRight(c, false)
		case b.rookHome(c, true):
			lost |= castleRight(c, true)
		case b.rookHome(c, false):
			lost |= castleRight(c, false)
		}
	}
	return lost
}

// ==========================
// Make / unmake
// ==========================

// MakeMove applies a pseudo-legal move in place and returns its undo record.
// The hash is updated incrementally. Legality is not checked; see ApplyMove.
func (b *Board) MakeMove(m Move) UndoRecord {
	rec := UndoRecord{
		Move:           m,
		CapturedSquare: NoSquare,
		PrevCastling:   b.castlingRights,
		PrevEnPassant:  b.enPassantSquare,
		PrevHalfmove:   b.halfmoveClock,
		PrevFullmove:   b.fullmoveNumber,
		PrevHash:       b.zobristKey,
		RookFrom:       NoSquare,
		RookTo:         NoSquare,
	}

	from := m.From()
	to := m.To()
	moved := m.MovedPiece()
	promo := m.PromotionPiece()
	flag := m.Flags()
	us := b.sideToMove

	// Remove previous en passant from Zobrist if present
	if b.enPassantSquare != NoSquare {
		b.zobristKey ^= b.zobrist.enPassant[b.enPassantSquare.File()]
	}
	b.enPassantSquare = NoSquare

	// Handle capture (including en passant, where the pawn sits behind 'to')
	capSq := to
	if flag == FlagEnPassant {
		capSq = to - pawnPush(us)
	}
	if captured := b.removePiece(capSq); captured != NoPiece {
		rec.Captured = captured
		rec.CapturedSquare = capSq
	}

	// Move the piece (or promote)
	b.removePiece(from)
	if promo != NoPiece {
		b.addPiece(to, promo)
	} else {
		b.addPiece(to, moved)
	}

	// Castling moves the rook to the square the king crossed
	switch flag {
	case FlagCastleKing:
		rec.RookFrom, rec.RookTo = b.rookHome(us, true), from+1
	case FlagCastleQueen:
		rec.RookFrom, rec.RookTo = b.rookHome(us, false), from-1
	case FlagDoubleStep:
		b.enPassantSquare = from + pawnPush(us)
		b.zobristKey ^= b.zobrist.enPassant[b.enPassantSquare.File()]
	}
	if rec.RookFrom != NoSquare {
		rook := b.removePiece(rec.RookFrom)
		b.addPiece(rec.RookTo, rook)
	}

	// Castling rights are lost for good once a king or rook leaves, or a rook is taken at home
	if lost := b.castlingRights & (b.rightsTouching(from) | b.rightsTouching(to)); lost != 0 {
		b.zobristKey ^= b.zobrist.castle[b.castlingRights]
		b.castlingRights &^= lost
		b.zobristKey ^= b.zobrist.castle[b.castlingRights]
	}

	if moved.Type() == PieceTypePawn || rec.Captured != NoPiece {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if us == Black {
		b.fullmoveNumber++
	}

	b.sideToMove = us.Other()
	b.zobristKey ^= b.zobrist.side
	return rec
}

// UnmakeMove undoes a previously made move, restoring board state exactly.
// It panics with an InvariantViolation when the record does not match the board.
func (b *Board) UnmakeMove(rec UndoRecord) {
	m := rec.Move
	from := m.From()
	to := m.To()
	moved := m.MovedPiece()

	placed := moved
	if promo := m.PromotionPiece(); promo != NoPiece {
		placed = promo
	}
	if b.pieces[int(to)] != placed {
		panic(&InvariantViolation{Msg: fmt.Sprintf("UnmakeMove %v: expected piece %d on %v, found %d", m, placed, to, b.pieces[int(to)])})
	}

	if rec.RookFrom != NoSquare {
		rook := b.clearPiece(rec.RookTo)
		b.putPiece(rec.RookFrom, rook)
	}

	b.clearPiece(to)
	b.putPiece(from, moved)
	if rec.Captured != NoPiece {
		b.putPiece(rec.CapturedSquare, rec.Captured)
	}

	b.sideToMove = b.sideToMove.Other()
	b.castlingRights = rec.PrevCastling
	b.enPassantSquare = rec.PrevEnPassant
	b.halfmoveClock = rec.PrevHalfmove
	b.fullmoveNumber = rec.PrevFullmove
	b.zobristKey = rec.PrevHash
}
