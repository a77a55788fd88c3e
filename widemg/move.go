package widemg

import "strings"

// Move encodes a chess move in a 32-bit value. The zero Move means "no move".
type Move uint32

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift    = 0  // 8 bits
	moveToShift      = 8  // 8 bits
	movePieceShift   = 16 // 4 bits
	moveCaptureShift = 20 // 4 bits
	movePromoteShift = 24 // 4 bits
	moveFlagShift    = 28 // 3 bits
)

// Move flags. Promotion is indicated by a non-zero promotion piece.
const (
	FlagNone        = 0
	FlagDoubleStep  = 1
	FlagEnPassant   = 2
	FlagCastleKing  = 3
	FlagCastleQueen = 4
)

// NewMove constructs a Move value from components.
func NewMove(from, to Square, piece, captured Piece, promotion Piece, flag uint8) Move {
	m := uint32(from&0xFF) |
		(uint32(to&0xFF) << moveToShift) |
		(uint32(piece&0xF) << movePieceShift) |
		(uint32(captured&0xF) << moveCaptureShift) |
		(uint32(promotion&0xF) << movePromoteShift) |
		(uint32(flag&0x7) << moveFlagShift)
	return Move(m)
}

// From returns the source square of the move.
func (m Move) From() Square { return Square((uint32(m) >> moveFromShift) & 0xFF) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square((uint32(m) >> moveToShift) & 0xFF) }

// MovedPiece returns the piece code that is moved.
func (m Move) MovedPiece() Piece { return Piece((uint32(m) >> movePieceShift) & 0xF) }

// CapturedPiece returns the piece code that is captured (or NoPiece if none).
func (m Move) CapturedPiece() Piece { return Piece((uint32(m) >> moveCaptureShift) & 0xF) }

// PromotionPiece returns the promotion piece code (or NoPiece if not a promotion).
func (m Move) PromotionPiece() Piece { return Piece((uint32(m) >> movePromoteShift) & 0xF) }

// PromotionPieceType returns the colorless type of the promoted piece (or PieceTypeNone).
func (m Move) PromotionPieceType() PieceType { return m.PromotionPiece().Type() }

// Flags returns the special move flag.
func (m Move) Flags() uint8 { return uint8((uint32(m) >> moveFlagShift) & 0x7) }

func (m Move) IsCapture() bool { return m.CapturedPiece() != NoPiece }

func (m Move) IsPromotion() bool { return m.PromotionPiece() != NoPiece }

func (m Move) IsCastle() bool {
	f := m.Flags()
	return f == FlagCastleKing || f == FlagCastleQueen
}

// String produces the long algebraic form, e.g. "e2e4", "e7e8q", "k15k16n".
func (m Move) String() string {
	if m == 0 {
		return "0000"
	}
	str := m.From().String() + m.To().String()
	if promo := m.PromotionPiece(); promo != NoPiece {
		str += strings.ToLower(string(charFromPiece(promo)))
	}
	return str
}

// GivesCheck reports whether the move (assumed legal for the current side to move)
// leaves the opponent's king in check. The board is restored before returning.
func (b *Board) GivesCheck(m Move) bool {
	them := b.sideToMove.Other()
	if b.KingSquare(them) == NoSquare {
		return false
	}
	rec := b.MakeMove(m)
	check := b.InCheck(them)
	b.UnmakeMove(rec)
	return check
}
