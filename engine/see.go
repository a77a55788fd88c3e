package engine

import "wideboard/widemg"

// SeePieceValue is the exchange value of each piece type.
var SeePieceValue = [7]int32{
	widemg.PieceTypeKing:   5000,
	widemg.PieceTypePawn:   100,
	widemg.PieceTypeKnight: 300,
	widemg.PieceTypeBishop: 300,
	widemg.PieceTypeRook:   500,
	widemg.PieceTypeQueen:  900,
}

// see returns the static exchange evaluation of a capture: the material the
// mover expects to win on the target square when both sides recapture with
// their least valuable attacker and may stop at any point. Sliders revealed
// behind earlier capturers join the exchange. Pins are ignored.
func see(b *widemg.Board, move widemg.Move) int32 {
	var gain [32]int32
	depth := 0
	from := move.From()
	target := move.To()

	occ := b.AllOccupancy().Without(from)
	victim := move.CapturedPiece().Type()
	if move.Flags() == widemg.FlagEnPassant {
		occ = occ.Without(widemg.SquareOf(target.File(), from.Rank()))
	}
	attacker := move.MovedPiece().Type()
	gain[depth] = SeePieceValue[victim]
	if move.IsPromotion() {
		attacker = move.PromotionPieceType()
		gain[depth] += SeePieceValue[attacker] - SeePieceValue[widemg.PieceTypePawn]
	}

	side := b.SideToMove().Other()
	for depth < len(gain)-1 {
		depth++
		gain[depth] = SeePieceValue[attacker] - gain[depth-1]

		// Neither side can improve by continuing the exchange.
		if Max(-gain[depth-1], gain[depth]) < 0 {
			break
		}

		sq, pt := leastValuableAttacker(b, target, side, occ)
		if sq == widemg.NoSquare {
			break
		}
		occ = occ.Without(sq)
		attacker = pt
		side = side.Other()
	}

	for x := depth - 1; x > 0; x-- {
		gain[x-1] = -Max(-gain[x-1], gain[x])
	}
	return gain[0]
}

// leastValuableAttacker finds side's cheapest piece within occ attacking
// target, or NoSquare.
func leastValuableAttacker(b *widemg.Board, target widemg.Square, side widemg.Color, occ widemg.Bitboard) (widemg.Square, widemg.PieceType) {
	tables := b.Tables()
	for pt := widemg.PieceTypePawn; pt <= widemg.PieceTypeKing; pt++ {
		// Attacks are symmetric; pawns look back along the opponent's capture direction.
		hits := tables.AttacksFor(pt, side.Other(), target, occ).
			And(b.PieceBitboard(side, pt)).
			And(occ)
		if !hits.IsZero() {
			return hits.LSB(), pt
		}
	}
	return widemg.NoSquare, widemg.PieceTypeNone
}
