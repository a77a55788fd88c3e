package engine

import (
	"fmt"

	"wideboard/widemg"
)

// Material weights indexed by PieceType.
var PieceValues = [7]int32{
	widemg.PieceTypePawn:   20,
	widemg.PieceTypeKnight: 60,
	widemg.PieceTypeBishop: 60,
	widemg.PieceTypeRook:   100,
	widemg.PieceTypeQueen:  180,
	widemg.PieceTypeKing:   4000,
}

// MobilityWeight scores each pseudo-legal target square.
var MobilityWeight int32 = 1

// IsolatedPawnPenalty is charged per pawn with no friendly pawn on a neighbouring file.
var IsolatedPawnPenalty int32 = 5

// Terms is the per-side breakdown of the evaluation, White minus Black.
type Terms struct {
	Material int32
	Mobility int32
	Isolated int32
}

// Total combines the terms from White's point of view.
func (t Terms) Total() int32 {
	return t.Material + MobilityWeight*t.Mobility - IsolatedPawnPenalty*t.Isolated
}

func (t Terms) String() string {
	return fmt.Sprintf("material %d mobility %d isolated %d total %d", t.Material, t.Mobility, t.Isolated, t.Total())
}

// Evaluate scores the position from the side to move's point of view.
func Evaluate(b *widemg.Board) int32 {
	score := Breakdown(b).Total()
	if b.SideToMove() == widemg.Black {
		return -score
	}
	return score
}

// Breakdown returns the evaluation terms, White minus Black.
func Breakdown(b *widemg.Board) Terms {
	var t Terms
	for _, c := range [2]widemg.Color{widemg.White, widemg.Black} {
		sign := int32(1)
		if c == widemg.Black {
			sign = -1
		}
		t.Material += sign * countMaterial(b, c)
		t.Mobility += sign * mobility(b, c)
		t.Isolated += sign * isolatedPawns(b, c)
	}
	return t
}

func countMaterial(b *widemg.Board, c widemg.Color) (material int32) {
	for pt := widemg.PieceTypePawn; pt <= widemg.PieceTypeKing; pt++ {
		material += PieceValues[pt] * int32(b.PieceBitboard(c, pt).Count())
	}
	return material
}

// mobility counts the squares each piece attacks that are not held by its own
// side, plus single pawn steps onto empty squares.
func mobility(b *widemg.Board, c widemg.Color) int32 {
	tables := b.Tables()
	own := b.ColorOccupancy(c)
	enemy := b.ColorOccupancy(c.Other())
	occ := own.Or(enemy)

	pawns := b.PieceBitboard(c, widemg.PieceTypePawn)
	step := widemg.Stride
	if c == widemg.Black {
		step = -widemg.Stride
	}
	count := pawns.Shift(step).And(tables.Squares).AndNot(occ).Count()
	for bb := pawns; !bb.IsZero(); {
		sq := bb.LSB()
		bb = bb.Without(sq)
		count += tables.AttacksFor(widemg.PieceTypePawn, c, sq, occ).And(enemy).Count()
	}

	for pt := widemg.PieceTypeKnight; pt <= widemg.PieceTypeKing; pt++ {
		for bb := b.PieceBitboard(c, pt); !bb.IsZero(); {
			sq := bb.LSB()
			bb = bb.Without(sq)
			count += tables.AttacksFor(pt, c, sq, occ).AndNot(own).Count()
		}
	}
	return int32(count)
}

// isolatedPawns counts c's pawns whose adjacent files hold no pawn of c.
func isolatedPawns(b *widemg.Board, c widemg.Color) int32 {
	tables := b.Tables()
	n := b.Dimension()
	pawns := b.PieceBitboard(c, widemg.PieceTypePawn)
	if pawns.IsZero() {
		return 0
	}
	var perFile [widemg.MaxDimension]int
	for f := 0; f < n; f++ {
		perFile[f] = pawns.And(tables.FileMask(f)).Count()
	}
	var isolated int32
	for f := 0; f < n; f++ {
		if perFile[f] == 0 {
			continue
		}
		left := f > 0 && perFile[f-1] > 0
		right := f < n-1 && perFile[f+1] > 0
		if !left && !right {
			isolated += int32(perFile[f])
		}
	}
	return isolated
}
