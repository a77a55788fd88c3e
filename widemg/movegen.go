package widemg

// Generation filters
const (
	genAll = iota
	genCaptures
	genQuiets
)

// promotionOrder lists promotion targets in generation order.
var promotionOrder = [4]PieceType{PieceTypeQueen, PieceTypeRook, PieceTypeBishop, PieceTypeKnight}

// ==========================
// Attack queries
// ==========================

// IsSquareAttacked reports whether the given square is attacked by the given color.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	return b.isSquareAttackedWithOcc(sq, by, b.AllOccupancy())
}

func (b *Board) isSquareAttackedWithOcc(sq Square, by Color, occ Bitboard) bool {
	t := b.tables
	bbs := &b.pieceBB[by]

	// Pawn attacks via reverse mask
	if !t.pawnAttacks[by.Other()][sq].And(bbs[PieceTypePawn]).IsZero() {
		return true
	}
	if !t.knightMoves[sq].And(bbs[PieceTypeKnight]).IsZero() {
		return true
	}
	if !t.kingMoves[sq].And(bbs[PieceTypeKing]).IsZero() {
		return true
	}
	if rq := bbs[PieceTypeRook].Or(bbs[PieceTypeQueen]); !rq.IsZero() {
		if !t.rookAttacks(sq, occ).And(rq).IsZero() {
			return true
		}
	}
	if bq := bbs[PieceTypeBishop].Or(bbs[PieceTypeQueen]); !bq.IsZero() {
		if !t.bishopAttacks(sq, occ).And(bq).IsZero() {
			return true
		}
	}
	return false
}

// InCheck reports whether color's king is attacked. A side without a king is never in check.
func (b *Board) InCheck(color Color) bool {
	ksq := b.KingSquare(color)
	if ksq == NoSquare {
		return false
	}
	return b.IsSquareAttacked(ksq, color.Other())
}

// ==========================
// Pseudo-legal generation
// ==========================

// generatePseudoInto appends pseudo-legal moves in a fixed order: pawns, then
// knights through kings by ascending origin and destination, then castling.
func (b *Board) generatePseudoInto(dst []Move, filter int) []Move {
	t := b.tables
	us := b.sideToMove
	own := b.ColorOccupancy(us)
	enemy := b.ColorOccupancy(us.Other())
	occ := own.Or(enemy)

	var targets Bitboard
	switch filter {
	case genCaptures:
		targets = enemy
	case genQuiets:
		targets = t.Squares.AndNot(occ)
	default:
		targets = t.Squares.AndNot(own)
	}

	dst = b.pawnMovesInto(dst, enemy, occ, filter)

	for pt := PieceTypeKnight; pt <= PieceTypeKing; pt++ {
		moved := PieceFromType(us, pt)
		pieces := b.pieceBB[us][pt]
		for !pieces.IsZero() {
			from := popLSB(&pieces)
			var att Bitboard
			switch pt {
			case PieceTypeKnight:
				att = t.knightMoves[from]
			case PieceTypeBishop:
				att = t.bishopAttacks(from, occ)
			case PieceTypeRook:
				att = t.rookAttacks(from, occ)
			case PieceTypeQueen:
				att = t.rookAttacks(from, occ).Or(t.bishopAttacks(from, occ))
			case PieceTypeKing:
				att = t.kingMoves[from]
			}
			att = att.And(targets)
			for !att.IsZero() {
				to := popLSB(&att)
				dst = append(dst, NewMove(from, to, moved, b.pieces[int(to)], NoPiece, FlagNone))
			}
		}
	}

	if filter != genCaptures {
		dst = b.castlingMovesInto(dst, occ)
	}
	return dst
}

// pawnMovesInto appends pushes, double steps, captures, en passant and promotions.
// Promotions count as captures for the capture filter.
func (b *Board) pawnMovesInto(dst []Move, enemy, occ Bitboard, filter int) []Move {
	t := b.tables
	us := b.sideToMove
	push := pawnPush(us)
	pawn := PieceFromType(us, PieceTypePawn)
	promoRank := b.promotionRank(us)
	startRank := b.pawnRank(us)

	pawns := b.pieceBB[us][PieceTypePawn]
	for !pawns.IsZero() {
		from := popLSB(&pawns)

		one := from + push
		if one >= 0 && one < MaxSquares && t.Squares.Has(one) && !occ.Has(one) {
			if one.Rank() == promoRank {
				if filter != genQuiets {
					dst = appendPromotions(dst, from, one, pawn, NoPiece, us)
				}
			} else if filter != genCaptures {
				dst = append(dst, NewMove(from, one, pawn, NoPiece, NoPiece, FlagNone))
				if from.Rank() == startRank {
					if two := one + push; !occ.Has(two) {
						dst = append(dst, NewMove(from, two, pawn, NoPiece, NoPiece, FlagDoubleStep))
					}
				}
			}
		}

		if filter == genQuiets {
			continue
		}
		caps := t.pawnAttacks[us][from].And(enemy)
		for !caps.IsZero() {
			to := popLSB(&caps)
			captured := b.pieces[int(to)]
			if to.Rank() == promoRank {
				dst = appendPromotions(dst, from, to, pawn, captured, us)
			} else {
				dst = append(dst, NewMove(from, to, pawn, captured, NoPiece, FlagNone))
			}
		}
		if ep := b.enPassantSquare; ep != NoSquare && t.pawnAttacks[us][from].Has(ep) {
			dst = append(dst, NewMove(from, ep, pawn, PieceFromType(us.Other(), PieceTypePawn), NoPiece, FlagEnPassant))
		}
	}
	return dst
}

func appendPromotions(dst []Move, from, to Square, pawn, captured Piece, us Color) []Move {
	for _, pt := range promotionOrder {
		dst = append(dst, NewMove(from, to, pawn, captured, PieceFromType(us, pt), FlagNone))
	}
	return dst
}

// castlingMovesInto appends castling moves whose right is held, whose king and
// rook stand on their home squares, whose path is empty and whose king does not
// start on, cross or land on an attacked square.
func (b *Board) castlingMovesInto(dst []Move, occ Bitboard) []Move {
	us := b.sideToMove
	them := us.Other()
	king := b.kingHome(us)
	kingPiece := PieceFromType(us, PieceTypeKing)
	if b.castlingRights == 0 || b.pieces[int(king)] != kingPiece {
		return dst
	}
	for _, kingside := range [2]bool{true, false} {
		if b.castlingRights&castleRight(us, kingside) == 0 {
			continue
		}
		rookSq := b.rookHome(us, kingside)
		if b.pieces[int(rookSq)] != PieceFromType(us, PieceTypeRook) {
			continue
		}
		step := Square(1)
		flag := uint8(FlagCastleKing)
		if !kingside {
			step = -1
			flag = FlagCastleQueen
		}
		clear := true
		for sq := king + step; sq != rookSq; sq += step {
			if occ.Has(sq) {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}
		if b.isSquareAttackedWithOcc(king, them, occ) ||
			b.isSquareAttackedWithOcc(king+step, them, occ) ||
			b.isSquareAttackedWithOcc(king+2*step, them, occ) {
			continue
		}
		dst = append(dst, NewMove(king, king+2*step, kingPiece, NoPiece, NoPiece, flag))
	}
	return dst
}

// ==========================
// Legal generation
// ==========================

// generateMovesFilteredInto generates pseudo-legal moves and keeps those that do
// not leave the mover's king attacked, testing each with make/unmake.
func (b *Board) generateMovesFilteredInto(dst []Move, filter int) []Move {
	us := b.sideToMove
	if b.KingSquare(us) == NoSquare {
		panic(&InvariantViolation{Msg: "move generation: " + us.String() + " has no king"})
	}
	dst = b.generatePseudoInto(dst[:0], filter)
	n := 0
	for _, m := range dst {
		rec := b.MakeMove(m)
		legal := !b.InCheck(us)
		b.UnmakeMove(rec)
		if legal {
			dst[n] = m
			n++
		}
	}
	return dst[:n]
}

// GenerateMoves generates all legal moves for the current side to move.
// It allocates a new slice; prefer GenerateMovesInto to reuse buffers in hot paths.
func (b *Board) GenerateMoves() []Move { return b.GenerateMovesInto(make([]Move, 0, 128)) }

// GenerateMovesInto writes all legal moves for the side to move into dst and returns it.
// The dst slice is truncated (len=0) and reused to avoid allocations when capacity suffices.
func (b *Board) GenerateMovesInto(dst []Move) []Move {
	return b.generateMovesFilteredInto(dst, genAll)
}

// GenerateCapturesInto writes all legal captures, en passant and promotions.
func (b *Board) GenerateCapturesInto(dst []Move) []Move {
	return b.generateMovesFilteredInto(dst, genCaptures)
}

// GenerateQuietsInto writes all legal non-capturing, non-promoting moves, castling included.
func (b *Board) GenerateQuietsInto(dst []Move) []Move {
	return b.generateMovesFilteredInto(dst, genQuiets)
}

// GenerateCaptures returns a newly allocated slice of legal capture moves.
func (b *Board) GenerateCaptures() []Move { return b.GenerateCapturesInto(make([]Move, 0, 64)) }

// GenerateQuiets returns a newly allocated slice of legal non-capturing moves.
func (b *Board) GenerateQuiets() []Move { return b.GenerateQuietsInto(make([]Move, 0, 128)) }

// ==========================
// Perft
// ==========================

// Perft counts leaf nodes (move sequences) from the position for a given depth.
// Per-depth buffers are reused to avoid allocations.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	pc := perftCtx{bufs: make([][]Move, depth+1)}
	return perftRec(b, depth, &pc)
}

type perftCtx struct {
	bufs [][]Move
}

func (pc *perftCtx) bufFor(depth int) []Move {
	if pc.bufs[depth] == nil {
		pc.bufs[depth] = make([]Move, 0, 256)
	}
	return pc.bufs[depth][:0]
}

func perftRec(b *Board, depth int, pc *perftCtx) uint64 {
	moves := b.GenerateMovesInto(pc.bufFor(depth))
	pc.bufs[depth] = moves
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		rec := b.MakeMove(m)
		nodes += perftRec(b, depth-1, pc)
		b.UnmakeMove(rec)
	}
	return nodes
}

// PerftDivide returns a map from each legal root move to the number of leaf nodes
// reachable from that move at the given depth. Useful for debugging.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range b.GenerateMoves() {
		rec := b.MakeMove(m)
		result[m] = Perft(b, depth-1)
		b.UnmakeMove(rec)
	}
	return result
}
