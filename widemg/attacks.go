package widemg

import (
	"fmt"
	"sync"
)

// Board dimension limits.
const (
	MinDimension = 8
	MaxDimension = 16
)

// AttackTables holds the precomputed, read-only masks for one board dimension.
// Tables are built once per dimension and shared by every Board of that size.
type AttackTables struct {
	n int

	// Squares marks the active n x n region.
	Squares Bitboard

	knightMoves [MaxSquares]Bitboard
	kingMoves   [MaxSquares]Bitboard
	// pawnAttacks[color][sq] gives the squares a pawn of color attacks from sq.
	pawnAttacks [2][MaxSquares]Bitboard

	// Rook directions: 0=N, 1=S, 2=E, 3=W
	rookRays [MaxSquares][4]Bitboard
	// Bishop directions: 0=NE, 1=NW, 2=SE, 3=SW
	bishopRays [MaxSquares][4]Bitboard

	fileMasks [MaxDimension]Bitboard
	rankMasks [MaxDimension]Bitboard
}

var tableCache [MaxDimension + 1]struct {
	once   sync.Once
	tables *AttackTables
}

// TablesFor returns the shared attack tables for an n x n board.
// It panics if n is outside [MinDimension, MaxDimension].
func TablesFor(n int) *AttackTables {
	if n < MinDimension || n > MaxDimension {
		panic(&InvariantViolation{Msg: fmt.Sprintf("board dimension %d outside [%d,%d]", n, MinDimension, MaxDimension)})
	}
	c := &tableCache[n]
	c.once.Do(func() { c.tables = newAttackTables(n) })
	return c.tables
}

func newAttackTables(n int) *AttackTables {
	t := &AttackTables{n: n}
	for rank := 0; rank < n; rank++ {
		for file := 0; file < n; file++ {
			sq := SquareOf(file, rank)
			t.Squares = t.Squares.With(sq)
			t.fileMasks[file] = t.fileMasks[file].With(sq)
			t.rankMasks[rank] = t.rankMasks[rank].With(sq)
		}
	}
	t.initStepping()
	t.initRays()
	return t
}

// onBoard reports whether (file, rank) lies inside the active region.
func (t *AttackTables) onBoard(file, rank int) bool {
	return file >= 0 && file < t.n && rank >= 0 && rank < t.n
}

// initStepping precomputes knight, king and pawn capture masks.
func (t *AttackTables) initStepping() {
	knightOffsets := [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	kingOffsets := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	for rank := 0; rank < t.n; rank++ {
		for file := 0; file < t.n; file++ {
			sq := SquareOf(file, rank)
			for _, off := range knightOffsets {
				if t.onBoard(file+off[1], rank+off[0]) {
					t.knightMoves[sq] = t.knightMoves[sq].With(SquareOf(file+off[1], rank+off[0]))
				}
			}
			for _, off := range kingOffsets {
				if t.onBoard(file+off[1], rank+off[0]) {
					t.kingMoves[sq] = t.kingMoves[sq].With(SquareOf(file+off[1], rank+off[0]))
				}
			}
			// White pawns move toward higher ranks, Black toward lower ones.
			for _, df := range [2]int{-1, 1} {
				if t.onBoard(file+df, rank+1) {
					t.pawnAttacks[White][sq] = t.pawnAttacks[White][sq].With(SquareOf(file+df, rank+1))
				}
				if t.onBoard(file+df, rank-1) {
					t.pawnAttacks[Black][sq] = t.pawnAttacks[Black][sq].With(SquareOf(file+df, rank-1))
				}
			}
		}
	}
}

// initRays precomputes directional rays for rook and bishop moves, origin excluded.
func (t *AttackTables) initRays() {
	rookDirs := [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	bishopDirs := [4][2]int{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	for rank := 0; rank < t.n; rank++ {
		for file := 0; file < t.n; file++ {
			sq := SquareOf(file, rank)
			for d := 0; d < 4; d++ {
				t.rookRays[sq][d] = t.ray(file, rank, rookDirs[d])
				t.bishopRays[sq][d] = t.ray(file, rank, bishopDirs[d])
			}
		}
	}
}

func (t *AttackTables) ray(file, rank int, dir [2]int) Bitboard {
	var r Bitboard
	for f, rk := file+dir[0], rank+dir[1]; t.onBoard(f, rk); f, rk = f+dir[0], rk+dir[1] {
		r = r.With(SquareOf(f, rk))
	}
	return r
}

// Dimension returns the board size these tables were built for.
func (t *AttackTables) Dimension() int { return t.n }

// FileMask returns the active squares of a file.
func (t *AttackTables) FileMask(file int) Bitboard { return t.fileMasks[file] }

// RankMask returns the active squares of a rank.
func (t *AttackTables) RankMask(rank int) Bitboard { return t.rankMasks[rank] }

// ==========================
// Sliding attacks
// ==========================

// rookAttacks returns rook attacks from sq given the occupancy. The first
// blocker on each ray is included.
func (t *AttackTables) rookAttacks(sq Square, occ Bitboard) Bitboard {
	var attacks Bitboard
	for d := 0; d < 4; d++ {
		ray := t.rookRays[sq][d]
		blockers := ray.And(occ)
		if !blockers.IsZero() {
			var first Square
			if d == 0 || d == 2 { // N, E (increasing)
				first = blockers.LSB()
			} else {
				first = blockers.MSB()
			}
			ray = ray.AndNot(t.rookRays[first][d])
		}
		attacks = attacks.Or(ray)
	}
	return attacks
}

// bishopAttacks returns bishop attacks from sq given the occupancy.
func (t *AttackTables) bishopAttacks(sq Square, occ Bitboard) Bitboard {
	var attacks Bitboard
	for d := 0; d < 4; d++ {
		ray := t.bishopRays[sq][d]
		blockers := ray.And(occ)
		if !blockers.IsZero() {
			var first Square
			if d == 0 || d == 1 { // NE, NW (increasing)
				first = blockers.LSB()
			} else {
				first = blockers.MSB()
			}
			ray = ray.AndNot(t.bishopRays[first][d])
		}
		attacks = attacks.Or(ray)
	}
	return attacks
}

// AttacksFor returns the squares a piece of the given type and color reaches
// from sq under occupancy occ. Pawns report capture targets only. Friendly
// pieces are not excluded.
func (t *AttackTables) AttacksFor(pt PieceType, c Color, sq Square, occ Bitboard) Bitboard {
	if !t.Squares.Has(sq) {
		panic(&InvariantViolation{Msg: fmt.Sprintf("square %d outside %dx%d board", sq, t.n, t.n)})
	}
	if pt.Sliding() {
		var attacks Bitboard
		if pt != PieceTypeBishop {
			attacks = t.rookAttacks(sq, occ)
		}
		if pt != PieceTypeRook {
			attacks = attacks.Or(t.bishopAttacks(sq, occ))
		}
		return attacks
	}
	switch pt {
	case PieceTypePawn:
		return t.pawnAttacks[c][sq]
	case PieceTypeKnight:
		return t.knightMoves[sq]
	case PieceTypeKing:
		return t.kingMoves[sq]
	}
	panic(&InvariantViolation{Msg: fmt.Sprintf("unknown piece type %d", pt)})
}
