package widemg

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// NewBoard constructs an n x n board. An empty layout yields the standard
// starting position; otherwise layout is canonical text as read by FromString
// and must describe an n x n board.
func NewBoard(n int, layout string) (*Board, error) {
	if n < MinDimension || n > MaxDimension {
		return nil, formatErrorf(0, 0, "dimension %d outside %d..%d", n, MinDimension, MaxDimension)
	}
	if strings.TrimSpace(layout) == "" {
		return StartPosition(n), nil
	}
	b, err := FromString(layout)
	if err != nil {
		return nil, err
	}
	if b.n != n {
		return nil, formatErrorf(0, 0, "layout is %dx%d, want %dx%d", b.n, b.n, n, n)
	}
	return b, nil
}

// BackRank returns the starting piece types on files 0..n-1 of a home rank:
// rook, knight and bishop mirrored on the outer files, queen and king on files
// n/2-1 and n/2, remaining files alternating knight and bishop inward.
func BackRank(n int) []PieceType {
	rank := make([]PieceType, n)
	rank[0], rank[1], rank[2] = PieceTypeRook, PieceTypeKnight, PieceTypeBishop
	rank[n-1], rank[n-2], rank[n-3] = PieceTypeRook, PieceTypeKnight, PieceTypeBishop
	rank[n/2-1], rank[n/2] = PieceTypeQueen, PieceTypeKing
	fill := [2]PieceType{PieceTypeKnight, PieceTypeBishop}
	for i, f := 0, 3; f <= n/2-2; i, f = i+1, f+1 {
		rank[f] = fill[i%2]
	}
	for i, f := 0, n-4; f >= n/2+1; i, f = i+1, f-1 {
		rank[f] = fill[i%2]
	}
	return rank
}

// StartPosition returns the standard starting position for an n x n board.
// It panics if n is outside [MinDimension, MaxDimension].
func StartPosition(n int) *Board {
	b := newEmptyBoard(n)
	for file, pt := range BackRank(n) {
		b.putPiece(SquareOf(file, 0), PieceFromType(White, pt))
		b.putPiece(SquareOf(file, n-1), PieceFromType(Black, pt))
		b.putPiece(SquareOf(file, 1), WhitePawn)
		b.putPiece(SquareOf(file, n-2), BlackPawn)
	}
	b.castlingRights = CastlingAll
	b.zobristKey = b.ComputeZobrist()
	return b
}

// LegalMoves returns the legal moves for the side to move in generation order.
func (b *Board) LegalMoves() []Move { return b.GenerateMoves() }

// ApplyMove plays m if it is legal and returns the record that undoes it. An
// illegal move yields *IllegalMoveError and leaves the board unchanged.
func (b *Board) ApplyMove(m Move) (UndoRecord, error) {
	if !slices.Contains(b.GenerateMoves(), m) {
		return UndoRecord{}, &IllegalMoveError{Move: m, FEN: b.ToFEN()}
	}
	return b.MakeMove(m), nil
}

// UndoMove reverts the move recorded in rec, which must be the most recent
// move still applied.
func (b *Board) UndoMove(rec UndoRecord) { b.UnmakeMove(rec) }

// Apply plays a legal move and returns an undo closure.
func (b *Board) Apply(m Move) func() {
	rec := b.MakeMove(m)
	return func() { b.UnmakeMove(rec) }
}

// IsInCheck reports whether color's king is attacked.
func (b *Board) IsInCheck(c Color) bool { return b.InCheck(c) }

// OurKingInCheck reports whether the side to move has its king in check.
func (b *Board) OurKingInCheck() bool { return b.InCheck(b.sideToMove) }

// IsCheckmate reports whether the side to move is in check with no legal moves.
func (b *Board) IsCheckmate() bool { return b.OurKingInCheck() && !b.HasLegalMoves() }

// IsStalemate reports whether the side to move has no legal moves but is not in check.
func (b *Board) IsStalemate() bool { return !b.OurKingInCheck() && !b.HasLegalMoves() }

// ParseMove resolves long algebraic text (e2e4, e7e8q, a15a16n) against the
// legal moves of the position.
func (b *Board) ParseMove(movestr string) (Move, error) {
	movestr = strings.TrimSpace(strings.ToLower(movestr))
	moves := b.GenerateMoves()
	i := slices.IndexFunc(moves, func(m Move) bool { return m.String() == movestr })
	if i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoSuchMove, movestr)
	}
	return moves[i], nil
}
