package widemg

import (
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string and returns a new Board set up to that position.
// The board dimension is the number of ranks; empty runs may use several
// digits ("16"). Castling, en passant and counters are optional.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, formatErrorf(1, 0, "empty FEN")
	}

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	n := len(ranks)
	if n < MinDimension || n > MaxDimension {
		return nil, formatErrorf(1, 0, "FEN has %d ranks, want %d..%d", n, MinDimension, MaxDimension)
	}
	board := newEmptyBoard(n)
	for i, rankText := range ranks {
		rank := n - 1 - i
		file := 0
		run := 0
		flush := func() {
			file += run
			run = 0
		}
		for col, ch := range rankText {
			if ch >= '0' && ch <= '9' {
				run = run*10 + int(ch-'0')
				continue
			}
			flush()
			p := pieceFromChar(ch)
			if p == NoPiece {
				return nil, formatErrorf(1, col+1, "unknown piece %q in rank %d", ch, rank+1)
			}
			if file >= n {
				return nil, formatErrorf(1, col+1, "rank %d overflows %d files", rank+1, n)
			}
			board.putPiece(SquareOf(file, rank), p)
			file++
		}
		flush()
		if file != n {
			return nil, formatErrorf(1, 0, "rank %d has %d squares, want %d", rank+1, file, n)
		}
	}

	// 2-6. Side, castling, en passant, halfmove clock, fullmove number
	if err := board.parseStatus(fields[1:], 1); err != nil {
		return nil, err
	}
	if err := board.checkSetup(); err != nil {
		return nil, err
	}

	// Compute initial Zobrist hash for this position
	board.zobristKey = board.ComputeZobrist()
	return board, nil
}

// ToFEN produces the FEN string representation of the board's current state.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	// 1. Piece placement
	for rank := b.n - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < b.n; file++ {
			p := b.pieces[int(SquareOf(file, rank))]
			if p == NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			sb.WriteRune(charFromPiece(p))
		}
		if emptyCount > 0 {
			sb.WriteString(strconv.Itoa(emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	// 2-6.
	b.writeStatus(&sb)
	return sb.String()
}
