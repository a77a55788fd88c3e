package widemg

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// pieceFromChar converts a FEN character (uppercase White) to a Piece.
func pieceFromChar(ch rune) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// charFromPiece converts a Piece to its FEN character (uppercase White).
func charFromPiece(p Piece) rune {
	switch p {
	case WhitePawn:
		return 'P'
	case WhiteKnight:
		return 'N'
	case WhiteBishop:
		return 'B'
	case WhiteRook:
		return 'R'
	case WhiteQueen:
		return 'Q'
	case WhiteKing:
		return 'K'
	case BlackPawn:
		return 'p'
	case BlackKnight:
		return 'n'
	case BlackBishop:
		return 'b'
	case BlackRook:
		return 'r'
	case BlackQueen:
		return 'q'
	case BlackKing:
		return 'k'
	default:
		return '?'
	}
}

// The grid text uses the opposite case convention to FEN: lowercase is White.
func gridChar(p Piece) rune {
	if p == NoPiece {
		return '0'
	}
	return swapCase(charFromPiece(p))
}

func pieceFromGridChar(ch rune) Piece { return pieceFromChar(swapCase(ch)) }

func swapCase(ch rune) rune {
	if unicode.IsUpper(ch) {
		return unicode.ToLower(ch)
	}
	return unicode.ToUpper(ch)
}

// ==========================
// Canonical grid text
// ==========================

// ToString renders the board as N rows of N characters, top rank first,
// followed by a status line "<side> <castling> <ep> <halfmove> <fullmove>".
// '0' marks an empty square, lowercase letters are White and uppercase Black.
func (b *Board) ToString() string {
	var sb strings.Builder
	for rank := b.n - 1; rank >= 0; rank-- {
		for file := 0; file < b.n; file++ {
			sb.WriteRune(gridChar(b.pieces[int(SquareOf(file, rank))]))
		}
		sb.WriteByte('\n')
	}
	b.writeStatus(&sb)
	sb.WriteByte('\n')
	return sb.String()
}

// FromString parses text produced by ToString. The status line is optional;
// without it White is to move with no castling rights, no en passant target
// and counters 0 and 1. Any structural problem yields a *FormatError.
func FromString(text string) (*Board, error) {
	type row struct {
		line int
		text string
	}
	var rows []row
	var status *row
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if status != nil {
			return nil, formatErrorf(i+1, 0, "unexpected text after status line")
		}
		if strings.ContainsAny(line, " \t") {
			status = &row{line: i + 1, text: line}
			continue
		}
		rows = append(rows, row{line: i + 1, text: line})
	}
	// A trailing single character or non-grid token narrower than the grid
	// is a status line without its optional fields.
	if k := len(rows) - 1; status == nil && k > 0 {
		last := rows[k].text
		if len(last) != len(rows[0].text) && (len(last) == 1 || !isGridRow(last)) {
			status = &rows[k]
			rows = rows[:k]
		}
	}

	n := len(rows)
	if n < MinDimension || n > MaxDimension {
		return nil, formatErrorf(0, 0, "board has %d rows, want %d..%d", n, MinDimension, MaxDimension)
	}
	b := newEmptyBoard(n)
	for i, r := range rows {
		rank := n - 1 - i
		cells := []rune(r.text)
		if len(cells) != n {
			return nil, formatErrorf(r.line, 0, "row has %d squares, want %d", len(cells), n)
		}
		for file, ch := range cells {
			if ch == '0' {
				continue
			}
			p := pieceFromGridChar(ch)
			if p == NoPiece {
				return nil, formatErrorf(r.line, file+1, "unknown piece %q", ch)
			}
			b.putPiece(SquareOf(file, rank), p)
		}
	}

	if status != nil {
		if err := b.parseStatus(strings.Fields(status.text), status.line); err != nil {
			return nil, err
		}
	}
	if err := b.checkSetup(); err != nil {
		return nil, err
	}
	b.zobristKey = b.ComputeZobrist()
	return b, nil
}

func isGridRow(text string) bool {
	for _, ch := range text {
		if ch != '0' && pieceFromGridChar(ch) == NoPiece {
			return false
		}
	}
	return true
}

// ==========================
// Status fields shared with FEN
// ==========================

func (b *Board) writeStatus(sb *strings.Builder) {
	// Side to move
	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	// Castling rights
	if b.castlingRights == 0 {
		sb.WriteByte('-')
	} else {
		if b.castlingRights&CastlingWhiteK != 0 {
			sb.WriteByte('K')
		}
		if b.castlingRights&CastlingWhiteQ != 0 {
			sb.WriteByte('Q')
		}
		if b.castlingRights&CastlingBlackK != 0 {
			sb.WriteByte('k')
		}
		if b.castlingRights&CastlingBlackQ != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	// En passant square
	sb.WriteString(b.enPassantSquare.String())
	sb.WriteByte(' ')

	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmoveNumber))
}

// parseStatus reads side, castling, en passant and the two counters. Missing
// trailing fields keep their defaults.
func (b *Board) parseStatus(fields []string, line int) error {
	if len(fields) > 5 {
		return formatErrorf(line, 0, "status has %d fields, want at most 5", len(fields))
	}
	if len(fields) > 0 {
		switch fields[0] {
		case "w":
			b.sideToMove = White
		case "b":
			b.sideToMove = Black
		default:
			return formatErrorf(line, 0, "side to move %q", fields[0])
		}
	}
	if len(fields) > 1 && fields[1] != "-" {
		for _, ch := range fields[1] {
			var r CastlingRights
			switch ch {
			case 'K':
				r = CastlingWhiteK
			case 'Q':
				r = CastlingWhiteQ
			case 'k':
				r = CastlingBlackK
			case 'q':
				r = CastlingBlackQ
			default:
				return formatErrorf(line, 0, "castling rights %q", fields[1])
			}
			if b.castlingRights&r != 0 {
				return formatErrorf(line, 0, "castling rights %q repeat a flag", fields[1])
			}
			b.castlingRights |= r
		}
	}
	if len(fields) > 2 && fields[2] != "-" {
		sq, err := ParseSquare(fields[2], b.n)
		if err != nil {
			return formatErrorf(line, 0, "en passant square: %v", err)
		}
		b.enPassantSquare = sq
	}
	if len(fields) > 3 {
		v, err := strconv.Atoi(fields[3])
		if err != nil || v < 0 {
			return formatErrorf(line, 0, "halfmove clock %q", fields[3])
		}
		b.halfmoveClock = v
	}
	if len(fields) > 4 {
		v, err := strconv.Atoi(fields[4])
		if err != nil || v < 1 {
			return formatErrorf(line, 0, "fullmove number %q", fields[4])
		}
		b.fullmoveNumber = v
	}
	return nil
}

// ParseSquare parses an algebraic square such as "e4" or "p16" on an n x n board.
func ParseSquare(s string, n int) (Square, error) {
	if len(s) < 2 || len(s) > 3 {
		return NoSquare, fmt.Errorf("square %q", s)
	}
	file := int(s[0]) - 'a'
	rank, err := strconv.Atoi(s[1:])
	if err != nil || file < 0 || file >= n || rank < 1 || rank > n {
		return NoSquare, fmt.Errorf("square %q outside %dx%d board", s, n, n)
	}
	return SquareOf(file, rank-1), nil
}

// checkSetup rejects placements no legal game can reach: king counts other than
// one per side, pawns on a back rank, castling rights without the king and rook
// at home, an impossible en passant target, or the side not to move in check.
func (b *Board) checkSetup() *FormatError {
	for c := White; c <= Black; c++ {
		if k := b.pieceBB[c][PieceTypeKing].Count(); k != 1 {
			return formatErrorf(0, 0, "%v has %d kings, want 1", c, k)
		}
	}
	backRanks := b.tables.RankMask(0).Or(b.tables.RankMask(b.n - 1))
	pawns := b.pieceBB[White][PieceTypePawn].Or(b.pieceBB[Black][PieceTypePawn])
	if sq := pawns.And(backRanks).LSB(); sq != NoSquare {
		return formatErrorf(0, 0, "pawn on back rank square %v", sq)
	}
	for c := White; c <= Black; c++ {
		for _, kingside := range [2]bool{true, false} {
			if b.castlingRights&castleRight(c, kingside) == 0 {
				continue
			}
			if b.pieces[int(b.kingHome(c))] != PieceFromType(c, PieceTypeKing) ||
				b.pieces[int(b.rookHome(c, kingside))] != PieceFromType(c, PieceTypeRook) {
				return formatErrorf(0, 0, "castling right for %v without king and rook on home squares", c)
			}
		}
	}
	if ep := b.enPassantSquare; ep != NoSquare {
		us := b.sideToMove
		// The target sits behind a pawn of the side that just moved.
		wantRank := b.pawnRank(us.Other()) + int(pawnPush(us.Other())/Stride)
		passed := ep - pawnPush(us)
		if ep.Rank() != wantRank || b.pieces[int(ep)] != NoPiece ||
			b.pieces[int(passed)] != PieceFromType(us.Other(), PieceTypePawn) {
			return formatErrorf(0, 0, "en passant square %v does not follow a double pawn step", ep)
		}
	}
	if b.InCheck(b.sideToMove.Other()) {
		return formatErrorf(0, 0, "%v is in check but not to move", b.sideToMove.Other())
	}
	return nil
}

// Display renders a human-readable diagram: a header of file letters, then one
// line per rank with its number, '-' for empty squares and FEN piece letters.
func (b *Board) Display() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for file := 0; file < b.n; file++ {
		sb.WriteByte(byte('A' + file))
	}
	for rank := b.n - 1; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "\n%2d ", rank+1)
		for file := 0; file < b.n; file++ {
			p := b.pieces[int(SquareOf(file, rank))]
			if p == NoPiece {
				sb.WriteByte('-')
			} else {
				sb.WriteRune(charFromPiece(p))
			}
		}
	}
	return sb.String()
}
