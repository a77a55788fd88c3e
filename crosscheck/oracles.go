// Package crosscheck compares the wide-board move generator against
// independent 8x8 move generators on orthodox positions.
package crosscheck

import (
	"fmt"

	"github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"
)

// Oracle is an independent 8x8 legal move generator. Moves are reported in
// long algebraic notation ("e2e4", "e7e8q"); castling as the king's move.
type Oracle interface {
	Name() string
	LegalMoves(fen string) ([]string, error)
	Perft(fen string, depth int) (uint64, error)
}

// Oracles returns every available oracle.
func Oracles() []Oracle {
	return []Oracle{Dragontooth{}, Goose{}, Notnil{}}
}

// Dragontooth wraps github.com/dylhunn/dragontoothmg.
type Dragontooth struct{}

func (Dragontooth) Name() string { return "dragontoothmg" }

func (Dragontooth) LegalMoves(fen string) ([]string, error) {
	board := dragontoothmg.ParseFen(fen)
	moves := board.GenerateLegalMoves()
	out := make([]string, 0, len(moves))
	for i := range moves {
		out = append(out, moves[i].String())
	}
	return out, nil
}

func (Dragontooth) Perft(fen string, depth int) (uint64, error) {
	board := dragontoothmg.ParseFen(fen)
	return dragonPerft(&board, depth), nil
}

func dragonPerft(b *dragontoothmg.Board, depth int) uint64 {
	moves := b.GenerateLegalMoves()
	if depth <= 1 {
		if depth <= 0 {
			return 1
		}
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dragonPerft(b, depth-1)
		unapply()
	}
	return nodes
}

// Goose wraps the goosemg generator.
type Goose struct{}

func (Goose) Name() string { return "goosemg" }

func (Goose) LegalMoves(fen string) ([]string, error) {
	board, err := goosemg.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("goosemg: %w", err)
	}
	moves := board.GenerateMoves()
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	return out, nil
}

func (Goose) Perft(fen string, depth int) (uint64, error) {
	board, err := goosemg.ParseFEN(fen)
	if err != nil {
		return 0, fmt.Errorf("goosemg: %w", err)
	}
	return goosemg.Perft(board, depth), nil
}

// Notnil wraps github.com/notnil/chess.
type Notnil struct{}

func (Notnil) Name() string { return "notnil/chess" }

func (Notnil) LegalMoves(fen string) ([]string, error) {
	pos, err := notnilPosition(fen)
	if err != nil {
		return nil, err
	}
	moves := pos.ValidMoves()
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, chess.UCINotation{}.Encode(pos, m))
	}
	return out, nil
}

func (Notnil) Perft(fen string, depth int) (uint64, error) {
	pos, err := notnilPosition(fen)
	if err != nil {
		return 0, err
	}
	return notnilPerft(pos, depth), nil
}

func notnilPosition(fen string) (*chess.Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("notnil/chess: %w", err)
	}
	return chess.NewGame(opt).Position(), nil
}

func notnilPerft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := pos.ValidMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += notnilPerft(pos.Update(m), depth-1)
	}
	return nodes
}
