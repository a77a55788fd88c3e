package engine

import "wideboard/widemg"

/*
	HISTORY/COUNTER MOVES
	If a quiet move caused a beta cutoff we keep track of two things:
	the move it answered (the previous move made), giving a counter move,
	and a history score from/to, used to order the remaining quiet moves.
*/

func (s *Searcher) storeCounter(side widemg.Color, prevMove widemg.Move, mv widemg.Move) {
	if prevMove == 0 {
		return
	}
	s.counterMoves[side][prevMove.From()][prevMove.To()] = mv
}

func (s *Searcher) counterMoveFor(side widemg.Color, prevMove widemg.Move) widemg.Move {
	return s.counterMoves[side][prevMove.From()][prevMove.To()]
}

// incrementHistoryScore rewards a quiet move that caused a beta cutoff.
func (s *Searcher) incrementHistoryScore(side widemg.Color, mv widemg.Move, depth int) {
	h := &s.history[side][mv.From()][mv.To()]
	*h += int32(depth * depth)
	for *h >= historyMaxVal {
		s.ageHistoryTable(side)
	}
}

// Age the values in the history table by halving them.
func (s *Searcher) ageHistoryTable(side widemg.Color) {
	for from := range s.history[side] {
		for to := range s.history[side][from] {
			s.history[side][from][to] /= 2
		}
	}
}

// clearOrderingTables resets history and counter moves, allocating them on
// first use.
func (s *Searcher) clearOrderingTables() {
	if s.history == nil {
		s.history = new([2][widemg.MaxSquares][widemg.MaxSquares]int32)
		s.counterMoves = new([2][widemg.MaxSquares][widemg.MaxSquares]widemg.Move)
		return
	}
	*s.history = [2][widemg.MaxSquares][widemg.MaxSquares]int32{}
	*s.counterMoves = [2][widemg.MaxSquares][widemg.MaxSquares]widemg.Move{}
}
