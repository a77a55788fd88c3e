package engine

import "wideboard/widemg"

const fiftyMoveLimit = 100

// State captures the information we need to reason about repetitions and draws.
type State struct {
	Hash   widemg.ZobristKey
	Rule50 int
}

// resetStateTracking rebuilds the state stack from the game history followed
// by the current board. A trailing history entry equal to the board is dropped.
func (s *Searcher) resetStateTracking(board *widemg.Board) {
	s.stateStack = s.stateStack[:0]
	history := s.gameHistory
	if n := len(history); n > 0 && history[n-1] == board.Hash() {
		history = history[:n-1]
	}
	for _, h := range history {
		s.stateStack = append(s.stateStack, State{Hash: h})
	}
	s.pushState(board)
}

func (s *Searcher) pushState(board *widemg.Board) {
	s.stateStack = append(s.stateStack, State{
		Hash:   board.Hash(),
		Rule50: board.HalfmoveClock(),
	})
}

func (s *Searcher) popState() {
	if len(s.stateStack) == 0 {
		return
	}
	s.stateStack = s.stateStack[:len(s.stateStack)-1]
}

// isDraw reports a fifty-move draw, a threefold repetition across game and
// search, or a twofold repetition whose earlier occurrence lies inside the search.
// A checkmate delivered on the hundredth half-move is not a draw.
func (s *Searcher) isDraw(board *widemg.Board, rootIndex int) bool {
	if len(s.stateStack) == 0 {
		return false
	}
	curr := s.stateStack[len(s.stateStack)-1]
	if curr.Rule50 >= fiftyMoveLimit && !board.IsCheckmate() {
		s.stats.FiftyMoveDraws++
		return true
	}

	matchCount, firstIdx := s.repetitionInfo(curr.Hash, curr.Rule50)
	if matchCount >= 2 || (matchCount >= 1 && firstIdx >= rootIndex) {
		s.stats.RepetitionDraws++
		return true
	}
	return false
}

// repetitionInfo scans the positions since the last irreversible move.
func (s *Searcher) repetitionInfo(hash widemg.ZobristKey, rule50 int) (count int, firstIdx int) {
	firstIdx = -1
	if len(s.stateStack) <= 1 {
		return 0, firstIdx
	}
	start := Max(len(s.stateStack)-1-rule50, 0)
	end := len(s.stateStack) - 2
	for i := start; i <= end; i++ {
		if s.stateStack[i].Hash == hash {
			count++
			if firstIdx == -1 {
				firstIdx = i
			}
		}
	}
	return count, firstIdx
}
