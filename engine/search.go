package engine

import (
	"fmt"
	"io"
	"sync"
	"time"

	"wideboard/widemg"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	MaxScore  int32 = 32500
	Checkmate int32 = 20000
	DrawScore int32 = 0
)

// MaxDepth bounds the search ply, quiescence included.
const MaxDepth = 100

// QuiescenceDepth bounds the capture search below the horizon.
var QuiescenceDepth = 16

// Option configures a Searcher.
type Option func(*Searcher)

// WithInfo writes one "info depth ..." line per completed iteration to w.
func WithInfo(w io.Writer) Option { return func(s *Searcher) { s.info = w } }

// WithQuiescence enables or disables the capture search at the horizon.
// Disabled, leaves are scored by Evaluate (terminal positions excepted).
func WithQuiescence(enabled bool) Option { return func(s *Searcher) { s.quiescence = enabled } }

// WithHashSize sets the hash-move table size in megabytes.
func WithHashSize(mb int) Option { return func(s *Searcher) { s.hashMB = mb } }

// WithCutStats dumps the cut statistics to the info writer after each search.
func WithCutStats(enabled bool) Option { return func(s *Searcher) { s.printStats = enabled } }

// Searcher runs depth-bounded negamax alpha-beta searches. All heuristic
// tables are reset at the start of every search, so repeated searches of the
// same position return the same result. A Searcher is not safe for
// concurrent use; separate Searchers may run in parallel.
type Searcher struct {
	info       io.Writer
	quiescence bool
	hashMB     int
	printStats bool

	tt           TransTable
	killers      KillerStruct
	history      *[2][widemg.MaxSquares][widemg.MaxSquares]int32
	counterMoves *[2][widemg.MaxSquares][widemg.MaxSquares]widemg.Move
	stateStack   []State
	gameHistory  []widemg.ZobristKey
	scratch      []widemg.Move
	nodes        uint64
	stats        CutStatistics
}

// NewSearcher returns a Searcher with quiescence enabled and no info output.
// The hash and ordering tables are allocated by the first search.
func NewSearcher(opts ...Option) *Searcher {
	s := &Searcher{
		quiescence: true,
		hashMB:     DefaultHashMB,
		scratch:    make([]widemg.Move, 0, 256),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultSearchers = sync.Pool{New: func() any { return NewSearcher() }}

// BestMove searches b to the given depth with a default Searcher. Searchers
// are pooled between calls; every search starts from cleared tables.
func BestMove(b *widemg.Board, depth int) SearchResult {
	s := defaultSearchers.Get().(*Searcher)
	defer defaultSearchers.Put(s)
	s.SetGameHistory(nil)
	return s.BestMove(b, depth)
}

// SetGameHistory records the hashes of the positions played so far, oldest
// first, so that repetitions of earlier game positions score as draws.
func (s *Searcher) SetGameHistory(keys []widemg.ZobristKey) {
	s.gameHistory = append(s.gameHistory[:0], keys...)
}

// BestMove searches a copy of b; the caller's board is never modified.
// Depth is clamped to [1, MaxDepth-1].
func (s *Searcher) BestMove(b *widemg.Board, depth int) SearchResult {
	depth = Clamp(depth, 1, MaxDepth-1)
	board := b.Clone()
	s.newSearch(board)
	return s.rootsearch(board, depth)
}

func (s *Searcher) newSearch(b *widemg.Board) {
	if !s.tt.isInitialized {
		s.tt.init(s.hashMB)
	} else {
		s.tt.clear()
	}
	s.killers.ClearKillers()
	s.clearOrderingTables()
	s.nodes = 0
	s.stats = CutStatistics{}
	s.resetStateTracking(b)
}

// rootsearch runs iterative deepening from depth 1. Earlier iterations only
// seed move ordering through the hash-move table.
func (s *Searcher) rootsearch(b *widemg.Board, depth int) SearchResult {
	rootIndex := len(s.stateStack) - 1
	var result SearchResult
	var pvLine PVLine
	var prevPVLine PVLine
	start := time.Now()

	for i := 1; i <= depth; i++ {
		pvLine.Clear()
		score := s.alphabeta(b, -MaxScore, MaxScore, i, 0, &pvLine, rootIndex, 0)

		result.Score = score
		result.Depth = i
		prevPVLine = pvLine.Clone()

		if s.info != nil {
			timeSpent := time.Since(start).Milliseconds()
			nps := s.nodes * 1000 / uint64(Max(timeSpent, 1))
			fmt.Fprintln(s.info,
				"info depth", i,
				"score", getMateOrCPScore(int(score)),
				"nodes", s.nodes,
				"time", timeSpent,
				"nps", nps,
				"pv", getPVLineString(pvLine),
			)
		}

		// No legal moves at the root, or a forced mate either way.
		if len(pvLine.Moves) == 0 || abs(score) > Checkmate {
			break
		}
	}

	result.Move = prevPVLine.GetPVMove()
	result.PV = prevPVLine.Moves
	result.Nodes = s.nodes
	result.Stats = s.stats
	if s.printStats && s.info != nil {
		dumpCutStats(s.info, s.stats)
	}
	return result
}

func (s *Searcher) alphabeta(b *widemg.Board, alpha int32, beta int32, depth int, ply int, pvLine *PVLine, rootIndex int, prevMove widemg.Move) int32 {
	s.nodes++

	if ply > 0 && s.isDraw(b, rootIndex) {
		return DrawScore
	}
	if ply >= MaxDepth {
		return Evaluate(b)
	}
	if depth <= 0 {
		if s.quiescence {
			return s.quiescenceSearch(b, alpha, beta, pvLine, QuiescenceDepth, ply)
		}
		return s.leafScore(b, ply)
	}

	inCheck := b.OurKingInCheck()
	posHash := b.Hash()
	ttMove := s.tt.probeMove(posHash)

	s.scratch = b.GenerateMovesInto(s.scratch)
	if len(s.scratch) == 0 {
		if inCheck {
			return -MaxScore + int32(ply) // Checkmate
		}
		return DrawScore // Stalemate
	}
	moveList := s.scoreMovesList(b, s.scratch, ply, ttMove, prevMove)
	if ttMove != 0 {
		s.stats.HashMoveFirst++
	}

	side := b.SideToMove()
	bestScore := -MaxScore
	var bestMove widemg.Move
	var childPVLine PVLine

	for index := range moveList.moves {
		orderNextMove(index, &moveList)
		move := moveList.moves[index].move

		childPVLine.Clear()
		unapplyFunc := s.applyMoveWithState(b, move)
		score := -s.alphabeta(b, -beta, -alpha, depth-1, ply+1, &childPVLine, rootIndex, move)
		unapplyFunc()

		if score > bestScore {
			bestScore = score
			bestMove = move
		}

		// Beta cutoff
		if score >= beta {
			s.stats.BetaCutoffs++
			if !move.IsCapture() && !move.IsPromotion() {
				if s.killers.IsKiller(move, ply) {
					s.stats.KillerCutoffs++
				}
				s.killers.InsertKiller(move, ply)
				s.incrementHistoryScore(side, move, depth)
				s.storeCounter(side, prevMove, move)
			}
			break
		}

		// Alpha improvement
		if score > alpha {
			alpha = score
			pvLine.Update(move, childPVLine)
		}
	}

	s.tt.storeEntry(posHash, depth, bestMove)
	return bestScore
}

// leafScore is the horizon score without quiescence: terminal positions score
// as mate or stalemate, anything else by Evaluate.
func (s *Searcher) leafScore(b *widemg.Board, ply int) int32 {
	if !b.HasLegalMoves() {
		if b.OurKingInCheck() {
			return -MaxScore + int32(ply)
		}
		return DrawScore
	}
	return Evaluate(b)
}

// quiescenceSearch extends the horizon through captures and promotions. In
// check it searches every evasion and detects mate.
func (s *Searcher) quiescenceSearch(b *widemg.Board, alpha int32, beta int32, pvLine *PVLine, depth int, ply int) int32 {
	s.nodes++

	inCheck := b.OurKingInCheck()
	if inCheck {
		s.scratch = b.GenerateMovesInto(s.scratch)
		if len(s.scratch) == 0 {
			return -MaxScore + int32(ply)
		}
	} else {
		s.scratch = b.GenerateCapturesInto(s.scratch)
	}

	standpat := Evaluate(b)
	if depth <= 0 || ply >= MaxDepth {
		return standpat
	}

	// Stand-pat pruning (not when in check)
	if !inCheck {
		if standpat >= beta {
			s.stats.QStandPatCutoffs++
			return standpat
		}
		if standpat > alpha {
			alpha = standpat
		}
	}

	bestScore := standpat
	if inCheck {
		bestScore = -MaxScore // Must escape check
	}

	moveList := scoreMovesListCaptures(s.scratch)
	var childPVLine PVLine

	for index := range moveList.moves {
		orderNextMove(index, &moveList)
		move := moveList.moves[index].move

		childPVLine.Clear()
		unapplyFunc := s.applyMoveWithState(b, move)
		score := -s.quiescenceSearch(b, -beta, -alpha, &childPVLine, depth-1, ply+1)
		unapplyFunc()

		if score > bestScore {
			bestScore = score
		}
		if score >= beta {
			s.stats.QBetaCutoffs++
			return score
		}
		if score > alpha {
			alpha = score
			pvLine.Update(move, childPVLine)
		}
	}

	return bestScore
}

func (s *Searcher) applyMoveWithState(b *widemg.Board, move widemg.Move) func() {
	unapply := b.Apply(move)
	s.pushState(b)
	return func() {
		unapply()
		s.popState()
	}
}
