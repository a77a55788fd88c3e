package engine

import "wideboard/widemg"

type move struct {
	move  widemg.Move
	score uint16
}
type moveList struct {
	moves []move
}

// Most Valuable Victim - Least Valuable Aggressor; used to score & sort captures
var mvvLva [7][7]uint16 = [7][7]uint16{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 14, 13, 12, 11, 10, 0}, // victim Pawn
	{0, 24, 23, 22, 21, 20, 0}, // victim Knight
	{0, 34, 33, 32, 31, 30, 0}, // victim Bishop
	{0, 44, 43, 42, 41, 40, 0}, // victim Rook
	{0, 54, 53, 52, 51, 50, 0}, // victim Queen
	{0, 0, 0, 0, 0, 0, 0},      // victim King
}

// Move ordering offsets. The PV/hash move goes first, then promotions and
// winning or even captures, then killers and the counter move, then quiet
// checks, then losing captures, then quiet moves by history score.
var pvOffset uint16 = 25000
var promotionOffset uint16 = 20000
var captureOffset uint16 = 15000
var killerOffset uint16 = 2000

var counterMoveOffset uint16 = 1500
var checkOffset uint16 = 1200

// badCaptureOffset places captures that lose material by SEE after killers.
var badCaptureOffset uint16 = 1000

// historyMaxVal keeps history scores below badCaptureOffset.
var historyMaxVal int32 = 1000

// Ordering the moves one at a time, at index given
func orderNextMove(currIndex int, moves *moveList) {
	bestIndex := currIndex
	bestScore := moves.moves[bestIndex].score

	for index := bestIndex + 1; index < len(moves.moves); index++ {
		if moves.moves[index].score > bestScore {
			bestIndex = index
			bestScore = moves.moves[index].score
		}
	}

	moves.moves[currIndex], moves.moves[bestIndex] = moves.moves[bestIndex], moves.moves[currIndex]
}

func (s *Searcher) scoreMovesList(board *widemg.Board, moves []widemg.Move, ply int, pvMove widemg.Move, prevMove widemg.Move) (movesList moveList) {
	side := board.SideToMove()
	movesList.moves = make([]move, len(moves))
	for i, mv := range moves {
		var moveEval uint16
		switch {
		case mv == pvMove:
			moveEval = pvOffset
		case mv.IsPromotion():
			moveEval = promotionOffset + uint16(PieceValues[mv.PromotionPieceType()])
		case mv.IsCapture():
			moveEval = mvvLva[mv.CapturedPiece().Type()][mv.MovedPiece().Type()]
			if see(board, mv) >= 0 {
				moveEval += captureOffset
			} else {
				moveEval += badCaptureOffset
			}
		case s.killers.KillerMoves[ply][0] == mv:
			moveEval = killerOffset + 200
		case s.killers.KillerMoves[ply][1] == mv:
			moveEval = killerOffset
		case prevMove != 0 && s.counterMoveFor(side, prevMove) == mv:
			moveEval = counterMoveOffset
		case board.GivesCheck(mv):
			moveEval = checkOffset
		default:
			moveEval = uint16(s.history[side][mv.From()][mv.To()])
		}
		movesList.moves[i] = move{move: mv, score: moveEval}
	}
	return movesList
}

// scoreMovesListCaptures orders quiescence moves: promotions, then MVV-LVA.
func scoreMovesListCaptures(moves []widemg.Move) (movesList moveList) {
	movesList.moves = make([]move, len(moves))
	for i, mv := range moves {
		var eval uint16
		if mv.IsPromotion() {
			eval = captureOffset + uint16(PieceValues[mv.PromotionPieceType()])
		}
		if mv.IsCapture() {
			eval += mvvLva[mv.CapturedPiece().Type()][mv.MovedPiece().Type()]
		}
		movesList.moves[i] = move{move: mv, score: eval}
	}
	return movesList
}
