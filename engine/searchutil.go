package engine

import (
	"fmt"
	"strings"

	"wideboard/widemg"
)

// PVLine holds the principal variation found below a node.
type PVLine struct {
	Moves []widemg.Move
}

// Update sets the line to move followed by the child's line.
func (pv *PVLine) Update(move widemg.Move, child PVLine) {
	pv.Moves = append(pv.Moves[:0], move)
	pv.Moves = append(pv.Moves, child.Moves...)
}

func (pv *PVLine) Clear() { pv.Moves = pv.Moves[:0] }

func (pv PVLine) Clone() PVLine {
	return PVLine{Moves: append([]widemg.Move(nil), pv.Moves...)}
}

// GetPVMove returns the first move of the line, or 0 when empty.
func (pv PVLine) GetPVMove() widemg.Move {
	if len(pv.Moves) == 0 {
		return 0
	}
	return pv.Moves[0]
}

func getPVLineString(pvLine PVLine) string {
	var sb strings.Builder
	for i, move := range pvLine.Moves {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(move.String())
	}
	return sb.String()
}

// SearchResult is the outcome of a fixed-depth search. Move is 0 when the
// root has no legal moves; Score is then the mate or stalemate score.
type SearchResult struct {
	Move  widemg.Move
	Score int32
	// Depth is the last iteration completed; a forced mate can end the search early.
	Depth int
	Nodes uint64
	PV    []widemg.Move
	Stats CutStatistics
}

// ScoreString renders the score as "cp N" or "mate N".
func (r SearchResult) ScoreString() string { return getMateOrCPScore(int(r.Score)) }

func (r SearchResult) String() string {
	return fmt.Sprintf("bestmove %v score %s depth %d nodes %d", r.Move, r.ScoreString(), r.Depth, r.Nodes)
}

// getMateOrCPScore converts a score to "mate N" (moves, negative when being
// mated) or "cp N".
func getMateOrCPScore(score int) string {
	mateValue := int(MaxScore)
	mateThreshold := int(Checkmate)

	if score >= mateThreshold {
		pliesToMate := Max(mateValue-score, 0)
		return fmt.Sprintf("mate %d", (pliesToMate+1)/2)
	} else if score <= -mateThreshold {
		pliesToMate := Max(mateValue+score, 0)
		return fmt.Sprintf("mate %d", -(pliesToMate+1)/2)
	}

	return fmt.Sprintf("cp %d", score)
}
