package engine

import "wideboard/widemg"

// KillerStruct keeps two quiet moves per ply that caused a beta cutoff.
type KillerStruct struct {
	KillerMoves [MaxDepth + 1][2]widemg.Move
}

func (k *KillerStruct) InsertKiller(move widemg.Move, ply int) {
	if move != k.KillerMoves[ply][0] {
		k.KillerMoves[ply][1] = k.KillerMoves[ply][0]
		k.KillerMoves[ply][0] = move
	}
}

// IsKiller reports whether move is a killer at ply.
func (k *KillerStruct) IsKiller(move widemg.Move, ply int) bool {
	return move == k.KillerMoves[ply][0] || move == k.KillerMoves[ply][1]
}

// Clear the killer moves table.
func (k *KillerStruct) ClearKillers() {
	*k = KillerStruct{}
}
