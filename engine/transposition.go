package engine

import (
	"unsafe"

	"wideboard/widemg"
)

const clusterSize = 4

// DefaultHashMB is the hash-move table size used when no option overrides it.
var DefaultHashMB = 4

// TransTable remembers the best move found for each position. It only feeds
// move ordering; scores are not stored.
type TransTable struct {
	isInitialized bool
	entries       []TTEntry
	clusterCount  uint64
}

type TTEntry struct {
	Hash  widemg.ZobristKey
	Depth int8
	Move  widemg.Move
}

func (TT *TransTable) init(sizeMB int) {
	entrySize := uint64(unsafe.Sizeof(TTEntry{}))
	totalBytes := uint64(Max(sizeMB, 1)) * 1024 * 1024
	clusterCount := totalBytes / (entrySize * clusterSize)
	if clusterCount == 0 {
		clusterCount = 1
	}
	TT.clusterCount = clusterCount
	TT.entries = make([]TTEntry, TT.clusterCount*clusterSize)
	TT.isInitialized = true
}

func (TT *TransTable) clear() {
	clear(TT.entries)
}

// probeMove returns the stored move for hash, or 0.
func (TT *TransTable) probeMove(hash widemg.ZobristKey) widemg.Move {
	if TT.clusterCount == 0 {
		return 0
	}
	start := int(uint64(hash) % TT.clusterCount * clusterSize)
	for i := 0; i < clusterSize; i++ {
		if e := &TT.entries[start+i]; e.Hash == hash {
			return e.Move
		}
	}
	return 0
}

// storeEntry prefers updating an existing entry, then an empty slot, and
// otherwise replaces the shallowest entry in the cluster.
func (TT *TransTable) storeEntry(hash widemg.ZobristKey, depth int, move widemg.Move) {
	if TT.clusterCount == 0 || move == 0 {
		return
	}
	base := int(uint64(hash) % TT.clusterCount * clusterSize)
	targetIdx := -1

	for i := 0; i < clusterSize; i++ {
		if TT.entries[base+i].Hash == hash {
			targetIdx = base + i
			break
		}
	}
	if targetIdx == -1 {
		for i := 0; i < clusterSize; i++ {
			if TT.entries[base+i].Move == 0 {
				targetIdx = base + i
				break
			}
		}
	}
	if targetIdx == -1 {
		targetIdx = base
		minDepth := TT.entries[base].Depth
		for i := 1; i < clusterSize; i++ {
			if TT.entries[base+i].Depth < minDepth {
				minDepth = TT.entries[base+i].Depth
				targetIdx = base + i
			}
		}
	}

	entry := &TT.entries[targetIdx]
	entry.Hash = hash
	entry.Depth = int8(Clamp(depth, 0, 127))
	entry.Move = move
}
