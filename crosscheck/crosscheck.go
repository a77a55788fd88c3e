package crosscheck

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"

	"wideboard/widemg"
)

// ErrNotOrthodox is returned for boards other than 8x8.
var ErrNotOrthodox = errors.New("crosscheck: oracles only support 8x8 boards")

// Mismatch describes a disagreement between widemg and one oracle.
type Mismatch struct {
	Oracle  string
	FEN     string
	Missing []string // generated by the oracle only
	Extra   []string // generated by widemg only
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s @ %s: missing [%s] extra [%s]",
		m.Oracle, m.FEN, strings.Join(m.Missing, " "), strings.Join(m.Extra, " "))
}

func moveSet(moves []string) map[string]struct{} {
	set := make(map[string]struct{}, len(moves))
	for _, m := range moves {
		set[m] = struct{}{}
	}
	return set
}

// difference returns the sorted keys of a that are not in b.
func difference(a, b map[string]struct{}) []string {
	keys := maps.Keys(a)
	out := keys[:0]
	for _, k := range keys {
		if _, ok := b[k]; !ok {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}

// CompareMoves checks b's legal moves against every oracle and returns one
// Mismatch per disagreeing oracle.
func CompareMoves(b *widemg.Board, oracles ...Oracle) ([]Mismatch, error) {
	if b.Dimension() != 8 {
		return nil, ErrNotOrthodox
	}
	fen := b.ToFEN()
	ours := b.LegalMoves()
	mine := make([]string, 0, len(ours))
	for _, m := range ours {
		mine = append(mine, m.String())
	}
	mineSet := moveSet(mine)

	var mismatches []Mismatch
	for _, o := range oracles {
		theirs, err := o.LegalMoves(fen)
		if err != nil {
			return mismatches, err
		}
		theirSet := moveSet(theirs)
		missing := difference(theirSet, mineSet)
		extra := difference(mineSet, theirSet)
		if len(missing) > 0 || len(extra) > 0 {
			mismatches = append(mismatches, Mismatch{Oracle: o.Name(), FEN: fen, Missing: missing, Extra: extra})
		}
	}
	return mismatches, nil
}

// PerftResult is one oracle's node count.
type PerftResult struct {
	Oracle string
	Nodes  uint64
}

// ComparePerft counts leaf nodes with widemg and every oracle. It returns
// widemg's count and the oracle counts that differ from it.
func ComparePerft(b *widemg.Board, depth int, oracles ...Oracle) (uint64, []PerftResult, error) {
	if b.Dimension() != 8 {
		return 0, nil, ErrNotOrthodox
	}
	fen := b.ToFEN()
	ours := widemg.Perft(b, depth)
	var diffs []PerftResult
	for _, o := range oracles {
		n, err := o.Perft(fen, depth)
		if err != nil {
			return ours, diffs, err
		}
		if n != ours {
			diffs = append(diffs, PerftResult{Oracle: o.Name(), Nodes: n})
		}
	}
	return ours, diffs, nil
}

// Playout plays up to plies random legal moves from b, comparing the move
// sets before every move. The walk stops early at a terminal position or on
// the first mismatch. The board is restored before returning.
func Playout(b *widemg.Board, seed uint64, plies int, oracles ...Oracle) ([]Mismatch, error) {
	rng := rand.New(rand.NewSource(seed))
	var undo []widemg.UndoRecord
	defer func() {
		for i := len(undo) - 1; i >= 0; i-- {
			b.UndoMove(undo[i])
		}
	}()

	for ply := 0; ply < plies; ply++ {
		mismatches, err := CompareMoves(b, oracles...)
		if err != nil || len(mismatches) > 0 {
			return mismatches, err
		}
		moves := b.LegalMoves()
		if len(moves) == 0 {
			return nil, nil
		}
		rec, err := b.ApplyMove(moves[rng.Intn(len(moves))])
		if err != nil {
			return nil, err
		}
		undo = append(undo, rec)
	}
	return nil, nil
}
