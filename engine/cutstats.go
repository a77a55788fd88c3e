package engine

import (
	"fmt"
	"io"
)

// CutStatistics collects counts for each pruning/cutoff mechanism.
type CutStatistics struct {
	BetaCutoffs      uint64
	HashMoveFirst    uint64
	KillerCutoffs    uint64
	QStandPatCutoffs uint64
	QBetaCutoffs     uint64
	RepetitionDraws  uint64
	FiftyMoveDraws   uint64
}

func dumpCutStats(w io.Writer, s CutStatistics) {
	fmt.Fprintln(w, "info string Cut statistics:")
	fmt.Fprintf(w, "info string   Beta cutoffs: %d\n", s.BetaCutoffs)
	fmt.Fprintf(w, "info string   Hash move tried first: %d\n", s.HashMoveFirst)
	fmt.Fprintf(w, "info string   Killer cutoffs: %d\n", s.KillerCutoffs)
	fmt.Fprintf(w, "info string   QStandPat cutoffs: %d\n", s.QStandPatCutoffs)
	fmt.Fprintf(w, "info string   QBeta cutoffs: %d\n", s.QBetaCutoffs)
	fmt.Fprintf(w, "info string   Repetition draws: %d\n", s.RepetitionDraws)
	fmt.Fprintf(w, "info string   Fifty-move draws: %d\n", s.FiftyMoveDraws)
}
