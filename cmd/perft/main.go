package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"wideboard/crosscheck"
	"wideboard/widemg"
)

func main() {
	fen := flag.String("fen", "", "FEN string (defaults to the start position)")
	boardFile := flag.String("board", "", "File holding a board in grid text form")
	n := flag.Int("n", 8, "Board dimension for the start position")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	verify := flag.Bool("verify", false, "Check the count against the 8x8 oracles")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board, err := loadBoard(*fen, *boardFile, *n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "perft: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := widemg.PerftDivide(board, *depth)
		counts := make(map[string]uint64, len(div))
		for m, nodes := range div {
			counts[m.String()] = nodes
		}
		names := maps.Keys(counts)
		slices.Sort(names)
		var sum uint64
		for _, name := range names {
			fmt.Printf("%s: %d\n", name, counts[name])
			sum += counts[name]
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *verify {
		nodes, diffs, err := crosscheck.ComparePerft(board, *depth, crosscheck.Oracles()...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "verify: %v\n", err)
			os.Exit(2)
		}
		for _, d := range diffs {
			fmt.Fprintf(os.Stderr, "mismatch: widemg %d, %s %d\n", nodes, d.Oracle, d.Nodes)
		}
		if len(diffs) > 0 {
			os.Exit(1)
		}
		fmt.Printf("verified %d nodes at depth %d against %d oracles\n", nodes, *depth, len(crosscheck.Oracles()))
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += widemg.Perft(board, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Label Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}

func loadBoard(fen, boardFile string, n int) (*widemg.Board, error) {
	switch {
	case boardFile != "":
		text, err := os.ReadFile(boardFile)
		if err != nil {
			return nil, err
		}
		return widemg.FromString(string(text))
	case fen != "":
		return widemg.ParseFEN(fen)
	default:
		return widemg.NewBoard(n, "")
	}
}
