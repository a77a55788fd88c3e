package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"wideboard/engine"
	"wideboard/widemg"
)

func main() {
	// --- Flags ---
	depthFlag := flag.Int("depth", 5, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", "", "FEN to search (empty = start position)")
	boardFlag := flag.String("board", "", "file holding a board in grid text form")
	nFlag := flag.Int("n", 8, "board dimension for the start position")
	infoFlag := flag.Bool("info", false, "print per-iteration info lines")
	statsFlag := flag.Bool("stats", false, "print cut statistics after each search")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("searchbench: ")

	if *depthFlag <= 0 {
		log.Fatalf("depth must be positive, got %d", *depthFlag)
	}

	// --- Optional CPU profiling setup ---
	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	board, err := loadBoard(*fenFlag, *boardFlag, *nFlag)
	if err != nil {
		log.Fatalf("%v", err)
	}

	var opts []engine.Option
	if *infoFlag || *statsFlag {
		opts = append(opts, engine.WithInfo(os.Stdout), engine.WithCutStats(*statsFlag))
	}
	searcher := engine.NewSearcher(opts...)

	depth := *depthFlag
	repeat := *repeatFlag
	fmt.Printf("searchbench: %dx%d fen=%q depth=%d repeat=%d\n", board.Dimension(), board.Dimension(), board.ToFEN(), depth, repeat)

	var totalNodes uint64
	startAll := time.Now()
	for i := 0; i < repeat; i++ {
		iterStart := time.Now()
		result := searcher.BestMove(board, depth)
		iterElapsed := time.Since(iterStart)
		totalNodes += result.Nodes
		fmt.Printf("iteration %d: %v  time=%v\n", i+1, result, iterElapsed)
	}
	totalElapsed := time.Since(startAll)
	fmt.Printf("total time: %v  nodes: %d  nps: %.0f\n", totalElapsed, totalNodes, float64(totalNodes)/totalElapsed.Seconds())

	// --- Optional heap profile at the end ---
	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
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
