package bench

import (
	"testing"

	"wideboard/engine"
	"wideboard/widemg"
)

const (
	kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	// Rook, bishop and queen in the middle of an otherwise empty 16x16 board.
	slidingWide = "7k8/16/16/16/16/16/16/16/8Q7/6R3B5/16/16/16/16/16/7K8 w - - 0 1"

	// Knight and pawns only; every move comes from the stepping tables.
	stepping = "4k3/8/8/8/3p4/5N2/4P3/4K3 w - - 0 1"

	// Three sliders a side facing each other.
	slidingSearch = "3k4/qrb1brq1/8/8/8/8/QRB1BRQ1/3K4 w - - 0 1"
)

func mustFEN(b *testing.B, fen string) *widemg.Board {
	b.Helper()
	board, err := widemg.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	return board
}

func mustMove(b *testing.B, board *widemg.Board, text string) widemg.Move {
	b.Helper()
	m, err := board.ParseMove(text)
	if err != nil {
		b.Fatalf("ParseMove(%q): %v", text, err)
	}
	return m
}

func benchGenerateMoves(b *testing.B, board *widemg.Board) {
	buf := make([]widemg.Move, 0, 512)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = board.GenerateMovesInto(buf)
		buf = buf[:0]
	}
}

func BenchmarkSlidingPieces(b *testing.B) {
	benchGenerateMoves(b, mustFEN(b, slidingWide))
}

func BenchmarkSteppingPieces(b *testing.B) {
	benchGenerateMoves(b, mustFEN(b, stepping))
}

func BenchmarkGenerateMoves_Initial8(b *testing.B) {
	benchGenerateMoves(b, widemg.StartPosition(8))
}

func BenchmarkGenerateMoves_Initial16(b *testing.B) {
	benchGenerateMoves(b, widemg.StartPosition(16))
}

func BenchmarkGenerateMoves_Kiwipete(b *testing.B) {
	benchGenerateMoves(b, mustFEN(b, kiwipete))
}

func BenchmarkGenerateCaptures_Kiwipete(b *testing.B) {
	board := mustFEN(b, kiwipete)
	buf := make([]widemg.Move, 0, 256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = board.GenerateCapturesInto(buf)
		buf = buf[:0]
	}
}

func benchMakeUnmake(b *testing.B, board *widemg.Board, m widemg.Move) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rec := board.MakeMove(m)
		board.UnmakeMove(rec)
	}
}

func BenchmarkMakeUnmake_NoCapture(b *testing.B) {
	board := widemg.StartPosition(16)
	benchMakeUnmake(b, board, mustMove(b, board, "e2e3"))
}

func BenchmarkMakeUnmake_Capture(b *testing.B) {
	board := mustFEN(b, kiwipete)
	benchMakeUnmake(b, board, mustMove(b, board, "e5d7"))
}

func BenchmarkMakeUnmake_AllMoves_Initial(b *testing.B) {
	board := widemg.StartPosition(12)
	moves := board.LegalMoves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			rec := board.MakeMove(m)
			board.UnmakeMove(rec)
		}
	}
}

func benchSearch(b *testing.B, board *widemg.Board, depth int) {
	s := engine.NewSearcher()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.BestMove(board, depth)
	}
}

func BenchmarkSearchDepth1(b *testing.B) {
	benchSearch(b, widemg.StartPosition(8), 1)
}

func BenchmarkSearchDepth1_SlidingPieces(b *testing.B) {
	benchSearch(b, mustFEN(b, slidingSearch), 3)
}

func BenchmarkSearchDepth3(b *testing.B) {
	benchSearch(b, widemg.StartPosition(8), 3)
}

func BenchmarkSearchDepth5(b *testing.B) {
	benchSearch(b, widemg.StartPosition(8), 5)
}

func BenchmarkSearchDepth3_Wide(b *testing.B) {
	benchSearch(b, widemg.StartPosition(16), 3)
}

func BenchmarkBoardToString(b *testing.B) {
	board := widemg.StartPosition(16)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.ToString()
	}
}

func BenchmarkBoardFromString(b *testing.B) {
	text := widemg.StartPosition(16).ToString()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := widemg.FromString(text); err != nil {
			b.Fatal(err)
		}
	}
}
