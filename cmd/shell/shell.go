package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"wideboard/engine"
	"wideboard/widemg"
)

const defaultDepth = 4

// shell drives one game over the public board and search API.
type shell struct {
	out      io.Writer
	board    *widemg.Board
	stack    []widemg.UndoRecord
	history  []widemg.ZobristKey
	searcher *engine.Searcher
}

func newShell(out io.Writer, info bool) *shell {
	var opts []engine.Option
	if info {
		opts = append(opts, engine.WithInfo(out))
	}
	sh := &shell{out: out, searcher: engine.NewSearcher(opts...)}
	sh.reset(widemg.StartPosition(8))
	return sh
}

func (sh *shell) reset(b *widemg.Board) {
	sh.board = b
	sh.stack = sh.stack[:0]
	sh.history = append(sh.history[:0], b.Hash())
}

func (sh *shell) printf(format string, args ...any) { fmt.Fprintf(sh.out, format, args...) }

// loop reads commands until EOF or "quit".
func (sh *shell) loop(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		if !sh.exec(strings.ToLower(tokens[0]), tokens[1:]) {
			return
		}
	}
}

// exec runs one command and reports whether the loop should continue.
func (sh *shell) exec(cmd string, args []string) bool {
	switch cmd {
	case "quit", "exit":
		return false
	case "new":
		n := 8
		if len(args) > 0 {
			v, err := strconv.Atoi(args[0])
			if err != nil {
				sh.printf("error: bad dimension %q\n", args[0])
				return true
			}
			n = v
		}
		b, err := widemg.NewBoard(n, "")
		if err != nil {
			sh.printf("error: %v\n", err)
			return true
		}
		sh.reset(b)
		sh.printf("ok %dx%d\n", n, n)
	case "fen":
		b, err := widemg.ParseFEN(strings.Join(args, " "))
		if err != nil {
			sh.printf("error: %v\n", err)
			return true
		}
		sh.reset(b)
		sh.printf("ok %dx%d\n", b.Dimension(), b.Dimension())
	case "load":
		if len(args) != 1 {
			sh.printf("error: usage load <file>\n")
			return true
		}
		text, err := os.ReadFile(args[0])
		if err != nil {
			sh.printf("error: %v\n", err)
			return true
		}
		b, err := widemg.FromString(string(text))
		if err != nil {
			sh.printf("error: %v\n", err)
			return true
		}
		sh.reset(b)
		sh.printf("ok %dx%d\n", b.Dimension(), b.Dimension())
	case "board":
		sh.printf("%s\n", sh.board.Display())
	case "text":
		sh.printf("%s", sh.board.ToString())
	case "fenout":
		sh.printf("%s\n", sh.board.ToFEN())
	case "moves":
		moves := sh.board.LegalMoves()
		names := make([]string, len(moves))
		for i, m := range moves {
			names[i] = m.String()
		}
		sh.printf("%d: %s\n", len(moves), strings.Join(names, " "))
	case "play":
		for _, text := range args {
			m, err := sh.board.ParseMove(text)
			if err != nil {
				sh.printf("error: %v\n", err)
				return true
			}
			if !sh.board.PushMove(m, &sh.stack, &sh.history) {
				sh.printf("error: illegal move %s\n", text)
				return true
			}
		}
		sh.printf("ok\n")
	case "undo":
		if len(sh.stack) == 0 {
			sh.printf("error: nothing to undo\n")
			return true
		}
		sh.board.PopMove(&sh.stack, &sh.history)
		sh.printf("ok\n")
	case "go":
		depth := defaultDepth
		if len(args) >= 2 && strings.ToLower(args[0]) == "depth" {
			v, err := strconv.Atoi(args[1])
			if err != nil || v <= 0 {
				sh.printf("error: bad depth %q\n", args[1])
				return true
			}
			depth = v
		}
		sh.searcher.SetGameHistory(sh.history)
		result := sh.searcher.BestMove(sh.board, depth)
		if result.Move == 0 {
			sh.printf("bestmove none %s\n", result.ScoreString())
			return true
		}
		sh.printf("bestmove %v %s\n", result.Move, result.ScoreString())
	case "eval":
		sh.printf("%v\n", engine.Breakdown(sh.board))
	case "status":
		sh.printf("%s\n", sh.status())
	default:
		sh.printf("error: unknown command %q\n", cmd)
	}
	return true
}

func (sh *shell) status() string {
	b := sh.board
	switch {
	case b.IsCheckmate():
		return "checkmate"
	case b.IsStalemate():
		return "stalemate"
	case b.IsDrawByRepetition(sh.history):
		return "draw by repetition"
	case b.IsDrawBy50():
		return "draw by fifty-move rule"
	case b.OurKingInCheck():
		return "check"
	}
	return "playing"
}
