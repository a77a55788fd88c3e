package widemg

import (
	"errors"
	"fmt"
)

// ErrNoSuchMove is returned by ParseMove when the text names no legal move.
var ErrNoSuchMove = errors.New("no legal move matches")

// FormatError reports malformed serialized board text. Line and Col are
// 1-based; zero means the position is unknown.
type FormatError struct {
	Line int
	Col  int
	Msg  string
}

func (e *FormatError) Error() string {
	switch {
	case e.Line > 0 && e.Col > 0:
		return fmt.Sprintf("invalid board text: line %d col %d: %s", e.Line, e.Col, e.Msg)
	case e.Line > 0:
		return fmt.Sprintf("invalid board text: line %d: %s", e.Line, e.Msg)
	}
	return "invalid board text: " + e.Msg
}

func formatErrorf(line, col int, format string, args ...any) *FormatError {
	return &FormatError{Line: line, Col: col, Msg: fmt.Sprintf(format, args...)}
}

// IllegalMoveError reports an ApplyMove call with a move that is not legal in
// the position. The board is left unchanged.
type IllegalMoveError struct {
	Move Move
	FEN  string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %v in %s", e.Move, e.FEN)
}

// InvariantViolation signals internal corruption such as overlapping piece
// sets or a missing king. Internal paths panic with it; Validate returns it.
type InvariantViolation struct {
	Msg string
}

func (e *InvariantViolation) Error() string { return "invariant violation: " + e.Msg }
