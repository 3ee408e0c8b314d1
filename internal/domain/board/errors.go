package board

import (
	"errors"
	"fmt"
)

// Errors reported for rejected placements and undos. Broken internal
// invariants panic instead; they are bugs, not game states.
var (
	ErrBadSize        = errors.New("board size must be between 1 and 26")
	ErrBadColor       = errors.New("color must be black or white")
	ErrOffBoard       = errors.New("point is off the board")
	ErrOccupied       = errors.New("point is already occupied")
	ErrSuicide        = errors.New("placement leaves its own group without liberties")
	ErrUndoEmpty      = errors.New("no stone to undo at this point")
	ErrUndoOutOfOrder = errors.New("stone is not the latest placement of its group")
)

// MoveError wraps a rejected placement or undo with the move that caused
// it.
type MoveError struct {
	Err   error
	Color Color
	Point Point
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Color, e.Point, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
