package errors

import "errors"

var (
	ErrNotYourTurn       = errors.New("it is not this player's turn")
	ErrGameFinished      = errors.New("game is already finished")
	ErrKoRepeat          = errors.New("move would retake the ko")
	ErrNothingToUndo     = errors.New("no moves to undo")
	ErrUnknownPlayerKind = errors.New("unknown player kind")
	ErrBadMove           = errors.New("move could not be parsed")
)
