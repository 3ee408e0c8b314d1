package player

import (
	"goban/internal/bootstrap"
	"goban/internal/domain/board"
	errs "goban/internal/errors"
)

// Player identifies one seat at the board. The console asks a Human for
// input and a Bot for a computed move.
type Player interface {
	Color() board.Color
	Kind() string
}

type Human struct {
	color board.Color
}

func NewHuman(c board.Color) *Human {
	return &Human{color: c}
}

func (h *Human) Color() board.Color { return h.color }
func (h *Human) Kind() string       { return "human" }

// New builds a player of the configured kind for one color.
func New(kind string, c board.Color, cfg *bootstrap.Config) (Player, error) {
	switch kind {
	case "human":
		return NewHuman(c), nil
	case "bot":
		return NewBot(c, cfg.BotReadingDepth), nil
	}
	return nil, errs.ErrUnknownPlayerKind
}
