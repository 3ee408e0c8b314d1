package game

import (
	"fmt"
	"strconv"
	"strings"

	"goban/internal/domain/board"
	errs "goban/internal/errors"
)

// Move is one action by one player: either a stone placement or a pass.
type Move struct {
	Color board.Color
	Point board.Point
	Pass  bool
}

func PlaceMove(c board.Color, p board.Point) Move {
	return Move{Color: c, Point: p}
}

func PassMove(c board.Color) Move {
	return Move{Color: c, Point: board.NoPoint, Pass: true}
}

func (m Move) String() string {
	if m.Pass {
		return fmt.Sprintf("%s pass", m.Color)
	}
	return fmt.Sprintf("%s %s", m.Color, m.Point)
}

// ParsePoint reads coordinates like "h8": a column letter starting at
// "a" and a row number counted from 1 at the bottom edge. No letter is
// skipped.
func ParsePoint(s string, size int) (board.Point, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 || s[0] < 'a' || s[0] > 'z' {
		return board.NoPoint, fmt.Errorf("%w: %q", errs.ErrBadMove, s)
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return board.NoPoint, fmt.Errorf("%w: %q", errs.ErrBadMove, s)
	}
	p := board.Point{Col: int(s[0] - 'a'), Row: row - 1}
	if p.Col >= size || row < 1 || row > size {
		return board.NoPoint, fmt.Errorf("%w: %q is outside the board", errs.ErrBadMove, s)
	}
	return p, nil
}

// ParseMove reads either "pass" or a point in ParsePoint notation.
func ParseMove(c board.Color, s string, size int) (Move, error) {
	if strings.EqualFold(strings.TrimSpace(s), "pass") {
		return PassMove(c), nil
	}
	p, err := ParsePoint(s, size)
	if err != nil {
		return Move{}, err
	}
	return PlaceMove(c, p), nil
}
