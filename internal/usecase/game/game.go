package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"goban/internal/bootstrap"
	"goban/internal/domain/board"
	errs "goban/internal/errors"
	"goban/internal/statuses"
)

// record remembers everything needed to take one move back: the move
// itself, how many stones it captured, and the controller state it
// overwrote.
type record struct {
	move       Move
	captured   int
	prevKo     board.Point
	prevPasses int
}

// Game runs one game on top of the board engine: it enforces turn
// order, the one-move ko ban and the two-pass ending, and keeps the
// capture tally. The board itself stays rule-agnostic.
type Game struct {
	key       string
	name      string
	blackName string
	whiteName string
	createdAt time.Time
	board     *board.Board
	next      board.Color
	status    string
	result    string

	ko      board.Point
	passes  int
	history []record

	blackCaptures int
	whiteCaptures int
}

func NewGame(cfg *bootstrap.Config) (*Game, error) {
	b, err := board.New(cfg.BoardSize)
	if err != nil {
		return nil, err
	}
	return &Game{
		key:       uuid.New().String(),
		name:      cfg.GameName,
		blackName: cfg.BlackPlayer,
		whiteName: cfg.WhitePlayer,
		createdAt: time.Now(),
		board:     b,
		next:      board.Black,
		status:    statuses.StatusRunning,
		ko:        board.NoPoint,
	}, nil
}

func (g *Game) Key() string          { return g.key }
func (g *Game) Name() string         { return g.name }
func (g *Game) Board() *board.Board  { return g.board }
func (g *Game) Next() board.Color    { return g.next }
func (g *Game) Status() string       { return g.status }
func (g *Game) Result() string       { return g.result }
func (g *Game) KoPoint() board.Point { return g.ko }
func (g *Game) Moves() int           { return len(g.history) }

// Captures returns how many stones the given color has taken, or 0
// for any other color value.
func (g *Game) Captures(c board.Color) int {
	switch c {
	case board.Black:
		return g.blackCaptures
	case board.White:
		return g.whiteCaptures
	}
	return 0
}

// Apply plays one move for the player whose turn it is and returns the
// number of stones it captured.
func (g *Game) Apply(m Move) (int, error) {
	if g.status != statuses.StatusRunning {
		return 0, errs.ErrGameFinished
	}
	if m.Color != g.next {
		return 0, errs.ErrNotYourTurn
	}

	if m.Pass {
		g.history = append(g.history, record{move: m, prevKo: g.ko, prevPasses: g.passes})
		g.passes++
		g.ko = board.NoPoint
		if g.passes >= 2 {
			g.status = statuses.StatusFinished
			g.result = "both players passed"
		}
		g.next = g.next.Opponent()
		return 0, nil
	}

	if m.Point == g.ko {
		return 0, errs.ErrKoRepeat
	}

	captured, err := g.board.Play(m.Color, m.Point)
	if err != nil {
		// A suicide is applied and self-captured before it is
		// reported, so take it off the board again. Every other
		// rejection leaves the board untouched, and undoing the
		// point would disturb whatever stands there.
		if errors.Is(err, board.ErrSuicide) {
			if undoErr := g.board.Undo(m.Point); undoErr != nil {
				return 0, undoErr
			}
		}
		return 0, err
	}

	g.history = append(g.history, record{move: m, captured: captured, prevKo: g.ko, prevPasses: g.passes})
	g.passes = 0
	g.ko = g.koAfter(m, captured)
	if m.Color == board.Black {
		g.blackCaptures += captured
	} else {
		g.whiteCaptures += captured
	}
	g.next = g.next.Opponent()
	return captured, nil
}

// UndoLast takes back the most recent move, pass or placement alike.
// A game that ended with two passes is reopened; resignation and abort
// are final.
func (g *Game) UndoLast() error {
	if len(g.history) == 0 {
		return errs.ErrNothingToUndo
	}
	// The double-pass ending is the only finish that leaves two
	// passes standing, so anything else was resigned or aborted.
	if g.status != statuses.StatusRunning && g.passes < 2 {
		return errs.ErrGameFinished
	}
	rec := g.history[len(g.history)-1]
	if !rec.move.Pass {
		if err := g.board.Undo(rec.move.Point); err != nil {
			return err
		}
		if rec.move.Color == board.Black {
			g.blackCaptures -= rec.captured
		} else {
			g.whiteCaptures -= rec.captured
		}
	}
	g.history = g.history[:len(g.history)-1]
	g.ko = rec.prevKo
	g.passes = rec.prevPasses
	g.next = rec.move.Color
	g.status = statuses.StatusRunning
	g.result = ""
	return nil
}

// Resign ends the game in favor of the opponent.
func (g *Game) Resign(c board.Color) error {
	if g.status != statuses.StatusRunning {
		return errs.ErrGameFinished
	}
	g.status = statuses.StatusFinished
	g.result = fmt.Sprintf("%s wins by resignation", c.Opponent())
	return nil
}

// Abort marks a game that was quit rather than played out.
func (g *Game) Abort() {
	if g.status == statuses.StatusRunning {
		g.status = statuses.StatusAborted
	}
}

// IsLegal reports whether Apply would accept placing a stone of color c
// at p, without touching the board.
func (g *Game) IsLegal(c board.Color, p board.Point) error {
	if g.status != statuses.StatusRunning {
		return errs.ErrGameFinished
	}
	if c != g.next {
		return errs.ErrNotYourTurn
	}
	if !g.board.OnBoard(p) {
		return board.ErrOffBoard
	}
	if g.board.ColorAt(p) != board.Empty {
		return board.ErrOccupied
	}
	if p == g.ko {
		return errs.ErrKoRepeat
	}
	// A placement lives exactly when it keeps or gains a liberty: an
	// empty neighbor, a friendly neighbor with a spare liberty, or an
	// enemy neighbor it is about to capture.
	for _, n := range g.board.Neighbors(p) {
		switch g.board.ColorAt(n) {
		case board.Empty:
			return nil
		case c:
			if g.board.Liberties(g.board.GroupAt(n)) >= 2 {
				return nil
			}
		default:
			if g.board.Liberties(g.board.GroupAt(n)) == 1 {
				return nil
			}
		}
	}
	return board.ErrSuicide
}

// koAfter finds the point the ko ban moves to, or NoPoint. A ban arises
// when a lone stone captures exactly one stone and ends at one liberty:
// the vacated point is then off limits for one turn.
func (g *Game) koAfter(m Move, captured int) board.Point {
	if captured != 1 {
		return board.NoPoint
	}
	id := g.board.GroupAt(m.Point)
	if g.board.Liberties(id) != 1 || len(g.board.GroupStones(id)) != 1 {
		return board.NoPoint
	}
	for _, n := range g.board.Neighbors(m.Point) {
		if g.board.ColorAt(n) == board.Empty {
			return n
		}
	}
	return board.NoPoint
}
