package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"goban/internal/bootstrap"
	"goban/internal/domain/board"
	"goban/internal/statuses"
	gameuc "goban/internal/usecase/game"
	"goban/internal/usecase/player"
)

// GameHandler drives one game over a line-based console: it prompts
// humans, asks bots, renders the board and routes the session commands.
type GameHandler struct {
	cfg   bootstrap.Config
	log   *zap.SugaredLogger
	game  *gameuc.Game
	black player.Player
	white player.Player
	in    *bufio.Scanner
	out   io.Writer
}

func NewGameHandler(cfg bootstrap.Config, log *zap.SugaredLogger, in io.Reader, out io.Writer) (*GameHandler, error) {
	g, err := gameuc.NewGame(&cfg)
	if err != nil {
		return nil, err
	}
	black, err := player.New(cfg.BlackPlayer, board.Black, &cfg)
	if err != nil {
		return nil, err
	}
	white, err := player.New(cfg.WhitePlayer, board.White, &cfg)
	if err != nil {
		return nil, err
	}
	return &GameHandler{
		cfg:   cfg,
		log:   log,
		game:  g,
		black: black,
		white: white,
		in:    bufio.NewScanner(in),
		out:   out,
	}, nil
}

// Game exposes the running game, mainly to tests.
func (h *GameHandler) Game() *gameuc.Game { return h.game }

// Run plays the game until it ends, the input closes, or the context is
// canceled.
func (h *GameHandler) Run(ctx context.Context) error {
	h.log.Infof("game %s started: %s, board %dx%d, %s vs %s",
		h.game.Key(), h.game.Name(), h.cfg.BoardSize, h.cfg.BoardSize, h.black.Kind(), h.white.Kind())
	fmt.Fprintf(h.out, "%s\ncommands: <point like h8>, pass, undo, sgf, resign, help, quit\n", h.game.Name())

	for {
		select {
		case <-ctx.Done():
			h.game.Abort()
			h.log.Infof("game %s canceled", h.game.Key())
			return ctx.Err()
		default:
		}

		if h.game.Status() != statuses.StatusRunning {
			h.render()
			h.printOutcome()
			return nil
		}

		current := h.playerFor(h.game.Next())
		switch p := current.(type) {
		case *player.Bot:
			h.moveBot(p)
		case *player.Human:
			if !h.moveHuman(p) {
				h.game.Abort()
				h.printOutcome()
				return h.in.Err()
			}
		}
	}
}

func (h *GameHandler) playerFor(c board.Color) player.Player {
	if c == board.Black {
		return h.black
	}
	return h.white
}

func (h *GameHandler) moveBot(p *player.Bot) {
	m := p.ChooseMove(h.game)
	captured, err := h.game.Apply(m)
	if err != nil {
		// The bot only proposes moves it has verified, so fall back to
		// a pass rather than stall the game.
		h.log.Errorf("bot move %s rejected: %v", m, err)
		if _, err := h.game.Apply(gameuc.PassMove(p.Color())); err != nil {
			h.log.Errorf("bot pass rejected: %v", err)
		}
		return
	}
	fmt.Fprintf(h.out, "bot plays %s\n", m)
	if captured > 0 {
		fmt.Fprintf(h.out, "%s captures %d\n", m.Color, captured)
	}
}

// moveHuman handles one line of input. It reports false when the input
// is exhausted.
func (h *GameHandler) moveHuman(p *player.Human) bool {
	h.render()
	fmt.Fprintf(h.out, "%s> ", p.Color())
	if !h.in.Scan() {
		return false
	}

	line := strings.ToLower(strings.TrimSpace(h.in.Text()))
	switch line {
	case "":
		return true
	case "help":
		fmt.Fprintf(h.out, "play a point like h8, or: pass, undo, sgf, resign, quit\n")
		return true
	case "sgf":
		fmt.Fprintf(h.out, "%s\n", h.game.SGF())
		return true
	case "quit", "exit":
		h.game.Abort()
		return true
	case "undo":
		h.undo(p.Color())
		return true
	case "resign":
		if err := h.game.Resign(p.Color()); err != nil {
			fmt.Fprintf(h.out, "cannot resign: %v\n", err)
		}
		return true
	}

	m, err := gameuc.ParseMove(p.Color(), line, h.game.Board().Size())
	if err != nil {
		fmt.Fprintf(h.out, "cannot read %q, try help\n", line)
		return true
	}
	captured, err := h.game.Apply(m)
	if err != nil {
		fmt.Fprintf(h.out, "cannot play %s: %v\n", m, err)
		return true
	}
	if captured > 0 {
		fmt.Fprintf(h.out, "%s captures %d\n", m.Color, captured)
	}
	return true
}

// undo takes back the human's last move. Against a bot that means two
// moves, so the same player is to move again.
func (h *GameHandler) undo(c board.Color) {
	steps := 1
	if h.playerFor(c.Opponent()).Kind() == "bot" && h.game.Moves() >= 2 {
		steps = 2
	}
	for i := 0; i < steps; i++ {
		if err := h.game.UndoLast(); err != nil {
			fmt.Fprintf(h.out, "cannot undo: %v\n", err)
			return
		}
	}
	fmt.Fprintf(h.out, "took back %d move(s)\n", steps)
}

func (h *GameHandler) printOutcome() {
	switch h.game.Status() {
	case statuses.StatusFinished:
		fmt.Fprintf(h.out, "game over: %s\n", h.game.Result())
	case statuses.StatusAborted:
		fmt.Fprintf(h.out, "game aborted\n")
	}
	h.log.Infof("game %s ended: %s %s", h.game.Key(), h.game.Status(), h.game.Result())
}

// render draws the position with letters across the top and row numbers
// down the left, row 1 at the bottom. Black stones are X, white are O.
func (h *GameHandler) render() {
	bd := h.game.Board()
	var sb strings.Builder

	sb.WriteString("   ")
	for col := 0; col < bd.Size(); col++ {
		sb.WriteByte(byte('a' + col))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')

	for row := bd.Size() - 1; row >= 0; row-- {
		fmt.Fprintf(&sb, "%2d ", row+1)
		for col := 0; col < bd.Size(); col++ {
			switch bd.ColorAt(board.Point{Col: col, Row: row}) {
			case board.Black:
				sb.WriteByte('X')
			case board.White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}

	fmt.Fprintf(&sb, "captures: black %d, white %d\n",
		h.game.Captures(board.Black), h.game.Captures(board.White))
	io.WriteString(h.out, sb.String())
}
