package player

import (
	"errors"

	"goban/internal/domain/board"
	"goban/internal/usecase/game"
)

// Bot plays a greedy local game: it takes captures, pulls its own
// groups out of atari, chases ladders, and otherwise claims the
// roomiest open point. All reading runs on the live board through
// speculative play that is fully unwound before returning.
type Bot struct {
	color board.Color
	depth int
}

func NewBot(c board.Color, depth int) *Bot {
	if depth <= 0 {
		depth = 1
	}
	return &Bot{color: c, depth: depth}
}

func (b *Bot) Color() board.Color { return b.color }
func (b *Bot) Kind() string       { return "bot" }

// ChooseMove picks a move for the bot's turn.
func (b *Bot) ChooseMove(g *game.Game) game.Move {
	if p, ok := b.biggestCapture(g); ok {
		return game.PlaceMove(b.color, p)
	}
	if p, ok := b.escapeAtari(g); ok {
		return game.PlaceMove(b.color, p)
	}
	if p, ok := b.ladderAttack(g); ok {
		return game.PlaceMove(b.color, p)
	}
	if p, ok := b.roomiestPoint(g); ok {
		return game.PlaceMove(b.color, p)
	}
	return game.PassMove(b.color)
}

// biggestCapture takes the last liberty of the largest enemy group in
// atari, if any such move is allowed.
func (b *Bot) biggestCapture(g *game.Game) (board.Point, bool) {
	bd := g.Board()
	var (
		best     board.Point
		bestSize int
	)
	for _, id := range bd.LiveGroups() {
		if bd.GroupColor(id) == b.color || bd.Liberties(id) != 1 {
			continue
		}
		p := lastLiberty(bd, id)
		if g.IsLegal(b.color, p) != nil {
			continue
		}
		if size := len(bd.GroupStones(id)); size > bestSize {
			best, bestSize = p, size
		}
	}
	return best, bestSize > 0
}

// escapeAtari extends the largest own group that stands at one liberty,
// but only when the extension actually runs free.
func (b *Bot) escapeAtari(g *game.Game) (board.Point, bool) {
	bd := g.Board()
	var (
		best     board.Point
		bestSize int
	)
	for _, id := range bd.LiveGroups() {
		if bd.GroupColor(id) != b.color || bd.Liberties(id) != 1 {
			continue
		}
		p := lastLiberty(bd, id)
		if g.IsLegal(b.color, p) != nil {
			continue
		}
		if !probePlay(bd, b.color, p) {
			continue
		}
		libs := bd.Liberties(bd.GroupAt(p))
		safe := libs >= 3 || (libs == 2 && !b.attackerCatches(bd, p, b.depth))
		bd.Undo(p)
		if !safe {
			continue
		}
		if size := len(bd.GroupStones(id)); size > bestSize {
			best, bestSize = p, size
		}
	}
	return best, bestSize > 0
}

// ladderAttack hunts enemy groups at two liberties and plays the
// filling move when reading shows they cannot run out.
func (b *Bot) ladderAttack(g *game.Game) (board.Point, bool) {
	bd := g.Board()
	for _, id := range bd.LiveGroups() {
		if bd.GroupColor(id) == b.color || bd.Liberties(id) != 2 {
			continue
		}
		anchor := bd.GroupStones(id)[0]
		for _, p := range libertyPoints(bd, id) {
			if g.IsLegal(b.color, p) != nil {
				continue
			}
			if !probePlay(bd, b.color, p) {
				continue
			}
			caught := bd.Liberties(bd.GroupAt(anchor)) == 1 &&
				!b.defenderEscapes(bd, anchor, b.depth)
			bd.Undo(p)
			if caught {
				return p, true
			}
		}
	}
	return board.NoPoint, false
}

// roomiestPoint claims the allowed point whose stone ends up with the
// most liberties, skipping self-atari.
func (b *Bot) roomiestPoint(g *game.Game) (board.Point, bool) {
	bd := g.Board()
	var (
		best  board.Point
		score int
	)
	for row := 0; row < bd.Size(); row++ {
		for col := 0; col < bd.Size(); col++ {
			p := board.Point{Col: col, Row: row}
			if g.IsLegal(b.color, p) != nil {
				continue
			}
			if !probePlay(bd, b.color, p) {
				continue
			}
			libs := bd.Liberties(bd.GroupAt(p))
			bd.Undo(p)
			if libs >= 2 && libs > score {
				best, score = p, libs
			}
		}
	}
	return best, score > 0
}

// defenderEscapes reads the position with the group at p down to its
// last liberty and the owner to move. At the depth limit the defender
// gets the benefit of the doubt.
func (b *Bot) defenderEscapes(bd *board.Board, p board.Point, depth int) bool {
	if depth <= 0 {
		return true
	}
	id := bd.GroupAt(p)
	// Taking an adjacent attacker off the board beats running.
	for _, m := range bd.GroupStones(id) {
		for _, n := range bd.Neighbors(m) {
			if c := bd.ColorAt(n); c != board.Empty && c != bd.GroupColor(id) {
				if bd.Liberties(bd.GroupAt(n)) == 1 {
					return true
				}
			}
		}
	}

	out := lastLiberty(bd, id)
	if !probePlay(bd, bd.GroupColor(id), out) {
		return false
	}
	libs := bd.Liberties(bd.GroupAt(p))
	var escaped bool
	switch {
	case libs >= 3:
		escaped = true
	case libs <= 1:
		escaped = false
	default:
		escaped = !b.attackerCatches(bd, p, depth-1)
	}
	bd.Undo(out)
	return escaped
}

// attackerCatches reads the position with the group at p at two
// liberties and the chaser to move.
func (b *Bot) attackerCatches(bd *board.Board, p board.Point, depth int) bool {
	if depth <= 0 {
		return false
	}
	id := bd.GroupAt(p)
	chaser := bd.GroupColor(id).Opponent()
	for _, fill := range libertyPoints(bd, id) {
		if !probePlay(bd, chaser, fill) {
			continue
		}
		caught := false
		// A chasing stone that lands in atari itself just gets eaten.
		if bd.Liberties(bd.GroupAt(fill)) > 1 && bd.Liberties(bd.GroupAt(p)) == 1 {
			caught = !b.defenderEscapes(bd, p, depth-1)
		}
		bd.Undo(fill)
		if caught {
			return true
		}
	}
	return false
}

// probePlay applies a speculative move and reports whether it stuck. A
// suicide is applied and self-captured before it is reported, so it is
// taken back right here.
func probePlay(bd *board.Board, c board.Color, p board.Point) bool {
	if _, err := bd.Play(c, p); err != nil {
		if errors.Is(err, board.ErrSuicide) {
			_ = bd.Undo(p)
		}
		return false
	}
	return true
}

func lastLiberty(bd *board.Board, id board.GroupID) board.Point {
	for _, m := range bd.GroupStones(id) {
		for _, n := range bd.Neighbors(m) {
			if bd.ColorAt(n) == board.Empty {
				return n
			}
		}
	}
	return board.NoPoint
}

func libertyPoints(bd *board.Board, id board.GroupID) []board.Point {
	var out []board.Point
	for _, m := range bd.GroupStones(id) {
		for _, n := range bd.Neighbors(m) {
			if bd.ColorAt(n) != board.Empty {
				continue
			}
			seen := false
			for _, q := range out {
				if q == n {
					seen = true
					break
				}
			}
			if !seen {
				out = append(out, n)
			}
		}
	}
	return out
}
