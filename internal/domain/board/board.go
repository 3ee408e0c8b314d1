// Package board maintains the authoritative state of a Go board: stone
// placement, connected same-color groups with incrementally tracked
// liberty counts, captures, and a strict last-in-first-out undo of every
// change a placement made.
//
// The package tracks physical consequences only. Whose turn it is, ko,
// and every other notion of legality belong to the caller; the one rule
// enforced here is that a placement leaving its own group without
// liberties is applied as a self-capture and answered with ErrSuicide,
// so the caller can still undo it.
package board

// GroupID is a stable handle into the board's group arena. Slots are
// recycled after an undo empties a group, so a handle stays meaningful
// only while its group is alive.
type GroupID int

// NoGroup marks a stone or log entry with no group behind it.
const NoGroup GroupID = -1

const maxBoardSize = 26 // column letters run a through z

// Board owns the stones, the group arena with its garbage pool, and the
// merge and capture history logs. One Board serves one game instance;
// nothing here is shared process-wide, and a Board must not be used from
// more than one goroutine.
type Board struct {
	size      int
	stones    []stone
	neighbors [][]Point

	groups  []group
	garbage []GroupID

	merged historyLog
	killed historyLog
}

// New returns an empty square board of the given side length.
func New(size int) (*Board, error) {
	if size < 1 || size > maxBoardSize {
		return nil, ErrBadSize
	}
	b := &Board{
		size:      size,
		stones:    make([]stone, size*size),
		neighbors: make([][]Point, size*size),
		merged:    newHistoryLog(),
		killed:    newHistoryLog(),
	}
	for i := range b.stones {
		p := Point{Col: i % size, Row: i / size}
		b.stones[i] = stone{point: p, color: Empty, group: NoGroup}
		ns := make([]Point, 0, 4)
		for _, n := range [...]Point{
			{Col: p.Col - 1, Row: p.Row},
			{Col: p.Col + 1, Row: p.Row},
			{Col: p.Col, Row: p.Row - 1},
			{Col: p.Col, Row: p.Row + 1},
		} {
			if b.onBoard(n) {
				ns = append(ns, n)
			}
		}
		b.neighbors[i] = ns
	}
	return b, nil
}

// Play places a stone and applies every physical consequence: the stone
// founds a singleton group, same-color neighbor groups merge into it,
// enemy neighbor groups lose a liberty and are captured at zero. Enemy
// captures resolve before the placed group is checked, so a stone that
// captures with its last liberty survives. The number of enemy stones
// captured by the move is returned.
//
// A placement that still has no liberties after captures is applied as a
// self-capture and reported as ErrSuicide; Undo of the same point
// reverses it.
func (b *Board) Play(c Color, p Point) (int, error) {
	if c != Black && c != White {
		return 0, &MoveError{Err: ErrBadColor, Color: c, Point: p}
	}
	if !b.onBoard(p) {
		return 0, &MoveError{Err: ErrOffBoard, Color: c, Point: p}
	}
	s := b.at(p)
	if s.color != Empty {
		return 0, &MoveError{Err: ErrOccupied, Color: c, Point: p}
	}

	s.color = c
	g := b.allocGroup(c)
	g.connectStone(b, s, false)

	for _, n := range b.neighborList(p) {
		ns := b.at(n)
		if ns.color != c || ns.group == g.id {
			continue
		}
		g.merge(b, b.group(ns.group), p)
	}

	killedBefore := b.killed.depth()
	for _, enemy := range s.uniqueEnemies(b) {
		b.group(enemy).attackedBy(b, s)
	}
	captured := 0
	for _, e := range b.killed.entries[killedBefore+1:] {
		captured += b.group(e.group).size
	}

	if g.lives == 0 {
		g.dieFrom(b, p)
		return captured, &MoveError{Err: ErrSuicide, Color: c, Point: p}
	}
	return captured, nil
}

// Undo reverses the placement at p, which must be the most recent
// placement still on the board: undo calls mirror plays in reverse
// order. Reversal itself is fixed too. Groups the stone captured come
// back first, then merges it caused are unwound, then the surviving
// neighbors it attacked regain their liberty and the stone leaves.
func (b *Board) Undo(p Point) error {
	if !b.onBoard(p) {
		return &MoveError{Err: ErrOffBoard, Point: p}
	}
	revived := b.resuscitateFrom(p)
	s := b.at(p)
	if s.color == Empty {
		return &MoveError{Err: ErrUndoEmpty, Point: p}
	}
	g := b.group(s.group)
	g.unmergeFrom(b, p)
	if g.size != 1 || g.topMember() != p {
		return &MoveError{Err: ErrUndoOutOfOrder, Color: s.color, Point: p}
	}
	for _, enemy := range s.uniqueEnemies(b) {
		if containsGroup(revived, enemy) {
			continue
		}
		b.group(enemy).notAttackedAnymore(s)
	}
	g.disconnectStone(b, s, false)
	s.color = Empty
	return nil
}

// resuscitateFrom revives every group the stone at p captured, newest
// first. The revived handles are returned so Undo can tell enemies that
// survived the placement apart from ones that just came back: a revived
// group folds the regained liberty into its reset already.
func (b *Board) resuscitateFrom(p Point) []GroupID {
	var revived []GroupID
	for b.killed.top().cause == p {
		e := b.killed.pop()
		b.group(e.group).resuscitate(b)
		revived = append(revived, e.group)
	}
	return revived
}

// allocGroup hands out a group slot, preferring the garbage pool over
// growing the arena. Slot identity survives recycling; semantics do not.
func (b *Board) allocGroup(c Color) *group {
	var g *group
	if n := len(b.garbage); n > 0 {
		g = b.group(b.garbage[n-1])
		b.garbage = b.garbage[:n-1]
	} else {
		b.groups = append(b.groups, group{id: GroupID(len(b.groups))})
		g = &b.groups[len(b.groups)-1]
	}
	g.color = c
	g.state = groupActive
	// A group starts with one notional liberty, the point its first
	// stone is about to take; connectStone pays it right back.
	g.lives = 1
	g.size = 0
	g.target = NoGroup
	g.cause = NoPoint
	return g
}

// recycleGroup resets an emptied slot and returns it to the pool.
func (b *Board) recycleGroup(g *group) {
	g.color = Empty
	g.state = groupFree
	g.lives = 0
	g.members = g.members[:0]
	g.size = 0
	g.target = NoGroup
	g.cause = NoPoint
	b.garbage = append(b.garbage, g.id)
}

// Size returns the side length of the board.
func (b *Board) Size() int { return b.size }

// OnBoard reports whether p addresses a real intersection.
func (b *Board) OnBoard(p Point) bool { return b.onBoard(p) }

// ColorAt returns the occupancy of p, which must be on the board.
func (b *Board) ColorAt(p Point) Color { return b.at(p).color }

// GroupAt returns the handle of the group occupying p, or NoGroup for an
// empty point. p must be on the board.
func (b *Board) GroupAt(p Point) GroupID { return b.at(p).group }

// Neighbors returns the orthogonal neighbors of p, fewer than four at
// edges and corners. The slice is shared and must not be modified.
func (b *Board) Neighbors(p Point) []Point { return b.neighborList(p) }

// Liberties returns the liberty count of a group. For a merged group the
// count is frozen at merge time; for a captured one it is zero.
func (b *Board) Liberties(id GroupID) int { return b.group(id).lives }

// GroupColor returns the stone color of a group.
func (b *Board) GroupColor(id GroupID) Color { return b.group(id).color }

// GroupStones returns the member points of a group in connection order.
func (b *Board) GroupStones(id GroupID) []Point {
	g := b.group(id)
	out := make([]Point, g.size)
	copy(out, g.members[:g.size])
	return out
}

// LiveGroups enumerates the handles of all currently active groups.
func (b *Board) LiveGroups() []GroupID {
	var out []GroupID
	for i := range b.groups {
		if b.groups[i].state == groupActive {
			out = append(out, b.groups[i].id)
		}
	}
	return out
}

func (b *Board) index(p Point) int { return p.Row*b.size + p.Col }

func (b *Board) onBoard(p Point) bool {
	return p.Col >= 0 && p.Col < b.size && p.Row >= 0 && p.Row < b.size
}

func (b *Board) at(p Point) *stone { return &b.stones[b.index(p)] }

func (b *Board) neighborList(p Point) []Point { return b.neighbors[b.index(p)] }

func (b *Board) group(id GroupID) *group { return &b.groups[id] }
