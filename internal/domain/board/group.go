package board

import "fmt"

type groupState uint8

const (
	groupFree groupState = iota
	groupActive
	groupMerged
	groupCaptured
)

// group is one arena slot. A group owns its member log and liberty count
// while active; merged and captured groups keep both frozen so an undo
// can rebuild them, and free slots wait in the garbage pool for reuse.
type group struct {
	id    GroupID
	color Color
	state groupState

	// lives is the liberty count: distinct empty points adjacent to the
	// group, each counted once however many member stones share it.
	lives int

	// members records connection order. size is the cursor: entries below
	// it are the live membership, entries above it are stale history.
	// Stones only ever come off the top.
	members []Point
	size    int

	// target and cause describe how the group left the active state:
	// merged into target by the stone at cause, or captured by it.
	target GroupID
	cause  Point
}

func (g *group) pushMember(p Point) {
	if g.size == len(g.members) {
		g.members = append(g.members, p)
	} else {
		g.members[g.size] = p
	}
	g.size++
}

func (g *group) popMember(expect Point) {
	top := g.members[g.size-1]
	if top != expect {
		panic(fmt.Sprintf("goban: group %d popped %s while expecting %s", g.id, top, expect))
	}
	g.size--
}

func (g *group) topMember() Point {
	return g.members[g.size-1]
}

// livesAddedBy counts how many of the stone's empty neighbors are new
// liberties for this group, skipping points some other member already
// borders. The same scan prices a stone on its way in and on its way
// out.
func (g *group) livesAddedBy(b *Board, p Point) int {
	added := 0
	for _, n := range b.neighborList(p) {
		if b.at(n).color != Empty {
			continue
		}
		if g.bordersThrough(b, n, p) {
			continue
		}
		added++
	}
	return added
}

// bordersThrough reports whether a member other than skip touches the
// empty point n.
func (g *group) bordersThrough(b *Board, n, skip Point) bool {
	for _, m := range b.neighborList(n) {
		if m == skip {
			continue
		}
		if b.at(m).group == g.id {
			return true
		}
	}
	return false
}

// connectStone appends the stone and folds its unique liberties in. A
// plain placement also pays one liberty for the point the stone now
// occupies; a merge does not, the subgroup already paid for it.
func (g *group) connectStone(b *Board, s *stone, onMerge bool) {
	added := g.livesAddedBy(b, s.point)
	g.pushMember(s.point)
	s.group = g.id
	g.lives += added
	if !onMerge {
		g.lives--
	}
	if g.lives < 0 {
		panic(fmt.Sprintf("goban: group %d has negative liberties after connecting %s", g.id, s.point))
	}
}

// disconnectStone is the exact inverse of connectStone. A group down to
// its last stone is retired to the garbage pool instead of lingering
// empty.
func (g *group) disconnectStone(b *Board, s *stone, onMerge bool) {
	if g.size == 1 {
		g.popMember(s.point)
		s.group = NoGroup
		b.recycleGroup(g)
		return
	}
	removed := g.livesAddedBy(b, s.point)
	g.popMember(s.point)
	s.group = NoGroup
	g.lives -= removed
	if !onMerge {
		g.lives++
	}
}

// attackedBy takes one liberty for an enemy placement and captures the
// group the moment none remain.
func (g *group) attackedBy(b *Board, s *stone) {
	g.lives--
	if g.lives <= 0 {
		g.dieFrom(b, s.point)
	}
}

// attackedByResuscitated is the undo-time twin of attackedBy. A stone
// returning to the board can never capture: the only group that can sit
// at one liberty here is the one the running undo dissolves next.
func (g *group) attackedByResuscitated(s *stone) {
	if g.lives > 1 {
		g.lives--
	}
}

// notAttackedAnymore returns the liberty an enemy stone was holding.
func (g *group) notAttackedAnymore(s *stone) {
	g.lives++
}

// merge absorbs a same-color neighbor group. Its stones are reconnected
// in their original connection order, and the subgroup itself is kept
// frozen on the merged log so the placement can be unwound later.
func (g *group) merge(b *Board, sub *group, by Point) {
	if sub.id == g.id || sub.color != g.color || sub.state != groupActive || g.state != groupActive {
		panic(fmt.Sprintf("goban: invalid merge of group %d into group %d", sub.id, g.id))
	}
	for i := 0; i < sub.size; i++ {
		g.connectStone(b, b.at(sub.members[i]), true)
	}
	sub.state = groupMerged
	sub.target = g.id
	sub.cause = by
	b.merged.push(sub.id, by)
}

// unmerge detaches a previously absorbed subgroup, popping its stones in
// reverse connection order. The subgroup's member log and liberty count
// were frozen at merge time and are valid again the moment its stones
// are relinked.
func (g *group) unmerge(b *Board, sub *group) {
	for i := sub.size - 1; i >= 0; i-- {
		s := b.at(sub.members[i])
		g.disconnectStone(b, s, true)
		s.setGroupOnMerge(sub.id)
	}
	sub.state = groupActive
	sub.target = NoGroup
	sub.cause = NoPoint
}

// unmergeFrom unwinds every merge the stone at p caused into this group,
// newest first. A single placement can merge up to three neighbor
// groups, so this loops until the log top belongs to someone else.
func (g *group) unmergeFrom(b *Board, p Point) {
	for {
		top := b.merged.top()
		if top.cause != p {
			return
		}
		if b.group(top.group).target != g.id {
			return
		}
		b.merged.pop()
		g.unmerge(b, b.group(top.group))
	}
}

// dieFrom captures the group. Every member hands its liberty back to the
// enemy groups around it, deduplicated per stone, then leaves the board.
// The group stays frozen on the killed log for resuscitation.
func (g *group) dieFrom(b *Board, killer Point) {
	if g.lives != 0 {
		panic(fmt.Sprintf("goban: capturing group %d with %d liberties", g.id, g.lives))
	}
	for i := 0; i < g.size; i++ {
		s := b.at(g.members[i])
		for _, enemy := range s.uniqueEnemies(b) {
			b.group(enemy).notAttackedAnymore(s)
		}
		s.die()
	}
	g.state = groupCaptured
	g.cause = killer
	b.killed.push(g.id, killer)
}

// resuscitate reverses dieFrom. Liberties restart at exactly one: the
// point vacated by the undone killer is the group's only liberty at this
// moment, whatever the count was before the capture.
func (g *group) resuscitate(b *Board) {
	if g.state != groupCaptured {
		panic(fmt.Sprintf("goban: resuscitating group %d which was not captured", g.id))
	}
	g.state = groupActive
	g.cause = NoPoint
	g.lives = 1
	for i := 0; i < g.size; i++ {
		s := b.at(g.members[i])
		s.resuscitateIn(g)
		for _, enemy := range s.uniqueEnemies(b) {
			b.group(enemy).attackedByResuscitated(s)
		}
	}
}
