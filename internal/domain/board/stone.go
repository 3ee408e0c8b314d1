package board

// stone is one board intersection. Stones are allocated once at board
// creation and never reallocated; capture and undo toggle color and
// group linkage in place.
type stone struct {
	point Point
	color Color
	group GroupID
}

// uniqueEnemies returns the distinct opposing groups adjacent to the
// stone. Two neighbors belonging to the same enemy group count once.
func (s *stone) uniqueEnemies(b *Board) []GroupID {
	enemy := s.color.Opponent()
	enemies := make([]GroupID, 0, 4)
	for _, n := range b.neighborList(s.point) {
		ns := b.at(n)
		if ns.color != enemy {
			continue
		}
		if !containsGroup(enemies, ns.group) {
			enemies = append(enemies, ns.group)
		}
	}
	return enemies
}

// die empties the intersection. The stone's point stays in its dead
// group's member log so a later undo can restore it.
func (s *stone) die() {
	s.color = Empty
	s.group = NoGroup
}

// resuscitateIn restores a captured stone as a member of g.
func (s *stone) resuscitateIn(g *group) {
	s.color = g.color
	s.group = g.id
}

// setGroupOnMerge relinks the stone without touching liberty counts.
// Only merge reversal needs it; the forward path links inside
// connectStone.
func (s *stone) setGroupOnMerge(id GroupID) {
	s.group = id
}

func containsGroup(ids []GroupID, id GroupID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
