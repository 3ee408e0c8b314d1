package board

// historyEntry records one merge or capture: which group, and the stone
// whose placement caused it.
type historyEntry struct {
	group GroupID
	cause Point
}

// historyLog is a LIFO of history entries with a sentinel at the bottom,
// so peeking at the top never needs a length check. Undo pops entries
// strictly from the top, newest cause first.
type historyLog struct {
	entries []historyEntry
}

func newHistoryLog() historyLog {
	return historyLog{entries: []historyEntry{{group: NoGroup, cause: NoPoint}}}
}

func (l *historyLog) push(g GroupID, cause Point) {
	l.entries = append(l.entries, historyEntry{group: g, cause: cause})
}

func (l *historyLog) top() historyEntry {
	return l.entries[len(l.entries)-1]
}

func (l *historyLog) pop() historyEntry {
	e := l.top()
	if e.group == NoGroup {
		panic("goban: popped history log sentinel")
	}
	l.entries = l.entries[:len(l.entries)-1]
	return e
}

// depth reports how many real entries the log holds.
func (l *historyLog) depth() int {
	return len(l.entries) - 1
}
