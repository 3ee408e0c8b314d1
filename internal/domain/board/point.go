package board

import "fmt"

// Point addresses one intersection. Col runs left to right from zero, Row
// bottom to top from zero, so "a1" is the lower left corner at {0, 0}.
type Point struct {
	Col int
	Row int
}

// NoPoint is the off-board sentinel used where no real point applies.
var NoPoint = Point{Col: -1, Row: -1}

// String renders the point in letter-number form, such as "h8".
func (p Point) String() string {
	if p.Col < 0 || p.Col >= maxBoardSize || p.Row < 0 {
		return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
	}
	return fmt.Sprintf("%c%d", 'a'+p.Col, p.Row+1)
}
