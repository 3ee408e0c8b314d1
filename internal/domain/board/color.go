package board

// Color is the occupancy of an intersection.
type Color uint8

const (
	Empty Color = iota
	Black
	White
)

// Opponent returns the opposing stone color. Empty has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}
