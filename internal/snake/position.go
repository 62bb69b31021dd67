package snake

// Position is a cell coordinate on the board. Both components are always
// reduced into [0, width) and [0, height); the board wraps at every edge.
type Position struct {
	X, Y int
}

// Direction is the snake's heading.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Step returns the neighbouring position in direction d on a toroidal
// width x height board. Only one coordinate changes.
func (p Position) Step(d Direction, width, height int) Position {
	switch d {
	case DirRight:
		p.X = (p.X + 1) % width
	case DirLeft:
		// Substitute before the modulo so x never goes negative.
		if p.X == 0 {
			p.X = width - 1
		} else {
			p.X = (p.X - 1) % width
		}
	case DirDown:
		p.Y = (p.Y + 1) % height
	case DirUp:
		if p.Y == 0 {
			p.Y = height - 1
		} else {
			p.Y = (p.Y - 1) % height
		}
	}
	return p
}

// wrap reduces an arbitrary coordinate pair into the board.
func wrap(x, y, width, height int) Position {
	return Position{
		X: ((x % width) + width) % width,
		Y: ((y % height) + height) % height,
	}
}
