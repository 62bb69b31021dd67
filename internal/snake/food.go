package snake

// CoordSource yields uniformly distributed integers in [0, n).
// *rand.Rand satisfies it; tests substitute fixed sequences.
type CoordSource interface {
	Intn(n int) int
}

// Food holds the single food position on the board.
type Food struct {
	pos    Position
	width  int
	height int
	src    CoordSource
}

// NewFood creates food at a random position.
func NewFood(width, height int, src CoordSource) *Food {
	f := &Food{
		width:  width,
		height: height,
		src:    src,
	}
	f.Regenerate()
	return f
}

// Position returns where the food currently is.
func (f *Food) Position() Position {
	return f.pos
}

// Regenerate moves the food to a uniformly random cell. The snake is not
// consulted, so the food may land under its body.
func (f *Food) Regenerate() {
	x := f.src.Intn(f.width)
	y := f.src.Intn(f.height)
	f.pos = Position{X: x, Y: y}
}
