package snake

import "fmt"

// Cell is what a grid square shows. Cells are derived from the snake and the
// food on every step and never drive game logic.
type Cell uint8

const (
	CellFloor Cell = iota
	CellHead
	CellBody
	CellFood
)

func (c Cell) String() string {
	switch c {
	case CellFloor:
		return "floor"
	case CellHead:
		return "head"
	case CellBody:
		return "body"
	case CellFood:
		return "food"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// Grid is a fixed-size board of cells. It is allocated once and rewritten
// in place on every simulation step.
type Grid struct {
	width  int
	height int
	cells  []Cell // row-major
}

// NewGrid allocates a width x height grid of floor cells.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// index panics on coordinates outside the board: every position reaching the
// grid has already been wrapped, so anything else is a bug.
func (g *Grid) index(p Position) int {
	if p.X < 0 || p.X >= g.width || p.Y < 0 || p.Y >= g.height {
		panic(fmt.Sprintf("snake: position (%d,%d) outside %dx%d grid", p.X, p.Y, g.width, g.height))
	}
	return p.Y*g.width + p.X
}

// At returns the cell at p.
func (g *Grid) At(p Position) Cell {
	return g.cells[g.index(p)]
}

// Set writes a single cell.
func (g *Grid) Set(p Position, c Cell) {
	g.cells[g.index(p)] = c
}

// Clear resets every cell to floor.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = CellFloor
	}
}

// PlaceHead marks the snake's head.
func (g *Grid) PlaceHead(p Position) {
	g.Set(p, CellHead)
}

// PlaceFood marks the food.
func (g *Grid) PlaceFood(p Position) {
	g.Set(p, CellFood)
}

// PlaceSegments marks every listed position as body.
func (g *Grid) PlaceSegments(segments []Position) {
	for _, p := range segments {
		g.Set(p, CellBody)
	}
}

// Count returns how many cells currently hold c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, cell := range g.cells {
		if cell == c {
			n++
		}
	}
	return n
}
