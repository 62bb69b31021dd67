package snake

import (
	"fmt"

	"github.com/vovakirdan/termsnake/internal/core"
)

// Display is the render side of a driver.
type Display interface {
	// ClearAndHome clears the screen, hides the cursor and moves to the origin.
	ClearAndHome() error
	// Draw paints the board and the score.
	Draw(g *Grid, score int) error
}

// Glyph returns the two characters and color used for a cell.
func Glyph(c Cell) (string, core.Color) {
	switch c {
	case CellFloor:
		return "  ", core.ColorDefault
	case CellFood:
		return "* ", core.ColorRed
	case CellHead:
		return "S ", core.ColorBrightGreen
	case CellBody:
		return "s ", core.ColorGreen
	}
	panic(fmt.Sprintf("snake: no glyph for %v", c))
}

// FrameSize returns the character size of a painted frame for a board:
// a border column on each side, two characters per cell, a border row top
// and bottom, and the score line.
func FrameSize(width, height int) (w, h int) {
	return 2 * (width + 1), height + 3
}

// Paint draws the bordered board and score line into dst starting at the
// origin. dst should be at least FrameSize in each dimension; anything
// larger is left untouched.
func Paint(dst *core.Screen, g *Grid, score int) {
	fw, _ := FrameSize(g.Width(), g.Height())

	dst.DrawHLine(0, 0, fw, '-')
	for y := 0; y < g.Height(); y++ {
		row := y + 1
		dst.SetCell(0, row, core.Cell{Rune: '|'})
		for x := 0; x < g.Width(); x++ {
			glyph, color := Glyph(g.At(Position{X: x, Y: y}))
			for i, r := range glyph {
				dst.SetCell(1+2*x+i, row, core.Cell{Rune: r, Color: color})
			}
		}
		dst.SetCell(fw-1, row, core.Cell{Rune: '|'})
	}
	dst.DrawHLine(0, g.Height()+1, fw, '-')
	dst.DrawText(0, g.Height()+2, fmt.Sprintf("Score: %d", score))
}

// Frame renders a board into a fresh screen sized to FrameSize.
func Frame(g *Grid, score int) *core.Screen {
	w, h := FrameSize(g.Width(), g.Height())
	dst := core.NewScreen(w, h)
	Paint(dst, g, score)
	return dst
}
