// Package tcellui is the tcell display driver. A single goroutine pumps
// tcell events into a channel; the game loop reads it with a timeout.
package tcellui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/snake"
)

// Display draws frames on a tcell screen.
type Display struct {
	screen tcell.Screen
	color  bool
}

// NewDisplay creates a display on an initialized screen.
func NewDisplay(screen tcell.Screen, color bool) *Display {
	return &Display{screen: screen, color: color}
}

// ClearAndHome clears the screen and hides the cursor.
func (d *Display) ClearAndHome() error {
	d.screen.HideCursor()
	d.screen.Clear()
	return nil
}

// Draw paints the board and score and shows the result.
func (d *Display) Draw(g *snake.Grid, score int) error {
	frame := snake.Frame(g, score)
	for y := range frame.Height() {
		for x := range frame.Width() {
			cell := frame.GetCell(x, y)
			d.screen.SetContent(x, y, cell.Rune, nil, styleFor(cell.Color, d.color))
		}
	}
	d.screen.Show()
	return nil
}

// styleFor maps a board color to a tcell style.
func styleFor(c core.Color, color bool) tcell.Style {
	if !color {
		return tcell.StyleDefault
	}
	switch c {
	case core.ColorRed:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	case core.ColorGreen:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case core.ColorBrightGreen:
		return tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	default:
		return tcell.StyleDefault
	}
}
