package term

import (
	"bytes"
	"fmt"
	"io"

	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/snake"
)

const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	resetStyle  = "\x1b[0m"
)

// Display writes frames to a raw terminal. Raw mode turns off output
// post-processing, so rows end in "\r\n".
type Display struct {
	out   io.Writer
	color bool
	buf   bytes.Buffer
}

// NewDisplay creates a display writing to out.
func NewDisplay(out io.Writer, color bool) *Display {
	return &Display{out: out, color: color}
}

// ClearAndHome clears the screen, hides the cursor and moves to the origin.
func (d *Display) ClearAndHome() error {
	_, err := io.WriteString(d.out, clearScreen+hideCursor+cursorHome)
	return err
}

// Draw paints the board and score in a single write.
func (d *Display) Draw(g *snake.Grid, score int) error {
	frame := snake.Frame(g, score)

	d.buf.Reset()
	for y := range frame.Height() {
		if y > 0 {
			d.buf.WriteString("\r\n")
		}
		d.writeRow(frame, y)
	}
	d.buf.WriteString("\r\n")

	_, err := d.out.Write(d.buf.Bytes())
	return err
}

func (d *Display) writeRow(frame *core.Screen, y int) {
	if !d.color {
		d.buf.WriteString(frame.Row(y))
		return
	}
	current := core.ColorDefault
	for x := range frame.Width() {
		cell := frame.GetCell(x, y)
		if cell.Color != current {
			if code := cell.Color.ANSI(); code != 0 {
				fmt.Fprintf(&d.buf, "\x1b[%dm", code)
			} else {
				d.buf.WriteString(resetStyle)
			}
			current = cell.Color
		}
		d.buf.WriteRune(cell.Rune)
	}
	if current != core.ColorDefault {
		d.buf.WriteString(resetStyle)
	}
}

// Close shows the cursor again and resets colors.
func (d *Display) Close() error {
	_, err := io.WriteString(d.out, resetStyle+showCursor+"\r\n")
	return err
}
