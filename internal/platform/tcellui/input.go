package tcellui

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/termsnake/internal/core"
)

// ErrScreenClosed is returned when the event stream ends.
var ErrScreenClosed = errors.New("tcellui: screen closed")

// Input reads events forwarded by pumpEvents.
type Input struct {
	events <-chan tcell.Event
	screen tcell.Screen
	keymap core.KeyMap
}

// NewInput creates an input source. screen may be nil; it is only used to
// redraw after a resize.
func NewInput(events <-chan tcell.Event, screen tcell.Screen, km core.KeyMap) *Input {
	return &Input{events: events, screen: screen, keymap: km}
}

// Poll waits up to timeout for one event. Non-key events yield ActionNone.
func (in *Input) Poll(ctx context.Context, timeout time.Duration) (core.Action, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return core.ActionNone, ctx.Err()
	case <-timer.C:
		return core.ActionNone, nil
	case ev, ok := <-in.events:
		if !ok {
			return core.ActionNone, ErrScreenClosed
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			return in.keymap.Lookup(keyName(ev.Key(), ev.Rune())), nil
		case *tcell.EventResize:
			if in.screen != nil {
				in.screen.Sync()
			}
		}
		return core.ActionNone, nil
	}
}

// keyName spells a tcell key the way core.KeyMap expects it.
func keyName(k tcell.Key, r rune) string {
	switch k {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyRune:
		return string(r)
	}
	return ""
}

// pumpEvents forwards screen events until the screen is finalized
// (PollEvent returns nil) or done is closed.
func pumpEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
