package tcellui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/registry"
	"github.com/vovakirdan/termsnake/internal/snake"
)

func init() {
	registry.Register("tcell", func() registry.Driver { return driver{} })
}

type driver struct{}

func (driver) Name() string { return "tcell" }

func (driver) Description() string {
	return "tcell screen with terminfo support and resize handling"
}

// Run initializes a tcell screen and plays the session with snake.Run.
func (driver) Run(ctx context.Context, s *snake.Session, opts registry.RunOptions) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcellui: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcellui: init screen: %w", err)
	}
	defer screen.Fini()

	return play(ctx, screen, s, opts)
}

// play runs the session on an initialized screen. Split out so tests can
// use a simulation screen.
func play(ctx context.Context, screen tcell.Screen, s *snake.Session, opts registry.RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	km := opts.Keys
	if km == nil {
		km = core.DefaultKeyMap()
	}

	w, h := screen.Size()
	needW, needH := snake.FrameSize(s.Grid().Width(), s.Grid().Height())
	if w < needW || h < needH {
		return fmt.Errorf("tcellui: window %dx%d too small, need %dx%d", w, h, needW, needH)
	}

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(screen, events, done)

	logger.Info("tcell driver started", "width", w, "height", h, "seed", opts.Runtime.Seed)
	err := snake.Run(ctx, s, NewInput(events, screen, km), NewDisplay(screen, opts.Runtime.Color))
	logger.Info("tcell driver stopped", "state", s.State())
	return err
}
