package term

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/muesli/cancelreader"
	xterm "golang.org/x/term"

	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/registry"
	"github.com/vovakirdan/termsnake/internal/snake"
)

// ErrNotTerminal is returned when stdin or stdout is not a terminal.
var ErrNotTerminal = errors.New("term: not a terminal")

func init() {
	registry.Register("term", func() registry.Driver { return driver{} })
}

type driver struct{}

func (driver) Name() string { return "term" }

func (driver) Description() string {
	return "Raw terminal with ANSI escapes, closest to the classic renderer"
}

// Run puts the terminal in raw mode and plays the session with snake.Run.
func (driver) Run(ctx context.Context, s *snake.Session, opts registry.RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	km := opts.Keys
	if km == nil {
		km = core.DefaultKeyMap()
	}

	inFd := int(os.Stdin.Fd())
	outFd := int(os.Stdout.Fd())
	if !xterm.IsTerminal(inFd) || !xterm.IsTerminal(outFd) {
		return ErrNotTerminal
	}
	if err := checkSize(outFd, s.Grid()); err != nil {
		return err
	}

	state, err := xterm.MakeRaw(inFd)
	if err != nil {
		return fmt.Errorf("term: enable raw mode: %w", err)
	}
	defer func() {
		if err := xterm.Restore(inFd, state); err != nil {
			logger.Error("restore terminal", "err", err)
		}
	}()

	display := NewDisplay(os.Stdout, opts.Runtime.Color)
	defer func() {
		if err := display.Close(); err != nil {
			logger.Error("reset terminal", "err", err)
		}
	}()

	stdin, err := cancelreader.NewReader(os.Stdin)
	if err != nil {
		return fmt.Errorf("term: stdin reader: %w", err)
	}
	keys := make(chan string, 16)
	errs := make(chan error, 1)
	reader := startKeyReader(stdin, keys, errs)
	defer func() {
		if !reader.Stop() {
			logger.Warn("stdin read could not be cancelled")
		}
	}()

	logger.Info("term driver started", "seed", opts.Runtime.Seed)
	err = snake.Run(ctx, s, NewInput(keys, errs, km), display)
	logger.Info("term driver stopped", "state", s.State())
	return err
}

// checkSize refuses to start when the frame cannot fit the terminal.
func checkSize(fd int, g *snake.Grid) error {
	w, h, err := xterm.GetSize(fd)
	if err != nil {
		return fmt.Errorf("term: get size: %w", err)
	}
	needW, needH := snake.FrameSize(g.Width(), g.Height())
	if w < needW || h < needH {
		return fmt.Errorf("term: window %dx%d too small, need %dx%d", w, h, needW, needH)
	}
	return nil
}
