package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/registry"
	"github.com/vovakirdan/termsnake/internal/snake"
)

// Lines under the board: HUD and help.
const footerLines = 2

func init() {
	registry.Register("tea", func() registry.Driver { return driver{} })
}

type driver struct{}

func (driver) Name() string { return "tea" }

func (driver) Description() string {
	return "Bubble Tea renderer with a speed HUD and key help (default)"
}

// Run starts the Bubble Tea program for the session.
func (driver) Run(ctx context.Context, s *snake.Session, opts registry.RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	p := tea.NewProgram(
		NewModel(s, opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	logger.Info("tea driver started", "seed", opts.Runtime.Seed)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		s.HandleAction(core.ActionQuit)
		err = nil
	}
	logger.Info("tea driver stopped", "state", s.State())
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// Model is the Bubble Tea model for one snake session.
// Key messages are applied immediately; PollMsg advances the poll cadence.
type Model struct {
	session  *snake.Session
	keys     KeyMap
	help     help.Model
	frame    *core.Screen
	color    bool
	width    int
	height   int
	quitting bool
	log      *log.Logger
}

// NewModel creates a model for s. The frame stays empty until the first step.
func NewModel(s *snake.Session, opts registry.RunOptions) Model {
	km := opts.Keys
	if km == nil {
		km = core.DefaultKeyMap()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		session: s,
		keys:    NewKeyMap(km),
		help:    help.New(),
		color:   opts.Runtime.Color,
		width:   opts.Runtime.ScreenW,
		height:  opts.Runtime.ScreenH,
		log:     logger,
	}
}

// Init starts the poll loop.
func (m Model) Init() tea.Cmd {
	return pollCmd(m.session.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case PollMsg:
		return m.handlePoll()
	}

	return m, nil
}

// handleKey applies a directional or quit intent straight to the session.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if err := m.saveScreenshot(); err != nil {
			m.log.Warn("screenshot failed", "err", err)
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}
	m.session.HandleAction(action)
	if m.session.State() != snake.StateRunning {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handlePoll runs one poll of the session and re-arms the tick.
// While the window is too small the session is paused.
func (m Model) handlePoll() (tea.Model, tea.Cmd) {
	if m.session.State() != snake.StateRunning {
		m.quitting = true
		return m, tea.Quit
	}
	if m.tooSmall() {
		return m, pollCmd(m.session.Interval())
	}

	res := m.session.Poll()
	if res.State != snake.StateRunning {
		m.quitting = true
		return m, tea.Quit
	}
	if res.Stepped {
		m.frame = snake.Frame(m.session.Grid(), m.session.Score())
	}
	return m, pollCmd(m.session.Interval())
}

// frameSize is the space the board plus footer needs.
func (m Model) frameSize() (int, int) {
	g := m.session.Grid()
	w, h := snake.FrameSize(g.Width(), g.Height())
	return w, h + footerLines
}

// tooSmall reports whether the known window cannot hold the frame.
func (m Model) tooSmall() bool {
	if m.width == 0 || m.height == 0 {
		return false
	}
	w, h := m.frameSize()
	return m.width < w || m.height < h
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.tooSmall() {
		w, h := m.frameSize()
		return warningStyle.Render("Window too small") + "\n" +
			fmt.Sprintf("need %dx%d, have %dx%d", w, h, m.width, m.height)
	}
	if m.frame == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.frame, m.color))
	sb.WriteRune('\n')
	sb.WriteString(hudStyle.Render(m.hud()))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// hud describes speed and length under the board.
func (m Model) hud() string {
	perSecond := float64(time.Second) / float64(m.session.StepInterval())
	return fmt.Sprintf("Speed: %.1f steps/s  Length: %d", perSecond, m.session.Snake().Len()+1)
}

// saveScreenshot writes the last frame as plain text under ~/.termsnake/screenshots.
func (m Model) saveScreenshot() error {
	if m.frame == nil {
		return nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".termsnake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	filename := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.frame.String()+"\n"), 0o600); err != nil {
		return err
	}
	m.log.Info("screenshot saved", "path", path)
	return nil
}
