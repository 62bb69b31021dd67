// Package snake implements the game model: grid, food, snake entity and the
// session that sequences a simulation step. It has no terminal dependencies;
// drivers in internal/platform feed it actions and draw its grid.
package snake

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termsnake/internal/core"
)

// ErrInvalidOptions is returned by NewSession for unusable options.
var ErrInvalidOptions = errors.New("snake: invalid session options")

// State is the session lifecycle state. GameOver and Quit are terminal.
type State int

const (
	StateRunning State = iota
	StateGameOver
	StateQuit
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Options configure a session. Board dimensions are fixed for its lifetime.
type Options struct {
	Width  int
	Height int

	// PollInterval is how long one input poll may wait.
	PollInterval time.Duration
	// StepEvery is how many polls make one simulation step.
	StepEvery int
	// Damping multiplies PollInterval each time food is eaten.
	Damping float64
	// MinInterval bounds the speed-up; zero means no bound.
	MinInterval time.Duration

	// Source places food. Required.
	Source CoordSource
	// Logger receives session events. Nil discards them.
	Logger *log.Logger
}

// DefaultOptions returns the classic 30x20 board polled every 15ms with a
// step on every 10th poll.
func DefaultOptions(src CoordSource) Options {
	return Options{
		Width:        30,
		Height:       20,
		PollInterval: 15 * time.Millisecond,
		StepEvery:    10,
		Damping:      0.97,
		MinInterval:  time.Millisecond,
		Source:       src,
	}
}

func (o Options) validate() error {
	switch {
	case o.Width < InitialLength+1 || o.Height < 1:
		return fmt.Errorf("%w: board %dx%d is too small", ErrInvalidOptions, o.Width, o.Height)
	case o.PollInterval <= 0:
		return fmt.Errorf("%w: poll interval must be positive", ErrInvalidOptions)
	case o.StepEvery < 1:
		return fmt.Errorf("%w: step_every must be at least 1", ErrInvalidOptions)
	case o.Damping <= 0 || o.Damping > 1:
		return fmt.Errorf("%w: damping %v outside (0, 1]", ErrInvalidOptions, o.Damping)
	case o.MinInterval < 0:
		return fmt.Errorf("%w: negative min interval", ErrInvalidOptions)
	case o.MinInterval > o.PollInterval:
		return fmt.Errorf("%w: min interval %v above poll interval %v", ErrInvalidOptions, o.MinInterval, o.PollInterval)
	case o.Source == nil:
		return fmt.Errorf("%w: no coordinate source", ErrInvalidOptions)
	}
	return nil
}

// StepResult describes what one Poll did.
type StepResult struct {
	Stepped bool  // A simulation step ran
	Ate     bool  // The head reached the food during that step
	State   State // State after the poll
}

// Session owns the grid, snake and food of one game and runs the
// poll/step cadence. It is not safe for concurrent use.
type Session struct {
	opts     Options
	grid     *Grid
	snake    *Snake
	food     *Food
	polls    uint64
	steps    uint64
	interval time.Duration
	state    State
	log      *log.Logger
}

// NewSession starts a game with the snake in the middle of the board.
func NewSession(opts Options) (*Session, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		opts:     opts,
		grid:     NewGrid(opts.Width, opts.Height),
		snake:    NewSnake(opts.Width, opts.Height),
		food:     NewFood(opts.Width, opts.Height, opts.Source),
		interval: opts.PollInterval,
		log:      logger,
	}
	s.rebuild()
	s.log.Debug("session started", "width", opts.Width, "height", opts.Height,
		"interval", s.interval, "step_every", opts.StepEvery)
	return s, nil
}

// Grid returns the board as of the last step.
func (s *Session) Grid() *Grid {
	return s.grid
}

// Snake returns the player entity.
func (s *Session) Snake() *Snake {
	return s.snake
}

// Food returns the food.
func (s *Session) Food() *Food {
	return s.food
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.snake.Score()
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Interval returns the current poll interval.
func (s *Session) Interval() time.Duration {
	return s.interval
}

// StepInterval is the wall time of one simulation step at the current speed.
func (s *Session) StepInterval() time.Duration {
	return s.interval * time.Duration(s.opts.StepEvery)
}

// HandleAction applies one input intent immediately. Directions go through
// the snake's reversal guard; quit ends the session.
func (s *Session) HandleAction(a core.Action) {
	if s.state != StateRunning {
		return
	}
	switch a {
	case core.ActionUp:
		s.turn(DirUp)
	case core.ActionDown:
		s.turn(DirDown)
	case core.ActionLeft:
		s.turn(DirLeft)
	case core.ActionRight:
		s.turn(DirRight)
	case core.ActionQuit:
		s.state = StateQuit
		s.log.Info("quit", "score", s.Score(), "steps", s.steps)
	}
}

func (s *Session) turn(d Direction) {
	if !s.snake.SetDirection(d) {
		s.log.Debug("turn rejected", "from", s.snake.Direction(), "to", d)
	}
}

// Poll closes one input-poll iteration. Every StepEvery-th call, starting
// with the first, runs a simulation step.
func (s *Session) Poll() StepResult {
	if s.state != StateRunning {
		return StepResult{State: s.state}
	}
	var res StepResult
	if s.polls%uint64(s.opts.StepEvery) == 0 {
		res = s.Step()
	}
	s.polls++
	res.State = s.state
	return res
}

// Step runs one simulation step: move, check collision, check food, and
// rebuild the grid. On collision the grid is left cleared and the session
// ends.
func (s *Session) Step() StepResult {
	if s.state != StateRunning {
		return StepResult{State: s.state}
	}
	s.steps++
	s.grid.Clear()
	s.snake.Advance()

	if s.snake.DetectSelfCollision() {
		s.state = StateGameOver
		s.log.Info("game over", "score", s.Score(), "steps", s.steps, "head", s.snake.Head())
		return StepResult{Stepped: true, State: s.state}
	}

	ate := false
	if s.snake.Head() == s.food.Position() {
		ate = true
		s.food.Regenerate()
		s.snake.ConsumeFood()
		s.interval = s.nextInterval()
		s.log.Debug("food eaten", "score", s.Score(), "food", s.food.Position(), "interval", s.interval)
	}

	s.rebuild()
	return StepResult{Stepped: true, Ate: ate, State: s.state}
}

// nextInterval applies damping. The floor never lifts the interval above
// its current value, so eating never slows the game.
func (s *Session) nextInterval() time.Duration {
	next := time.Duration(float64(s.interval) * s.opts.Damping)
	if next < s.opts.MinInterval {
		next = s.opts.MinInterval
	}
	if next > s.interval {
		next = s.interval
	}
	if next <= 0 {
		next = 1
	}
	return next
}

// rebuild paints food, then body, then head, so the head always shows.
func (s *Session) rebuild() {
	s.grid.Clear()
	s.grid.PlaceFood(s.food.Position())
	s.grid.PlaceSegments(s.snake.segments)
	s.grid.PlaceHead(s.snake.Head())
}
