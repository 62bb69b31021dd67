package snake

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/termsnake/internal/core"
)

func newTestSession(t *testing.T, opts Options) *Session {
	t.Helper()
	s, err := NewSession(opts)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s
}

func TestNewSessionValidation(t *testing.T) {
	src := &seqSource{vals: []int{0}}

	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"board too narrow", func(o *Options) { o.Width = 2 }},
		{"zero height", func(o *Options) { o.Height = 0 }},
		{"zero poll interval", func(o *Options) { o.PollInterval = 0 }},
		{"zero step_every", func(o *Options) { o.StepEvery = 0 }},
		{"zero damping", func(o *Options) { o.Damping = 0 }},
		{"damping above one", func(o *Options) { o.Damping = 1.5 }},
		{"negative min interval", func(o *Options) { o.MinInterval = -time.Millisecond }},
		{"min interval above poll interval", func(o *Options) {
			o.PollInterval = 5 * time.Millisecond
			o.MinInterval = 10 * time.Millisecond
		}},
		{"no source", func(o *Options) { o.Source = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions(src)
			tt.mutate(&opts)
			_, err := NewSession(opts)
			if !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("NewSession() error = %v, expected ErrInvalidOptions", err)
			}
		})
	}
}

func TestEndToEndFirstStep(t *testing.T) {
	src := &seqSource{vals: []int{0, 0, 7, 3}}
	s := newTestSession(t, DefaultOptions(src))

	// Initial food came from the first two values; put it in front of the head.
	s.food.pos = Position{16, 10}

	res := s.Step()

	if !res.Stepped || !res.Ate || res.State != StateRunning {
		t.Fatalf("Step() = %+v, expected a running step that ate", res)
	}
	if s.Snake().Head() != (Position{16, 10}) {
		t.Errorf("Head = %v, expected (16,10)", s.Snake().Head())
	}
	segs := s.Snake().Segments()
	if len(segs) != 2 || segs[0] != (Position{15, 10}) || segs[1] != (Position{14, 10}) {
		t.Errorf("Segments = %v, expected [(15,10) (14,10)]", segs)
	}
	if s.Snake().DetectSelfCollision() {
		t.Error("no collision expected")
	}
	if s.Score() != 1 {
		t.Errorf("Score = %d, expected 1", s.Score())
	}
	if s.Food().Position() != (Position{7, 3}) {
		t.Errorf("Food = %v, expected regenerated at (7,3)", s.Food().Position())
	}
}

func TestStepRebuildsGrid(t *testing.T) {
	src := &seqSource{vals: []int{2, 2}}
	s := newTestSession(t, DefaultOptions(src))
	s.Step()

	g := s.Grid()
	if g.At(Position{16, 10}) != CellHead {
		t.Errorf("head cell = %v", g.At(Position{16, 10}))
	}
	if g.At(Position{15, 10}) != CellBody || g.At(Position{14, 10}) != CellBody {
		t.Error("body cells not painted")
	}
	if g.At(Position{2, 2}) != CellFood {
		t.Errorf("food cell = %v", g.At(Position{2, 2}))
	}
	if g.At(Position{13, 10}) != CellFloor {
		t.Error("dropped tail should be floor")
	}
	if n := g.Count(CellFloor); n != 30*20-4 {
		t.Errorf("floor cells = %d, expected %d", n, 30*20-4)
	}
}

func TestHeadDrawnOverFoodAndBody(t *testing.T) {
	src := &seqSource{vals: []int{15, 10}}
	s := newTestSession(t, DefaultOptions(src))

	// Food spawned under the head.
	if got := s.Grid().At(Position{15, 10}); got != CellHead {
		t.Errorf("cell under head = %v, expected head", got)
	}
}

func TestPollStepsEveryNthCall(t *testing.T) {
	opts := DefaultOptions(&seqSource{vals: []int{0}})
	opts.StepEvery = 10
	s := newTestSession(t, opts)

	var stepped []int
	for i := 0; i < 25; i++ {
		if s.Poll().Stepped {
			stepped = append(stepped, i)
		}
	}

	expected := []int{0, 10, 20}
	if len(stepped) != len(expected) {
		t.Fatalf("stepped on polls %v, expected %v", stepped, expected)
	}
	for i := range expected {
		if stepped[i] != expected[i] {
			t.Errorf("stepped on polls %v, expected %v", stepped, expected)
			break
		}
	}

	snap := s.Snapshot()
	if snap.Polls != 25 || snap.Steps != 3 {
		t.Errorf("Snapshot polls=%d steps=%d, expected 25 and 3", snap.Polls, snap.Steps)
	}
}

func TestEatingSpeedsUp(t *testing.T) {
	opts := DefaultOptions(&seqSource{vals: []int{0}})
	s := newTestSession(t, opts)

	s.food.pos = Position{16, 10}
	s.Step()

	expected := time.Duration(float64(15*time.Millisecond) * 0.97)
	if s.Interval() != expected {
		t.Errorf("Interval = %v, expected %v", s.Interval(), expected)
	}
	if s.StepInterval() != expected*10 {
		t.Errorf("StepInterval = %v, expected %v", s.StepInterval(), expected*10)
	}
}

func TestIntervalFloor(t *testing.T) {
	opts := DefaultOptions(&seqSource{vals: []int{0}})
	opts.PollInterval = 2 * time.Millisecond
	opts.Damping = 0.1
	opts.MinInterval = time.Millisecond
	s := newTestSession(t, opts)

	s.food.pos = Position{16, 10}
	s.Step()

	if s.Interval() != time.Millisecond {
		t.Errorf("Interval = %v, expected the 1ms floor", s.Interval())
	}
}

func TestEatingNeverSlowsDown(t *testing.T) {
	opts := DefaultOptions(&seqSource{vals: []int{0}})
	opts.PollInterval = 5 * time.Millisecond
	opts.MinInterval = 5 * time.Millisecond
	opts.StepEvery = 1
	s := newTestSession(t, opts)

	s.food.pos = Position{16, 10}
	if res := s.Step(); !res.Ate {
		t.Fatal("expected the step to eat")
	}
	if s.Interval() != 5*time.Millisecond {
		t.Errorf("Interval = %v, expected to stay at 5ms", s.Interval())
	}

	// A floor above the current interval must not raise it.
	s.opts.MinInterval = 10 * time.Millisecond
	s.food.pos = s.snake.Head().Step(s.snake.Direction(), opts.Width, opts.Height)
	if res := s.Step(); !res.Ate {
		t.Fatal("expected the second step to eat")
	}
	if s.Interval() > 5*time.Millisecond {
		t.Errorf("Interval = %v, eating raised it above 5ms", s.Interval())
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	opts := DefaultOptions(&seqSource{vals: []int{0}})
	s := newTestSession(t, opts)

	// A ring about to close on itself.
	s.snake = NewSnakeAt(30, 20, Position{5, 5}, DirUp,
		[]Position{{6, 5}, {6, 4}, {5, 4}, {4, 4}})
	s.snake.score = 2

	res := s.Step()
	if res.State != StateGameOver || s.State() != StateGameOver {
		t.Fatalf("State = %v, expected game over", s.State())
	}
	if n := s.Grid().Count(CellFloor); n != 30*20 {
		t.Errorf("grid should stay cleared after a collision, %d floor cells", n)
	}

	before := s.Snapshot()
	s.HandleAction(core.ActionLeft)
	if res := s.Poll(); res.Stepped {
		t.Error("Poll stepped after game over")
	}
	if s.Step().Stepped {
		t.Error("Step ran after game over")
	}
	if after := s.Snapshot(); after != before {
		t.Errorf("state changed after game over: %+v -> %+v", before, after)
	}
}

func TestHandleAction(t *testing.T) {
	s := newTestSession(t, DefaultOptions(&seqSource{vals: []int{0}}))

	s.HandleAction(core.ActionLeft)
	if s.Snake().Direction() != DirRight {
		t.Error("reversal should be ignored")
	}
	s.HandleAction(core.ActionDown)
	if s.Snake().Direction() != DirDown {
		t.Errorf("Direction = %v, expected down", s.Snake().Direction())
	}
	s.HandleAction(core.ActionNone)
	if s.State() != StateRunning {
		t.Error("ActionNone changed state")
	}

	s.HandleAction(core.ActionQuit)
	if s.State() != StateQuit {
		t.Errorf("State = %v, expected quit", s.State())
	}
	s.HandleAction(core.ActionUp)
	if s.Snake().Direction() != DirDown {
		t.Error("actions after quit should be ignored")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		opts := DefaultOptions(rand.New(rand.NewSource(12345)))
		opts.StepEvery = 1
		s, err := NewSession(opts)
		if err != nil {
			t.Fatalf("NewSession() failed: %v", err)
		}
		for i := 0; i < 300 && s.State() == StateRunning; i++ {
			switch i % 40 {
			case 5:
				s.HandleAction(core.ActionDown)
			case 15:
				s.HandleAction(core.ActionLeft)
			case 25:
				s.HandleAction(core.ActionUp)
			case 35:
				s.HandleAction(core.ActionRight)
			}
			s.Poll()
		}
		return s.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if snap1 != snap2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", snap1, snap2)
	}
}

func TestGridRebuildScenario(t *testing.T) {
	g := NewGrid(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			g.PlaceFood(Position{x, y})
		}
	}

	g.Clear()
	g.PlaceSegments([]Position{{0, 0}})
	g.PlaceHead(Position{2, 1})

	if g.Count(CellFloor) != 10 {
		t.Errorf("floor cells = %d, expected 10", g.Count(CellFloor))
	}
	if g.At(Position{0, 0}) != CellBody || g.At(Position{2, 1}) != CellHead {
		t.Error("placed cells missing")
	}
}

func TestGridPanicsOutOfBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an out-of-range position")
		}
	}()
	NewGrid(3, 3).PlaceHead(Position{3, 0})
}
