package snake

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/termsnake/internal/core"
)

// scriptedInput returns queued actions, then ActionNone forever.
type scriptedInput struct {
	actions  []core.Action
	timeouts []time.Duration
}

func (s *scriptedInput) Poll(ctx context.Context, timeout time.Duration) (core.Action, error) {
	if err := ctx.Err(); err != nil {
		return core.ActionNone, err
	}
	s.timeouts = append(s.timeouts, timeout)
	if len(s.actions) == 0 {
		return core.ActionNone, nil
	}
	a := s.actions[0]
	s.actions = s.actions[1:]
	return a, nil
}

type recordingDisplay struct {
	clears  int
	scores  []int
	drawErr error
}

func (d *recordingDisplay) ClearAndHome() error {
	d.clears++
	return nil
}

func (d *recordingDisplay) Draw(_ *Grid, score int) error {
	if d.drawErr != nil {
		return d.drawErr
	}
	d.scores = append(d.scores, score)
	return nil
}

func TestRunUntilGameOver(t *testing.T) {
	// A 3x1 ring: the snake eats on its second step and bites its tail on the third.
	opts := DefaultOptions(&seqSource{vals: []int{0}})
	opts.Width, opts.Height = 3, 1
	opts.StepEvery = 1
	s := newTestSession(t, opts)

	in := &scriptedInput{}
	out := &recordingDisplay{}
	if err := Run(context.Background(), s, in, out); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if s.State() != StateGameOver {
		t.Errorf("State = %v, expected game over", s.State())
	}
	if s.Score() != 1 {
		t.Errorf("Score = %d, expected 1", s.Score())
	}
	if len(out.scores) != 2 || out.scores[0] != 0 || out.scores[1] != 1 {
		t.Errorf("drawn scores = %v, expected [0 1]", out.scores)
	}
	if out.clears != 3 {
		t.Errorf("clears = %d, expected 3", out.clears)
	}
	if len(in.timeouts) != 3 {
		t.Errorf("polled %d times, expected 3", len(in.timeouts))
	}
}

func TestRunQuit(t *testing.T) {
	opts := DefaultOptions(&seqSource{vals: []int{0}})
	opts.StepEvery = 2
	s := newTestSession(t, opts)

	in := &scriptedInput{actions: []core.Action{core.ActionNone, core.ActionDown, core.ActionQuit}}
	out := &recordingDisplay{}
	if err := Run(context.Background(), s, in, out); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if s.State() != StateQuit {
		t.Errorf("State = %v, expected quit", s.State())
	}
	if len(out.scores) != 1 {
		t.Errorf("drew %d frames, expected 1", len(out.scores))
	}
	if s.Snake().Direction() != DirDown {
		t.Errorf("Direction = %v, expected down", s.Snake().Direction())
	}
	if in.timeouts[0] != 15*time.Millisecond {
		t.Errorf("first poll timeout = %v, expected 15ms", in.timeouts[0])
	}
}

func TestRunCancelledContextQuits(t *testing.T) {
	s := newTestSession(t, DefaultOptions(&seqSource{vals: []int{0}}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := Run(ctx, s, &scriptedInput{}, &recordingDisplay{}); err != nil {
		t.Fatalf("Run() = %v, expected nil on cancellation", err)
	}
	if s.State() != StateQuit {
		t.Errorf("State = %v, expected quit", s.State())
	}
}

func TestRunPropagatesDrawError(t *testing.T) {
	s := newTestSession(t, DefaultOptions(&seqSource{vals: []int{0}}))
	boom := errors.New("broken pipe")

	err := Run(context.Background(), s, &scriptedInput{}, &recordingDisplay{drawErr: boom})
	if !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, expected it to wrap %v", err, boom)
	}
}

type failingInput struct{}

func (failingInput) Poll(context.Context, time.Duration) (core.Action, error) {
	return core.ActionNone, errors.New("stdin closed")
}

func TestRunPropagatesInputError(t *testing.T) {
	s := newTestSession(t, DefaultOptions(&seqSource{vals: []int{0}}))

	if err := Run(context.Background(), s, failingInput{}, &recordingDisplay{}); err == nil {
		t.Error("Run() should fail when input fails")
	}
}
