package snake

import (
	"context"
	"fmt"
	"time"

	"github.com/vovakirdan/termsnake/internal/core"
)

// InputSource is the input side of a driver.
type InputSource interface {
	// Poll waits at most timeout for one key and returns its action.
	// A timeout, or a key with no binding, yields ActionNone.
	Poll(ctx context.Context, timeout time.Duration) (core.Action, error)
}

// Run drives a session until the player quits, the snake collides, or ctx is
// cancelled (treated as quit). Each iteration polls input for the current
// interval, applies the action, then lets the session decide whether to step;
// every step is drawn.
func Run(ctx context.Context, s *Session, in InputSource, out Display) error {
	if err := out.ClearAndHome(); err != nil {
		return fmt.Errorf("snake: clear screen: %w", err)
	}

	for s.State() == StateRunning {
		action, err := in.Poll(ctx, s.Interval())
		if err != nil {
			if ctx.Err() != nil {
				s.HandleAction(core.ActionQuit)
				return nil
			}
			return fmt.Errorf("snake: poll input: %w", err)
		}
		if action != core.ActionNone {
			s.HandleAction(action)
			if s.State() != StateRunning {
				return nil
			}
		}

		res := s.Poll()
		if !res.Stepped || res.State != StateRunning {
			continue
		}
		if err := out.ClearAndHome(); err != nil {
			return fmt.Errorf("snake: clear screen: %w", err)
		}
		if err := out.Draw(s.Grid(), s.Score()); err != nil {
			return fmt.Errorf("snake: draw: %w", err)
		}
	}
	return nil
}
