package snake

import "time"

// Snapshot captures the session state for determinism checks and logging.
type Snapshot struct {
	Polls    uint64
	Steps    uint64
	Score    int
	SnakeLen int
	Head     Position
	Dir      Direction
	Food     Position
	Interval time.Duration
	State    State
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Polls:    s.polls,
		Steps:    s.steps,
		Score:    s.snake.Score(),
		SnakeLen: s.snake.Len(),
		Head:     s.snake.Head(),
		Dir:      s.snake.Direction(),
		Food:     s.food.Position(),
		Interval: s.interval,
		State:    s.state,
	}
}
