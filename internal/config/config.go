// Package config provides YAML-based configuration loading and difficulty
// presets for the game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/termsnake/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// SnakeConfig contains all game configuration.
type SnakeConfig struct {
	Board   BoardConfig         `yaml:"board"`
	Timing  TimingConfig        `yaml:"timing"`
	Keys    map[string][]string `yaml:"keys"`
	Display DisplayConfig       `yaml:"display"`
}

// BoardConfig defines the board size. It is read from the config file only;
// there is no flag to change it.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the two clocks: input polling, and the number of
// polls that make one simulation step.
type TimingConfig struct {
	PollIntervalMS float64 `yaml:"poll_interval_ms"`
	StepEvery      int     `yaml:"step_every"`
	Damping        float64 `yaml:"damping"`
	MinIntervalMS  float64 `yaml:"min_interval_ms"`
}

// DisplayConfig selects the terminal driver.
type DisplayConfig struct {
	Driver string `yaml:"driver"`
	Color  bool   `yaml:"color"`
}

// PollInterval returns the configured poll interval.
func (t TimingConfig) PollInterval() time.Duration {
	return msToDuration(t.PollIntervalMS)
}

// MinInterval returns the lower bound for the poll interval.
func (t TimingConfig) MinInterval() time.Duration {
	return msToDuration(t.MinIntervalMS)
}

func msToDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

// KeyMap converts the key bindings into a core.KeyMap.
// An empty bindings section falls back to the default keys.
func (c SnakeConfig) KeyMap() (core.KeyMap, error) {
	if len(c.Keys) == 0 {
		return core.DefaultKeyMap(), nil
	}
	km, unknown := core.NewKeyMap(c.Keys)
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: unknown actions in keys: %v", ErrInvalidConfig, unknown)
	}
	return km, nil
}

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Board.Width < 3:
		return fmt.Errorf("%w: board.width must be at least 3, got %d", ErrInvalidConfig, c.Board.Width)
	case c.Board.Height < 1:
		return fmt.Errorf("%w: board.height must be at least 1, got %d", ErrInvalidConfig, c.Board.Height)
	case c.Timing.PollIntervalMS <= 0:
		return fmt.Errorf("%w: timing.poll_interval_ms must be positive", ErrInvalidConfig)
	case c.Timing.StepEvery < 1:
		return fmt.Errorf("%w: timing.step_every must be at least 1", ErrInvalidConfig)
	case c.Timing.Damping <= 0 || c.Timing.Damping > 1:
		return fmt.Errorf("%w: timing.damping must be in (0, 1], got %v", ErrInvalidConfig, c.Timing.Damping)
	case c.Timing.MinIntervalMS < 0:
		return fmt.Errorf("%w: timing.min_interval_ms must not be negative", ErrInvalidConfig)
	case c.Timing.MinIntervalMS > c.Timing.PollIntervalMS:
		return fmt.Errorf("%w: timing.min_interval_ms %v is above poll_interval_ms %v",
			ErrInvalidConfig, c.Timing.MinIntervalMS, c.Timing.PollIntervalMS)
	}
	_, err := c.KeyMap()
	return err
}
