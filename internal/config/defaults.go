package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration: a 30x20 board
// polled every 15ms, one move per 10 polls, 3% faster per food.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:  30,
			Height: 20,
		},
		Timing: TimingConfig{
			PollIntervalMS: 15,
			StepEvery:      10,
			Damping:        0.97,
			MinIntervalMS:  1,
		},
		Keys: map[string][]string{
			"up":    {"up", "w"},
			"down":  {"down", "s"},
			"left":  {"left", "a"},
			"right": {"right", "d"},
			"quit":  {"q", "ctrl+c"},
		},
		Display: DisplayConfig{
			Driver: "tea",
			Color:  true,
		},
	}
}
