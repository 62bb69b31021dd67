package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty parses a preset name. An empty name means normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, name)
	}
}

// ApplySnakePreset modifies the timing for a difficulty preset.
// Normal keeps the configured values.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.PollIntervalMS *= 4.0 / 3.0
		cfg.Timing.Damping = dampingTowardOne(cfg.Timing.Damping, 0.5)
	case DifficultyHard:
		cfg.Timing.PollIntervalMS *= 2.0 / 3.0
		cfg.Timing.Damping = dampingTowardOne(cfg.Timing.Damping, 1.5)
	case DifficultyFixed:
		cfg.Timing.Damping = 1.0
	}
}

// dampingTowardOne scales the per-food speed-up (1 - damping) by factor,
// keeping the result inside (0, 1].
func dampingTowardOne(damping, factor float64) float64 {
	d := 1 - (1-damping)*factor
	if d <= 0 {
		return 0.01
	}
	if d > 1 {
		return 1
	}
	return d
}
