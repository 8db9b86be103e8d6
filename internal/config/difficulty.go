package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset.
// The empty string maps to DifficultyNormal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalid, s)
	}
}

// IsFixedPreset returns true if the preset disables speed progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.ObstacleRate *= 0.7
		cfg.Health.ObstacleDamage /= 2
		cfg.Scoring.ComboTimeout += time.Second
	case DifficultyHard:
		cfg.Spawn.ObstacleRate *= 1.4
		cfg.Spawn.BaseSpeed *= 1.25
		cfg.Scoring.ComboTimeout = cfg.Scoring.ComboTimeout * 3 / 4
	case DifficultyFixed:
		// Levels still count up, the world just never speeds up
		cfg.Progression.SpeedIncrement = 0
	}
}
