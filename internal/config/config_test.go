package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	want := DefaultRunnerConfig()
	if cfg.Physics != want.Physics {
		t.Errorf("physics = %+v, expected %+v", cfg.Physics, want.Physics)
	}
	if cfg.Spawn != want.Spawn {
		t.Errorf("spawn = %+v, expected %+v", cfg.Spawn, want.Spawn)
	}
	if cfg.Scoring != want.Scoring {
		t.Errorf("scoring = %+v, expected %+v", cfg.Scoring, want.Scoring)
	}
	if cfg.Effects != want.Effects {
		t.Errorf("effects = %+v, expected %+v", cfg.Effects, want.Effects)
	}
	if cfg.Progression != want.Progression {
		t.Errorf("progression = %+v, expected %+v", cfg.Progression, want.Progression)
	}
	if cfg.Timing != want.Timing {
		t.Errorf("timing = %+v, expected %+v", cfg.Timing, want.Timing)
	}
	if len(cfg.Lanes.Positions) != LaneCount {
		t.Fatalf("expected %d lanes, got %d", LaneCount, len(cfg.Lanes.Positions))
	}
	for i, p := range want.Lanes.Positions {
		if cfg.Lanes.Positions[i] != p {
			t.Errorf("lane %d = %f, expected %f", i, cfg.Lanes.Positions[i], p)
		}
	}
}

func TestParsePartialOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("scoring:\n  combo_timeout: 750ms\nhealth:\n  max: 60\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Scoring.ComboTimeout != 750*time.Millisecond {
		t.Errorf("combo timeout = %v, expected 750ms", cfg.Scoring.ComboTimeout)
	}
	if cfg.Health.Max != 60 {
		t.Errorf("health max = %d, expected 60", cfg.Health.Max)
	}
	// Untouched sections keep defaults
	if cfg.Scoring.PickupValue != 10 {
		t.Errorf("pickup value = %d, expected default 10", cfg.Scoring.PickupValue)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
	}{
		{"two lanes", func(c *RunnerConfig) { c.Lanes.Positions = []float64{-1, 1} }},
		{"unordered lanes", func(c *RunnerConfig) { c.Lanes.Positions = []float64{3, 0, -3} }},
		{"zero transition", func(c *RunnerConfig) { c.Lanes.TransitionSpeed = 0 }},
		{"invincible outlasts power-up", func(c *RunnerConfig) { c.Effects.InvincibleDuration = 10 * time.Second }},
		{"zero level threshold", func(c *RunnerConfig) { c.Progression.LevelUpScore = 0 }},
		{"spawn rate above one", func(c *RunnerConfig) { c.Spawn.ObstacleRate = 1.5 }},
		{"bonus chance negative", func(c *RunnerConfig) { c.Scoring.BonusPowerUpChance = -0.1 }},
		{"no health", func(c *RunnerConfig) { c.Health.Max = 0 }},
		{"zero nominal rate", func(c *RunnerConfig) { c.Timing.NominalRate = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}

	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, []byte("progression:\n  level_up_score: 500\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.Progression.LevelUpScore != 500 {
		t.Errorf("level up score = %d, expected 500", cfg.Progression.LevelUpScore)
	}
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	_, err := LoadRunner(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadRunnerInvalidCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, []byte("lanes:\n  positions: [0, 1]\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadRunner(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadRunner() = %v, expected ErrInvalid", err)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	base := DefaultRunnerConfig()

	easy := DefaultRunnerConfig()
	ApplyRunnerPreset(&easy, DifficultyEasy)
	if easy.Spawn.ObstacleRate >= base.Spawn.ObstacleRate {
		t.Error("easy should lower obstacle rate")
	}
	if easy.Health.ObstacleDamage >= base.Health.ObstacleDamage {
		t.Error("easy should lower obstacle damage")
	}

	hard := DefaultRunnerConfig()
	ApplyRunnerPreset(&hard, DifficultyHard)
	if hard.Spawn.BaseSpeed <= base.Spawn.BaseSpeed {
		t.Error("hard should raise base speed")
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}

	fixed := DefaultRunnerConfig()
	ApplyRunnerPreset(&fixed, DifficultyFixed)
	if fixed.Progression.SpeedIncrement != 0 {
		t.Errorf("fixed should disable speed increments, got %f", fixed.Progression.SpeedIncrement)
	}
	if !IsFixedPreset(DifficultyFixed) || IsFixedPreset(DifficultyHard) {
		t.Error("IsFixedPreset mismatch")
	}
}
