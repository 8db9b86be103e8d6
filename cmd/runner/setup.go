package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/games/runner"
	"github.com/vovakirdan/lane-runner/internal/platform/tui"
)

// newLogger builds a stderr logger at the --log-level level.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadConfig loads the runner config and applies a difficulty preset.
func loadConfig(difficulty string) (config.RunnerConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.RunnerConfig{}, "", err
	}
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, "", err
	}
	config.ApplyRunnerPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.RunnerConfig{}, "", fmt.Errorf("config after %s preset: %w", preset, err)
	}
	return cfg, preset, nil
}

// gameFactory builds terminal games from the config file. The file is
// read once and each call applies its own preset.
func gameFactory() (tui.GameFactory, error) {
	base, err := config.LoadRunner(flagConfig)
	if err != nil {
		return nil, err
	}
	return func(preset config.DifficultyPreset) (tui.Game, error) {
		cfg := base
		config.ApplyRunnerPreset(&cfg, preset)
		g, err := runner.New(cfg, runner.WithPreset(preset))
		if err != nil {
			return nil, err
		}
		return g, nil
	}, nil
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// fail prints an error the way every command does and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
