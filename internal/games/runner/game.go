// Package runner adapts the lane runner simulation to the terminal
// platform. It owns a deterministic clock derived from the tick count,
// maps input frames to intents, handles pause and draws a top-down view
// of the three lanes.
package runner

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/sim"
)

// How long HUD notices stay on screen, in ticks at the host rate.
const (
	toastSeconds = 1.5
	flashSeconds = 0.3
)

// Game is one terminal session of the lane runner.
type Game struct {
	cfg     config.RunnerConfig
	preset  config.DifficultyPreset
	logger  *log.Logger
	runtime core.RuntimeConfig

	sim    *sim.Simulation
	tick   uint64
	paused bool

	// Presentation state, derived from events
	toast      string
	toastColor core.Color
	toastTicks int
	flashTicks int
}

// Option configures a Game.
type Option func(*Game)

// WithPreset records the difficulty preset the config was built with.
func WithPreset(p config.DifficultyPreset) Option {
	return func(g *Game) { g.preset = p }
}

// WithLogger forwards simulation log output.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// New creates a game for the given configuration.
func New(cfg config.RunnerConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}

	g := &Game{cfg: cfg, preset: config.DifficultyNormal}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.Reset(core.DefaultConfig())
	return g, nil
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Lane Runner"
}

// Reset starts a fresh run. Every reset builds a new simulation so the
// run is reproducible from runtime.Seed alone.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime

	s, err := sim.New(g.cfg, sim.WithSeed(runtime.Seed), sim.WithLogger(g.logger))
	if err != nil {
		// Unreachable: the config was validated by New
		panic(err)
	}
	s.Start(0)

	g.sim = s
	g.tick = 0
	g.paused = false
	g.toast = ""
	g.toastTicks = 0
	g.flashTicks = 0
}

// Step advances the game by one host tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim.Phase() == sim.PhaseGameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	events := g.sim.Tick(intentsFor(in), g.now())
	for _, e := range events {
		g.present(e)
	}

	if g.toastTicks > 0 {
		g.toastTicks--
	}
	if g.flashTicks > 0 {
		g.flashTicks--
	}

	return core.StepResult{State: g.State(), Events: len(events)}
}

// now is simulation time derived from the tick count, so host jitter
// never leaks into the simulation.
func (g *Game) now() time.Duration {
	return time.Duration(g.tick) * time.Second / time.Duration(g.runtime.TickRate)
}

func (g *Game) ticksFor(seconds float64) int {
	return int(seconds * float64(g.runtime.TickRate))
}

// intentsFor keeps input arrival order; the simulation honours the first
// lateral move of a tick.
func intentsFor(in core.InputFrame) []sim.Intent {
	var intents []sim.Intent
	for _, a := range in.Actions() {
		switch a {
		case core.ActionLeft:
			intents = append(intents, sim.IntentMoveLeft)
		case core.ActionRight:
			intents = append(intents, sim.IntentMoveRight)
		case core.ActionJump:
			intents = append(intents, sim.IntentJump)
		}
	}
	return intents
}

// present turns simulation events into HUD notices.
func (g *Game) present(e sim.Event) {
	switch e.Kind {
	case sim.EventDamage:
		g.flashTicks = g.ticksFor(flashSeconds)
		g.notify(fmt.Sprintf("-%d HP", e.Amount), core.ColorBrightRed)
	case sim.EventPickup:
		g.notify(fmt.Sprintf("+%d  x%d", e.Value, e.Combo), core.ColorBrightYellow)
	case sim.EventPowerUpActivated:
		if e.Bonus {
			g.notify("BONUS POWER-UP!", core.ColorBrightMagenta)
		} else {
			g.notify("POWER-UP!", core.ColorBrightMagenta)
		}
	case sim.EventComboReset:
		g.notify("combo lost", core.ColorGray)
	case sim.EventLevelUp:
		g.notify(fmt.Sprintf("LEVEL %d", e.Level), core.ColorBrightGreen)
	}
}

func (g *Game) notify(msg string, c core.Color) {
	g.toast = msg
	g.toastColor = c
	g.toastTicks = g.ticksFor(toastSeconds)
}

// State returns the host-facing summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:        g.sim.Score(),
		HighestCombo: g.sim.HighestCombo(),
		Level:        g.sim.Level(),
		GameOver:     g.sim.Phase() == sim.PhaseGameOver,
		Paused:       g.paused,
	}
}

// Snapshot exposes the simulation state for hosts that record runs.
func (g *Game) Snapshot() sim.Snapshot {
	return g.sim.Snapshot()
}

// Seed returns the seed of the current run.
func (g *Game) Seed() int64 {
	return g.runtime.Seed
}

// Preset returns the difficulty preset the game was configured with.
func (g *Game) Preset() config.DifficultyPreset {
	return g.preset
}

// Elapsed returns the simulated time of the current run.
func (g *Game) Elapsed() time.Duration {
	return g.sim.Elapsed()
}
