package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

// Game is what the Model drives. The runner package implements it.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	State() core.GameState
	Render(dst *core.Screen)

	// Run metadata recorded when the game ends
	Seed() int64
	Preset() config.DifficultyPreset
	Elapsed() time.Duration
}

// GameFactory builds a game for a difficulty preset.
type GameFactory func(preset config.DifficultyPreset) (Game, error)

// footerRows is the space kept below the game for the help line.
const footerRows = 1

// Model is the Bubble Tea model for playing one game.
type Model struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	player     string
	inputFrame core.InputFrame
	gameState  core.GameState
	quitOnBack bool
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the run has been saved for the current game over
	lastRun    *storage.Run
	loop       uint64
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithPlayer sets the player name stored with finished runs.
func WithPlayer(name string) ModelOption {
	return func(m *Model) { m.player = name }
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-footerRows),
		store:      store,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		player:     "human",
		inputFrame: core.NewInputFrame(),
		loop:       nextLoop(),
	}
	m.help.Width = cfg.ScreenW
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the action for the next tick. Quit, back and
// screenshots are handled by the host right away.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.quitOnBack {
				return m, tea.Quit
			}
		}

	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}

	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize keeps the run going; the game lays itself out per frame.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-footerRows)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// New seed for the new run
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate, m.loop)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save the run on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.lastRun = m.saveRun()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.loop)
}

// saveRun records the finished run. Returns nil when nothing was stored.
func (m Model) saveRun() *storage.Run {
	if m.store == nil || m.gameState.Score <= 0 {
		return nil
	}
	run := &storage.Run{
		Player:       m.player,
		Preset:       string(m.game.Preset()),
		Seed:         m.game.Seed(),
		Score:        m.gameState.Score,
		HighestCombo: m.gameState.HighestCombo,
		Level:        m.gameState.Level,
		Duration:     m.game.Elapsed(),
	}
	if err := m.store.SaveRun(run); err != nil {
		// Best-effort save, game continues regardless
		return nil
	}
	return run
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".lane-runner", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderFrame(m.screen, m.help.View(m.keys))
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// LastRun returns the run saved at the last game over, if any.
func (m Model) LastRun() *storage.Run {
	return m.lastRun
}

// IsQuitting returns true if the user asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for one game.
// Back on the pause or game over screen leaves the program.
func Run(game Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, opts...)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
