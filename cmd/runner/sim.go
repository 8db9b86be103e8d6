package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/autopilot"
	"github.com/vovakirdan/lane-runner/internal/sim"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

var (
	flagPolicy        string
	flagDuration      time.Duration
	flagSimDifficulty string
	flagSave          bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Play a run headlessly with an autopilot policy",
	Long: `Run the simulation without a terminal UI. An autopilot policy picks
the intents, the clock advances by exactly one tick per step, and every
event is logged. The run ends at game over or after --duration of
simulated time.

Use --log-level debug to also see spawns, removals and visual hints.

Examples:
  runner sim
  runner sim --policy random --seed 7
  runner sim --duration 10m --difficulty hard --save
  runner sim --log-level warn`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagPolicy, "policy", "dodger", "Autopilot policy (see 'runner policies')")
	simCmd.Flags().DurationVar(&flagDuration, "duration", 5*time.Minute, "Simulated time limit (0 = until game over)")
	simCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Record the run in the runs database")
}

func runSim(_ *cobra.Command, _ []string) {
	logger, err := newLogger("sim")
	if err != nil {
		fail("%v", err)
	}

	cfg, preset, err := loadConfig(flagSimDifficulty)
	if err != nil {
		fail("%v", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	policy, err := autopilot.Create(flagPolicy, seed)
	if err != nil {
		fail("%v", err)
	}

	s, err := sim.New(cfg, sim.WithSeed(seed), sim.WithLogger(logger))
	if err != nil {
		fail("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("run started", "policy", policy.Name(), "preset", preset, "seed", seed, "fps", flagFPS)

	session := autopilot.Session{
		Sim:      s,
		Policy:   policy,
		TickRate: flagFPS,
		Limit:    flagDuration,
		OnEvent:  func(e sim.Event) { logEvent(logger, e) },
	}
	res, err := session.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		fail("%v", err)
	}
	if err != nil {
		logger.Warn("interrupted", "after", res.Elapsed)
	}

	printSummary(policy.Name(), string(preset), seed, res)

	if flagSave {
		saveSimRun(logger, storage.Run{
			Player:       policy.Name(),
			Preset:       string(preset),
			Seed:         seed,
			Score:        res.Score,
			HighestCombo: res.HighestCombo,
			Level:        res.Level,
			Duration:     res.Elapsed,
		})
	}
}

// logEvent keeps per-entity chatter and visual hints at debug level.
// Level-ups and game over are logged by the simulation itself.
func logEvent(logger *log.Logger, e sim.Event) {
	switch e.Kind {
	case sim.EventSpawned, sim.EventRemoved, sim.EventLanded,
		sim.EventCollisionFX, sim.EventCollectFX, sim.EventPowerUpFX,
		sim.EventLevelUp, sim.EventGameOver:
		logger.Debug(e.String())
	case sim.EventDamage:
		logger.Warn(e.String())
	default:
		logger.Info(e.String())
	}
}

func printSummary(policy, preset string, seed int64, res autopilot.Result) {
	outcome := "time limit"
	if res.GameOver {
		outcome = "game over"
	}

	fmt.Println()
	fmt.Printf("Run summary (%s)\n", outcome)
	fmt.Println()
	fmt.Printf("  %-14s %s\n", "Policy", policy)
	fmt.Printf("  %-14s %s\n", "Preset", preset)
	fmt.Printf("  %-14s %d\n", "Seed", seed)
	fmt.Printf("  %-14s %s (%d ticks)\n", "Time", res.Elapsed.Round(time.Millisecond), res.Ticks)
	fmt.Printf("  %-14s %d\n", "Score", res.Score)
	fmt.Printf("  %-14s x%d\n", "Highest combo", res.HighestCombo)
	fmt.Printf("  %-14s %d\n", "Level", res.Level)
	fmt.Printf("  %-14s %d\n", "Health", res.Health)
	fmt.Printf("  %-14s %d\n", "Pickups", res.Events[sim.EventPickup])
	fmt.Printf("  %-14s %d\n", "Power-ups", res.Events[sim.EventPowerUpActivated])
	fmt.Printf("  %-14s %d\n", "Hits", res.Events[sim.EventDamage])
}

func saveSimRun(logger *log.Logger, run storage.Run) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("could not open runs database", "error", err)
		return
	}
	defer store.Close()

	if err := store.SaveRun(&run); err != nil {
		logger.Error("could not save run", "error", err)
		return
	}
	logger.Info("run saved", "run_id", run.RunID)
}
