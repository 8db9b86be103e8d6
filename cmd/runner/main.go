// runner is a three-lane endless runner for the terminal.
//
// Usage:
//
//	runner play              - Play a run
//	runner menu              - Pick a difficulty interactively, play, repeat
//	runner sim               - Play a run headlessly with an autopilot policy
//	runner policies          - List autopilot policies
//	runner serve             - Start SSH server for remote play
//	runner scores            - Show recorded runs
//	runner config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.lane-runner/runs.db)
//	--config <path>      - Use a custom runner config YAML
//	--log-level <level>  - Log level for headless and server output
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Lane Runner - a three-lane endless runner in your terminal",
	Long: `Lane Runner is a terminal endless runner. Switch between three lanes,
jump over obstacles, chain pickups into combos and grab power-ups.

Available commands:
  play      - Play a run directly
  menu      - Interactive difficulty picker
  sim       - Headless run driven by an autopilot policy
  policies  - List autopilot policies
  serve     - Start SSH server for remote play
  scores    - View recorded runs
  config    - Print the default configuration

Examples:
  runner play
  runner play --difficulty hard
  runner sim --policy dodger --duration 5m
  runner serve --ssh :2222
  runner scores top --preset hard`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lane-runner/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(policiesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
