package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/platform/tui"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

var (
	flagPreset string
	flagLimit  int
	flagYes    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse recorded runs",
	Long: `Open the interactive scoreboard, or use a subcommand to print runs.

Examples:
  runner scores
  runner scores top --preset hard
  runner scores recent --limit 5
  runner scores stats
  runner scores clear --yes`,
	Args: cobra.NoArgs,
	Run:  runScoreboard,
}

var scoresTopCmd = &cobra.Command{
	Use:   "top",
	Short: "Print the best runs",
	Args:  cobra.NoArgs,
	Run:   runScoresTop,
}

var scoresRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Print the latest runs",
	Args:  cobra.NoArgs,
	Run:   runScoresRecent,
}

var scoresStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print totals over every run",
	Args:  cobra.NoArgs,
	Run:   runScoresStats,
}

var scoresClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every recorded run",
	Args:  cobra.NoArgs,
	Run:   runScoresClear,
}

func init() {
	scoresTopCmd.Flags().StringVar(&flagPreset, "preset", "", "Only runs of this preset (default: all)")
	scoresTopCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresRecentCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresClearCmd.Flags().BoolVar(&flagYes, "yes", false, "Confirm deletion")

	scoresCmd.AddCommand(scoresTopCmd, scoresRecentCmd, scoresStatsCmd, scoresClearCmd)
}

// openStore opens the runs database or exits.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening runs database: %v", err)
	}
	return store
}

func runScoreboard(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	cfg := runtimeConfig()
	if _, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

func runScoresTop(_ *cobra.Command, _ []string) {
	if flagPreset != "" {
		if _, err := config.ParsePreset(flagPreset); err != nil {
			fail("%v", err)
		}
	}

	store := openStore()
	defer store.Close()

	runs, err := store.TopRuns(flagPreset, flagLimit)
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	title := "all presets"
	if flagPreset != "" {
		title = flagPreset
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()
	printRuns(runs)
}

func runScoresRecent(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	fmt.Println("Recent Runs")
	fmt.Println()
	printRuns(runs)
}

func printRuns(runs []storage.Run) {
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-3s  %-6s  %-7s  %-10s  %s\n",
		"Rank", "Score", "Combo", "Lvl", "Time", "Preset", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-3s  %-6s  %-7s  %-10s  %s\n",
		"----", "-----", "-----", "---", "----", "------", "------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  x%-4d  %-3d  %-6s  %-7s  %-10s  %s\n",
			i+1, r.Score, r.HighestCombo, r.Level,
			r.Duration.Round(time.Second), r.Preset, r.Player,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func runScoresStats(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	st, err := store.Stats()
	if err != nil {
		fail("retrieving stats: %v", err)
	}

	fmt.Println("Run Statistics")
	fmt.Println()
	fmt.Printf("  %-14s %d\n", "Runs", st.Runs)
	fmt.Printf("  %-14s %d\n", "Best score", st.BestScore)
	fmt.Printf("  %-14s %.1f\n", "Average score", st.AverageScore)
	fmt.Printf("  %-14s x%d\n", "Best combo", st.BestCombo)
	fmt.Printf("  %-14s %d\n", "Highest level", st.MaxLevel)
	fmt.Printf("  %-14s %s\n", "Time played", st.TotalPlayed.Round(time.Second))
}

func runScoresClear(_ *cobra.Command, _ []string) {
	if !flagYes {
		fail("refusing to delete runs without --yes")
	}

	store := openStore()
	defer store.Close()

	if err := store.ClearRuns(); err != nil {
		fail("%v", err)
	}
	fmt.Println("All runs deleted.")
}
