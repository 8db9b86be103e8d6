package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default runner configuration",
	Long: `Print the built-in runner configuration as YAML.

Save it to ~/.lane-runner/configs/runner.yaml or ./configs/runner.yaml to
override it, or pass a file with --config. Keys left out of a file keep
their default values.

Examples:
  runner config > ~/.lane-runner/configs/runner.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
			fail("%v", err)
		}
	},
}
