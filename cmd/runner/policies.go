package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/autopilot"
)

var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List autopilot policies",
	Long:  `Shows the autopilot policies available to 'runner sim'.`,
	Args:  cobra.NoArgs,
	Run:   runPolicies,
}

func runPolicies(_ *cobra.Command, _ []string) {
	policies := autopilot.List()

	fmt.Println("Available policies:")
	fmt.Println()

	maxLen := len("Name")
	for _, p := range policies {
		maxLen = max(maxLen, len(p.Name))
	}

	fmt.Printf("  %-*s  %s\n", maxLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxLen, "----", "-----------")
	for _, p := range policies {
		fmt.Printf("  %-*s  %s\n", maxLen, p.Name, p.Description)
	}

	fmt.Println()
	fmt.Println("Run 'runner sim --policy <name>' to watch one play.")
}
