package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/credit-balloons/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game modes",
	Long:  `Shows every registered Credit Balloons mode.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 0
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
		if g.Blurb != "" {
			fmt.Printf("  %-*s  %s\n", maxIDLen, "", g.Blurb)
		}
	}

	fmt.Println()
	fmt.Println("Run 'balloons play <id>' to play a mode.")
}
