package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/credit-balloons/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
Leaving a run returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Best runs
  Q            - Quit

Examples:
  balloons menu
  balloons menu --fps 30
  balloons menu --db ./balloons.db`,
	Run: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	player, prefs := openAudio(logger)
	defer player.Close()

	deps := tui.Deps{
		Store:    store,
		Audio:    player,
		Settings: prefs,
		Logger:   logger,
	}
	if err := tui.RunSession(deps, runtimeConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
