package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/credit-balloons/internal/assets"
	"github.com/vovakirdan/credit-balloons/internal/games/balloons"
	"github.com/vovakirdan/credit-balloons/internal/platform/gui"
)

var (
	flagEndless      bool
	flagWindowWidth  int
	flagWindowHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Credit Balloons in a resizable desktop window.

Artwork and audio are looked up under --assets. Missing images are
replaced by drawn balloons; missing audio is skipped.

Controls:
  Click   - Pop a balloon, or toggle audio with the corner button
  A       - Toggle audio
  -/+     - Volume down/up
  R       - Play again (after a win)
  Esc     - Quit

Examples:
  balloons window
  balloons window --assets ./assets --width 1024 --height 768
  balloons window --endless`,
	Run: runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play without a win score")
	windowCmd.Flags().IntVar(&flagWindowWidth, "width", gui.DefaultWidth, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagWindowHeight, "height", gui.DefaultHeight, "Window height in pixels")
}

func runWindow(_ *cobra.Command, _ []string) {
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, "balloons")

	mode, gameID := balloons.ModeClassic, "balloons"
	if flagEndless {
		mode, gameID = balloons.ModeEndless, "balloons_endless"
	}
	cfg, err := balloons.LoadConfig(mode)
	if err != nil {
		logger.Warn("using default config", "err", err)
	}

	store := openStore(logger)
	player, prefs := openAudio(logger)

	runErr := gui.Run(gui.Options{
		Config:   cfg,
		GameID:   gameID,
		Width:    flagWindowWidth,
		Height:   flagWindowHeight,
		Seed:     flagSeed,
		Resolver: assets.NewDirResolver(flagAssets, logger.WithPrefix("assets")),
		Audio:    player,
		Settings: prefs,
		Store:    store,
		Logger:   logger,
	})

	player.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", runErr)
		os.Exit(1)
	}
}
