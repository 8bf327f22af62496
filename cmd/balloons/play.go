package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/credit-balloons/internal/platform/tui"
	"github.com/vovakirdan/credit-balloons/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal. The mode defaults to "balloons".

Controls:
  Click      - Pop a balloon
  1-9        - Pop the numbered balloon
  A          - Toggle audio
  -/+        - Volume down/up
  P          - Pause
  R          - Play again (after a win)
  B/Esc      - Leave the run
  Q/Ctrl+C   - Quit
  Ctrl+S     - Save a text screenshot

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, base speed and spawn rate throughout

Examples:
  balloons play
  balloons play balloons_endless
  balloons play --difficulty hard
  balloons play --config ./my-balloons.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "balloons"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'balloons list' to see available modes.")
		os.Exit(1)
	}

	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := fileLogger()
	store := openStore(logger)
	player, prefs := openAudio(logger)

	runErr := tui.Run(game, tui.Deps{
		Store:    store,
		Audio:    player,
		Settings: prefs,
		Logger:   logger,
	}, runtimeConfig())

	player.Close()
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
