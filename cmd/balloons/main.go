// balloons is Credit Balloons: pop rising credit events and push your score
// to the goal, in the terminal, over SSH or in a desktop window.
//
// Usage:
//
//	balloons list              - List available modes
//	balloons play [mode]       - Play in the terminal
//	balloons menu              - Pick a mode interactively
//	balloons window            - Play in a desktop window
//	balloons serve             - Start SSH server for remote play
//	balloons scores [mode]     - Show best runs for a mode
//	balloons config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/balloons.db)
//	--assets <dir>       - Asset root for images and audio (default: .)
//	--log-level <level>  - debug, info, warn or error
//
// Environment variables, also read from a .env file: BALLOONS_DB,
// BALLOONS_ASSETS, BALLOONS_LOG_LEVEL.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/credit-balloons/internal/assets"
	"github.com/vovakirdan/credit-balloons/internal/audio"
	"github.com/vovakirdan/credit-balloons/internal/config"
	"github.com/vovakirdan/credit-balloons/internal/core"
	"github.com/vovakirdan/credit-balloons/internal/games/balloons"
	"github.com/vovakirdan/credit-balloons/internal/settings"
	"github.com/vovakirdan/credit-balloons/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagAssets   string
	flagLogLevel string

	// Game config flags, shared by play, menu and window
	flagConfig     string
	flagDifficulty string
)

// envFlags maps persistent flags to environment overrides.
var envFlags = map[string]string{
	"db":        "BALLOONS_DB",
	"assets":    "BALLOONS_ASSETS",
	"log-level": "BALLOONS_LOG_LEVEL",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "balloons",
	Short: "Credit Balloons - pop credit events, reach the goal score",
	Long: `Credit Balloons is a small arcade game. Balloons carrying credit
events float up the screen; popping one applies its score change.
Reach 850 to win.

Available commands:
  list     - Show all modes
  play     - Play in the terminal
  menu     - Interactive mode picker
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View best runs
  config   - Print the default configuration

Examples:
  balloons play
  balloons play balloons_endless
  balloons menu
  balloons window --assets ./assets
  balloons serve --ssh :2222 --qr
  balloons scores`,
	SilenceUsage:      true,
	PersistentPreRunE: applyEnv,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", ".", "Asset root directory")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// addGameFlags registers the config and difficulty flags on a command.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyEnv loads .env and fills flags the user did not set explicitly.
func applyEnv(cmd *cobra.Command, _ []string) error {
	//nolint:errcheck // A missing .env file is fine
	godotenv.Load()

	for name, env := range envFlags {
		v, ok := os.LookupEnv(env)
		if !ok || v == "" || cmd.Flags().Changed(name) {
			continue
		}
		if err := cmd.Flags().Set(name, v); err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
	}

	if _, err := log.ParseLevel(flagLogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", flagLogLevel)
	}
	return nil
}

// applyGameFlags passes the config flags on to the game package. An explicit
// config file that cannot be loaded is an error.
func applyGameFlags() error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	balloons.SetConfigPath(flagConfig)
	balloons.SetDifficultyPreset(flagDifficulty)
	if flagConfig == "" {
		return nil
	}
	if _, err := balloons.LoadConfig(balloons.ModeClassic); err != nil {
		return fmt.Errorf("config %s: %w", flagConfig, err)
	}
	return nil
}

// newLogger creates a logger at the configured level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// fileLogger logs to ~/.arcade/balloons.log so the alt screen stays clean.
// The returned closer must be called on exit.
func fileLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(io.Discard, "balloons"), func() {}
	}
	dir := filepath.Join(home, ".arcade")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	f, err := os.OpenFile(filepath.Join(dir, "balloons.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return newLogger(io.Discard, "balloons"), func() {}
	}
	return newLogger(f, "balloons"), func() { f.Close() }
}

// openStore opens run history. Failure is logged and play continues without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// openAudio creates the audio player and restores saved audio settings.
func openAudio(logger *log.Logger) (*audio.Player, *settings.Manager) {
	prefs, err := settings.Open(settings.AppName, logger)
	if err != nil {
		logger.Warn("settings will not persist", "err", err)
	}

	resolver := assets.NewDirResolver(flagAssets, logger.WithPrefix("assets"))
	player := audio.NewPlayer(resolver, audio.SpeakerSink(), logger.WithPrefix("audio"))

	s := prefs.Get()
	player.SetVolumes(s.MusicVolume, s.SoundVolume)
	if s.AudioEnabled && !player.SetEnabled(true) {
		prefs.SetAudioEnabled(false)
	}
	return player, prefs
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}
