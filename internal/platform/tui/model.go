package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/credit-balloons/internal/audio"
	"github.com/vovakirdan/credit-balloons/internal/core"
	"github.com/vovakirdan/credit-balloons/internal/registry"
	"github.com/vovakirdan/credit-balloons/internal/settings"
	"github.com/vovakirdan/credit-balloons/internal/storage"
)

// Deps are the optional services a game model reports to. Any of them may be
// nil; the game runs the same without them.
type Deps struct {
	Store    *storage.Store
	Audio    *audio.Player
	Settings *settings.Manager
	Logger   *log.Logger
}

func (d Deps) logger() *log.Logger {
	if d.Logger == nil {
		return log.New(io.Discard)
	}
	return d.Logger
}

// GameModel runs one game: ticks, input, side effects and back-to-menu.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	deps       Deps
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	lastTick   time.Time
	played     time.Duration // Unpaused time in the current run
	standalone bool          // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current run has been recorded
}

// NewGameModel creates a new game model.
func NewGameModel(game registry.Game, deps Deps, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		deps:       deps,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.finishRun()
		m.quitting = true
		return m, tea.Quit
	}

	// The frame keeps actions until the next tick, so side effects follow
	// this key only.
	action, _ := m.keyMapper.MapKey(msg)
	switch action {
	case core.ActionToggleAudio:
		m.toggleAudio()
	case core.ActionVolumeUp:
		m.adjustVolume(volumeStep)
	case core.ActionVolumeDown:
		m.adjustVolume(-volumeStep)
	case core.ActionBack:
		m.finishRun()
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleResize follows the terminal size. Games that cannot resize in place
// are restarted, as long as the run is still going.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick runs one simulation frame with the measured frame time.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.played = 0
		m.runSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if !m.gameState.Paused && !m.gameState.GameOver {
		m.played += elapsed
	}
	m.inputFrame.Elapsed = elapsed
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	m.handleEvents(result.Events)

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// handleEvents performs the side effects a step asked for. Failures here
// never feed back into the game.
func (m *GameModel) handleEvents(events []core.Event) {
	logger := m.deps.logger()
	for _, ev := range events {
		switch ev.Kind {
		case core.EventPop:
			if m.deps.Audio != nil {
				m.deps.Audio.PlayPop()
			}
			logger.Debug("pop", "game", m.game.ID(), "event", ev.Label, "delta", ev.Delta, "score", ev.Score)
		case core.EventWin:
			logger.Info("run won", "game", m.game.ID(), "score", ev.Score, "time", m.played.Round(time.Second))
		}
	}
}

// finishRun records an unfinished run with a score when the player leaves.
func (m *GameModel) finishRun() {
	if !m.runSaved && m.gameState.Score > 0 {
		m.saveRun()
	}
}

func (m *GameModel) saveRun() {
	m.runSaved = true
	if m.deps.Store == nil {
		return
	}
	run := storage.RunResult{
		GameID:   m.game.ID(),
		Score:    m.gameState.Score,
		Won:      m.gameState.Won,
		Pops:     m.gameState.Pops,
		Duration: m.played,
	}
	if _, err := m.deps.Store.SaveRun(run); err != nil {
		m.deps.logger().Warn("could not save run", "err", err)
	}
}

// toggleAudio flips background audio and remembers the choice.
func (m *GameModel) toggleAudio() {
	if m.deps.Audio == nil {
		return
	}
	on := m.deps.Audio.Toggle()
	if m.deps.Settings != nil {
		m.deps.Settings.SetAudioEnabled(on)
		//nolint:errcheck // Best-effort save, game continues regardless
		m.deps.Settings.Save()
	}
}

const volumeStep = 0.1

// adjustVolume moves both audio levels by delta and remembers them.
func (m *GameModel) adjustVolume(delta float64) {
	if m.deps.Audio == nil {
		return
	}
	music, sound := m.deps.Audio.Volumes()
	m.deps.Audio.SetVolumes(music+delta, sound+delta)
	music, sound = m.deps.Audio.Volumes()
	if m.deps.Settings != nil {
		m.deps.Settings.SetMusicVolume(music)
		m.deps.Settings.SetSoundVolume(sound)
		//nolint:errcheck // Best-effort save, game continues regardless
		m.deps.Settings.Save()
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	m.renderAudioStatus()
	return RenderScreen(m.screen)
}

// renderAudioStatus draws the audio toggle state in the bottom-right corner.
func (m GameModel) renderAudioStatus() {
	if m.deps.Audio == nil || m.screen.Height() < 2 {
		return
	}
	label := " Audio: Off (a) "
	c := core.ColorGray
	if m.deps.Audio.Enabled() {
		label = " Audio: On (a) "
		c = core.ColorBrightGreen
	}
	m.screen.DrawTextColor(m.screen.Width()-len(label), m.screen.Height()-1, label, c)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last reported game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run plays a single game in the terminal until the player quits.
func Run(game registry.Game, deps Deps, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, deps, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
