// Package balloons implements Credit Balloons: credit events float up the
// screen as balloons and popping one applies its score change. Reaching the
// win score ends the run.
package balloons

import (
	"time"

	"github.com/vovakirdan/credit-balloons/internal/config"
	"github.com/vovakirdan/credit-balloons/internal/core"
	"github.com/vovakirdan/credit-balloons/internal/registry"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// maxSlots is how many balloons can be targeted with number keys.
const maxSlots = 9

// Mode selects the win condition.
type Mode int

const (
	ModeClassic Mode = iota // Win at the configured score
	ModeEndless             // No win score, play until quit
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset selects a preset by name. Unknown names clear it.
func SetDifficultyPreset(name string) {
	preset, err := config.ParsePreset(name)
	if err != nil {
		preset = ""
	}
	difficultyPreset = preset
}

// LoadConfig resolves the rules for a mode, applying the CLI path and preset.
// Load errors fall back to the built-in defaults.
func LoadConfig(mode Mode) (config.BalloonsConfig, error) {
	cfg, err := config.LoadBalloons(configPath)
	if err != nil {
		cfg = config.DefaultBalloonsConfig()
	}
	config.ApplyBalloonsPreset(&cfg, difficultyPreset)
	if mode == ModeEndless {
		cfg.Gameplay.WinScore = 0
	}
	return cfg, err
}

// feedback is the last pop shown in the HUD for a short time.
type feedback struct {
	label     string
	applied   int
	remaining float64 // Seconds
}

// Game adapts a Session to the terminal platform.
type Game struct {
	mode     Mode
	runtime  core.RuntimeConfig
	cfg      config.BalloonsConfig
	session  *Session
	paused   bool
	feedback feedback
}

// New creates a classic game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates a game without a win score.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "balloons_endless"
	}
	return "balloons"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Credit Balloons (Endless)"
	}
	return "Credit Balloons"
}

// Blurb summarizes the mode for menus.
func (g *Game) Blurb() string {
	if g.mode == ModeEndless {
		return "No goal, chase a high score"
	}
	return "Reach the goal score to win"
}

// Reset loads config and starts a new run sized to the screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, _ := LoadConfig(g.mode)
	g.cfg = cfg

	g.session = NewSession(Options{
		Config:   cfg,
		Geometry: cfg.Terminal,
		Field:    fieldFor(runtime.ScreenW, runtime.ScreenH),
		Seed:     runtime.Seed,
	})
	g.paused = false
	g.feedback = feedback{}
}

// fieldFor converts a screen size to the playfield below the HUD.
func fieldFor(w, h int) Playfield {
	return Playfield{W: float64(w), H: float64(max(h-hudRows, 1))}
}

// Resize follows a terminal size change without restarting the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	if g.session != nil {
		g.session.Resize(fieldFor(w, h))
	}
}

// Step applies input then advances the simulation by the frame's elapsed time.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.Won() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event

	// Resolve slots before clicks remove balloons and shift the numbering.
	targets := g.slotTargets(in.Slots)
	for _, c := range in.Clicks {
		// Cell centers, shifted into playfield coordinates
		if b, ok := g.session.BalloonAt(float64(c.X)+0.5, float64(c.Y-hudRows)+0.5); ok {
			targets = append(targets, b.ID)
		}
	}
	for _, id := range targets {
		events = g.pop(id, events)
	}

	dt := g.frameSeconds(in.Elapsed)
	g.session.Tick(dt)

	if g.feedback.remaining > 0 {
		g.feedback.remaining -= dt
	}

	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) pop(id int, events []core.Event) []core.Event {
	res, ok := g.session.Pop(id)
	if !ok {
		return events
	}
	g.feedback = feedback{
		label:     res.Balloon.Event.Label,
		applied:   res.Applied,
		remaining: g.cfg.Gameplay.FeedbackSeconds,
	}
	events = append(events, core.Event{
		Kind:  core.EventPop,
		Label: res.Balloon.Event.Label,
		Delta: res.Applied,
		Score: res.Score,
	})
	if res.Won {
		events = append(events, core.Event{Kind: core.EventWin, Score: res.Score})
	}
	return events
}

// frameSeconds converts the measured frame time, assuming one nominal tick
// when the platform did not measure it.
func (g *Game) frameSeconds(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		elapsed = g.runtime.FrameDuration()
	}
	return elapsed.Seconds()
}

// visibleSlots returns the ids of on-screen balloons in slot order.
func (g *Game) visibleSlots() []int {
	field := g.session.Field()
	ids := make([]int, 0, maxSlots)
	for _, b := range g.session.active {
		if len(ids) == maxSlots {
			break
		}
		if b.Y < field.H && b.Y+b.Height > 0 {
			ids = append(ids, b.ID)
		}
	}
	return ids
}

// slotTargets maps 1-based slot keys to balloon ids.
func (g *Game) slotTargets(slots []int) []int {
	if len(slots) == 0 {
		return nil
	}
	visible := g.visibleSlots()
	var ids []int
	for _, n := range slots {
		if n >= 1 && n <= len(visible) {
			ids = append(ids, visible[n-1])
		}
	}
	return ids
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.Won(),
		Paused:   g.paused,
		Won:      g.session.Won(),
		Pops:     g.session.Pops(),
	}
}

// Session exposes the underlying simulation.
func (g *Game) Session() *Session {
	return g.session
}

func init() {
	registry.Register("balloons", func() registry.Game {
		return New()
	})
	registry.Register("balloons_endless", func() registry.Game {
		return NewEndless()
	})
}
