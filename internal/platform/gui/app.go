// Package gui runs Credit Balloons in a desktop window with Ebitengine.
// Balloons use the pixel geometry profile; artwork and audio come from the
// asset chains and fall back to generated shapes and silence.
package gui

import (
	"errors"
	"image"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/credit-balloons/internal/assets"
	"github.com/vovakirdan/credit-balloons/internal/audio"
	"github.com/vovakirdan/credit-balloons/internal/config"
	"github.com/vovakirdan/credit-balloons/internal/games/balloons"
	"github.com/vovakirdan/credit-balloons/internal/settings"
	"github.com/vovakirdan/credit-balloons/internal/storage"
)

const (
	DefaultWidth  = 1280
	DefaultHeight = 800

	windowTitle   = "Credit Balloons"
	defaultGameID = "balloons"
)

// audioButtonSize is the Audio: On/Off toggle in the top-right corner.
var audioButtonSize = image.Pt(120, 30)

// errQuit ends the Ebitengine loop when the player presses Esc.
var errQuit = errors.New("gui: quit")

// Options configures a window run. Everything except Config may be left zero.
type Options struct {
	Config   config.BalloonsConfig
	GameID   string // Run history key
	Width    int
	Height   int
	Seed     int64
	Resolver *assets.Resolver
	Audio    *audio.Player
	Settings *settings.Manager
	Store    *storage.Store
	Logger   *log.Logger
}

type feedback struct {
	label     string
	applied   int
	remaining float64
}

// App implements ebiten.Game around a balloons session.
type App struct {
	opts     Options
	logger   *log.Logger
	session  *balloons.Session
	width    int
	height   int
	lastTick time.Time
	played   time.Duration
	feedback feedback
	runSaved bool
	art      *artwork
}

// NewApp creates the window game and spawns the initial balloons.
func NewApp(opts Options) *App {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.GameID == "" {
		opts.GameID = defaultGameID
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	a := &App{
		opts:   opts,
		logger: logger,
		width:  opts.Width,
		height: opts.Height,
	}
	a.session = balloons.NewSession(balloons.Options{
		Config:   opts.Config,
		Geometry: opts.Config.Window,
		Field:    balloons.Playfield{W: float64(opts.Width), H: float64(opts.Height)},
		Seed:     opts.Seed,
	})
	a.art = newArtwork(opts.Resolver, opts.Config.Palette, logger)
	return a
}

// Update reads input and advances the simulation by the real frame time.
func (a *App) Update() error {
	now := time.Now()
	var dt time.Duration
	if !a.lastTick.IsZero() {
		dt = now.Sub(a.lastTick)
	}
	a.lastTick = now

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.finishRun()
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		a.toggleAudio()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		a.adjustVolume(-volumeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		a.adjustVolume(volumeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && a.session.Won() {
		a.restart(time.Now().UnixNano())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		a.click(x, y)
	}

	a.advance(dt)
	return nil
}

// advance runs one frame of simulation and HUD timers.
func (a *App) advance(dt time.Duration) {
	if a.session.Won() {
		return
	}
	seconds := dt.Seconds()
	if limit := a.opts.Config.Gameplay.MaxFrameDelta; limit > 0 && seconds > limit {
		seconds = limit
	}
	a.session.Tick(seconds)
	a.played += time.Duration(seconds * float64(time.Second))

	if a.feedback.remaining > 0 {
		a.feedback.remaining -= seconds
	}
}

// click handles a left click at window coordinates.
func (a *App) click(x, y int) {
	if image.Pt(x, y).In(a.audioButton()) {
		a.toggleAudio()
		return
	}

	b, ok := a.session.BalloonAt(float64(x), float64(y))
	if !ok {
		return
	}
	res, ok := a.session.Pop(b.ID)
	if !ok {
		return
	}

	a.feedback = feedback{
		label:     res.Balloon.Event.Label,
		applied:   res.Applied,
		remaining: a.opts.Config.Gameplay.FeedbackSeconds,
	}
	if a.opts.Audio != nil {
		a.opts.Audio.PlayPop()
	}
	a.logger.Debug("pop", "event", res.Balloon.Event.Label, "delta", res.Applied, "score", res.Score)

	if res.Won {
		a.logger.Info("run won", "score", res.Score, "time", a.played.Round(time.Second))
		a.saveRun()
	}
}

// restart begins a new run after a win.
func (a *App) restart(seed int64) {
	a.session.Reset(seed)
	a.played = 0
	a.feedback = feedback{}
	a.runSaved = false
}

func (a *App) toggleAudio() {
	if a.opts.Audio == nil {
		return
	}
	on := a.opts.Audio.Toggle()
	if a.opts.Settings != nil {
		a.opts.Settings.SetAudioEnabled(on)
		//nolint:errcheck // Best-effort save, game continues regardless
		a.opts.Settings.Save()
	}
}

const volumeStep = 0.1

// adjustVolume moves both audio levels by delta and remembers them.
func (a *App) adjustVolume(delta float64) {
	if a.opts.Audio == nil {
		return
	}
	music, sound := a.opts.Audio.Volumes()
	a.opts.Audio.SetVolumes(music+delta, sound+delta)
	if a.opts.Settings != nil {
		music, sound = a.opts.Audio.Volumes()
		a.opts.Settings.SetMusicVolume(music)
		a.opts.Settings.SetSoundVolume(sound)
		//nolint:errcheck // Best-effort save, game continues regardless
		a.opts.Settings.Save()
	}
}

func (a *App) audioEnabled() bool {
	return a.opts.Audio != nil && a.opts.Audio.Enabled()
}

func (a *App) audioButton() image.Rectangle {
	origin := image.Pt(a.width-audioButtonSize.X-16, 14)
	return image.Rectangle{Min: origin, Max: origin.Add(audioButtonSize)}
}

func (a *App) finishRun() {
	if !a.runSaved && a.session.Score() > 0 {
		a.saveRun()
	}
}

func (a *App) saveRun() {
	a.runSaved = true
	if a.opts.Store == nil {
		return
	}
	run := storage.RunResult{
		GameID:   a.opts.GameID,
		Score:    a.session.Score(),
		Won:      a.session.Won(),
		Pops:     a.session.Pops(),
		Duration: a.played,
	}
	if _, err := a.opts.Store.SaveRun(run); err != nil {
		a.logger.Warn("could not save run", "err", err)
	}
}

// Layout tracks the window size; balloons stay where they are and only get
// pulled back inside a narrower field.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width = outsideWidth
		a.height = outsideHeight
		a.session.Resize(balloons.Playfield{W: float64(outsideWidth), H: float64(outsideHeight)})
	}
	return outsideWidth, outsideHeight
}

// Session exposes the running session.
func (a *App) Session() *balloons.Session {
	return a.session
}

// Run opens the window and blocks until it is closed or Esc is pressed.
func Run(opts Options) error {
	app := NewApp(opts)

	ebiten.SetWindowSize(app.width, app.height)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(app)
	app.finishRun()
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}
