package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/credit-balloons/internal/core"
	"github.com/vovakirdan/credit-balloons/internal/registry"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScoreboard
)

// SessionModel moves between the menu, a game and the scoreboard. Every SSH
// connection and the local menu command run one.
type SessionModel struct {
	deps   Deps
	config core.RuntimeConfig
	view   sessionView

	menu       MenuModel
	gameModel  *GameModel
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel starts at the menu.
func NewSessionModel(deps Deps, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		deps:   deps,
		config: cfg,
		menu:   NewMenuModel(deps.Store, cfg),
	}
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update forwards msg to the active view, then follows whatever transition
// that view asked for.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = size.Width, size.Height
	}

	var cmd tea.Cmd
	switch {
	case m.view == viewGame && m.gameModel != nil:
		next, c := m.gameModel.Update(msg)
		if gm, ok := next.(GameModel); ok {
			m.gameModel = &gm
		}
		cmd = c
		switch {
		case m.gameModel.IsQuitting():
			return m.quit()
		case m.gameModel.BackToMenu():
			return m.showMenu()
		}

	case m.view == viewScoreboard:
		next, c := m.scoreboard.Update(msg)
		if sb, ok := next.(ScoreboardModel); ok {
			m.scoreboard = sb
		}
		cmd = c
		switch {
		case m.scoreboard.IsQuitting():
			return m.quit()
		case m.scoreboard.IsGoingBack():
			return m.showMenu()
		}

	default:
		next, c := m.menu.Update(msg)
		if mm, ok := next.(MenuModel); ok {
			m.menu = mm
		}
		cmd = c
		switch {
		case m.menu.IsQuitting():
			return m.quit()
		case m.menu.WantsScoreboard():
			return m.showScoreboard()
		case m.menu.Selected() != nil:
			return m.startGame(m.menu.Selected().ID)
		}
	}
	return m, cmd
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// showMenu rebuilds the menu so its records include the run just played.
func (m SessionModel) showMenu() (tea.Model, tea.Cmd) {
	m.view = viewMenu
	m.gameModel = nil
	m.menu = NewMenuModel(m.deps.Store, m.config)
	return m, m.menu.Init()
}

func (m SessionModel) showScoreboard() (tea.Model, tea.Cmd) {
	m.view = viewScoreboard
	m.scoreboard = NewScoreboardModel(m.deps.Store, m.config.ScreenW, m.config.ScreenH)
	return m, m.scoreboard.Init()
}

func (m SessionModel) startGame(id string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(id)
	if err != nil {
		m.deps.logger().Error("cannot create game", "game", id, "error", err)
		return m.showMenu()
	}

	cfg := m.config
	cfg.Seed = time.Now().UnixNano()
	gm := NewGameModel(game, m.deps, cfg)
	m.gameModel = &gm
	m.view = viewGame
	return m, m.gameModel.Init()
}

// View implements tea.Model.
func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.view == viewGame && m.gameModel != nil:
		return m.gameModel.View()
	case m.view == viewScoreboard:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// IsQuitting reports whether the session has ended.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}

// RunSession runs a session in the local terminal until the player quits.
func RunSession(deps Deps, cfg core.RuntimeConfig) error {
	_, err := tea.NewProgram(
		NewSessionModel(deps, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	).Run()
	return err
}
