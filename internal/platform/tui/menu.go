package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/credit-balloons/internal/core"
	"github.com/vovakirdan/credit-balloons/internal/registry"
	"github.com/vovakirdan/credit-balloons/internal/storage"
)

// MenuItem is one playable mode with its record so far.
type MenuItem struct {
	registry.GameInfo
	HighScore int
	Runs      int
	Wins      int
}

func (it MenuItem) record() string {
	if it.Runs == 0 {
		return "no runs yet"
	}
	return fmt.Sprintf("best %d, %d/%d won", it.HighScore, it.Wins, it.Runs)
}

// MenuModel picks a mode or opens the scoreboard.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper

	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists the registered modes with stats from store, if any.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	modes := registry.List()
	items := make([]MenuItem, len(modes))
	for i, info := range modes {
		items[i] = MenuItem{GameInfo: info}
		if store == nil {
			continue
		}
		if stats, err := store.GetGameStats(info.ID); err == nil {
			items[i].HighScore = stats.HighScore
			items[i].Runs = stats.RunsCount
			items[i].Wins = stats.Wins
		}
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		keyMapper: NewKeyMapper(),
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.items) > 0 {
			item := m.items[m.cursor]
			m.selected = &item
		}
	case MenuActionScoreboard:
		m.openScoreboard = true
	}
	return m, nil
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("218"))
	menuSubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuCursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuBlurbStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("183"))
)

const menuControls = "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		"",
		menuTitleStyle.Render("C R E D I T   B A L L O O N S"),
		"",
		menuSubtitleStyle.Render("Pop the good habits, dodge the bad ones, reach 850"),
		"",
	}
	for i, item := range m.items {
		entry := fmt.Sprintf("%s  %s", item.Title, menuSubtitleStyle.Render("("+item.record()+")"))
		if i == m.cursor {
			entry = menuCursorStyle.Render("> "+item.Title) + "  " + menuSubtitleStyle.Render("("+item.record()+")")
		}
		lines = append(lines, entry)
	}
	if len(m.items) > 0 && m.items[m.cursor].Blurb != "" {
		lines = append(lines, "", menuBlurbStyle.Render(m.items[m.cursor].Blurb))
	}
	lines = append(lines, "", menuSubtitleStyle.Render(menuControls))

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(centerText(line, m.width))
		b.WriteByte('\n')
	}
	return b.String()
}

// Selected returns the chosen mode, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the user asked to leave.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the user asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// centerText pads text on the left to center it in width columns.
func centerText(text string, width int) string {
	if pad := (width - lipgloss.Width(text)) / 2; pad > 0 {
		return strings.Repeat(" ", pad) + text
	}
	return text
}
