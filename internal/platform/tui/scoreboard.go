package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/credit-balloons/internal/registry"
	"github.com/vovakirdan/credit-balloons/internal/storage"
)

const (
	maxRuns          = 100 // Rows loaded per mode
	statsCardWidth   = 26
	minWidthForStats = 90 // Below this the stats card becomes a single line
)

// runOrder selects how runs are listed.
type runOrder int

const (
	orderBest runOrder = iota
	orderRecent
)

func (o runOrder) label() string {
	if o == orderRecent {
		return "RECENT RUNS"
	}
	return "BEST RUNS"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Order    key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.Order, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextMode, k.PrevMode, k.Order},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev mode")),
		Order:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "best/recent")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("218"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardTabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	boardActiveTabStyle = lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("97")).
				Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true).Padding(1, 3)
)

// ScoreboardModel lists recorded runs per mode.
type ScoreboardModel struct {
	modes     []registry.GameInfo
	current   int
	order     runOrder
	store     *storage.Store
	runs      []storage.RunResult
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard showing the first registered mode.
// A nil store shows empty boards.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) tableWidth() int {
	w := m.width - 6
	if m.width >= minWidthForStats {
		w -= statsCardWidth + 4
	}
	return w
}

func (m ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 6},
		{Title: "Result", Width: 6},
		{Title: "Time", Width: 6},
		{Title: "Pops", Width: 5},
		{Title: "Played", Width: 12},
	}
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := m.tableWidth() - used; spare > 0 {
		columns[len(columns)-1].Width += min(spare, 6)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("97")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// reload fetches runs and stats for the current mode and order.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats = nil, nil
	if m.store != nil && len(m.modes) > 0 {
		id := m.modes[m.current].ID

		var runs []storage.RunResult
		var err error
		if m.order == orderRecent {
			runs, err = m.store.RecentRuns(id, maxRuns)
		} else {
			runs, err = m.store.TopRuns(id, maxRuns)
		}
		if err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		rows = append(rows, runRow(i+1, r))
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func runRow(rank int, r storage.RunResult) table.Row {
	result := "-"
	if r.Won {
		result = "WON"
	}
	return table.Row{
		fmt.Sprint(rank),
		fmt.Sprint(r.Score),
		result,
		formatDuration(r.Duration),
		fmt.Sprint(r.Pops),
		r.CreatedAt.Local().Format("Jan 02 15:04"),
	}
}

// formatDuration renders m:ss.
func formatDuration(d time.Duration) string {
	s := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, m.keys.NextMode):
			m.switchMode(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.switchMode(-1)
			return m, nil
		case key.Matches(msg, m.keys.Order):
			m.order = 1 - m.order
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) switchMode(step int) {
	if len(m.modes) == 0 {
		return
	}
	m.current = (m.current + step + len(m.modes)) % len(m.modes)
	m.reload()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render(m.order.label()), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	board := boardPanelStyle.Render(m.renderBoard())
	if m.width >= minWidthForStats {
		card := boardPanelStyle.Width(statsCardWidth).Render(m.renderStatsCard())
		board = lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", card)
		b.WriteString(centerText(board, m.width))
	} else {
		b.WriteString(centerText(board, m.width))
		if line := m.statsLine(); line != "" {
			b.WriteString("\n")
			b.WriteString(centerText(boardDimStyle.Render(line), m.width))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.modes))
	for i, mode := range m.modes {
		if i == m.current {
			tabs[i] = boardActiveTabStyle.Render(mode.Title)
		} else {
			tabs[i] = boardTabStyle.Render(mode.Title)
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 && len(m.modes) > 0 {
		return boardActiveTabStyle.Render("< " + m.modes[m.current].Title + " >")
	}
	return line
}

func (m ScoreboardModel) renderBoard() string {
	if len(m.runs) == 0 {
		return boardEmptyStyle.Render("No runs recorded yet.\nPop some balloons to get on the board!")
	}
	return m.table.View()
}

func (m ScoreboardModel) renderStatsCard() string {
	if m.stats == nil || m.stats.RunsCount == 0 {
		return boardDimStyle.Render("No stats yet")
	}
	s := m.stats
	rows := [][2]string{
		{"Runs", fmt.Sprint(s.RunsCount)},
		{"Wins", fmt.Sprint(s.Wins)},
		{"Best", fmt.Sprint(s.HighScore)},
		{"Average", fmt.Sprintf("%.0f", s.AvgScore)},
		{"Balloons", fmt.Sprint(s.TotalPops)},
	}
	if s.Wins > 0 {
		rows = append(rows, [2]string{"Fastest win", formatDuration(s.BestWinTime)})
	}
	if !s.LastPlayed.IsZero() {
		rows = append(rows, [2]string{"Last played", s.LastPlayed.Local().Format("Jan 02")})
	}

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(boardDimStyle.Render(fmt.Sprintf("%-12s", r[0])) + " " + r[1])
	}
	return b.String()
}

// statsLine is the narrow-screen summary.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.RunsCount == 0 {
		return ""
	}
	line := fmt.Sprintf("Runs %d  |  Wins %d  |  Best %d  |  Avg %.0f",
		m.stats.RunsCount, m.stats.Wins, m.stats.HighScore, m.stats.AvgScore)
	if m.stats.Wins > 0 {
		line += "  |  Fastest win " + formatDuration(m.stats.BestWinTime)
	}
	return line
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
