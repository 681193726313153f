package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickfall/internal/levels"
	"github.com/vovakirdan/brickfall/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show level list sidebar
	sidebarWidth       = 20  // Width of level list sidebar
	maxRuns            = 100 // Max runs to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Back      key.Binding
	Quit      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.PrevLevel, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLevel, k.PrevLevel},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev level"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next level"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev level"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	levels      []levels.Info  // Levels with runs or registered
	levelCursor int            // Currently selected level index
	store       *storage.Store // Run storage
	runs        []storage.Run
	stats       *storage.LevelStats
	best        map[string]int // High score per level with at least one run
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool // Whether to show level list sidebar
}

// NewScoreboardModel creates a new scoreboard model starting at startLevel.
func NewScoreboardModel(store *storage.Store, width, height int, startLevel string) ScoreboardModel {
	keys := DefaultScoreboardKeyMap()
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		levels:      scoreboardLevels(store),
		store:       store,
		keys:        keys,
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	for i, l := range m.levels {
		if l.ID == startLevel {
			m.levelCursor = i
		}
	}

	m.table = m.createTable()
	m.loadBest()

	if len(m.levels) > 0 {
		m.loadRuns(m.levels[m.levelCursor].ID)
	}

	return m
}

// scoreboardLevels lists registered levels plus any level that only
// exists in the database (e.g. loaded from a directory in an earlier run).
func scoreboardLevels(store *storage.Store) []levels.Info {
	list := levels.List()
	if store == nil {
		return list
	}
	ids, err := store.Levels()
	if err != nil {
		return list
	}
	for _, id := range ids {
		if !levels.Exists(id) {
			list = append(list, levels.Info{ID: id, Title: id})
		}
	}
	return list
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Bricks", Width: 8},
		{Title: "Result", Width: 8},
		{Title: "Date", Width: 14},
	}

	// Calculate available width for table
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}

	// Date column takes what is left
	if tableWidth > 44 {
		columns[4].Width = min(tableWidth-30, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Leave room for title, summary, help, and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads the best runs and the summary for the given level.
func (m *ScoreboardModel) loadRuns(levelID string) {
	m.runs, m.stats = nil, nil
	if m.store != nil {
		if runs, err := m.store.TopRuns(levelID, maxRuns); err == nil {
			m.runs = runs
		}
		if st, err := m.store.LevelStats(levelID); err == nil {
			m.stats = st
		}
	}
	m.updateTableRows()
}

// loadBest records the high score of every listed level that has runs.
func (m *ScoreboardModel) loadBest() {
	m.best = make(map[string]int)
	if m.store == nil {
		return
	}
	for _, l := range m.levels {
		if st, err := m.store.LevelStats(l.ID); err == nil && st.Runs > 0 {
			m.best[l.ID] = st.HighScore
		}
	}
}

// ScoreRows formats runs as table rows.
func ScoreRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		result := "lost"
		if r.Cleared {
			result = "cleared"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.BricksDestroyed),
			result,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// updateTableRows updates the table with current runs.
func (m *ScoreboardModel) updateTableRows() {
	m.table.SetRows(ScoreRows(m.runs))

	// Reset cursor to top
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextLevel), key.Matches(msg, m.keys.Right):
			m.moveLevel(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel), key.Matches(msg, m.keys.Left):
			m.moveLevel(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#9bbc0f"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardPickStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("22")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.levels) > 0 {
		title += " - " + m.levels[m.levelCursor].Title
	}

	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			boardFrameStyle.Width(sidebarWidth).Render(m.renderLevelList()),
			"  ",
			boardFrameStyle.Render(m.renderRuns()),
		)
	} else {
		body = centerText(m.renderTabs(), m.width) + "\n\n" +
			centerText(boardFrameStyle.Render(m.renderRuns()), m.width)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		boardTitleStyle.Render(centerText(title, m.width)),
		boardDimStyle.Render(centerText(m.summary(), m.width)),
		"",
		body,
		"",
		boardDimStyle.Render(m.help.View(m.keys)),
	)
}

// summary describes the selected level's history in one line.
func (m ScoreboardModel) summary() string {
	st := m.stats
	if st == nil || st.Runs == 0 {
		return "no runs yet"
	}
	return fmt.Sprintf("%d runs  %d cleared  best %d  avg %.0f  last %s",
		st.Runs, st.Clears, st.HighScore, st.AvgScore, st.LastPlayed.Format("Jan 02 15:04"))
}

// renderLevelList lists every level with its best score for the sidebar.
func (m ScoreboardModel) renderLevelList() string {
	inner := sidebarWidth - 2
	lines := []string{"Levels", strings.Repeat("-", inner)}
	for i, l := range m.levels {
		score := ""
		if best, ok := m.best[l.ID]; ok {
			score = fmt.Sprintf("%d", best)
		}
		name := truncate(l.Title, inner-3-len(score))
		pad := max(inner-2-lipgloss.Width(name)-len(score), 1)
		line := name + strings.Repeat(" ", pad) + score
		if i == m.levelCursor {
			lines = append(lines, boardPickStyle.Render("> "+line))
		} else {
			lines = append(lines, "  "+line)
		}
	}
	return strings.Join(lines, "\n")
}

// renderTabs shows the levels as a tab row, or only the current one with
// arrows when the row does not fit.
func (m ScoreboardModel) renderTabs() string {
	if len(m.levels) == 0 {
		return ""
	}
	tabs := make([]string, len(m.levels))
	for i, l := range m.levels {
		name := truncate(l.Title, 10)
		if i == m.levelCursor {
			tabs[i] = boardTabStyle.Render(name)
		} else {
			tabs[i] = boardDimStyle.Render(" " + name + " ")
		}
	}
	row := strings.Join(tabs, " ")
	if lipgloss.Width(row) > m.width-4 {
		return fmt.Sprintf("< %s >", m.levels[m.levelCursor].Title)
	}
	return row
}

// renderRuns renders the run table, or a hint when the level has none.
func (m ScoreboardModel) renderRuns() string {
	if len(m.runs) == 0 {
		return boardEmptyStyle.Render("No runs recorded yet.\nClear the field to set a high score!")
	}
	return m.table.View()
}

// truncate shortens s to at most n cells, marking the cut with a dot.
func truncate(s string, n int) string {
	if n <= 1 || lipgloss.Width(s) <= n {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r)) > n-1 {
		r = r[:len(r)-1]
	}
	return string(r) + "."
}

// moveLevel cycles the selected level by delta.
func (m *ScoreboardModel) moveLevel(delta int) {
	if len(m.levels) == 0 {
		return
	}
	m.levelCursor = (m.levelCursor + delta + len(m.levels)) % len(m.levels)
	m.loadRuns(m.levels[m.levelCursor].ID)
}

// SelectedLevel returns the level whose runs are shown.
func (m ScoreboardModel) SelectedLevel() string {
	if len(m.levels) == 0 {
		return ""
	}
	return m.levels[m.levelCursor].ID
}

// RunScoreboard runs the scoreboard screen.
func RunScoreboard(store *storage.Store, width, height int, startLevel string) error {
	model := NewScoreboardModel(store, width, height, startLevel)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
