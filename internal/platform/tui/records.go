package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-labyrinth/internal/registry"
	"github.com/vovakirdan/tui-labyrinth/internal/storage"
)

const (
	maxScores = 100
	maxRuns   = 200
	runsTabID = "runs"
)

// RecordsKeyMap defines the key bindings for the records screen.
type RecordsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RecordsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k RecordsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultRecordsKeyMap returns default key bindings.
func DefaultRecordsKeyMap() RecordsKeyMap {
	return RecordsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev tab"),
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

// recordsTab is one page of the records screen: a game's high scores or the run history.
type recordsTab struct {
	ID    string
	Title string
}

// RecordsModel shows per-game high scores and the history of walked mazes.
type RecordsModel struct {
	tabs      []recordsTab
	tabCursor int
	store     *storage.Store
	rows      []table.Row
	table     table.Model
	help      help.Model
	keys      RecordsKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewRecordsModel creates a records screen sized to the terminal.
func NewRecordsModel(store *storage.Store, width, height int) RecordsModel {
	games := registry.List()
	tabs := make([]recordsTab, 0, len(games)+1)
	for _, g := range games {
		tabs = append(tabs, recordsTab{ID: g.ID, Title: g.Title})
	}
	tabs = append(tabs, recordsTab{ID: runsTabID, Title: "Run history"})

	h := help.New()
	h.Width = width

	m := RecordsModel{
		tabs:   tabs,
		store:  store,
		keys:   DefaultRecordsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.load()
	return m
}

// columns returns the table layout for the current tab.
func (m RecordsModel) columns() []table.Column {
	if m.currentTab().ID == runsTabID {
		return []table.Column{
			{Title: "Date", Width: 13},
			{Title: "Mode", Width: 9},
			{Title: "Size", Width: 7},
			{Title: "Seed", Width: 20},
			{Title: "Path", Width: 5},
			{Title: "Steps", Width: 6},
			{Title: "Result", Width: 8},
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 18},
	}
}

// createTable builds a styled table for the current tab.
func (m RecordsModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)), // Leave room for title, tabs and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m RecordsModel) currentTab() recordsTab {
	return m.tabs[m.tabCursor]
}

// load fetches rows for the current tab and rebuilds the table.
func (m *RecordsModel) load() {
	m.rows = nil
	if m.store != nil {
		if m.currentTab().ID == runsTabID {
			m.rows = m.runRows()
		} else {
			m.rows = m.scoreRows(m.currentTab().ID)
		}
	}

	m.table = m.createTable()
	m.table.SetRows(m.rows)
	m.table.GotoTop()
}

func (m RecordsModel) scoreRows(gameID string) []table.Row {
	scores, err := m.store.TopScores(gameID, maxScores)
	if err != nil {
		return nil
	}
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func (m RecordsModel) runRows() []table.Row {
	runs, err := m.store.RecentRuns(maxRuns)
	if err != nil {
		return nil
	}
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		mode := "classic"
		if strings.HasSuffix(r.GameID, "_endless") {
			mode = "endless"
		}
		result := "solved"
		if !r.Solved {
			result = "no path"
		}
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			mode,
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.PathLen),
			strconv.Itoa(r.Steps),
			result,
		}
	}
	return rows
}

// Init initializes the records model.
func (m RecordsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the records screen.
func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.tabCursor = (m.tabCursor + 1) % len(m.tabs)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tabCursor = (m.tabCursor - 1 + len(m.tabs)) % len(m.tabs)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.table.SetRows(m.rows)
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the records screen.
func (m RecordsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	title := menuTitleStyle.MarginBottom(1).Render("RECORDS - " + m.currentTab().Title)
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(boxStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTabs draws the tab bar, or just the current tab when it does not fit.
func (m RecordsModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.tabCursor {
			tabs[i] = activeStyle.Render(t.Title)
		} else {
			tabs[i] = tabStyle.Render(t.Title)
		}
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(line) > m.width-4 {
		return fmt.Sprintf("< %s >", m.currentTab().Title)
	}
	return line
}

// renderTableContent renders the table or an empty message.
func (m RecordsModel) renderTableContent() string {
	if len(m.rows) > 0 {
		return m.table.View()
	}

	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)
	if m.currentTab().ID == runsTabID {
		return emptyStyle.Render("No mazes walked yet.\nPlay a round to fill the history!")
	}
	return emptyStyle.Render("No scores recorded yet.\nReach a goal to set a high score!")
}

// IsGoingBack returns true if user wants to go back to menu.
func (m RecordsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m RecordsModel) IsQuitting() bool {
	return m.quitting
}

// RunRecords runs the records screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunRecords(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewRecordsModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(RecordsModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
