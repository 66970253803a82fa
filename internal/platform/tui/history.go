package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-duel/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show encounter sidebar
	sidebarWidth       = 22  // Width of encounter sidebar
	maxBattles         = 100 // Max battles to load
)

// allEncounters is the sidebar entry listing every battle.
var allEncounters = EncounterItem{Title: "All encounters"}

// HistoryKeyMap defines the key bindings for the battle history.
type HistoryKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Details key.Binding
	Back    key.Binding
	Quit    key.Binding
	Next    key.Binding
	Prev    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Details, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Details, k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
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
			key.WithHelp("left/h", "prev encounter"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next encounter"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next encounter"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev encounter"),
		),
		Details: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "combat log"),
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

// HistoryModel is the Bubble Tea model for the battle history screen.
type HistoryModel struct {
	encounters  []EncounterItem
	cursor      int // Selected encounter index
	store       *storage.Store
	battles     []storage.BattleRecord
	stats       *storage.EncounterStats
	details     *storage.BattleRecord // Battle whose combat log is open
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool
}

// NewHistoryModel creates a new history model for the given encounters.
// The first sidebar entry always lists every encounter.
func NewHistoryModel(items []EncounterItem, store *storage.Store, width, height int) HistoryModel {
	encounters := make([]EncounterItem, 0, len(items)+1)
	encounters = append(encounters, allEncounters)
	encounters = append(encounters, items...)

	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		encounters:  encounters,
		store:       store,
		keys:        DefaultHistoryKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.loadBattles()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Encounter", Width: 12},
		{Title: "Mode", Width: 8},
		{Title: "Result", Width: 8},
		{Title: "Turns", Width: 5},
		{Title: "Dealt", Width: 5},
		{Title: "Taken", Width: 5},
	}

	height := m.height - 10 // Header, stats line, help and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

// loadBattles loads battles and stats for the selected encounter.
func (m *HistoryModel) loadBattles() {
	m.battles = nil
	m.stats = nil
	defer m.updateTableRows()

	if m.store == nil {
		return
	}

	id := m.encounters[m.cursor].ID
	if battles, err := m.store.RecentBattles(id, maxBattles); err == nil {
		m.battles = battles
	}
	if id != "" {
		if stats, err := m.store.GetEncounterStats(id); err == nil {
			m.stats = stats
		}
	}
}

// updateTableRows updates the table with current battles.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.battles))
	for i, b := range m.battles {
		rows[i] = table.Row{
			b.CreatedAt.Format("Jan 02 15:04"),
			b.Encounter,
			modeLabel(b.GameID),
			resultLabel(b),
			fmt.Sprintf("%d", b.Turns),
			fmt.Sprintf("%d", b.DamageDealt),
			fmt.Sprintf("%d", b.DamageTaken),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func modeLabel(gameID string) string {
	if gameID == "duel_tactics" {
		return "tactics"
	}
	return "classic"
}

func resultLabel(b storage.BattleRecord) string {
	switch {
	case b.Winner == "":
		return "fled"
	case b.Won():
		return "victory"
	default:
		return "defeat"
	}
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.details != nil {
			return m.updateDetails(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Right):
			m.cursor = (m.cursor + 1) % len(m.encounters)
			m.loadBattles()
			return m, nil

		case key.Matches(msg, m.keys.Prev), key.Matches(msg, m.keys.Left):
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.encounters) - 1
			}
			m.loadBattles()
			return m, nil

		case key.Matches(msg, m.keys.Details):
			m.openDetails()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
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

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m HistoryModel) updateDetails(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Details):
		m.details = nil
	}
	return m, nil
}

// openDetails loads the combat log of the highlighted battle.
func (m *HistoryModel) openDetails() {
	if m.store == nil || len(m.battles) == 0 {
		return
	}
	i := m.table.Cursor()
	if i < 0 || i >= len(m.battles) {
		return
	}
	rec, err := m.store.BattleByID(m.battles[i].BattleID)
	if err != nil || rec == nil {
		return
	}
	m.details = rec
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("BATTLE HISTORY - %s", m.encounters[m.cursor].Title)
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	switch {
	case m.details != nil:
		b.WriteString(m.renderDetails())
	case m.showSidebar:
		b.WriteString(m.renderWideLayout())
	default:
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the history with an encounter sidebar.
func (m HistoryModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Encounters\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, e := range m.encounters {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		sidebar.WriteString(style.Render(cursor + sidebarLabel(e.Title)))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the current encounter name above the table.
// sidebarLabel fits an encounter title into the sidebar by display width.
func sidebarLabel(title string) string {
	return runewidth.Truncate(title, sidebarWidth-6, "…")
}

func (m HistoryModel) renderNarrowLayout() string {
	var b strings.Builder

	tabLine := fmt.Sprintf("< %s >", m.encounters[m.cursor].Title)
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(tableStyle.Render(m.renderTableContent()))

	return b.String()
}

// renderTableContent renders the stats line and table, or an empty message.
func (m HistoryModel) renderTableContent() string {
	if len(m.battles) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No battles recorded yet.\nPick an opponent from the menu!")
	}

	var b strings.Builder
	if m.stats != nil && m.stats.Battles > 0 {
		fmt.Fprintf(&b, "Wins %d/%d (%.0f%%)  Avg turns %.1f  Best damage %d\n\n",
			m.stats.Wins, m.stats.Battles, m.stats.WinRate()*100, m.stats.AvgTurns, m.stats.BestDamage)
	}
	b.WriteString(m.table.View())
	return b.String()
}

// renderDetails renders the stored combat log of one battle.
func (m HistoryModel) renderDetails() string {
	d := m.details

	var b strings.Builder
	fmt.Fprintf(&b, "%s vs %s  (%s, %s)\n", d.PlayerName, d.MonsterName, modeLabel(d.GameID), resultLabel(*d))
	b.WriteString(strings.Repeat("-", 40))
	b.WriteString("\n")
	for _, ev := range d.Events {
		fmt.Fprintf(&b, "%2d. %s\n", ev.Turn, ev.String())
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the battle history screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunHistory(items []EncounterItem, store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewHistoryModel(items, store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
