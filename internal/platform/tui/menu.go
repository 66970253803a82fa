package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/registry"
	"github.com/vovakirdan/tui-duel/internal/storage"
)

// EncounterItem represents a selectable opponent in the menu.
type EncounterItem struct {
	ID     string
	Title  string
	Detail string // Short stat line, e.g. "HP 20  ATK 6  DEF 1"
}

// MenuModel is the Bubble Tea model for the encounter picker.
type MenuModel struct {
	items       []EncounterItem
	modes       []registry.GameInfo
	cursor      int
	modeCursor  int
	width       int
	height      int
	store       *storage.Store
	stats       map[string]*storage.EncounterStats
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	quitting    bool
	selected    *EncounterItem // Set when user selects an encounter
	openHistory bool           // True if user pressed Tab for history
}

// NewMenuModel creates a new menu model. store may be nil.
func NewMenuModel(items []EncounterItem, store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		items:     items,
		modes:     registry.List(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}

	if store != nil {
		if stats, err := store.GetAllEncounterStats(); err == nil {
			m.stats = stats
		}
	}

	return m
}

// WithMode preselects the mode with the given game ID.
func (m MenuModel) WithMode(gameID string) MenuModel {
	for i, g := range m.modes {
		if g.ID == gameID {
			m.modeCursor = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionToggleMode:
		if len(m.modes) > 0 {
			m.modeCursor = (m.modeCursor + 1) % len(m.modes)
		}

	case MenuActionSelect:
		if len(m.items) > 0 && len(m.modes) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the duel
		}

	case MenuActionHistory:
		m.openHistory = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  D U E L  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose your opponent", m.width))
	b.WriteString("\n\n")

	if len(m.modes) > 0 {
		b.WriteString(centerText(fmt.Sprintf("Mode: < %s >", m.modes[m.modeCursor].Title), m.width))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := cursor + item.Title
		if item.Detail != "" {
			line += "  (" + item.Detail + ")"
		}
		if st, ok := m.stats[item.ID]; ok && st.Battles > 0 {
			line += fmt.Sprintf("  W %d/%d", st.Wins, st.Battles)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Mode  |  Enter: Fight  |  Tab: History  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected encounter, or nil if none selected.
func (m MenuModel) Selected() *EncounterItem {
	return m.selected
}

// Mode returns the game ID of the selected mode.
func (m MenuModel) Mode() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.modeCursor].ID
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the battle history.
func (m MenuModel) WantsHistory() bool {
	return m.openHistory
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := runewidth.StringWidth(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID       string
	Encounter    string
	Config       core.RuntimeConfig
	WantsHistory bool
	Quit         bool
}

// RunMenu runs the menu and returns the selection result.
// lastMode preselects a mode, e.g. the one played last.
func RunMenu(items []EncounterItem, store *storage.Store, cfg core.RuntimeConfig, lastMode string) (MenuResult, error) {
	model := NewMenuModel(items, store, cfg).WithMode(lastMode)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	return m.result(), nil
}

func (m MenuModel) result() MenuResult {
	result := MenuResult{
		Config: m.Config(),
		GameID: m.Mode(),
	}

	switch {
	case m.WantsHistory():
		result.WantsHistory = true
	case m.IsQuitting():
		result.Quit = true
	case m.Selected() != nil:
		result.Encounter = m.Selected().ID
	default:
		result.Quit = true
	}

	return result
}
