package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/registry"
	"github.com/vovakirdan/tui-duel/internal/storage"
)

// statusTicks is how long a status line stays visible (at 60 fps).
const statusTicks = 120

// Clipboard receives the combat log when the player presses C.
type Clipboard func(text string) error

// logTexter is implemented by games that can export their combat log.
type logTexter interface {
	LogText() string
}

// GameModel runs one game and reports when the player wants to leave it.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	clipboard  Clipboard
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper

	status      string
	statusTicks int

	quitting    bool
	backToMenu  bool
	quitOnBack  bool // Standalone program, no parent model to return to
	battleSaved bool // Whether the current battle has been written to the store
}

// GameOption configures a GameModel.
type GameOption func(*GameModel)

// WithLogger sets the logger used for storage and clipboard failures.
func WithLogger(l *log.Logger) GameOption {
	return func(m *GameModel) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithClipboard replaces the system clipboard.
func WithClipboard(c Clipboard) GameOption {
	return func(m *GameModel) {
		m.clipboard = c
	}
}

// NewGameModel creates a model for the given game. store may be nil.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...GameOption) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     log.Default(),
		clipboard:  clipboard.WriteAll,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		// The battle survives resizes; only the buffer changes
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input. Copy and back act immediately;
// everything else is queued for the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.saveBattle()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionCopyLog:
		m.copyLog()
	case core.ActionBack:
		m.saveBattle()
		m.backToMenu = true
		if m.quitOnBack {
			return m, tea.Quit
		}
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.statusTicks > 0 {
		m.statusTicks--
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.battleSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.saveBattle()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveBattle writes the current battle once. Battles without a single
// resolved attack are not recorded.
func (m *GameModel) saveBattle() {
	if m.battleSaved {
		return
	}
	m.battleSaved = true

	sum := m.game.Summary()
	if m.store == nil || sum.Turns == 0 {
		return
	}

	rec := storage.NewBattleRecord(m.game.ID(), m.game.Encounter(), sum, m.game.Transcript())
	if _, err := m.store.SaveBattle(rec); err != nil {
		m.logger.Warn("could not save battle", "game", m.game.ID(), "error", err)
	}
}

func (m *GameModel) copyLog() {
	lt, ok := m.game.(logTexter)
	if !ok || m.clipboard == nil {
		m.setStatus("Clipboard not available")
		return
	}
	if err := m.clipboard(lt.LogText()); err != nil {
		m.logger.Debug("clipboard write failed", "error", err)
		m.setStatus("Clipboard not available")
		return
	}
	m.setStatus("Combat log copied")
}

func (m *GameModel) setStatus(msg string) {
	m.status = msg
	m.statusTicks = statusTicks
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.statusTicks > 0 && m.screen.Height() > 2 {
		m.screen.DrawTextCentered(m.screen.Height()-2, " "+m.status+" ", core.ColorBrightYellow)
	}
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the local terminal.
// Returns true if the user left with Back rather than Quit.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...GameOption) (goBack bool, err error) {
	model := NewGameModel(game, store, cfg, opts...)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
