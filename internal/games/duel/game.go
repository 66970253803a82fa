// Package duel drives a combat session from the platform's fixed-rate tick
// loop: it maps input actions to player attacks, accumulates time spent in
// the monster's turn and renders the duel into a core.Screen.
package duel

import (
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/tui-duel/internal/combat"
	"github.com/vovakirdan/tui-duel/internal/config"
	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/registry"
)

// Mode selects the player's loadout.
type Mode string

const (
	ModeClassic Mode = "classic" // Basic attack only
	ModeTactics Mode = "tactics" // Configured abilities with cooldowns
)

// RandomEncounter picks an encounter using the runtime seed.
const RandomEncounter = "random"

var skillActions = []core.Action{core.ActionSkill1, core.ActionSkill2, core.ActionSkill3}

// noticeTicks is how long a rejected-action notice stays on screen (at 60 fps).
const noticeTicks = 90

// Game implements registry.Game for both duel modes.
type Game struct {
	mode      Mode
	cfg       config.DuelConfig
	encounter config.EncounterConfig
	wantID    string // Requested encounter ID, may be RandomEncounter

	session    *combat.Session
	transcript []combat.Event
	rng        *rand.Rand
	tick       uint64
	tickRate   int

	// Ticks spent in the current monster turn
	monsterTicks int

	notice      string
	noticeUntil uint64
}

// Package-level settings applied to new games, set by the CLI before play.
var (
	settingsMu       sync.RWMutex
	settings         = config.Default()
	defaultEncounter string
)

// Configure sets the configuration used by games created afterwards.
func Configure(cfg config.DuelConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = cfg
}

// Config returns the configuration new games will use.
func Config() config.DuelConfig {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

// SetEncounter sets the encounter new games start with.
// Empty selects the first configured encounter.
func SetEncounter(id string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	defaultEncounter = id
}

// New creates a classic duel.
func New() *Game {
	return newGame(ModeClassic)
}

// NewTactics creates a duel with the configured ability loadout.
func NewTactics() *Game {
	return newGame(ModeTactics)
}

func newGame(mode Mode) *Game {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return &Game{
		mode:   mode,
		cfg:    settings,
		wantID: defaultEncounter,
	}
}

func init() {
	registry.Register("duel", func() registry.Game {
		return New()
	})
	registry.Register("duel_tactics", func() registry.Game {
		return NewTactics()
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	if g.mode == ModeTactics {
		return "duel_tactics"
	}
	return "duel"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeTactics {
		return "Duel (Tactics)"
	}
	return "Duel"
}

// SelectEncounter changes the encounter used by the next Reset.
// Returns config.ErrUnknownEncounter for IDs that are not configured.
func (g *Game) SelectEncounter(id string) error {
	if id != "" && id != RandomEncounter {
		if _, err := g.cfg.Encounter(id); err != nil {
			return err
		}
	}
	g.wantID = id
	return nil
}

// Reset starts a new duel.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.tick = 0
	g.monsterTicks = 0
	g.transcript = nil
	g.notice = ""

	g.encounter = g.pickEncounter()

	opts := g.cfg.SessionOptions(g.encounter)
	if g.mode == ModeTactics {
		opts = append(opts, combat.WithPlayerLoadout(g.cfg.Loadout()...))
	}
	g.session = combat.Start(g.cfg.PlayerCharacter(), g.encounter.MonsterCharacter(), opts...)
}

func (g *Game) pickEncounter() config.EncounterConfig {
	list := g.cfg.Encounters
	if len(list) == 0 {
		list = config.Default().Encounters
	}
	switch g.wantID {
	case "":
		return list[0]
	case RandomEncounter:
		return list[g.rng.Intn(len(list))]
	}
	if e, err := g.cfg.Encounter(g.wantID); err == nil {
		return e
	}
	return list[0]
}

// Step advances the duel by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(core.DefaultConfig())
	}
	g.tick++

	resolved := false
	switch g.session.State().Kind {
	case combat.PlayerTurn:
		resolved = g.playerAction(in)
	case combat.MonsterTurn:
		g.monsterTicks++
		if ev, ok := g.session.MonsterAttackTick(g.monsterElapsed()); ok {
			g.record(ev)
			resolved = true
		}
	}

	return core.StepResult{State: g.State(), Resolved: resolved}
}

// playerAction applies the first attack action found in the frame.
func (g *Game) playerAction(in core.InputFrame) bool {
	slot := -1
	if in.Has(core.ActionAttack) {
		slot = 0
	} else {
		for _, a := range skillActions {
			if in.Has(a) {
				slot = a.SkillSlot()
				break
			}
		}
	}
	if slot < 0 {
		return false
	}

	ev, ok := g.session.PlayerUseAbility(slot)
	if !ok {
		loadout := g.session.Loadout()
		if slot < len(loadout) && !loadout[slot].Ready() {
			g.showNotice(loadout[slot].Ability.Name + " is cooling down")
		}
		return false
	}

	g.record(ev)
	g.monsterTicks = 0
	return true
}

// monsterElapsed converts ticks to time without accumulating rounding error.
func (g *Game) monsterElapsed() time.Duration {
	return time.Duration(g.monsterTicks) * time.Second / time.Duration(g.tickRate)
}

func (g *Game) record(ev combat.Event) {
	g.transcript = append(g.transcript, ev)
	g.notice = ""
}

func (g *Game) showNotice(msg string) {
	g.notice = msg
	g.noticeUntil = g.tick + noticeTicks
}

// State returns the platform-level state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	st := g.session.State()
	return core.GameState{
		Score:    g.session.Summary().DamageDealt,
		GameOver: st.IsOver(),
		Won:      st.IsOver() && st.Winner == combat.Player,
	}
}

// Encounter returns the ID of the encounter being fought.
func (g *Game) Encounter() string {
	return g.encounter.ID
}

// Summary returns totals for the current duel.
func (g *Game) Summary() combat.Summary {
	if g.session == nil {
		return combat.Summary{}
	}
	return g.session.Summary()
}

// Transcript returns every event of the current duel.
func (g *Game) Transcript() []combat.Event {
	return append([]combat.Event(nil), g.transcript...)
}
