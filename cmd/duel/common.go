package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-duel/internal/combat"
	"github.com/vovakirdan/tui-duel/internal/config"
	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/games/duel"
	"github.com/vovakirdan/tui-duel/internal/platform/tui"
	"github.com/vovakirdan/tui-duel/internal/storage"
)

// runtimeConfig sizes the screen to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the battle history. The game still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open battle database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// encounterItems lists the configured encounters for menus, optionally
// followed by a random pick.
func encounterItems(cfg config.DuelConfig, withRandom bool) []tui.EncounterItem {
	items := make([]tui.EncounterItem, 0, len(cfg.Encounters)+1)
	for _, e := range cfg.Encounters {
		items = append(items, tui.EncounterItem{
			ID:     e.ID,
			Title:  e.Title,
			Detail: statLine(e.Monster.Stats),
		})
	}
	if withRandom {
		items = append(items, tui.EncounterItem{ID: duel.RandomEncounter, Title: "Random opponent"})
	}
	return items
}

// lookupEncounter finds a configured encounter, pointing the user at
// 'duel list' when the ID is unknown.
func lookupEncounter(cfg config.DuelConfig, id string) (config.EncounterConfig, error) {
	enc, err := cfg.Encounter(id)
	if err != nil {
		return enc, fmt.Errorf("%w (run 'duel list' to see encounters)", err)
	}
	return enc, nil
}

func statLine(s combat.Stats) string {
	return fmt.Sprintf("HP %d  ATK %d  DEF %d", s.MaxHP, s.Attack, s.Defense)
}

// gameIDForMode maps the --mode flag to a registered game ID.
func gameIDForMode(mode string) (string, error) {
	switch duel.Mode(mode) {
	case "", duel.ModeClassic:
		return "duel", nil
	case duel.ModeTactics:
		return "duel_tactics", nil
	}
	return "", fmt.Errorf("unknown mode %q (use classic or tactics)", mode)
}
