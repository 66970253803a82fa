package simulate

import (
	"testing"

	"github.com/vovakirdan/tui-duel/internal/combat"
	"github.com/vovakirdan/tui-duel/internal/config"
)

func dragon() config.EncounterConfig {
	return config.EncounterConfig{
		ID:      "dragon",
		Title:   "Dragon's Lair",
		Monster: config.CharacterConfig{Name: "Dragon", Stats: combat.Stats{MaxHP: 120, Attack: 14, Defense: 8}},
		Ability: combat.Ability{Name: "Fire Breath", Power: 10},
	}
}

func TestRunClassicReference(t *testing.T) {
	cfg := config.Default()
	res := Run(cfg, cfg.Encounters[0], Options{})

	if !res.Finished || !res.PlayerWon() {
		t.Fatalf("expected player victory, got %+v", res.Summary)
	}
	if res.Summary.Turns != 3 {
		t.Errorf("Turns = %d, expected 3", res.Summary.Turns)
	}
	if res.Summary.PlayerHP != 21 || res.Summary.MonsterHP != -8 {
		t.Errorf("HP = %d/%d, expected 21/-8", res.Summary.PlayerHP, res.Summary.MonsterHP)
	}
	if len(res.Events) != 3 {
		t.Errorf("Expected 3 events, got %d", len(res.Events))
	}
}

func TestRunTacticsUsesStrongestAbility(t *testing.T) {
	cfg := config.Default()
	res := Run(cfg, cfg.Encounters[0], Options{Tactics: true})

	if !res.PlayerWon() || res.Summary.Turns != 1 {
		t.Fatalf("expected one-hit victory, got %+v", res.Summary)
	}
	if res.Events[0].Ability != "Powerful Attack" || res.Events[0].Damage != 21 {
		t.Errorf("first event = %+v", res.Events[0])
	}
}

func TestRunMonsterWins(t *testing.T) {
	res := Run(config.Default(), dragon(), Options{})

	if !res.Finished || res.PlayerWon() {
		t.Fatalf("expected dragon victory, got %+v", res.Summary)
	}
	if res.Summary.Turns != 4 || res.Summary.PlayerHP != -14 {
		t.Errorf("Turns = %d, PlayerHP = %d; expected 4, -14", res.Summary.Turns, res.Summary.PlayerHP)
	}
}

func TestRunMaxTurns(t *testing.T) {
	res := Run(config.Default(), dragon(), Options{MaxTurns: 1})

	if res.Finished {
		t.Error("duel should be unfinished after one attack")
	}
	if res.Summary.Turns != 1 {
		t.Errorf("Turns = %d, expected 1", res.Summary.Turns)
	}
}

func TestRunHugeMaxTurns(t *testing.T) {
	cfg := config.Default()
	res := Run(cfg, cfg.Encounters[0], Options{MaxTurns: 1 << 40})

	if !res.PlayerWon() || res.Summary.Turns != 3 {
		t.Errorf("expected the usual 3-turn victory, got %+v", res.Summary)
	}
}

func TestRunKeepsFullTranscript(t *testing.T) {
	cfg := config.Default()
	wall := config.EncounterConfig{
		ID:      "wall",
		Title:   "Living Wall",
		Monster: config.CharacterConfig{Name: "Wall", Stats: combat.Stats{MaxHP: 1000, Defense: 100}},
		Ability: combat.Ability{Name: "Lean", Power: 0},
	}

	res := Run(cfg, wall, Options{})
	if !res.Finished || res.PlayerWon() {
		t.Fatalf("expected the wall to win, got %+v", res.Summary)
	}
	if len(res.Events) != res.Summary.Turns {
		t.Errorf("Events = %d, expected one per turn (%d)", len(res.Events), res.Summary.Turns)
	}
	if len(res.Events) <= combat.DefaultLogCapacity {
		t.Errorf("Events = %d, expected more than the session log holds", len(res.Events))
	}
	for i, ev := range res.Events {
		if ev.Turn != i+1 {
			t.Fatalf("Events[%d].Turn = %d, expected %d", i, ev.Turn, i+1)
		}
	}
}

func TestRunAll(t *testing.T) {
	cfg := config.Default()
	cfg.Encounters = append(cfg.Encounters, dragon())

	results := RunAll(cfg, Options{})
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Encounter != "slime" || !results[0].PlayerWon() {
		t.Errorf("slime result = %+v", results[0])
	}
	if results[1].Encounter != "dragon" || results[1].PlayerWon() {
		t.Errorf("dragon result = %+v", results[1])
	}
}

func TestBestReadySlot(t *testing.T) {
	basic := combat.NewSlot(combat.BasicAttack(), 0)
	quick := combat.NewSlot(combat.QuickStrike(), 0)
	powerful := combat.NewSlot(combat.PowerfulAttack(), 3)
	cooling := powerful
	cooling.Remaining = 2
	twin := combat.NewSlot(combat.Ability{Name: "Twin", Power: 5}, 0)

	tests := []struct {
		name    string
		loadout []combat.Slot
		want    int
	}{
		{"strongest ready", []combat.Slot{basic, powerful, quick}, 1},
		{"skips cooling", []combat.Slot{basic, cooling, quick}, 0},
		{"tie keeps lowest index", []combat.Slot{quick, basic, twin}, 1},
		{"nothing ready", []combat.Slot{cooling}, -1},
		{"empty", nil, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bestReadySlot(tt.loadout); got != tt.want {
				t.Errorf("bestReadySlot() = %d, expected %d", got, tt.want)
			}
		})
	}
}
