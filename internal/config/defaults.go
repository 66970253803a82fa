package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-duel/internal/combat"
)

//go:embed defaults/duel.yaml
var defaultDuelYAML []byte

// Default returns the built-in duel configuration. It mirrors the embedded
// YAML and is used when that cannot be parsed.
func Default() DuelConfig {
	return DuelConfig{
		Player: CharacterConfig{
			Name:  "Hero",
			Stats: combat.Stats{MaxHP: 30, Attack: 10, Defense: 2},
		},
		Abilities: []AbilityConfig{
			{Name: "Basic Attack", Power: 5, Cooldown: 0},
			{Name: "Powerful Attack", Power: 12, Cooldown: 3},
			{Name: "Quick Strike", Power: 3, Cooldown: 0},
		},
		Encounters: []EncounterConfig{
			{
				ID:      "slime",
				Title:   "Slime Pit",
				Monster: CharacterConfig{Name: "Slime", Stats: combat.Stats{MaxHP: 20, Attack: 6, Defense: 1}},
				Ability: combat.BasicAttack(),
			},
		},
		Timing: TimingConfig{MonsterDelayMS: 1000},
		Log:    LogConfig{Capacity: combat.DefaultLogCapacity, Visible: 6},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDuelYAML
}
