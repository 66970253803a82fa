// Package config provides YAML-based duel configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-duel/internal/combat"
)

// DuelConfig contains all configuration for a duel.
type DuelConfig struct {
	Player     CharacterConfig   `yaml:"player"`
	Abilities  []AbilityConfig   `yaml:"abilities"`
	Encounters []EncounterConfig `yaml:"encounters"`
	Timing     TimingConfig      `yaml:"timing"`
	Log        LogConfig         `yaml:"log"`
}

// CharacterConfig describes a combatant.
type CharacterConfig struct {
	Name  string       `yaml:"name"`
	Stats combat.Stats `yaml:"stats"`
}

// AbilityConfig is one entry of the player's tactics loadout.
type AbilityConfig struct {
	Name     string `yaml:"name"`
	Power    int    `yaml:"power"`
	Cooldown int    `yaml:"cooldown"` // In player turns
}

// EncounterConfig describes a monster the player can face.
type EncounterConfig struct {
	ID      string          `yaml:"id"`
	Title   string          `yaml:"title"`
	Monster CharacterConfig `yaml:"monster"`
	Ability combat.Ability  `yaml:"ability"`
}

// TimingConfig controls pacing of the host loop.
type TimingConfig struct {
	MonsterDelayMS int `yaml:"monster_delay_ms"`
}

// LogConfig controls the combat log.
type LogConfig struct {
	Capacity int `yaml:"capacity"`
	Visible  int `yaml:"visible"` // Lines shown on screen
}

// ErrUnknownEncounter is returned when an encounter ID is not configured.
var ErrUnknownEncounter = errors.New("config: unknown encounter")

// MonsterDelay returns the configured counter-attack delay.
func (c DuelConfig) MonsterDelay() time.Duration {
	return time.Duration(c.Timing.MonsterDelayMS) * time.Millisecond
}

// Encounter looks up an encounter by ID.
func (c DuelConfig) Encounter(id string) (EncounterConfig, error) {
	for _, e := range c.Encounters {
		if e.ID == id {
			return e, nil
		}
	}
	return EncounterConfig{}, fmt.Errorf("%w %q", ErrUnknownEncounter, id)
}

// Validate checks the configuration for values the engine cannot use.
func (c DuelConfig) Validate() error {
	var errs []error

	if c.Player.Name == "" {
		errs = append(errs, errors.New("player: name is required"))
	}
	if err := c.Player.Stats.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("player: %w", err))
	}

	ready := len(c.Abilities) == 0
	for i, a := range c.Abilities {
		if a.Cooldown == 0 {
			ready = true
		}
		if a.Name == "" {
			errs = append(errs, fmt.Errorf("abilities[%d]: name is required", i))
		}
		if a.Cooldown < 0 {
			errs = append(errs, fmt.Errorf("abilities[%d]: cooldown must not be negative", i))
		}
	}

	// Cooldowns only tick when the player acts, so one ability must always be usable
	if !ready {
		errs = append(errs, errors.New("abilities: at least one needs cooldown 0"))
	}

	if len(c.Encounters) == 0 {
		errs = append(errs, errors.New("encounters: at least one is required"))
	}
	seen := make(map[string]bool, len(c.Encounters))
	for i, e := range c.Encounters {
		switch {
		case e.ID == "":
			errs = append(errs, fmt.Errorf("encounters[%d]: id is required", i))
		case seen[e.ID]:
			errs = append(errs, fmt.Errorf("encounters[%d]: duplicate id %q", i, e.ID))
		}
		seen[e.ID] = true
		if err := e.Monster.Stats.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("encounters[%d] %s: %w", i, e.ID, err))
		}
		if e.Ability.Name == "" && e.Ability.Power != 0 {
			errs = append(errs, fmt.Errorf("encounters[%d] %s: ability needs a name", i, e.ID))
		}
	}

	if c.Timing.MonsterDelayMS < 0 {
		errs = append(errs, errors.New("timing: monster_delay_ms must not be negative"))
	}
	if c.Log.Capacity < 0 || c.Log.Visible < 0 {
		errs = append(errs, errors.New("log: capacity and visible must not be negative"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// PlayerCharacter builds the player at full health.
func (c DuelConfig) PlayerCharacter() combat.Character {
	return combat.NewCharacter(c.Player.Name, c.Player.Stats)
}

// MonsterCharacter builds the encounter's monster at full health.
func (e EncounterConfig) MonsterCharacter() combat.Character {
	return combat.NewCharacter(e.Monster.Name, e.Monster.Stats)
}

// MonsterAbility returns the encounter's ability, defaulting to a basic attack
// when none is configured. Validate rejects a power without a name.
func (e EncounterConfig) MonsterAbility() combat.Ability {
	if e.Ability.Name == "" {
		return combat.BasicAttack()
	}
	return e.Ability
}

// Loadout converts the configured abilities into combat slots.
// Falls back to the built-in tactics loadout when none are configured.
func (c DuelConfig) Loadout() []combat.Slot {
	if len(c.Abilities) == 0 {
		return combat.TacticsLoadout()
	}
	slots := make([]combat.Slot, 0, len(c.Abilities))
	for _, a := range c.Abilities {
		slots = append(slots, combat.NewSlot(combat.Ability{Name: a.Name, Power: a.Power}, a.Cooldown))
	}
	return slots
}

// SessionOptions returns the engine options shared by every duel mode for
// the given encounter.
func (c DuelConfig) SessionOptions(e EncounterConfig) []combat.Option {
	return []combat.Option{
		combat.WithMonsterDelay(c.MonsterDelay()),
		combat.WithLogCapacity(c.Log.Capacity),
		combat.WithMonsterAbility(e.MonsterAbility()),
	}
}
