// Package combat implements the turn-based duel engine: damage resolution,
// the player/monster turn state machine and a bounded combat log.
// It holds no goroutines, performs no I/O and never blocks; the host loop
// drives it by calling PlayerAttack and MonsterAttackTick.
package combat

import (
	"errors"
	"fmt"
)

// Stats are the fixed base attributes of a combatant.
type Stats struct {
	MaxHP   int `yaml:"max_hp"`
	Attack  int `yaml:"attack"`
	Defense int `yaml:"defense"`
}

// Validate reports whether the stats are usable for a new character.
// The engine itself accepts any values; validation belongs to callers that
// build characters from user input.
func (s Stats) Validate() error {
	var errs []error
	if s.MaxHP <= 0 {
		errs = append(errs, fmt.Errorf("max_hp must be positive, got %d", s.MaxHP))
	}
	if s.Attack < 0 {
		errs = append(errs, fmt.Errorf("attack must not be negative, got %d", s.Attack))
	}
	if s.Defense < 0 {
		errs = append(errs, fmt.Errorf("defense must not be negative, got %d", s.Defense))
	}
	return errors.Join(errs...)
}

// Character is one participant of a duel.
// HP is not clamped at zero; a finishing blow may leave it negative.
type Character struct {
	Name  string
	HP    int
	Stats Stats
}

// NewCharacter creates a character at full health.
func NewCharacter(name string, stats Stats) Character {
	return Character{
		Name:  name,
		HP:    stats.MaxHP,
		Stats: stats,
	}
}

// Alive returns true while HP is above zero.
func (c Character) Alive() bool {
	return c.HP > 0
}

// Ability is a named modifier added to the attacker's base attack.
type Ability struct {
	Name  string `yaml:"name"`
	Power int    `yaml:"power"`
}

// BasicAttack returns the default attack every combatant starts with.
func BasicAttack() Ability {
	return Ability{Name: "Basic Attack", Power: 5}
}

// PowerfulAttack returns a heavy hit, usually paired with a long cooldown.
func PowerfulAttack() Ability {
	return Ability{Name: "Powerful Attack", Power: 12}
}

// QuickStrike returns a weak hit, usually paired with no cooldown.
func QuickStrike() Ability {
	return Ability{Name: "Quick Strike", Power: 3}
}

// Combatant identifies a side of the duel.
type Combatant int

const (
	Player Combatant = iota
	Monster
)

// String returns a human-readable name for the side.
func (c Combatant) String() string {
	switch c {
	case Player:
		return "Player"
	case Monster:
		return "Monster"
	default:
		return "Unknown"
	}
}

// Event records one resolved attack. Events are never modified after creation.
type Event struct {
	Turn            int // 1-based sequence number within the session
	Attacker        string
	Defender        string
	Ability         string
	Damage          int // Always >= 1
	DefenderHPAfter int
}

// String formats the event the way the combat log prints it.
func (e Event) String() string {
	return fmt.Sprintf("%s uses %s on %s for %d damage (%s HP: %d)",
		e.Attacker, e.Ability, e.Defender, e.Damage, e.Defender, e.DefenderHPAfter)
}
