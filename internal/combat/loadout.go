package combat

// Slot is an ability with a cooldown measured in player turns.
// A slot with Cooldown N stays unavailable for the next N player actions
// after it is used.
type Slot struct {
	Ability   Ability
	Cooldown  int
	Remaining int
}

// NewSlot creates a ready slot.
func NewSlot(a Ability, cooldown int) Slot {
	return Slot{Ability: a, Cooldown: max(cooldown, 0)}
}

// Ready returns true when the slot can be used.
func (s Slot) Ready() bool {
	return s.Remaining <= 0
}

func (s *Slot) activate() {
	s.Remaining = s.Cooldown
}

func (s *Slot) tick() {
	if s.Remaining > 0 {
		s.Remaining--
	}
}

// ClassicLoadout is a single basic attack with no cooldown.
func ClassicLoadout() []Slot {
	return []Slot{NewSlot(BasicAttack(), 0)}
}

// TacticsLoadout is the three-slot player set. Basic attack stays in slot 0
// so that PlayerAttack keeps its usual meaning.
func TacticsLoadout() []Slot {
	return []Slot{
		NewSlot(BasicAttack(), 0),
		NewSlot(PowerfulAttack(), 3),
		NewSlot(QuickStrike(), 0),
	}
}
