package duel

import "github.com/vovakirdan/tui-duel/internal/combat"

// Snapshot captures the duel state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Encounter string
	State     combat.State
	Turn      int
	PlayerHP  int
	MonsterHP int
	LogLen    int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{Mode: string(g.mode)}
	}
	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Encounter: g.encounter.ID,
		State:     g.session.State(),
		Turn:      g.session.Turn(),
		PlayerHP:  g.session.Player().HP,
		MonsterHP: g.session.Monster().HP,
		LogLen:    g.session.LogLen(),
	}
}
