package combat

// StateKind enumerates the phases of a duel.
type StateKind int

const (
	PlayerTurn StateKind = iota
	MonsterTurn
	GameOver
)

// String returns a human-readable name for the phase.
func (k StateKind) String() string {
	switch k {
	case PlayerTurn:
		return "PlayerTurn"
	case MonsterTurn:
		return "MonsterTurn"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// State is the value of the turn state machine.
// Winner is only meaningful when Kind is GameOver.
type State struct {
	Kind   StateKind
	Winner Combatant
}

// IsOver returns true once the duel reached its terminal state.
func (s State) IsOver() bool {
	return s.Kind == GameOver
}

// String returns e.g. "PlayerTurn" or "GameOver(Player)".
func (s State) String() string {
	if s.Kind == GameOver {
		return "GameOver(" + s.Winner.String() + ")"
	}
	return s.Kind.String()
}

// afterHit returns the state that follows a resolved attack by side.
func afterHit(side Combatant, defender Character) State {
	if !defender.Alive() {
		return State{Kind: GameOver, Winner: side}
	}
	if side == Player {
		return State{Kind: MonsterTurn}
	}
	return State{Kind: PlayerTurn}
}
