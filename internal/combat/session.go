package combat

import "time"

// DefaultMonsterDelay is the pause before the monster answers a player hit.
const DefaultMonsterDelay = time.Second

// Session owns one duel: both characters, the turn state and the log.
// It is meant to be driven from a single goroutine.
type Session struct {
	player  Character
	monster Character
	state   State
	log     *Log

	loadout        []Slot
	monsterAbility Ability
	monsterDelay   time.Duration

	turn        int
	damageDealt int
	damageTaken int
}

// Option configures a Session at Start.
type Option func(*Session)

// WithMonsterDelay sets how long the monster waits before its counter-attack.
// Zero makes the monster answer on the first tick.
func WithMonsterDelay(d time.Duration) Option {
	return func(s *Session) {
		s.monsterDelay = max(d, 0)
	}
}

// WithLogCapacity sets how many events the session log keeps.
func WithLogCapacity(n int) Option {
	return func(s *Session) {
		s.log = NewLog(n)
	}
}

// WithPlayerLoadout replaces the player's abilities. Slot 0 is the one used
// by PlayerAttack. An empty loadout is ignored.
func WithPlayerLoadout(slots ...Slot) Option {
	return func(s *Session) {
		if len(slots) == 0 {
			return
		}
		s.loadout = append([]Slot(nil), slots...)
	}
}

// WithMonsterAbility sets the ability used by every monster counter-attack.
func WithMonsterAbility(a Ability) Option {
	return func(s *Session) {
		s.monsterAbility = a
	}
}

// Start begins a duel in PlayerTurn with an empty log.
func Start(player, monster Character, opts ...Option) *Session {
	s := &Session{
		player:         player,
		monster:        monster,
		state:          State{Kind: PlayerTurn},
		log:            NewLog(DefaultLogCapacity),
		loadout:        ClassicLoadout(),
		monsterAbility: BasicAttack(),
		monsterDelay:   DefaultMonsterDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlayerAttack resolves the player's slot 0 ability against the monster.
// It returns false and changes nothing unless the session is in PlayerTurn.
func (s *Session) PlayerAttack() (Event, bool) {
	return s.PlayerUseAbility(0)
}

// PlayerUseAbility resolves the ability in the given loadout slot.
// It returns false and changes nothing when it is not the player's turn,
// the slot does not exist, or the slot is cooling down.
func (s *Session) PlayerUseAbility(slot int) (Event, bool) {
	if s.state.Kind != PlayerTurn {
		return Event{}, false
	}
	if slot < 0 || slot >= len(s.loadout) || !s.loadout[slot].Ready() {
		return Event{}, false
	}

	ev := s.resolve(s.player, &s.monster, s.loadout[slot].Ability)
	s.damageDealt += ev.Damage

	for i := range s.loadout {
		s.loadout[i].tick()
	}
	s.loadout[slot].activate()

	s.state = afterHit(Player, s.monster)
	return ev, true
}

// MonsterAttackTick is polled by the host loop while it is the monster's turn.
// elapsed is the time spent in MonsterTurn so far. Nothing happens until
// elapsed reaches the monster delay; then the counter-attack is resolved
// once and the state advances.
func (s *Session) MonsterAttackTick(elapsed time.Duration) (Event, bool) {
	if s.state.Kind != MonsterTurn || elapsed < s.monsterDelay {
		return Event{}, false
	}

	ev := s.resolve(s.monster, &s.player, s.monsterAbility)
	s.damageTaken += ev.Damage

	s.state = afterHit(Monster, s.player)
	return ev, true
}

func (s *Session) resolve(attacker Character, defender *Character, a Ability) Event {
	s.turn++
	ev := ResolveAttack(attacker, defender, a)
	ev.Turn = s.turn
	s.log.Append(ev)
	return ev
}

// State returns the current turn state.
func (s *Session) State() State {
	return s.state
}

// RecentLog returns up to the last n events, oldest first.
func (s *Session) RecentLog(n int) []Event {
	return s.log.Recent(n)
}

// LogLen returns the number of events currently held by the log.
func (s *Session) LogLen() int {
	return s.log.Len()
}

// Player returns a copy of the player character.
func (s *Session) Player() Character {
	return s.player
}

// Monster returns a copy of the monster character.
func (s *Session) Monster() Character {
	return s.monster
}

// Loadout returns a copy of the player's ability slots.
func (s *Session) Loadout() []Slot {
	return append([]Slot(nil), s.loadout...)
}

// MonsterAbility returns the ability used by the monster.
func (s *Session) MonsterAbility() Ability {
	return s.monsterAbility
}

// MonsterDelay returns the configured counter-attack delay.
func (s *Session) MonsterDelay() time.Duration {
	return s.monsterDelay
}

// Turn returns the number of attacks resolved so far.
func (s *Session) Turn() int {
	return s.turn
}

// Summary aggregates a session for storage and reporting.
type Summary struct {
	PlayerName  string
	MonsterName string
	State       State
	Turns       int
	DamageDealt int
	DamageTaken int
	PlayerHP    int
	MonsterHP   int
}

// Summary returns totals for the session so far.
func (s *Session) Summary() Summary {
	return Summary{
		PlayerName:  s.player.Name,
		MonsterName: s.monster.Name,
		State:       s.state,
		Turns:       s.turn,
		DamageDealt: s.damageDealt,
		DamageTaken: s.damageTaken,
		PlayerHP:    s.player.HP,
		MonsterHP:   s.monster.HP,
	}
}
