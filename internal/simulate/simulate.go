// Package simulate plays duels headlessly, without a host loop or delays.
// The player always picks the strongest ready ability.
package simulate

import (
	"github.com/vovakirdan/tui-duel/internal/combat"
	"github.com/vovakirdan/tui-duel/internal/config"
)

// DefaultMaxTurns bounds a single simulated duel.
const DefaultMaxTurns = 1000

// Options controls a simulation.
type Options struct {
	Tactics  bool // Use the configured loadout instead of the basic attack
	MaxTurns int  // Attacks resolved before giving up, 0 means DefaultMaxTurns
}

// Result is the outcome of one simulated duel.
type Result struct {
	Encounter string
	Tactics   bool
	Finished  bool
	Summary   combat.Summary
	Events    []combat.Event
}

// PlayerWon reports whether the duel ended in a player victory.
func (r Result) PlayerWon() bool {
	return r.Finished && r.Summary.State.Winner == combat.Player
}

// Run plays one duel against enc to completion or until MaxTurns attacks
// have been resolved.
func Run(cfg config.DuelConfig, enc config.EncounterConfig, opts Options) Result {
	maxTurns := opts.MaxTurns
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}

	sessOpts := cfg.SessionOptions(enc)
	sessOpts = append(sessOpts, combat.WithMonsterDelay(0))
	if opts.Tactics {
		sessOpts = append(sessOpts, combat.WithPlayerLoadout(cfg.Loadout()...))
	}
	s := combat.Start(cfg.PlayerCharacter(), enc.MonsterCharacter(), sessOpts...)

	// The session log is bounded, so the full transcript is kept here
	var events []combat.Event
loop:
	for s.Turn() < maxTurns {
		var (
			ev combat.Event
			ok bool
		)
		switch s.State().Kind {
		case combat.PlayerTurn:
			slot := bestReadySlot(s.Loadout())
			if slot < 0 {
				break loop
			}
			ev, ok = s.PlayerUseAbility(slot)
		case combat.MonsterTurn:
			ev, ok = s.MonsterAttackTick(0)
		case combat.GameOver:
			break loop
		}
		if ok {
			events = append(events, ev)
		}
	}

	return Result{
		Encounter: enc.ID,
		Tactics:   opts.Tactics,
		Finished:  s.State().IsOver(),
		Summary:   s.Summary(),
		Events:    events,
	}
}

// RunAll simulates every configured encounter in order.
func RunAll(cfg config.DuelConfig, opts Options) []Result {
	results := make([]Result, 0, len(cfg.Encounters))
	for _, enc := range cfg.Encounters {
		results = append(results, Run(cfg, enc, opts))
	}
	return results
}

// bestReadySlot returns the ready slot with the highest power, preferring
// the lowest index on ties, or -1 when nothing is ready.
func bestReadySlot(loadout []combat.Slot) int {
	best := -1
	for i, slot := range loadout {
		if !slot.Ready() {
			continue
		}
		if best < 0 || slot.Ability.Power > loadout[best].Ability.Power {
			best = i
		}
	}
	return best
}
