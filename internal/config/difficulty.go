package config

import (
	"errors"
	"fmt"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ErrUnknownPreset is returned for preset names other than easy, normal or hard.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w %q (expected easy, normal or hard)", ErrUnknownPreset, s)
	}
}

// monsterScale returns the percentage applied to monster HP and attack.
func monsterScale(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 75
	case DifficultyHard:
		return 130
	default:
		return 100
	}
}

// ApplyPreset scales every monster for the preset. Stats never drop below
// what the engine accepts (max_hp 1, attack 0).
func ApplyPreset(cfg *DuelConfig, preset DifficultyPreset) {
	scale := monsterScale(preset)
	if scale == 100 {
		return
	}
	for i := range cfg.Encounters {
		st := &cfg.Encounters[i].Monster.Stats
		st.MaxHP = max(st.MaxHP*scale/100, 1)
		st.Attack = max(st.Attack*scale/100, 0)
	}

	// Hard duels also answer faster
	if preset == DifficultyHard {
		cfg.Timing.MonsterDelayMS = cfg.Timing.MonsterDelayMS * 3 / 4
	}
}
