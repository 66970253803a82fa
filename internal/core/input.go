package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionAttack         // Space, Enter - basic attack (loadout slot 0)
	ActionSkill1         // 1 - loadout slot 0
	ActionSkill2         // 2 - loadout slot 1
	ActionSkill3         // 3 - loadout slot 2
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R - start a new duel after game over
	ActionCopyLog        // C - copy the combat log to the clipboard
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAttack:
		return "Attack"
	case ActionSkill1:
		return "Skill1"
	case ActionSkill2:
		return "Skill2"
	case ActionSkill3:
		return "Skill3"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionCopyLog:
		return "CopyLog"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// SkillSlot returns the loadout index bound to a skill action, or -1.
func (a Action) SkillSlot() int {
	switch a {
	case ActionSkill1:
		return 0
	case ActionSkill2:
		return 1
	case ActionSkill3:
		return 2
	default:
		return -1
	}
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
