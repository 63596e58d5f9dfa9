package input

import (
	"sort"
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement, one per grid direction
	ActionMoveBack
	ActionMoveRight
	ActionMoveFront
	ActionMoveLeft

	// Meta / UI
	ActionToggleRoute
	ActionReset
	ActionDumpMap
	ActionQuit
)

// Intent is the high-level description of what the player wants to do.
type Intent struct {
	Action Action
}

// bindings maps key codes to actions.
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, WASD, Vim). "Up" on screen walks toward -z.
	"arrow_up":    ActionMoveBack,
	"w":           ActionMoveBack,
	"k":           ActionMoveBack,
	"arrow_right": ActionMoveRight,
	"d":           ActionMoveRight,
	"l":           ActionMoveRight,
	"arrow_down":  ActionMoveFront,
	"s":           ActionMoveFront,
	"j":           ActionMoveFront,
	"arrow_left":  ActionMoveLeft,
	"a":           ActionMoveLeft,
	"h":           ActionMoveLeft,

	"?": ActionToggleRoute,
	"r": ActionReset,
	"m": ActionDumpMap,

	// Quit
	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
}

// MapToIntent applies the bindings to a key code and returns a high-level Intent.
func MapToIntent(code string) Intent {
	if act, ok := bindings[code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveBack:
		return "Move Back"
	case ActionMoveRight:
		return "Move Right"
	case ActionMoveFront:
		return "Move Front"
	case ActionMoveLeft:
		return "Move Left"
	case ActionToggleRoute:
		return "Toggle Route"
	case ActionReset:
		return "Reset"
	case ActionDumpMap:
		return "Dump Map"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't shuffle between frames.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
