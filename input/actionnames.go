package input

import "fmt"

// actionNames holds the canonical config name of each action
var actionNames = map[Action]string{
	ActionNone:       "none",
	ActionMoveUp:     "move_up",
	ActionMoveDown:   "move_down",
	ActionMoveLeft:   "move_left",
	ActionMoveRight:  "move_right",
	ActionFire:       "fire",
	ActionQuit:       "quit",
	ActionToggleMute: "toggle_mute",
}

// actionRegistry is the reverse of actionNames, used by the keymap loader
var actionRegistry map[string]Action

func init() {
	actionRegistry = make(map[string]Action, len(actionNames))
	for a, name := range actionNames {
		actionRegistry[name] = a
	}
}

// ActionByName resolves a config action name
// "none" is valid and unbinds a key
func ActionByName(name string) (Action, error) {
	a, ok := actionRegistry[name]
	if !ok {
		return ActionNone, fmt.Errorf("unknown action %q", name)
	}
	return a, nil
}
