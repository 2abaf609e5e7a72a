package input

import (
	"fmt"
	"maps"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// specialKeyNames names the tcell keys that carry no rune
var specialKeyNames = map[tcell.Key]string{
	tcell.KeyUp:     KeyNameUp,
	tcell.KeyDown:   KeyNameDown,
	tcell.KeyLeft:   KeyNameLeft,
	tcell.KeyRight:  KeyNameRight,
	tcell.KeyEnter:  KeyNameEnter,
	tcell.KeyEscape: KeyNameEscape,
	tcell.KeyTab:    KeyNameTab,
	tcell.KeyCtrlC:  KeyNameCtrlC,
	tcell.KeyCtrlQ:  KeyNameCtrlQ,
}

// KeyMap binds key names to actions
type KeyMap struct {
	bindings map[string]Action
}

// DefaultKeyMap returns WASD/arrows movement, space fire, q/esc/ctrl+c quit, m mute
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		bindings: map[string]Action{
			"w":           ActionMoveUp,
			"a":           ActionMoveLeft,
			"s":           ActionMoveDown,
			"d":           ActionMoveRight,
			KeyNameUp:     ActionMoveUp,
			KeyNameLeft:   ActionMoveLeft,
			KeyNameDown:   ActionMoveDown,
			KeyNameRight:  ActionMoveRight,
			KeyNameSpace:  ActionFire,
			"q":           ActionQuit,
			KeyNameEscape: ActionQuit,
			KeyNameCtrlC:  ActionQuit,
			"m":           ActionToggleMute,
		},
	}
}

// Bind sets the action of a key; ActionNone removes the binding
func (m *KeyMap) Bind(name string, a Action) {
	if a == ActionNone {
		delete(m.bindings, name)
		return
	}
	m.bindings[name] = a
}

// Apply merges key name → action name overrides, as loaded from config
func (m *KeyMap) Apply(overrides map[string]string) error {
	for keyStr, actionStr := range overrides {
		name, err := NormalizeKeyName(keyStr)
		if err != nil {
			return fmt.Errorf("keymap: %w", err)
		}
		a, err := ActionByName(strings.ToLower(strings.TrimSpace(actionStr)))
		if err != nil {
			return fmt.Errorf("keymap: key %q: %w", keyStr, err)
		}
		m.Bind(name, a)
	}
	return nil
}

// Lookup returns the action bound to a key name
func (m *KeyMap) Lookup(name string) Action {
	return m.bindings[name]
}

// Bindings returns a copy of all bindings
func (m *KeyMap) Bindings() map[string]Action {
	return maps.Clone(m.bindings)
}

// Resolve maps a tcell key event to its key name and action
// Unbound keys resolve to ActionNone with a non-empty name; unnamed keys return ""
func (m *KeyMap) Resolve(ev *tcell.EventKey) (string, Action) {
	var name string
	if ev.Key() == tcell.KeyRune {
		name = RuneKeyName(ev.Rune())
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			name = "ctrl+" + name
		}
	} else if n, ok := specialKeyNames[ev.Key()]; ok {
		name = n
	} else {
		return "", ActionNone
	}
	return name, m.bindings[name]
}
