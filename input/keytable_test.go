package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMapResolve(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name       string
		ev         *tcell.EventKey
		wantKey    string
		wantAction Action
	}{
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), "w", ActionMoveUp},
		{"shifted W", tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModShift), "w", ActionMoveUp},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), KeyNameLeft, ActionMoveLeft},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), KeyNameSpace, ActionFire},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), KeyNameEscape, ActionQuit},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), "z", ActionNone},
		{"unnamed key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), "", ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, action := km.Resolve(tt.ev)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantAction, action)
		})
	}
}

func TestKeyMapApplyOverrides(t *testing.T) {
	km := DefaultKeyMap()

	err := km.Apply(map[string]string{
		"J":     "fire",
		"space": "none",
		"Up":    "move_down",
	})
	require.NoError(t, err)

	assert.Equal(t, ActionFire, km.Lookup("j"))
	assert.Equal(t, ActionNone, km.Lookup(KeyNameSpace))
	assert.Equal(t, ActionMoveDown, km.Lookup(KeyNameUp))
	assert.Equal(t, ActionMoveUp, km.Lookup("w"), "untouched bindings survive")
}

func TestKeyMapApplyRejectsUnknownNames(t *testing.T) {
	km := DefaultKeyMap()

	assert.Error(t, km.Apply(map[string]string{"pagedown": "fire"}))
	assert.Error(t, km.Apply(map[string]string{"x": "jump"}))
}

func TestActionNamesRoundTrip(t *testing.T) {
	for a := ActionNone; a < actionCount; a++ {
		got, err := ActionByName(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
}
