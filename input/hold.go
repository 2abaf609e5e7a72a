package input

import (
	"sort"
	"time"

	"github.com/lixenwraith/starblaster/core"
)

// Release is a synthesized key release
type Release struct {
	Key    string
	Action Action
}

type heldKey struct {
	action   Action
	lastSeen time.Time
	repeated bool
}

// HoldTracker turns a press-only event stream into press/release pairs
// A fresh press stays held for the initial window, long enough for the
// terminal's autorepeat delay; once repeats arrive, each must follow the
// previous within the repeat window
type HoldTracker struct {
	clock   core.Clock
	initial time.Duration
	repeat  time.Duration
	keys    map[string]heldKey
}

// NewHoldTracker creates a tracker with the given initial and repeat windows
func NewHoldTracker(clock core.Clock, initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		clock:   clock,
		initial: initial,
		repeat:  repeat,
		keys:    make(map[string]heldKey),
	}
}

// Press records a press and reports whether it starts a new hold
func (h *HoldTracker) Press(key string, action Action) bool {
	_, held := h.keys[key]
	h.keys[key] = heldKey{action: action, lastSeen: h.clock.Now(), repeated: held}
	return !held
}

// Expire returns and forgets keys not seen within their window, sorted by key
func (h *HoldTracker) Expire() []Release {
	now := h.clock.Now()
	var out []Release
	for key, k := range h.keys {
		window := h.initial
		if k.repeated {
			window = h.repeat
		}
		if now.Sub(k.lastSeen) >= window {
			out = append(out, Release{Key: key, Action: k.action})
			delete(h.keys, key)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Held reports whether key is currently considered held
func (h *HoldTracker) Held(key string) bool {
	_, ok := h.keys[key]
	return ok
}
