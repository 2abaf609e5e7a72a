package input

import (
	"testing"
	"time"

	"github.com/lixenwraith/starblaster/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testInitialWindow = 700 * time.Millisecond
	testRepeatWindow  = 180 * time.Millisecond
)

func newTestTracker() (*HoldTracker, *core.ManualClock) {
	clock := core.NewManualClock(time.Unix(0, 0))
	return NewHoldTracker(clock, testInitialWindow, testRepeatWindow), clock
}

func TestHoldTrackerSynthesizesRelease(t *testing.T) {
	h, clock := newTestTracker()

	require.True(t, h.Press("w", ActionMoveUp), "first press starts a hold")

	clock.Advance(600 * time.Millisecond)
	assert.Empty(t, h.Expire(), "still inside the initial window")
	assert.True(t, h.Held("w"))

	clock.Advance(100 * time.Millisecond)
	released := h.Expire()
	require.Len(t, released, 1)
	assert.Equal(t, Release{Key: "w", Action: ActionMoveUp}, released[0])
	assert.False(t, h.Held("w"))
}

func TestHoldTrackerRepeatWindowAfterFirstRepeat(t *testing.T) {
	h, clock := newTestTracker()

	h.Press("d", ActionMoveRight)
	clock.Advance(500 * time.Millisecond)
	require.False(t, h.Press("d", ActionMoveRight))

	clock.Advance(170 * time.Millisecond)
	assert.Empty(t, h.Expire())

	clock.Advance(10 * time.Millisecond)
	assert.Len(t, h.Expire(), 1, "repeats stopped, release after the repeat window")
}

func TestHoldTrackerRepeatsExtendHold(t *testing.T) {
	h, clock := newTestTracker()

	h.Press(KeyNameSpace, ActionFire)
	for i := 0; i < 10; i++ {
		clock.Advance(30 * time.Millisecond)
		assert.False(t, h.Press(KeyNameSpace, ActionFire), "autorepeat is not a new hold")
		assert.Empty(t, h.Expire())
	}

	clock.Advance(time.Second)
	assert.Len(t, h.Expire(), 1)
}

func TestHoldTrackerTapFiresOnce(t *testing.T) {
	h, clock := newTestTracker()
	s := NewState()

	fired := 0
	frame := func() {
		for _, r := range h.Expire() {
			s.SetKey(r.Key, r.Action, false)
		}
		if s.TryFire() {
			fired++
		}
		clock.Advance(16 * time.Millisecond)
	}

	if h.Press(KeyNameSpace, ActionFire) {
		s.SetKey(KeyNameSpace, ActionFire, true)
	}
	for i := 0; i < 50; i++ {
		frame()
	}
	assert.Equal(t, 1, fired)
	assert.False(t, s.Latched(), "synthesized release clears the latch")

	if h.Press(KeyNameSpace, ActionFire) {
		s.SetKey(KeyNameSpace, ActionFire, true)
	}
	frame()
	assert.Equal(t, 2, fired)
}

func TestHoldTrackerDelayedAutorepeatFiresOnce(t *testing.T) {
	h, clock := newTestTracker()
	s := NewState()

	fired := 0
	press := func() {
		if h.Press(KeyNameSpace, ActionFire) {
			s.SetKey(KeyNameSpace, ActionFire, true)
		}
	}

	press()
	nextRepeat := 500 * time.Millisecond
	for elapsed := time.Duration(0); elapsed < 2*time.Second; elapsed += 16 * time.Millisecond {
		if elapsed >= nextRepeat {
			press()
			nextRepeat += 33 * time.Millisecond
		}
		for _, r := range h.Expire() {
			s.SetKey(r.Key, r.Action, false)
		}
		if s.TryFire() {
			fired++
		}
		clock.Advance(16 * time.Millisecond)
	}

	assert.Equal(t, 1, fired, "a held key must fire once across the autorepeat delay")
	assert.True(t, h.Held(KeyNameSpace))
}

func TestHoldTrackerExpireOrder(t *testing.T) {
	h, clock := newTestTracker()
	h.Press("s", ActionMoveDown)
	h.Press("a", ActionMoveLeft)
	h.Press("d", ActionMoveRight)

	clock.Advance(time.Second)
	released := h.Expire()

	require.Len(t, released, 3)
	assert.Equal(t, "a", released[0].Key)
	assert.Equal(t, "d", released[1].Key)
	assert.Equal(t, "s", released[2].Key)
}
