package terminal

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/starblaster/config"
	"github.com/lixenwraith/starblaster/core"
)

type fakeSound struct {
	fired int
	muted bool
}

func (f *fakeSound) PlayFire() { f.fired++ }

func (f *fakeSound) ToggleMute() bool {
	f.muted = !f.muted
	return f.muted
}

func (f *fakeSound) IsMuted() bool { return f.muted }

func newTestSession(t *testing.T, clock core.Clock) (*Session, *fakeSound, tcell.SimulationScreen) {
	t.Helper()
	return newTestSessionWithLog(t, clock, io.Discard)
}

func newTestSessionWithLog(t *testing.T, clock core.Clock, logOut io.Writer) (*Session, *fakeSound, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 25)
	t.Cleanup(screen.Fini)

	cfg := config.Default()
	cfg.Seed = 1
	sound := &fakeSound{}
	log := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s, err := NewSession(screen, cfg, sound, clock, log)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s, sound, screen
}

func keyEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestSessionFireTapFiresOnce(t *testing.T) {
	clock := core.NewManualClock(time.Unix(0, 0))
	s, sound, _ := newTestSession(t, clock)

	// Press plus autorepeat while held
	s.HandleEvent(keyEvent(' '))
	for i := 0; i < 5; i++ {
		clock.Advance(16 * time.Millisecond)
		s.HandleEvent(keyEvent(' '))
		s.Tick()
	}

	if got := len(s.Loop().State().Bullets); got != 1 {
		t.Fatalf("Expected 1 bullet while fire is held, got %d", got)
	}
	if sound.fired != 1 {
		t.Errorf("Expected 1 fire cue, got %d", sound.fired)
	}

	// Let the repeat window lapse so a release is synthesized
	clock.Advance(config.Default().HoldWindow)
	s.Tick()
	if s.Loop().State().Input.Latched() {
		t.Fatal("Fire latch should reset after the synthesized release")
	}

	s.HandleEvent(keyEvent(' '))
	s.Tick()
	if got := len(s.Loop().State().Bullets); got != 2 {
		t.Errorf("Expected 2 bullets after re-press, got %d", got)
	}
}

func TestSessionMovementHoldAndRelease(t *testing.T) {
	clock := core.NewManualClock(time.Unix(0, 0))
	s, _, _ := newTestSession(t, clock)

	s.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	s.Tick()
	s.Tick()

	ship := s.Loop().State().Ship
	if ship.Pos.X != 486 {
		t.Fatalf("Expected ship x=486 after two held frames, got %v", ship.Pos.X)
	}

	// No autorepeat arrived, so the release waits for the initial window
	clock.Advance(config.Default().InitialHoldWindow)
	s.Tick()
	s.Tick()
	if ship.Pos.X != 486 {
		t.Errorf("Ship should stop after the key is released, x=%v", ship.Pos.X)
	}
}

func TestSessionDelayedAutorepeatKeepsHold(t *testing.T) {
	clock := core.NewManualClock(time.Unix(0, 0))
	s, sound, _ := newTestSession(t, clock)

	// Terminal delivers space, waits 500ms, then repeats every 33ms for 1.5s
	s.HandleEvent(keyEvent(' '))
	s.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))

	frame := time.Second / 60
	nextRepeat := 500 * time.Millisecond
	frames := 0
	for elapsed := time.Duration(0); elapsed < 2*time.Second; elapsed += frame {
		if elapsed >= nextRepeat {
			s.HandleEvent(keyEvent(' '))
			s.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
			nextRepeat += 33 * time.Millisecond
		}
		s.Tick()
		frames++
		clock.Advance(frame)
	}

	if sound.fired != 1 {
		t.Errorf("Expected 1 fire cue while space is held, got %d", sound.fired)
	}

	// Movement never paused: every frame moved the ship, wrapping at the right edge
	if got := s.Loop().Frame(); got != uint64(frames) {
		t.Fatalf("Expected %d frames, got %d", frames, got)
	}
	x := 480.0
	for i := 0; i < frames; i++ {
		x += 3
		if x > 972 {
			x = -20
		}
	}
	if ship := s.Loop().State().Ship; ship.Pos.X != x {
		t.Errorf("Expected ship x=%v after continuous hold, got %v", x, ship.Pos.X)
	}
}

func TestSessionLogsBindings(t *testing.T) {
	var buf bytes.Buffer
	newTestSessionWithLog(t, core.NewManualClock(time.Unix(0, 0)), &buf)

	out := buf.String()
	if !strings.Contains(out, "key bindings") || !strings.Contains(out, "space:fire") {
		t.Errorf("Expected bindings in startup log, got %q", out)
	}
}

func TestSessionPointerFires(t *testing.T) {
	clock := core.NewManualClock(time.Unix(0, 0))
	s, sound, _ := newTestSession(t, clock)

	s.HandleEvent(tcell.NewEventMouse(10, 10, tcell.Button1, tcell.ModNone))
	s.HandleEvent(tcell.NewEventMouse(10, 10, tcell.Button1, tcell.ModNone))

	if got := len(s.Loop().State().Bullets); got != 2 {
		t.Errorf("Expected 2 bullets from two clicks, got %d", got)
	}
	if sound.fired != 2 {
		t.Errorf("Expected 2 fire cues, got %d", sound.fired)
	}

	s.HandleEvent(tcell.NewEventMouse(10, 10, tcell.ButtonNone, tcell.ModNone))
	if got := len(s.Loop().State().Bullets); got != 2 {
		t.Errorf("Mouse release should not fire, got %d bullets", got)
	}
}

func TestSessionMuteToggle(t *testing.T) {
	clock := core.NewManualClock(time.Unix(0, 0))
	s, sound, _ := newTestSession(t, clock)

	s.HandleEvent(keyEvent('m'))
	s.HandleEvent(keyEvent('m')) // autorepeat
	if !sound.muted {
		t.Fatal("Expected mute after pressing m")
	}

	clock.Advance(config.Default().HoldWindow)
	s.Tick()
	s.HandleEvent(keyEvent('m'))
	if sound.muted {
		t.Error("Expected unmute after second press")
	}
}

func TestSessionSpawnTimers(t *testing.T) {
	clock := core.NewManualClock(time.Unix(0, 0))
	s, _, _ := newTestSession(t, clock)

	step := 50 * time.Millisecond
	for elapsed := time.Duration(0); elapsed < 1500*time.Millisecond; elapsed += step {
		clock.Advance(step)
		s.Tick()
	}

	st := s.Loop().State()
	if len(st.Aliens) != 1 {
		t.Errorf("Expected 1 alien after 1500ms, got %d", len(st.Aliens))
	}
	// 3 + 2 + 6 star timer runs, none has left the screen yet
	if len(st.Stars) != 11 {
		t.Errorf("Expected 11 stars after 1500ms, got %d", len(st.Stars))
	}
}

func TestSessionRendersShip(t *testing.T) {
	clock := core.NewManualClock(time.Unix(0, 0))
	s, _, screen := newTestSession(t, clock)

	s.Tick()
	r, _, _, _ := screen.GetContent(40, 12)
	if r != 'A' {
		t.Errorf("Expected ship at (40,12), got %q", r)
	}
}

func TestSessionRunQuitKey(t *testing.T) {
	s, _, screen := newTestSession(t, core.SystemClock{})

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
		if ctx.Err() != nil {
			t.Error("Run should stop on the quit key before the deadline")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return")
	}
}

func TestSessionRunContextCancel(t *testing.T) {
	s, _, _ := newTestSession(t, core.SystemClock{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Run(ctx); err != nil {
		t.Errorf("Run after cancel should return nil, got %v", err)
	}
}
