package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/starblaster/config"
	"github.com/lixenwraith/starblaster/constants"
	"github.com/lixenwraith/starblaster/core"
	"github.com/lixenwraith/starblaster/engine"
	"github.com/lixenwraith/starblaster/input"
	"github.com/lixenwraith/starblaster/render"
)

// Sound is the audio backend driven by the session
type Sound interface {
	PlayFire()
	ToggleMute() bool
	IsMuted() bool
}

// Session binds a tcell screen to one running game
type Session struct {
	screen   tcell.Screen
	log      *slog.Logger
	clock    core.Clock
	interval time.Duration

	stage    *engine.Stage
	loop     *engine.GameLoop
	sched    *engine.Scheduler
	keys     *input.KeyMap
	holds    *input.HoldTracker
	renderer *render.TerminalRenderer
	sound    Sound

	quit bool
}

// NewSession wires the simulation, spawner timers and input handling for cfg
func NewSession(screen tcell.Screen, cfg *config.Config, sound Sound, clock core.Clock, log *slog.Logger) (*Session, error) {
	keys, err := cfg.KeyMap()
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = clock.Now().UnixNano()
	}

	stage := engine.NewStage(cfg.Rules.Sprites)
	loop := engine.NewGameLoop(cfg.Rules, stage, sound, rand.New(rand.NewSource(seed)))

	sched := engine.NewScheduler(clock)
	if err := loop.RegisterSpawners(sched, cfg.Spawn.StarPeriods, cfg.Spawn.AlienPeriod); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	log.Info("session ready", "seed", seed, "timers", len(sched.Stats()))
	log.Debug("key bindings", "bindings", keys.Bindings())

	return &Session{
		screen:   screen,
		log:      log,
		clock:    clock,
		interval: cfg.FrameInterval(),
		stage:    stage,
		loop:     loop,
		sched:    sched,
		keys:     keys,
		holds:    input.NewHoldTracker(clock, cfg.InitialHoldWindow, cfg.HoldWindow),
		renderer: render.NewTerminalRenderer(screen, cfg.Rules.ViewportWidth, cfg.Rules.ViewportHeight),
		sound:    sound,
	}, nil
}

// Loop exposes the simulation
func (s *Session) Loop() *engine.GameLoop {
	return s.loop
}

// Run processes events and frame ticks until quit, ctx cancellation or the
// screen closing
func (s *Session) Run(ctx context.Context) error {
	events := make(chan tcell.Event, constants.EventQueueSize)
	core.Go(func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sched.Rearm()
	s.render()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("quit", "reason", "context", "err", ctx.Err())
			return nil

		case ev, ok := <-events:
			if !ok {
				s.log.Info("quit", "reason", "screen closed")
				return nil
			}
			s.HandleEvent(ev)
			if s.quit {
				s.log.Info("quit", "reason", "key", "frame", s.loop.Frame(), "score", s.loop.State().Score)
				return nil
			}

		case <-ticker.C:
			s.Tick()
		}
	}
}

// HandleEvent applies one tcell event
func (s *Session) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		s.handleKey(ev)

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			s.loop.PointerDown()
		}

	case *tcell.EventResize:
		s.screen.Sync()
	}
}

func (s *Session) handleKey(ev *tcell.EventKey) {
	name, action := s.keys.Resolve(ev)
	if name == "" {
		return
	}

	switch action {
	case input.ActionQuit:
		s.quit = true
		return
	case input.ActionToggleMute:
		if s.holds.Press(name, action) {
			muted := s.sound.ToggleMute()
			s.log.Debug("mute toggled", "muted", muted)
		}
		return
	}

	// Autorepeat refreshes the hold; only the first press reaches the loop
	if s.holds.Press(name, action) {
		s.loop.KeyDown(name, action)
	}
}

// Tick releases expired keys, runs due spawners, then advances one frame and draws it
func (s *Session) Tick() {
	for _, r := range s.holds.Expire() {
		if r.Action != input.ActionToggleMute {
			s.loop.KeyUp(r.Key, r.Action)
		}
	}

	s.sched.Poll()
	s.loop.Update()
	s.render()
}

func (s *Session) render() {
	st := s.loop.State()
	s.renderer.RenderFrame(s.stage, render.Status{
		Frame:   s.loop.Frame(),
		Aliens:  len(st.Aliens),
		Bullets: len(st.Bullets),
		Muted:   s.sound.IsMuted(),
		Firing:  st.Input.Latched(),
	})
}
