// Package gui runs the game in a window through ebiten.
package gui

import (
	"image/color"
	"log/slog"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lixenwraith/starblaster/constants"
	"github.com/lixenwraith/starblaster/engine"
	"github.com/lixenwraith/starblaster/input"
)

var (
	colorBackground = color.RGBA{A: 255}
	colorShip       = color.RGBA{R: 80, G: 160, B: 255, A: 255}
	colorBullet     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	colorAlien      = color.RGBA{R: 50, G: 220, B: 50, A: 255}
	colorStar       = color.RGBA{R: 140, G: 140, B: 140, A: 255}
)

// Sound is the audio backend driven by the window
type Sound interface {
	PlayFire()
	ToggleMute() bool
	IsMuted() bool
}

// Game adapts the simulation to ebiten.Game
// ebiten calls Update at the configured TPS on a single goroutine, so
// spawners are polled there between frames
type Game struct {
	stage *engine.Stage
	loop  *engine.GameLoop
	sched *engine.Scheduler
	keys  *input.KeyMap
	sound Sound
	log   *slog.Logger

	width, height int
	keyBuf        []ebiten.Key
	unfocused     bool
}

// NewGame wraps a loop drawing onto stage
func NewGame(stage *engine.Stage, loop *engine.GameLoop, sched *engine.Scheduler, keys *input.KeyMap, sound Sound, log *slog.Logger) *Game {
	rules := loop.Rules()
	return &Game{
		stage:  stage,
		loop:   loop,
		sched:  sched,
		keys:   keys,
		sound:  sound,
		log:    log,
		width:  rules.ViewportWidth,
		height: rules.ViewportHeight,
	}
}

// Update feeds input edges to the loop, polls spawners and advances one frame
func (g *Game) Update() error {
	// Releases that happen while unfocused are never reported
	if !ebiten.IsFocused() {
		if !g.unfocused {
			g.loop.ReleaseAll()
			g.unfocused = true
		}
	} else {
		g.unfocused = false
	}

	g.keyBuf = inpututil.AppendJustPressedKeys(g.keyBuf[:0])
	for _, k := range g.keyBuf {
		name := KeyName(k)
		action := g.keys.Lookup(name)
		switch action {
		case input.ActionQuit:
			g.log.Info("quit", "reason", "key", "frame", g.loop.Frame(), "score", g.loop.State().Score)
			return ebiten.Termination
		case input.ActionToggleMute:
			muted := g.sound.ToggleMute()
			g.log.Debug("mute toggled", "muted", muted)
		default:
			g.loop.KeyDown(name, action)
		}
	}

	g.keyBuf = inpututil.AppendJustReleasedKeys(g.keyBuf[:0])
	for _, k := range g.keyBuf {
		name := KeyName(k)
		g.loop.KeyUp(name, g.keys.Lookup(name))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.loop.PointerDown()
	}

	g.sched.Poll()
	g.loop.Update()
	return nil
}

// Draw fills each entity's box and prints the score
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	for _, e := range g.stage.Entities() {
		b := g.stage.Bounds(e)
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), entityColor(e.Kind), false)
	}

	ebitenutil.DebugPrintAt(screen, g.stage.ScoreText(), constants.ScoreTextX, constants.ScoreTextY)
	if g.sound.IsMuted() {
		ebitenutil.DebugPrintAt(screen, "[muted]", constants.ScoreTextX, constants.ScoreTextY+20)
	}
}

// Layout keeps the logical viewport regardless of window size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func entityColor(k engine.Kind) color.Color {
	switch k {
	case engine.KindShip:
		return colorShip
	case engine.KindBullet:
		return colorBullet
	case engine.KindAlien:
		return colorAlien
	default:
		return colorStar
	}
}

// KeyName maps an ebiten key to the shared key name used by input.KeyMap
func KeyName(k ebiten.Key) string {
	switch k {
	case ebiten.KeyArrowUp:
		return input.KeyNameUp
	case ebiten.KeyArrowDown:
		return input.KeyNameDown
	case ebiten.KeyArrowLeft:
		return input.KeyNameLeft
	case ebiten.KeyArrowRight:
		return input.KeyNameRight
	case ebiten.KeySpace:
		return input.KeyNameSpace
	case ebiten.KeyEnter:
		return input.KeyNameEnter
	case ebiten.KeyEscape:
		return input.KeyNameEscape
	case ebiten.KeyTab:
		return input.KeyNameTab
	}

	s := k.String()
	s = strings.TrimPrefix(s, "Digit")
	if len(s) == 1 {
		return strings.ToLower(s)
	}
	return s
}
