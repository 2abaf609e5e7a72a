package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/starblaster/constants"
	"github.com/lixenwraith/starblaster/engine"
	"github.com/lixenwraith/starblaster/vmath"
)

// Status is the bottom bar content
type Status struct {
	Frame   uint64
	Aliens  int
	Bullets int
	Muted   bool

	// Firing is set while the fire key is held after its shot
	Firing bool
}

// TerminalRenderer projects the world onto the terminal grid
// The last row is the status bar; the rest is the playfield
type TerminalRenderer struct {
	screen tcell.Screen
	worldW float64
	worldH float64
}

// NewTerminalRenderer creates a renderer for a worldW×worldH playfield
func NewTerminalRenderer(screen tcell.Screen, worldW, worldH int) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		worldW: float64(worldW),
		worldH: float64(worldH),
	}
}

// gameArea returns the playfield size in cells
func (r *TerminalRenderer) gameArea() (cols, rows int) {
	cols, rows = r.screen.Size()
	rows--
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

// ToCell maps a world point to a playfield cell
func (r *TerminalRenderer) ToCell(p vmath.Vec2) (x, y int, ok bool) {
	cols, rows := r.gameArea()
	x = int(math.Floor(p.X * float64(cols) / r.worldW))
	y = int(math.Floor(p.Y * float64(rows) / r.worldH))
	return x, y, x >= 0 && x < cols && y >= 0 && y < rows
}

// cellSpan returns the clipped cell range covered by a box, at least one cell on each axis
func (r *TerminalRenderer) cellSpan(box vmath.Rect) (x0, y0, x1, y1 int) {
	cols, rows := r.gameArea()
	sx := float64(cols) / r.worldW
	sy := float64(rows) / r.worldH

	x0 = int(math.Floor(box.X * sx))
	y0 = int(math.Floor(box.Y * sy))
	x1 = int(math.Ceil(box.Right()*sx)) - 1
	y1 = int(math.Ceil(box.Bottom()*sy)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}

	x0, x1 = max(x0, 0), min(x1, cols-1)
	y0, y1 = max(y0, 0), min(y1, rows-1)
	return x0, y0, x1, y1
}

// RenderFrame draws the stage, score and status bar, then shows the screen
func (r *TerminalRenderer) RenderFrame(stage *engine.Stage, status Status) {
	r.screen.Clear()
	r.fillBackground()

	for _, e := range stage.Entities() {
		r.drawEntity(stage, e)
	}

	r.drawScore(stage.ScoreText())
	r.drawStatusBar(status)
	r.screen.Show()
}

func (r *TerminalRenderer) fillBackground() {
	cols, rows := r.gameArea()
	bg := tcell.StyleDefault.Background(RgbBackground)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r.screen.SetContent(x, y, ' ', nil, bg)
		}
	}
}

func (r *TerminalRenderer) drawEntity(stage *engine.Stage, e *engine.Entity) {
	glyph := glyphFor(e.Kind)
	style := entityStyle(e.Kind)

	// Offscreen entities are skipped rather than clamped to the border
	box := stage.Bounds(e)
	if box.Right() <= 0 || box.Bottom() <= 0 || box.X >= r.worldW || box.Y >= r.worldH {
		return
	}

	x0, y0, x1, y1 := r.cellSpan(box)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawScore(text string) {
	x, y, ok := r.ToCell(vmath.Vec2{X: constants.ScoreTextX, Y: constants.ScoreTextY})
	if !ok {
		x, y = 0, 0
	}
	style := tcell.StyleDefault.Foreground(RgbScoreText).Background(RgbScoreStroke).Bold(true)
	r.drawText(x, y, text, style)
}

func (r *TerminalRenderer) drawStatusBar(s Status) {
	cols, rows := r.screen.Size()
	y := rows - 1
	style := tcell.StyleDefault.Foreground(RgbStatusBar)

	for x := 0; x < cols; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}

	text := fmt.Sprintf(" frame %d  aliens %d  bullets %d", s.Frame, s.Aliens, s.Bullets)
	if s.Firing {
		text += "  [fire]"
	}
	if s.Muted {
		text += "  [muted]"
	}
	text += "  | move: wasd/arrows  fire: space/click  mute: m  quit: q"
	r.drawText(0, y, text, style)
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	cols, _ := r.screen.Size()
	for i, ch := range []rune(text) {
		if x+i >= cols {
			break
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func glyphFor(k engine.Kind) rune {
	switch k {
	case engine.KindShip:
		return constants.GlyphShip
	case engine.KindBullet:
		return constants.GlyphBullet
	case engine.KindAlien:
		return constants.GlyphAlien
	default:
		return constants.GlyphStar
	}
}
