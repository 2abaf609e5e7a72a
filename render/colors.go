package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/starblaster/engine"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0) // Black playfield

	RgbShip   = tcell.NewRGBColor(80, 160, 255)  // Blue ship
	RgbBullet = tcell.NewRGBColor(255, 60, 60)   // Red laser
	RgbAlien  = tcell.NewRGBColor(50, 220, 50)   // Green alien
	RgbStar   = tcell.NewRGBColor(140, 140, 140) // Dim gray star

	RgbScoreText   = tcell.NewRGBColor(255, 255, 255) // White
	RgbScoreStroke = tcell.NewRGBColor(74, 24, 80)    // Purple outline, used as background

	RgbStatusBar = tcell.NewRGBColor(180, 180, 180) // Brighter gray
)

// entityStyle returns the foreground style of a kind
func entityStyle(k engine.Kind) tcell.Style {
	base := tcell.StyleDefault.Background(RgbBackground)
	switch k {
	case engine.KindShip:
		return base.Foreground(RgbShip).Bold(true)
	case engine.KindBullet:
		return base.Foreground(RgbBullet)
	case engine.KindAlien:
		return base.Foreground(RgbAlien)
	default:
		return base.Foreground(RgbStar)
	}
}
