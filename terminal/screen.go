package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/starblaster/core"
)

// OpenScreen creates and initializes the terminal screen with mouse input
// The screen is registered with the crash handler; the caller must Fini it
func OpenScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	screen.SetStyle(tcell.StyleDefault)
	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.HideCursor()
	screen.Clear()

	core.SetCrashTerminal(screen)
	return screen, nil
}
