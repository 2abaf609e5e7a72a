package input

import (
	"fmt"
	"strings"
)

// Named keys shared by every frontend
// Single printable characters are named by themselves, lowercased
const (
	KeyNameUp     = "up"
	KeyNameDown   = "down"
	KeyNameLeft   = "left"
	KeyNameRight  = "right"
	KeyNameSpace  = "space"
	KeyNameEnter  = "enter"
	KeyNameEscape = "esc"
	KeyNameTab    = "tab"
	KeyNameCtrlC  = "ctrl+c"
	KeyNameCtrlQ  = "ctrl+q"
)

var namedKeys = map[string]bool{
	KeyNameUp:     true,
	KeyNameDown:   true,
	KeyNameLeft:   true,
	KeyNameRight:  true,
	KeyNameSpace:  true,
	KeyNameEnter:  true,
	KeyNameEscape: true,
	KeyNameTab:    true,
	KeyNameCtrlC:  true,
	KeyNameCtrlQ:  true,
}

// RuneKeyName returns the key name of a printable rune
func RuneKeyName(r rune) string {
	if r == ' ' {
		return KeyNameSpace
	}
	return strings.ToLower(string(r))
}

// NormalizeKeyName validates a config key name and returns its canonical form
func NormalizeKeyName(name string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "escape" {
		n = KeyNameEscape
	}
	if namedKeys[n] {
		return n, nil
	}
	if len([]rune(n)) == 1 {
		return RuneKeyName([]rune(n)[0]), nil
	}
	return "", fmt.Errorf("unknown key name %q", name)
}
