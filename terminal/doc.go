// Package terminal runs the game on a tcell screen.
//
// A helper goroutine polls tcell events and forwards them over a channel;
// the session goroutine owns the simulation and serializes key events,
// synthesized key releases, spawner polls, frame updates and rendering.
package terminal
