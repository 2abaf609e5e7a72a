package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// NewLogger opens path for appending and returns a text logger tagged with
// a fresh session ID. An empty path discards all output.
// The returned close function is never nil.
func NewLogger(path string) (*slog.Logger, func() error, error) {
	var w io.Writer = io.Discard
	closeFn := func() error { return nil }

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log %s: %w", path, err)
		}
		w = f
		closeFn = f.Close
	}

	return newLogger(w), closeFn, nil
}

func newLogger(w io.Writer) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h).With("session", uuid.NewString())
}

// LogSummary writes the effective configuration at startup
func (c *Config) LogSummary(log *slog.Logger) {
	log.Info("config",
		"viewport", fmt.Sprintf("%dx%d", c.Rules.ViewportWidth, c.Rules.ViewportHeight),
		"frame_rate", c.FrameRate,
		"star_periods", c.Spawn.StarPeriods,
		"alien_period", c.Spawn.AlienPeriod,
		"initial_hold_window", c.InitialHoldWindow,
		"hold_window", c.HoldWindow,
		"seed", c.Seed,
		"audio", c.Audio.Enabled,
		"music", c.Audio.MusicFile,
	)
}
