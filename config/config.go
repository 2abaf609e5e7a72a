// Package config layers defaults, an optional TOML file, environment
// variables and command-line flags into one Config.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/starblaster/audio"
	"github.com/lixenwraith/starblaster/constants"
	"github.com/lixenwraith/starblaster/engine"
	"github.com/lixenwraith/starblaster/input"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Environment variable names
const (
	EnvSeed   = "STARBLASTER_SEED"
	EnvMute   = "STARBLASTER_MUTE"
	EnvVolume = "STARBLASTER_VOLUME"
	EnvMusic  = "STARBLASTER_MUSIC"
	EnvLog    = "STARBLASTER_LOG"
)

// Spawn holds the spawner timer periods
// Star timers are independent; each entry registers its own timer
type Spawn struct {
	StarPeriods []time.Duration `toml:"star_periods"`
	AlienPeriod time.Duration   `toml:"alien_period"`
}

// Config is the full runtime configuration
type Config struct {
	Rules engine.Rules `toml:"rules"`
	Spawn Spawn        `toml:"spawn"`
	Audio audio.Config `toml:"audio"`

	// FrameRate is simulation ticks per second; the frame interval derives from it
	FrameRate int `toml:"frame_rate"`

	// InitialHoldWindow keeps a fresh terminal key press held until the first
	// autorepeat; HoldWindow is the allowed gap between later repeats
	InitialHoldWindow time.Duration `toml:"initial_hold_window"`
	HoldWindow        time.Duration `toml:"hold_window"`

	// Seed of the spawner RNG; 0 seeds from the clock
	Seed    int64  `toml:"seed"`
	LogFile string `toml:"log_file"`

	// Keys maps key names to action names, overriding the default bindings
	Keys map[string]string `toml:"keys"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Rules: engine.DefaultRules(),
		Spawn: Spawn{
			StarPeriods: append([]time.Duration(nil), constants.StarSpawnIntervals...),
			AlienPeriod: constants.AlienSpawnInterval,
		},
		Audio:             audio.DefaultConfig(),
		FrameRate:         constants.FramesPerSecond,
		InitialHoldWindow: constants.KeyInitialHoldWindow,
		HoldWindow:        constants.KeyHoldWindow,
		Keys:              map[string]string{},
	}
}

// Load returns defaults overlaid with the TOML file at path
// An empty path returns defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s: unknown keys: %s", ErrInvalid, path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// ApplyEnv overlays environment variables read through lookup
// Pass os.LookupEnv in production
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvSeed, v, err)
		}
		c.Seed = seed
	}

	if v, ok := lookup(EnvMute); ok && v != "" {
		mute, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvMute, v, err)
		}
		c.Audio.Enabled = !mute
	}

	if v, ok := lookup(EnvVolume); ok && v != "" {
		vol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvVolume, v, err)
		}
		c.Audio.EffectVolume = vol
	}

	if v, ok := lookup(EnvMusic); ok {
		c.Audio.MusicFile = v
	}

	if v, ok := lookup(EnvLog); ok {
		c.LogFile = v
	}

	return nil
}

// Validate rejects configurations the simulation cannot run with
func (c *Config) Validate() error {
	r := c.Rules
	if r.ViewportWidth <= 0 || r.ViewportHeight <= 0 {
		return fmt.Errorf("%w: viewport %dx%d", ErrInvalid, r.ViewportWidth, r.ViewportHeight)
	}

	sizes := []struct {
		name string
		size engine.SpriteSize
	}{
		{"ship", r.Sprites.Ship},
		{"bullet", r.Sprites.Bullet},
		{"alien", r.Sprites.Alien},
		{"star", r.Sprites.Star},
	}
	for _, s := range sizes {
		if s.size.W <= 0 || s.size.H <= 0 {
			return fmt.Errorf("%w: %s sprite size %gx%g", ErrInvalid, s.name, s.size.W, s.size.H)
		}
	}

	if len(c.Spawn.StarPeriods) == 0 {
		return fmt.Errorf("%w: no star spawn periods", ErrInvalid)
	}
	for i, p := range c.Spawn.StarPeriods {
		if p <= 0 {
			return fmt.Errorf("%w: star period %d is %v", ErrInvalid, i, p)
		}
	}
	if c.Spawn.AlienPeriod <= 0 {
		return fmt.Errorf("%w: alien period %v", ErrInvalid, c.Spawn.AlienPeriod)
	}

	if c.FrameRate <= 0 {
		return fmt.Errorf("%w: frame rate %d", ErrInvalid, c.FrameRate)
	}
	if c.InitialHoldWindow <= 0 || c.HoldWindow <= 0 {
		return fmt.Errorf("%w: hold windows %v/%v", ErrInvalid, c.InitialHoldWindow, c.HoldWindow)
	}

	if c.Audio.EffectVolume < 0 || c.Audio.MusicVolume < 0 {
		return fmt.Errorf("%w: negative volume", ErrInvalid)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalid, c.Audio.SampleRate)
	}

	if _, err := c.KeyMap(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// KeyMap builds the default bindings with the configured overrides applied
func (c *Config) KeyMap() (*input.KeyMap, error) {
	km := input.DefaultKeyMap()
	if err := km.Apply(c.Keys); err != nil {
		return nil, err
	}
	return km, nil
}

// FrameInterval returns the tick interval for the frame rate
func (c *Config) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return constants.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.FrameRate)
}
