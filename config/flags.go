package config

import (
	"flag"
	"fmt"
)

// Flags are the command-line overrides shared by both binaries
type Flags struct {
	fs *flag.FlagSet

	ConfigPath string
	Seed       int64
	Mute       bool
	Volume     float64
	Music      string
	LogFile    string
}

// RegisterFlags defines the flags on fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.ConfigPath, "config", "", "Path to a TOML config file")
	fs.Int64Var(&f.Seed, "seed", 0, "Spawner RNG seed (0 = random)")
	fs.BoolVar(&f.Mute, "mute", false, "Disable audio")
	fs.Float64Var(&f.Volume, "volume", 0, "Fire cue volume")
	fs.StringVar(&f.Music, "music", "", "MP3 file looped as background music")
	fs.StringVar(&f.LogFile, "log", "", "Write logs to this file")
	return f
}

// Resolve builds the final config: defaults, file, environment, then flags
// Only flags set explicitly on the command line override earlier layers
func (f *Flags) Resolve(lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg, err := Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.ApplyEnv(lookupEnv); err != nil {
		return nil, err
	}

	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "seed":
			cfg.Seed = f.Seed
		case "mute":
			cfg.Audio.Enabled = !f.Mute
		case "volume":
			cfg.Audio.EffectVolume = f.Volume
		case "music":
			cfg.Audio.MusicFile = f.Music
		case "log":
			cfg.LogFile = f.LogFile
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("resolve config: %w", err)
	}
	return cfg, nil
}
