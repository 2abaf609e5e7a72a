package audio

import "github.com/lixenwraith/starblaster/constants"

// Config controls audio output
type Config struct {
	Enabled      bool    `toml:"enabled"`
	SampleRate   int     `toml:"sample_rate"`
	EffectVolume float64 `toml:"effect_volume"`
	MusicVolume  float64 `toml:"music_volume"`

	// MusicFile is an optional mp3 looped as background music
	// Empty plays the synthesized loop
	MusicFile string `toml:"music_file"`
}

// DefaultConfig returns the stock audio settings
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		SampleRate:   constants.AudioSampleRate,
		EffectVolume: constants.EffectVolume,
		MusicVolume:  constants.MusicVolume,
	}
}
