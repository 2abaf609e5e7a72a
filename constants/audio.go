// @focus: #sys { audio }
package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration sizes the speaker buffer
	AudioBufferDuration = 100 * time.Millisecond
)

// Volumes (linear, 0..1)
const (
	EffectVolume = 0.1
	MusicVolume  = 0.3
)

// Laser Sound Timing
const (
	LaserSoundDuration = 120 * time.Millisecond
	LaserSoundAttack   = 2 * time.Millisecond
	LaserSoundRelease  = 80 * time.Millisecond

	// LaserStartFreq sweeps down to LaserEndFreq over the duration
	LaserStartFreq = 1800.0
	LaserEndFreq   = 300.0
)

// Music loop
const (
	// MusicBeatDuration is one beat of the synthesized loop (100 BPM)
	MusicBeatDuration = 600 * time.Millisecond

	// MusicBassFreq is the sustained bass tone
	MusicBassFreq = 55.0
)
