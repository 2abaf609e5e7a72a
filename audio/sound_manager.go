package audio

import (
	"fmt"
	"os"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/starblaster/constants"
)

// SoundManager plays the fire cue and background music through one mixer
// All methods are no-ops until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	master      *effects.Volume
	music       beep.StreamSeekCloser
	initialized bool
	muted       bool

	fired uint64
}

// NewSoundManager creates a sound manager
func NewSoundManager(cfg Config) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		cfg:    cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		mixer:  mixer,
		master: &effects.Volume{Streamer: mixer, Base: 2},
	}
}

// Initialize opens the speaker; disabled config leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// StartMusic starts the background loop, from MusicFile if set
func (sm *SoundManager) StartMusic() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return nil
	}

	var track beep.Streamer
	if sm.cfg.MusicFile != "" {
		s, err := sm.openMusic(sm.cfg.MusicFile)
		if err != nil {
			return err
		}
		track = s
	} else {
		s, err := CreateMusicLoop(sm.rate)
		if err != nil {
			return fmt.Errorf("music synth: %w", err)
		}
		track = s
	}

	speaker.Lock()
	sm.mixer.Add(newVolume(track, sm.cfg.MusicVolume))
	speaker.Unlock()
	return nil
}

// openMusic decodes an mp3, loops it, and resamples to the speaker rate
func (sm *SoundManager) openMusic(path string) (beep.Streamer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open music: %w", err)
	}

	stream, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode music %s: %w", path, err)
	}
	sm.music = stream

	var looped beep.Streamer = beep.Loop(-1, stream)
	if format.SampleRate != sm.rate {
		looped = beep.Resample(4, format.SampleRate, sm.rate, looped)
	}
	return looped, nil
}

// PlayFire plays the laser cue
func (sm *SoundManager) PlayFire() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.fired++
	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(CreateLaserSound(sm.rate, sm.cfg.EffectVolume))
	speaker.Unlock()
}

// ToggleMute silences or restores all output and returns the new muted state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.initialized {
		speaker.Lock()
		sm.master.Silent = sm.muted
		speaker.Unlock()
	} else {
		sm.master.Silent = sm.muted
	}
	return sm.muted
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// FireCount returns how many fire cues were requested
func (sm *SoundManager) FireCount() uint64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.fired
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	if sm.music != nil {
		sm.music.Close()
		sm.music = nil
	}
	sm.initialized = false
}
