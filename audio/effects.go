package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/starblaster/constants"
)

// sweep is a sine whose frequency glides linearly from start to end
type sweep struct {
	start, end float64
	phase      float64
	position   int
	duration   int
	rate       beep.SampleRate
}

// NewSweep creates a finite frequency sweep
func NewSweep(start, end float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		start:    start,
		end:      end,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}

		progress := float64(s.position) / float64(s.duration)
		freq := s.start + (s.end-s.start)*progress
		val := math.Sin(2 * math.Pi * s.phase)

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies linear attack/release shaping and ends the stream after duration
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; math.Log2(0) is -Inf so zero means silent
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateLaserSound generates the descending zap played on fire
func CreateLaserSound(rate beep.SampleRate, vol float64) beep.Streamer {
	zap := NewSweep(constants.LaserStartFreq, constants.LaserEndFreq, constants.LaserSoundDuration, rate)
	shaped := NewEnvelope(zap, constants.LaserSoundDuration, constants.LaserSoundAttack, constants.LaserSoundRelease, rate)
	return newVolume(shaped, vol)
}

// beat is an endless kick drum pulse, one kick per beat
type beat struct {
	rate    beep.SampleRate
	pos     int
	beatLen int
	kickLen int
}

func newBeat(rate beep.SampleRate) *beat {
	return &beat{
		rate:    rate,
		beatLen: rate.N(constants.MusicBeatDuration),
		kickLen: rate.N(100 * time.Millisecond),
	}
}

func (b *beat) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := b.pos % b.beatLen
		val := 0.0

		if beatPos < b.kickLen {
			t := float64(beatPos) / float64(b.rate)
			env := 1.0 - float64(beatPos)/float64(b.kickLen)
			freq := 60 * (1 + 2*env)
			val = 0.6 * env * math.Sin(2*math.Pi*freq*t)
		}

		samples[i][0] = val
		samples[i][1] = val
		b.pos++
	}
	return len(samples), true
}

func (b *beat) Err() error { return nil }

// CreateMusicLoop builds the endless synthesized background track
func CreateMusicLoop(rate beep.SampleRate) (beep.Streamer, error) {
	bass, err := generators.SineTone(rate, constants.MusicBassFreq)
	if err != nil {
		return nil, err
	}
	fifth, err := generators.SineTone(rate, constants.MusicBassFreq*1.5)
	if err != nil {
		return nil, err
	}

	return beep.Mix(
		newBeat(rate),
		newVolume(bass, 0.25),
		newVolume(fifth, 0.1),
	), nil
}
