package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to exhaustion (or limit samples) and returns the sample count
func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1.0 || buf[i][0] > 1.0 || buf[i][1] < -1.0 || buf[i][1] > 1.0 {
				t.Fatalf("Sample %d out of range: %v", total+i, buf[i])
			}
		}
		total += n
		if !ok {
			break
		}
	}
	return total
}

// TestSweepDuration verifies the sweep ends after its duration
func TestSweepDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := NewSweep(1800, 300, 100*time.Millisecond, rate)

	got := drain(t, s, rate.N(time.Second))
	if want := rate.N(100 * time.Millisecond); got != want {
		t.Errorf("Expected %d samples, got %d", want, got)
	}
	if s.Err() != nil {
		t.Errorf("Expected no error, got %v", s.Err())
	}
}

// TestEnvelopeTruncatesAndFades verifies the envelope ends the stream and starts silent
func TestEnvelopeTruncatesAndFades(t *testing.T) {
	rate := beep.SampleRate(44100)
	src := NewSweep(440, 440, time.Second, rate)
	env := NewEnvelope(src, 50*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	first := make([][2]float64, 1)
	env.Stream(first)
	if first[0][0] != 0 {
		t.Errorf("Expected silent first sample during attack, got %v", first[0][0])
	}

	got := 1 + drain(t, env, rate.N(time.Second))
	if want := rate.N(50 * time.Millisecond); got != want {
		t.Errorf("Expected %d samples, got %d", want, got)
	}
}

// TestLaserSound verifies the fire cue is short and bounded
func TestLaserSound(t *testing.T) {
	rate := beep.SampleRate(44100)
	laser := CreateLaserSound(rate, 0.1)

	got := drain(t, laser, rate.N(time.Second))
	if got == 0 || got > rate.N(200*time.Millisecond) {
		t.Errorf("Unexpected laser length %d samples", got)
	}
}

// TestMusicLoopIsEndless verifies the synthesized loop never ends
func TestMusicLoopIsEndless(t *testing.T) {
	rate := beep.SampleRate(22050)
	music, err := CreateMusicLoop(rate)
	if err != nil {
		t.Fatalf("CreateMusicLoop failed: %v", err)
	}

	limit := rate.N(2 * time.Second)
	if got := drain(t, music, limit); got < limit {
		t.Errorf("Expected at least %d samples, got %d", limit, got)
	}
}

// TestZeroVolumeIsSilent verifies volume zero maps to a silent effect
func TestZeroVolumeIsSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	v := newVolume(NewSweep(440, 440, 10*time.Millisecond, rate), 0)

	if !v.Silent {
		t.Error("Expected silent volume for zero level")
	}
}
