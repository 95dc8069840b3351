package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(false)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayLift()
	sm.PlayLand()
	sm.PlaySolved()
	sm.Cleanup()
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(true)

	// Speaker initialization may fail in CI environments without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}
	sm.Cleanup()
}

func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManager(false)
	if sm.Muted() {
		t.Fatal("expected unmuted")
	}
	if !sm.ToggleMute() || !sm.Muted() {
		t.Error("toggle should mute")
	}
	if sm.ToggleMute() || sm.Muted() {
		t.Error("toggle should unmute")
	}
	if !NewSoundManager(true).Muted() {
		t.Error("constructor mute flag ignored")
	}
}

// drain streams s to exhaustion and returns total samples and peak amplitude
func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestGeneratorsAreFinite(t *testing.T) {
	tests := []struct {
		name     string
		streamer beep.Streamer
		want     int
	}{
		{"tone", NewToneGenerator(sampleRate, landHz, landDuration, 30), sampleRate.N(landDuration)},
		{"sweep", NewSweepGenerator(sampleRate, liftFromHz, liftToHz, liftDuration), sampleRate.N(liftDuration)},
		{"chord", beep.Seq(
			NewToneGenerator(sampleRate, 440, 10*time.Millisecond, 6),
			NewToneGenerator(sampleRate, 880, 10*time.Millisecond, 6),
		), 2 * sampleRate.N(10*time.Millisecond)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, peak := drain(tt.streamer)
			if total != tt.want {
				t.Errorf("streamed %d samples, want %d", total, tt.want)
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak amplitude %v out of range", peak)
			}
		})
	}
}

func TestEnvelope(t *testing.T) {
	if envelope(0, 10) != 0 {
		t.Error("envelope must start silent")
	}
	if e := envelope(attackTime, 0); e != 1 {
		t.Errorf("envelope after attack %v, want 1", e)
	}
	if envelope(0.5, 10) >= envelope(0.1, 10) {
		t.Error("envelope must decay")
	}
}
