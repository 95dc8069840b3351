package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Cue timing and pitch
const (
	liftDuration   = 90 * time.Millisecond
	liftFromHz     = 220.0
	liftToHz       = 440.0
	landDuration   = 70 * time.Millisecond
	landHz         = 110.0
	solvedNoteTime = 120 * time.Millisecond
)

// solvedChord is the arpeggio played when the last disc lands (C5 E5 G5 C6)
var solvedChord = []float64{523.25, 659.25, 783.99, 1046.50}

// SoundManager plays short cues for disc moves through the system speaker
// Every Play method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	initialized bool
}

// NewSoundManager creates a sound manager; muted starts it silent
func NewSoundManager(muted bool) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer: mixer,
		volume: &effects.Volume{
			Streamer: mixer,
			Base:     2,
			Volume:   -1,
			Silent:   muted,
		},
	}
}

// Initialize sets up the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.volume)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Muted reports whether cues are silenced
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume.Silent
}

// ToggleMute flips the mute state and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.volume.Silent = !sm.volume.Silent
	return sm.volume.Silent
}

// PlayLift plays a short rising chirp as a disc leaves its peg
func (sm *SoundManager) PlayLift() {
	sm.play(NewSweepGenerator(sampleRate, liftFromHz, liftToHz, liftDuration))
}

// PlayLand plays a low thud as a disc comes to rest
func (sm *SoundManager) PlayLand() {
	sm.play(NewToneGenerator(sampleRate, landHz, landDuration, 30))
}

// PlaySolved plays an ascending arpeggio
func (sm *SoundManager) PlaySolved() {
	notes := make([]beep.Streamer, 0, len(solvedChord))
	for _, hz := range solvedChord {
		notes = append(notes, NewToneGenerator(sampleRate, hz, solvedNoteTime, 6))
	}
	sm.play(beep.Seq(notes...))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.volume.Silent {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
