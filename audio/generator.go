package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// attackTime is the fade-in applied to every cue to avoid clicks
const attackTime = 0.005

// ToneGenerator is a finite sine tone with exponential decay
type ToneGenerator struct {
	sr      beep.SampleRate
	freq    float64
	decay   float64
	samples int
	pos     int
}

// NewToneGenerator creates a tone lasting d; decay is the envelope rate per second
func NewToneGenerator(sr beep.SampleRate, freq float64, d time.Duration, decay float64) *ToneGenerator {
	return &ToneGenerator{
		sr:      sr,
		freq:    freq,
		decay:   decay,
		samples: sr.N(d),
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		sample := 0.3 * envelope(t, g.decay) * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// SweepGenerator glides linearly from one frequency to another
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep lasting d
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: sr.N(d),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress

		// Phase accumulation keeps the glide continuous
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		t := float64(g.pos) / float64(g.sr)
		sample := 0.2 * envelope(t, 10) * (1 - progress*0.5) * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// envelope is a short linear attack followed by exponential decay
func envelope(t, decay float64) float64 {
	return math.Min(t/attackTime, 1.0) * math.Exp(-t*decay)
}
