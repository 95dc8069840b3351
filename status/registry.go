package status

import (
	"log/slog"
	"sync/atomic"
)

// Registry is the central metrics facade
// The session caches pointers at construction; the frame loop writes atomics directly
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Attrs snapshots every metric as log attributes, in key order per type
func (r *Registry) Attrs() []slog.Attr {
	attrs := make([]slog.Attr, 0, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) { attrs = append(attrs, slog.Bool(k, v.Load())) })
	r.Ints.Range(func(k string, v *atomic.Int64) { attrs = append(attrs, slog.Int64(k, v.Load())) })
	r.Floats.Range(func(k string, v *AtomicFloat) { attrs = append(attrs, slog.Float64(k, v.Get())) })
	r.Strings.Range(func(k string, v *AtomicString) { attrs = append(attrs, slog.String(k, v.Load())) })
	return attrs
}

// Metric keys published by the session and the executable
const (
	KeyDiscs  = "puzzle.discs"
	KeyStep   = "puzzle.step"
	KeyTotal  = "puzzle.total"
	KeySolved = "puzzle.solved"
	KeyPhase  = "disc.phase"
	KeyMotion = "engine.motion"
	KeyPaused = "engine.paused"
	KeyFrames = "engine.frames"
	KeyFPS    = "engine.fps"
	KeyMuted  = "audio.muted"
)
