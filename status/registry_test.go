package status

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestMetricMapGetReturnsCachedPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyStep)
	b := r.Ints.Get(KeyStep)
	if a != b {
		t.Fatal("expected the same pointer for the same key")
	}
	a.Store(7)
	if r.Ints.Get(KeyStep).Load() != 7 {
		t.Error("value written through cached pointer not visible")
	}
}

func TestMetricMapRangeSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyTotal)
	r.Ints.Get(KeyDiscs)
	r.Ints.Get(KeyStep)

	var keys []string
	r.Ints.Range(func(key string, _ *atomic.Int64) { keys = append(keys, key) })
	want := []string{KeyDiscs, KeyStep, KeyTotal}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("range order %v, want %v", keys, want)
		}
	}
	if r.TotalCount() != 3 {
		t.Errorf("total count %d", r.TotalCount())
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	var wg sync.WaitGroup
	ptrs := make([]*AtomicFloat, 16)
	for i := range ptrs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ptrs[i] = m.Get(KeyFPS)
		}(i)
	}
	wg.Wait()
	for _, p := range ptrs[1:] {
		if p != ptrs[0] {
			t.Fatal("concurrent Get created duplicate metrics")
		}
	}
}

func TestAtomicString(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("zero value should be empty")
	}
	s.Store("traversing")
	if s.Load() != "traversing" {
		t.Errorf("got %q", s.Load())
	}
	s.Store("this string is much longer than twenty")
	if len(s.Load()) != MaxStringLen {
		t.Errorf("expected truncation to %d, got %d", MaxStringLen, len(s.Load()))
	}

	// Second box rune occupies bytes 19..21
	s.Store("descending with ───")
	if got := s.Load(); got != "descending with ─" {
		t.Errorf("rune split: %q", got)
	}
}

func TestAtomicFloat(t *testing.T) {
	var f AtomicFloat
	f.Set(59.5)
	if f.Get() != 59.5 {
		t.Errorf("got %v", f.Get())
	}
}

func TestRegistryAttrs(t *testing.T) {
	r := NewRegistry()
	r.Bools.Get(KeySolved).Store(true)
	r.Ints.Get(KeyStep).Store(7)
	r.Floats.Get(KeyFPS).Set(60)
	r.Strings.Get(KeyPhase).Store("idle")

	attrs := r.Attrs()
	if len(attrs) != 4 {
		t.Fatalf("got %d attrs", len(attrs))
	}
	want := map[string]string{
		KeySolved: "true",
		KeyStep:   "7",
		KeyFPS:    "60",
		KeyPhase:  "idle",
	}
	for _, a := range attrs {
		if got := a.Value.String(); got != want[a.Key] {
			t.Errorf("%s = %q, want %q", a.Key, got, want[a.Key])
		}
	}
}
