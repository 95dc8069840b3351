package engine

// DiscSelector is the bounded disc-count control the UI adjusts
// The session reads Value once per frame and rebuilds the puzzle when it changes
type DiscSelector struct {
	min, max int
	value    int
}

// NewDiscSelector creates a selector over [lo, hi] starting at value (clamped)
func NewDiscSelector(lo, hi, value int) *DiscSelector {
	if hi < lo {
		hi = lo
	}
	s := &DiscSelector{min: lo, max: hi}
	s.Set(value)
	return s
}

func (s *DiscSelector) Value() int { return s.value }
func (s *DiscSelector) Min() int { return s.min }
func (s *DiscSelector) Max() int { return s.max }

// Set clamps v into range and returns the stored value
func (s *DiscSelector) Set(v int) int {
	s.value = min(max(v, s.min), s.max)
	return s.value
}

// Inc raises the count by one; false at the upper bound
func (s *DiscSelector) Inc() bool {
	if s.value >= s.max {
		return false
	}
	s.value++
	return true
}

// Dec lowers the count by one; false at the lower bound
func (s *DiscSelector) Dec() bool {
	if s.value <= s.min {
		return false
	}
	s.value--
	return true
}
