package render

// CallKind identifies a recorded Surface call
type CallKind uint8

const (
	CallLine CallKind = iota
	CallText
)

// Call is one recorded drawing primitive
type Call struct {
	Kind           CallKind
	X0, Y0, X1, Y1 float64
	Stroke         Stroke
	Text           string
	Color          RGB
}

// Recorder is a Surface that keeps every call in order
// Used by headless tests to assert draw order and geometry
type Recorder struct {
	Calls []Call
}

// Line records a line call
func (r *Recorder) Line(x0, y0, x1, y1 float64, stroke Stroke) {
	r.Calls = append(r.Calls, Call{Kind: CallLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Stroke: stroke})
}

// Text records a text call
func (r *Recorder) Text(s string, x, y float64, color RGB) {
	r.Calls = append(r.Calls, Call{Kind: CallText, X0: x, Y0: y, Text: s, Color: color})
}

// Reset drops recorded calls, keeping capacity
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Lines returns recorded line calls with at least the given stroke weight
func (r *Recorder) Lines(minWeight float64) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Kind == CallLine && c.Stroke.Weight >= minWeight {
			out = append(out, c)
		}
	}
	return out
}

// Texts returns recorded text strings in order
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Calls {
		if c.Kind == CallText {
			out = append(out, c.Text)
		}
	}
	return out
}
