package puzzle

import (
	"github.com/lixenwraith/hanoi/constants"
	"github.com/lixenwraith/hanoi/render"
)

// PegID identifies one of the three fixed peg instances
type PegID uint8

const (
	PegA PegID = iota
	PegB
	PegC
)

var pegNames = [...]string{"A", "B", "C"}

func (id PegID) String() string {
	if int(id) < len(pegNames) {
		return pegNames[id]
	}
	return "?"
}

// Peg holds a stack of discs; index 0 is the top of the stack
type Peg struct {
	id    PegID
	label string
	x     float64
	top   float64
	base  float64
	discs []*Disc
}

// NewPeg creates an empty peg at horizontal position x
func NewPeg(id PegID, label string, x float64, g Geometry) *Peg {
	return &Peg{
		id:    id,
		label: label,
		x:     x,
		top:   g.PegTop(),
		base:  g.Height,
	}
}

func (p *Peg) ID() PegID { return p.id }
func (p *Peg) Label() string { return p.label }
func (p *Peg) X() float64 { return p.x }
func (p *Peg) Len() int { return len(p.discs) }

// Push places d on top of the stack
func (p *Peg) Push(d *Disc) {
	p.discs = append(p.discs, nil)
	copy(p.discs[1:], p.discs)
	p.discs[0] = d
}

// Pop removes and returns the top disc, false when the peg is empty
func (p *Peg) Pop() (*Disc, bool) {
	if len(p.discs) == 0 {
		return nil, false
	}
	d := p.discs[0]
	p.discs[0] = nil
	p.discs = p.discs[1:]
	return d, true
}

// Top returns the top disc without removing it
func (p *Peg) Top() (*Disc, bool) {
	if len(p.discs) == 0 {
		return nil, false
	}
	return p.discs[0], true
}

// Discs returns a copy of the stack, top first
func (p *Peg) Discs() []*Disc {
	out := make([]*Disc, len(p.discs))
	copy(out, p.discs)
	return out
}

// Ordered reports whether the stack is strictly width-ascending from the top
func (p *Peg) Ordered() bool {
	for i := 1; i < len(p.discs); i++ {
		if p.discs[i-1].width >= p.discs[i].width {
			return false
		}
	}
	return true
}

// Draw renders the peg line, its label and its discs top to bottom without advancing motion
func (p *Peg) Draw(s render.Surface) {
	p.drawFrame(s)
	for _, d := range p.discs {
		d.Draw(s)
	}
}

// Render is Draw with each moving disc advanced by one tick first
// Returns the discs that came to rest
func (p *Peg) Render(s render.Surface) []*Disc {
	p.drawFrame(s)
	var landed []*Disc
	for _, d := range p.discs {
		if d.Render(s) {
			landed = append(landed, d)
		}
	}
	return landed
}

func (p *Peg) drawFrame(s render.Surface) {
	s.Line(p.x, p.top, p.x, p.base, render.Stroke{Weight: constants.PegStrokeWeight, Color: render.RgbPeg})
	s.Text(p.label, p.x, p.base-constants.LabelOffset, render.RgbLabel)
}
