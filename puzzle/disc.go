package puzzle

import (
	"fmt"

	"github.com/lixenwraith/hanoi/constants"
	"github.com/lixenwraith/hanoi/render"
)

// Phase is the motion state of a disc
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseRising
	PhaseTraversing
	PhaseDescending
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRising:
		return "rising"
	case PhaseTraversing:
		return "traversing"
	case PhaseDescending:
		return "descending"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// Disc is one ring of the puzzle with its own motion state machine
// A move is lift to the transit altitude, traverse to the target x, descend to the target y
type Disc struct {
	rank  int
	width float64

	x, y             float64
	targetX, targetY float64

	phase    Phase
	speed    float64
	altitude float64
}

// NewDisc creates a resting disc of the given rank at (x, y)
func NewDisc(rank int, x, y float64, g Geometry) *Disc {
	return &Disc{
		rank:     rank,
		width:    g.DiscWidth(rank),
		x:        x,
		y:        y,
		targetX:  x,
		targetY:  y,
		speed:    g.Speed,
		altitude: g.TransitAltitude(),
	}
}

// Accessors
func (d *Disc) Rank() int { return d.rank }
func (d *Disc) Width() float64 { return d.width }
func (d *Disc) Phase() Phase { return d.phase }
func (d *Disc) Position() (x, y float64) { return d.x, d.y }
func (d *Disc) Target() (x, y float64) { return d.targetX, d.targetY }
func (d *Disc) Idle() bool { return d.phase == PhaseIdle }
func (d *Disc) String() string { return fmt.Sprintf("disc%d", d.rank) }
func (d *Disc) Speed() float64 { return d.speed }

// BeginMove records a destination and starts the lift
// Only valid on an idle disc; moves are never queued
func (d *Disc) BeginMove(targetX, targetY float64) error {
	if d.phase != PhaseIdle {
		return fmt.Errorf("%s to (%.1f, %.1f) while %s: %w", d, targetX, targetY, d.phase, ErrDiscInFlight)
	}
	d.targetX = targetX
	d.targetY = targetY
	d.phase = PhaseRising
	return nil
}

// Tick advances the motion by one speed quantum
// Returns true on the tick the disc comes to rest
func (d *Disc) Tick() bool {
	return d.Advance(d.speed)
}

// Advance moves the disc dist pixels within its current phase
// Overshoot is clamped to the phase boundary and the remainder discarded,
// so one call never spans two phases. No-op while idle
func (d *Disc) Advance(dist float64) bool {
	switch d.phase {
	case PhaseRising:
		d.y -= dist
		if d.y <= d.altitude {
			d.y = d.altitude
			d.phase = PhaseTraversing
		}

	case PhaseTraversing:
		if d.x < d.targetX {
			d.x += dist
			if d.x >= d.targetX {
				d.x = d.targetX
				d.phase = PhaseDescending
			}
		} else {
			d.x -= dist
			if d.x <= d.targetX {
				d.x = d.targetX
				d.phase = PhaseDescending
			}
		}

	case PhaseDescending:
		d.y += dist
		if d.y >= d.targetY {
			d.y = d.targetY
			d.phase = PhaseIdle
			return true
		}
	}
	return false
}

// Settle completes any move in progress instantly
func (d *Disc) Settle() bool {
	if d.phase == PhaseIdle {
		return false
	}
	d.x, d.y = d.targetX, d.targetY
	d.phase = PhaseIdle
	return true
}

// Draw renders the disc as a thick horizontal bar centered at its position
func (d *Disc) Draw(s render.Surface) {
	color := render.DiscColor(d.rank)
	if d.phase != PhaseIdle {
		color = render.InFlightColor(color)
	}
	left := d.x - d.width/2
	s.Line(left, d.y, left+d.width, d.y, render.Stroke{Weight: constants.DiscStrokeWeight, Color: color})
}

// Render advances a moving disc by one tick and then draws it
// Returns true if the disc came to rest during this call
func (d *Disc) Render(s render.Surface) bool {
	landed := false
	if d.phase != PhaseIdle {
		landed = d.Tick()
	}
	d.Draw(s)
	return landed
}
