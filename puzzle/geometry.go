package puzzle

import (
	"errors"

	"github.com/lixenwraith/hanoi/constants"
)

// Geometry holds the canvas measurements the puzzle lays itself out against
// All values are canvas pixels except Speed, which is pixels per tick
type Geometry struct {
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	DiscSeparation float64 `json:"discSeparation"`
	PegSpacing     float64 `json:"pegSpacing"` // zero means Width/4
	DiscUnit       float64 `json:"discUnit"`
	Clearance      float64 `json:"clearance"`
	Speed          float64 `json:"speed"`
}

// DefaultGeometry returns the 800x600 layout with pegs at quarter widths
func DefaultGeometry() Geometry {
	return Geometry{
		Width:          constants.CanvasWidth,
		Height:         constants.CanvasHeight,
		DiscSeparation: constants.DiscSeparation,
		DiscUnit:       constants.DiscWidthUnit,
		Clearance:      constants.TransitClearance,
		Speed:          constants.DiscSpeed,
	}
}

// Validate reports non-positive measurements
func (g Geometry) Validate() error {
	switch {
	case g.Width <= 0 || g.Height <= 0:
		return errors.New("geometry: canvas size must be positive")
	case g.DiscSeparation <= 0:
		return errors.New("geometry: disc separation must be positive")
	case g.DiscUnit <= 0:
		return errors.New("geometry: disc unit must be positive")
	case g.Speed <= 0:
		return errors.New("geometry: speed must be positive")
	case g.PegSpacing < 0 || g.Clearance < 0:
		return errors.New("geometry: peg spacing and clearance must not be negative")
	}
	return nil
}

// PegX returns the horizontal coordinate of peg i (0-based)
func (g Geometry) PegX(i int) float64 {
	spacing := g.PegSpacing
	if spacing == 0 {
		spacing = g.Width / 4
	}
	return spacing * float64(1+i)
}

// PegTop is the y where peg lines start
func (g Geometry) PegTop() float64 {
	return g.Height / 2
}

// TransitAltitude is the y at which discs travel between pegs
func (g Geometry) TransitAltitude() float64 {
	return g.Height/2 - g.Clearance
}

// StackY returns the resting y of a disc placed on a peg already holding count discs
func (g Geometry) StackY(count int) float64 {
	return g.Height - g.DiscSeparation*float64(count+1)
}

// DiscWidth returns the width of a disc of the given rank
func (g Geometry) DiscWidth(rank int) float64 {
	return g.DiscUnit * float64(rank+1)
}
