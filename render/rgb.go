package render

import "github.com/gdamore/tcell/v2"

// RGB is a 24-bit color independent of the output backend
type RGB struct {
	R, G, B uint8
}

// RGBWhite is the brightest color, used as the in-flight highlight target
var RGBWhite = RGB{255, 255, 255}

// Gray returns a neutral color with all channels set to v
func Gray(v uint8) RGB {
	return RGB{v, v, v}
}

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Lerp linearly interpolates between a and b, t in [0,1]
func Lerp(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGB{
		R: clamp(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: clamp(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: clamp(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}

// Tcell returns the truecolor tcell equivalent
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
