package render

// Stroke describes how a line is drawn
type Stroke struct {
	Weight float64
	Color  RGB
}

// Surface is the drawing backend used by the puzzle
// Coordinates are canvas pixels with the origin at the top-left corner
// Clearing between frames is the caller's responsibility
type Surface interface {
	Line(x0, y0, x1, y1 float64, stroke Stroke)
	Text(s string, x, y float64, color RGB)
}
