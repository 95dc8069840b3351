package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/hanoi/constants"
)

// thickStroke is the weight at which lines render as solid blocks
const thickStroke = 3.0

// TerminalSurface draws canvas-space primitives onto a tcell screen
// Each cell covers cellW x cellH canvas pixels; the canvas is centered above the status bar
type TerminalSurface struct {
	screen tcell.Screen

	canvasW, canvasH float64
	cellW, cellH     float64

	cols, rows       int
	originX, originY int

	bg tcell.Style
}

// NewTerminalSurface creates a surface for the given canvas and cell size and computes its layout
func NewTerminalSurface(screen tcell.Screen, canvasW, canvasH, cellW, cellH float64) *TerminalSurface {
	t := &TerminalSurface{
		screen:  screen,
		canvasW: canvasW,
		canvasH: canvasH,
		cellW:   cellW,
		cellH:   cellH,
		bg:      tcell.StyleDefault.Background(RgbBackground.Tcell()),
	}
	t.Layout()
	return t
}

// Layout recomputes the canvas origin from the current screen size
// Called after resize events
func (t *TerminalSurface) Layout() {
	t.cols = int(math.Round(t.canvasW/t.cellW)) + 1
	t.rows = int(math.Round(t.canvasH/t.cellH)) + 1

	width, height := t.screen.Size()
	t.originX = max(0, (width-t.cols)/2)
	t.originY = max(0, (height-constants.StatusBarHeight-t.rows)/2)
}

// Size returns the canvas extent in cells
func (t *TerminalSurface) Size() (cols, rows int) {
	return t.cols, t.rows
}

// Origin returns the screen cell of canvas point (0,0)
func (t *TerminalSurface) Origin() (x, y int) {
	return t.originX, t.originY
}

// Contains reports whether a screen cell lies inside the canvas
func (t *TerminalSurface) Contains(x, y int) bool {
	return x >= t.originX && x < t.originX+t.cols &&
		y >= t.originY && y < t.originY+t.rows
}

// Clear fills the whole screen with the background style
func (t *TerminalSurface) Clear() {
	t.screen.SetStyle(t.bg)
	t.screen.Clear()
}

// Show flushes the frame to the terminal
func (t *TerminalSurface) Show() {
	t.screen.Show()
}

// Cell maps a canvas point to its screen cell
func (t *TerminalSurface) Cell(x, y float64) (col, row int) {
	return t.col(x), t.row(y)
}

func (t *TerminalSurface) col(x float64) int {
	return t.originX + int(math.Round(x/t.cellW))
}

func (t *TerminalSurface) row(y float64) int {
	return t.originY + int(math.Round(y/t.cellH))
}

// set writes a cell, clipping to the screen
func (t *TerminalSurface) set(x, y int, r rune, style tcell.Style) {
	width, height := t.screen.Size()
	if x < 0 || x >= width || y < 0 || y >= height {
		return
	}
	t.screen.SetContent(x, y, r, nil, style)
}

// Line draws a segment; horizontal spans are centered on their midpoint so
// discs of increasing width stay symmetric around their peg
func (t *TerminalSurface) Line(x0, y0, x1, y1 float64, stroke Stroke) {
	style := t.bg.Foreground(stroke.Color.Tcell())
	thick := stroke.Weight >= thickStroke

	switch {
	case y0 == y1:
		glyph := constants.RailGlyph
		if thick {
			glyph = constants.DiscGlyph
		}
		row := t.row(y0)
		center := t.col((x0 + x1) / 2)
		half := int(math.Round(math.Abs(x1-x0) / 2 / t.cellW))
		for c := center - half; c <= center+half; c++ {
			t.set(c, row, glyph, style)
		}

	case x0 == x1:
		glyph := constants.PegGlyph
		if thick {
			glyph = constants.DiscGlyph
		}
		col := t.col(x0)
		top, bottom := t.row(min(y0, y1)), t.row(max(y0, y1))
		for r := top; r <= bottom; r++ {
			t.set(col, r, glyph, style)
		}

	default:
		glyph := constants.DotGlyph
		if thick {
			glyph = constants.DiscGlyph
		}
		c0, r0 := t.Cell(x0, y0)
		c1, r1 := t.Cell(x1, y1)
		steps := max(abs(c1-c0), abs(r1-r0))
		if steps == 0 {
			t.set(c0, r0, glyph, style)
			return
		}
		for i := 0; i <= steps; i++ {
			p := float64(i) / float64(steps)
			c := c0 + int(math.Round(float64(c1-c0)*p))
			r := r0 + int(math.Round(float64(r1-r0)*p))
			t.set(c, r, glyph, style)
		}
	}
}

// Text draws s left-aligned starting at the cell of (x, y)
func (t *TerminalSurface) Text(s string, x, y float64, color RGB) {
	style := t.bg.Foreground(color.Tcell())
	col, row := t.Cell(x, y)
	for _, r := range s {
		t.set(col, row, r, style)
		col++
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
