package constants

// Terminal Layout
const (
	// CellWidth is the canvas width covered by one terminal column
	CellWidth = 10.0

	// CellHeight is the canvas height covered by one terminal row
	CellHeight = 20.0

	// StatusBarHeight is the number of rows reserved below the canvas
	StatusBarHeight = 1

	// DiscGlyph is the rune used for thick strokes
	DiscGlyph = '█'

	// PegGlyph is the rune used for thin vertical strokes
	PegGlyph = '│'

	// RailGlyph is the rune used for thin horizontal strokes
	RailGlyph = '─'

	// DotGlyph is the rune used for sampled diagonal strokes
	DotGlyph = '·'
)

// Motion modes
const (
	MotionTick  = "tick"
	MotionDelta = "delta"
)

// Logging
const (
	// LogDir is the directory created for debug logs
	LogDir = "logs"

	// LogFileName is the debug log file inside LogDir
	LogFileName = "hanoi.log"

	// DefaultConfigFile is read when present and no -config flag is given
	DefaultConfigFile = "hanoi.cue"
)
