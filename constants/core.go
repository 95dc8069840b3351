package constants

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps elapsed time fed into delta-based motion after a stall
	MaxFrameDelta = 250 * time.Millisecond

	// EventQueueSize is the capacity of the terminal event channel
	EventQueueSize = 100
)

// Canvas Geometry Defaults (canvas pixels)
const (
	// CanvasWidth is the default play area width
	CanvasWidth = 800.0

	// CanvasHeight is the default play area height
	CanvasHeight = 600.0

	// DiscSeparation is the vertical spacing between stacked discs
	DiscSeparation = 20.0

	// DiscWidthUnit is the width added per disc rank
	DiscWidthUnit = 25.0

	// DiscSpeed is the disc motion quantum in pixels per tick
	DiscSpeed = 5.0

	// TransitClearance is how far above the peg tops discs travel sideways
	TransitClearance = 10.0

	// DiscStrokeWeight is the stroke weight used to draw a disc
	DiscStrokeWeight = 5.0

	// PegStrokeWeight is the stroke weight used to draw a peg
	PegStrokeWeight = 1.0

	// LabelOffset is the distance of peg labels above the canvas bottom
	LabelOffset = 2.0
)

// Disc Count Limits
const (
	// MinDiscs is the lowest disc count offered by the selector
	MinDiscs = 3

	// MaxDiscs is the highest disc count offered by the selector
	MaxDiscs = 6

	// InitialDiscs is the disc count used at startup
	InitialDiscs = 3

	// DiscLimit is the largest disc count whose move total fits in uint64
	DiscLimit = 63

	// TraceDiscLimit caps headless traces; 2^20-1 moves is about a million lines
	TraceDiscLimit = 20
)
