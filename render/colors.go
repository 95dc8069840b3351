package render

// Palette (Tokyo Night base)
var (
	RgbBackground = RGB{26, 27, 38}
	RgbPeg        = Gray(180)
	RgbLabel      = RGB{150, 150, 160}
	RgbStatusBg   = RGB{135, 206, 250} // Light sky blue
	RgbStatusText = RGB{0, 0, 0}
	RgbSolvedBg   = RGB{144, 238, 144} // Light grass green
	RgbPausedBg   = RGB{255, 165, 0}   // Orange
)

// discColors is indexed by disc rank, wrapping for larger puzzles
var discColors = []RGB{
	{255, 80, 80},   // Red
	{255, 165, 0},   // Orange
	{255, 255, 0},   // Yellow
	{50, 255, 50},   // Green
	{0, 200, 200},   // Cyan
	{100, 150, 255}, // Blue
	{200, 120, 255}, // Purple
	{255, 120, 200}, // Pink
}

// DiscColor returns the fill color for a disc rank
func DiscColor(rank int) RGB {
	if rank < 0 {
		rank = -rank
	}
	return discColors[rank%len(discColors)]
}

// InFlightColor brightens a disc color while it is moving
func InFlightColor(c RGB) RGB {
	return Lerp(c, RGBWhite, 0.35)
}
