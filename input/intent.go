package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C
	IntentResize // Terminal resize event

	// Puzzle control
	IntentStep       // Left click inside the canvas, Space, Enter, Right arrow
	IntentMoreDiscs  // +, =, Up arrow
	IntentFewerDiscs // -, Down arrow
	IntentReset      // r
	IntentSettle     // s
	IntentPause      // p
	IntentToggleMute // m
)

var intentNames = [...]string{
	IntentNone:       "none",
	IntentQuit:       "quit",
	IntentResize:     "resize",
	IntentStep:       "step",
	IntentMoreDiscs:  "more-discs",
	IntentFewerDiscs: "fewer-discs",
	IntentReset:      "reset",
	IntentSettle:     "settle",
	IntentPause:      "pause",
	IntentToggleMute: "mute",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent is a parsed user action
type Intent struct {
	Type IntentType
}
