package input

import "github.com/gdamore/tcell/v2"

// Bounds reports whether a screen cell belongs to the clickable drawing area
type Bounds interface {
	Contains(x, y int) bool
}

// Mapper turns tcell events into intents
// Mouse clicks only count on the press edge so a held button steps once
type Mapper struct {
	bounds  Bounds
	pressed bool
}

// NewMapper creates a mapper that accepts clicks inside bounds
func NewMapper(bounds Bounds) *Mapper {
	return &Mapper{bounds: bounds}
}

// Map translates one event
func (m *Mapper) Map(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return Intent{Type: mapKey(ev)}

	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		wasDown := m.pressed
		m.pressed = down
		if !down || wasDown {
			return Intent{}
		}
		x, y := ev.Position()
		if m.bounds != nil && !m.bounds.Contains(x, y) {
			return Intent{}
		}
		return Intent{Type: IntentStep}

	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

func mapKey(ev *tcell.EventKey) IntentType {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return IntentQuit
	case tcell.KeyEnter, tcell.KeyRight:
		return IntentStep
	case tcell.KeyUp:
		return IntentMoreDiscs
	case tcell.KeyDown:
		return IntentFewerDiscs
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return IntentQuit
		case ' ':
			return IntentStep
		case '+', '=':
			return IntentMoreDiscs
		case '-', '_':
			return IntentFewerDiscs
		case 'r':
			return IntentReset
		case 's':
			return IntentSettle
		case 'p':
			return IntentPause
		case 'm':
			return IntentToggleMute
		}
	}
	return IntentNone
}
